package domain

import "encoding/json"

// Donation field names.
const (
	DonorEmail = "donorEmail"
	CampaignID = "campaignId"
)

// ValidateDonation rejects a donation lacking a donor email or campaign id.
// Null, empty and zero values count as missing.
func ValidateDonation(doc Document) error {
	if !present(doc[DonorEmail]) || !present(doc[CampaignID]) {
		return Invalid("missing")
	}
	return nil
}

func present(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case bool:
		return val
	case json.Number:
		f, err := val.Float64()
		return err != nil || f != 0
	case float64:
		return val != 0
	case int:
		return val != 0
	case int32:
		return val != 0
	case int64:
		return val != 0
	default:
		return true
	}
}
