package domain

// Campaign field names.
const (
	CampaignImage       = "image"
	CampaignTitle       = "title"
	CampaignType        = "campaignType"
	CampaignDeadline    = "deadline"
	CampaignMinDonation = "minDonation"
	CampaignUserEmail   = "userEmail"
	CampaignUserName    = "userName"
	CampaignDescription = "description"
)

// CampaignEditableFields are replaced as a whole by a campaign update.
var CampaignEditableFields = []string{
	CampaignImage,
	CampaignTitle,
	CampaignType,
	CampaignDeadline,
	CampaignMinDonation,
	CampaignUserEmail,
	CampaignUserName,
	CampaignDescription,
}

// CampaignUpdate builds the field replacement for an update request. Editable
// fields absent from the body are cleared to null; any other key is ignored.
func CampaignUpdate(body Document) (Document, error) {
	if len(body) == 0 {
		return nil, Invalid("No data provided for update.")
	}
	set := make(Document, len(CampaignEditableFields))
	for _, field := range CampaignEditableFields {
		set[field] = body[field]
	}
	return set, nil
}
