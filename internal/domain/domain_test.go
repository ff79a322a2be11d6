package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCampaignUpdateRejectsEmptyBody(t *testing.T) {
	for _, body := range []Document{nil, {}} {
		set, err := CampaignUpdate(body)
		require.Error(t, err)
		assert.Nil(t, set)
		assert.True(t, errors.Is(err, ErrValidation))
		msg, ok := ClientMessage(err)
		require.True(t, ok)
		assert.Equal(t, "No data provided for update.", msg)
	}
}

func TestCampaignUpdateReplacesEditableFields(t *testing.T) {
	set, err := CampaignUpdate(Document{
		"title":       "X",
		"minDonation": json.Number("25"),
		"_id":         "ignored",
		"extra":       true,
	})
	require.NoError(t, err)

	assert.Len(t, set, len(CampaignEditableFields))
	assert.Equal(t, "X", set[CampaignTitle])
	assert.Equal(t, json.Number("25"), set[CampaignMinDonation])
	assert.NotContains(t, set, IDField)
	assert.NotContains(t, set, "extra")

	val, ok := set[CampaignDescription]
	assert.True(t, ok, "absent editable fields are cleared")
	assert.Nil(t, val)
}

func TestValidateDonation(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
		ok   bool
	}{
		{name: "complete", doc: Document{"donorEmail": "a@x.com", "campaignId": "abc", "amount": 5}, ok: true},
		{name: "numeric campaign id", doc: Document{"donorEmail": "a@x.com", "campaignId": json.Number("7")}, ok: true},
		{name: "missing donor", doc: Document{"campaignId": "abc"}},
		{name: "missing campaign", doc: Document{"donorEmail": "a@x.com"}},
		{name: "empty donor", doc: Document{"donorEmail": "", "campaignId": "abc"}},
		{name: "null campaign", doc: Document{"donorEmail": "a@x.com", "campaignId": nil}},
		{name: "zero campaign", doc: Document{"donorEmail": "a@x.com", "campaignId": json.Number("0")}},
		{name: "empty document", doc: Document{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateDonation(tc.doc)
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, "missing", err.Error())
		})
	}
}

func TestClientMessageSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("update campaign: %w", NotFound("Campaign not found."))

	assert.True(t, errors.Is(err, ErrNotFound))
	msg, ok := ClientMessage(err)
	require.True(t, ok)
	assert.Equal(t, "Campaign not found.", msg)

	_, ok = ClientMessage(errors.New("boom"))
	assert.False(t, ok)
}

func TestFilters(t *testing.T) {
	assert.Equal(t, Filter{"_id": ID("abc")}, ByID("abc"))
	assert.Equal(t, Filter{"donorEmail": "a@x.com"}, Eq(DonorEmail, "a@x.com"))
}
