package handlers

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"crowdcube/internal/domain"
)

type messageResponse struct {
	Message string `json:"message"`
}

type campaignUpdateResponse struct {
	Message string               `json:"message"`
	Result  *domain.UpdateResult `json:"result"`
}

func (a *App) CampaignsList(w http.ResponseWriter, r *http.Request) {
	docs, err := a.campaigns().Find(r.Context(), domain.Filter{})
	if err != nil {
		a.fail(w, r, err, "Failed to fetch campaigns.")
		return
	}
	a.list(w, docs)
}

// CampaignsGet responds with the campaign or null when none matches.
func (a *App) CampaignsGet(w http.ResponseWriter, r *http.Request) {
	doc, err := a.campaigns().FindOne(r.Context(), domain.ByID(chi.URLParam(r, "id")))
	if err != nil {
		a.fail(w, r, err, "Failed to fetch the campaign.")
		return
	}
	a.json(w, http.StatusOK, doc)
}

func (a *App) CampaignsCreate(w http.ResponseWriter, r *http.Request) {
	doc, err := a.decodeDocument(w, r)
	if err != nil {
		a.fail(w, r, err, "Failed to create the campaign.")
		return
	}
	a.logger(r).Debug().Interface("campaign", doc).Msg("creating campaign")
	res, err := a.campaigns().InsertOne(r.Context(), doc)
	if err != nil {
		a.fail(w, r, err, "Failed to create the campaign.")
		return
	}
	a.json(w, http.StatusOK, res)
}

func (a *App) CampaignsUpdate(w http.ResponseWriter, r *http.Request) {
	body, err := a.decodeDocument(w, r)
	if err != nil {
		a.fail(w, r, err, "Failed to update the campaign.")
		return
	}
	set, err := domain.CampaignUpdate(body)
	if err != nil {
		a.fail(w, r, err, "Failed to update the campaign.")
		return
	}
	res, err := a.campaigns().UpdateOne(r.Context(), domain.ByID(chi.URLParam(r, "id")), set, domain.UpdateOptions{Upsert: false})
	if err != nil {
		a.fail(w, r, err, "Failed to update the campaign.")
		return
	}
	if res.MatchedCount == 0 {
		a.fail(w, r, domain.NotFound("Campaign not found."), "Failed to update the campaign.")
		return
	}
	a.json(w, http.StatusOK, campaignUpdateResponse{Message: "Campaign updated successfully.", Result: res})
}

func (a *App) CampaignsDelete(w http.ResponseWriter, r *http.Request) {
	res, err := a.campaigns().DeleteOne(r.Context(), domain.ByID(chi.URLParam(r, "id")))
	if err != nil {
		a.fail(w, r, err, "Failed to delete the campaign.")
		return
	}
	if res.DeletedCount != 1 {
		a.fail(w, r, domain.NotFound("Campaign not found."), "Failed to delete the campaign.")
		return
	}
	a.json(w, http.StatusOK, messageResponse{Message: "Campaign deleted successfully."})
}

// CampaignsByEmail lists the campaigns created by the given user email.
func (a *App) CampaignsByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	// chi routes on RawPath when it is set, leaving the segment escaped.
	if r.URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(email); err == nil {
			email = unescaped
		}
	}
	docs, err := a.campaigns().Find(r.Context(), domain.Eq(domain.CampaignUserEmail, email))
	if err != nil {
		a.fail(w, r, err, "Failed to fetch campaigns for this email.")
		return
	}
	a.list(w, docs)
}
