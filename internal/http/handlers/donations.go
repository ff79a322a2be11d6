package handlers

import (
	"errors"
	"net/http"

	"crowdcube/internal/domain"
)

// DonatedList serves GET /donated. It has always listed the users
// collection and clients depend on that, so it is kept as is.
func (a *App) DonatedList(w http.ResponseWriter, r *http.Request) {
	a.UsersList(w, r)
}

func (a *App) DonationsCreate(w http.ResponseWriter, r *http.Request) {
	doc, err := a.decodeDocument(w, r)
	if errors.Is(err, errNotObject) {
		// a non-object body carries neither required field
		doc, err = domain.Document{}, nil
	}
	if err != nil {
		a.fail(w, r, err, "Failed to process the donation.")
		return
	}
	if err := domain.ValidateDonation(doc); err != nil {
		a.fail(w, r, err, "Failed to process the donation.")
		return
	}
	res, err := a.donations().InsertOne(r.Context(), doc)
	if err != nil {
		a.fail(w, r, err, "Failed to process the donation.")
		return
	}
	a.json(w, http.StatusCreated, res)
}

// DonationsByDonor lists the donations made by ?email=.
func (a *App) DonationsByDonor(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		a.fail(w, r, domain.Invalid("Email is required."), "Failed to fetch donations.")
		return
	}
	docs, err := a.donations().Find(r.Context(), domain.Eq(domain.DonorEmail, email))
	if err != nil {
		a.fail(w, r, err, "Failed to fetch donations.")
		return
	}
	a.list(w, docs)
}
