package handlers

import (
	"net/http"

	"crowdcube/internal/domain"
)

func (a *App) UsersList(w http.ResponseWriter, r *http.Request) {
	docs, err := a.users().Find(r.Context(), domain.Filter{})
	if err != nil {
		a.fail(w, r, err, "Failed to fetch users.")
		return
	}
	a.list(w, docs)
}

func (a *App) UsersCreate(w http.ResponseWriter, r *http.Request) {
	doc, err := a.decodeDocument(w, r)
	if err != nil {
		a.fail(w, r, err, "Failed to create the user.")
		return
	}
	a.logger(r).Debug().Interface("user", doc).Msg("creating new user")
	res, err := a.users().InsertOne(r.Context(), doc)
	if err != nil {
		a.fail(w, r, err, "Failed to create the user.")
		return
	}
	a.json(w, http.StatusOK, res)
}
