package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"crowdcube/internal/domain"
)

const maxBodyBytes = 1 << 20

// App carries the dependencies shared by every handler. It holds no per
// request state.
type App struct {
	Store  domain.Store
	Logger zerolog.Logger
}

func NewApp(store domain.Store, logger zerolog.Logger) *App {
	return &App{Store: store, Logger: logger}
}

func (a *App) campaigns() domain.Collection { return a.Store.Collection(domain.CollectionCampaigns) }

func (a *App) users() domain.Collection { return a.Store.Collection(domain.CollectionUsers) }

func (a *App) donations() domain.Collection { return a.Store.Collection(domain.CollectionDonations) }

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// list writes docs as a JSON array, never null.
func (a *App) list(w http.ResponseWriter, docs []domain.Document) {
	if docs == nil {
		docs = []domain.Document{}
	}
	a.json(w, http.StatusOK, docs)
}

// decodeDocument reads the request body as a JSON object. An empty body or
// null decodes to an empty document; numbers keep their literal form. Valid
// JSON that is not an object fails with errNotObject.
func (a *App) decodeDocument(w http.ResponseWriter, r *http.Request) (domain.Document, error) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Document{}, nil
		}
		return nil, errInvalidBody
	}
	if dec.More() {
		return nil, errInvalidBody
	}
	raw = bytes.TrimSpace(raw)
	if bytes.Equal(raw, []byte("null")) {
		return domain.Document{}, nil
	}
	if len(raw) == 0 || raw[0] != '{' {
		return nil, errNotObject
	}

	docDec := json.NewDecoder(bytes.NewReader(raw))
	docDec.UseNumber()
	doc := domain.Document{}
	if err := docDec.Decode(&doc); err != nil {
		return nil, errInvalidBody
	}
	return doc, nil
}

// logger prefers the request scoped logger installed by the logging middleware.
func (a *App) logger(r *http.Request) *zerolog.Logger {
	if l := zerolog.Ctx(r.Context()); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &a.Logger
}
