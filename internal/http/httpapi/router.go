package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"crowdcube/internal/http/handlers"
	"crowdcube/internal/middleware"
)

// NewRouter mounts every API route on a chi router. allowedOrigins feeds the
// CORS policy.
func NewRouter(app *handlers.App, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		middleware.Logger(app.Logger),
		chimw.Recoverer,
		middleware.CORS(allowedOrigins),
	)

	r.Get("/", app.Root)
	r.Get("/v1/healthz", app.Health)

	r.Route("/campaign", func(r chi.Router) {
		r.Get("/", app.CampaignsList)
		r.Post("/", app.CampaignsCreate)
		r.Get("/email/{email}", app.CampaignsByEmail)
		r.Get("/{id}", app.CampaignsGet)
		r.Put("/{id}", app.CampaignsUpdate)
		r.Delete("/{id}", app.CampaignsDelete)
	})

	r.Route("/users", func(r chi.Router) {
		r.Get("/", app.UsersList)
		r.Post("/", app.UsersCreate)
	})

	r.Route("/donated", func(r chi.Router) {
		r.Get("/", app.DonatedList)
		r.Post("/", app.DonationsCreate)
	})

	r.Get("/donations", app.DonationsByDonor)

	return r
}
