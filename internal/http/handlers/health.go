package handlers

import (
	"context"
	"net/http"
	"time"
)

func (a *App) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("CrowdCube server running..."))
}

// Health pings the store; it answers 503 when the store is unreachable.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := a.Store.Ping(ctx); err != nil {
		a.logger(r).Error().Err(err).Msg("store ping failed")
		a.error(w, http.StatusServiceUnavailable, "Database unavailable.")
		return
	}
	a.json(w, http.StatusOK, map[string]string{"status": "ok"})
}
