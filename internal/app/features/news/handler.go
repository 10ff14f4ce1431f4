// internal/app/features/news/handler.go

// Package news proxies startup-funding headlines from the upstream
// news API. This is a pure read-through; outages surface as 502.
package news

import (
	"context"
	"net/http"
	"strconv"

	"github.com/seedscope/seedscope/internal/app/system/newsclient"
	"github.com/seedscope/seedscope/internal/app/system/timeouts"
	"github.com/seedscope/seedscope/internal/app/system/webjson"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler owns the news handlers.
type Handler struct {
	Client *newsclient.Client
	Log    *zap.Logger
}

// NewHandler constructs a news Handler.
func NewHandler(client *newsclient.Client, logger *zap.Logger) *Handler {
	return &Handler{Client: client, Log: logger}
}

// MountRoutes mounts the news routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.Headlines)
}

// Headlines handles GET /news. The query defaults to startup funding
// coverage when the caller does not narrow it.
func (h *Handler) Headlines(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	q := query.Search(r, "q")
	if q == "" {
		q = "startup funding"
	}
	limit := 0
	if s := query.Get(r, "limit"); s != "" {
		limit, _ = strconv.Atoi(s)
	}

	articles, err := h.Client.Headlines(ctx, q, limit)
	if err != nil {
		h.Log.Warn("news: headlines fetch failed", zap.Error(err))
		webjson.FromErr(w, err)
		return
	}
	webjson.Write(w, http.StatusOK, map[string]any{"articles": articles})
}
