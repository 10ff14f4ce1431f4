// internal/app/features/ranges/ranges.go
package ranges

import (
	"context"
	"net/http"

	"github.com/seedscope/seedscope/internal/app/features/shared"
	"github.com/seedscope/seedscope/internal/app/system/timeouts"
	"github.com/seedscope/seedscope/internal/app/system/webjson"
	"github.com/seedscope/seedscope/internal/domain/models"
	"go.uber.org/zap"
)

type writeRequest struct {
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Description string  `json:"description"`
}

// List handles GET /{table}, sorted ascending by lower bound.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	s, ok := h.tableStore(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	rows, err := s.GetAll(ctx)
	if err != nil {
		h.Log.Error("ranges: list failed", zap.Error(err))
		webjson.FromErr(w, err)
		return
	}
	if rows == nil {
		rows = []models.RangeEntry{}
	}
	webjson.Write(w, http.StatusOK, rows)
}

// Show handles GET /{table}/{id}.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	s, ok := h.tableStore(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, err := shared.URLID(r)
	if err != nil {
		webjson.FromErr(w, err)
		return
	}
	e, err := s.GetByID(ctx, id)
	if err != nil {
		webjson.FromErr(w, err)
		return
	}
	webjson.Write(w, http.StatusOK, e)
}

// Create handles POST /{table}.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	s, ok := h.tableStore(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	var req writeRequest
	if err := webjson.Decode(r, &req); err != nil {
		webjson.Error(w, http.StatusBadRequest, "malformed request body")
		return
	}

	created, err := s.Create(ctx, models.RangeEntry{Min: req.Min, Max: req.Max, Description: req.Description})
	if err != nil {
		webjson.FromErr(w, err)
		return
	}
	webjson.Write(w, http.StatusCreated, created)
}

// Update handles PUT /{table}/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	s, ok := h.tableStore(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, err := shared.URLID(r)
	if err != nil {
		webjson.FromErr(w, err)
		return
	}
	var req writeRequest
	if err := webjson.Decode(r, &req); err != nil {
		webjson.Error(w, http.StatusBadRequest, "malformed request body")
		return
	}

	e, err := s.Update(ctx, id, req.Min, req.Max, req.Description)
	if err != nil {
		webjson.FromErr(w, err)
		return
	}
	webjson.Write(w, http.StatusOK, e)
}

// Delete handles DELETE /{table}/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	s, ok := h.tableStore(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, err := shared.URLID(r)
	if err != nil {
		webjson.FromErr(w, err)
		return
	}
	deleted, err := s.Delete(ctx, id)
	if err != nil {
		h.Log.Error("ranges: delete failed", zap.Error(err))
		webjson.FromErr(w, err)
		return
	}
	if !deleted {
		webjson.Error(w, http.StatusNotFound, "not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
