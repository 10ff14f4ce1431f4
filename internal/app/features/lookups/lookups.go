// internal/app/features/lookups/lookups.go
package lookups

import (
	"context"
	"errors"
	"net/http"

	"github.com/seedscope/seedscope/internal/app/features/shared"
	lookupstore "github.com/seedscope/seedscope/internal/app/store/lookups"
	"github.com/seedscope/seedscope/internal/app/system/timeouts"
	"github.com/seedscope/seedscope/internal/app/system/webjson"
	"github.com/seedscope/seedscope/internal/domain/models"
	"go.uber.org/zap"
)

type writeRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// List handles GET /{table}. Taxonomy tables are returned whole, no
// pagination.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	s, ok := h.tableStore(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	rows, err := s.GetAll(ctx)
	if err != nil {
		h.Log.Error("lookups: list failed", zap.Error(err))
		webjson.FromErr(w, err)
		return
	}
	if rows == nil {
		rows = []models.Lookup{}
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
	l, err := s.GetByID(ctx, id)
	if err != nil {
		webjson.FromErr(w, err)
		return
	}
	webjson.Write(w, http.StatusOK, l)
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

	created, err := s.Create(ctx, models.Lookup{Name: req.Name, Description: req.Description})
	if err != nil {
		if errors.Is(err, lookupstore.ErrDuplicateName) {
			webjson.Error(w, http.StatusConflict, err.Error())
			return
		}
		h.Log.Error("lookups: create failed", zap.Error(err))
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

	l, err := s.Update(ctx, id, req.Name, req.Description)
	if err != nil {
		if errors.Is(err, lookupstore.ErrDuplicateName) {
			webjson.Error(w, http.StatusConflict, err.Error())
			return
		}
		webjson.FromErr(w, err)
		return
	}
	webjson.Write(w, http.StatusOK, l)
}

// Delete handles DELETE /{table}/{id}. Records referencing the deleted
// entry keep their dangling ids; populate drops them on read.
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
		h.Log.Error("lookups: delete failed", zap.Error(err))
		webjson.FromErr(w, err)
		return
	}
	if !deleted {
		webjson.Error(w, http.StatusNotFound, "not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
