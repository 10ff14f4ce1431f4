// internal/app/features/grants/grants.go
package grants

import (
	"context"
	"net/http"
	"time"

	"github.com/seedscope/seedscope/internal/app/features/shared"
	grantstore "github.com/seedscope/seedscope/internal/app/store/grants"
	"github.com/seedscope/seedscope/internal/app/system/apperr"
	"github.com/seedscope/seedscope/internal/app/system/htmlsanitize"
	"github.com/seedscope/seedscope/internal/app/system/inputval"
	"github.com/seedscope/seedscope/internal/app/system/paging"
	"github.com/seedscope/seedscope/internal/app/system/timeouts"
	"github.com/seedscope/seedscope/internal/app/system/webjson"
	"github.com/seedscope/seedscope/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"
)

// List handles GET /grants.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	p := paging.Parse(r)
	rows, totalPages, err := h.Store.List(ctx, p, query.Search(r, "q"))
	if err != nil {
		h.Log.Error("grants: list failed", zap.Error(err))
		webjson.FromErr(w, err)
		return
	}
	if rows == nil {
		rows = []models.Grant{}
	}
	webjson.Write(w, http.StatusOK, shared.ListResponse[models.Grant]{
		Data:       rows,
		Page:       p.Page,
		TotalPages: totalPages,
	})
}

// Show handles GET /grants/{id}.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, err := shared.URLID(r)
	if err != nil {
		webjson.FromErr(w, err)
		return
	}
	g, err := h.Store.GetByID(ctx, id)
	if err != nil {
		webjson.FromErr(w, err)
		return
	}
	webjson.Write(w, http.StatusOK, g)
}

type createRequest struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	AwardingOrg  string     `json:"awarding_org"`
	OrgURL       string     `json:"org_url"`
	Amount       float64    `json:"amount"`
	Eligibility  string     `json:"eligibility"`
	Duration     string     `json:"duration"`
	ExpiringDate *time.Time `json:"expiring_date"`
}

// Create handles POST /grants.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	var req createRequest
	if err := webjson.Decode(r, &req); err != nil {
		webjson.Error(w, http.StatusBadRequest, "malformed request body")
		return
	}

	var v inputval.Result
	v.Require(req.Title, "Title")
	v.MaxLen(req.Title, 300, "Title")
	v.NonNegative(req.Amount, "Amount")
	if v.HasErrors() {
		webjson.FromErr(w, apperr.Validation(v.First()))
		return
	}

	created, err := h.Store.Create(ctx, models.Grant{
		Title:        req.Title,
		Description:  htmlsanitize.Sanitize(req.Description),
		AwardingOrg:  req.AwardingOrg,
		OrgURL:       req.OrgURL,
		Amount:       req.Amount,
		Eligibility:  req.Eligibility,
		Duration:     req.Duration,
		ExpiringDate: req.ExpiringDate,
	})
	if err != nil {
		h.Log.Error("grants: create failed", zap.Error(err))
		webjson.FromErr(w, err)
		return
	}
	webjson.Write(w, http.StatusCreated, created)
}

type updateRequest struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	AwardingOrg  *string    `json:"awarding_org"`
	OrgURL       *string    `json:"org_url"`
	Amount       *float64   `json:"amount"`
	Eligibility  *string    `json:"eligibility"`
	Duration     *string    `json:"duration"`
	ExpiringDate *time.Time `json:"expiring_date"`
}

// Update handles PUT /grants/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, err := shared.URLID(r)
	if err != nil {
		webjson.FromErr(w, err)
		return
	}
	var req updateRequest
	if err := webjson.Decode(r, &req); err != nil {
		webjson.Error(w, http.StatusBadRequest, "malformed request body")
		return
	}

	upd := grantstore.GrantUpdate{
		Title:        req.Title,
		AwardingOrg:  req.AwardingOrg,
		OrgURL:       req.OrgURL,
		Amount:       req.Amount,
		Eligibility:  req.Eligibility,
		Duration:     req.Duration,
		ExpiringDate: req.ExpiringDate,
	}
	if req.Description != nil {
		clean := htmlsanitize.Sanitize(*req.Description)
		upd.Description = &clean
	}

	g, err := h.Store.Update(ctx, id, upd)
	if err != nil {
		webjson.FromErr(w, err)
		return
	}
	webjson.Write(w, http.StatusOK, g)
}

// Delete handles DELETE /grants/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, err := shared.URLID(r)
	if err != nil {
		webjson.FromErr(w, err)
		return
	}
	deleted, err := h.Store.Delete(ctx, id)
	if err != nil {
		h.Log.Error("grants: delete failed", zap.Error(err))
		webjson.FromErr(w, err)
		return
	}
	if !deleted {
		webjson.Error(w, http.StatusNotFound, "not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
