// internal/app/features/investors/list.go
package investors

import (
	"context"
	"net/http"

	"github.com/seedscope/seedscope/internal/app/features/shared"
	"github.com/seedscope/seedscope/internal/app/system/paging"
	"github.com/seedscope/seedscope/internal/app/system/timeouts"
	"github.com/seedscope/seedscope/internal/app/system/webjson"
	"github.com/seedscope/seedscope/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"
)

// List handles GET /investors, the union listing over both investor
// collections. In the legacy page shape a full page can hold up to
// twice the requested limit.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	p := paging.Parse(r)
	search := query.Search(r, "q")

	rows, totalPages, err := h.Store.ListAll(ctx, p, search)
	if err != nil {
		h.Log.Error("investors: list failed", zap.Error(err))
		webjson.FromErr(w, err)
		return
	}

	webjson.Write(w, http.StatusOK, shared.ListResponse[models.InvestorDetail]{
		Data:       h.Populate.Investors(ctx, rows),
		Page:       p.Page,
		TotalPages: totalPages,
	})
}

func (h *Handler) listByType(w http.ResponseWriter, r *http.Request, investorType string) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	p := paging.Parse(r)
	search := query.Search(r, "q")

	rows, totalPages, err := h.Store.ListByType(ctx, investorType, p, search)
	if err != nil {
		h.Log.Error("investors: typed list failed", zap.String("type", investorType), zap.Error(err))
		webjson.FromErr(w, err)
		return
	}

	webjson.Write(w, http.StatusOK, shared.ListResponse[models.InvestorDetail]{
		Data:       h.Populate.Investors(ctx, rows),
		Page:       p.Page,
		TotalPages: totalPages,
	})
}

// ListIndividuals handles GET /investors/individuals.
func (h *Handler) ListIndividuals(w http.ResponseWriter, r *http.Request) {
	h.listByType(w, r, models.InvestorTypeIndividual)
}

// ListInstitutions handles GET /investors/institutions.
func (h *Handler) ListInstitutions(w http.ResponseWriter, r *http.Request) {
	h.listByType(w, r, models.InvestorTypeInstitution)
}
