// internal/app/features/companies/related.go
package companies

import (
	"context"
	"net/http"

	"github.com/seedscope/seedscope/internal/app/features/shared"
	"github.com/seedscope/seedscope/internal/app/system/paging"
	"github.com/seedscope/seedscope/internal/app/system/timeouts"
	"github.com/seedscope/seedscope/internal/app/system/webjson"
	"github.com/seedscope/seedscope/internal/domain/models"
	"go.uber.org/zap"
)

// RelatedCompanies handles GET /companies/{id}/related: companies
// sharing at least one category with this one, never including it.
func (h *Handler) RelatedCompanies(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	id, err := shared.URLID(r)
	if err != nil {
		webjson.FromErr(w, err)
		return
	}
	p := paging.Parse(r)

	rows, totalPages, err := h.Related.RelatedCompanies(ctx, id, p)
	if err != nil {
		h.Log.Error("companies: related query failed", zap.String("id", id.Hex()), zap.Error(err))
		webjson.FromErr(w, err)
		return
	}

	webjson.Write(w, http.StatusOK, shared.ListResponse[models.CompanyDetail]{
		Data:       h.Populate.Companies(ctx, rows),
		Page:       p.Page,
		TotalPages: totalPages,
	})
}

// RelatedInvestors handles GET /companies/{id}/investors: investors
// whose categories intersect the company's.
func (h *Handler) RelatedInvestors(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	id, err := shared.URLID(r)
	if err != nil {
		webjson.FromErr(w, err)
		return
	}
	p := paging.Parse(r)

	rows, totalPages, err := h.Related.InvestorsForCompany(ctx, id, p)
	if err != nil {
		h.Log.Error("companies: investor match query failed", zap.String("id", id.Hex()), zap.Error(err))
		webjson.FromErr(w, err)
		return
	}

	webjson.Write(w, http.StatusOK, shared.ListResponse[models.Investor]{
		Data:       rows,
		Page:       p.Page,
		TotalPages: totalPages,
	})
}
