// internal/app/features/companies/list.go
package companies

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

// List handles GET /companies. Every row in the page is returned
// populated; one lookup batch per reference field covers the whole
// page.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	p := paging.Parse(r)
	search := query.Search(r, "q")

	rows, totalPages, err := h.Store.List(ctx, p, search)
	if err != nil {
		h.Log.Error("companies: list failed", zap.Error(err))
		webjson.FromErr(w, err)
		return
	}

	webjson.Write(w, http.StatusOK, shared.ListResponse[models.CompanyDetail]{
		Data:       h.Populate.Companies(ctx, rows),
		Page:       p.Page,
		TotalPages: totalPages,
	})
}
