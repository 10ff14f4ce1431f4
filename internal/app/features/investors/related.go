// internal/app/features/investors/related.go
package investors

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

// RelatedInvestors handles GET /investors/{id}/related: investors
// sharing at least one category with this one, excluding it.
func (h *Handler) RelatedInvestors(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	id, err := shared.URLID(r)
	if err != nil {
		webjson.FromErr(w, err)
		return
	}
	p := paging.Parse(r)

	rows, totalPages, err := h.Related.RelatedInvestors(ctx, id, p)
	if err != nil {
		h.Log.Error("investors: related query failed", zap.String("id", id.Hex()), zap.Error(err))
		webjson.FromErr(w, err)
		return
	}

	webjson.Write(w, http.StatusOK, shared.ListResponse[models.Investor]{
		Data:       rows,
		Page:       p.Page,
		TotalPages: totalPages,
	})
}
