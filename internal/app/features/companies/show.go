// internal/app/features/companies/show.go
package companies

import (
	"context"
	"net/http"

	"github.com/seedscope/seedscope/internal/app/features/shared"
	"github.com/seedscope/seedscope/internal/app/system/timeouts"
	"github.com/seedscope/seedscope/internal/app/system/webjson"
)

// Show handles GET /companies/{id}, returning the populated detail
// view.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, err := shared.URLID(r)
	if err != nil {
		webjson.FromErr(w, err)
		return
	}

	co, err := h.Store.GetByID(ctx, id)
	if err != nil {
		webjson.FromErr(w, err)
		return
	}
	webjson.Write(w, http.StatusOK, h.Populate.Company(ctx, co))
}
