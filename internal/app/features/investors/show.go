// internal/app/features/investors/show.go
package investors

import (
	"context"
	"net/http"

	"github.com/seedscope/seedscope/internal/app/features/shared"
	"github.com/seedscope/seedscope/internal/app/system/timeouts"
	"github.com/seedscope/seedscope/internal/app/system/webjson"
)

// Show handles GET /investors/{id}. The store probes the individual
// collection first, then institutions; 404 only when both miss.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, err := shared.URLID(r)
	if err != nil {
		webjson.FromErr(w, err)
		return
	}

	inv, err := h.Store.GetByID(ctx, id)
	if err != nil {
		webjson.FromErr(w, err)
		return
	}
	webjson.Write(w, http.StatusOK, h.Populate.Investor(ctx, inv))
}
