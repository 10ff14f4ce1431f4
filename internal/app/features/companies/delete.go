// internal/app/features/companies/delete.go
package companies

import (
	"context"
	"net/http"

	"github.com/seedscope/seedscope/internal/app/features/shared"
	"github.com/seedscope/seedscope/internal/app/system/authz"
	"github.com/seedscope/seedscope/internal/app/system/timeouts"
	"github.com/seedscope/seedscope/internal/app/system/webjson"
)

// Delete handles DELETE /companies/{id} with the same ownership rule
// as Update. People attached to the company are not cascaded; they
// stay as orphans.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, err := shared.URLID(r)
	if err != nil {
		webjson.FromErr(w, err)
		return
	}

	if err := h.Store.Delete(ctx, id, authz.CallerID(r), authz.IsAdmin(r)); err != nil {
		webjson.FromErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
