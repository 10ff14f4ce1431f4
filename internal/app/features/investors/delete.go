// internal/app/features/investors/delete.go
package investors

import (
	"context"
	"net/http"

	"github.com/seedscope/seedscope/internal/app/features/shared"
	"github.com/seedscope/seedscope/internal/app/system/authz"
	"github.com/seedscope/seedscope/internal/app/system/timeouts"
	"github.com/seedscope/seedscope/internal/app/system/webjson"
)

// Delete handles DELETE /investors/{id}. Removes both the typed record
// and its base mirror.
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
