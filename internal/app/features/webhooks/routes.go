// internal/app/features/webhooks/routes.go
package webhooks

import "github.com/go-chi/chi/v5"

// MountRoutes mounts the webhook ingestion endpoint. Auth is the HMAC
// signature, not a session.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/users", h.UserEvent)
}
