// internal/app/features/webhooks/userevent.go
package webhooks

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/seedscope/seedscope/internal/app/system/apperr"
	"github.com/seedscope/seedscope/internal/app/system/timeouts"
	"github.com/seedscope/seedscope/internal/app/system/webjson"
	"go.uber.org/zap"
)

// userEvent is the provider's payload shape.
type userEvent struct {
	Event string `json:"event"` // user.created | user.updated | user.deleted
	Data  struct {
		ID       string `json:"id"`
		Email    string `json:"email"`
		FullName string `json:"full_name"`
		Role     string `json:"role"`
	} `json:"data"`
}

// UserEvent handles POST /webhooks/users. Created and updated events
// upsert the mirrored account; deleted events deactivate it. Webhook
// writes propagate errors, they never degrade silently.
func (h *Handler) UserEvent(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	body, err := readBody(r)
	if err != nil {
		webjson.Error(w, http.StatusBadRequest, "unreadable body")
		return
	}
	if !h.verify(r, body) {
		h.Log.Warn("webhooks: bad signature", zap.String("remote", r.RemoteAddr))
		webjson.Error(w, http.StatusUnauthorized, "invalid signature")
		return
	}

	var ev userEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		webjson.Error(w, http.StatusBadRequest, "malformed payload")
		return
	}

	switch ev.Event {
	case "user.created", "user.updated":
		if _, err := h.Users.UpsertExternal(ctx, ev.Data.ID, ev.Data.Email, ev.Data.FullName, ev.Data.Role); err != nil {
			h.Log.Error("webhooks: upsert failed", zap.String("external_id", ev.Data.ID), zap.Error(err))
			webjson.FromErr(w, err)
			return
		}
	case "user.deleted":
		if err := h.Users.DeactivateExternal(ctx, ev.Data.ID); err != nil {
			if apperr.IsNotFound(err) {
				// Delete for an account we never saw: acknowledge so the
				// provider stops retrying.
				webjson.Write(w, http.StatusOK, map[string]string{"status": "ignored"})
				return
			}
			h.Log.Error("webhooks: deactivate failed", zap.String("external_id", ev.Data.ID), zap.Error(err))
			webjson.FromErr(w, err)
			return
		}
	default:
		webjson.Error(w, http.StatusBadRequest, "unknown event type")
		return
	}

	webjson.Write(w, http.StatusOK, map[string]string{"status": "ok"})
}
