package httpapi

import (
	"net/http"

	"github.com/dwizi/dandi/internal/store"
)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (r *router) handleContact(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if !r.contact.allow(clientAddress(req)) {
		r.metrics.rateLimited.Inc()
		r.deps.Logger.Warn("contact rate limited", "client", clientAddress(req))
		writeError(w, http.StatusTooManyRequests, "too many requests")
		return
	}
	var payload contactRequest
	if !decodeJSON(w, req, &payload) {
		return
	}
	message, err := r.deps.Store.CreateContactMessage(req.Context(), store.CreateContactInput{
		Name:    payload.Name,
		Email:   payload.Email,
		Message: payload.Message,
	})
	if err != nil {
		r.writeStoreError(w, "create contact message", err)
		return
	}
	r.deps.Logger.Info("contact message received", "message_id", message.ID)
	writeJSON(w, http.StatusAccepted, map[string]string{"id": message.ID, "status": "accepted"})
}
