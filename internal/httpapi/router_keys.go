package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dwizi/dandi/internal/store"
)

type keyResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Value         string `json:"value"`
	Usage         int64  `json:"usage"`
	CreatedAtUnix int64  `json:"created_at_unix"`
	UpdatedAtUnix int64  `json:"updated_at_unix"`
}

type createKeyRequest struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Usage *int64 `json:"usage"`
}

type replaceKeyRequest struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Usage int64  `json:"usage"`
}

type patchKeyRequest struct {
	Name  *string `json:"name"`
	Value *string `json:"value"`
	Usage *int64  `json:"usage"`
}

func (r *router) handleKeys(w http.ResponseWriter, req *http.Request) {
	switch req.Method {
	case http.MethodGet:
		r.handleKeysList(w, req)
	case http.MethodPost:
		r.handleKeysCreate(w, req)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (r *router) handleKey(w http.ResponseWriter, req *http.Request) {
	id := strings.TrimSpace(req.PathValue("id"))
	if id == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}
	switch req.Method {
	case http.MethodGet:
		key, err := r.deps.Store.LookupKey(req.Context(), id)
		if err != nil {
			r.writeStoreError(w, "lookup key", err)
			return
		}
		writeJSON(w, http.StatusOK, keyToResponse(key))
	case http.MethodPut:
		r.handleKeyReplace(w, req, id)
	case http.MethodPatch:
		r.handleKeyPatch(w, req, id)
	case http.MethodDelete:
		if err := r.deps.Store.DeleteKey(req.Context(), id); err != nil {
			r.writeStoreError(w, "delete key", err)
			return
		}
		r.deps.Logger.Info("api key deleted", "key_id", id)
		w.WriteHeader(http.StatusNoContent)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (r *router) handleKeysList(w http.ResponseWriter, req *http.Request) {
	keys, err := r.deps.Store.ListKeys(req.Context())
	if err != nil {
		r.writeStoreError(w, "list keys", err)
		return
	}
	items := make([]keyResponse, 0, len(keys))
	for _, key := range keys {
		items = append(items, keyToResponse(key))
	}
	writeJSON(w, http.StatusOK, items)
}

func (r *router) handleKeysCreate(w http.ResponseWriter, req *http.Request) {
	var payload createKeyRequest
	if !decodeJSON(w, req, &payload) {
		return
	}
	if strings.TrimSpace(payload.Name) == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	usage := int64(0)
	if payload.Usage != nil {
		usage = *payload.Usage
	}
	if usage < 0 {
		writeError(w, http.StatusBadRequest, "usage must be a non-negative integer")
		return
	}
	key, err := r.deps.Store.CreateKey(req.Context(), store.CreateKeyInput{
		Name:   payload.Name,
		Value:  payload.Value,
		Usage:  usage,
		Prefix: r.deps.Config.KeyPrefix,
	})
	if err != nil {
		r.writeStoreError(w, "create key", err)
		return
	}
	r.deps.Logger.Info("api key created", "key_id", key.ID, "generated", strings.TrimSpace(payload.Value) == "")
	writeJSON(w, http.StatusCreated, keyToResponse(key))
}

func (r *router) handleKeyReplace(w http.ResponseWriter, req *http.Request, id string) {
	var payload replaceKeyRequest
	if !decodeJSON(w, req, &payload) {
		return
	}
	if strings.TrimSpace(payload.Name) == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if payload.Usage < 0 {
		writeError(w, http.StatusBadRequest, "usage must be a non-negative integer")
		return
	}
	key, err := r.deps.Store.ReplaceKey(req.Context(), store.ReplaceKeyInput{
		ID:    id,
		Name:  payload.Name,
		Value: payload.Value,
		Usage: payload.Usage,
	})
	if err != nil {
		r.writeStoreError(w, "replace key", err)
		return
	}
	r.deps.Logger.Info("api key updated", "key_id", key.ID)
	writeJSON(w, http.StatusOK, keyToResponse(key))
}

func (r *router) handleKeyPatch(w http.ResponseWriter, req *http.Request, id string) {
	var payload patchKeyRequest
	if !decodeJSON(w, req, &payload) {
		return
	}
	key, err := r.deps.Store.PatchKey(req.Context(), store.PatchKeyInput{
		ID:    id,
		Name:  payload.Name,
		Value: payload.Value,
		Usage: payload.Usage,
	})
	if err != nil {
		r.writeStoreError(w, "patch key", err)
		return
	}
	r.deps.Logger.Info("api key patched", "key_id", key.ID)
	writeJSON(w, http.StatusOK, keyToResponse(key))
}

func (r *router) writeStoreError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, store.ErrKeyNotFound):
		writeError(w, http.StatusNotFound, store.ErrKeyNotFound.Error())
	case errors.Is(err, store.ErrKeyInvalid):
		writeError(w, http.StatusBadRequest, "name is required and usage must be a non-negative integer")
	case errors.Is(err, store.ErrContactInvalid):
		writeError(w, http.StatusBadRequest, "name, a valid email and message are required")
	default:
		r.deps.Logger.Error("store operation failed", "op", op, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func keyToResponse(key store.APIKey) keyResponse {
	return keyResponse{
		ID:            key.ID,
		Name:          key.Name,
		Value:         key.Value,
		Usage:         key.Usage,
		CreatedAtUnix: key.CreatedAt.Unix(),
		UpdatedAtUnix: key.UpdatedAt.Unix(),
	}
}
