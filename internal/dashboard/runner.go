package dashboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dwizi/dandi/internal/clipboard"
	"github.com/dwizi/dandi/internal/keyclient"
)

var (
	ErrNoClipboard = errors.New("clipboard is not configured")
	ErrNoContact   = errors.New("contact delivery is not configured")
)

// KeyStore is the part of the key client the dashboard drives.
type KeyStore interface {
	List(ctx context.Context) ([]keyclient.APIKey, error)
	Create(ctx context.Context, draft keyclient.Draft) (keyclient.APIKey, error)
	Update(ctx context.Context, id keyclient.KeyID, draft keyclient.Draft) (keyclient.APIKey, error)
	Delete(ctx context.Context, id keyclient.KeyID) error
}

// ContactSender is implemented by stores that can deliver the contact form.
type ContactSender interface {
	SendContact(ctx context.Context, message keyclient.ContactMessage) error
}

// Runner performs effects against the key store and the clipboard.
type Runner struct {
	Store     KeyStore
	Clipboard clipboard.Writer
	Logger    *slog.Logger
}

// Run executes effect and returns its completion. Failures are carried in
// the returned action, never as a panic or error return.
func (r Runner) Run(ctx context.Context, effect Effect) Action {
	logger := r.logger()
	switch e := effect.(type) {
	case FetchKeys:
		keys, err := r.Store.List(ctx)
		if err != nil {
			logger.Warn("list keys failed", "error", err)
		}
		return KeysLoaded{Keys: keys, Err: err}
	case CreateKey:
		key, err := r.Store.Create(ctx, e.Draft)
		if err != nil {
			logger.Warn("create key failed", "error", err)
		} else {
			logger.Info("key created", "key_id", key.ID)
		}
		return KeyCreated{Key: key, Err: err}
	case UpdateKey:
		key, err := r.Store.Update(ctx, e.ID, e.Draft)
		if err != nil {
			logger.Warn("update key failed", "key_id", e.ID, "error", err)
		} else {
			logger.Info("key updated", "key_id", e.ID)
		}
		return KeyUpdated{ID: e.ID, Key: key, Err: err}
	case DeleteKey:
		err := r.Store.Delete(ctx, e.ID)
		if err != nil {
			logger.Warn("delete key failed", "key_id", e.ID, "error", err)
		} else {
			logger.Info("key deleted", "key_id", e.ID)
		}
		return KeyDeleted{ID: e.ID, Err: err}
	case CopyText:
		if r.Clipboard == nil {
			return Copied{Err: ErrNoClipboard}
		}
		err := r.Clipboard.WriteText(e.Value)
		if err != nil {
			logger.Warn("clipboard write failed", "error", err)
		}
		return Copied{Err: err}
	case DeliverContact:
		sender, ok := r.Store.(ContactSender)
		if !ok {
			return ContactSent{Err: ErrNoContact}
		}
		err := sender.SendContact(ctx, e.Message)
		if err != nil {
			logger.Warn("contact delivery failed", "error", err)
		}
		return ContactSent{Err: err}
	default:
		panic(fmt.Sprintf("dashboard: unknown effect %T", effect))
	}
}

func (r Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r.Logger
}
