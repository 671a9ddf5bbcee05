package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dwizi/dandi/internal/clipboard"
	"github.com/dwizi/dandi/internal/keyclient"
)

type fakeStore struct {
	keys      []keyclient.APIKey
	nextID    int
	deleteErr error
	listErr   error
	calls     []string
	contacts  []keyclient.ContactMessage
}

func (f *fakeStore) List(ctx context.Context) ([]keyclient.APIKey, error) {
	f.calls = append(f.calls, "list")
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]keyclient.APIKey(nil), f.keys...), nil
}

func (f *fakeStore) Create(ctx context.Context, draft keyclient.Draft) (keyclient.APIKey, error) {
	f.calls = append(f.calls, "create")
	f.nextID++
	value := draft.Value
	if value == "" {
		value = fmt.Sprintf("dandi-generated-%d", f.nextID)
	}
	key := keyclient.APIKey{ID: keyclient.KeyID(fmt.Sprintf("new-%d", f.nextID)), Name: draft.Name, Value: value, Usage: draft.Usage}
	f.keys = append([]keyclient.APIKey{key}, f.keys...)
	return key, nil
}

func (f *fakeStore) Update(ctx context.Context, id keyclient.KeyID, draft keyclient.Draft) (keyclient.APIKey, error) {
	f.calls = append(f.calls, "update")
	for index, key := range f.keys {
		if key.ID == id {
			f.keys[index] = keyclient.APIKey{ID: id, Name: draft.Name, Value: draft.Value, Usage: draft.Usage}
			return f.keys[index], nil
		}
	}
	return keyclient.APIKey{}, &keyclient.APIError{StatusCode: 404, Message: "api key not found"}
}

func (f *fakeStore) Delete(ctx context.Context, id keyclient.KeyID) error {
	f.calls = append(f.calls, "delete")
	return f.deleteErr
}

func (f *fakeStore) SendContact(ctx context.Context, message keyclient.ContactMessage) error {
	f.contacts = append(f.contacts, message)
	return nil
}

func TestControllerInitialLoadShowsMaskedRow(t *testing.T) {
	store := &fakeStore{keys: []keyclient.APIKey{{ID: "1", Name: "prod", Value: "sk-abc123", Usage: 42}}}
	controller := NewController(Runner{Store: store})

	state := controller.Dispatch(context.Background(), Mount{})
	if state.Loading {
		t.Fatal("expected loading finished")
	}
	if len(state.Keys) != 1 {
		t.Fatalf("expected one key, got %d", len(state.Keys))
	}
	if got := state.DisplayValue(state.Keys[0]); got != "*********" {
		t.Fatalf("expected nine-char mask, got %q", got)
	}
	if state.Keys[0].Usage != 42 {
		t.Fatalf("expected usage 42, got %d", state.Keys[0].Usage)
	}
}

func TestControllerCreateAutoGeneratesValue(t *testing.T) {
	store := &fakeStore{keys: []keyclient.APIKey{{ID: "1", Name: "prod", Value: "sk-abc123", Usage: 42}}}
	controller := NewController(Runner{Store: store})
	ctx := context.Background()
	controller.Dispatch(ctx, Mount{})
	controller.Dispatch(ctx, OpenCreate{})
	controller.Dispatch(ctx, ChangeField{Field: FieldName, Value: "test"})
	controller.Dispatch(ctx, ChangeField{Field: FieldValue, Value: ""})
	state := controller.Dispatch(ctx, Submit{})

	if len(state.Keys) != 2 || state.Keys[0].Name != "test" {
		t.Fatalf("expected created key prepended, got %+v", state.Keys)
	}
	if !strings.HasPrefix(state.Keys[0].Value, "dandi-generated") {
		t.Fatalf("expected generated value, got %q", state.Keys[0].Value)
	}
	if state.ModalOpen {
		t.Fatal("expected modal closed")
	}
	if state.Form != (Form{Name: "", Value: "", Usage: 0}) {
		t.Fatalf("expected reset form, got %+v", state.Form)
	}
}

func TestControllerBlankSubmitMakesNoCall(t *testing.T) {
	store := &fakeStore{}
	controller := NewController(Runner{Store: store})
	ctx := context.Background()
	controller.Dispatch(ctx, Mount{})
	controller.Dispatch(ctx, OpenCreate{})
	controller.Dispatch(ctx, ChangeField{Field: FieldName, Value: "   "})
	controller.Dispatch(ctx, Submit{})
	for _, call := range store.calls {
		if call == "create" {
			t.Fatal("expected no create call for blank name")
		}
	}
}

func TestControllerDeleteFailureSurfacesError(t *testing.T) {
	store := &fakeStore{
		keys:      []keyclient.APIKey{{ID: "1", Name: "prod", Value: "sk-abc123"}},
		deleteErr: &keyclient.APIError{StatusCode: 500, Message: "500 Internal Server Error"},
	}
	controller := NewController(Runner{Store: store})
	ctx := context.Background()
	controller.Dispatch(ctx, Mount{})
	state := controller.Dispatch(ctx, Delete{ID: "1"})
	if len(state.Keys) != 1 {
		t.Fatalf("expected keys unchanged, got %d", len(state.Keys))
	}
	if !strings.Contains(state.Error, "Failed to delete") {
		t.Fatalf("expected delete failure message, got %q", state.Error)
	}
}

func TestControllerCopyToastsThenDismisses(t *testing.T) {
	var copied string
	controller := NewController(Runner{
		Store: &fakeStore{},
		Clipboard: clipboard.Func(func(text string) error {
			copied = text
			return nil
		}),
	})
	ctx := context.Background()
	state := controller.Dispatch(ctx, Copy{Value: "sk-abc123"})
	if copied != "sk-abc123" {
		t.Fatalf("unexpected clipboard contents: %q", copied)
	}
	if state.Toast != "Copied API Key to clipboard" {
		t.Fatalf("unexpected toast: %q", state.Toast)
	}
	state = controller.Dispatch(ctx, DismissToast{})
	if state.Toast != "" {
		t.Fatal("expected toast cleared after dismissal")
	}
}

func TestRunnerWithoutClipboardReportsFailure(t *testing.T) {
	controller := NewController(Runner{Store: &fakeStore{}})
	state := controller.Dispatch(context.Background(), Copy{Value: "x"})
	if state.Error != "Failed to copy to clipboard" {
		t.Fatalf("unexpected error: %q", state.Error)
	}
}

func TestRunnerContactRequiresSender(t *testing.T) {
	var store KeyStore = struct{ KeyStore }{&fakeStore{}}
	action := Runner{Store: store}.Run(context.Background(), DeliverContact{})
	sent, ok := action.(ContactSent)
	if !ok {
		t.Fatalf("expected ContactSent, got %T", action)
	}
	if !errors.Is(sent.Err, ErrNoContact) {
		t.Fatalf("expected ErrNoContact, got %v", sent.Err)
	}
}

func TestControllerDeliversContact(t *testing.T) {
	store := &fakeStore{}
	controller := NewController(Runner{Store: store})
	ctx := context.Background()
	controller.Dispatch(ctx, OpenContact{})
	controller.Dispatch(ctx, ChangeContactField{Field: ContactName, Value: "Ada"})
	controller.Dispatch(ctx, ChangeContactField{Field: ContactEmail, Value: "ada@example.com"})
	controller.Dispatch(ctx, ChangeContactField{Field: ContactMessage, Value: "hello"})
	state := controller.Dispatch(ctx, SendContact{})
	if len(store.contacts) != 1 || store.contacts[0].Name != "Ada" {
		t.Fatalf("unexpected contacts: %+v", store.contacts)
	}
	if state.Toast != ToastMessageSent {
		t.Fatalf("unexpected toast: %q", state.Toast)
	}
}

func TestControllerListFailure(t *testing.T) {
	controller := NewController(Runner{Store: &fakeStore{listErr: errors.New("dial tcp: refused")}})
	state := controller.Dispatch(context.Background(), Mount{})
	if state.Error != "Failed to fetch API keys: dial tcp: refused" {
		t.Fatalf("unexpected error: %q", state.Error)
	}
	if len(state.Keys) != 0 {
		t.Fatal("expected empty keys")
	}
}
