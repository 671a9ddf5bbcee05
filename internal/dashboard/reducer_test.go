package dashboard

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/dwizi/dandi/internal/keyclient"
)

func loadedState(keys ...keyclient.APIKey) State {
	state, _ := Reduce(NewState(), Mount{})
	state, _ = Reduce(state, KeysLoaded{Keys: keys})
	return state
}

func sampleKeys() []keyclient.APIKey {
	return []keyclient.APIKey{
		{ID: "1", Name: "prod", Value: "sk-abc123", Usage: 42},
		{ID: "2", Name: "staging", Value: "sk-staging", Usage: 7},
		{ID: "3", Name: "dev", Value: "sk-dev", Usage: 0},
	}
}

func TestNewStateStartsLoadingWithClosedCreateModal(t *testing.T) {
	state := NewState()
	if !state.Loading {
		t.Fatal("expected initial state to be loading")
	}
	if state.ModalOpen || state.Mode != ModeCreate {
		t.Fatalf("expected closed create modal, got open=%v mode=%s", state.ModalOpen, state.Mode)
	}
	if len(state.Keys) != 0 {
		t.Fatalf("expected no keys, got %d", len(state.Keys))
	}
}

func TestMountEmitsFetch(t *testing.T) {
	state := NewState()
	state.Error = "old"
	next, effects := Reduce(state, Mount{})
	if len(effects) != 1 {
		t.Fatalf("expected one effect, got %d", len(effects))
	}
	if _, ok := effects[0].(FetchKeys); !ok {
		t.Fatalf("expected FetchKeys, got %T", effects[0])
	}
	if !next.Loading || next.Error != "" {
		t.Fatalf("unexpected state after mount: loading=%v error=%q", next.Loading, next.Error)
	}
}

func TestKeysLoadedFailureLeavesKeysEmpty(t *testing.T) {
	state, _ := Reduce(NewState(), Mount{})
	state, _ = Reduce(state, KeysLoaded{Err: errors.New("connection refused")})
	if state.Loading {
		t.Fatal("expected loading cleared")
	}
	if len(state.Keys) != 0 {
		t.Fatalf("expected empty keys, got %d", len(state.Keys))
	}
	if state.Error != "Failed to fetch API keys: connection refused" {
		t.Fatalf("unexpected error: %q", state.Error)
	}
}

func TestKeysLoadedDropsDuplicateIDsAndStaleVisibility(t *testing.T) {
	state := NewState()
	state.Visible = NewKeySet("1", "gone")
	state, _ = Reduce(state, KeysLoaded{Keys: []keyclient.APIKey{
		{ID: "1", Name: "first"},
		{ID: "1", Name: "duplicate"},
		{ID: "2", Name: "second"},
	}})
	if len(state.Keys) != 2 || state.Keys[0].Name != "first" {
		t.Fatalf("unexpected keys: %+v", state.Keys)
	}
	if !state.Visible.Equal(NewKeySet("1")) {
		t.Fatalf("expected only id 1 visible, got %v", state.Visible.IDs())
	}
}

func TestSubmitIsNoOpForBlankName(t *testing.T) {
	for _, name := range []string{"", "   ", "\t\n"} {
		state := loadedState(sampleKeys()...)
		state, _ = Reduce(state, OpenCreate{})
		state, _ = Reduce(state, ChangeField{Field: FieldName, Value: name})
		state, _ = Reduce(state, ChangeField{Field: FieldValue, Value: "secret"})

		next, effects := Reduce(state, Submit{})
		if len(effects) != 0 {
			t.Fatalf("expected no effects for name %q, got %d", name, len(effects))
		}
		if !reflect.DeepEqual(next, state) {
			t.Fatalf("expected unchanged state for name %q", name)
		}
	}
}

func TestSubmitIsNoOpWhenModalClosed(t *testing.T) {
	state := loadedState(sampleKeys()...)
	state.Form.Name = "orphan"
	next, effects := Reduce(state, Submit{})
	if len(effects) != 0 || !reflect.DeepEqual(next, state) {
		t.Fatal("expected submit with closed modal to do nothing")
	}
}

func TestCreateFlowPrependsAndResets(t *testing.T) {
	state := loadedState(sampleKeys()...)
	state, _ = Reduce(state, OpenCreate{})
	state, _ = Reduce(state, ChangeField{Field: FieldName, Value: "test"})
	state, _ = Reduce(state, ChangeField{Field: FieldValue, Value: ""})

	state, effects := Reduce(state, Submit{})
	if len(effects) != 1 {
		t.Fatalf("expected one effect, got %d", len(effects))
	}
	create, ok := effects[0].(CreateKey)
	if !ok {
		t.Fatalf("expected CreateKey, got %T", effects[0])
	}
	if create.Draft.Name != "test" || create.Draft.Value != "" || create.Draft.Usage != 0 {
		t.Fatalf("unexpected draft: %+v", create.Draft)
	}

	created := keyclient.APIKey{ID: "9", Name: "test", Value: "dandi-generated", Usage: 0}
	state, _ = Reduce(state, KeyCreated{Key: created})
	if len(state.Keys) != 4 || state.Keys[0] != created {
		t.Fatalf("expected created key first, got %+v", state.Keys)
	}
	if state.ModalOpen {
		t.Fatal("expected modal closed")
	}
	if state.Form != (Form{}) || state.Editing != nil || state.Mode != ModeCreate {
		t.Fatalf("expected reset form, got %+v editing=%v mode=%s", state.Form, state.Editing, state.Mode)
	}
}

func TestCreatedIDAppearsExactlyOnceFirst(t *testing.T) {
	state := loadedState(sampleKeys()...)
	state, _ = Reduce(state, OpenCreate{})
	state, _ = Reduce(state, ChangeField{Field: FieldName, Value: "again"})
	state, _ = Reduce(state, Submit{})
	state, _ = Reduce(state, KeyCreated{Key: keyclient.APIKey{ID: "2", Name: "again"}})

	count := 0
	for _, key := range state.Keys {
		if key.ID == "2" {
			count++
		}
	}
	if count != 1 || state.Keys[0].ID != "2" {
		t.Fatalf("expected id 2 once and first, got %+v", state.Keys)
	}
}

func TestCreateFailureKeepsModalAndKeys(t *testing.T) {
	state := loadedState(sampleKeys()...)
	state, _ = Reduce(state, OpenCreate{})
	state, _ = Reduce(state, ChangeField{Field: FieldName, Value: "test"})
	state, _ = Reduce(state, Submit{})
	state, _ = Reduce(state, KeyCreated{Err: errors.New("name taken")})

	if !state.ModalOpen {
		t.Fatal("expected modal to stay open")
	}
	if state.Form.Name != "test" {
		t.Fatalf("expected form kept, got %+v", state.Form)
	}
	if !reflect.DeepEqual(state.Keys, sampleKeys()) {
		t.Fatalf("expected keys unchanged, got %+v", state.Keys)
	}
	if state.Error != "Failed to create API key: name taken" {
		t.Fatalf("unexpected error: %q", state.Error)
	}
}

func TestEditFlowReplacesOnlyMatchingRecord(t *testing.T) {
	keys := sampleKeys()
	state := loadedState(keys...)
	state, _ = Reduce(state, OpenEdit{Key: keys[1]})
	if state.Mode != ModeEdit || !state.ModalOpen {
		t.Fatalf("expected open edit modal, got mode=%s open=%v", state.Mode, state.ModalOpen)
	}
	if state.Form != (Form{Name: "staging", Value: "sk-staging", Usage: 7}) {
		t.Fatalf("expected form copied from key, got %+v", state.Form)
	}

	state, _ = Reduce(state, ChangeField{Field: FieldName, Value: "staging-2"})
	state, _ = Reduce(state, ChangeField{Field: FieldUsage, Value: "11"})
	state, effects := Reduce(state, Submit{})
	if len(effects) != 1 {
		t.Fatalf("expected one effect, got %d", len(effects))
	}
	update, ok := effects[0].(UpdateKey)
	if !ok {
		t.Fatalf("expected UpdateKey, got %T", effects[0])
	}
	if update.ID != "2" || update.Draft.Name != "staging-2" || update.Draft.Usage != 11 {
		t.Fatalf("unexpected update effect: %+v", update)
	}

	returned := keyclient.APIKey{ID: "2", Name: "server-name", Value: "sk-server", Usage: 12}
	state, _ = Reduce(state, KeyUpdated{ID: "2", Key: returned})
	if state.Keys[1] != returned {
		t.Fatalf("expected server record, got %+v", state.Keys[1])
	}
	if state.Keys[0] != keys[0] || state.Keys[2] != keys[2] {
		t.Fatalf("expected other records unchanged, got %+v", state.Keys)
	}
	if state.ModalOpen || state.Editing != nil {
		t.Fatal("expected modal closed and editing cleared")
	}
}

func TestUpdateFailureKeepsModalOpen(t *testing.T) {
	keys := sampleKeys()
	state := loadedState(keys...)
	state, _ = Reduce(state, OpenEdit{Key: keys[0]})
	state, _ = Reduce(state, Submit{})
	state, _ = Reduce(state, KeyUpdated{ID: "1", Err: errors.New("api key not found")})
	if !state.ModalOpen || state.Mode != ModeEdit {
		t.Fatal("expected edit modal to stay open")
	}
	if state.Error != "Failed to update API key: api key not found" {
		t.Fatalf("unexpected error: %q", state.Error)
	}
	if !reflect.DeepEqual(state.Keys, keys) {
		t.Fatal("expected keys unchanged")
	}
}

func TestCloseResetsModal(t *testing.T) {
	keys := sampleKeys()
	state := loadedState(keys...)
	state, _ = Reduce(state, OpenEdit{Key: keys[0]})
	state.Error = "something"
	state, _ = Reduce(state, Close{})
	if state.ModalOpen || state.Editing != nil || state.Mode != ModeCreate {
		t.Fatal("expected closed modal in create mode")
	}
	if state.Form != (Form{}) || state.Error != "" {
		t.Fatalf("expected reset form and error, got %+v %q", state.Form, state.Error)
	}
}

func TestOpenCreateClearsPreviousError(t *testing.T) {
	state := loadedState()
	state.Error = "Failed to delete API key: boom"
	state.Toast = ToastCopied
	state, _ = Reduce(state, OpenCreate{})
	if state.Error != "" {
		t.Fatalf("expected error cleared, got %q", state.Error)
	}
	if state.Toast != ToastCopied {
		t.Fatal("expected toast to be independent of error")
	}
}

func TestUsageFieldAcceptsOnlyDigits(t *testing.T) {
	state := loadedState()
	state, _ = Reduce(state, OpenCreate{})
	state, _ = Reduce(state, ChangeField{Field: FieldUsage, Value: "25"})
	if state.Form.Usage != 25 {
		t.Fatalf("expected usage 25, got %d", state.Form.Usage)
	}
	for _, invalid := range []string{"-3", "abc", "1.5", "99999999999999999999"} {
		next, _ := Reduce(state, ChangeField{Field: FieldUsage, Value: invalid})
		if next.Form.Usage != 25 {
			t.Fatalf("expected %q to be ignored, got usage %d", invalid, next.Form.Usage)
		}
	}
	state, _ = Reduce(state, ChangeField{Field: FieldUsage, Value: ""})
	if state.Form.Usage != 0 {
		t.Fatalf("expected empty usage to reset to 0, got %d", state.Form.Usage)
	}
}

func TestDeleteSuccessRemovesOnlyThatRecord(t *testing.T) {
	keys := sampleKeys()
	state := loadedState(keys...)
	state, _ = Reduce(state, ToggleVisibility{ID: "2"})
	state, effects := Reduce(state, Delete{ID: "2"})
	if len(effects) != 1 {
		t.Fatalf("expected one effect, got %d", len(effects))
	}
	if del, ok := effects[0].(DeleteKey); !ok || del.ID != "2" {
		t.Fatalf("expected DeleteKey(2), got %#v", effects[0])
	}
	state, _ = Reduce(state, KeyDeleted{ID: "2"})
	expected := []keyclient.APIKey{keys[0], keys[2]}
	if !reflect.DeepEqual(state.Keys, expected) {
		t.Fatalf("unexpected keys after delete: %+v", state.Keys)
	}
	if state.Visible.Has("2") {
		t.Fatal("expected deleted id removed from visible set")
	}
}

func TestDeleteFailureKeepsKeys(t *testing.T) {
	state := loadedState(sampleKeys()...)
	state, _ = Reduce(state, Delete{ID: "1"})
	state, _ = Reduce(state, KeyDeleted{ID: "1", Err: errors.New("500 Internal Server Error")})
	if len(state.Keys) != 3 {
		t.Fatalf("expected keys length unchanged, got %d", len(state.Keys))
	}
	if !strings.Contains(state.Error, "Failed to delete") {
		t.Fatalf("expected delete failure message, got %q", state.Error)
	}
}

func TestToggleVisibilityTwiceRestores(t *testing.T) {
	state := loadedState(sampleKeys()...)
	state, _ = Reduce(state, ToggleVisibility{ID: "3"})
	before := state.Visible
	state, effects := Reduce(state, ToggleVisibility{ID: "1"})
	if len(effects) != 0 {
		t.Fatal("expected toggle to be local")
	}
	if !state.Visible.Has("1") {
		t.Fatal("expected id 1 visible")
	}
	state, _ = Reduce(state, ToggleVisibility{ID: "1"})
	if !state.Visible.Equal(before) {
		t.Fatalf("expected visible set restored, got %v", state.Visible.IDs())
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	keys := sampleKeys()
	state := loadedState(keys...)
	state, _ = Reduce(state, ToggleVisibility{ID: "1"})
	snapshotKeys := append([]keyclient.APIKey(nil), state.Keys...)
	snapshotVisible := NewKeySet(state.Visible.IDs()...)

	_, _ = Reduce(state, ToggleVisibility{ID: "1"})
	_, _ = Reduce(state, KeyDeleted{ID: "1"})
	_, _ = Reduce(state, KeyCreated{Key: keyclient.APIKey{ID: "new"}})
	_, _ = Reduce(state, KeyUpdated{ID: "2", Key: keyclient.APIKey{ID: "2", Name: "changed"}})

	if !reflect.DeepEqual(state.Keys, snapshotKeys) {
		t.Fatalf("input keys mutated: %+v", state.Keys)
	}
	if !state.Visible.Equal(snapshotVisible) {
		t.Fatalf("input visible set mutated: %v", state.Visible.IDs())
	}
}

func TestCopySuccessToastsUntilDismissed(t *testing.T) {
	state := loadedState(sampleKeys()...)
	state, effects := Reduce(state, Copy{Value: "sk-abc123"})
	if len(effects) != 1 {
		t.Fatalf("expected one effect, got %d", len(effects))
	}
	if copyText, ok := effects[0].(CopyText); !ok || copyText.Value != "sk-abc123" {
		t.Fatalf("expected CopyText, got %#v", effects[0])
	}
	state, _ = Reduce(state, Copied{})
	if state.Toast != "Copied API Key to clipboard" {
		t.Fatalf("unexpected toast: %q", state.Toast)
	}
	state, _ = Reduce(state, DismissToast{})
	if state.Toast != "" {
		t.Fatalf("expected toast cleared, got %q", state.Toast)
	}
}

func TestStaleToastTimerDoesNotClearNewerToast(t *testing.T) {
	state := loadedState()
	state, _ = Reduce(state, Copied{})
	first := state.ToastSeq
	state, _ = Reduce(state, Copied{})
	state, _ = Reduce(state, DismissToast{Seq: first})
	if state.Toast == "" {
		t.Fatal("expected newer toast to survive stale timer")
	}
	state, _ = Reduce(state, DismissToast{Seq: state.ToastSeq})
	if state.Toast != "" {
		t.Fatal("expected matching timer to clear toast")
	}
}

func TestCopyFailureSetsErrorNotToast(t *testing.T) {
	state := loadedState()
	state, _ = Reduce(state, Copied{Err: errors.New("no clipboard tool")})
	if state.Error != "Failed to copy to clipboard" {
		t.Fatalf("unexpected error: %q", state.Error)
	}
	if state.Toast != "" {
		t.Fatalf("expected no toast, got %q", state.Toast)
	}
}

func TestContactFlow(t *testing.T) {
	state := loadedState()
	state, _ = Reduce(state, OpenContact{})
	state, effects := Reduce(state, SendContact{})
	if len(effects) != 0 {
		t.Fatal("expected incomplete contact form to be ignored")
	}
	state, _ = Reduce(state, ChangeContactField{Field: ContactName, Value: "Ada"})
	state, _ = Reduce(state, ChangeContactField{Field: ContactEmail, Value: "ada@example.com"})
	state, _ = Reduce(state, ChangeContactField{Field: ContactMessage, Value: "More credits please"})
	state, effects = Reduce(state, SendContact{})
	if len(effects) != 1 {
		t.Fatalf("expected one effect, got %d", len(effects))
	}
	deliver, ok := effects[0].(DeliverContact)
	if !ok || deliver.Message.Email != "ada@example.com" {
		t.Fatalf("unexpected effect: %#v", effects[0])
	}
	state, _ = Reduce(state, ContactSent{})
	if state.ContactOpen || state.Contact != (ContactForm{}) {
		t.Fatal("expected contact form closed and reset")
	}
	if state.Toast != ToastMessageSent {
		t.Fatalf("unexpected toast: %q", state.Toast)
	}
}

func TestContactFailureKeepsFormOpen(t *testing.T) {
	state := loadedState()
	state, _ = Reduce(state, OpenContact{})
	state.Contact = ContactForm{Name: "a", Email: "b", Message: "c"}
	state, _ = Reduce(state, SendContact{})
	state, _ = Reduce(state, ContactSent{Err: errors.New("offline")})
	if !state.ContactOpen {
		t.Fatal("expected contact form to stay open")
	}
	if state.Error != "Failed to send message: offline" {
		t.Fatalf("unexpected error: %q", state.Error)
	}
}

func TestPendingTracksInflightRequests(t *testing.T) {
	state := loadedState(sampleKeys()...)
	state, _ = Reduce(state, Delete{ID: "1"})
	state, _ = Reduce(state, Delete{ID: "2"})
	if state.Pending != 2 {
		t.Fatalf("expected two pending requests, got %d", state.Pending)
	}
	state, _ = Reduce(state, KeyDeleted{ID: "1"})
	state, _ = Reduce(state, KeyDeleted{ID: "2", Err: errors.New("x")})
	if state.Pending != 0 {
		t.Fatalf("expected no pending requests, got %d", state.Pending)
	}
	state, _ = Reduce(state, KeyDeleted{ID: "3"})
	if state.Pending != 0 {
		t.Fatalf("expected pending to stay at zero, got %d", state.Pending)
	}
}
