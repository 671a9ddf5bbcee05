package dashboard

import (
	"strconv"
	"strings"

	"github.com/dwizi/dandi/internal/keyclient"
)

const (
	ToastCopied      = "Copied API Key to clipboard"
	ToastMessageSent = "Message sent"

	errCopy = "Failed to copy to clipboard"
)

// Reduce applies action to state and returns the next state plus the
// effects the caller must run. It does not modify state's slices or maps.
func Reduce(state State, action Action) (State, []Effect) {
	next := state
	switch a := action.(type) {
	case Mount:
		next.Loading = true
		next.Error = ""
		next.Pending++
		return next, []Effect{FetchKeys{}}

	case KeysLoaded:
		next.Loading = false
		next.Pending = settle(next.Pending)
		if a.Err != nil {
			next.Error = failure("Failed to fetch API keys", a.Err)
			return next, nil
		}
		next.Keys = dedupe(a.Keys)
		next.Visible = next.Visible.Retain(next.Keys)
		return next, nil

	case OpenCreate:
		next.Mode = ModeCreate
		next.Form = Form{}
		next.Editing = nil
		next.Error = ""
		next.ModalOpen = true
		return next, nil

	case OpenEdit:
		key := a.Key
		next.Editing = &key
		next.Form = formFromKey(key)
		next.Mode = ModeEdit
		next.Error = ""
		next.ModalOpen = true
		return next, nil

	case ChangeField:
		next.Form = changeField(next.Form, a.Field, a.Value)
		return next, nil

	case Submit:
		if !state.ModalOpen || strings.TrimSpace(state.Form.Name) == "" {
			return state, nil
		}
		if state.Mode == ModeEdit {
			if state.Editing == nil {
				return state, nil
			}
			next.Error = ""
			next.Pending++
			return next, []Effect{UpdateKey{ID: state.Editing.ID, Draft: state.Form.Draft()}}
		}
		next.Error = ""
		next.Pending++
		return next, []Effect{CreateKey{Draft: state.Form.Draft()}}

	case KeyCreated:
		next.Pending = settle(next.Pending)
		if a.Err != nil {
			next.Error = failure("Failed to create API key", a.Err)
			return next, nil
		}
		next.Keys = prepend(state.Keys, a.Key)
		return closeModal(next), nil

	case KeyUpdated:
		next.Pending = settle(next.Pending)
		if a.Err != nil {
			next.Error = failure("Failed to update API key", a.Err)
			return next, nil
		}
		id := a.ID
		if id == "" {
			id = a.Key.ID
		}
		next.Keys = replace(state.Keys, id, a.Key)
		return closeModal(next), nil

	case Close:
		return closeModal(next), nil

	case Delete:
		next.Error = ""
		next.Pending++
		return next, []Effect{DeleteKey{ID: a.ID}}

	case KeyDeleted:
		next.Pending = settle(next.Pending)
		if a.Err != nil {
			next.Error = failure("Failed to delete API key", a.Err)
			return next, nil
		}
		next.Keys = remove(state.Keys, a.ID)
		next.Visible = state.Visible.Without(a.ID)
		return next, nil

	case ToggleVisibility:
		next.Visible = state.Visible.Toggle(a.ID)
		return next, nil

	case Copy:
		return next, []Effect{CopyText{Value: a.Value}}

	case Copied:
		if a.Err != nil {
			next.Error = errCopy
			return next, nil
		}
		return withToast(next, ToastCopied), nil

	case DismissToast:
		if a.Seq == 0 || a.Seq == state.ToastSeq {
			next.Toast = ""
		}
		return next, nil

	case DismissError:
		next.Error = ""
		return next, nil

	case OpenContact:
		next.Contact = ContactForm{}
		next.ContactOpen = true
		return next, nil

	case CloseContact:
		next.Contact = ContactForm{}
		next.ContactOpen = false
		return next, nil

	case ChangeContactField:
		next.Contact = changeContactField(next.Contact, a.Field, a.Value)
		return next, nil

	case SendContact:
		if !state.ContactOpen || !state.Contact.complete() {
			return state, nil
		}
		next.Pending++
		return next, []Effect{DeliverContact{Message: state.Contact.message()}}

	case ContactSent:
		next.Pending = settle(next.Pending)
		if a.Err != nil {
			next.Error = failure("Failed to send message", a.Err)
			return next, nil
		}
		next.Contact = ContactForm{}
		next.ContactOpen = false
		return withToast(next, ToastMessageSent), nil
	}
	return state, nil
}

func closeModal(state State) State {
	state.ModalOpen = false
	state.Form = Form{}
	state.Editing = nil
	state.Error = ""
	state.Mode = ModeCreate
	return state
}

func withToast(state State, message string) State {
	state.Toast = message
	state.ToastSeq++
	return state
}

func failure(prefix string, err error) string {
	message := strings.TrimSpace(err.Error())
	if message == "" {
		return prefix
	}
	return prefix + ": " + message
}

func settle(pending int) int {
	if pending <= 0 {
		return 0
	}
	return pending - 1
}

func changeField(form Form, field Field, value string) Form {
	switch field {
	case FieldName:
		form.Name = value
	case FieldValue:
		form.Value = value
	case FieldUsage:
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			form.Usage = 0
			return form
		}
		usage, ok := parseUsage(trimmed)
		if ok {
			form.Usage = usage
		}
	}
	return form
}

// parseUsage accepts plain decimal digits only.
func parseUsage(value string) (int64, bool) {
	for _, r := range value {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	usage, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, false
	}
	return usage, true
}

func changeContactField(form ContactForm, field ContactField, value string) ContactForm {
	switch field {
	case ContactName:
		form.Name = value
	case ContactEmail:
		form.Email = value
	case ContactMessage:
		form.Message = value
	}
	return form
}

func dedupe(keys []keyclient.APIKey) []keyclient.APIKey {
	seen := make(map[keyclient.KeyID]struct{}, len(keys))
	out := make([]keyclient.APIKey, 0, len(keys))
	for _, key := range keys {
		if _, ok := seen[key.ID]; ok {
			continue
		}
		seen[key.ID] = struct{}{}
		out = append(out, key)
	}
	return out
}

func prepend(keys []keyclient.APIKey, key keyclient.APIKey) []keyclient.APIKey {
	out := make([]keyclient.APIKey, 0, len(keys)+1)
	out = append(out, key)
	for _, existing := range keys {
		if existing.ID == key.ID {
			continue
		}
		out = append(out, existing)
	}
	return out
}

func replace(keys []keyclient.APIKey, id keyclient.KeyID, key keyclient.APIKey) []keyclient.APIKey {
	out := make([]keyclient.APIKey, len(keys))
	copy(out, keys)
	for index := range out {
		if out[index].ID == id {
			out[index] = key
		}
	}
	return out
}

func remove(keys []keyclient.APIKey, id keyclient.KeyID) []keyclient.APIKey {
	out := make([]keyclient.APIKey, 0, len(keys))
	for _, key := range keys {
		if key.ID == id {
			continue
		}
		out = append(out, key)
	}
	return out
}
