package dashboard

import (
	"strings"

	"github.com/dwizi/dandi/internal/keyclient"
)

type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// Field names one input of the key form.
type Field string

const (
	FieldName  Field = "name"
	FieldValue Field = "value"
	FieldUsage Field = "usage"
)

type ContactField string

const (
	ContactName    ContactField = "name"
	ContactEmail   ContactField = "email"
	ContactMessage ContactField = "message"
)

// Form is the draft bound to the create/edit modal.
type Form struct {
	Name  string
	Value string
	Usage int64
}

func (f Form) Draft() keyclient.Draft {
	return keyclient.Draft{
		Name:  strings.TrimSpace(f.Name),
		Value: strings.TrimSpace(f.Value),
		Usage: f.Usage,
	}
}

func formFromKey(key keyclient.APIKey) Form {
	return Form{Name: key.Name, Value: key.Value, Usage: key.Usage}
}

type ContactForm struct {
	Name    string
	Email   string
	Message string
}

func (f ContactForm) complete() bool {
	return strings.TrimSpace(f.Name) != "" &&
		strings.TrimSpace(f.Email) != "" &&
		strings.TrimSpace(f.Message) != ""
}

func (f ContactForm) message() keyclient.ContactMessage {
	return keyclient.ContactMessage{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Message: strings.TrimSpace(f.Message),
	}
}

// State is the whole dashboard. Values are treated as immutable by Reduce.
type State struct {
	Keys    []keyclient.APIKey
	Visible KeySet
	Editing *keyclient.APIKey
	Form    Form
	Mode    Mode

	ModalOpen bool
	Loading   bool
	// Pending counts requests fired but not yet completed.
	Pending int

	Error    string
	Toast    string
	ToastSeq int

	ContactOpen bool
	Contact     ContactForm
}

func NewState() State {
	return State{
		Keys:    []keyclient.APIKey{},
		Visible: KeySet{},
		Mode:    ModeCreate,
		Loading: true,
	}
}

// Key returns the record with the given id.
func (s State) Key(id keyclient.KeyID) (keyclient.APIKey, bool) {
	for _, key := range s.Keys {
		if key.ID == id {
			return key, true
		}
	}
	return keyclient.APIKey{}, false
}

// TotalUsage sums the usage counters of every loaded key.
func (s State) TotalUsage() int64 {
	var total int64
	for _, key := range s.Keys {
		total += key.Usage
	}
	return total
}

// DisplayValue is the value shown for key: the secret when revealed,
// otherwise its mask.
func (s State) DisplayValue(key keyclient.APIKey) string {
	return Display(key, s.Visible.Has(key.ID))
}
