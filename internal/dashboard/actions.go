package dashboard

import "github.com/dwizi/dandi/internal/keyclient"

// Action is anything Reduce understands: user intents and the completions
// of effects.
type Action interface {
	action()
}

type (
	Mount      struct{}
	OpenCreate struct{}
	OpenEdit   struct{ Key keyclient.APIKey }
	Submit     struct{}
	Close      struct{}

	ChangeField struct {
		Field Field
		Value string
	}

	Delete           struct{ ID keyclient.KeyID }
	ToggleVisibility struct{ ID keyclient.KeyID }
	Copy             struct{ Value string }

	// DismissToast clears the toast. Seq 0 dismisses unconditionally;
	// otherwise only the toast with that sequence number is cleared.
	DismissToast struct{ Seq int }
	DismissError struct{}

	OpenContact        struct{}
	CloseContact       struct{}
	SendContact        struct{}
	ChangeContactField struct {
		Field ContactField
		Value string
	}
)

type (
	KeysLoaded struct {
		Keys []keyclient.APIKey
		Err  error
	}
	KeyCreated struct {
		Key keyclient.APIKey
		Err error
	}
	KeyUpdated struct {
		ID  keyclient.KeyID
		Key keyclient.APIKey
		Err error
	}
	KeyDeleted struct {
		ID  keyclient.KeyID
		Err error
	}
	Copied      struct{ Err error }
	ContactSent struct{ Err error }
)

func (Mount) action()              {}
func (OpenCreate) action()         {}
func (OpenEdit) action()           {}
func (Submit) action()             {}
func (Close) action()              {}
func (ChangeField) action()        {}
func (Delete) action()             {}
func (ToggleVisibility) action()   {}
func (Copy) action()               {}
func (DismissToast) action()       {}
func (DismissError) action()       {}
func (OpenContact) action()        {}
func (CloseContact) action()       {}
func (SendContact) action()        {}
func (ChangeContactField) action() {}
func (KeysLoaded) action()         {}
func (KeyCreated) action()         {}
func (KeyUpdated) action()         {}
func (KeyDeleted) action()         {}
func (Copied) action()             {}
func (ContactSent) action()        {}

// Effect is work Reduce asks the caller to perform. Running an effect
// yields exactly one completion Action.
type Effect interface {
	effect()
}

type (
	FetchKeys struct{}
	CreateKey struct{ Draft keyclient.Draft }
	UpdateKey struct {
		ID    keyclient.KeyID
		Draft keyclient.Draft
	}
	DeleteKey      struct{ ID keyclient.KeyID }
	CopyText       struct{ Value string }
	DeliverContact struct{ Message keyclient.ContactMessage }
)

func (FetchKeys) effect()      {}
func (CreateKey) effect()      {}
func (UpdateKey) effect()      {}
func (DeleteKey) effect()      {}
func (CopyText) effect()       {}
func (DeliverContact) effect() {}
