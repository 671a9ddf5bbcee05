package tui

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/dwizi/dandi/internal/dashboard"
)

const valuePlaceholder = "Leave blank to auto-generate"

var keyFormFields = []dashboard.Field{dashboard.FieldName, dashboard.FieldValue, dashboard.FieldUsage}

// keyForm holds the inputs of the create/edit modal. The reducer owns the
// draft; the inputs only mirror it for editing.
type keyForm struct {
	name    textinput.Model
	value   textinput.Model
	usage   textinput.Model
	focused dashboard.Field
}

func newKeyForm(t theme) keyForm {
	return keyForm{
		name:    newInput(t, "My key", 120),
		value:   newInput(t, valuePlaceholder, 256),
		usage:   newInput(t, "0", 18),
		focused: dashboard.FieldName,
	}
}

func newInput(t theme, placeholder string, limit int) textinput.Model {
	input := textinput.New()
	input.Prompt = "› "
	input.Placeholder = placeholder
	input.CharLimit = limit
	styles := textinput.DefaultDarkStyles()
	styles.Focused.Prompt = t.inputPrompt
	styles.Focused.Text = t.inputText
	styles.Focused.Placeholder = t.inputPlaceholder
	styles.Blurred.Placeholder = t.inputPlaceholder
	input.SetStyles(styles)
	return input
}

func (f *keyForm) load(form dashboard.Form, mode dashboard.Mode) tea.Cmd {
	usage := ""
	if form.Usage != 0 {
		usage = strconv.FormatInt(form.Usage, 10)
	}
	f.name.SetValue(form.Name)
	f.value.SetValue(form.Value)
	f.usage.SetValue(usage)
	f.name.CursorEnd()
	f.value.CursorEnd()
	f.usage.CursorEnd()
	if mode == dashboard.ModeCreate {
		f.value.Placeholder = valuePlaceholder
	} else {
		f.value.Placeholder = ""
	}
	return f.focus(dashboard.FieldName)
}

func (f *keyForm) focus(field dashboard.Field) tea.Cmd {
	f.blur()
	f.focused = field
	return f.input(field).Focus()
}

func (f *keyForm) blur() {
	f.name.Blur()
	f.value.Blur()
	f.usage.Blur()
}

func (f *keyForm) cycle(delta int) tea.Cmd {
	index := 0
	for i, field := range keyFormFields {
		if field == f.focused {
			index = i
		}
	}
	index = (index + delta + len(keyFormFields)) % len(keyFormFields)
	return f.focus(keyFormFields[index])
}

func (f *keyForm) input(field dashboard.Field) *textinput.Model {
	switch field {
	case dashboard.FieldValue:
		return &f.value
	case dashboard.FieldUsage:
		return &f.usage
	default:
		return &f.name
	}
}

// update feeds msg to the focused input and reports the field and its new
// text.
func (f *keyForm) update(msg tea.Msg) (dashboard.Field, string, tea.Cmd) {
	input := f.input(f.focused)
	var cmd tea.Cmd
	*input, cmd = input.Update(msg)
	if f.focused == dashboard.FieldUsage {
		if cleaned := digitsOnly(input.Value()); cleaned != input.Value() {
			input.SetValue(cleaned)
		}
	}
	return f.focused, input.Value(), cmd
}

func (f *keyForm) setWidth(width int) {
	width = maxInt(10, width)
	f.name.SetWidth(width)
	f.value.SetWidth(width)
	f.usage.SetWidth(width)
}

func digitsOnly(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

var contactFormFields = []dashboard.ContactField{dashboard.ContactName, dashboard.ContactEmail, dashboard.ContactMessage}

type contactForm struct {
	name    textinput.Model
	email   textinput.Model
	message textarea.Model
	focused dashboard.ContactField
}

func newContactForm(t theme) contactForm {
	message := textarea.New()
	message.Placeholder = "How can we help?"
	message.ShowLineNumbers = false
	message.SetHeight(4)
	return contactForm{
		name:    newInput(t, "Your name", 120),
		email:   newInput(t, "you@example.com", 254),
		message: message,
		focused: dashboard.ContactName,
	}
}

func (f *contactForm) load(form dashboard.ContactForm) tea.Cmd {
	f.name.SetValue(form.Name)
	f.email.SetValue(form.Email)
	f.message.SetValue(form.Message)
	f.name.CursorEnd()
	f.email.CursorEnd()
	return f.focus(dashboard.ContactName)
}

func (f *contactForm) focus(field dashboard.ContactField) tea.Cmd {
	f.blur()
	f.focused = field
	switch field {
	case dashboard.ContactEmail:
		return f.email.Focus()
	case dashboard.ContactMessage:
		return f.message.Focus()
	default:
		return f.name.Focus()
	}
}

func (f *contactForm) blur() {
	f.name.Blur()
	f.email.Blur()
	f.message.Blur()
}

func (f *contactForm) cycle(delta int) tea.Cmd {
	index := 0
	for i, field := range contactFormFields {
		if field == f.focused {
			index = i
		}
	}
	index = (index + delta + len(contactFormFields)) % len(contactFormFields)
	return f.focus(contactFormFields[index])
}

func (f *contactForm) update(msg tea.Msg) (dashboard.ContactField, string, tea.Cmd) {
	var cmd tea.Cmd
	switch f.focused {
	case dashboard.ContactEmail:
		f.email, cmd = f.email.Update(msg)
		return f.focused, f.email.Value(), cmd
	case dashboard.ContactMessage:
		f.message, cmd = f.message.Update(msg)
		return f.focused, f.message.Value(), cmd
	default:
		f.name, cmd = f.name.Update(msg)
		return f.focused, f.name.Value(), cmd
	}
}

func (f *contactForm) setWidth(width int) {
	width = maxInt(10, width)
	f.name.SetWidth(width)
	f.email.SetWidth(width)
	f.message.SetWidth(width)
}
