package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	sharedtui "github.com/ezsaad07/earnpro-frontend/pkg/tui"
)

// field describes one input in a modal form.
type field struct {
	label       string
	placeholder string
	secret      bool
	limit       int
}

// form is the shared machinery behind every input modal: a labeled
// input column, one focused at a time, with inline validation errors.
type form struct {
	labels  []string
	inputs  []textinput.Model
	errs    []string
	focus   int
	options []string // optional selector row (payment method, filter)
	option  int
}

func newForm(fields ...field) form {
	f := form{
		labels: make([]string, len(fields)),
		inputs: make([]textinput.Model, len(fields)),
		errs:   make([]string, len(fields)),
	}
	for i, spec := range fields {
		ti := textinput.New()
		ti.Placeholder = spec.placeholder
		ti.Prompt = "> "
		ti.CharLimit = spec.limit
		if spec.secret {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		f.labels[i] = spec.label
		f.inputs[i] = ti
	}
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

func (f *form) withOptions(options []string, selected int) {
	f.options = options
	f.option = selected
}

func (f *form) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

func (f *form) setValue(i int, v string) {
	f.inputs[i].SetValue(v)
}

func (f *form) setError(i int, msg string) {
	f.errs[i] = msg
}

func (f *form) clearErrors() {
	for i := range f.errs {
		f.errs[i] = ""
	}
}

func (f *form) focusNext() {
	f.focusIndex((f.focus + 1) % len(f.inputs))
}

func (f *form) focusPrev() {
	f.focusIndex((f.focus - 1 + len(f.inputs)) % len(f.inputs))
}

func (f *form) focusIndex(i int) {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
}

func (f *form) cycleOption(delta int) {
	if len(f.options) == 0 {
		return
	}
	f.option = (f.option + delta + len(f.options)) % len(f.options)
}

// update routes a message to the focused input.
func (f *form) update(msg tea.Msg) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// render draws the form body: option selector, then label/input/error
// rows.
func (f *form) render() string {
	var b strings.Builder
	if len(f.options) > 0 {
		for i, opt := range f.options {
			if i > 0 {
				b.WriteString("  ")
			}
			if i == f.option {
				b.WriteString(sharedtui.ActiveTabStyle.Render(opt))
			} else {
				b.WriteString(sharedtui.TabStyle.Render(opt))
			}
		}
		b.WriteString("\n\n")
	}
	for i := range f.inputs {
		b.WriteString(sharedtui.LabelStyle.Render(f.labels[i]))
		b.WriteString("\n")
		b.WriteString(f.inputs[i].View())
		if f.errs[i] != "" {
			b.WriteString("\n")
			b.WriteString(sharedtui.FieldErrorStyle.Render(f.errs[i]))
		}
		if i < len(f.inputs)-1 {
			b.WriteString("\n\n")
		}
	}
	return b.String()
}

// renderModal wraps a title and body in the focused card, centered in
// the available area.
func renderModal(title, body, footer string, width, height int) string {
	content := sharedtui.TitleStyle.Render(title) + "\n\n" + body
	if footer != "" {
		content += "\n\n" + sharedtui.HelpDescStyle.Render(footer)
	}
	card := sharedtui.CardFocusedStyle.Width(min(56, width-4)).Render(content)
	return centerBlock(card, width, height)
}
