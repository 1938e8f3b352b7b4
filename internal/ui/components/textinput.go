package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/habid/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with a styled prompt and up/down recall
// of earlier lines.
type TextInput struct {
	Model   textinput.Model
	prompt  string
	styles  theme.Styles
	history []string
	pos     int // index into history; len(history) is the line being edited
	draft   string
}

// NewTextInput creates a focused text input showing prompt. history is
// ordered oldest first.
func NewTextInput(prompt string, history []string, styles theme.Styles) TextInput {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Focus()

	return TextInput{
		Model:   ti,
		prompt:  prompt,
		styles:  styles,
		history: history,
		pos:     len(history),
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up":
			t.Prev()
			return t, nil
		case "down":
			t.Next()
			return t, nil
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the prompt and the text input.
func (t TextInput) View() string {
	return t.styles.Input.Render(t.prompt) + t.Model.View()
}

// Line renders the prompt and the entered value without a cursor.
func (t TextInput) Line() string {
	return t.styles.Input.Render(t.prompt) + t.Model.Value()
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Prev replaces the value with the previous history entry.
func (t *TextInput) Prev() {
	if t.pos == 0 {
		return
	}
	if t.pos == len(t.history) {
		t.draft = t.Model.Value()
	}
	t.pos--
	t.set(t.history[t.pos])
}

// Next replaces the value with the next history entry, ending at the line
// that was being edited before recall started.
func (t *TextInput) Next() {
	if t.pos >= len(t.history) {
		return
	}
	t.pos++
	if t.pos == len(t.history) {
		t.set(t.draft)
		return
	}
	t.set(t.history[t.pos])
}

func (t *TextInput) set(v string) {
	t.Model.SetValue(v)
	t.Model.CursorEnd()
}
