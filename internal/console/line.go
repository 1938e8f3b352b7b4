package console

import (
	"context"
	"fmt"
	"io"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/habid/internal/ui/components"
	"github.com/abhisek/habid/internal/ui/theme"
)

// lineModel is a single-line Bubble Tea program: it edits one answer and
// quits on enter, or on ctrl+c and on ctrl+d over an empty line.
type lineModel struct {
	input     components.TextInput
	submitted bool
	quit      bool
}

func newLineModel(prompt string, history []string, styles theme.Styles) lineModel {
	return lineModel{input: components.NewTextInput(prompt, history, styles)}
}

func (m lineModel) Init() tea.Cmd {
	return m.input.Init()
}

func (m lineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			m.submitted = true
			return m, tea.Quit
		case "ctrl+c":
			m.quit = true
			return m, tea.Quit
		case "ctrl+d":
			if m.input.Value() == "" {
				m.quit = true
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m lineModel) View() tea.View {
	if m.submitted || m.quit {
		return tea.NewView(m.input.Line() + "\n")
	}
	return tea.NewView(m.input.View())
}

// TTYReader reads answer lines through an inline Bubble Tea text input with
// up/down recall.
type TTYReader struct {
	in     io.Reader
	out    io.Writer
	styles theme.Styles
	recall *Recall
}

// NewTTYReader creates a TTYReader. recall supplies earlier lines and may be
// nil.
func NewTTYReader(in io.Reader, out io.Writer, styles theme.Styles, recall *Recall) *TTYReader {
	if recall == nil {
		recall = NewRecall(DefaultRecallSize)
	}
	return &TTYReader{in: in, out: out, styles: styles, recall: recall}
}

// ReadLine runs the line editor until the user submits a line. It returns
// io.EOF when the user quits and the context error once ctx is done.
func (r *TTYReader) ReadLine(ctx context.Context, prompt string) (string, error) {
	p := tea.NewProgram(
		newLineModel(prompt, r.recall.Lines(), r.styles),
		tea.WithContext(ctx),
		tea.WithInput(r.in),
		tea.WithOutput(r.out),
	)
	final, err := p.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", ctxErr
	}
	if err != nil {
		return "", fmt.Errorf("line editor: %w", err)
	}
	m, ok := final.(lineModel)
	if !ok || m.quit {
		return "", io.EOF
	}
	return m.input.Value(), nil
}
