package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/habid/internal/drill"
	"github.com/abhisek/habid/internal/ui/theme"
)

// HelpText is shown when the user types "?".
const HelpText = `- add a ! in front of your guess to get a small hint
- add a !! in front of your guess to get a big hint
- add a !!! in front of your guess to see the answer
- press ctrl-d to quit`

// Printer renders drill events as terminal text.
type Printer struct {
	w      io.Writer
	styles theme.Styles
	prompt string
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer, styles theme.Styles) *Printer {
	return &Printer{w: w, styles: styles}
}

// Prompt returns the input prompt of the most recent AnswerRequested event.
func (p *Printer) Prompt() string {
	return p.prompt
}

// PromptText formats the input prompt for an answer request.
func PromptText(e drill.AnswerRequested) string {
	if e.Single {
		return fmt.Sprintf("answer [%d] (? help): ", e.Total)
	}
	return fmt.Sprintf("answer [%d/%d] (? help): ", e.Answered, e.Total)
}

// Observe implements drill.Observer.
func (p *Printer) Observe(e drill.Event) {
	switch e := e.(type) {
	case drill.CardShown:
		p.println("")
		p.println(p.styles.Prompt.Render(e.Prompt))
	case drill.AnswerRequested:
		p.prompt = PromptText(e)
	case drill.HelpRequested:
		for _, line := range strings.Split(HelpText, "\n") {
			p.println(p.styles.Info.Render(line))
		}
	case drill.Correct:
		msg := "correct!"
		if e.Kind != drill.KindPlain {
			msg = fmt.Sprintf("correct! (%s)", e.Kind)
		}
		p.println(p.styles.Correct.Render(msg))
	case drill.CaseMismatch:
		p.println(p.styles.Correct.Render("case mismatch only"))
	case drill.HintShown:
		p.println(p.styles.Info.Render("hint: " + e.Text))
	case drill.Mismatch:
		p.println(p.styles.Info.Render(fmt.Sprintf("best ratio: %3d%%", e.Ratio)))
	case drill.CardSkipped:
		p.println(p.styles.Warning.Render(fmt.Sprintf("skipped %q: %v", e.Prompt, e.Err)))
	case drill.SummaryReported:
		p.println("")
		p.println(p.styles.Summary.Render(fmt.Sprintf(
			"You answered %d questions with an average of %.2f mistakes",
			e.Summary.Questions, e.Summary.Average)))
	}
}

func (p *Printer) println(s string) {
	fmt.Fprintln(p.w, s)
}
