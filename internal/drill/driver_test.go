package drill_test

import (
	"context"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/abhisek/habid/internal/deck"
	"github.com/abhisek/habid/internal/drill"
	"github.com/abhisek/habid/internal/drill/drilltest"
	"github.com/abhisek/habid/internal/hint"
	"github.com/abhisek/habid/internal/session"
	"github.com/abhisek/habid/internal/similarity"
)

func drive(t *testing.T, card deck.Card, single bool, lines ...string) (*drilltest.Recorder, *session.Tracker, *drilltest.Script, error) {
	t.Helper()
	in := drilltest.NewScript(lines...)
	rec := &drilltest.Recorder{}
	tr := session.NewTracker()
	d := drill.NewDriver(in, rec, similarity.ScorerFunc(similarity.Ratio))
	err := d.Drive(context.Background(), card, tr, single)
	return rec, tr, in, err
}

func TestDrive_ExactGuess(t *testing.T) {
	card := deck.Card{Prompt: "capital of Italy", Answers: []string{"Rome"}}

	rec, tr, _, err := drive(t, card, false, "Rome")
	if err != nil {
		t.Fatalf("Drive error: %v", err)
	}
	if tr.Questions() != 1 {
		t.Errorf("Questions = %d, want 1", tr.Questions())
	}
	if tr.Mistakes() != 0 {
		t.Errorf("Mistakes = %v, want 0", tr.Mistakes())
	}
	correct := drilltest.Find[drill.Correct](rec)
	if len(correct) != 1 || correct[0].Answer != "Rome" || correct[0].Kind != drill.KindPlain {
		t.Errorf("Correct events = %+v", correct)
	}
	if len(drilltest.Find[drill.CardCompleted](rec)) != 1 {
		t.Error("expected CardCompleted")
	}
}

func TestDrive_CaseMismatchThenPrimary(t *testing.T) {
	card := deck.Card{Prompt: "capital of France", Answers: []string{"|Paris", "Lutetia"}}

	rec, tr, in, err := drive(t, card, false, "paris", "Paris")
	if !errors.Is(err, drill.ErrInputEnded) {
		t.Fatalf("Drive error = %v, want ErrInputEnded (card still open)", err)
	}
	if in.Reads() != 2 {
		t.Errorf("Reads = %d, want 2", in.Reads())
	}

	cm := drilltest.Find[drill.CaseMismatch](rec)
	if len(cm) != 1 || cm[0].Answer != "Paris" {
		t.Errorf("CaseMismatch events = %+v", cm)
	}
	mm := drilltest.Find[drill.Mismatch](rec)
	if len(mm) != 1 {
		t.Fatalf("Mismatch events = %+v", mm)
	}
	if mm[0].Factor != drill.FactorCaseOnly {
		t.Errorf("Factor = %v, want %v", mm[0].Factor, drill.FactorCaseOnly)
	}
	if mm[0].Ratio != 100 || mm[0].Penalty > 1e-9 {
		t.Errorf("Ratio/Penalty = %d/%v, want 100/~0", mm[0].Ratio, mm[0].Penalty)
	}

	correct := drilltest.Find[drill.Correct](rec)
	if len(correct) != 1 || correct[0].Kind != drill.KindPrimary {
		t.Errorf("Correct events = %+v, want one primary", correct)
	}
	if tr.Questions() != 1 {
		t.Errorf("Questions = %d, want 1", tr.Questions())
	}
	if len(drilltest.Find[drill.CardCompleted](rec)) != 0 {
		t.Error("card must stay open while Lutetia remains")
	}

	req := drilltest.Find[drill.AnswerRequested](rec)
	last := req[len(req)-1]
	if last.Answered != 1 || last.Total != 2 || last.Single {
		t.Errorf("last AnswerRequested = %+v, want 1/2 not single", last)
	}
}

func TestDrive_AllAnswersComplete(t *testing.T) {
	card := deck.Card{Prompt: "capital of France", Answers: []string{"|Paris", "Lutetia"}}

	rec, tr, _, err := drive(t, card, false, "Lutetia", "Paris")
	if err != nil {
		t.Fatalf("Drive error: %v", err)
	}
	correct := drilltest.Find[drill.Correct](rec)
	if len(correct) != 2 || correct[0].Kind != drill.KindSecondary || correct[1].Kind != drill.KindPrimary {
		t.Errorf("Correct events = %+v, want secondary then primary", correct)
	}
	if tr.Questions() != 2 {
		t.Errorf("Questions = %d, want 2", tr.Questions())
	}
}

func TestDrive_SingleAnswerMode(t *testing.T) {
	card := deck.Card{Prompt: "no?", Answers: []string{"|no", "nope"}}

	rec, tr, in, err := drive(t, card, true, "nope", "unused")
	if err != nil {
		t.Fatalf("Drive error: %v", err)
	}
	if in.Reads() != 1 {
		t.Errorf("Reads = %d, want 1", in.Reads())
	}
	correct := drilltest.Find[drill.Correct](rec)
	if len(correct) != 1 || correct[0].Kind != drill.KindPlain {
		t.Errorf("single mode must not qualify the answer: %+v", correct)
	}
	if tr.Questions() != 1 {
		t.Errorf("Questions = %d, want 1", tr.Questions())
	}
}

func TestDrive_OneAnswerForcesSingleMode(t *testing.T) {
	card := deck.Card{Prompt: "animal", Answers: []string{"|dog"}}

	rec, _, _, err := drive(t, card, false, "dog")
	if err != nil {
		t.Fatalf("Drive error: %v", err)
	}
	req := drilltest.Find[drill.AnswerRequested](rec)
	if !req[0].Single {
		t.Error("one-answer card must be in single-answer mode")
	}
	if k := drilltest.Find[drill.Correct](rec)[0].Kind; k != drill.KindPlain {
		t.Errorf("Kind = %v, want plain", k)
	}
}

func TestDrive_HelpIsFree(t *testing.T) {
	card := deck.Card{Prompt: "p", Answers: []string{"yes"}}

	rec, tr, in, err := drive(t, card, false, " ? ", "yes")
	if err != nil {
		t.Fatalf("Drive error: %v", err)
	}
	if len(drilltest.Find[drill.HelpRequested](rec)) != 1 {
		t.Error("expected one HelpRequested")
	}
	if tr.Mistakes() != 0 {
		t.Errorf("Mistakes = %v, want 0", tr.Mistakes())
	}
	if len(in.Remembered) != 1 || in.Remembered[0] != "yes" {
		t.Errorf("Remembered = %q, want only the guess", in.Remembered)
	}
}

func TestDrive_RemembersLineAsTyped(t *testing.T) {
	card := deck.Card{Prompt: "p", Answers: []string{"Paris"}}

	_, _, in, err := drive(t, card, false, "  !Pari ", " Paris\t")
	if err != nil {
		t.Fatalf("Drive error: %v", err)
	}
	want := []string{"  !Pari ", " Paris\t"}
	if len(in.Remembered) != len(want) {
		t.Fatalf("Remembered = %q, want %q", in.Remembered, want)
	}
	for i := range want {
		if in.Remembered[i] != want[i] {
			t.Errorf("Remembered[%d] = %q, want %q", i, in.Remembered[i], want[i])
		}
	}
}

func TestDrive_Hints(t *testing.T) {
	tests := []struct {
		line       string
		wantLevel  hint.Level
		wantText   string
		wantFactor float64
	}{
		{"!eleph", hint.Small, "....hant", drill.FactorSmallHint},
		{"!!eleph", hint.Big, "eleph...", drill.FactorBigHint},
		{"!!!eleph", hint.Full, "elephant", drill.FactorDefault},
	}

	for _, tt := range tests {
		t.Run(tt.wantLevel.String(), func(t *testing.T) {
			card := deck.Card{Prompt: "trunk", Answers: []string{"elephant", "mammoth"}}
			rec, tr, in, _ := drive(t, card, false, tt.line)

			hints := drilltest.Find[drill.HintShown](rec)
			if len(hints) != 1 || hints[0].Level != tt.wantLevel || hints[0].Text != tt.wantText {
				t.Errorf("HintShown = %+v, want %s %q", hints, tt.wantLevel, tt.wantText)
			}
			mm := drilltest.Find[drill.Mismatch](rec)
			if len(mm) != 1 || mm[0].Factor != tt.wantFactor {
				t.Fatalf("Mismatch = %+v, want factor %v", mm, tt.wantFactor)
			}
			wantPenalty := (1 - float64(similarity.Ratio("eleph", "elephant"))/100) * tt.wantFactor
			if math.Abs(tr.Mistakes()-wantPenalty) > 1e-9 {
				t.Errorf("Mistakes = %v, want %v", tr.Mistakes(), wantPenalty)
			}
			if in.Remembered[0] != tt.line {
				t.Errorf("Remembered = %q, want raw line with markers", in.Remembered)
			}
		})
	}
}

func TestDrive_FullHintKeepsCaseFactor(t *testing.T) {
	card := deck.Card{Prompt: "city", Answers: []string{"Paris", "Lyon"}}

	rec, _, _, _ := drive(t, card, false, "!!!paris")
	mm := drilltest.Find[drill.Mismatch](rec)
	if len(mm) != 1 || mm[0].Factor != drill.FactorCaseOnly {
		t.Errorf("Mismatch = %+v, want case factor kept under a full hint", mm)
	}
	if hs := drilltest.Find[drill.HintShown](rec); len(hs) != 1 || hs[0].Text != "Paris" {
		t.Errorf("HintShown = %+v, want full reveal", hs)
	}
}

func TestDrive_HintedExactGuessIsCorrect(t *testing.T) {
	card := deck.Card{Prompt: "p", Answers: []string{"yes"}}

	rec, tr, _, err := drive(t, card, false, "!yes")
	if err != nil {
		t.Fatalf("Drive error: %v", err)
	}
	if tr.Questions() != 1 || tr.Mistakes() != 0 {
		t.Errorf("Questions/Mistakes = %d/%v, want 1/0", tr.Questions(), tr.Mistakes())
	}
	if len(drilltest.Find[drill.HintShown](rec)) != 0 {
		t.Error("no hint expected for a correct guess")
	}
}

func TestDrive_NormalizesInput(t *testing.T) {
	card := deck.Card{Prompt: "drink", Answers: []string{"café"}}

	_, tr, _, err := drive(t, card, false, "  café  ")
	if err != nil {
		t.Fatalf("Drive error: %v", err)
	}
	if tr.Questions() != 1 {
		t.Errorf("Questions = %d, want 1", tr.Questions())
	}
}

func TestDrive_EmptyAnswers(t *testing.T) {
	card := deck.Card{Prompt: "broken", Answers: nil}

	rec, _, in, err := drive(t, card, false, "x")
	if !errors.Is(err, deck.ErrEmptyAnswerSet) {
		t.Fatalf("Drive error = %v, want ErrEmptyAnswerSet", err)
	}
	if in.Reads() != 0 || len(rec.Events) != 0 {
		t.Error("a card without answers must not prompt")
	}
}

func TestDrive_InputEnded(t *testing.T) {
	card := deck.Card{Prompt: "p", Answers: []string{"yes"}}

	_, _, _, err := drive(t, card, false)
	if !errors.Is(err, drill.ErrInputEnded) || !errors.Is(err, io.EOF) {
		t.Errorf("Drive error = %v, want ErrInputEnded wrapping io.EOF", err)
	}
}

func TestDrive_Cancelled(t *testing.T) {
	card := deck.Card{Prompt: "p", Answers: []string{"yes"}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := drill.NewDriver(drilltest.NewScript("yes"), &drilltest.Recorder{}, similarity.ScorerFunc(similarity.Ratio))
	err := d.Drive(ctx, card, session.NewTracker(), false)
	if !errors.Is(err, drill.ErrInputEnded) || !errors.Is(err, context.Canceled) {
		t.Errorf("Drive error = %v, want ErrInputEnded wrapping context.Canceled", err)
	}
}

type failingReader struct{}

func (failingReader) ReadLine(context.Context) (string, error) { return "", errors.New("tty gone") }
func (failingReader) Remember(string)                          {}

func TestDrive_ReadError(t *testing.T) {
	card := deck.Card{Prompt: "p", Answers: []string{"yes"}}
	d := drill.NewDriver(failingReader{}, &drilltest.Recorder{}, similarity.ScorerFunc(similarity.Ratio))

	err := d.Drive(context.Background(), card, session.NewTracker(), false)
	if err == nil || errors.Is(err, drill.ErrInputEnded) {
		t.Errorf("Drive error = %v, want a plain read error", err)
	}
}
