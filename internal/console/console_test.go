package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/habid/internal/deck"
	"github.com/abhisek/habid/internal/drill"
	"github.com/abhisek/habid/internal/session"
	"github.com/abhisek/habid/internal/similarity"
)

type recorded struct {
	runID, line string
}

func TestConsole_DrivesCardOverPlainInput(t *testing.T) {
	var out bytes.Buffer
	var rows []recorded
	c := New(Options{
		In:  strings.NewReader("paris\n?\nParis\n"),
		Out: &out,
		History: []string{"older"},
		Record: func(runID, line string) {
			rows = append(rows, recorded{runID, line})
		},
	})

	c.Observe(drill.RunStarted{RunID: "run-1", Deck: "capitals", Cards: 1})
	tracker := session.NewTracker()
	d := drill.NewDriver(c, c, similarity.ScorerFunc(similarity.Ratio))
	err := d.Drive(context.Background(), deck.Card{Prompt: "capital of France", Answers: []string{"Paris"}}, tracker, false)
	require.NoError(t, err)

	want := strings.Join([]string{
		"",
		"capital of France",
		"answer [1] (? help): paris",
		"case mismatch only",
		"best ratio: 100%",
		"answer [1] (? help): ?",
		HelpText,
		"answer [1] (? help): Paris",
		"correct!",
		"",
	}, "\n")
	assert.Equal(t, want, out.String())

	assert.Equal(t, []recorded{{"run-1", "paris"}, {"run-1", "Paris"}}, rows)
	assert.Equal(t, "run-1", c.RunID())
	assert.Equal(t, []string{"older", "paris", "Paris"}, c.recall.Lines())
}

func TestConsole_InputEnded(t *testing.T) {
	c := New(Options{In: strings.NewReader(""), Out: &bytes.Buffer{}})
	d := drill.NewDriver(c, c, similarity.ScorerFunc(similarity.Ratio))
	err := d.Drive(context.Background(), deck.Card{Prompt: "p", Answers: []string{"a"}}, session.NewTracker(), false)
	assert.True(t, errors.Is(err, drill.ErrInputEnded))
}

func TestConsole_CloseEndsInput(t *testing.T) {
	c := New(Options{In: strings.NewReader("paris\n"), Out: &bytes.Buffer{}})
	require.NoError(t, c.Close())
	_, err := c.ReadLine(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}

func TestConsole_InteractiveUsesLineEditor(t *testing.T) {
	c := New(Options{In: strings.NewReader(""), Out: &bytes.Buffer{}, Interactive: true})
	_, ok := c.source.(*TTYReader)
	assert.True(t, ok, "source = %T", c.source)
}
