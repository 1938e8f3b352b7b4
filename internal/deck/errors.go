package deck

import (
	"errors"
	"fmt"
)

var (
	// ErrNoDecks is returned when no deck files were supplied.
	ErrNoDecks = errors.New("no deck files given")

	// ErrEmptyAnswerSet is returned for a card without usable answers.
	ErrEmptyAnswerSet = errors.New("card has no answers")
)

// FormatError indicates a deck file whose extension is not a known format.
type FormatError struct {
	Path string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s is not a deck file (expected one of: %s)", e.Path, joinExtensions())
}

// LoadError indicates a deck file that could not be read or decoded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load deck %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
