// Package deck holds flashcards, their answer sets, and deck file loading.
package deck

import (
	"math/rand/v2"
	"path/filepath"
	"strings"
)

// Card is one prompt with its acceptable answers as written in the deck.
type Card struct {
	Prompt  string   `toml:"prompt" yaml:"prompt" json:"prompt"`
	Answers []string `toml:"answers" yaml:"answers" json:"answers"`
}

// ParseAnswers parses the card's raw answers into an AnswerSet.
func (c Card) ParseAnswers() (*AnswerSet, error) {
	return ParseAnswers(c.Answers)
}

// Deck is an ordered collection of cards loaded from one source.
type Deck struct {
	Name  string
	Path  string
	Cards []Card
}

// NameFromPath derives a display name from a deck file path.
func NameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Join concatenates decks in order into a single deck.
func Join(decks ...Deck) Deck {
	var (
		names []string
		cards []Card
	)
	for _, d := range decks {
		names = append(names, d.Name)
		cards = append(cards, d.Cards...)
	}
	return Deck{Name: strings.Join(names, "+"), Cards: cards}
}

// Shuffled returns a copy of d with its cards in uniformly random order.
// A nil r uses the global source.
func (d Deck) Shuffled(r *rand.Rand) Deck {
	cards := make([]Card, len(d.Cards))
	copy(cards, d.Cards)
	swap := func(i, j int) { cards[i], cards[j] = cards[j], cards[i] }
	if r != nil {
		r.Shuffle(len(cards), swap)
	} else {
		rand.Shuffle(len(cards), swap)
	}
	d.Cards = cards
	return d
}

// Limit returns d truncated to its first n cards. n <= 0 means no limit.
func (d Deck) Limit(n int) Deck {
	if n > 0 && n < len(d.Cards) {
		d.Cards = d.Cards[:n]
	}
	return d
}

// Len returns the number of cards.
func (d Deck) Len() int { return len(d.Cards) }
