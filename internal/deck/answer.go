package deck

import (
	"strings"

	"github.com/abhisek/habid/internal/similarity"
)

// PrimaryMarker prefixes an answer that is the preferred one among
// several acceptable variants.
const PrimaryMarker = "|"

// Answer is one acceptable answer of a card after parsing.
type Answer struct {
	Text    string
	Primary bool
}

// AnswerSet tracks the answers of a card that have not been guessed yet.
// Iteration follows first-insertion order.
type AnswerSet struct {
	order      []string
	primary    map[string]bool
	size       int
	hasPrimary bool
}

// Match is the result of comparing a guess against the remaining answers.
type Match struct {
	// Answer is the best candidate, empty when no answers remain.
	Answer string
	// Ratio is the similarity of the guess to Answer in percent.
	Ratio int
	// CaseOnly reports that Answer equals the guess except for letter case.
	CaseOnly bool
}

// ParseAnswers builds an AnswerSet from raw answer strings. Each entry is
// normalized and a leading PrimaryMarker is stripped and recorded.
// A repeated answer keeps its first position and takes the primary flag
// of its last occurrence. Entries that end up empty are dropped; if none
// remain ErrEmptyAnswerSet is returned.
func ParseAnswers(raw []string) (*AnswerSet, error) {
	s := &AnswerSet{primary: make(map[string]bool, len(raw))}
	for _, r := range raw {
		text := Normalize(r)
		primary := false
		if rest, ok := strings.CutPrefix(text, PrimaryMarker); ok {
			primary = true
			text = strings.TrimSpace(rest)
		}
		if text == "" {
			continue
		}
		if _, seen := s.primary[text]; !seen {
			s.order = append(s.order, text)
		}
		s.primary[text] = primary
		if primary {
			s.hasPrimary = true
		}
	}
	if len(s.order) == 0 {
		return nil, ErrEmptyAnswerSet
	}
	s.size = len(s.order)
	return s, nil
}

// Size is the number of answers the set was parsed with. It does not
// shrink as answers are removed.
func (s *AnswerSet) Size() int { return s.size }

// Remaining is the number of answers not yet guessed.
func (s *AnswerSet) Remaining() int { return len(s.order) }

// Answered is the number of answers guessed so far.
func (s *AnswerSet) Answered() int { return s.size - len(s.order) }

// Empty reports whether every answer has been guessed.
func (s *AnswerSet) Empty() bool { return len(s.order) == 0 }

// HasPrimary reports whether any answer was marked primary.
func (s *AnswerSet) HasPrimary() bool { return s.hasPrimary }

// SingleAnswer reports whether one correct guess completes the card:
// either the set was parsed with exactly one answer or force is set.
func (s *AnswerSet) SingleAnswer(force bool) bool {
	return force || s.size == 1
}

// Contains reports whether text is a remaining answer, compared exactly.
func (s *AnswerSet) Contains(text string) bool {
	_, ok := s.primary[text]
	return ok
}

// IsPrimary reports whether text is a remaining answer marked primary.
func (s *AnswerSet) IsPrimary(text string) bool {
	return s.primary[text]
}

// Remove drops text from the remaining answers. It reports whether text
// was present.
func (s *AnswerSet) Remove(text string) bool {
	if _, ok := s.primary[text]; !ok {
		return false
	}
	delete(s.primary, text)
	for i, a := range s.order {
		if a == text {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Answers returns the remaining answers in order.
func (s *AnswerSet) Answers() []Answer {
	out := make([]Answer, 0, len(s.order))
	for _, a := range s.order {
		out = append(out, Answer{Text: a, Primary: s.primary[a]})
	}
	return out
}

// BestMatch finds the remaining answer closest to given. The first answer
// reaching the highest ratio wins. An answer equal to given apart from
// letter case takes precedence over any ratio; its ratio is computed on
// the case-folded pair.
func (s *AnswerSet) BestMatch(given string, scorer similarity.Scorer) Match {
	var best Match
	best.Ratio = -1
	for _, a := range s.order {
		if a != given && strings.EqualFold(a, given) {
			return Match{
				Answer:   a,
				Ratio:    scorer.Score(strings.ToLower(given), strings.ToLower(a)),
				CaseOnly: true,
			}
		}
		if r := scorer.Score(given, a); r > best.Ratio {
			best.Answer = a
			best.Ratio = r
		}
	}
	if best.Ratio < 0 {
		return Match{}
	}
	return best
}
