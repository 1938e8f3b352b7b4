// Package hint derives partial reveals of an answer from a guess prefix.
package hint

import "strings"

// Level is how much of the best-matching answer to reveal.
type Level int

const (
	None  Level = iota // no hint requested
	Small              // second half revealed
	Big                // first half plus one rune revealed
	Full               // whole answer revealed
)

// Marker is the character a guess is prefixed with to request a hint.
// One marker asks for a small hint, two for a big one, three for all of it.
const Marker = '!'

// Filler replaces the hidden runes of a reveal.
const Filler = '.'

func (l Level) String() string {
	switch l {
	case None:
		return "none"
	case Small:
		return "small"
	case Big:
		return "big"
	case Full:
		return "full"
	default:
		return "unknown"
	}
}

// Parse counts up to three leading markers in line and returns the
// requested level together with the text that follows exactly that many
// markers.
func Parse(line string) (Level, string) {
	n := 0
	for n < int(Full) && n < len(line) && line[n] == Marker {
		n++
	}
	return Level(n), line[n:]
}

// Reveal returns best with part of it replaced by Filler, keeping the
// revealed runes in their original position so the result has the same
// rune length as best.
func Reveal(best string, level Level) string {
	r := []rune(best)
	half := len(r) / 2

	switch level {
	case Full:
		return best
	case Small:
		return strings.Repeat(string(Filler), half) + string(r[half:])
	case Big:
		n := min(half+1, len(r))
		return string(r[:n]) + strings.Repeat(string(Filler), len(r)-n)
	default:
		return ""
	}
}
