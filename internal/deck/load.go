package deck

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// document is the decoded form of a deck file: a list of card records
// under the "card" key.
type document struct {
	Cards []Card `toml:"card" json:"card"`
}

type decodeFunc func(data []byte) (document, error)

var formats = map[string]decodeFunc{
	".toml": decodeTOML,
	".yaml": decodeYAML,
	".yml":  decodeYAML,
	".json": decodeJSON,
}

// Extensions lists the file extensions recognized as deck files.
func Extensions() []string {
	exts := make([]string, 0, len(formats))
	for ext := range formats {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

func joinExtensions() string {
	return strings.Join(Extensions(), ", ")
}

// CheckFormat returns a *FormatError if path does not have a deck file
// extension.
func CheckFormat(path string) error {
	if _, ok := formats[strings.ToLower(filepath.Ext(path))]; !ok {
		return &FormatError{Path: path}
	}
	return nil
}

// Load reads every deck file in paths. All formats are checked before any
// file is read, so a typo in the last argument fails fast.
func Load(paths []string) ([]Deck, error) {
	if len(paths) == 0 {
		return nil, ErrNoDecks
	}
	for _, p := range paths {
		if err := CheckFormat(p); err != nil {
			return nil, err
		}
	}

	decks := make([]Deck, 0, len(paths))
	for _, p := range paths {
		d, err := LoadFile(p)
		if err != nil {
			return nil, err
		}
		decks = append(decks, d)
	}
	return decks, nil
}

// LoadFile reads and decodes a single deck file.
func LoadFile(path string) (Deck, error) {
	if err := CheckFormat(path); err != nil {
		return Deck{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Deck{}, &LoadError{Path: path, Err: err}
	}
	d, err := Decode(path, data)
	if err != nil {
		return Deck{}, &LoadError{Path: path, Err: err}
	}
	return d, nil
}

// Decode decodes deck data in the format implied by path's extension.
func Decode(path string, data []byte) (Deck, error) {
	decode, ok := formats[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return Deck{}, &FormatError{Path: path}
	}
	doc, err := decode(data)
	if err != nil {
		return Deck{}, err
	}
	for i, c := range doc.Cards {
		if strings.TrimSpace(c.Prompt) == "" {
			return Deck{}, fmt.Errorf("card %d: missing prompt", i+1)
		}
	}
	return Deck{
		Name:  NameFromPath(path),
		Path:  path,
		Cards: doc.Cards,
	}, nil
}
