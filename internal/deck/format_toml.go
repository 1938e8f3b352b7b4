package deck

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// decodeTOML reads the [[card]] tables of a TOML deck. Unknown keys are
// ignored so decks may carry their own metadata.
func decodeTOML(data []byte) (document, error) {
	var doc document
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return document{}, fmt.Errorf("parse toml: %w", err)
	}
	return doc, nil
}
