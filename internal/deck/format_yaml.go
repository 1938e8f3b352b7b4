package deck

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type yamlDocument struct {
	Card  []Card `yaml:"card"`
	Cards []Card `yaml:"cards"`
}

// decodeYAML reads a YAML deck. Cards may be listed under "card" or
// "cards"; unknown keys and multiple documents are rejected.
func decodeYAML(data []byte) (document, error) {
	var doc yamlDocument
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil && err != io.EOF {
		return document{}, fmt.Errorf("parse yaml: %w", err)
	}
	var extra yaml.Node
	if err := decoder.Decode(&extra); err != io.EOF {
		if err == nil {
			return document{}, fmt.Errorf("parse yaml: multiple YAML documents are not supported")
		}
		return document{}, fmt.Errorf("parse yaml: %w", err)
	}
	return document{Cards: append(doc.Card, doc.Cards...)}, nil
}
