package format

import (
	"github.com/goccy/go-yaml"
)

// DecodeYAML parses a YAML layout document.
func DecodeYAML(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// EncodeYAML renders doc back to YAML, for the `fmt` CLI subcommand's
// round-trip between formats.
func EncodeYAML(doc *Document) ([]byte, error) {
	return yaml.Marshal(doc)
}

// EncodeSolvedYAML renders a solved-symbol snapshot to YAML.
func EncodeSolvedYAML(symbols []SolvedSymbol) ([]byte, error) {
	return yaml.Marshal(solvedMap(symbols))
}
