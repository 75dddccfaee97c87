package section

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultDocument []byte

// Load reads a document from a YAML (or JSON) file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse document %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a document. An empty sections list is valid and yields an
// inert sequence.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Default returns the built-in demo document.
func Default() *Document {
	doc, err := Parse(defaultDocument)
	if err != nil {
		panic(fmt.Sprintf("embedded document: %v", err))
	}
	return doc
}
