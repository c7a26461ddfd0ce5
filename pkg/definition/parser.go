package definition

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser decodes a definition document from raw file content.
type Parser interface {
	Parse(ctx context.Context, content []byte) (*Document, error)

	// SupportsFileExtension reports whether the parser handles files with the
	// given extension, with or without the leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser chosen by file extension, or nil if the
// extension is not supported.
func NewParserForFile(filename string) Parser {
	for _, p := range []Parser{NewYAMLParser(), NewJSONParser()} {
		if p.SupportsFileExtension(filepath.Ext(filename)) {
			return p
		}
	}
	return nil
}

// YAMLParser implements the Parser interface for YAML files.
// Unknown keys are rejected so typos in hook or state fields surface early.
type YAMLParser struct{}

func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

func (p *YAMLParser) Parse(ctx context.Context, content []byte) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return &doc, nil
}

func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}

// JSONParser implements the Parser interface for JSON files.
type JSONParser struct{}

func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

func (p *JSONParser) Parse(ctx context.Context, content []byte) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	dec := json.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	return &doc, nil
}

func (p *JSONParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "json")
}
