package stopwords

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// Document is a parsed and schema-validated stopword metadata document.
type Document struct {
	Sets map[string]Entry `json:"sets"`
}

// Entry declares a single named resource. Exactly one shape is valid: a
// file-bearing entry (optionally with extends), an extends-only entry, or a
// pure alias carrying nothing but an optional description.
type Entry struct {
	File        string
	Extends     []string
	Alias       string
	Description string
}

// stringList accepts either a JSON string or an array of strings, mirroring
// the metadata format's tolerance for a single-parent extends declaration.
type stringList []string

func (l *stringList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*l = stringList{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return errors.New("'extends' must be a string or a list of strings")
	}
	*l = stringList(many)
	return nil
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	var raw struct {
		File        string     `json:"file"`
		Extends     stringList `json:"extends"`
		Alias       *string    `json:"alias"`
		Description string     `json:"description"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Alias != nil && strings.TrimSpace(*raw.Alias) == "" {
		return errors.New("'alias' cannot be empty")
	}
	e.File = raw.File
	e.Extends = []string(raw.Extends)
	if raw.Alias != nil {
		e.Alias = *raw.Alias
	}
	e.Description = raw.Description
	return nil
}

// loadDocument reads and validates the metadata document at docPath within
// fsys. Every failure mode maps to ErrSchema so callers see a single failure
// kind for authoring mistakes at the document level.
func loadDocument(fsys fs.FS, docPath string) (*Document, error) {
	raw, err := fs.ReadFile(fsys, docPath)
	if err != nil {
		return nil, fmt.Errorf("%w: metadata file not found at %q: %v", ErrSchema, docPath, err)
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: metadata at %q could not be decoded: %v", ErrSchema, docPath, err)
	}
	if len(doc.Sets) == 0 {
		return nil, fmt.Errorf("%w: metadata 'sets' at %q must be a non-empty map", ErrSchema, docPath)
	}
	return &doc, nil
}
