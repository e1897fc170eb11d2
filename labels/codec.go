package labels

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ProtoExt is the file extension that selects the binary encoding.
const ProtoExt = ".pb"

type setDoc struct {
	Model  *string            `json:"model,omitempty"`
	Index  *int               `json:"index"`
	Labels *[]json.RawMessage `json:"labels"`
}

type entryDoc struct {
	Word     *string    `json:"word"`
	Response *[]*string `json:"response"`
	Label    *[]Tag     `json:"label"`
}

// Load parses a label set document. The whole document is rejected if any
// required key is absent or mistyped; no partial Set is returned.
func Load(r io.Reader) (*Set, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputLoad, err)
	}
	return parse(data)
}

func parse(data []byte) (*Set, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrInputLoad)
	}

	var doc setDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	if doc.Index == nil {
		return nil, fmt.Errorf("%w: missing %q", ErrMalformedInput, "index")
	}
	if *doc.Index < 0 {
		return nil, fmt.Errorf("%w: negative index %d", ErrMalformedInput, *doc.Index)
	}
	if doc.Labels == nil {
		return nil, fmt.Errorf("%w: missing %q", ErrMalformedInput, "labels")
	}

	entries := make([]Entry, 0, len(*doc.Labels))
	for i, raw := range *doc.Labels {
		e, err := parseEntry(raw)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		entries = append(entries, e)
	}

	var model string
	if doc.Model != nil {
		model = *doc.Model
	}

	return &Set{model: model, index: *doc.Index, entries: entries}, nil
}

func parseEntry(raw json.RawMessage) (Entry, error) {
	var d entryDoc
	if err := json.Unmarshal(raw, &d); err != nil {
		return Entry{}, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	var missing []string
	if d.Word == nil {
		missing = append(missing, "word")
	}
	if d.Response == nil {
		missing = append(missing, "response")
	}
	if d.Label == nil {
		missing = append(missing, "label")
	}
	if len(missing) > 0 {
		return Entry{}, fmt.Errorf("%w: missing %s", ErrMalformedInput, strings.Join(missing, ", "))
	}

	response := make([]string, len(*d.Response))
	for i, r := range *d.Response {
		if r == nil {
			return Entry{}, fmt.Errorf("%w: response element %d is not a string", ErrMalformedInput, i)
		}
		response[i] = *r
	}

	return Entry{Word: *d.Word, Response: response, Tags: *d.Label}, nil
}

// Serialize writes s as an indented JSON document that Load accepts.
// A nil Set is written as an empty document.
func Serialize(w io.Writer, s *Set) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toDoc(s))
}

type outDoc struct {
	Model  string  `json:"model,omitempty"`
	Index  int     `json:"index"`
	Labels []Entry `json:"labels"`
}

func toDoc(s *Set) outDoc {
	if s == nil {
		return outDoc{Labels: []Entry{}}
	}
	entries := make([]Entry, len(s.entries))
	for i, e := range s.entries {
		e = e.clone()
		if e.Response == nil {
			e.Response = []string{}
		}
		if e.Tags == nil {
			e.Tags = []Tag{}
		}
		entries[i] = e
	}
	return outDoc{Model: s.model, Index: s.index, Labels: entries}
}

// LoadFile reads a label set from path. Files ending in ProtoExt are decoded
// as the binary encoding, everything else as JSON.
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputLoad, err)
	}

	if filepath.Ext(path) == ProtoExt {
		return DecodeProto(data)
	}
	return parse(data)
}

// SaveFile writes s to path using the encoding selected by its extension.
func SaveFile(path string, s *Set) error {
	var data []byte
	if filepath.Ext(path) == ProtoExt {
		b, err := EncodeProto(s)
		if err != nil {
			return err
		}
		data = b
	} else {
		var buf bytes.Buffer
		if err := Serialize(&buf, s); err != nil {
			return fmt.Errorf("encoding label set: %w", err)
		}
		data = buf.Bytes()
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// IsLoadError reports whether err came from loading or validating input.
func IsLoadError(err error) bool {
	return errors.Is(err, ErrInputLoad) || errors.Is(err, ErrMalformedInput)
}
