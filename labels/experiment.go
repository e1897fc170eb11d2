package labels

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// ResponseSeparator splits the syllables string of a model response.
const ResponseSeparator = "-"

// Instruction is one prompt sent to a model together with its reply.
type Instruction struct {
	Instruction string   `json:"instruction"`
	Word        Word     `json:"word"`
	Response    Response `json:"response"`
	FullPrompt  string   `json:"full_prompt"`
}

// Response is the structured reply of a model.
type Response struct {
	Syllables   string `json:"syllables"`
	Explanation string `json:"explanation,omitempty"`
}

// Split returns the hyphen-separated syllables of r, trimmed of surrounding
// space. An empty reply yields no syllables.
func (r Response) Split() []string {
	s := strings.TrimSpace(r.Syllables)
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ResponseSeparator)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// Experiment is a batch of instructions answered by one model.
type Experiment struct {
	Model        string        `json:"model_name"`
	Instructions []Instruction `json:"instruction_containers"`
}

// Items converts the experiment into labeler input, one Item per instruction.
func (e *Experiment) Items() []Item {
	items := make([]Item, len(e.Instructions))
	for i, in := range e.Instructions {
		items[i] = Item{Word: in.Word, Response: in.Response.Split()}
	}
	return items
}

// Label runs l over every instruction and returns the resulting label set.
func (e *Experiment) Label(l Labeler) (*Set, error) {
	return Build(e.Model, e.Items(), l)
}

type experimentDoc struct {
	Model        *string            `json:"model_name"`
	Instructions *[]json.RawMessage `json:"instruction_containers"`
}

type instructionDoc struct {
	Instruction string          `json:"instruction"`
	Word        *Word           `json:"word"`
	Response    json.RawMessage `json:"response"`
	FullPrompt  string          `json:"full_prompt"`
}

// LoadExperiment parses an experiment record. Every instruction must carry a
// word; a missing or empty response is treated as a model that gave no
// syllables.
func LoadExperiment(r io.Reader) (*Experiment, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputLoad, err)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrInputLoad)
	}

	var doc experimentDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	if doc.Instructions == nil {
		return nil, fmt.Errorf("%w: missing %q", ErrMalformedInput, "instruction_containers")
	}

	exp := &Experiment{Instructions: make([]Instruction, 0, len(*doc.Instructions))}
	if doc.Model != nil {
		exp.Model = *doc.Model
	}
	for i, raw := range *doc.Instructions {
		in, err := parseInstruction(raw)
		if err != nil {
			return nil, fmt.Errorf("instruction %d: %w", i, err)
		}
		exp.Instructions = append(exp.Instructions, in)
	}
	return exp, nil
}

func parseInstruction(raw json.RawMessage) (Instruction, error) {
	var d instructionDoc
	if err := json.Unmarshal(raw, &d); err != nil {
		return Instruction{}, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	if d.Word == nil {
		return Instruction{}, fmt.Errorf("%w: missing %q", ErrMalformedInput, "word")
	}

	in := Instruction{Instruction: d.Instruction, Word: *d.Word, FullPrompt: d.FullPrompt}
	if len(d.Response) > 0 && string(d.Response) != "null" {
		if err := json.Unmarshal(d.Response, &in.Response); err != nil {
			return Instruction{}, fmt.Errorf("%w: response: %w", ErrMalformedInput, err)
		}
	}
	return in, nil
}

// LoadExperimentFile reads an experiment record from path.
func LoadExperimentFile(path string) (*Experiment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputLoad, err)
	}
	defer f.Close()
	return LoadExperiment(f)
}
