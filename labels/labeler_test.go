package labels

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func word(parts ...string) Word {
	syl := make([]Syllable, len(parts))
	for i, p := range parts {
		syl[i] = Syllable{Text: p}
	}
	return NewWord(syl)
}

func TestBoundaryLabeler(t *testing.T) {
	tests := []struct {
		name      string
		word      Word
		response  []string
		tolerance int
		want      []Tag
	}{
		{
			name:     "perfect match",
			word:     word("ca", "t"),
			response: []string{"ca", "t"},
			want:     []Tag{TP, TP},
		},
		{
			name:     "extra split",
			word:     word("ca", "t"),
			response: []string{"c", "a", "t"},
			want:     []Tag{FP, TP, TP},
		},
		{
			name:     "missed split",
			word:     word("ba", "na", "na"),
			response: []string{"bana", "na"},
			want:     []Tag{FN, TP, TP},
		},
		{
			name:     "shifted split",
			word:     word("ba", "na", "na"),
			response: []string{"ban", "ana"},
			want:     []Tag{FN, FP, FN, TP},
		},
		{
			name:      "shifted split within tolerance",
			word:      word("ba", "na", "na"),
			response:  []string{"ban", "ana"},
			tolerance: 1,
			want:      []Tag{TP, FN, TP},
		},
		{
			name:     "response does not spell word",
			word:     word("ca", "t"),
			response: []string{"co", "t"},
			want:     []Tag{Pass},
		},
		{
			name:     "empty response",
			word:     word("ca", "t"),
			response: nil,
			want:     []Tag{Pass},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BoundaryLabeler{Tolerance: tt.tolerance}.Label(tt.word, tt.response)
			if err != nil {
				t.Fatalf("Label() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Label() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	items := []Item{
		{Word: word("ca", "t"), Response: []string{"ca", "t"}},
		{Word: word("ba", "na", "na"), Response: []string{"bana", "na"}},
	}

	s, err := Build("test-model", items, BoundaryLabeler{})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if s.Model() != "test-model" {
		t.Errorf("Model() = %q", s.Model())
	}
	if s.Index() != 2 || s.Len() != 2 {
		t.Errorf("Index() = %d, Len() = %d, want 2, 2", s.Index(), s.Len())
	}
	if s.Entry(1).Word != "banana" {
		t.Errorf("Entry(1).Word = %q, want %q", s.Entry(1).Word, "banana")
	}
	if !reflect.DeepEqual(s.Entry(1).Tags, []Tag{FN, TP, TP}) {
		t.Errorf("Entry(1).Tags = %v", s.Entry(1).Tags)
	}
}

func TestBuild_LabelerError(t *testing.T) {
	boom := errors.New("boom")
	l := LabelerFunc(func(w Word, _ []string) ([]Tag, error) {
		if strings.HasPrefix(w.String(), "b") {
			return nil, boom
		}
		return []Tag{TP}, nil
	})

	items := []Item{
		{Word: word("cat"), Response: []string{"cat"}},
		{Word: word("bat"), Response: []string{"bat"}},
	}

	s, err := Build("", items, l)
	if !errors.Is(err, boom) {
		t.Errorf("Build() error = %v, want %v", err, boom)
	}
	if s != nil {
		t.Error("Build() returned a Set on error")
	}
}
