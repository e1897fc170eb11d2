package report

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	sylleval "github.com/jamesainslie/go-sylleval"
	"github.com/jamesainslie/go-sylleval/labels"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1, "1.0"},
		{0, "0.0"},
		{0.5, "0.5"},
		{2.0 / 3.0, "0.6666666666666666"},
		{1e-7, "1e-07"},
	}

	for _, tt := range tests {
		if got := FormatValue(tt.in); got != tt.want {
			t.Errorf("FormatValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteMetrics(t *testing.T) {
	set := labels.NewSet("m", 2, []labels.Entry{
		{Word: "cat", Tags: []labels.Tag{labels.TP, labels.FP}},
		{Word: "dog", Tags: []labels.Tag{labels.FN, labels.TP}},
	})
	sn := sylleval.New(set).Snapshot()

	var buf bytes.Buffer
	if err := WriteMetrics(&buf, sn); err != nil {
		t.Fatalf("WriteMetrics() error = %v", err)
	}

	want := "Accuracy word: 0.0\n" +
		"Accuracy syllable: 0.5\n" +
		"Precision: 0.6666666666666666\n" +
		"Recall: 0.6666666666666666\n" +
		"F1: 0.6666666666666666\n"
	if buf.String() != want {
		t.Errorf("WriteMetrics() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestWriteMetrics_Undefined(t *testing.T) {
	set := labels.NewSet("m", 1, []labels.Entry{{Word: "hmm", Tags: []labels.Tag{labels.Pass}}})
	sn := sylleval.New(set).Snapshot()

	var buf bytes.Buffer
	if err := WriteMetrics(&buf, sn); err != nil {
		t.Fatalf("WriteMetrics() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(sylleval.AllMetrics) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(sylleval.AllMetrics), buf.String())
	}
	for i, line := range lines {
		prefix := sylleval.AllMetrics[i].Label() + ": undefined ("
		if !strings.HasPrefix(line, prefix) {
			t.Errorf("line %d = %q, want prefix %q", i, line, prefix)
		}
	}
}

func TestWriteCounts(t *testing.T) {
	var buf bytes.Buffer
	c := sylleval.Counts{TruePositives: 2, FalsePositives: 1, FalseNegatives: 1, Passes: 3, Words: 5}
	if err := WriteCounts(&buf, c); err != nil {
		t.Fatalf("WriteCounts() error = %v", err)
	}
	want := "(TP: 2, FP: 1, FN: 1, Pass: 3, Words: 5)\n"
	if buf.String() != want {
		t.Errorf("WriteCounts() = %q, want %q", buf.String(), want)
	}
}

func TestWriteTable(t *testing.T) {
	set := labels.NewSet("mixtral", 2, []labels.Entry{
		{Word: "cat", Response: []string{"ca", "t"}, Tags: []labels.Tag{labels.TP, labels.TP}},
		{Word: "hmm", Response: nil, Tags: []labels.Tag{labels.Pass}},
	})

	var buf bytes.Buffer
	if err := WriteTable(&buf, set); err != nil {
		t.Fatalf("WriteTable() error = %v", err)
	}

	want := "mixtral\n" +
		Separator + "\n" +
		"Word,Response,Labels\n" +
		"cat,ca-t,TP-TP\n" +
		"hmm,,Pass\n" +
		Separator + "\n"
	if buf.String() != want {
		t.Errorf("WriteTable() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestWriteYAML(t *testing.T) {
	set := labels.NewSet("m", 2, []labels.Entry{
		{Word: "cat", Tags: []labels.Tag{labels.FP}},
		{Word: "dog", Tags: []labels.Tag{labels.FN}},
	})
	sn := sylleval.New(set).Snapshot()

	var buf bytes.Buffer
	if err := WriteYAML(&buf, sn); err != nil {
		t.Fatalf("WriteYAML() error = %v", err)
	}

	var got yamlSnapshot
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v\n%s", err, buf.String())
	}

	if got.Counts != sn.Counts {
		t.Errorf("counts = %+v, want %+v", got.Counts, sn.Counts)
	}
	p, ok := got.Metrics["precision"]
	if !ok || p.Value == nil || *p.Value != 0 {
		t.Errorf("precision = %+v, want value 0", p)
	}
	f1, ok := got.Metrics["f1"]
	if !ok || f1.Value != nil || f1.Error == "" {
		t.Errorf("f1 = %+v, want error and no value", f1)
	}
}
