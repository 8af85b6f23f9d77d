package report

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/robjustinwagner/dectree"
	"github.com/robjustinwagner/dectree/feature"
	"github.com/robjustinwagner/dectree/tree"
)

var odor = feature.NewFeature("odor", []string{"a", "n"})

func TestWriteGainReport(t *testing.T) {
	var buf bytes.Buffer
	err := WriteGainReport(&buf, []dectree.FeatureGain{
		{Feature: odor, Gain: 0.9068},
		{Feature: feature.NewFeature("size", []string{"s"}), Gain: 0.9999},
		{Feature: feature.NewFeature("shape", []string{"x"}), Gain: 1},
	})
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	expected := "odor: info gain = 0.906\nsize: info gain = 0.999\nshape: info gain = 1.000\n"
	if buf.String() != expected {
		t.Errorf("Expected\n%s\ngot\n%s", expected, buf.String())
	}
}

func TestWriteAccuracy(t *testing.T) {
	cases := []struct {
		fallbacks int
		expected  string
	}{
		{0, "test accuracy: 9/10 = 0.9000\n"},
		{1, "test accuracy: 9/10 = 0.9000 (1 fallback)\n"},
		{3, "test accuracy: 9/10 = 0.9000 (3 fallbacks)\n"},
	}
	for _, c := range cases {
		var buf bytes.Buffer
		err := WriteAccuracy(&buf, "test", tree.Score{Correct: 9, Total: 10}, c.fallbacks)
		if err != nil {
			t.Fatalf("Unexpected error %v", err)
		}
		if buf.String() != c.expected {
			t.Errorf("Expected %q, got %q", c.expected, buf.String())
		}
	}
}

func pruningReport() *dectree.PruningReport {
	return &dectree.PruningReport{
		Initial: tree.Score{Correct: 2, Total: 4},
		Final:   tree.Score{Correct: 3, Total: 4},
		Rounds: []dectree.PruningRound{{
			Round:      1,
			Candidates: 2,
			Collapsed:  feature.Conjunction{feature.NewCriterion(odor, "a")},
			Label:      "e",
			Score:      tree.Score{Correct: 3, Total: 4},
			Depth:      1,
		}},
	}
}

func TestWritePruningReport(t *testing.T) {
	var buf bytes.Buffer
	err := WritePruningReport(&buf, pruningReport())
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	expected := "round 1: collapsed odor is a into (e) out of 2 candidates, tune accuracy 3/4 = 0.7500\n" +
		"pruning: 1 rounds, tune accuracy 0.5000 -> 0.7500\n"
	if buf.String() != expected {
		t.Errorf("Expected\n%s\ngot\n%s", expected, buf.String())
	}
}

func TestSavePruningPlot(t *testing.T) {
	p, err := PruningPlot(pruningReport())
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	if p.Y.Min != 0 || p.Y.Max != 1 {
		t.Errorf("Expected accuracy axis from 0 to 1, got %v to %v", p.Y.Min, p.Y.Max)
	}
	err = SavePruningPlot(pruningReport(), filepath.Join(t.TempDir(), "pruning.svg"))
	if err != nil {
		t.Errorf("Unexpected error %v", err)
	}
}
