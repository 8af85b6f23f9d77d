package dectree

import (
	"math"
	"testing"

	"github.com/robjustinwagner/dectree/feature"
)

func TestBinaryEntropy(t *testing.T) {
	cases := []struct {
		a, b     int
		expected float64
	}{
		{0, 0, 0},
		{4, 0, 0},
		{0, 7, 0},
		{1, 1, 1},
		{5, 5, 1},
		{1, 3, 0.8112781244591328},
		{2, 1, 0.9182958340544896},
	}
	for _, c := range cases {
		h := BinaryEntropy(c.a, c.b)
		if math.Abs(h-c.expected) > 1e-12 {
			t.Errorf("Expected entropy %v for %d/%d, got %v", c.expected, c.a, c.b, h)
		}
	}
}

func TestBinaryEntropyPanicsOnNegativeCounts(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Expected a panic for negative counts")
		}
	}()
	BinaryEntropy(-1, 2)
}

func TestInformationGainIsNeverNegative(t *testing.T) {
	shape := feature.NewFeature("Shape", []string{"round", "square", "star"})
	d := newDataset(t, answer, []*feature.Feature{shape, color, size},
		[]string{"Yes", "round", "R", "S"},
		[]string{"No", "round", "G", "L"},
		[]string{"No", "square", "R", "S"},
		[]string{"Yes", "star", "G", "S"},
		[]string{"Yes", "star", "R", "L"},
		[]string{"No", "square", "G", "L"},
		[]string{"Yes", "round", "G", "S"},
	)
	h := Entropy(d)
	for _, f := range d.Schema().Features() {
		g, err := InformationGain(d, f)
		if err != nil {
			t.Fatalf("Unexpected error %v", err)
		}
		if g < 0 {
			t.Errorf("Expected non negative gain for %s, got %v", f.Name(), g)
		}
		ch, err := ConditionalEntropy(d, f)
		if err != nil {
			t.Fatalf("Unexpected error %v", err)
		}
		if ch > h+1e-12 {
			t.Errorf("Expected H(Y|%s) = %v <= H(Y) = %v", f.Name(), ch, h)
		}
	}
}

func TestPartitionWeightsSumToOne(t *testing.T) {
	shape := feature.NewFeature("Shape", []string{"round", "square", "star"})
	d := newDataset(t, answer, []*feature.Feature{shape},
		[]string{"Yes", "round"},
		[]string{"No", "round"},
		[]string{"No", "square"},
	)
	p, err := NewPartition(d, shape)
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	if len(p.Subsets) != 3 {
		t.Fatalf("Expected 3 subsets, got %d", len(p.Subsets))
	}
	var sum float64
	for _, w := range p.Weights() {
		sum += w
	}
	if math.Abs(sum-1) > 1e-12 {
		t.Errorf("Expected weights to sum 1, got %v", sum)
	}
	if p.Subsets[2].Count() != 0 {
		t.Errorf("Expected star subset to be empty, got %v", p.Subsets[2])
	}
}

func TestFeatureGainFloor(t *testing.T) {
	cases := []struct {
		gain     float64
		expected string
	}{
		{1, "1.000"},
		{0, "0.000"},
		{0.9999, "0.999"},
		{0.9182958340544896, "0.918"},
		{0.0009, "0.000"},
	}
	for _, c := range cases {
		fg := FeatureGain{color, c.gain}
		if s := fg.Floor().StringFixed(3); s != c.expected {
			t.Errorf("Expected %v floored to %s, got %s", c.gain, c.expected, s)
		}
	}
	fg := FeatureGain{color, 0.9182958340544896}
	if fg.String() != "Color: info gain = 0.918" {
		t.Errorf("Expected gain line, got %q", fg.String())
	}
}
