package tree

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/robjustinwagner/dectree/dataset"
	"github.com/robjustinwagner/dectree/feature"
)

var (
	answer = feature.NewFeature("Answer", []string{"Yes", "No"})
	color  = feature.NewFeature("Color", []string{"R", "G", "B"})
	size   = feature.NewFeature("Size", []string{"S", "L"})
)

func testSchema(t *testing.T) *dataset.Schema {
	schema, err := dataset.NewSchema(answer, []*feature.Feature{color, size})
	if err != nil {
		t.Fatalf("building schema: %v", err)
	}
	return schema
}

func testTree(t *testing.T) *Tree {
	// ROOT {Color?} with an R {Size?} subtree and G, B leaves
	sizeNode, err := NewInternal("R", size, "Yes", 3, []Node{
		NewLeaf("S", "Yes", 2),
		NewLeaf("L", "No", 1),
	})
	if err != nil {
		t.Fatalf("building node: %v", err)
	}
	root, err := NewInternal(RootEdge, color, "No", 6, []Node{
		sizeNode,
		NewLeaf("G", "No", 3),
		NewLeaf("B", "Yes", 0),
	})
	if err != nil {
		t.Fatalf("building node: %v", err)
	}
	return New(root, testSchema(t))
}

type mapSample map[string]string

func (ms mapSample) ValueFor(f *feature.Feature) (string, error) {
	v, ok := ms[f.Name()]
	if !ok {
		return "", fmt.Errorf("no value for %s", f.Name())
	}
	return v, nil
}

func TestNewInternalChecksChildren(t *testing.T) {
	_, err := NewInternal(RootEdge, size, "Yes", 1, []Node{NewLeaf("S", "Yes", 1)})
	if err == nil {
		t.Errorf("Expected error for missing child, got nil")
	}
	_, err = NewInternal(RootEdge, size, "Yes", 1, []Node{NewLeaf("L", "Yes", 1), NewLeaf("S", "No", 0)})
	if err == nil {
		t.Errorf("Expected error for children out of domain order, got nil")
	}
}

func TestPredict(t *testing.T) {
	tr := testTree(t)
	cases := []struct {
		sample   mapSample
		label    string
		fallback bool
	}{
		{mapSample{"Color": "R", "Size": "S"}, "Yes", false},
		{mapSample{"Color": "R", "Size": "L"}, "No", false},
		{mapSample{"Color": "G"}, "No", false},
		{mapSample{"Color": "B", "Size": "L"}, "Yes", false},
		{mapSample{"Color": "Purple"}, "No", true},
		{mapSample{"Color": "R", "Size": "XL"}, "Yes", true},
	}
	for _, c := range cases {
		p, err := tr.Predict(c.sample)
		if err != nil {
			t.Fatalf("Unexpected error %v predicting %v", err, c.sample)
		}
		if p.Label != c.label || p.Fallback != c.fallback {
			t.Errorf("Expected %s (fallback %v) for %v, got %s (fallback %v)", c.label, c.fallback, c.sample, p.Label, p.Fallback)
		}
	}
	p, _ := tr.Predict(mapSample{"Color": "R", "Size": "XL"})
	if p.FallbackFeature != size || p.FallbackValue != "XL" {
		t.Errorf("Expected fallback on Size XL, got %v %v", p.FallbackFeature, p.FallbackValue)
	}
	_, err := tr.Predict(mapSample{"Size": "S"})
	if err == nil {
		t.Errorf("Expected error for sample without Color, got nil")
	}
	_, err = (&Tree{}).Predict(mapSample{})
	if err != ErrNoRoot {
		t.Errorf("Expected ErrNoRoot, got %v", err)
	}
}

func TestTest(t *testing.T) {
	tr := testTree(t)
	schema := tr.Schema
	var samples []*dataset.Sample
	for _, row := range [][]string{
		{"Yes", "R", "S"},
		{"Yes", "R", "L"},
		{"No", "G", "S"},
		{"No", "B", "L"},
	} {
		s, err := schema.NewSample(row[0], row[1:])
		if err != nil {
			t.Fatalf("Unexpected error %v", err)
		}
		samples = append(samples, s)
	}
	d := dataset.New(schema, samples)
	c, err := tr.Classify(d)
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	expected := []string{"Yes", "No", "No", "Yes"}
	if !reflect.DeepEqual(c.Labels, expected) {
		t.Errorf("Expected labels %v, got %v", expected, c.Labels)
	}
	score, fallbacks, err := tr.Test(d)
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	if score != (Score{2, 4}) || fallbacks != 0 {
		t.Errorf("Expected score 2/4 with no fallbacks, got %v with %d", score, fallbacks)
	}
	if score.Accuracy() != 0.5 {
		t.Errorf("Expected accuracy 0.5, got %v", score.Accuracy())
	}
	_, _, err = tr.Test(dataset.New(schema, nil))
	if err != ErrEmptyDataset {
		t.Errorf("Expected ErrEmptyDataset, got %v", err)
	}
	_, err = NewScore(d, expected[:2])
	if err == nil {
		t.Errorf("Expected error for mismatched predictions, got nil")
	}
}

func TestWriteText(t *testing.T) {
	expected := "ROOT {Color?}\n" +
		"    R {Size?}\n" +
		"        S (Yes)\n" +
		"        L (No)\n" +
		"    G (No)\n" +
		"    B (Yes)\n"
	if s := testTree(t).String(); s != expected {
		t.Errorf("Expected\n%s\ngot\n%s", expected, s)
	}
}

func TestTraverse(t *testing.T) {
	tr := testTree(t)
	var topdown, bottomup []string
	tr.Traverse(false, func(path feature.Conjunction, n Node) error {
		topdown = append(topdown, fmt.Sprintf("%d:%s", len(path), n.Edge()))
		return nil
	})
	tr.Traverse(true, func(path feature.Conjunction, n Node) error {
		bottomup = append(bottomup, n.Edge())
		return nil
	})
	expected := []string{"0:ROOT", "1:R", "2:S", "2:L", "1:G", "1:B"}
	if !reflect.DeepEqual(topdown, expected) {
		t.Errorf("Expected top-down order %v, got %v", expected, topdown)
	}
	expected = []string{"S", "L", "R", "G", "B", "ROOT"}
	if !reflect.DeepEqual(bottomup, expected) {
		t.Errorf("Expected bottom-up order %v, got %v", expected, bottomup)
	}
	stop := fmt.Errorf("stop")
	var visited int
	err := tr.Traverse(false, func(path feature.Conjunction, n Node) error {
		visited++
		if n.Edge() == "R" {
			return stop
		}
		return nil
	})
	if err != stop || visited != 2 {
		t.Errorf("Expected traversal to stop at R after 2 nodes, got %v after %d", err, visited)
	}
}

func TestReplace(t *testing.T) {
	tr := testTree(t)
	original := tr.String()
	path := feature.Conjunction{feature.NewCriterion(color, "R")}
	replaced, err := tr.Replace(path, NewLeaf("R", "Yes", 3))
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	expected := "ROOT {Color?}\n    R (Yes)\n    G (No)\n    B (Yes)\n"
	if replaced.String() != expected {
		t.Errorf("Expected\n%s\ngot\n%s", expected, replaced.String())
	}
	if tr.String() != original {
		t.Errorf("Expected original tree to be untouched, got\n%s", tr.String())
	}
	oldG, _ := tr.Root.(*Internal).Child("G")
	newG, _ := replaced.Root.(*Internal).Child("G")
	if oldG == newG {
		t.Errorf("Expected replaced tree not to share nodes with the original")
	}
	for _, c := range []struct {
		path feature.Conjunction
		node Node
	}{
		{path, NewLeaf("G", "Yes", 3)},
		{feature.Conjunction{feature.NewCriterion(color, "Purple")}, NewLeaf("Purple", "Yes", 0)},
		{feature.Conjunction{feature.NewCriterion(size, "S")}, NewLeaf("S", "Yes", 0)},
		{feature.Conjunction{feature.NewCriterion(color, "G"), feature.NewCriterion(size, "S")}, NewLeaf("S", "Yes", 0)},
	} {
		if _, err := tr.Replace(c.path, c.node); err == nil {
			t.Errorf("Expected error replacing %v with %v, got nil", c.path, c.node)
		}
	}
}

func TestDepthAndSize(t *testing.T) {
	tr := testTree(t)
	if tr.Depth() != 2 {
		t.Errorf("Expected depth 2, got %d", tr.Depth())
	}
	internals, leaves := tr.Size()
	if internals != 2 || leaves != 4 {
		t.Errorf("Expected 2 internal nodes and 4 leaves, got %d and %d", internals, leaves)
	}
	single := New(NewLeaf(RootEdge, "No", 1), tr.Schema)
	if single.Depth() != 0 {
		t.Errorf("Expected depth 0, got %d", single.Depth())
	}
}
