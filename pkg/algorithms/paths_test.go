package algorithms

import (
	"testing"

	"github.com/tracestep/tracestep/pkg/trace"
)

// TestWalkPath_SourceOnly tests the single-element walk
func TestWalkPath_SourceOnly(t *testing.T) {
	path, ok := walkPath(map[string]string{}, "A", "A")
	if !ok || len(path) != 1 || path[0] != "A" {
		t.Errorf("Expected [A], got %v (ok=%v)", path, ok)
	}
}

// TestWalkPath_Chain tests forward ordering of the reconstructed walk
func TestWalkPath_Chain(t *testing.T) {
	prev := map[string]string{"B": "A", "C": "B", "D": "C"}

	path, ok := walkPath(prev, "A", "D")
	if !ok {
		t.Fatal("Expected successful walk")
	}
	expected := []string{"A", "B", "C", "D"}
	for i := range expected {
		if path[i] != expected[i] {
			t.Fatalf("Expected %v, got %v", expected, path)
		}
	}
}

// TestWalkPath_MissingLink tests that a walk not reaching the source is
// abandoned
func TestWalkPath_MissingLink(t *testing.T) {
	prev := map[string]string{"D": "C"}

	if _, ok := walkPath(prev, "A", "D"); ok {
		t.Error("Expected abandoned walk for a dangling predecessor chain")
	}
}

// TestWalkPath_PredecessorCycle tests the per-walk seen set terminates a
// structural cycle in predecessor links instead of looping forever
func TestWalkPath_PredecessorCycle(t *testing.T) {
	prev := map[string]string{"D": "C", "C": "B", "B": "C"}

	if _, ok := walkPath(prev, "A", "D"); ok {
		t.Error("Expected abandoned walk for a predecessor cycle")
	}
}

// TestBuildPaths_SkipsNonFinite tests that ±Inf vertices get no entry
func TestBuildPaths_SkipsNonFinite(t *testing.T) {
	nodes := testNodes("A", "B", "C")
	dist := map[string]trace.Distance{
		"A": 0,
		"B": trace.Unreachable(),
		"C": trace.NegativeInf(),
	}

	paths := buildPaths(nodes, dist, map[string]string{}, "A")

	if len(paths) != 1 {
		t.Errorf("Expected only the source path, got %v", paths)
	}
	if len(paths["A"]) != 1 || paths["A"][0] != "A" {
		t.Errorf("Expected [A], got %v", paths["A"])
	}
}
