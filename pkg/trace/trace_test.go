package trace

import (
	"encoding/json"
	"testing"
)

// TestDistance_JSONRoundTrip checks finite and extended values survive
// marshal/unmarshal, since JSON has no infinity literal
func TestDistance_JSONRoundTrip(t *testing.T) {
	values := []Distance{0, 1.5, -3, Unreachable(), NegativeInf()}

	for _, v := range values {
		data, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("Marshal(%s) failed: %v", v, err)
		}

		var got Distance
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("Unmarshal(%s) failed: %v", data, err)
		}

		if got != v && !(got.IsUnreachable() && v.IsUnreachable()) && !(got.IsNegativeInf() && v.IsNegativeInf()) {
			t.Errorf("round trip of %s gave %s", v, got)
		}
	}
}

// TestDistance_JSONEncoding checks the exact wire form of the extended values
func TestDistance_JSONEncoding(t *testing.T) {
	data, _ := json.Marshal(Unreachable())
	if string(data) != `"Infinity"` {
		t.Errorf("expected \"Infinity\", got %s", data)
	}

	data, _ = json.Marshal(NegativeInf())
	if string(data) != `"-Infinity"` {
		t.Errorf("expected \"-Infinity\", got %s", data)
	}

	data, _ = json.Marshal(Distance(2.5))
	if string(data) != "2.5" {
		t.Errorf("expected 2.5, got %s", data)
	}
}

// TestRecorder_SnapshotIsolation verifies that mutating state after
// recording never alters a recorded step
func TestRecorder_SnapshotIsolation(t *testing.T) {
	rec := NewRecorder()

	dist := map[string]Distance{"A": 0, "B": Unreachable()}
	prev := map[string]string{}
	visited := map[string]bool{"A": true}
	matrix := [][]Distance{{0, 5}, {Unreachable(), 0}}

	rec.Record(Step{
		Kind:         StepInit,
		Distances:    dist,
		Predecessors: prev,
		Visited:      visited,
		Matrix:       matrix,
	})

	// Mutate everything the step referenced.
	dist["B"] = 7
	prev["B"] = "A"
	visited["B"] = true
	matrix[0][1] = -1

	step := rec.Steps()[0]
	if !step.Distances["B"].IsUnreachable() {
		t.Errorf("recorded distance mutated: got %s", step.Distances["B"])
	}
	if _, ok := step.Predecessors["B"]; ok {
		t.Error("recorded predecessor map mutated")
	}
	if step.Visited["B"] {
		t.Error("recorded visited set mutated")
	}
	if step.Matrix[0][1] != 5 {
		t.Errorf("recorded matrix mutated: got %s", step.Matrix[0][1])
	}
}

// TestRecorder_TripleCopied verifies the highlighted triple is copied, not
// aliased
func TestRecorder_TripleCopied(t *testing.T) {
	rec := NewRecorder()
	tr := &Triple{I: 1, J: 2, K: 3}
	rec.Record(Step{Kind: StepUpdate, Triple: tr})

	tr.I = 99
	if rec.Steps()[0].Triple.I != 1 {
		t.Errorf("recorded triple mutated: got %d", rec.Steps()[0].Triple.I)
	}
}

// TestNewResult_EmptyShape checks the no-op result has allocated, empty
// collections rather than nils
func TestNewResult_EmptyShape(t *testing.T) {
	res := NewResult()
	if res.Steps == nil || len(res.Steps) != 0 {
		t.Error("expected empty non-nil steps")
	}
	if res.Distances == nil || len(res.Distances) != 0 {
		t.Error("expected empty non-nil distances")
	}
	if res.Paths == nil || len(res.Paths) != 0 {
		t.Error("expected empty non-nil paths")
	}
}
