package tracefile

import (
	"path/filepath"
	"testing"

	"github.com/tracestep/tracestep/pkg/algorithms"
	"github.com/tracestep/tracestep/pkg/graph"
)

func sampleRun() *Archive {
	nodes := []graph.Node{{ID: "A"}, {ID: "B"}, {ID: "C"}}
	edges := []graph.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 2},
	}
	res := algorithms.Dijkstra(nodes, edges, "A")
	return New("dijkstra", "A", nodes, edges, res)
}

// TestSaveLoad_RoundTrip tests a full run survives the archive format,
// including the ±Inf distance encoding
func TestSaveLoad_RoundTrip(t *testing.T) {
	a := sampleRun()
	path := filepath.Join(t.TempDir(), "run.trace")

	if err := Save(path, a); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if got.Algorithm != "dijkstra" || got.Source != "A" {
		t.Errorf("Metadata lost: %s/%s", got.Algorithm, got.Source)
	}
	if len(got.Result.Steps) != len(a.Result.Steps) {
		t.Errorf("Expected %d steps, got %d", len(a.Result.Steps), len(got.Result.Steps))
	}
	if got.Result.Distances["C"] != 3 {
		t.Errorf("Expected distance 3 to C, got %s", got.Result.Distances["C"])
	}
	// The init step's +Inf entries must survive the wire format.
	if !got.Result.Steps[0].Distances["C"].IsUnreachable() {
		t.Errorf("Expected +Inf preserved, got %s", got.Result.Steps[0].Distances["C"])
	}
}

// TestDecode_RejectsGarbage tests the bad-archive sentinel
func TestDecode_RejectsGarbage(t *testing.T) {
	if _, err := Decode([]byte("definitely not snappy")); err == nil {
		t.Error("Expected error for garbage input")
	}
}

// TestDecode_RejectsWrongVersion tests the version gate
func TestDecode_RejectsWrongVersion(t *testing.T) {
	a := sampleRun()
	a.Version = 99

	data, err := Encode(a)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if _, err := Decode(data); err == nil {
		t.Error("Expected error for unsupported version")
	}
}

// TestLoadFile_Missing tests the error for an absent path
func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.trace")); err == nil {
		t.Error("Expected error for missing file")
	}
}

// TestEncode_Decode tests the in-memory round trip used by the HTTP export
func TestEncode_Decode(t *testing.T) {
	a := sampleRun()

	data, err := Encode(a)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got.CreatedAt.IsZero() {
		t.Error("Expected creation timestamp preserved")
	}
}
