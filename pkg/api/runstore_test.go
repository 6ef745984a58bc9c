package api

import (
	"fmt"
	"testing"
	"time"

	"github.com/tracestep/tracestep/pkg/trace"
)

func storedRun(id string) *StoredRun {
	return &StoredRun{
		ID:        id,
		Algorithm: AlgorithmDijkstra,
		Source:    "A",
		Result:    trace.NewResult(),
		CreatedAt: time.Now().UTC(),
	}
}

func TestRunStore_AddGet(t *testing.T) {
	store := NewRunStore(10)
	store.Add(storedRun("r1"))

	run, ok := store.Get("r1")
	if !ok {
		t.Fatal("expected run r1 to be stored")
	}
	if run.Algorithm != AlgorithmDijkstra {
		t.Errorf("expected algorithm %q, got %q", AlgorithmDijkstra, run.Algorithm)
	}
	if _, ok := store.Get("missing"); ok {
		t.Error("expected lookup of missing run to fail")
	}
}

func TestRunStore_EvictsOldest(t *testing.T) {
	store := NewRunStore(3)
	for i := 0; i < 5; i++ {
		store.Add(storedRun(fmt.Sprintf("r%d", i)))
	}

	if store.Len() != 3 {
		t.Fatalf("expected 3 stored runs, got %d", store.Len())
	}
	for _, id := range []string{"r0", "r1"} {
		if _, ok := store.Get(id); ok {
			t.Errorf("expected %s to be evicted", id)
		}
	}
	for _, id := range []string{"r2", "r3", "r4"} {
		if _, ok := store.Get(id); !ok {
			t.Errorf("expected %s to survive eviction", id)
		}
	}
}

func TestRunStore_ListNewestFirst(t *testing.T) {
	store := NewRunStore(10)
	store.Add(storedRun("first"))
	store.Add(storedRun("second"))
	store.Add(storedRun("third"))

	list := store.List()
	if len(list) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(list))
	}
	want := []string{"third", "second", "first"}
	for i, run := range list {
		if run.ID != want[i] {
			t.Errorf("list[%d]: expected %s, got %s", i, want[i], run.ID)
		}
	}
}

func TestRunStore_SetCapShrinks(t *testing.T) {
	store := NewRunStore(10)
	for i := 0; i < 5; i++ {
		store.Add(storedRun(fmt.Sprintf("r%d", i)))
	}

	store.SetCap(2)
	if store.Len() != 2 {
		t.Fatalf("expected 2 runs after shrink, got %d", store.Len())
	}
	if _, ok := store.Get("r4"); !ok {
		t.Error("expected newest run to survive shrink")
	}
}
