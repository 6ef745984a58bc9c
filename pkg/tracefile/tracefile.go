// Package tracefile reads and writes replay archives: a completed run
// (input graph plus its full trace) serialized as snappy-compressed JSON.
// Archives are what the TUI replays and what the CLI emits; graphs
// themselves are never persisted by the engine.
package tracefile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang/snappy"

	"github.com/tracestep/tracestep/pkg/graph"
	"github.com/tracestep/tracestep/pkg/trace"
)

// FormatVersion is bumped on incompatible archive layout changes.
const FormatVersion = 1

// ErrBadArchive indicates the file is not a valid replay archive.
var ErrBadArchive = errors.New("tracefile: not a valid replay archive")

// Archive is one recorded run with the input that produced it.
type Archive struct {
	Version   int          `json:"version"`
	Algorithm string       `json:"algorithm"`
	Source    string       `json:"source,omitempty"`
	Nodes     []graph.Node `json:"nodes"`
	Edges     []graph.Edge `json:"edges"`
	CreatedAt time.Time    `json:"createdAt"`
	Result    *trace.Result `json:"result"`
}

// New builds an archive for a completed run, stamped now.
func New(algorithm, source string, nodes []graph.Node, edges []graph.Edge, result *trace.Result) *Archive {
	return &Archive{
		Version:   FormatVersion,
		Algorithm: algorithm,
		Source:    source,
		Nodes:     nodes,
		Edges:     edges,
		CreatedAt: time.Now().UTC(),
		Result:    result,
	}
}

// Encode serializes and compresses the archive.
func Encode(a *Archive) ([]byte, error) {
	data, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("tracefile: encode: %w", err)
	}
	return snappy.Encode(nil, data), nil
}

// Decode decompresses and deserializes an archive.
func Decode(data []byte) (*Archive, error) {
	raw, err := snappy.Decode(nil, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadArchive, err)
	}

	var a Archive
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadArchive, err)
	}
	if a.Version != FormatVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrBadArchive, a.Version)
	}
	return &a, nil
}

// Save writes the archive to path.
func Save(path string, a *Archive) error {
	data, err := Encode(a)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("tracefile: write %s: %w", path, err)
	}
	return nil
}

// LoadFile reads an archive from path.
func LoadFile(path string) (*Archive, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tracefile: read %s: %w", path, err)
	}
	return Decode(data)
}
