// Command tracestep runs a shortest path algorithm over a graph described
// in a YAML file and prints the recorded trace, or writes it to a
// compressed archive for later replay.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tracestep/tracestep/pkg/algorithms"
	"github.com/tracestep/tracestep/pkg/api"
	"github.com/tracestep/tracestep/pkg/graph"
	"github.com/tracestep/tracestep/pkg/trace"
	"github.com/tracestep/tracestep/pkg/tracefile"
)

type graphFile struct {
	Nodes []graph.Node `yaml:"nodes"`
	Edges []graph.Edge `yaml:"edges"`
}

func main() {
	graphPath := flag.String("graph", "", "Path to YAML graph file (required)")
	algorithm := flag.String("algorithm", api.AlgorithmDijkstra,
		"Algorithm: dijkstra, bellman-ford, or floyd-warshall")
	source := flag.String("source", "", "Source vertex (required for single-source algorithms)")
	output := flag.String("o", "", "Write a compressed trace archive instead of printing JSON")
	stepsOnly := flag.Bool("steps", false, "Print one step per line instead of the full result")
	flag.Parse()

	if *graphPath == "" {
		fmt.Fprintln(os.Stderr, "error: -graph is required")
		flag.Usage()
		os.Exit(2)
	}

	gf, err := loadGraph(*graphPath)
	if err != nil {
		fatal(err)
	}

	result, err := run(*algorithm, gf, *source)
	if err != nil {
		fatal(err)
	}

	if *output != "" {
		archive := tracefile.New(*algorithm, *source, gf.Nodes, gf.Edges, result)
		if err := tracefile.Save(*output, archive); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %d steps to %s\n", len(result.Steps), *output)
		return
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if *stepsOnly {
		for _, step := range result.Steps {
			if err := enc.Encode(step); err != nil {
				fatal(err)
			}
		}
		return
	}
	if err := enc.Encode(result); err != nil {
		fatal(err)
	}
}

func loadGraph(path string) (*graphFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graph: %w", err)
	}
	var gf graphFile
	if err := yaml.Unmarshal(data, &gf); err != nil {
		return nil, fmt.Errorf("parse graph %s: %w", path, err)
	}
	if len(gf.Nodes) == 0 {
		return nil, fmt.Errorf("graph %s has no nodes", path)
	}
	return &gf, nil
}

func run(algorithm string, gf *graphFile, source string) (*trace.Result, error) {
	switch algorithm {
	case api.AlgorithmDijkstra:
		if source == "" {
			return nil, fmt.Errorf("-source is required for %s", algorithm)
		}
		for _, e := range gf.Edges {
			if e.Weight < 0 {
				return nil, fmt.Errorf("edge %s->%s has negative weight %g, use bellman-ford",
					e.From, e.To, e.Weight)
			}
		}
		return algorithms.Dijkstra(gf.Nodes, gf.Edges, source), nil
	case api.AlgorithmBellmanFord:
		if source == "" {
			return nil, fmt.Errorf("-source is required for %s", algorithm)
		}
		return algorithms.BellmanFord(gf.Nodes, gf.Edges, source), nil
	case api.AlgorithmFloydWarshall:
		return algorithms.FloydWarshall(gf.Nodes, gf.Edges), nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q", algorithm)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
