package validation

import (
	"math"
	"strings"
	"testing"
)

func validRequest() *RunRequest {
	return &RunRequest{
		Nodes: []NodeRequest{
			{ID: "A", Label: "Start"},
			{ID: "B", Label: "End"},
		},
		Edges: []EdgeRequest{
			{From: "A", To: "B", Weight: 2},
		},
		Source: "A",
	}
}

// TestValidateRunRequest_Valid tests a well-formed request passes
func TestValidateRunRequest_Valid(t *testing.T) {
	if err := ValidateRunRequest(validRequest()); err != nil {
		t.Errorf("Expected valid request, got %v", err)
	}
}

// TestValidateRunRequest_NoNodes tests the minimum node count
func TestValidateRunRequest_NoNodes(t *testing.T) {
	req := validRequest()
	req.Nodes = nil

	if err := ValidateRunRequest(req); err == nil {
		t.Error("Expected error for empty node list")
	}
}

// TestValidateRunRequest_MissingNodeID tests required node IDs
func TestValidateRunRequest_MissingNodeID(t *testing.T) {
	req := validRequest()
	req.Nodes[0].ID = ""

	err := ValidateRunRequest(req)
	if err == nil {
		t.Fatal("Expected error for missing node ID")
	}
	if !strings.Contains(err.Error(), "required") {
		t.Errorf("Expected required-field message, got %v", err)
	}
}

// TestValidateRunRequest_NonFiniteWeight tests NaN and Inf rejection
func TestValidateRunRequest_NonFiniteWeight(t *testing.T) {
	for _, w := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		req := validRequest()
		req.Edges[0].Weight = w
		if err := ValidateRunRequest(req); err == nil {
			t.Errorf("Expected error for weight %v", w)
		}
	}
}

// TestRequireSource tests the single-source guard
func TestRequireSource(t *testing.T) {
	req := validRequest()
	if err := RequireSource(req); err != nil {
		t.Errorf("Expected source accepted, got %v", err)
	}

	req.Source = ""
	if err := RequireSource(req); err == nil {
		t.Error("Expected error for missing source")
	}
}

// TestRequireNonNegativeWeights tests the boundary-level precondition check
func TestRequireNonNegativeWeights(t *testing.T) {
	req := validRequest()
	if err := RequireNonNegativeWeights(req); err != nil {
		t.Errorf("Expected non-negative weights accepted, got %v", err)
	}

	req.Edges[0].Weight = -1
	if err := RequireNonNegativeWeights(req); err == nil {
		t.Error("Expected error for negative weight")
	}
}

// TestConfigValidator_CollectsAll tests that every violation is reported
func TestConfigValidator_CollectsAll(t *testing.T) {
	err := NewConfigValidator("ServerConfig").
		Required("Addr", "").
		PortRange("Port", 99999).
		MinInt("MaxStoredRuns", 0, 1).
		Err()

	if err == nil {
		t.Fatal("Expected collected violations")
	}
	for _, want := range []string{"Addr", "Port", "MaxStoredRuns"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Expected %s violation in %v", want, err)
		}
	}
}

// TestConfigValidator_Valid tests the nil result for a clean config
func TestConfigValidator_Valid(t *testing.T) {
	err := NewConfigValidator("ServerConfig").
		Required("Addr", ":8080").
		PortRange("Port", 8080).
		Err()

	if err != nil {
		t.Errorf("Expected no violations, got %v", err)
	}
}
