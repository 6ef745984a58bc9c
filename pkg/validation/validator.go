// Package validation guards the HTTP boundary. The engine itself performs
// no structured validation (malformed graphs degrade best-effort); this
// package exists so that remote callers get a defined 400 instead of a
// silently odd trace.
package validation

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// Request size limits
	MaxNodes       = 500
	MaxEdges       = 2000
	MaxIDLength    = 64
	MaxLabelLength = 100
)

func init() {
	validate = validator.New()
}

// NodeRequest is one vertex in an incoming run request.
type NodeRequest struct {
	ID    string `json:"id" validate:"required,max=64"`
	Label string `json:"label" validate:"max=100"`
}

// EdgeRequest is one directed weighted edge in an incoming run request.
type EdgeRequest struct {
	From   string  `json:"from" validate:"required,max=64"`
	To     string  `json:"to" validate:"required,max=64"`
	Weight float64 `json:"weight"`
}

// RunRequest is the body of a run submission.
type RunRequest struct {
	Nodes  []NodeRequest `json:"nodes" validate:"required,min=1,max=500,dive"`
	Edges  []EdgeRequest `json:"edges" validate:"max=2000,dive"`
	Source string        `json:"source" validate:"max=64"`
}

// ValidateRunRequest checks structural limits and weight sanity. Weights
// must be finite real numbers; ±Inf and NaN are reserved for the engine's
// own sentinels.
func ValidateRunRequest(req *RunRequest) error {
	if req == nil {
		return errors.New("request body is required")
	}
	if err := validate.Struct(req); err != nil {
		return formatValidationError(err)
	}
	for i, e := range req.Edges {
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			return fmt.Errorf("edges[%d]: weight must be a finite number", i)
		}
	}
	return nil
}

// RequireSource rejects single-source requests with no source vertex
// named. The engine would return its defined no-op result; remote callers
// get a clearer failure here instead.
func RequireSource(req *RunRequest) error {
	if req.Source == "" {
		return errors.New("source: field is required for single-source algorithms")
	}
	return nil
}

// RequireNonNegativeWeights enforces, at the boundary only, the
// precondition the non-negative single-source algorithm documents but does
// not check itself.
func RequireNonNegativeWeights(req *RunRequest) error {
	for i, e := range req.Edges {
		if e.Weight < 0 {
			return fmt.Errorf("edges[%d]: negative weight %g not allowed for this algorithm", i, e.Weight)
		}
	}
	return nil
}

// formatValidationError converts validator errors to a user-friendly form.
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	for _, e := range validationErrs {
		field := e.Field()
		tag := e.Tag()
		param := e.Param()

		switch tag {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "min":
			return fmt.Errorf("%s: must have at least %s entries", field, param)
		case "max":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, tag)
		}
	}

	return err
}
