package trace

import (
	"fmt"
	"math"
	"strconv"
)

// Distance is a shortest-path distance extended with +Inf (unreached) and
// -Inf (on or downstream of a negative cycle).
//
// encoding/json rejects IEEE infinities, so Distance marshals the extended
// values as the strings "Infinity" and "-Infinity" and finite values as
// plain numbers. Replay archives and the HTTP API both rely on this.
type Distance float64

// Unreachable is the initial distance of every vertex except the source.
func Unreachable() Distance { return Distance(math.Inf(1)) }

// NegativeInf marks a vertex whose shortest distance is unbounded below.
func NegativeInf() Distance { return Distance(math.Inf(-1)) }

// IsUnreachable reports whether d is +Inf.
func (d Distance) IsUnreachable() bool { return math.IsInf(float64(d), 1) }

// IsNegativeInf reports whether d is -Inf.
func (d Distance) IsNegativeInf() bool { return math.IsInf(float64(d), -1) }

// Finite reports whether d is an ordinary real value.
func (d Distance) Finite() bool { return !math.IsInf(float64(d), 0) }

// String renders finite distances as numbers and the extended values with
// the infinity sign, for step messages and the TUI.
func (d Distance) String() string {
	switch {
	case d.IsUnreachable():
		return "∞"
	case d.IsNegativeInf():
		return "-∞"
	default:
		return strconv.FormatFloat(float64(d), 'g', -1, 64)
	}
}

// MarshalJSON implements json.Marshaler.
func (d Distance) MarshalJSON() ([]byte, error) {
	switch {
	case d.IsUnreachable():
		return []byte(`"Infinity"`), nil
	case d.IsNegativeInf():
		return []byte(`"-Infinity"`), nil
	default:
		return []byte(strconv.FormatFloat(float64(d), 'g', -1, 64)), nil
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Distance) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"Infinity"`:
		*d = Unreachable()
		return nil
	case `"-Infinity"`:
		*d = NegativeInf()
		return nil
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid distance %s: %w", data, err)
	}
	*d = Distance(f)
	return nil
}
