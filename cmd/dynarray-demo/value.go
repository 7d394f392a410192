package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/dynarray/cell"
)

// demoNumber is the concrete cell.Box the demo commands box float64
// values in. The dynarray module itself never depends on a concrete
// Box implementation — this type exists only on the CLI side of the
// module boundary.
type demoNumber float64

func (n demoNumber) IsUndefined() bool { return false }
func (n demoNumber) IsNull() bool      { return false }
func (n demoNumber) ToNumber() float64 { return float64(n) }
func (n demoNumber) ToString() string  { return fmt.Sprintf("%g", float64(n)) }
func (n demoNumber) ToFoldedString() string {
	return strings.ToLower(n.ToString())
}
func (n demoNumber) GetProp(string) (cell.Box, bool) { return nil, false }
func (n demoNumber) IsNumber() bool                  { return true }

func num(f float64) cell.Box { return demoNumber(f) }

// demoRecord is a tiny object-shaped Box used by the sort demo's
// --on flag (sortOn over a named property).
type demoRecord struct {
	label string
	score float64
}

func (r demoRecord) IsUndefined() bool { return false }
func (r demoRecord) IsNull() bool      { return false }
func (r demoRecord) ToNumber() float64 { return math.NaN() }
func (r demoRecord) ToString() string  { return r.label }
func (r demoRecord) ToFoldedString() string {
	return strings.ToLower(r.label)
}
func (r demoRecord) GetProp(name string) (cell.Box, bool) {
	switch name {
	case "label":
		return demoLabel(r.label), true
	case "score":
		return demoNumber(r.score), true
	default:
		return nil, false
	}
}

type demoLabel string

func (l demoLabel) IsUndefined() bool               { return false }
func (l demoLabel) IsNull() bool                    { return false }
func (l demoLabel) ToNumber() float64               { return math.NaN() }
func (l demoLabel) ToString() string                { return string(l) }
func (l demoLabel) ToFoldedString() string          { return strings.ToLower(string(l)) }
func (l demoLabel) GetProp(string) (cell.Box, bool) { return nil, false }
