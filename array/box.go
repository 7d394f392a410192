package array

import (
	"math"

	"github.com/katalvlaran/dynarray/cell"
)

// NumberBox is the optional, narrower contract FromArgs uses to detect
// "exactly one numeric argument" (spec.md §4.3). A Box that does not
// implement NumberBox is simply never treated as the length-constructor
// form, regardless of what ToNumber() would return for it.
type NumberBox interface {
	cell.Box
	// IsNumber reports whether this value's runtime type is the
	// language's number type (as opposed to, say, a numeric string).
	IsNumber() bool
}

// undefinedBox is the core's own manufactured instance of the
// distinguished undefined identity (cell.Box contract (a)): every miss
// path (Get, Pop, Shift on an empty array) must produce *something*,
// and spec.md §4.1 requires that something be recognizable via
// IsUndefined(). Embedders whose Value type carries its own canonical
// undefined singleton should override it with WithUndefined so identity
// comparisons on the embedder side still hold.
type undefinedBox struct{}

func (undefinedBox) IsUndefined() bool               { return true }
func (undefinedBox) IsNull() bool                    { return false }
func (undefinedBox) ToNumber() float64               { return math.NaN() }
func (undefinedBox) ToString() string                { return "undefined" }
func (undefinedBox) ToFoldedString() string          { return "undefined" }
func (undefinedBox) GetProp(string) (cell.Box, bool) { return nil, false }

// Undefined is the package's default distinguished undefined value,
// used whenever no WithUndefined option overrides it.
var Undefined cell.Box = undefinedBox{}
