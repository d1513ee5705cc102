// Package value implements the typed attribute-value model: a closed sum
// type over the value grammars an SVG attribute can carry, with a
// parse/serialize/fuzzy-equal contract per variant.
//
// Values are represented as a small interface rather than a tagged struct
// (Go has no sum types) - one concrete type per variant, dispatched on
// through the Kind() discriminator where callers need it and through type
// switches/assertions where they need the payload. The numeric
// canonicalization this package leans on is grounded on
// tdewolff-minify/common.go's Number function; the path segment model and
// its absolute/relative conversion are grounded on
// tdewolff-minify/svg/pathdata.go and original_source/src/types/path.rs.
package value

import "fmt"

// Kind discriminates the AttributeValue variants of spec.md §3.
type Kind int

const (
	KindNone Kind = iota
	KindInherit
	KindCurrentColor
	KindString
	KindNumber
	KindNumberList
	KindLength
	KindLengthList
	KindColor
	KindPaint
	KindTransform
	KindPath
	KindViewBox
	KindAspectRatio
	KindPoints
	KindLink
	KindFuncLink
	KindEnum
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInherit:
		return "inherit"
	case KindCurrentColor:
		return "currentColor"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindNumberList:
		return "number-list"
	case KindLength:
		return "length"
	case KindLengthList:
		return "length-list"
	case KindColor:
		return "color"
	case KindPaint:
		return "paint"
	case KindTransform:
		return "transform"
	case KindPath:
		return "path"
	case KindViewBox:
		return "viewBox"
	case KindAspectRatio:
		return "aspectRatio"
	case KindPoints:
		return "points"
	case KindLink:
		return "link"
	case KindFuncLink:
		return "funcLink"
	case KindEnum:
		return "enum"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// NodeRef is the minimal surface the value package needs from a DOM node
// to represent Link/FuncLink targets. The root package's *Node satisfies
// this; value stays independent of the tree package so the two can be
// imported in either order without a cycle.
type NodeRef interface {
	// RefID returns the referenced node's id, as rendered in the "#id" and
	// "url(#id)" forms.
	RefID() string
}

// Value is the typed, tagged attribute value. Implementations are value
// types (safe to copy) except where the payload is itself a slice/map.
type Value interface {
	Kind() Kind
	// IsDefault reports whether this value equals the SVG-defined default
	// for the attribute carrying it, so the writer/pruning stage can drop
	// it without changing meaning. Empty strings, empty lists and the
	// identity transform count as default; Link, Color, Length, Number,
	// Paint and the other values with no well-defined default return false.
	IsDefault() bool
	// Equal compares two values for fuzzy (float-tolerant) equality; it
	// panics if other has a different Kind().
	Equal(other Value) bool
	// String renders the value in its canonical (default write option)
	// form; the writer package formats values under its WriteOptions.
	String() string
}

// Epsilon is the fuzzy-equality tolerance, grounded on
// tdewolff-minify/common.go's Epsilon (0.00001) - the closest value to zero
// still treated as non-zero.
const Epsilon = 1e-5

// FuzzyEqual reports whether a and b are within Epsilon of each other.
func FuzzyEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < Epsilon
}

func mustSameKind(k Kind, other Value) {
	if other.Kind() != k {
		panic(fmt.Sprintf("value: Equal called with mismatched kinds %s vs %s", k, other.Kind()))
	}
}
