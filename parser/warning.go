// Package parser turns SVG source text into a *svgdom.Document: tokenizing
// with tdewolff/parse/v2's xml tokenizer, building the tree, typing every
// attribute into its value.Value variant, then running the fixed
// preprocessor pipeline (style split, CSS cascade, whitespace
// normalization, link/paint resolution) spec.md §5 describes.
package parser

// WarningKind discriminates the recoverable conditions Parse can surface
// without aborting, when the ParseOptions that govern them enable
// skip-and-continue behavior.
type WarningKind int

const (
	WarnInvalidAttributeValue WarningKind = iota
	WarnInvalidCSS
	WarnDuplicateID
	WarnUnresolvedClass
	WarnBrokenFuncIRI
	WarnUnsupportedEntity
	WarnCrosslinkCycle
)

func (k WarningKind) String() string {
	switch k {
	case WarnInvalidAttributeValue:
		return "invalid attribute value"
	case WarnInvalidCSS:
		return "invalid CSS"
	case WarnDuplicateID:
		return "duplicate id"
	case WarnUnresolvedClass:
		return "unresolved class selector"
	case WarnBrokenFuncIRI:
		return "broken FuncIRI"
	case WarnUnsupportedEntity:
		return "unsupported entity"
	case WarnCrosslinkCycle:
		return "crosslink cycle broken"
	default:
		return "warning"
	}
}

// Warning is one recoverable problem Parse encountered, surfaced through
// the Result's Warnings slice rather than as an error.
type Warning struct {
	Kind    WarningKind
	Context string // e.g. the attribute name, element id, or entity name
	Detail  string
}

func (w Warning) String() string {
	if w.Context == "" {
		return w.Kind.String() + ": " + w.Detail
	}
	return w.Kind.String() + " (" + w.Context + "): " + w.Detail
}
