package svgdom

// ParseOptions controls parser leniency, mirroring spec.md §6's
// ParseOptions record.
type ParseOptions struct {
	// SkipInvalidAttributes drops an attribute whose value fails typed
	// parsing (with a warning) instead of aborting the parse.
	SkipInvalidAttributes bool
	// SkipInvalidCSS drops a <style> element's stylesheet (with a
	// warning) instead of aborting when it fails to parse.
	SkipInvalidCSS bool
	// SkipPaintFallback suppresses ErrBrokenFuncIRI for an unresolved
	// url(#id) paint with no fallback, leaving Paint::FuncIRI unresolved
	// instead of erroring.
	SkipPaintFallback bool
	// SkipUnresolvedClasses suppresses warnings for CSS class selectors
	// that match no element.
	SkipUnresolvedClasses bool
}

// DefaultParseOptions returns the lenient defaults used when Parse is
// called without explicit options: skip rather than abort on recoverable
// problems, matching spec.md §6's documented defaults.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		SkipInvalidAttributes: true,
		SkipInvalidCSS:        true,
		SkipPaintFallback:     true,
	}
}

// Indent selects the writer's indentation style.
type Indent struct {
	Kind   IndentKind
	Amount uint8 // number of spaces/tabs; meaningless for IndentNone
}

// IndentKind discriminates Indent's Kind field.
type IndentKind int

const (
	IndentNone IndentKind = iota
	IndentSpaces
	IndentTabs
)

// ListSeparator controls how the writer joins list-valued attributes.
type ListSeparator int

const (
	SepSpace ListSeparator = iota
	SepComma
	SepCommaSpace
)

func (s ListSeparator) string() string {
	switch s {
	case SepComma:
		return ","
	case SepCommaSpace:
		return ", "
	default:
		return " "
	}
}

// AttributesOrder controls the order the writer emits an element's
// attributes in.
type AttributesOrder int

const (
	OrderAsIs AttributesOrder = iota
	OrderAlphabetical
	OrderSpecification
)

// WriteOptions controls serialization, mirroring spec.md §6's
// WriteOptions record.
type WriteOptions struct {
	Indent           Indent
	AttributesIndent Indent

	UseSingleQuote bool

	TrimHexColors         bool
	WriteHiddenAttributes bool
	RemoveLeadingZero     bool

	UseCompactPathNotation       bool
	JoinArcToFlags               bool
	RemoveDuplicatedPathCommands bool
	UseImplicitLineToCommands   bool

	SimplifyTransformMatrices bool

	NumbersPrecision     uint8
	TransformsPrecision  uint8
	PathsPrecision       uint8
	CoordinatesPrecision uint8

	ListSeparator   ListSeparator
	AttributesOrder AttributesOrder
}

// DefaultWriteOptions returns the canonical, round-trip-safe write
// configuration: no indentation, double quotes, 11 significant digits,
// insertion-order attributes - matching spec.md §4.B/§4.F's defaults.
func DefaultWriteOptions() WriteOptions {
	return WriteOptions{
		NumbersPrecision:     11,
		TransformsPrecision:  11,
		PathsPrecision:       11,
		CoordinatesPrecision: 11,
		ListSeparator:        SepSpace,
		AttributesOrder:      OrderAsIs,
	}
}
