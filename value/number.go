package value

import (
	"math"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
)

// NumberFormat controls FormatNumber's output; it mirrors the relevant
// subset of WriteOptions (numbers_precision, remove_leading_zero) so the
// value package can render its own canonical String() without importing
// the writer package.
type NumberFormat struct {
	Precision         int // significant digits, 1..17; 0 means DefaultPrecision
	RemoveLeadingZero bool
}

// DefaultPrecision is spec.md §4.B's "default 11 significant digits".
const DefaultPrecision = 11

// DefaultNumberFormat is used by Value.String() implementations.
var DefaultNumberFormat = NumberFormat{Precision: DefaultPrecision}

// FormatNumber renders f the way the writer does by default: fixed-point
// where practical, trailing zeros trimmed, optionally with the leading
// zero of a fractional value dropped ("0.5" -> ".5"). Grounded on
// tdewolff-minify/common.go's Number, generalized from "trim an existing
// textual number" to "format a float64 from scratch".
func FormatNumber(f float64, opt NumberFormat) string {
	precision := opt.Precision
	if precision <= 0 {
		precision = DefaultPrecision
	}
	if math.Abs(f) < Epsilon {
		f = 0
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	s = roundSignificant(s, precision)
	s = trimTrailingZeros(s)

	if opt.RemoveLeadingZero {
		s = stripLeadingZero(s)
	}
	return s
}

// roundSignificant re-renders s (a minimal decimal rendering from
// strconv.FormatFloat) at no more than `precision` significant digits.
func roundSignificant(s string, precision int) string {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	// strconv's 'g' verb counts significant digits directly.
	out := strconv.FormatFloat(f, 'g', precision, 64)
	if strings.ContainsAny(out, "eE") {
		// Expand back to fixed notation; SVG numbers don't use exponents
		// in canonical output.
		expanded, ok := expandExponent(out)
		if ok {
			return expanded
		}
	}
	return out
}

func expandExponent(s string) (string, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s, false
	}
	// Precision -1 gives the shortest fixed-point form that round-trips
	// the float64.
	return strconv.FormatFloat(f, 'f', -1, 64), true
}

func trimTrailingZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}

func stripLeadingZero(s string) string {
	neg := strings.HasPrefix(s, "-")
	body := s
	if neg {
		body = s[1:]
	}
	if strings.HasPrefix(body, "0.") && len(body) > 2 {
		body = body[1:]
	}
	if neg {
		return "-" + body
	}
	return body
}

// ParseNumber parses an SVG <number> token (optional sign, digits,
// optional fraction, optional exponent) from a trimmed string. It does not
// accept a unit suffix - callers needing <length> should use ParseLength.
// parse.Number is used to reject trailing garbage ("1.5foo") the way
// ParseLength's unit-suffix split already tolerates but a bare <number>
// must not.
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	b := []byte(s)
	if n := parse.Number(b); n != len(b) {
		return 0, &InvalidUnitError{Unit: s}
	}
	return strconv.ParseFloat(s, 64)
}

// NumberValue is the AttributeValue variant for a bare <number>.
type NumberValue float64

func (NumberValue) Kind() Kind { return KindNumber }

func (v NumberValue) IsDefault() bool { return false }

func (v NumberValue) Equal(other Value) bool {
	mustSameKind(KindNumber, other)
	return FuzzyEqual(float64(v), float64(other.(NumberValue)))
}

func (v NumberValue) String() string {
	return FormatNumber(float64(v), DefaultNumberFormat)
}

// NumberListValue is the AttributeValue variant for a <list-of-number>
// (stroke-dasharray, which may carry units, is a LengthListValue).
type NumberListValue []float64

func (NumberListValue) Kind() Kind { return KindNumberList }

func (v NumberListValue) IsDefault() bool { return len(v) == 0 }

func (v NumberListValue) Equal(other Value) bool {
	mustSameKind(KindNumberList, other)
	o := other.(NumberListValue)
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if !FuzzyEqual(v[i], o[i]) {
			return false
		}
	}
	return true
}

func (v NumberListValue) String() string {
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = FormatNumber(f, DefaultNumberFormat)
	}
	return strings.Join(parts, " ")
}

// ParseNumberList parses a comma/whitespace separated list of <number>
// tokens, per SVG's list grammar (either separator, repeated, trailing
// separators ignored).
func ParseNumberList(s string) ([]float64, error) {
	toks := splitListTokens(s)
	out := make([]float64, 0, len(toks))
	for _, t := range toks {
		f, err := ParseNumber(t)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// splitListTokens splits on SVG list-separator grammar: comma and/or
// whitespace, treating consecutive separators as one, per spec.md §4.B
// ("lists accept comma and whitespace separators").
func splitListTokens(s string) []string {
	var toks []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			toks = append(toks, cur.String())
			cur.Reset()
		}
	}
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', ',':
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return toks
}
