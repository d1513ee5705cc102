package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Transform is the AttributeValue variant for the SVG <transform> type: a
// 2D affine matrix [a c e; b d f; 0 0 1], grounded on
// original_source/src/types/transform.rs.
type Transform struct {
	A, B, C, D, E, F float64
}

// Identity is the default (identity) transform; per spec.md §4.B,
// "Default (identity) transforms are not added to the DOM; absent ≡
// identity."
var Identity = Transform{A: 1, D: 1}

func (Transform) Kind() Kind { return KindTransform }

func (t Transform) IsDefault() bool { return t.Equal(Identity) }

func (t Transform) Equal(other Value) bool {
	mustSameKind(KindTransform, other)
	o := other.(Transform)
	return FuzzyEqual(t.A, o.A) && FuzzyEqual(t.B, o.B) && FuzzyEqual(t.C, o.C) &&
		FuzzyEqual(t.D, o.D) && FuzzyEqual(t.E, o.E) && FuzzyEqual(t.F, o.F)
}

func (t Transform) String() string {
	return fmt.Sprintf("matrix(%s %s %s %s %s %s)",
		FormatNumber(t.A, DefaultNumberFormat), FormatNumber(t.B, DefaultNumberFormat),
		FormatNumber(t.C, DefaultNumberFormat), FormatNumber(t.D, DefaultNumberFormat),
		FormatNumber(t.E, DefaultNumberFormat), FormatNumber(t.F, DefaultNumberFormat))
}

// Append composes t, then other: the matrix product t * other in SVG's
// left-to-right transform-list order.
func (t Transform) Append(other Transform) Transform {
	return Transform{
		A: t.A*other.A + t.C*other.B,
		B: t.B*other.A + t.D*other.B,
		C: t.A*other.C + t.C*other.D,
		D: t.B*other.C + t.D*other.D,
		E: t.A*other.E + t.C*other.F + t.E,
		F: t.B*other.E + t.D*other.F + t.F,
	}
}

// Translate returns t with translate(x, y) appended.
func (t Transform) Translate(x, y float64) Transform {
	return t.Append(Transform{A: 1, D: 1, E: x, F: y})
}

// Scale appends a scale(sx, sy) transform onto t.
func (t Transform) Scale(sx, sy float64) Transform {
	return t.Append(Transform{A: sx, D: sy})
}

// Rotate appends a rotate(angleDegrees) transform onto t.
func (t Transform) Rotate(angleDegrees float64) Transform {
	rad := angleDegrees / 180 * math.Pi
	sin, cos := math.Sin(rad), math.Cos(rad)
	return t.Append(Transform{A: cos, B: sin, C: -sin, D: cos})
}

// SkewX appends a skewX(angleDegrees) transform onto t.
func (t Transform) SkewX(angleDegrees float64) Transform {
	rad := angleDegrees / 180 * math.Pi
	return t.Append(Transform{A: 1, D: 1, C: math.Tan(rad)})
}

// SkewY appends a skewY(angleDegrees) transform onto t.
func (t Transform) SkewY(angleDegrees float64) Transform {
	rad := angleDegrees / 180 * math.Pi
	return t.Append(Transform{A: 1, D: 1, B: math.Tan(rad)})
}

// Apply maps a point through the transform.
func (t Transform) Apply(x, y float64) (float64, float64) {
	return t.A*x + t.C*y + t.E, t.B*x + t.D*y + t.F
}

// IsTranslate reports whether t is a pure translation.
func (t Transform) IsTranslate() bool {
	return FuzzyEqual(t.A, 1) && FuzzyEqual(t.B, 0) && FuzzyEqual(t.C, 0) && FuzzyEqual(t.D, 1) &&
		(!FuzzyEqual(t.E, 0) || !FuzzyEqual(t.F, 0))
}

// IsScale reports whether t is a pure (non-identity) scale.
func (t Transform) IsScale() bool {
	return (!FuzzyEqual(t.A, 1) || !FuzzyEqual(t.D, 1)) &&
		FuzzyEqual(t.B, 0) && FuzzyEqual(t.C, 0) && FuzzyEqual(t.E, 0) && FuzzyEqual(t.F, 0)
}

// HasTranslate reports whether t carries any translation component.
func (t Transform) HasTranslate() bool {
	return !FuzzyEqual(t.E, 0) || !FuzzyEqual(t.F, 0)
}

// GetTranslate returns t's translation component.
func (t Transform) GetTranslate() (float64, float64) { return t.E, t.F }

// GetScale returns t's (possibly anisotropic) scale component.
func (t Transform) GetScale() (float64, float64) {
	sx := math.Hypot(t.A, t.C)
	sy := math.Hypot(t.B, t.D)
	return sx, sy
}

// GetSkew returns t's skew component, in degrees, along x and y.
func (t Transform) GetSkew() (float64, float64) {
	const rad2deg = 180 / math.Pi
	skewX := rad2deg*math.Atan2(t.D, t.C) - 90
	skewY := rad2deg * math.Atan2(t.B, t.A)
	return skewX, skewY
}

// GetRotate returns t's rotation component, in degrees.
func (t Transform) GetRotate() float64 {
	const rad2deg = 180 / math.Pi
	angle := math.Atan(-t.B/t.A) * rad2deg
	if t.B < t.C || t.B > t.C {
		angle = -angle
	}
	return angle
}

// ParseTransform parses an SVG <transform-list>: a whitespace/comma
// separated sequence of matrix()/translate()/scale()/rotate()/skewX()/
// skewY() functions, composed left to right.
func ParseTransform(s string) (Transform, error) {
	t := Identity
	rest := strings.TrimSpace(s)
	for rest != "" {
		rest = strings.TrimLeft(rest, " \t\r\n,")
		if rest == "" {
			break
		}
		name, args, tail, err := splitTransformFunc(rest)
		if err != nil {
			return Transform{}, err
		}
		nums, err := parseTransformArgs(args)
		if err != nil {
			return Transform{}, err
		}
		fn, err := applyTransformFunc(t, name, nums)
		if err != nil {
			return Transform{}, err
		}
		t = fn
		rest = tail
	}
	return t, nil
}

func splitTransformFunc(s string) (name, args, tail string, err error) {
	open := strings.IndexByte(s, '(')
	if open < 0 {
		return "", "", "", fmt.Errorf("transform: missing '(' in %q", s)
	}
	name = strings.TrimSpace(s[:open])
	depth := 0
	i := open
	for ; i < len(s); i++ {
		if s[i] == '(' {
			depth++
		} else if s[i] == ')' {
			depth--
			if depth == 0 {
				break
			}
		}
	}
	if depth != 0 {
		return "", "", "", fmt.Errorf("transform: unbalanced parens in %q", s)
	}
	args = s[open+1 : i]
	tail = s[i+1:]
	return name, args, tail, nil
}

func parseTransformArgs(args string) ([]float64, error) {
	toks := splitListTokens(args)
	out := make([]float64, 0, len(toks))
	for _, t := range toks {
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return nil, fmt.Errorf("transform: invalid number %q: %w", t, err)
		}
		out = append(out, f)
	}
	return out, nil
}

func applyTransformFunc(t Transform, name string, n []float64) (Transform, error) {
	switch name {
	case "matrix":
		if len(n) != 6 {
			return Transform{}, fmt.Errorf("transform: matrix() needs 6 args, got %d", len(n))
		}
		return t.Append(Transform{A: n[0], B: n[1], C: n[2], D: n[3], E: n[4], F: n[5]}), nil
	case "translate":
		switch len(n) {
		case 1:
			return t.Translate(n[0], 0), nil
		case 2:
			return t.Translate(n[0], n[1]), nil
		}
	case "scale":
		switch len(n) {
		case 1:
			return t.Scale(n[0], n[0]), nil
		case 2:
			return t.Scale(n[0], n[1]), nil
		}
	case "rotate":
		switch len(n) {
		case 1:
			return t.Rotate(n[0]), nil
		case 3:
			// rotate(angle cx cy) == translate(cx,cy) rotate(angle) translate(-cx,-cy)
			return t.Translate(n[1], n[2]).Rotate(n[0]).Translate(-n[1], -n[2]), nil
		}
	case "skewX":
		if len(n) == 1 {
			return t.SkewX(n[0]), nil
		}
	case "skewY":
		if len(n) == 1 {
			return t.SkewY(n[0]), nil
		}
	default:
		return Transform{}, fmt.Errorf("transform: unknown function %q", name)
	}
	return Transform{}, fmt.Errorf("transform: wrong argument count for %s()", name)
}

// FormatTransform renders t either as a plain matrix() or, when simplify
// is requested, as the shortest equivalent of translate/scale/rotate -
// grounded on original_source/src/types/transform.rs's
// write_simplified_transform.
func FormatTransform(t Transform, nf NumberFormat, simplify bool) string {
	if t.IsDefault() {
		return ""
	}
	if !simplify {
		return writeMatrix(t, nf)
	}
	switch {
	case t.IsTranslate():
		s := "translate(" + FormatNumber(t.E, nf)
		if !FuzzyEqual(t.F, 0) {
			s += " " + FormatNumber(t.F, nf)
		}
		return s + ")"
	case t.IsScale():
		s := "scale(" + FormatNumber(t.A, nf)
		if !FuzzyEqual(t.A, t.D) {
			s += " " + FormatNumber(t.D, nf)
		}
		return s + ")"
	case !t.HasTranslate():
		angle := t.GetRotate()
		sx, sy := t.GetScale()
		skx, sky := t.GetSkew()
		if FuzzyEqual(angle, skx) && FuzzyEqual(angle, sky) && FuzzyEqual(sx, 1) && FuzzyEqual(sy, 1) {
			return "rotate(" + FormatNumber(angle, nf) + ")"
		}
		return writeMatrix(t, nf)
	default:
		return writeMatrix(t, nf)
	}
}

func writeMatrix(t Transform, nf NumberFormat) string {
	return fmt.Sprintf("matrix(%s %s %s %s %s %s)",
		FormatNumber(t.A, nf), FormatNumber(t.B, nf), FormatNumber(t.C, nf),
		FormatNumber(t.D, nf), FormatNumber(t.E, nf), FormatNumber(t.F, nf))
}
