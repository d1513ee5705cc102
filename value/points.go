package value

import (
	"fmt"
	"strings"
)

// Point is a single (x, y) pair in a "points" attribute.
type Point struct{ X, Y float64 }

// PointsValue is the AttributeValue variant for polygon/polyline's
// "points" attribute: a flat list of coordinate pairs.
type PointsValue []Point

func (PointsValue) Kind() Kind { return KindPoints }

func (v PointsValue) IsDefault() bool { return len(v) == 0 }

func (v PointsValue) Equal(other Value) bool {
	mustSameKind(KindPoints, other)
	o := other.(PointsValue)
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if !FuzzyEqual(v[i].X, o[i].X) || !FuzzyEqual(v[i].Y, o[i].Y) {
			return false
		}
	}
	return true
}

func (v PointsValue) String() string {
	parts := make([]string, len(v))
	for i, p := range v {
		parts[i] = FormatNumber(p.X, DefaultNumberFormat) + "," + FormatNumber(p.Y, DefaultNumberFormat)
	}
	return strings.Join(parts, " ")
}

// ParsePoints parses a "points" attribute: a whitespace/comma separated
// list of numbers, taken two at a time.
func ParsePoints(s string) (PointsValue, error) {
	nums, err := ParseNumberList(s)
	if err != nil {
		return nil, err
	}
	if len(nums)%2 != 0 {
		return nil, fmt.Errorf("points: odd number of coordinates (%d)", len(nums))
	}
	out := make(PointsValue, 0, len(nums)/2)
	for i := 0; i < len(nums); i += 2 {
		out = append(out, Point{X: nums[i], Y: nums[i+1]})
	}
	return out, nil
}
