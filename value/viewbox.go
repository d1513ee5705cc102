package value

import "fmt"

// ViewBox is the AttributeValue variant for the SVG "viewBox" attribute.
type ViewBox struct {
	X, Y, Width, Height float64
}

func (ViewBox) Kind() Kind { return KindViewBox }

func (v ViewBox) IsDefault() bool { return false }

func (v ViewBox) Equal(other Value) bool {
	mustSameKind(KindViewBox, other)
	o := other.(ViewBox)
	return FuzzyEqual(v.X, o.X) && FuzzyEqual(v.Y, o.Y) &&
		FuzzyEqual(v.Width, o.Width) && FuzzyEqual(v.Height, o.Height)
}

func (v ViewBox) String() string {
	nf := DefaultNumberFormat
	return fmt.Sprintf("%s %s %s %s",
		FormatNumber(v.X, nf), FormatNumber(v.Y, nf), FormatNumber(v.Width, nf), FormatNumber(v.Height, nf))
}

// ParseViewBox parses a "viewBox" attribute: four whitespace/comma
// separated numbers (min-x, min-y, width, height).
func ParseViewBox(s string) (ViewBox, error) {
	nums, err := ParseNumberList(s)
	if err != nil {
		return ViewBox{}, err
	}
	if len(nums) != 4 {
		return ViewBox{}, fmt.Errorf("viewBox: expected 4 numbers, got %d", len(nums))
	}
	if nums[2] < 0 || nums[3] < 0 {
		return ViewBox{}, fmt.Errorf("viewBox: width/height must be non-negative")
	}
	return ViewBox{X: nums[0], Y: nums[1], Width: nums[2], Height: nums[3]}, nil
}

// AlignX is the horizontal half of a preserveAspectRatio <align> token.
type AlignX int

const (
	AlignXMid AlignX = iota
	AlignXMin
	AlignXMax
	AlignXNone
)

// AlignY is the vertical half of a preserveAspectRatio <align> token.
type AlignY int

const (
	AlignYMid AlignY = iota
	AlignYMin
	AlignYMax
	AlignYNone
)

// MeetOrSlice is the preserveAspectRatio scaling strategy.
type MeetOrSlice int

const (
	Meet MeetOrSlice = iota
	Slice
)

// AspectRatio is the AttributeValue variant for "preserveAspectRatio".
type AspectRatio struct {
	AlignX      AlignX
	AlignY      AlignY
	MeetOrSlice MeetOrSlice
}

// DefaultAspectRatio is "xMidYMid meet", the SVG-spec default.
var DefaultAspectRatio = AspectRatio{AlignX: AlignXMid, AlignY: AlignYMid, MeetOrSlice: Meet}

func (AspectRatio) Kind() Kind { return KindAspectRatio }

func (a AspectRatio) IsDefault() bool { return a == DefaultAspectRatio }

func (a AspectRatio) Equal(other Value) bool {
	mustSameKind(KindAspectRatio, other)
	return a == other.(AspectRatio)
}

func (a AspectRatio) String() string {
	if a.AlignX == AlignXNone || a.AlignY == AlignYNone {
		return "none"
	}
	s := "x"
	switch a.AlignX {
	case AlignXMin:
		s += "Min"
	case AlignXMax:
		s += "Max"
	default:
		s += "Mid"
	}
	s += "Y"
	switch a.AlignY {
	case AlignYMin:
		s += "Min"
	case AlignYMax:
		s += "Max"
	default:
		s += "Mid"
	}
	if a.MeetOrSlice == Slice {
		s += " slice"
	} else {
		s += " meet"
	}
	return s
}

// ParseAspectRatio parses a "preserveAspectRatio" attribute value, e.g.
// "xMidYMid meet" or "none".
func ParseAspectRatio(s string) (AspectRatio, error) {
	toks := splitListTokens(s)
	if len(toks) == 0 {
		return AspectRatio{}, fmt.Errorf("preserveAspectRatio: empty value")
	}
	align := toks[0]
	if align == "defer" && len(toks) > 1 {
		toks = toks[1:]
		align = toks[0]
	}
	if align == "none" {
		return AspectRatio{AlignX: AlignXNone, AlignY: AlignYNone}, nil
	}
	if len(align) != 8 || align[0] != 'x' || align[4] != 'Y' {
		return AspectRatio{}, fmt.Errorf("preserveAspectRatio: invalid align %q", align)
	}
	var ax AlignX
	switch align[1:4] {
	case "Min":
		ax = AlignXMin
	case "Mid":
		ax = AlignXMid
	case "Max":
		ax = AlignXMax
	default:
		return AspectRatio{}, fmt.Errorf("preserveAspectRatio: invalid align %q", align)
	}
	var ay AlignY
	switch align[5:8] {
	case "Min":
		ay = AlignYMin
	case "Mid":
		ay = AlignYMid
	case "Max":
		ay = AlignYMax
	default:
		return AspectRatio{}, fmt.Errorf("preserveAspectRatio: invalid align %q", align)
	}
	mos := Meet
	if len(toks) > 1 && toks[1] == "slice" {
		mos = Slice
	}
	return AspectRatio{AlignX: ax, AlignY: ay, MeetOrSlice: mos}, nil
}
