package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
)

// PathCommand identifies a path data segment's command letter, independent
// of its absolute/relative form - grounded on
// original_source/src/types/path.rs's Command enum.
type PathCommand int

const (
	CmdMoveTo PathCommand = iota
	CmdLineTo
	CmdHorizontalLineTo
	CmdVerticalLineTo
	CmdCurveTo
	CmdSmoothCurveTo
	CmdQuadratic
	CmdSmoothQuadratic
	CmdEllipticalArc
	CmdClosePath
)

var cmdChars = map[PathCommand][2]byte{
	CmdMoveTo:           {'M', 'm'},
	CmdLineTo:           {'L', 'l'},
	CmdHorizontalLineTo: {'H', 'h'},
	CmdVerticalLineTo:   {'V', 'v'},
	CmdCurveTo:          {'C', 'c'},
	CmdSmoothCurveTo:    {'S', 's'},
	CmdQuadratic:        {'Q', 'q'},
	CmdSmoothQuadratic:  {'T', 't'},
	CmdEllipticalArc:    {'A', 'a'},
	CmdClosePath:        {'Z', 'z'},
}

// PathSegment is one command of a path data string, grounded on
// original_source/src/types/path.rs's Segment/SegmentData.
//
// Not every field is meaningful for every Cmd; see the comment on each
// field for which commands populate it.
type PathSegment struct {
	Cmd      PathCommand
	Absolute bool

	X, Y   float64 // MoveTo, LineTo, CurveTo, SmoothCurveTo, Quadratic, SmoothQuadratic, EllipticalArc
	X1, Y1 float64 // CurveTo, Quadratic
	X2, Y2 float64 // CurveTo, SmoothCurveTo

	RX, RY         float64 // EllipticalArc
	XAxisRotation  float64 // EllipticalArc
	LargeArc, Sweep bool   // EllipticalArc
}

// HasX reports whether the segment carries an X coordinate.
func (s PathSegment) HasX() bool { return s.Cmd != CmdVerticalLineTo && s.Cmd != CmdClosePath }

// HasY reports whether the segment carries a Y coordinate.
func (s PathSegment) HasY() bool { return s.Cmd != CmdHorizontalLineTo && s.Cmd != CmdClosePath }

func (s PathSegment) fuzzyEqual(o PathSegment) bool {
	if s.Cmd != o.Cmd || s.Absolute != o.Absolute {
		return false
	}
	switch s.Cmd {
	case CmdClosePath:
		return true
	case CmdHorizontalLineTo:
		return FuzzyEqual(s.X, o.X)
	case CmdVerticalLineTo:
		return FuzzyEqual(s.Y, o.Y)
	case CmdCurveTo:
		return FuzzyEqual(s.X, o.X) && FuzzyEqual(s.Y, o.Y) &&
			FuzzyEqual(s.X1, o.X1) && FuzzyEqual(s.Y1, o.Y1) &&
			FuzzyEqual(s.X2, o.X2) && FuzzyEqual(s.Y2, o.Y2)
	case CmdSmoothCurveTo:
		return FuzzyEqual(s.X, o.X) && FuzzyEqual(s.Y, o.Y) &&
			FuzzyEqual(s.X2, o.X2) && FuzzyEqual(s.Y2, o.Y2)
	case CmdQuadratic:
		return FuzzyEqual(s.X, o.X) && FuzzyEqual(s.Y, o.Y) &&
			FuzzyEqual(s.X1, o.X1) && FuzzyEqual(s.Y1, o.Y1)
	case CmdEllipticalArc:
		return FuzzyEqual(s.X, o.X) && FuzzyEqual(s.Y, o.Y) &&
			FuzzyEqual(s.RX, o.RX) && FuzzyEqual(s.RY, o.RY) &&
			s.XAxisRotation == o.XAxisRotation && s.LargeArc == o.LargeArc && s.Sweep == o.Sweep
	default:
		return FuzzyEqual(s.X, o.X) && FuzzyEqual(s.Y, o.Y)
	}
}

func (s PathSegment) shift(dx, dy float64) PathSegment {
	switch s.Cmd {
	case CmdHorizontalLineTo:
		s.X += dx
	case CmdVerticalLineTo:
		s.Y += dy
	case CmdClosePath:
	case CmdCurveTo:
		s.X1 += dx
		s.Y1 += dy
		s.X2 += dx
		s.Y2 += dy
		s.X += dx
		s.Y += dy
	case CmdSmoothCurveTo:
		s.X2 += dx
		s.Y2 += dy
		s.X += dx
		s.Y += dy
	case CmdQuadratic:
		s.X1 += dx
		s.Y1 += dy
		s.X += dx
		s.Y += dy
	default:
		s.X += dx
		s.Y += dy
	}
	return s
}

// PathValue is the AttributeValue variant for the SVG <path> "d" attribute.
type PathValue []PathSegment

func (PathValue) Kind() Kind { return KindPath }

func (v PathValue) IsDefault() bool { return len(v) == 0 }

func (v PathValue) Equal(other Value) bool {
	mustSameKind(KindPath, other)
	o := other.(PathValue)
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if !v[i].fuzzyEqual(o[i]) {
			return false
		}
	}
	return true
}

func (v PathValue) String() string { return FormatPath(v, DefaultNumberFormat, false) }

// ToAbsolute returns a copy of v with every segment converted to its
// absolute form - grounded on original_source/src/types/path.rs's
// conv_to_absolute. Mixed absolute/relative input is handled segment by
// segment; a relative MoveTo immediately following ClosePath is relative
// to the last MoveTo, not the path's current point.
func (v PathValue) ToAbsolute() PathValue {
	out := make(PathValue, len(v))
	var prevX, prevY, prevMX, prevMY float64
	prevCmd := CmdMoveTo
	for i, seg := range v {
		if seg.Cmd == CmdClosePath {
			prevX, prevY = prevMX, prevMY
			seg.Absolute = true
			out[i] = seg
			prevCmd = CmdClosePath
			continue
		}

		var offX, offY float64
		if !seg.Absolute {
			if seg.Cmd == CmdMoveTo && prevCmd == CmdClosePath {
				offX, offY = prevMX, prevMY
			} else {
				offX, offY = prevX, prevY
			}
			seg = seg.shift(offX, offY)
		}

		if seg.Cmd == CmdMoveTo {
			prevMX, prevMY = seg.X, seg.Y
		}
		seg.Absolute = true

		switch seg.Cmd {
		case CmdHorizontalLineTo:
			prevX = seg.X
		case CmdVerticalLineTo:
			prevY = seg.Y
		default:
			prevX, prevY = seg.X, seg.Y
		}

		prevCmd = seg.Cmd
		out[i] = seg
	}
	return out
}

// ToRelative returns a copy of v with every segment converted to its
// relative form - grounded on original_source/src/types/path.rs's
// conv_to_relative.
func (v PathValue) ToRelative() PathValue {
	out := make(PathValue, len(v))
	var prevX, prevY, prevMX, prevMY float64
	prevCmd := CmdMoveTo
	for i, seg := range v {
		if seg.Cmd == CmdClosePath {
			prevX, prevY = prevMX, prevMY
			seg.Absolute = false
			out[i] = seg
			prevCmd = CmdClosePath
			continue
		}

		var offX, offY float64
		if seg.Absolute {
			if seg.Cmd == CmdMoveTo && prevCmd == CmdClosePath {
				offX, offY = prevMX, prevMY
			} else {
				offX, offY = prevX, prevY
			}
		}

		if seg.Absolute {
			switch seg.Cmd {
			case CmdHorizontalLineTo:
				prevX = seg.X
			case CmdVerticalLineTo:
				prevY = seg.Y
			default:
				prevX, prevY = seg.X, seg.Y
			}
		} else {
			switch seg.Cmd {
			case CmdHorizontalLineTo:
				prevX += seg.X
			case CmdVerticalLineTo:
				prevY += seg.Y
			default:
				prevX += seg.X
				prevY += seg.Y
			}
		}

		if seg.Cmd == CmdMoveTo {
			if seg.Absolute {
				prevMX, prevMY = seg.X, seg.Y
			} else {
				prevMX += seg.X
				prevMY += seg.Y
			}
		}

		if seg.Absolute {
			seg = seg.shift(-offX, -offY)
		}
		seg.Absolute = false

		prevCmd = seg.Cmd
		out[i] = seg
	}
	return out
}

// ParsePath parses an SVG path data string into its segment list.
func ParsePath(d string) (PathValue, error) {
	toks := newPathTokenizer(d)
	var segs PathValue
	var cmd PathCommand
	var absolute bool
	haveCmd := false

	for {
		c, ok := toks.peekCommand()
		if ok {
			cmd, absolute, _ = pathCommandFromByte(c)
			toks.next()
			haveCmd = true
		} else if !haveCmd {
			if toks.atEnd() {
				break
			}
			return nil, fmt.Errorf("path: expected command letter, got %q", toks.rest())
		} else if cmd == CmdMoveTo {
			cmd = CmdLineTo // implicit LineTo after MoveTo's extra coordinate pairs
		}
		if toks.atEnd() && !ok {
			break
		}

		seg, err := readPathSegment(toks, cmd, absolute)
		if err != nil {
			return nil, err
		}
		segs = append(segs, seg)

		if toks.atEnd() {
			break
		}
	}
	return segs, nil
}

type pathTokenizer struct {
	s   string
	pos int
}

func newPathTokenizer(s string) *pathTokenizer { return &pathTokenizer{s: s} }

func (t *pathTokenizer) skipSep() {
	for t.pos < len(t.s) {
		c := t.s[t.pos]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == ',' {
			t.pos++
			continue
		}
		break
	}
}

func (t *pathTokenizer) atEnd() bool {
	t.skipSep()
	return t.pos >= len(t.s)
}

func (t *pathTokenizer) rest() string { return t.s[t.pos:] }

func (t *pathTokenizer) peekCommand() (byte, bool) {
	t.skipSep()
	if t.pos >= len(t.s) {
		return 0, false
	}
	c := t.s[t.pos]
	if _, _, ok := pathCommandFromByte(c); ok {
		return c, true
	}
	return 0, false
}

func (t *pathTokenizer) next() { t.pos++ }

// readFloat reads one <number> token. Path data packs numbers tighter
// than any other SVG grammar ("1.5.5" is two numbers, "1-2" is two
// numbers with an implicit separator at the sign), so the extent comes
// from parse.Number rather than the comma/whitespace splitting
// ParseNumber/ParseLength use for their own tokens.
func (t *pathTokenizer) readFloat() (float64, error) {
	t.skipSep()
	n := parse.Number([]byte(t.s[t.pos:]))
	if n == 0 {
		return 0, fmt.Errorf("path: expected number at %q", t.s[t.pos:])
	}
	f, err := strconv.ParseFloat(t.s[t.pos:t.pos+n], 64)
	t.pos += n
	return f, err
}

func (t *pathTokenizer) readFlag() (bool, error) {
	t.skipSep()
	if t.pos >= len(t.s) {
		return false, fmt.Errorf("path: expected flag, got end of input")
	}
	c := t.s[t.pos]
	if c != '0' && c != '1' {
		return false, fmt.Errorf("path: expected flag (0/1), got %q", string(c))
	}
	t.pos++
	return c == '1', nil
}

func pathCommandFromByte(c byte) (PathCommand, bool, bool) {
	for cmd, pair := range cmdChars {
		if pair[0] == c {
			return cmd, true, true
		}
		if pair[1] == c {
			return cmd, false, true
		}
	}
	return 0, false, false
}

func readPathSegment(t *pathTokenizer, cmd PathCommand, absolute bool) (PathSegment, error) {
	s := PathSegment{Cmd: cmd, Absolute: absolute}
	var err error
	switch cmd {
	case CmdClosePath:
	case CmdMoveTo, CmdLineTo, CmdSmoothQuadratic:
		if s.X, err = t.readFloat(); err != nil {
			return s, err
		}
		if s.Y, err = t.readFloat(); err != nil {
			return s, err
		}
	case CmdHorizontalLineTo:
		if s.X, err = t.readFloat(); err != nil {
			return s, err
		}
	case CmdVerticalLineTo:
		if s.Y, err = t.readFloat(); err != nil {
			return s, err
		}
	case CmdCurveTo:
		for _, p := range []*float64{&s.X1, &s.Y1, &s.X2, &s.Y2, &s.X, &s.Y} {
			if *p, err = t.readFloat(); err != nil {
				return s, err
			}
		}
	case CmdSmoothCurveTo:
		for _, p := range []*float64{&s.X2, &s.Y2, &s.X, &s.Y} {
			if *p, err = t.readFloat(); err != nil {
				return s, err
			}
		}
	case CmdQuadratic:
		for _, p := range []*float64{&s.X1, &s.Y1, &s.X, &s.Y} {
			if *p, err = t.readFloat(); err != nil {
				return s, err
			}
		}
	case CmdEllipticalArc:
		if s.RX, err = t.readFloat(); err != nil {
			return s, err
		}
		if s.RY, err = t.readFloat(); err != nil {
			return s, err
		}
		if s.XAxisRotation, err = t.readFloat(); err != nil {
			return s, err
		}
		if s.LargeArc, err = t.readFlag(); err != nil {
			return s, err
		}
		if s.Sweep, err = t.readFlag(); err != nil {
			return s, err
		}
		if s.X, err = t.readFloat(); err != nil {
			return s, err
		}
		if s.Y, err = t.readFloat(); err != nil {
			return s, err
		}
	}
	return s, nil
}

// PathWriteOptions controls FormatPath, mirroring
// original_source/src/types/path.rs's WriteOptions.paths knobs
// (remove_duplicated_commands, use_implicit_lineto_commands,
// use_compact_notation, join_arc_to_flags).
type PathWriteOptions struct {
	RemoveDuplicatedCommands  bool
	UseImplicitLineTo         bool
	UseCompactNotation        bool
	JoinArcFlags              bool
}

// FormatPath renders segs as a path data string. compact selects the
// legacy minimal-whitespace form; for full control use FormatPathOpt.
func FormatPath(segs PathValue, nf NumberFormat, compact bool) string {
	return FormatPathOpt(segs, nf, PathWriteOptions{UseCompactNotation: compact})
}

// FormatPathOpt renders segs with the given options, grounded on
// original_source/src/types/path.rs's WriteBuffer impl for Path.
func FormatPathOpt(segs PathValue, nf NumberFormat, opt PathWriteOptions) string {
	if len(segs) == 0 {
		return ""
	}
	var b strings.Builder
	var prevCmd PathCommand
	var prevAbs, prevImplicit, havePrev bool

	for _, seg := range segs {
		printCmd := true
		if opt.RemoveDuplicatedCommands && havePrev && seg.Cmd == prevCmd && seg.Absolute == prevAbs {
			printCmd = false
		}
		isImplicit := false
		if opt.UseImplicitLineTo && havePrev && seg.Absolute == prevAbs {
			if prevImplicit && seg.Cmd == CmdLineTo {
				isImplicit = true
			} else if prevCmd == CmdMoveTo && seg.Cmd == CmdLineTo {
				isImplicit = true
			}
		}
		if isImplicit {
			printCmd = false
		}

		if printCmd {
			b.WriteByte(cmdChar(seg))
			if seg.Cmd != CmdClosePath && !opt.UseCompactNotation {
				b.WriteByte(' ')
			}
		}
		prevCmd, prevAbs, prevImplicit, havePrev = seg.Cmd, seg.Absolute, isImplicit, true

		writeSegmentCoords(&b, seg, nf, opt)

		if !opt.UseCompactNotation {
			b.WriteByte(' ')
		}
	}

	out := b.String()
	if !opt.UseCompactNotation {
		out = strings.TrimRight(out, " ")
	}
	return out
}

func cmdChar(seg PathSegment) byte {
	pair := cmdChars[seg.Cmd]
	if seg.Absolute {
		return pair[0]
	}
	return pair[1]
}

func writeSegmentCoords(b *strings.Builder, seg PathSegment, nf NumberFormat, opt PathWriteOptions) {
	writeList := func(vals ...float64) {
		for i, v := range vals {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(FormatNumber(v, nf))
		}
	}
	switch seg.Cmd {
	case CmdMoveTo, CmdLineTo, CmdSmoothQuadratic:
		writeList(seg.X, seg.Y)
	case CmdHorizontalLineTo:
		writeList(seg.X)
	case CmdVerticalLineTo:
		writeList(seg.Y)
	case CmdCurveTo:
		writeList(seg.X1, seg.Y1, seg.X2, seg.Y2, seg.X, seg.Y)
	case CmdSmoothCurveTo:
		writeList(seg.X2, seg.Y2, seg.X, seg.Y)
	case CmdQuadratic:
		writeList(seg.X1, seg.Y1, seg.X, seg.Y)
	case CmdEllipticalArc:
		writeList(seg.RX, seg.RY, seg.XAxisRotation)
		b.WriteByte(' ')
		b.WriteByte(flagChar(seg.LargeArc))
		if !opt.JoinArcFlags {
			b.WriteByte(' ')
		}
		b.WriteByte(flagChar(seg.Sweep))
		if !opt.JoinArcFlags {
			b.WriteByte(' ')
		}
		writeList(seg.X, seg.Y)
	case CmdClosePath:
	}
}

func flagChar(f bool) byte {
	if f {
		return '1'
	}
	return '0'
}
