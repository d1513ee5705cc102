package value

// PaintKind discriminates the Paint sum type (spec.md §3: "Paint is
// itself a small tagged union").
type PaintKind int

const (
	PaintNone PaintKind = iota
	PaintInherit
	PaintCurrentColor
	PaintColor
	PaintFuncIRI
)

// PaintFallbackKind discriminates what a FuncIRI paint falls back to when its
// reference can't be resolved - spec.md §3: "fallback: Option<Color|None|
// CurrentColor>".
type PaintFallbackKind int

const (
	FallbackNone PaintFallbackKind = iota
	FallbackColor
	FallbackCurrentColor
)

// PaintFallback is the optional fallback carried by a FuncIRI paint.
type PaintFallback struct {
	Kind  PaintFallbackKind
	Color Color // valid when Kind == FallbackColor
}

// Paint is the AttributeValue variant for fill/stroke and friends.
type Paint struct {
	Kind PaintKind

	Color Color // valid when Kind == PaintColor

	// Link is the resolved target of a FuncIRI paint ("url(#id)"); nil if
	// Kind != PaintFuncIRI.
	Link NodeRef
	// HasFallback / Fallback describe the "<color>" that follows
	// "url(#id)" in the source text, if any.
	HasFallback bool
	Fallback    PaintFallback
}

// PaintValue wraps Paint as a Value. A plain method on Paint itself would
// collide with its own Kind field, hence the wrapper type.
type PaintValue Paint

func (PaintValue) Kind() Kind { return KindPaint }

func (p PaintValue) IsDefault() bool { return false }

func (p PaintValue) Equal(other Value) bool {
	mustSameKind(KindPaint, other)
	o := other.(PaintValue)
	if p.Kind != o.Kind {
		return false
	}
	switch p.Kind {
	case PaintColor:
		return p.Color == o.Color
	case PaintFuncIRI:
		if p.Link != o.Link {
			return false
		}
		if p.HasFallback != o.HasFallback {
			return false
		}
		if !p.HasFallback {
			return true
		}
		if p.Fallback.Kind != o.Fallback.Kind {
			return false
		}
		return p.Fallback.Kind != FallbackColor || p.Fallback.Color == o.Fallback.Color
	default:
		return true
	}
}

func (p PaintValue) String() string {
	switch p.Kind {
	case PaintNone:
		return "none"
	case PaintInherit:
		return "inherit"
	case PaintCurrentColor:
		return "currentColor"
	case PaintColor:
		return Color(p.Color).String()
	case PaintFuncIRI:
		s := "url(#" + funcIRIID(p.Link) + ")"
		if p.HasFallback {
			switch p.Fallback.Kind {
			case FallbackNone:
				s += " none"
			case FallbackCurrentColor:
				s += " currentColor"
			case FallbackColor:
				s += " " + p.Fallback.Color.String()
			}
		}
		return s
	default:
		return ""
	}
}

func funcIRIID(n NodeRef) string {
	if n == nil {
		return ""
	}
	return n.RefID()
}
