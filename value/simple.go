package value

// StringValue is the AttributeValue variant for a bare, untyped
// attribute value: the fallback for attributes that carry free text
// rather than SVG's typed micro-syntaxes (e.g. "id", "class", "font-family").
type StringValue string

func (StringValue) Kind() Kind { return KindString }

func (v StringValue) IsDefault() bool { return v == "" }

func (v StringValue) Equal(other Value) bool {
	mustSameKind(KindString, other)
	return v == other.(StringValue)
}

func (v StringValue) String() string { return string(v) }

// NoneValue is the AttributeValue variant for the literal keyword "none"
// on attributes (clip-path, mask, filter, ...) whose grammar gives "none"
// its own variant rather than treating it as a string; fill/stroke "none"
// is a Paint value instead.
type NoneValue struct{}

func (NoneValue) Kind() Kind { return KindNone }

func (NoneValue) IsDefault() bool { return false }

func (NoneValue) Equal(other Value) bool {
	mustSameKind(KindNone, other)
	return true
}

func (NoneValue) String() string { return "none" }

// InheritValue is the AttributeValue variant for the literal keyword
// "inherit".
type InheritValue struct{}

func (InheritValue) Kind() Kind { return KindInherit }

func (InheritValue) IsDefault() bool { return false }

func (InheritValue) Equal(other Value) bool {
	mustSameKind(KindInherit, other)
	return true
}

func (InheritValue) String() string { return "inherit" }

// CurrentColorValue is the AttributeValue variant for the literal keyword
// "currentColor".
type CurrentColorValue struct{}

func (CurrentColorValue) Kind() Kind { return KindCurrentColor }

func (CurrentColorValue) IsDefault() bool { return false }

func (CurrentColorValue) Equal(other Value) bool {
	mustSameKind(KindCurrentColor, other)
	return true
}

func (CurrentColorValue) String() string { return "currentColor" }

// EnumValue is the AttributeValue variant for an enumerated keyword
// attribute (e.g. "linecap", "fill-rule") whose legal values are a closed
// set; the parser checks each value against its per-attribute keyword list.
type EnumValue string

func (EnumValue) Kind() Kind { return KindEnum }

func (v EnumValue) IsDefault() bool { return v == "" }

func (v EnumValue) Equal(other Value) bool {
	mustSameKind(KindEnum, other)
	return v == other.(EnumValue)
}

func (v EnumValue) String() string { return string(v) }

// LinkValue is the AttributeValue variant for a bare IRI reference
// (xlink:href, "href") once it's been cross-linked to its target.
type LinkValue struct {
	Target NodeRef
	Raw    string // reference text with any leading '#' removed, kept for unresolved/external references
}

func (LinkValue) Kind() Kind { return KindLink }

func (v LinkValue) IsDefault() bool { return false }

func (v LinkValue) Equal(other Value) bool {
	mustSameKind(KindLink, other)
	o := other.(LinkValue)
	if v.Target != nil || o.Target != nil {
		return v.Target == o.Target
	}
	return v.Raw == o.Raw
}

func (v LinkValue) String() string {
	if v.Target != nil {
		return "#" + v.Target.RefID()
	}
	return v.Raw
}

// FuncLinkValue is the AttributeValue variant for a "url(#id)" reference
// (clip-path, mask, filter; fill/stroke's plain-link form is
// handled by Paint instead).
type FuncLinkValue struct {
	Target NodeRef
	Raw    string
}

func (FuncLinkValue) Kind() Kind { return KindFuncLink }

func (v FuncLinkValue) IsDefault() bool { return false }

func (v FuncLinkValue) Equal(other Value) bool {
	mustSameKind(KindFuncLink, other)
	o := other.(FuncLinkValue)
	if v.Target != nil || o.Target != nil {
		return v.Target == o.Target
	}
	return v.Raw == o.Raw
}

func (v FuncLinkValue) String() string {
	if v.Target != nil {
		return "url(#" + v.Target.RefID() + ")"
	}
	return "url(#" + v.Raw + ")"
}
