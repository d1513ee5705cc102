package parser

import (
	"strings"

	"github.com/RazrFalcon/svgdom/ident"
	"github.com/RazrFalcon/svgdom/value"
)

// lengthAttributes take a bare <length>.
var lengthAttributes = map[ident.AttributeID]bool{
	ident.AttributeX: true, ident.AttributeY: true,
	ident.AttributeX1: true, ident.AttributeY1: true,
	ident.AttributeX2: true, ident.AttributeY2: true,
	ident.AttributeCx: true, ident.AttributeCy: true,
	ident.AttributeR: true, ident.AttributeRx: true, ident.AttributeRy: true,
	ident.AttributeWidth: true, ident.AttributeHeight: true,
	ident.AttributeOffset: true, ident.AttributeRefX: true, ident.AttributeRefY: true,
	ident.AttributeMarkerWidth: true, ident.AttributeMarkerHeight: true,
	ident.AttributeStdDeviation: true,
	ident.AttributeFontSize:     true,
	ident.AttributeStrokeWidth:  true,
	ident.AttributeStrokeDashoffset: true,
	ident.AttributeFillOpacity:      true,
	ident.AttributeStrokeOpacity:    true,
	ident.AttributeOpacity:          true,
	ident.AttributeStopOpacity:      true,
}

// lengthListAttributes take a <list-of-length>.
var lengthListAttributes = map[ident.AttributeID]bool{
	ident.AttributeStrokeDasharray: true,
}

// numberListAttributes take a bare <list-of-number>.
var numberListAttributes = map[ident.AttributeID]bool{}

// transformAttributes take a <transform-list>.
var transformAttributes = map[ident.AttributeID]bool{
	ident.AttributeTransform:          true,
	ident.AttributeGradientTransform:  true,
	ident.AttributePatternTransform:   true,
}

// linkAttributes take a bare IRI ("#id"), no "url()" wrapper.
var linkAttributes = map[ident.AttributeID]bool{
	ident.AttributeHref:      true,
	ident.AttributeXlinkHref: true,
}

// funcLinkAttributes take a "url(#id)" FuncIRI, no fallback grammar.
var funcLinkAttributes = map[ident.AttributeID]bool{
	ident.AttributeClipPath: true,
	ident.AttributeMask:     true,
	ident.AttributeFilter:   true,
}

// enumAttributes take one of a closed set of keywords, validated against
// their catalog at typing time so a bogus keyword degrades to StringValue
// rather than silently becoming a nonsense EnumValue.
var enumAttributes = map[ident.AttributeID][]string{
	ident.AttributeFillRule:         {"nonzero", "evenodd"},
	ident.AttributeClipRule:         {"nonzero", "evenodd"},
	ident.AttributeStrokeLinecap:    {"butt", "round", "square"},
	ident.AttributeStrokeLinejoin:   {"miter", "round", "bevel"},
	ident.AttributeTextAnchor:       {"start", "middle", "end"},
	ident.AttributeVisibility:       {"visible", "hidden", "collapse"},
	ident.AttributeDisplay:          {"inline", "block", "none"},
	ident.AttributeOverflow:        {"visible", "hidden", "scroll", "auto"},
	ident.AttributeGradientUnits:    {"userSpaceOnUse", "objectBoundingBox"},
	ident.AttributePatternUnits:     {"userSpaceOnUse", "objectBoundingBox"},
	ident.AttributePatternContentUnits: {"userSpaceOnUse", "objectBoundingBox"},
	ident.AttributeMaskUnits:        {"userSpaceOnUse", "objectBoundingBox"},
	ident.AttributeMaskContentUnits: {"userSpaceOnUse", "objectBoundingBox"},
	ident.AttributeClipPathUnits:    {"userSpaceOnUse", "objectBoundingBox"},
	ident.AttributeFilterUnits:      {"userSpaceOnUse", "objectBoundingBox"},
	ident.AttributePrimitiveUnits:   {"userSpaceOnUse", "objectBoundingBox"},
	ident.AttributeSpreadMethod:     {"pad", "reflect", "repeat"},
	ident.AttributeMarkerUnits:      {"userSpaceOnUse", "strokeWidth"},
	ident.AttributeVectorEffect:     {"none", "non-scaling-stroke"},
	ident.AttributePointerEvents:    {"visiblePainted", "visibleFill", "visibleStroke", "visible", "painted", "fill", "stroke", "all", "none"},
}

// typeAttributeValue parses raw into the value.Value variant attr's
// grammar calls for. Link-bearing variants (Link/FuncLink/Paint's FuncIRI
// form) are returned with Target == nil; resolveLinks fills them in once
// the whole tree (and its id registry) exists.
func typeAttributeValue(attr ident.AttributeID, raw string) (value.Value, error) {
	raw = strings.TrimSpace(raw)

	if kw, ok := ident.ParseKeyword(raw); ok && attr != ident.AttributeId && !ident.IsPaint(attr) {
		switch kw {
		case ident.KeywordNone:
			if lengthAttributes[attr] || transformAttributes[attr] {
				return value.StringValue(raw), nil
			}
			return value.NoneValue{}, nil
		case ident.KeywordInherit:
			return value.InheritValue{}, nil
		case ident.KeywordCurrentColor:
			return value.CurrentColorValue{}, nil
		}
	}

	if ident.IsPaint(attr) {
		return parsePaintRaw(raw)
	}

	switch {
	case attr == ident.AttributeViewBox:
		return value.ParseViewBox(raw)
	case attr == ident.AttributePreserveAspectRatio:
		return value.ParseAspectRatio(raw)
	case attr == ident.AttributeD:
		return value.ParsePath(raw)
	case attr == ident.AttributePoints:
		return value.ParsePoints(raw)
	case transformAttributes[attr]:
		return value.ParseTransform(raw)
	case lengthAttributes[attr]:
		return value.ParseLength(raw)
	case lengthListAttributes[attr]:
		ls, err := value.ParseLengthList(raw)
		if err != nil {
			return nil, err
		}
		return value.LengthListValue(ls), nil
	case numberListAttributes[attr]:
		ns, err := value.ParseNumberList(raw)
		if err != nil {
			return nil, err
		}
		return value.NumberListValue(ns), nil
	case attr == ident.AttributeColor || attr == ident.AttributeStopColor:
		c, err := value.ParseColor(raw)
		if err != nil {
			return nil, err
		}
		return c, nil
	case linkAttributes[attr]:
		return parseLinkRaw(raw)
	case funcLinkAttributes[attr]:
		return parseFuncLinkRaw(raw)
	case enumAttributes[attr] != nil:
		for _, want := range enumAttributes[attr] {
			if want == raw {
				return value.EnumValue(raw), nil
			}
		}
		return value.StringValue(raw), nil
	default:
		return value.StringValue(raw), nil
	}
}

// parseLinkRaw parses a bare IRI reference: "#id" (same-document) or an
// external/absolute URI kept verbatim in Raw with no Target.
func parseLinkRaw(raw string) (value.Value, error) {
	return value.LinkValue{Raw: strings.TrimPrefix(raw, "#")}, nil
}

// parseFuncLinkRaw parses "url(#id)" / "url(uri)".
func parseFuncLinkRaw(raw string) (value.Value, error) {
	id, ok := extractFuncIRI(raw)
	if !ok {
		return nil, &invalidFuncIRIError{raw}
	}
	return value.FuncLinkValue{Raw: id}, nil
}

func extractFuncIRI(raw string) (string, bool) {
	if !strings.HasPrefix(raw, "url(") {
		return "", false
	}
	rest := raw[len("url("):]
	end := strings.IndexByte(rest, ')')
	if end < 0 {
		return "", false
	}
	inner := strings.TrimSpace(rest[:end])
	inner = strings.Trim(inner, `'"`)
	return strings.TrimPrefix(inner, "#"), true
}

type invalidFuncIRIError struct{ raw string }

func (e *invalidFuncIRIError) Error() string { return "invalid FuncIRI: " + e.raw }
