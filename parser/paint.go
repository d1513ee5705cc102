package parser

import (
	"strings"

	"github.com/RazrFalcon/svgdom/value"
)

// parsePaintRaw parses the fill/stroke/stop-color/flood-color grammar:
// none | currentColor | inherit | <color> | <funciri> [none|currentColor|<color>]
func parsePaintRaw(raw string) (value.Value, error) {
	switch raw {
	case "none":
		return value.PaintValue{Kind: value.PaintNone}, nil
	case "inherit":
		return value.PaintValue{Kind: value.PaintInherit}, nil
	case "currentColor":
		return value.PaintValue{Kind: value.PaintCurrentColor}, nil
	}

	if strings.HasPrefix(raw, "url(") {
		rest := raw[len("url("):]
		end := strings.IndexByte(rest, ')')
		if end < 0 {
			return nil, &invalidFuncIRIError{raw}
		}
		id := strings.Trim(strings.TrimSpace(rest[:end]), `'"`)
		id = strings.TrimPrefix(id, "#")

		p := value.PaintValue{Kind: value.PaintFuncIRI, Link: pendingLinkRef(id)}
		tail := strings.TrimSpace(rest[end+1:])
		if tail != "" {
			p.HasFallback = true
			switch tail {
			case "none":
				p.Fallback = value.PaintFallback{Kind: value.FallbackNone}
			case "currentColor":
				p.Fallback = value.PaintFallback{Kind: value.FallbackCurrentColor}
			default:
				c, err := value.ParseColor(tail)
				if err != nil {
					return nil, err
				}
				p.Fallback = value.PaintFallback{Kind: value.FallbackColor, Color: c}
			}
		}
		return p, nil
	}

	c, err := value.ParseColor(raw)
	if err != nil {
		return nil, err
	}
	return value.PaintValue{Kind: value.PaintColor, Color: c}, nil
}

// unresolvedRef is a placeholder value.NodeRef carrying only the raw id
// text, used between typeAttributeValue (which can't yet look ids up -
// the id registry isn't fully populated mid-tree-build) and resolveLinks
// (which replaces it with the real *svgdom.Node or drops it).
type unresolvedRef string

func (u unresolvedRef) RefID() string { return string(u) }

func pendingLinkRef(id string) value.NodeRef {
	if id == "" {
		return nil
	}
	return unresolvedRef(id)
}
