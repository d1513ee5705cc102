package parser

import (
	"strings"

	svgdom "github.com/RazrFalcon/svgdom"
	"github.com/RazrFalcon/svgdom/ident"
)

// normalizeWhitespace applies xml:space semantics to every text node:
// "preserve" keeps text verbatim, "default" (the implicit value) collapses
// runs of whitespace to a single space and trims leading/trailing
// whitespace against element boundaries. spec.md §9's decision: nested
// xml:space follows Chrome, not the strict XML recommendation - the
// innermost element's xml:space wins outright, rather than each level only
// being able to narrow "preserve" back to "default".
func normalizeWhitespace(doc *svgdom.Document) {
	walkSpace(doc.Root, false)
}

func walkSpace(n *svgdom.Node, preserve bool) {
	if n.IsElement() {
		if v, ok := n.Attrs.GetByID(ident.AttributeXmlSpace); ok {
			preserve = v.String() == "preserve"
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Kind == svgdom.KindText && !preserve {
			c.Data = collapseWhitespace(c.Data)
			if c.PrevSibling == nil {
				c.Data = strings.TrimLeft(c.Data, " ")
			}
			if c.NextSibling == nil {
				c.Data = strings.TrimRight(c.Data, " ")
			}
		}
		walkSpace(c, preserve)
	}
}

func collapseWhitespace(s string) string {
	var b strings.Builder
	prevSpace := false
	for _, r := range s {
		if isXMLSpace(r) {
			if !prevSpace {
				b.WriteByte(' ')
			}
			prevSpace = true
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

func isXMLSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	default:
		return false
	}
}
