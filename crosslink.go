package svgdom

import (
	"github.com/RazrFalcon/svgdom/ident"
	"github.com/RazrFalcon/svgdom/value"
)

// linkRef identifies one outgoing link: a (source node, attribute) pair
// that currently points at some target. spec.md §4.C: "one attribute may
// contain at most one link target in practice, [so] a multiset simplifies
// to a set keyed by (source_node, attribute_id)".
type linkRef struct {
	Source *Node
	Attr   ident.AttributeID
}

// linkTarget extracts the NodeRef a value carries, if any. Only Link,
// FuncLink, and Paint (when its Kind is PaintFuncIRI) carry links.
func linkTarget(v value.Value) value.NodeRef {
	switch t := v.(type) {
	case value.LinkValue:
		return t.Target
	case value.FuncLinkValue:
		return t.Target
	case value.PaintValue:
		if t.Kind == value.PaintFuncIRI {
			return t.Link
		}
	}
	return nil
}

// linkAttribute registers the link val carries (if any) from source into
// the document's reverse index.
func (d *Document) linkAttribute(source *Node, attr ident.AttributeID, val value.Value) {
	target := linkTarget(val)
	if target == nil {
		return
	}
	tn, ok := target.(*Node)
	if !ok {
		return
	}
	if d.referrers[tn] == nil {
		d.referrers[tn] = make(map[linkRef]bool)
	}
	d.referrers[tn][linkRef{Source: source, Attr: attr}] = true
}

// unlinkAttribute releases the link val carries (if any) from source.
func (d *Document) unlinkAttribute(source *Node, attr ident.AttributeID, val value.Value) {
	target := linkTarget(val)
	if target == nil {
		return
	}
	tn, ok := target.(*Node)
	if !ok {
		return
	}
	if set, ok := d.referrers[tn]; ok {
		delete(set, linkRef{Source: source, Attr: attr})
		if len(set) == 0 {
			delete(d.referrers, tn)
		}
	}
}

// Referrers returns the set of (source node, attribute) pairs whose
// current value links to n - spec.md §4.C's reverse cross-link index.
// The returned slice is a snapshot; mutating the tree afterward does not
// retroactively change it.
func (d *Document) Referrers(n *Node) []linkRef {
	set := d.referrers[n]
	out := make([]linkRef, 0, len(set))
	for ref := range set {
		out = append(out, ref)
	}
	return out
}

// breakIncomingLinks applies spec.md §4.C's broken-link policy for every
// node that currently links to n, in preparation for n's removal:
//   - fill/stroke Paint::FuncIRI -> its fallback, or Paint::None if none.
//   - every other link-valued attribute -> removed outright.
func (d *Document) breakIncomingLinks(n *Node) {
	for ref := range d.referrers[n] {
		attrs := &ref.Source.Attrs
		var qname QName
		var cur value.Value
		for _, a := range attrs.All() {
			if a.Name.ID == ref.Attr && linkTarget(a.Value) == value.NodeRef(n) {
				qname, cur = a.Name, a.Value
				break
			}
		}
		if cur == nil {
			continue
		}
		if p, ok := cur.(value.PaintValue); ok && p.Kind == value.PaintFuncIRI {
			replacement := fallbackToPaint(p)
			attrs.Set(qname, replacement)
			continue
		}
		attrs.Remove(qname)
	}
	delete(d.referrers, n)
}

func fallbackToPaint(p value.PaintValue) value.PaintValue {
	if !p.HasFallback {
		return value.PaintValue{Kind: value.PaintNone}
	}
	switch p.Fallback.Kind {
	case value.FallbackColor:
		return value.PaintValue{Kind: value.PaintColor, Color: p.Fallback.Color}
	case value.FallbackCurrentColor:
		return value.PaintValue{Kind: value.PaintCurrentColor}
	default:
		return value.PaintValue{Kind: value.PaintNone}
	}
}
