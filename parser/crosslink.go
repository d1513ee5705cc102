package parser

import (
	svgdom "github.com/RazrFalcon/svgdom"
	"github.com/RazrFalcon/svgdom/ident"
	"github.com/RazrFalcon/svgdom/value"
)

// breakCrosslinkCycles runs spec.md §4.E.5.e's mandatory preprocessor
// stage: an xlink:href (or bare href) chain forms a functional graph, each
// node having out-degree at most one, so a cycle can only be the tail of
// the chain looping back on itself. §8 scenario #5: a -> #b -> #a closes a
// cycle at b, the node encountered last while following the chain from a,
// so b's link-valued href is the one dropped.
//
// Runs once over every element in document order; a global done set keeps
// total work linear even though multiple starting points can walk into the
// same already-resolved chain.
func breakCrosslinkCycles(doc *svgdom.Document) []Warning {
	var warnings []Warning
	done := map[*svgdom.Node]bool{}
	elements := append([]*svgdom.Node{doc.Root}, doc.Root.Descendants()...)

	for _, start := range elements {
		if !start.IsElement() || done[start] {
			continue
		}
		var path []*svgdom.Node
		pos := map[*svgdom.Node]int{}
		cur := start
		for cur != nil && !done[cur] {
			if _, seen := pos[cur]; seen {
				closer := path[len(path)-1]
				name, _, _ := followLink(closer)
				closer.Attrs.Remove(name)
				warnings = append(warnings, Warning{Kind: WarnCrosslinkCycle, Context: closer.RefID()})
				break
			}
			pos[cur] = len(path)
			path = append(path, cur)
			_, next, ok := followLink(cur)
			if !ok {
				break
			}
			cur = next
		}
		for _, n := range path {
			done[n] = true
		}
	}
	return warnings
}

// followLink returns the QName and target of the attribute that carries n's
// outgoing xlink:href/href chain link, if it has one and it has been
// resolved to a live node.
func followLink(n *svgdom.Node) (svgdom.QName, *svgdom.Node, bool) {
	for _, a := range n.Attrs.All() {
		if a.Name.ID != ident.AttributeXlinkHref && a.Name.ID != ident.AttributeHref {
			continue
		}
		lv, ok := a.Value.(value.LinkValue)
		if !ok {
			continue
		}
		target, ok := lv.Target.(*svgdom.Node)
		if !ok {
			continue
		}
		return a.Name, target, true
	}
	return svgdom.QName{}, nil, false
}
