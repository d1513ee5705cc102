package svgdom

import (
	"github.com/RazrFalcon/svgdom/ident"
	"github.com/RazrFalcon/svgdom/value"
)

// AppendChild detaches child if attached elsewhere, then makes it parent's
// last child. child adopts parent's Document, re-registering any "id" it
// carries and any links its attributes hold.
func AppendChild(parent, child *Node) {
	child.Detach()
	child.Parent = parent
	child.PrevSibling = parent.LastChild
	if parent.LastChild != nil {
		parent.LastChild.NextSibling = child
	} else {
		parent.FirstChild = child
	}
	parent.LastChild = child
	adopt(parent.doc, child)
}

// PrependChild makes child parent's first child.
func PrependChild(parent, child *Node) {
	child.Detach()
	child.Parent = parent
	child.NextSibling = parent.FirstChild
	if parent.FirstChild != nil {
		parent.FirstChild.PrevSibling = child
	} else {
		parent.LastChild = child
	}
	parent.FirstChild = child
	adopt(parent.doc, child)
}

// InsertBefore inserts node immediately before sibling, under sibling's
// parent.
func InsertBefore(sibling, node *Node) {
	parent := sibling.Parent
	node.Detach()
	node.Parent = parent
	node.PrevSibling = sibling.PrevSibling
	node.NextSibling = sibling
	if sibling.PrevSibling != nil {
		sibling.PrevSibling.NextSibling = node
	} else if parent != nil {
		parent.FirstChild = node
	}
	sibling.PrevSibling = node
	if parent != nil {
		adopt(parent.doc, node)
	} else {
		adopt(sibling.doc, node)
	}
}

// InsertAfter inserts node immediately after sibling, under sibling's
// parent.
func InsertAfter(sibling, node *Node) {
	parent := sibling.Parent
	node.Detach()
	node.Parent = parent
	node.NextSibling = sibling.NextSibling
	node.PrevSibling = sibling
	if sibling.NextSibling != nil {
		sibling.NextSibling.PrevSibling = node
	} else if parent != nil {
		parent.LastChild = node
	}
	sibling.NextSibling = node
	if parent != nil {
		adopt(parent.doc, node)
	} else {
		adopt(sibling.doc, node)
	}
}

// adopt recurses over node's subtree, setting doc and re-running id/link
// registration for every element carrying either - used when a subtree
// built while detached (doc == nil) is attached to a live Document, moved
// between documents, or moved within the same one. When node already
// belongs to doc (the common reparent-within-a-document case), nothing
// needs to change and the whole subtree is skipped.
func adopt(doc *Document, node *Node) {
	if node.doc == doc {
		return
	}
	deregisterLinks(node)
	node.doc = doc
	registerLinks(node)
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		adopt(doc, c)
	}
}

// registerLinks claims node's "id" and registers every link its
// attributes carry into node.doc's indexes. No-op for non-elements or a
// nil doc.
func registerLinks(node *Node) {
	doc := node.doc
	if doc == nil || !node.IsElement() {
		return
	}
	for _, a := range node.Attrs.All() {
		if a.Name.ID == ident.AttributeId {
			doc.registerID(node, a.Value.String())
			continue
		}
		doc.linkAttribute(node, a.Name.ID, a.Value)
	}
}

// deregisterLinks releases node's "id" claim and every link its
// attributes carry from node.doc's indexes, without touching node.doc
// itself. No-op for non-elements or a node with no doc.
func deregisterLinks(node *Node) {
	doc := node.doc
	if doc == nil || !node.IsElement() {
		return
	}
	for _, a := range node.Attrs.All() {
		if a.Name.ID == ident.AttributeId {
			doc.unregisterID(node, a.Value.String())
			continue
		}
		doc.unlinkAttribute(node, a.Name.ID, a.Value)
	}
}

// Detach removes n from its parent/siblings, leaving n a freestanding
// subtree root. n keeps its Document(), its "id" claim, and every link
// its subtree's attributes carry - spec.md §3 invariant 4: detachment is
// not removal, and a node's outgoing links (along with anything still
// referring into the subtree) must survive a later re-Attach unchanged.
// Only Remove unwinds those registrations and applies the broken-link
// policy.
func (n *Node) Detach() {
	if n.Parent == nil && n.PrevSibling == nil && n.NextSibling == nil {
		return
	}
	if n.PrevSibling != nil {
		n.PrevSibling.NextSibling = n.NextSibling
	} else if n.Parent != nil {
		n.Parent.FirstChild = n.NextSibling
	}
	if n.NextSibling != nil {
		n.NextSibling.PrevSibling = n.PrevSibling
	} else if n.Parent != nil {
		n.Parent.LastChild = n.PrevSibling
	}
	n.Parent, n.PrevSibling, n.NextSibling = nil, nil, nil
}

// releaseSubtree recursively deregisters n and its descendants' own "id"
// claims and outgoing links from n's document, and marks each as
// freestanding (doc == nil). Used by Remove, which deletes permanently;
// Detach never calls this.
func releaseSubtree(n *Node) {
	deregisterLinks(n)
	n.doc = nil
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		releaseSubtree(c)
	}
}

// Remove permanently deletes n from the tree: it is detached, every
// incoming link that targeted n is broken per spec.md §4.C's policy
// (fill/stroke FuncIRI falls back, everything else is removed from the
// referencing attribute), and n's own outgoing links/id claim are
// released.
func (n *Node) Remove() {
	if n.doc != nil {
		for _, c := range n.Descendants() {
			n.doc.breakIncomingLinks(c)
		}
		n.doc.breakIncomingLinks(n)
		releaseSubtree(n)
	}
	n.Detach()
}

// Descendants returns n's descendants in document (pre-)order, not
// including n itself.
func (n *Node) Descendants() []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(cur *Node) {
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			out = append(out, c)
			walk(c)
		}
	}
	walk(n)
	return out
}

// Children returns n's immediate children.
func (n *Node) Children() []*Node {
	var out []*Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

// Ancestors returns n's ancestors, nearest first, not including n.
func (n *Node) Ancestors() []*Node {
	var out []*Node
	for p := n.Parent; p != nil; p = p.Parent {
		out = append(out, p)
	}
	return out
}

// ShallowCopy duplicates n's own fields (Kind, TagName, Attrs, Data) into
// a new freestanding Node, without children. Link-valued attributes are
// copied verbatim, still pointing at the original targets - the copy is
// not yet attached to any document, so it is not registered as a new
// referrer until AppendChild/PrependChild adopts it.
func (n *Node) ShallowCopy() *Node {
	cp := &Node{Kind: n.Kind, TagName: n.TagName, ElementID: n.ElementID, Data: n.Data}
	cp.Attrs = newAttrSet(cp)
	for _, a := range n.Attrs.All() {
		cp.Attrs.order = append(cp.Attrs.order, Attribute{Name: a.Name, Value: a.Value})
		cp.Attrs.index[a.Name.key()] = len(cp.Attrs.order) - 1
	}
	return cp
}

// DeepCopy duplicates n and its entire subtree. Attribute values that
// link to a node inside the copied subtree are rewritten to point at the
// corresponding copy, preserving internal structure (spec.md §9's
// supplemented "copy subtree" semantics); links pointing outside the
// subtree are left pointing at the original, external node.
func (n *Node) DeepCopy() *Node {
	orig := map[*Node]*Node{}
	var walk func(*Node) *Node
	walk = func(src *Node) *Node {
		cp := src.ShallowCopy()
		orig[src] = cp
		for c := src.FirstChild; c != nil; c = c.NextSibling {
			ccp := walk(c)
			ccp.Parent = cp
			if cp.LastChild != nil {
				cp.LastChild.NextSibling = ccp
				ccp.PrevSibling = cp.LastChild
			} else {
				cp.FirstChild = ccp
			}
			cp.LastChild = ccp
		}
		return cp
	}
	root := walk(n)

	var fix func(*Node)
	fix = func(node *Node) {
		if node.IsElement() {
			for _, a := range node.Attrs.All() {
				rewritten, changed := rewriteLinks(a.Value, orig)
				if changed {
					node.Attrs.order[indexOf(node.Attrs, a.Name)].Value = rewritten
				}
			}
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			fix(c)
		}
	}
	fix(root)
	return root
}

func indexOf(s AttrSet, name QName) int { return s.index[name.key()] }

// rewriteLinks returns v with any NodeRef it carries substituted for the
// corresponding entry in orig (original node -> its copy), if that
// original is present in orig. A link targeting a node outside the
// copied subtree is left unchanged.
func rewriteLinks(v value.Value, orig map[*Node]*Node) (value.Value, bool) {
	switch t := v.(type) {
	case value.LinkValue:
		if n, ok := t.Target.(*Node); ok {
			if cp, ok := orig[n]; ok {
				t.Target = cp
				return t, true
			}
		}
	case value.FuncLinkValue:
		if n, ok := t.Target.(*Node); ok {
			if cp, ok := orig[n]; ok {
				t.Target = cp
				return t, true
			}
		}
	case value.PaintValue:
		if t.Kind == value.PaintFuncIRI {
			if n, ok := t.Link.(*Node); ok {
				if cp, ok := orig[n]; ok {
					t.Link = cp
					return t, true
				}
			}
		}
	}
	return v, false
}
