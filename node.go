// Package svgdom implements a cross-linked, mutable SVG 1.1 DOM: parsing
// SVG source text into a live tree, programmatic mutation with automatic
// link-index maintenance, and deterministic serialization back to SVG
// text.
//
// The tree is pointer-linked (parent/first-child/last-child/prev-sibling/
// next-sibling on *Node), not arena-indexed: Go's garbage collector already
// eliminates the dangling/cyclic-reference problem an arena exists to
// solve, so NodeRef handles are simply *Node and are never stale as long
// as the process holds a reference to them. A detached node is still a
// valid, usable *Node; only its tree membership is gone.
package svgdom

import "github.com/RazrFalcon/svgdom/ident"

// NodeKind discriminates the five node shapes spec.md §3 describes.
type NodeKind int

const (
	// KindRoot is the document's single top-level container; it has no
	// parent and no siblings.
	KindRoot NodeKind = iota
	KindElement
	KindText
	KindComment
	KindDeclaration
)

func (k NodeKind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindElement:
		return "element"
	case KindText:
		return "text"
	case KindComment:
		return "comment"
	case KindDeclaration:
		return "declaration"
	default:
		return "unknown"
	}
}

// Node is the single tree entity. Which fields are meaningful depends on
// Kind: Element nodes carry TagName/ElementID/Attrs/children; Text and
// Comment nodes carry Data; Declaration carries Attrs (the <?xml ...?>
// prolog's pseudo-attributes); Root carries only children.
type Node struct {
	Kind NodeKind
	doc  *Document

	// TagName/ElementID are valid when Kind == KindElement. ElementID is
	// ident.ElementUnknown when TagName names a foreign/opaque element;
	// TagName always holds the literal name.
	TagName   string
	ElementID ident.ElementID

	// Attrs is valid when Kind is KindElement or KindDeclaration.
	Attrs AttrSet

	// Data holds text content (KindText) or comment content (KindComment),
	// already unescaped; the writer re-escapes on output.
	Data string

	Parent      *Node
	FirstChild  *Node
	LastChild   *Node
	PrevSibling *Node
	NextSibling *Node
}

// RefID satisfies value.NodeRef: it returns the node's "id" attribute, the
// identity that a Link/FuncLink/Paint::FuncIRI target is rendered as in
// "url(#id)"/"#id" form. Nodes without an id attribute return "".
func (n *Node) RefID() string {
	if n == nil {
		return ""
	}
	if v, ok := n.Attrs.GetByID(ident.AttributeId); ok {
		return v.String()
	}
	return ""
}

// Document returns the document n belongs to, or nil for a freestanding
// node created directly with NewElement/NewText/NewComment before being
// attached anywhere.
func (n *Node) Document() *Document { return n.doc }

// NewElement constructs a freestanding Element node for tag. Known SVG
// element names resolve to their ElementID; others are kept opaque.
func NewElement(tag string) *Node {
	id, _ := ident.ParseElementID(tag)
	n := &Node{Kind: KindElement, TagName: tag, ElementID: id}
	n.Attrs = newAttrSet(n)
	return n
}

// NewText constructs a freestanding Text node.
func NewText(data string) *Node { return &Node{Kind: KindText, Data: data} }

// NewComment constructs a freestanding Comment node.
func NewComment(data string) *Node { return &Node{Kind: KindComment, Data: data} }

// NewDeclaration constructs a freestanding Declaration node (an <?xml ...?>
// processing-instruction-shaped prolog entry) for target.
func NewDeclaration(target string) *Node {
	n := &Node{Kind: KindDeclaration, TagName: target}
	n.Attrs = newAttrSet(n)
	return n
}

// IsElement reports whether n is an Element node.
func (n *Node) IsElement() bool { return n.Kind == KindElement }
