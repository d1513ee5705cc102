package svgdom

import (
	"github.com/google/uuid"
)

// Document owns a tree's root node, its duplicate-id registry, its
// DOCTYPE entity table, and the reverse cross-link index every attribute
// mutation maintains (spec.md §4.C).
type Document struct {
	Root *Node

	// generation is a per-process-lifetime identity stamp, not a
	// version counter: it lets external caches key on "is this the same
	// Document instance" without pinning *Document itself.
	generation uuid.UUID

	// byID holds the first element claiming each "id" value -
	// spec.md §9's decision: first-wins, later duplicates keep their
	// attribute but are omitted from lookup/linking and reported as a
	// parser.Warning.
	byID map[string]*Node

	// entities holds the DOCTYPE's <!ENTITY name "value"> declarations,
	// harvested during parse and expanded wherever &name; appears in text.
	entities map[string]string

	referrers map[*Node]map[linkRef]bool
}

// NewDocument creates an empty Document with a single Root node.
func NewDocument() *Document {
	d := &Document{
		generation: uuid.New(),
		byID:       make(map[string]*Node),
		entities:   make(map[string]string),
		referrers:  make(map[*Node]map[linkRef]bool),
	}
	d.Root = &Node{Kind: KindRoot, doc: d}
	return d
}

// Generation returns the document's identity stamp.
func (d *Document) Generation() uuid.UUID { return d.generation }

// NodeByID returns the element that owns id, if one has claimed it under
// the first-wins policy.
func (d *Document) NodeByID(id string) (*Node, bool) {
	n, ok := d.byID[id]
	return n, ok
}

// EntitiesSnapshot returns the document's DOCTYPE-declared entities. The
// returned map must not be mutated by the caller.
func (d *Document) EntitiesSnapshot() map[string]string { return d.entities }

// Entity returns the DOCTYPE-declared replacement text for name, if any.
func (d *Document) Entity(name string) (string, bool) {
	v, ok := d.entities[name]
	return v, ok
}

// DefineEntity records a DOCTYPE <!ENTITY name "value"> declaration.
func (d *Document) DefineEntity(name, val string) { d.entities[name] = val }

// registerID claims id for n under the first-wins policy. It reports
// false when id was already claimed by a different node, so the caller
// can surface a duplicate-id warning without this package depending on
// the parser's warning stream.
func (d *Document) registerID(n *Node, id string) bool {
	if id == "" {
		return true
	}
	if existing, ok := d.byID[id]; ok && existing != n {
		return false
	}
	d.byID[id] = n
	return true
}

// unregisterID releases id's claim, but only if n is still the node
// holding it (a first-wins duplicate never held the claim, so releasing
// it must not evict the real owner).
func (d *Document) unregisterID(n *Node, id string) {
	if id == "" {
		return
	}
	if existing, ok := d.byID[id]; ok && existing == n {
		delete(d.byID, id)
	}
}
