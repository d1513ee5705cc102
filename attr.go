package svgdom

import (
	"github.com/RazrFalcon/svgdom/ident"
	"github.com/RazrFalcon/svgdom/value"
)

// QName is an attribute's qualified name: an optional namespace prefix
// (spec.md §4.D: "only xml and xlink are meaningful") plus either a known
// AttributeID or an opaque local name.
type QName struct {
	Prefix string // "", "xml", or "xlink"
	ID     ident.AttributeID
	Local  string // canonical local name, always populated
}

// key is the map key AttrSet uses for key-uniqueness: prefix and local
// name together, since "href" and "xlink:href" are distinct attributes.
func (q QName) key() string {
	if q.Prefix == "" {
		return q.Local
	}
	return q.Prefix + ":" + q.Local
}

// NewQName builds a QName from a prefix and local name, resolving the
// known AttributeID when one exists (joined form: "xlink:href", not "href"
// with prefix "xlink", since that's how ident's catalog spells it).
func NewQName(prefix, local string) QName {
	joined := local
	if prefix != "" {
		joined = prefix + ":" + local
	}
	id, _ := ident.ParseAttributeID(joined)
	return QName{Prefix: prefix, ID: id, Local: local}
}

// Attribute is one (name, typed value) pair in an element's attribute set.
type Attribute struct {
	Name  QName
	Value value.Value
}

// AttrSet is an ordered, key-unique collection of Attributes. Order is
// insertion order; lookup is O(1) by key.
type AttrSet struct {
	order []Attribute
	index map[string]int // key() -> position in order

	owner *Node // element this set belongs to, for link-index bookkeeping
}

func newAttrSet(owner *Node) AttrSet {
	return AttrSet{index: make(map[string]int), owner: owner}
}

// Len returns the number of attributes.
func (s *AttrSet) Len() int { return len(s.order) }

// All returns the attributes in insertion order. The returned slice must
// not be mutated by the caller.
func (s *AttrSet) All() []Attribute { return s.order }

// Get looks up an attribute by its full QName.
func (s *AttrSet) Get(name QName) (value.Value, bool) {
	i, ok := s.index[name.key()]
	if !ok {
		return nil, false
	}
	return s.order[i].Value, true
}

// GetByID looks up an unprefixed attribute by its known AttributeID.
func (s *AttrSet) GetByID(id ident.AttributeID) (value.Value, bool) {
	return s.Get(QName{ID: id, Local: id.String()})
}

// GetByLocal looks up an attribute by its bare local name, ignoring
// namespace prefix - used for opaque/foreign attributes.
func (s *AttrSet) GetByLocal(local string) (value.Value, bool) {
	return s.Get(QName{Local: local})
}

// Contains reports whether name is present.
func (s *AttrSet) Contains(name QName) bool {
	_, ok := s.index[name.key()]
	return ok
}

// Set inserts or replaces the attribute named name with val, maintaining
// the owning document's cross-link index transactionally: the old value's
// link registrations (if any) are released only after val is accepted.
// spec.md §4.D: attempts to set an attribute on a node that cannot carry
// them (Text/Comment/Root, whose Attrs is the zero-value AttrSet{}) fail
// silently rather than panicking on the set's nil index/order. Element
// and Declaration owners both carry a real, non-nil index.
func (s *AttrSet) Set(name QName, val value.Value) {
	if s.owner == nil {
		return
	}
	key := name.key()
	var old value.Value
	if i, ok := s.index[key]; ok {
		old = s.order[i].Value
		s.order[i].Value = val
	} else {
		s.index[key] = len(s.order)
		s.order = append(s.order, Attribute{Name: name, Value: val})
	}

	if s.owner == nil || s.owner.doc == nil {
		return
	}
	if name.ID == ident.AttributeId {
		if old != nil {
			s.owner.doc.unregisterID(s.owner, old.String())
		}
		s.owner.doc.registerID(s.owner, val.String())
		return
	}
	if old != nil {
		s.owner.doc.unlinkAttribute(s.owner, name.ID, old)
	}
	s.owner.doc.linkAttribute(s.owner, name.ID, val)
}

// Remove deletes the attribute named name, if present, releasing any link
// registrations it held. A no-op on a node that cannot carry attributes
// (see Set).
func (s *AttrSet) Remove(name QName) {
	if s.owner == nil {
		return
	}
	key := name.key()
	i, ok := s.index[key]
	if !ok {
		return
	}
	old := s.order[i].Value

	s.order = append(s.order[:i], s.order[i+1:]...)
	delete(s.index, key)
	for k, pos := range s.index {
		if pos > i {
			s.index[k] = pos - 1
		}
	}

	if s.owner == nil || s.owner.doc == nil || old == nil {
		return
	}
	if name.ID == ident.AttributeId {
		s.owner.doc.unregisterID(s.owner, old.String())
		return
	}
	s.owner.doc.unlinkAttribute(s.owner, name.ID, old)
}
