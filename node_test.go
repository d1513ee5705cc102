package svgdom

import (
	"testing"

	"github.com/RazrFalcon/svgdom/ident"
	"github.com/RazrFalcon/svgdom/value"
	"github.com/stretchr/testify/assert"
)

func TestNewElementAttrsUsable(t *testing.T) {
	n := NewElement("rect")
	assert.NotPanics(t, func() {
		n.Attrs.Set(QName{Local: "x"}, value.StringValue("1"))
	})
	v, ok := n.Attrs.GetByLocal("x")
	assert.True(t, ok)
	assert.Equal(t, "1", v.String())
}

func TestNodeKindString(t *testing.T) {
	cases := map[NodeKind]string{
		KindRoot:        "root",
		KindElement:     "element",
		KindText:        "text",
		KindComment:     "comment",
		KindDeclaration: "declaration",
	}
	for k, want := range cases {
		assert.Equal(t, want, k.String())
	}
}

func TestRefIDUsesIDAttribute(t *testing.T) {
	n := NewElement("circle")
	assert.Equal(t, "", n.RefID())
	n.Attrs.Set(QName{ID: ident.AttributeId, Local: "id"}, value.StringValue("target"))
	assert.Equal(t, "target", n.RefID())
}

func TestRefIDNilReceiver(t *testing.T) {
	var n *Node
	assert.Equal(t, "", n.RefID())
}

func TestNewTextAndComment(t *testing.T) {
	tx := NewText("hello")
	assert.Equal(t, KindText, tx.Kind)
	assert.Equal(t, "hello", tx.Data)

	c := NewComment("note")
	assert.Equal(t, KindComment, c.Kind)
	assert.False(t, c.IsElement())
}

func TestNewDeclarationAttrsUsable(t *testing.T) {
	d := NewDeclaration("xml")
	assert.NotPanics(t, func() {
		d.Attrs.Set(QName{Local: "version"}, value.StringValue("1.0"))
	})
}
