package svgdom

import (
	"testing"

	"github.com/RazrFalcon/svgdom/ident"
	"github.com/RazrFalcon/svgdom/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttrSetSetAndGet(t *testing.T) {
	n := NewElement("rect")
	name := QName{Local: "x"}
	n.Attrs.Set(name, value.StringValue("10"))
	v, ok := n.Attrs.Get(name)
	require.True(t, ok)
	assert.Equal(t, "10", v.String())
	assert.Equal(t, 1, n.Attrs.Len())
}

func TestAttrSetSetReplacesInPlace(t *testing.T) {
	n := NewElement("rect")
	name := QName{Local: "x"}
	n.Attrs.Set(name, value.StringValue("10"))
	n.Attrs.Set(name, value.StringValue("20"))
	assert.Equal(t, 1, n.Attrs.Len())
	v, _ := n.Attrs.Get(name)
	assert.Equal(t, "20", v.String())
}

func TestAttrSetPrefixDistinguishesKeys(t *testing.T) {
	n := NewElement("use")
	plain := QName{ID: ident.AttributeHref, Local: "href"}
	xlink := QName{Prefix: "xlink", ID: ident.AttributeHref, Local: "href"}
	n.Attrs.Set(plain, value.StringValue("a"))
	n.Attrs.Set(xlink, value.StringValue("b"))
	assert.Equal(t, 2, n.Attrs.Len())
}

func TestAttrSetRemove(t *testing.T) {
	n := NewElement("rect")
	a := QName{Local: "x"}
	b := QName{Local: "y"}
	n.Attrs.Set(a, value.StringValue("1"))
	n.Attrs.Set(b, value.StringValue("2"))

	n.Attrs.Remove(a)
	assert.False(t, n.Attrs.Contains(a))
	assert.True(t, n.Attrs.Contains(b))
	assert.Equal(t, 1, n.Attrs.Len())
	v, _ := n.Attrs.Get(b)
	assert.Equal(t, "2", v.String())
}

func TestAttrSetRemoveMissingIsNoop(t *testing.T) {
	n := NewElement("rect")
	assert.NotPanics(t, func() {
		n.Attrs.Remove(QName{Local: "missing"})
	})
}

func TestAttrSetOrderPreserved(t *testing.T) {
	n := NewElement("rect")
	n.Attrs.Set(QName{Local: "z"}, value.StringValue("1"))
	n.Attrs.Set(QName{Local: "a"}, value.StringValue("2"))
	n.Attrs.Set(QName{Local: "m"}, value.StringValue("3"))

	var order []string
	for _, a := range n.Attrs.All() {
		order = append(order, a.Name.Local)
	}
	assert.Equal(t, []string{"z", "a", "m"}, order)
}

func TestAttrSetSetOnDetachedNodeDoesNotPanic(t *testing.T) {
	n := NewElement("rect")
	assert.NotPanics(t, func() {
		n.Attrs.Set(QName{ID: ident.AttributeId, Local: "id"}, value.StringValue("freestanding"))
	})
}

func TestAttrSetSetOnNonElementNodeIsNoop(t *testing.T) {
	text := NewText("hello")
	assert.NotPanics(t, func() {
		text.Attrs.Set(QName{Local: "x"}, value.StringValue("1"))
	})
	assert.Equal(t, 0, text.Attrs.Len())

	comment := NewComment("note")
	assert.NotPanics(t, func() {
		comment.Attrs.Remove(QName{Local: "x"})
	})

	doc := NewDocument()
	assert.NotPanics(t, func() {
		doc.Root.Attrs.Set(QName{Local: "x"}, value.StringValue("1"))
	})
	assert.Equal(t, 0, doc.Root.Attrs.Len())
}

func TestAttrSetSetOnDeclarationWorks(t *testing.T) {
	d := NewDeclaration("xml")
	d.Attrs.Set(QName{Local: "version"}, value.StringValue("1.0"))
	v, ok := d.Attrs.Get(QName{Local: "version"})
	require.True(t, ok)
	assert.Equal(t, "1.0", v.String())
}

func TestNewQNameResolvesKnownAttribute(t *testing.T) {
	q := NewQName("", "fill")
	assert.Equal(t, ident.AttributeFill, q.ID)

	qx := NewQName("xlink", "href")
	assert.Equal(t, ident.AttributeXlinkHref, qx.ID)
}
