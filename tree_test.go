package svgdom

import (
	"testing"

	"github.com/RazrFalcon/svgdom/ident"
	"github.com/RazrFalcon/svgdom/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAttachedElement(doc *Document, tag string) *Node {
	n := NewElement(tag)
	AppendChild(doc.Root, n)
	return n
}

func TestAppendChildOrdersSiblings(t *testing.T) {
	doc := NewDocument()
	a := newAttachedElement(doc, "a")
	b := newAttachedElement(doc, "b")
	c := newAttachedElement(doc, "c")

	assert.Equal(t, []*Node{a, b, c}, doc.Root.Children())
	assert.Equal(t, doc.Root, a.Parent)
	assert.Nil(t, a.PrevSibling)
	assert.Equal(t, b, a.NextSibling)
	assert.Equal(t, a, b.PrevSibling)
	assert.Equal(t, c, doc.Root.LastChild)
}

func TestPrependChild(t *testing.T) {
	doc := NewDocument()
	a := newAttachedElement(doc, "a")
	b := NewElement("b")
	PrependChild(doc.Root, b)
	assert.Equal(t, []*Node{b, a}, doc.Root.Children())
}

func TestInsertBeforeAndAfter(t *testing.T) {
	doc := NewDocument()
	a := newAttachedElement(doc, "a")
	c := newAttachedElement(doc, "c")

	b := NewElement("b")
	InsertBefore(c, b)
	assert.Equal(t, []*Node{a, b, c}, doc.Root.Children())

	d := NewElement("d")
	InsertAfter(c, d)
	assert.Equal(t, []*Node{a, b, c, d}, doc.Root.Children())
}

func TestInsertBeforeOnDetachedSibling(t *testing.T) {
	sibling := NewElement("sibling")
	node := NewElement("node")
	assert.NotPanics(t, func() {
		InsertBefore(sibling, node)
	})
	assert.Equal(t, sibling, node.NextSibling)
	assert.Nil(t, node.Parent)
}

func TestDetachUnlinksSiblingsAndParent(t *testing.T) {
	doc := NewDocument()
	a := newAttachedElement(doc, "a")
	b := newAttachedElement(doc, "b")
	c := newAttachedElement(doc, "c")

	b.Detach()
	assert.Equal(t, []*Node{a, c}, doc.Root.Children())
	assert.Nil(t, b.Parent)
	assert.Equal(t, doc, b.Document())
}

func TestDetachPreservesOutgoingAndIncomingLinks(t *testing.T) {
	doc := NewDocument()
	a := newAttachedElement(doc, "a")
	a.Attrs.Set(QName{ID: ident.AttributeId, Local: "id"}, value.StringValue("a-id"))
	b := newAttachedElement(doc, "b")
	b.Attrs.Set(QName{Prefix: "xlink", ID: ident.AttributeHref, Local: "href"}, value.LinkValue{Target: a, Raw: "a-id"})

	a.Detach()

	got, ok := doc.NodeByID("a-id")
	require.True(t, ok)
	assert.Equal(t, a, got)

	refs := doc.Referrers(a)
	require.Len(t, refs, 1)
	assert.Equal(t, b, refs[0].Source)

	hrefVal, ok := b.Attrs.Get(QName{Prefix: "xlink", ID: ident.AttributeHref, Local: "href"})
	require.True(t, ok)
	assert.Equal(t, a, hrefVal.(value.LinkValue).Target)
}

func TestDescendantsAndAncestors(t *testing.T) {
	doc := NewDocument()
	g := newAttachedElement(doc, "g")
	rect := NewElement("rect")
	AppendChild(g, rect)
	circle := NewElement("circle")
	AppendChild(g, circle)

	assert.Equal(t, []*Node{rect, circle}, g.Descendants())
	assert.Equal(t, []*Node{g, doc.Root}, rect.Ancestors())
}

func TestAdoptRegistersIDAndLinks(t *testing.T) {
	doc := NewDocument()
	target := NewElement("rect")
	target.Attrs.Set(QName{ID: ident.AttributeId, Local: "id"}, value.StringValue("target"))
	AppendChild(doc.Root, target)

	use := NewElement("use")
	use.Attrs.Set(QName{Prefix: "xlink", ID: ident.AttributeHref, Local: "href"}, value.LinkValue{Target: target, Raw: "target"})
	AppendChild(doc.Root, use)

	got, ok := doc.NodeByID("target")
	require.True(t, ok)
	assert.Equal(t, target, got)

	refs := doc.Referrers(target)
	require.Len(t, refs, 1)
	assert.Equal(t, use, refs[0].Source)
	assert.Equal(t, ident.AttributeHref, refs[0].Attr)
}

func TestRemoveBreaksIncomingPaintLink(t *testing.T) {
	doc := NewDocument()
	grad := NewElement("linearGradient")
	grad.Attrs.Set(QName{ID: ident.AttributeId, Local: "id"}, value.StringValue("g1"))
	AppendChild(doc.Root, grad)

	rect := newAttachedElement(doc, "rect")
	rect.Attrs.Set(QName{ID: ident.AttributeFill, Local: "fill"}, value.PaintValue{
		Kind:        value.PaintFuncIRI,
		Link:        grad,
		HasFallback: true,
		Fallback:    value.PaintFallback{Kind: value.FallbackColor, Color: value.Color{R: 255}},
	})

	grad.Remove()

	_, ok := doc.NodeByID("g1")
	assert.False(t, ok)

	fillVal, ok := rect.Attrs.GetByID(ident.AttributeFill)
	require.True(t, ok)
	p, ok := fillVal.(value.PaintValue)
	require.True(t, ok)
	assert.Equal(t, value.PaintColor, p.Kind)
	assert.Equal(t, value.Color{R: 255}, p.Color)
}

func TestRemoveDropsIncomingNonPaintLink(t *testing.T) {
	doc := NewDocument()
	target := newAttachedElement(doc, "rect")
	target.Attrs.Set(QName{ID: ident.AttributeId, Local: "id"}, value.StringValue("target"))

	use := newAttachedElement(doc, "use")
	use.Attrs.Set(QName{Prefix: "xlink", ID: ident.AttributeHref, Local: "href"}, value.LinkValue{Target: target, Raw: "target"})

	target.Remove()

	assert.False(t, use.Attrs.Contains(QName{Prefix: "xlink", ID: ident.AttributeHref, Local: "href"}))
}

func TestDeepCopyRewritesInternalLinks(t *testing.T) {
	doc := NewDocument()
	g := newAttachedElement(doc, "g")
	grad := NewElement("linearGradient")
	grad.Attrs.Set(QName{ID: ident.AttributeId, Local: "id"}, value.StringValue("g1"))
	AppendChild(g, grad)
	rect := NewElement("rect")
	rect.Attrs.Set(QName{ID: ident.AttributeFill, Local: "fill"}, value.PaintValue{Kind: value.PaintFuncIRI, Link: grad})
	AppendChild(g, rect)

	cp := g.DeepCopy()
	cpGrad := cp.Children()[0]
	cpRect := cp.Children()[1]

	fillVal, ok := cpRect.Attrs.GetByID(ident.AttributeFill)
	require.True(t, ok)
	p := fillVal.(value.PaintValue)
	assert.Equal(t, cpGrad, p.Link)
	assert.NotEqual(t, grad, p.Link)
}

func TestDeepCopyLeavesExternalLinksAlone(t *testing.T) {
	doc := NewDocument()
	grad := NewElement("linearGradient")
	grad.Attrs.Set(QName{ID: ident.AttributeId, Local: "id"}, value.StringValue("g1"))
	AppendChild(doc.Root, grad)

	g := newAttachedElement(doc, "g")
	rect := NewElement("rect")
	rect.Attrs.Set(QName{ID: ident.AttributeFill, Local: "fill"}, value.PaintValue{Kind: value.PaintFuncIRI, Link: grad})
	AppendChild(g, rect)

	cp := g.DeepCopy()
	cpRect := cp.Children()[0]
	fillVal, _ := cpRect.Attrs.GetByID(ident.AttributeFill)
	p := fillVal.(value.PaintValue)
	assert.Equal(t, grad, p.Link)
}

func TestShallowCopyDoesNotIncludeChildren(t *testing.T) {
	doc := NewDocument()
	g := newAttachedElement(doc, "g")
	AppendChild(g, NewElement("rect"))

	cp := g.ShallowCopy()
	assert.Nil(t, cp.FirstChild)
	assert.Equal(t, "g", cp.TagName)
}
