package svgdom

import (
	"testing"

	"github.com/RazrFalcon/svgdom/ident"
	"github.com/RazrFalcon/svgdom/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterIDFirstWins(t *testing.T) {
	doc := NewDocument()
	first := NewElement("rect")
	second := NewElement("circle")

	assert.True(t, doc.registerID(first, "dup"))
	assert.False(t, doc.registerID(second, "dup"))

	got, ok := doc.NodeByID("dup")
	require.True(t, ok)
	assert.Equal(t, first, got)
}

func TestUnregisterIDOnlyReleasesHolder(t *testing.T) {
	doc := NewDocument()
	first := NewElement("rect")
	second := NewElement("circle")
	doc.registerID(first, "dup")
	doc.registerID(second, "dup") // loses, first still holds it

	doc.unregisterID(second, "dup")
	got, ok := doc.NodeByID("dup")
	require.True(t, ok)
	assert.Equal(t, first, got)

	doc.unregisterID(first, "dup")
	_, ok = doc.NodeByID("dup")
	assert.False(t, ok)
}

func TestEntities(t *testing.T) {
	doc := NewDocument()
	doc.DefineEntity("company", "Acme &amp; Co")
	v, ok := doc.Entity("company")
	require.True(t, ok)
	assert.Equal(t, "Acme &amp; Co", v)

	snap := doc.EntitiesSnapshot()
	assert.Equal(t, "Acme &amp; Co", snap["company"])
}

func TestGenerationIsStableAndUnique(t *testing.T) {
	a := NewDocument()
	b := NewDocument()
	assert.Equal(t, a.Generation(), a.Generation())
	assert.NotEqual(t, a.Generation(), b.Generation())
}

func TestSetIDAttributeGoesThroughRegistry(t *testing.T) {
	doc := NewDocument()
	n := NewElement("rect")
	AppendChild(doc.Root, n)

	n.Attrs.Set(QName{ID: ident.AttributeId, Local: "id"}, value.StringValue("r1"))
	got, ok := doc.NodeByID("r1")
	require.True(t, ok)
	assert.Equal(t, n, got)

	n.Attrs.Remove(QName{ID: ident.AttributeId, Local: "id"})
	_, ok = doc.NodeByID("r1")
	assert.False(t, ok)
}
