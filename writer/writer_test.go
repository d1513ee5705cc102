package writer

import (
	"strings"
	"testing"

	svgdom "github.com/RazrFalcon/svgdom"
	"github.com/RazrFalcon/svgdom/ident"
	"github.com/RazrFalcon/svgdom/value"
	"github.com/stretchr/testify/assert"
)

func buildDoc() *svgdom.Document {
	doc := svgdom.NewDocument()
	svg := svgdom.NewElement("svg")
	svgdom.AppendChild(doc.Root, svg)
	return doc
}

func TestWriteSelfClosingElement(t *testing.T) {
	doc := buildDoc()
	svg := doc.Root.FirstChild
	rect := svgdom.NewElement("rect")
	svgdom.AppendChild(svg, rect)

	out := Write(doc, svgdom.DefaultWriteOptions())
	assert.Equal(t, `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink"><rect/></svg>`, out)
}

func TestWriteEmitsNamespaceDeclarationsOnceOnRoot(t *testing.T) {
	doc := buildDoc()
	svg := doc.Root.FirstChild
	g := svgdom.NewElement("g")
	svgdom.AppendChild(svg, g)

	out := Write(doc, svgdom.DefaultWriteOptions())
	assert.Equal(t, `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink"><g/></svg>`, out)
	assert.Equal(t, 1, strings.Count(out, "xmlns="))
}

func TestWriteDoesNotDuplicateExplicitNamespaceDeclaration(t *testing.T) {
	doc := buildDoc()
	svg := doc.Root.FirstChild
	svg.Attrs.Set(svgdom.QName{Local: "xmlns"}, value.StringValue("http://www.w3.org/2000/svg"))

	out := Write(doc, svgdom.DefaultWriteOptions())
	assert.Equal(t, `<svg xmlns:xlink="http://www.w3.org/1999/xlink" xmlns="http://www.w3.org/2000/svg"/>`, out)
}

func TestWriteAttributesDefaultQuoting(t *testing.T) {
	doc := buildDoc()
	svg := doc.Root.FirstChild
	svg.Attrs.Set(svgdom.QName{Local: "id"}, value.StringValue("root"))

	out := Write(doc, svgdom.DefaultWriteOptions())
	assert.Equal(t, `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" id="root"/>`, out)
}

func TestWriteSingleQuote(t *testing.T) {
	doc := buildDoc()
	svg := doc.Root.FirstChild
	svg.Attrs.Set(svgdom.QName{Local: "id"}, value.StringValue("root"))

	opts := svgdom.DefaultWriteOptions()
	opts.UseSingleQuote = true
	out := Write(doc, opts)
	assert.Equal(t, `<svg xmlns='http://www.w3.org/2000/svg' xmlns:xlink='http://www.w3.org/1999/xlink' id='root'/>`, out)
}

func TestWriteSkipsDefaultValuedAttributesUnlessRequested(t *testing.T) {
	doc := buildDoc()
	svg := doc.Root.FirstChild
	svg.Attrs.Set(svgdom.QName{Local: "id"}, value.StringValue(""))

	out := Write(doc, svgdom.DefaultWriteOptions())
	assert.Equal(t, `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink"/>`, out)

	opts := svgdom.DefaultWriteOptions()
	opts.WriteHiddenAttributes = true
	out = Write(doc, opts)
	assert.Equal(t, `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" id=""/>`, out)
}

func TestWriteTextEscaping(t *testing.T) {
	doc := buildDoc()
	svg := doc.Root.FirstChild
	svgdom.AppendChild(svg, svgdom.NewText("a < b & c"))

	out := Write(doc, svgdom.DefaultWriteOptions())
	assert.Equal(t, `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink">a &lt; b &amp; c</svg>`, out)
}

func TestWriteIndentation(t *testing.T) {
	doc := buildDoc()
	svg := doc.Root.FirstChild
	rect := svgdom.NewElement("rect")
	svgdom.AppendChild(svg, rect)

	opts := svgdom.DefaultWriteOptions()
	opts.Indent = svgdom.Indent{Kind: svgdom.IndentSpaces, Amount: 2}
	out := Write(doc, opts)
	assert.Equal(t, "<svg xmlns=\"http://www.w3.org/2000/svg\" xmlns:xlink=\"http://www.w3.org/1999/xlink\">\n  <rect/></svg>", out)
}

func TestOrderAttrsAlphabetical(t *testing.T) {
	doc := buildDoc()
	svg := doc.Root.FirstChild
	svg.Attrs.Set(svgdom.QName{Local: "z"}, value.StringValue("1"))
	svg.Attrs.Set(svgdom.QName{Local: "a"}, value.StringValue("2"))

	opts := svgdom.DefaultWriteOptions()
	opts.AttributesOrder = svgdom.OrderAlphabetical
	out := Write(doc, opts)
	assert.Equal(t, `<svg a="2" xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" z="1"/>`, out)
}

func TestOrderAttrsSpecificationPutsUnknownLast(t *testing.T) {
	doc := buildDoc()
	svg := doc.Root.FirstChild
	svg.Attrs.Set(svgdom.QName{Local: "opaque-thing"}, value.StringValue("x"))
	svg.Attrs.Set(svgdom.QName{ID: ident.AttributeId, Local: "id"}, value.StringValue("root"))

	opts := svgdom.DefaultWriteOptions()
	opts.AttributesOrder = svgdom.OrderSpecification
	out := Write(doc, opts)
	assert.Equal(t, `<svg id="root" xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" opaque-thing="x"/>`, out)
}

func TestFormatValueColorTrimHex(t *testing.T) {
	opts := svgdom.DefaultWriteOptions()
	opts.TrimHexColors = true
	got := formatValue(ident.AttributeStopColor, value.Color{R: 0xff, G: 0, B: 0}, opts)
	assert.Equal(t, "#f00", got)
}

func TestFormatValueLengthUnit(t *testing.T) {
	l, err := value.ParseLength("12.5px")
	assert.NoError(t, err)
	got := formatValue(ident.AttributeWidth, l, svgdom.DefaultWriteOptions())
	assert.Equal(t, "12.5px", got)
}
