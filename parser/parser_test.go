package parser

import (
	"strings"
	"testing"

	svgdom "github.com/RazrFalcon/svgdom"
	"github.com/RazrFalcon/svgdom/ident"
	"github.com/RazrFalcon/svgdom/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBuildsTreeAndTypesAttributes(t *testing.T) {
	src := `<svg width="100px" height="50"><rect x="1" y="2" fill="#ff0000"/></svg>`
	result, err := Parse(strings.NewReader(src), svgdom.DefaultParseOptions())
	require.NoError(t, err)

	svg := result.Document.Root.FirstChild
	require.NotNil(t, svg)
	assert.Equal(t, "svg", svg.TagName)

	rect := svg.FirstChild
	require.NotNil(t, rect)
	xv, ok := rect.Attrs.GetByID(ident.AttributeX)
	require.True(t, ok)
	assert.Equal(t, value.Length{Num: 1}, xv)

	fv, ok := rect.Attrs.GetByID(ident.AttributeFill)
	require.True(t, ok)
	p := fv.(value.PaintValue)
	assert.Equal(t, value.PaintColor, p.Kind)
	assert.Equal(t, uint8(0xff), p.Color.R)
}

func TestParseResolvesForwardReference(t *testing.T) {
	src := `<svg><rect fill="url(#grad1)"/><linearGradient id="grad1"/></svg>`
	result, err := Parse(strings.NewReader(src), svgdom.DefaultParseOptions())
	require.NoError(t, err)

	svg := result.Document.Root.FirstChild
	rect := svg.FirstChild
	grad := rect.NextSibling

	fv, ok := rect.Attrs.GetByID(ident.AttributeFill)
	require.True(t, ok)
	p := fv.(value.PaintValue)
	assert.Equal(t, grad, p.Link)

	refs := result.Document.Referrers(grad)
	require.Len(t, refs, 1)
	assert.Equal(t, rect, refs[0].Source)
}

func TestParseBrokenFuncIRIWithFallback(t *testing.T) {
	src := `<svg><rect fill="url(#missing) blue"/></svg>`
	result, err := Parse(strings.NewReader(src), svgdom.DefaultParseOptions())
	require.NoError(t, err)

	rect := result.Document.Root.FirstChild.FirstChild
	fv, _ := rect.Attrs.GetByID(ident.AttributeFill)
	p := fv.(value.PaintValue)
	assert.Equal(t, value.PaintColor, p.Kind)
	assert.Equal(t, uint8(0), p.Color.R)
	assert.Equal(t, uint8(255), p.Color.B)
}

func TestParseBrokenFuncIRINoFallbackSkipsByDefault(t *testing.T) {
	src := `<svg><rect fill="url(#missing)"/></svg>`
	result, err := Parse(strings.NewReader(src), svgdom.DefaultParseOptions())
	require.NoError(t, err)

	found := false
	for _, w := range result.Warnings {
		if w.Kind == WarnBrokenFuncIRI {
			found = true
		}
	}
	assert.True(t, found)
}

func TestParseBrokenFuncIRINoFallbackErrorsWhenStrict(t *testing.T) {
	src := `<svg><rect fill="url(#missing)"/></svg>`
	opts := svgdom.DefaultParseOptions()
	opts.SkipPaintFallback = false
	_, err := Parse(strings.NewReader(src), opts)
	require.Error(t, err)
	var svgErr *svgdom.Error
	require.ErrorAs(t, err, &svgErr)
	assert.Equal(t, svgdom.ErrBrokenFuncIRI, svgErr.Kind)
}

func TestParseDuplicateIDWarns(t *testing.T) {
	src := `<svg><rect id="r1"/><circle id="r1"/></svg>`
	result, err := Parse(strings.NewReader(src), svgdom.DefaultParseOptions())
	require.NoError(t, err)

	found := false
	for _, w := range result.Warnings {
		if w.Kind == WarnDuplicateID && w.Context == "r1" {
			found = true
		}
	}
	assert.True(t, found)

	owner, ok := result.Document.NodeByID("r1")
	require.True(t, ok)
	assert.Equal(t, "rect", owner.TagName)
}

func TestParseCustomEntityExpansion(t *testing.T) {
	src := "<!DOCTYPE svg [<!ENTITY co \"Acme\">]>\n<svg><text>&co; Inc</text></svg>"
	result, err := Parse(strings.NewReader(src), svgdom.DefaultParseOptions())
	require.NoError(t, err)

	svg := result.Document.Root.FirstChild
	textEl := svg.FirstChild
	require.Equal(t, "text", textEl.TagName)
	textNode := textEl.FirstChild
	require.NotNil(t, textNode)
	assert.Equal(t, "Acme Inc", textNode.Data)
}

func TestParseElementValuedEntityExpandsAsChild(t *testing.T) {
	src := "<!DOCTYPE svg [<!ENTITY r \"<rect x='1' fill='red'/>\">]>\n<svg>before&r;after</svg>"
	result, err := Parse(strings.NewReader(src), svgdom.DefaultParseOptions())
	require.NoError(t, err)

	svg := result.Document.Root.FirstChild
	children := svg.Children()
	require.Len(t, children, 3)

	before := children[0]
	assert.Equal(t, svgdom.KindText, before.Kind)
	assert.Equal(t, "before", before.Data)

	rect := children[1]
	assert.Equal(t, "rect", rect.TagName)
	xv, ok := rect.Attrs.GetByID(ident.AttributeX)
	require.True(t, ok)
	assert.Equal(t, value.Length{Num: 1}, xv)
	fv, ok := rect.Attrs.GetByID(ident.AttributeFill)
	require.True(t, ok)
	assert.Equal(t, value.PaintColor, fv.(value.PaintValue).Kind)

	after := children[2]
	assert.Equal(t, svgdom.KindText, after.Kind)
	assert.Equal(t, "after", after.Data)
}

func TestParseUnknownEntityInTextWarnsByDefault(t *testing.T) {
	src := "<svg><text>&bogus;</text></svg>"
	result, err := Parse(strings.NewReader(src), svgdom.DefaultParseOptions())
	require.NoError(t, err)

	found := false
	for _, w := range result.Warnings {
		if w.Kind == WarnUnsupportedEntity && w.Context == "bogus" {
			found = true
		}
	}
	assert.True(t, found)

	textEl := result.Document.Root.FirstChild.FirstChild
	assert.Equal(t, "&bogus;", textEl.FirstChild.Data)
}

func TestParseUnknownEntityErrorsWhenStrict(t *testing.T) {
	src := "<svg><text>&bogus;</text></svg>"
	opts := svgdom.DefaultParseOptions()
	opts.SkipInvalidAttributes = false
	_, err := Parse(strings.NewReader(src), opts)
	require.Error(t, err)
	var svgErr *svgdom.Error
	require.ErrorAs(t, err, &svgErr)
	assert.Equal(t, svgdom.ErrUnsupportedEntity, svgErr.Kind)
}

func TestParseElementValuedEntityInAttributeIsUnsupported(t *testing.T) {
	src := "<!DOCTYPE svg [<!ENTITY r \"<rect/>\">]>\n<svg fill=\"&r;\"></svg>"
	opts := svgdom.DefaultParseOptions()
	opts.SkipInvalidAttributes = false
	_, err := Parse(strings.NewReader(src), opts)
	require.Error(t, err)
	var svgErr *svgdom.Error
	require.ErrorAs(t, err, &svgErr)
	assert.Equal(t, svgdom.ErrUnsupportedEntity, svgErr.Kind)
}

func TestParseBreaksXlinkHrefCycle(t *testing.T) {
	src := `<svg><linearGradient id="a" xlink:href="#b"/><linearGradient id="b" xlink:href="#a"/></svg>`
	result, err := Parse(strings.NewReader(src), svgdom.DefaultParseOptions())
	require.NoError(t, err)

	found := false
	for _, w := range result.Warnings {
		if w.Kind == WarnCrosslinkCycle {
			found = true
		}
	}
	assert.True(t, found)

	a, ok := result.Document.NodeByID("a")
	require.True(t, ok)
	b, ok := result.Document.NodeByID("b")
	require.True(t, ok)

	_, aHasHref := a.Attrs.Get(svgdom.QName{Prefix: "xlink", ID: ident.AttributeXlinkHref, Local: "href"})
	assert.True(t, aHasHref)
	_, bHasHref := b.Attrs.Get(svgdom.QName{Prefix: "xlink", ID: ident.AttributeXlinkHref, Local: "href"})
	assert.False(t, bHasHref)
}

func TestParseNonCyclicHrefChainIsUntouched(t *testing.T) {
	src := `<svg><linearGradient id="a" xlink:href="#b"/><linearGradient id="b" xlink:href="#c"/><linearGradient id="c"/></svg>`
	result, err := Parse(strings.NewReader(src), svgdom.DefaultParseOptions())
	require.NoError(t, err)

	for _, w := range result.Warnings {
		assert.NotEqual(t, WarnCrosslinkCycle, w.Kind)
	}

	a, _ := result.Document.NodeByID("a")
	b, _ := result.Document.NodeByID("b")
	_, aHasHref := a.Attrs.Get(svgdom.QName{Prefix: "xlink", ID: ident.AttributeXlinkHref, Local: "href"})
	assert.True(t, aHasHref)
	_, bHasHref := b.Attrs.Get(svgdom.QName{Prefix: "xlink", ID: ident.AttributeXlinkHref, Local: "href"})
	assert.True(t, bHasHref)
}

func TestParseSelfReferentialHrefCycleIsBroken(t *testing.T) {
	src := `<svg><linearGradient id="a" xlink:href="#a"/></svg>`
	result, err := Parse(strings.NewReader(src), svgdom.DefaultParseOptions())
	require.NoError(t, err)

	a, ok := result.Document.NodeByID("a")
	require.True(t, ok)
	_, aHasHref := a.Attrs.Get(svgdom.QName{Prefix: "xlink", ID: ident.AttributeXlinkHref, Local: "href"})
	assert.False(t, aHasHref)
}

func TestParseVoidElementDoesNotNestFollowingSiblings(t *testing.T) {
	src := `<svg><rect/><circle/></svg>`
	result, err := Parse(strings.NewReader(src), svgdom.DefaultParseOptions())
	require.NoError(t, err)

	svg := result.Document.Root.FirstChild
	children := svg.Children()
	require.Len(t, children, 2)
	assert.Equal(t, "rect", children[0].TagName)
	assert.Equal(t, "circle", children[1].TagName)
}

func TestParseStyleElementCascadesOntoMatchingElements(t *testing.T) {
	src := `<svg><style>rect{fill:blue;}</style><rect/></svg>`
	result, err := Parse(strings.NewReader(src), svgdom.DefaultParseOptions())
	require.NoError(t, err)

	svg := result.Document.Root.FirstChild
	rect := svg.LastChild
	fv, ok := rect.Attrs.GetByID(ident.AttributeFill)
	require.True(t, ok)
	p := fv.(value.PaintValue)
	assert.Equal(t, uint8(255), p.Color.B)
}
