package parser

import (
	"testing"

	"github.com/RazrFalcon/svgdom/ident"
	"github.com/RazrFalcon/svgdom/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeAttributeValueLength(t *testing.T) {
	v, err := typeAttributeValue(ident.AttributeWidth, "10px")
	require.NoError(t, err)
	l, ok := v.(value.Length)
	require.True(t, ok)
	assert.Equal(t, 10.0, l.Num)
}

func TestTypeAttributeValueKeywordNone(t *testing.T) {
	v, err := typeAttributeValue(ident.AttributeClipPath, "none")
	require.NoError(t, err)
	assert.Equal(t, value.NoneValue{}, v)
}

func TestTypeAttributeValueKeywordNoneOnLengthStaysString(t *testing.T) {
	v, err := typeAttributeValue(ident.AttributeWidth, "none")
	require.NoError(t, err)
	assert.Equal(t, value.StringValue("none"), v)
}

func TestTypeAttributeValueInheritAndCurrentColor(t *testing.T) {
	v, err := typeAttributeValue(ident.AttributeClipPath, "inherit")
	require.NoError(t, err)
	assert.Equal(t, value.InheritValue{}, v)

	v, err = typeAttributeValue(ident.AttributeStopColor, "currentColor")
	require.NoError(t, err)
	assert.Equal(t, value.PaintValue{Kind: value.PaintCurrentColor}, v)
}

func TestTypeAttributeValueEnum(t *testing.T) {
	v, err := typeAttributeValue(ident.AttributeFillRule, "evenodd")
	require.NoError(t, err)
	assert.Equal(t, value.EnumValue("evenodd"), v)
}

func TestTypeAttributeValueEnumRejectsBogusKeyword(t *testing.T) {
	v, err := typeAttributeValue(ident.AttributeFillRule, "bogus")
	require.NoError(t, err)
	assert.Equal(t, value.StringValue("bogus"), v)
}

func TestTypeAttributeValueLinkAttribute(t *testing.T) {
	v, err := typeAttributeValue(ident.AttributeXlinkHref, "#target")
	require.NoError(t, err)
	lv, ok := v.(value.LinkValue)
	require.True(t, ok)
	assert.Equal(t, "target", lv.Raw)
	assert.Nil(t, lv.Target)
}

func TestTypeAttributeValueFuncLinkAttribute(t *testing.T) {
	v, err := typeAttributeValue(ident.AttributeClipPath, "url(#clip1)")
	require.NoError(t, err)
	fv, ok := v.(value.FuncLinkValue)
	require.True(t, ok)
	assert.Equal(t, "clip1", fv.Raw)
}

func TestTypeAttributeValueTransform(t *testing.T) {
	v, err := typeAttributeValue(ident.AttributeTransform, "translate(1 2)")
	require.NoError(t, err)
	_, ok := v.(value.Transform)
	assert.True(t, ok)
}

func TestTypeAttributeValuePath(t *testing.T) {
	v, err := typeAttributeValue(ident.AttributeD, "M 0 0 L 10 10")
	require.NoError(t, err)
	_, ok := v.(value.PathValue)
	assert.True(t, ok)
}

func TestTypeAttributeValueDefaultOpaqueAttribute(t *testing.T) {
	v, err := typeAttributeValue(ident.AttributeUnknown, "whatever")
	require.NoError(t, err)
	assert.Equal(t, value.StringValue("whatever"), v)
}

func TestParseFuncLinkRawRejectsMalformed(t *testing.T) {
	_, err := parseFuncLinkRaw("url(#unterminated")
	assert.Error(t, err)
}

func TestExtractFuncIRI(t *testing.T) {
	id, ok := extractFuncIRI(`url("#grad1")`)
	require.True(t, ok)
	assert.Equal(t, "grad1", id)

	_, ok = extractFuncIRI("not-a-url")
	assert.False(t, ok)
}
