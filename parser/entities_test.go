package parser

import (
	"testing"

	svgdom "github.com/RazrFalcon/svgdom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeForTest(raw string, custom map[string]string) (string, []Warning) {
	var warnings []Warning
	got, err := decodeEntities(raw, custom, svgdom.DefaultParseOptions(), &warnings)
	if err != nil {
		panic(err)
	}
	return got, warnings
}

func TestDecodeEntitiesPredefined(t *testing.T) {
	got, _ := decodeForTest("&lt;a&gt; &amp; &quot;b&quot;", nil)
	assert.Equal(t, `<a> & "b"`, got)
}

func TestDecodeEntitiesNumeric(t *testing.T) {
	got, _ := decodeForTest("&#39;", nil)
	assert.Equal(t, "'", got)
	got, _ = decodeForTest("&#x27;", nil)
	assert.Equal(t, "'", got)
}

func TestDecodeEntitiesCustom(t *testing.T) {
	custom := map[string]string{"company": "Acme"}
	got, _ := decodeForTest("&company; Inc", custom)
	assert.Equal(t, "Acme Inc", got)
}

func TestDecodeEntitiesNoAmpersandIsNoop(t *testing.T) {
	got, _ := decodeForTest("plain text", nil)
	assert.Equal(t, "plain text", got)
}

func TestDecodeEntitiesUnknownEntityLeftVerbatimWhenSkipping(t *testing.T) {
	got, warnings := decodeForTest("&bogus;", nil)
	assert.Equal(t, "&bogus;", got)
	require.Len(t, warnings, 1)
	assert.Equal(t, WarnUnsupportedEntity, warnings[0].Kind)
	assert.Equal(t, "bogus", warnings[0].Context)
}

func TestDecodeEntitiesUnknownEntityErrorsWhenStrict(t *testing.T) {
	opts := svgdom.DefaultParseOptions()
	opts.SkipInvalidAttributes = false
	var warnings []Warning
	_, err := decodeEntities("&bogus;", nil, opts, &warnings)
	require.Error(t, err)
	var svgErr *svgdom.Error
	require.ErrorAs(t, err, &svgErr)
	assert.Equal(t, svgdom.ErrUnsupportedEntity, svgErr.Kind)
}

func TestDecodeEntitiesElementValuedEntityIsUnsupportedInAttributeContext(t *testing.T) {
	custom := map[string]string{"r": "<rect/>"}
	got, warnings := decodeForTest("&r;", custom)
	assert.Equal(t, "&r;", got)
	require.Len(t, warnings, 1)
	assert.Equal(t, WarnUnsupportedEntity, warnings[0].Kind)
}

func TestHarvestEntities(t *testing.T) {
	doctype := []byte(`svg PUBLIC "-//W3C//DTD SVG 1.1//EN" [
		<!ENTITY company "Acme">
		<!ENTITY greeting 'hi'>
	]`)
	got := harvestEntities(doctype)
	assert.Equal(t, "Acme", got["company"])
	assert.Equal(t, "hi", got["greeting"])
}

func TestExpandEntitiesRecursiveBounded(t *testing.T) {
	entities := map[string]string{
		"a": "&b;",
		"b": "&c;",
		"c": "leaf",
	}
	assert.Equal(t, "leaf", expandEntities("&a;", entities))
}

func TestExpandEntitiesNoEntitiesIsNoop(t *testing.T) {
	assert.Equal(t, "&a;", expandEntities("&a;", nil))
}

func TestIsElementFragment(t *testing.T) {
	assert.True(t, isElementFragment("<rect/>"))
	assert.True(t, isElementFragment("  <rect/>"))
	assert.False(t, isElementFragment("Acme"))
}
