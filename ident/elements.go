// Package ident holds the closed enumerations of SVG element and attribute
// names used by the rest of the module, plus the three sentinel keyword
// values shared across attribute grammars (none, inherit, currentColor).
//
// Lookup tables are built once at init time (grounded on the hash-table
// approach of tdewolff/minify's svg.Hash, but implemented as a plain map
// since we don't need the minifier's byte-buffer-free perfect hash -
// identifiers here are looked up a handful of times per node, not once per
// output byte).
package ident

// ElementID is a closed enumeration of the SVG 1.1 element names this
// module understands. Elements outside the enumeration are preserved as
// opaque strings (ElementUnknown).
type ElementID int

const (
	ElementUnknown ElementID = iota

	ElementA
	ElementAltGlyph
	ElementAltGlyphDef
	ElementAltGlyphItem
	ElementAnimate
	ElementAnimateColor
	ElementAnimateMotion
	ElementAnimateTransform
	ElementCircle
	ElementClipPath
	ElementColorProfile
	ElementCursor
	ElementDefs
	ElementDesc
	ElementEllipse
	ElementFeBlend
	ElementFeColorMatrix
	ElementFeComponentTransfer
	ElementFeComposite
	ElementFeConvolveMatrix
	ElementFeDiffuseLighting
	ElementFeDisplacementMap
	ElementFeDistantLight
	ElementFeDropShadow
	ElementFeFlood
	ElementFeFuncA
	ElementFeFuncB
	ElementFeFuncG
	ElementFeFuncR
	ElementFeGaussianBlur
	ElementFeImage
	ElementFeMerge
	ElementFeMergeNode
	ElementFeMorphology
	ElementFeOffset
	ElementFePointLight
	ElementFeSpecularLighting
	ElementFeSpotLight
	ElementFeTile
	ElementFeTurbulence
	ElementFilter
	ElementFont
	ElementFontFace
	ElementFontFaceFormat
	ElementFontFaceName
	ElementFontFaceSrc
	ElementFontFaceURI
	ElementForeignObject
	ElementG
	ElementGlyph
	ElementGlyphRef
	ElementHKern
	ElementImage
	ElementLine
	ElementLinearGradient
	ElementMarker
	ElementMask
	ElementMetadata
	ElementMissingGlyph
	ElementMPath
	ElementPath
	ElementPattern
	ElementPolygon
	ElementPolyline
	ElementRadialGradient
	ElementRect
	ElementScript
	ElementSet
	ElementStop
	ElementStyle
	ElementSvg
	ElementSwitch
	ElementSymbol
	ElementText
	ElementTextPath
	ElementTitle
	ElementTRef
	ElementTSpan
	ElementUse
	ElementView
	ElementVKern
)

var elementNames = map[string]ElementID{
	"a":                   ElementA,
	"altGlyph":             ElementAltGlyph,
	"altGlyphDef":          ElementAltGlyphDef,
	"altGlyphItem":         ElementAltGlyphItem,
	"animate":              ElementAnimate,
	"animateColor":         ElementAnimateColor,
	"animateMotion":        ElementAnimateMotion,
	"animateTransform":     ElementAnimateTransform,
	"circle":               ElementCircle,
	"clipPath":             ElementClipPath,
	"color-profile":        ElementColorProfile,
	"cursor":               ElementCursor,
	"defs":                 ElementDefs,
	"desc":                 ElementDesc,
	"ellipse":              ElementEllipse,
	"feBlend":              ElementFeBlend,
	"feColorMatrix":        ElementFeColorMatrix,
	"feComponentTransfer":  ElementFeComponentTransfer,
	"feComposite":          ElementFeComposite,
	"feConvolveMatrix":     ElementFeConvolveMatrix,
	"feDiffuseLighting":    ElementFeDiffuseLighting,
	"feDisplacementMap":    ElementFeDisplacementMap,
	"feDistantLight":       ElementFeDistantLight,
	"feDropShadow":         ElementFeDropShadow,
	"feFlood":              ElementFeFlood,
	"feFuncA":              ElementFeFuncA,
	"feFuncB":              ElementFeFuncB,
	"feFuncG":              ElementFeFuncG,
	"feFuncR":              ElementFeFuncR,
	"feGaussianBlur":       ElementFeGaussianBlur,
	"feImage":              ElementFeImage,
	"feMerge":              ElementFeMerge,
	"feMergeNode":          ElementFeMergeNode,
	"feMorphology":         ElementFeMorphology,
	"feOffset":             ElementFeOffset,
	"fePointLight":         ElementFePointLight,
	"feSpecularLighting":   ElementFeSpecularLighting,
	"feSpotLight":          ElementFeSpotLight,
	"feTile":               ElementFeTile,
	"feTurbulence":         ElementFeTurbulence,
	"filter":               ElementFilter,
	"font":                 ElementFont,
	"font-face":            ElementFontFace,
	"font-face-format":     ElementFontFaceFormat,
	"font-face-name":       ElementFontFaceName,
	"font-face-src":        ElementFontFaceSrc,
	"font-face-uri":        ElementFontFaceURI,
	"foreignObject":        ElementForeignObject,
	"g":                    ElementG,
	"glyph":                ElementGlyph,
	"glyphRef":             ElementGlyphRef,
	"hkern":                ElementHKern,
	"image":                ElementImage,
	"line":                 ElementLine,
	"linearGradient":       ElementLinearGradient,
	"marker":               ElementMarker,
	"mask":                 ElementMask,
	"metadata":             ElementMetadata,
	"missing-glyph":        ElementMissingGlyph,
	"mpath":                ElementMPath,
	"path":                 ElementPath,
	"pattern":              ElementPattern,
	"polygon":              ElementPolygon,
	"polyline":             ElementPolyline,
	"radialGradient":       ElementRadialGradient,
	"rect":                 ElementRect,
	"script":               ElementScript,
	"set":                  ElementSet,
	"stop":                 ElementStop,
	"style":                ElementStyle,
	"svg":                  ElementSvg,
	"switch":               ElementSwitch,
	"symbol":               ElementSymbol,
	"text":                 ElementText,
	"textPath":             ElementTextPath,
	"title":                ElementTitle,
	"tref":                 ElementTRef,
	"tspan":                ElementTSpan,
	"use":                  ElementUse,
	"view":                 ElementView,
	"vkern":                ElementVKern,
}

var elementStrings map[ElementID]string

func init() {
	elementStrings = make(map[ElementID]string, len(elementNames))
	for s, id := range elementNames {
		elementStrings[id] = s
	}
}

// ParseElementID looks up the closed SVG element enumeration for a tag
// name. ElementUnknown, false is returned for opaque/foreign names.
func ParseElementID(name string) (ElementID, bool) {
	id, ok := elementNames[name]
	return id, ok
}

// String returns the canonical SVG spelling of the element name.
func (e ElementID) String() string {
	if s, ok := elementStrings[e]; ok {
		return s
	}
	return "unknown"
}

// gradientElements and containerElements are grounded on
// tdewolff-minify/svg/table.go's containerTagMap, generalized to the full
// element set this module understands.
var gradientElements = map[ElementID]bool{
	ElementLinearGradient: true,
	ElementRadialGradient: true,
}

// IsGradient reports whether the element id names a gradient paint server.
func IsGradient(e ElementID) bool {
	return gradientElements[e]
}

var containerElements = map[ElementID]bool{
	ElementA:       true,
	ElementDefs:    true,
	ElementG:       true,
	ElementMarker:  true,
	ElementMask:    true,
	ElementPattern: true,
	ElementSvg:     true,
	ElementSwitch:  true,
	ElementSymbol:  true,
}

// IsContainer reports whether the element id is a structural container
// element per the SVG 1.1 content model.
func IsContainer(e ElementID) bool {
	return containerElements[e]
}
