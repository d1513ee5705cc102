package ident

// AttributeID is a closed enumeration of the SVG/XLink attribute names this
// module understands. Unknown attribute names are preserved as opaque
// strings (AttributeUnknown), same policy as ElementID.
type AttributeID int

const (
	AttributeUnknown AttributeID = iota

	// AttributeId is the "id" attribute itself (kept separate from the
	// Core group below since it isn't one of Appendix M's core attributes).
	AttributeId

	// Core / conditional-processing / document-event attributes.
	AttributeClass
	AttributeStyle
	AttributeXmlSpace
	AttributeXmlLang
	AttributeXmlBase
	AttributeRequiredExtensions
	AttributeRequiredFeatures
	AttributeSystemLanguage
	AttributeOnLoad
	AttributeOnUnload
	AttributeOnAbort
	AttributeOnError
	AttributeOnResize
	AttributeOnScroll

	// Graphical-event attributes.
	AttributeOnFocusIn
	AttributeOnFocusOut
	AttributeOnActivate
	AttributeOnClick
	AttributeOnMouseDown
	AttributeOnMouseUp
	AttributeOnMouseOver
	AttributeOnMouseMove
	AttributeOnMouseOut

	// Structural / geometry attributes.
	AttributeX
	AttributeY
	AttributeX1
	AttributeY1
	AttributeX2
	AttributeY2
	AttributeCx
	AttributeCy
	AttributeR
	AttributeRx
	AttributeRy
	AttributeWidth
	AttributeHeight
	AttributePoints
	AttributeD
	AttributeViewBox
	AttributePreserveAspectRatio
	AttributeTransform
	AttributeGradientUnits
	AttributeGradientTransform
	AttributeSpreadMethod
	AttributePatternUnits
	AttributePatternContentUnits
	AttributePatternTransform
	AttributeOffset
	AttributeHref
	AttributeXlinkHref
	AttributeVersion
	AttributeBaseProfile
	AttributeType
	AttributeMedia
	AttributeTitleAttr
	AttributeRefX
	AttributeRefY
	AttributeMarkerWidth
	AttributeMarkerHeight
	AttributeMarkerUnits
	AttributeOrient
	AttributeMaskUnits
	AttributeMaskContentUnits
	AttributeClipPathUnits
	AttributeFilterUnits
	AttributePrimitiveUnits
	AttributeStdDeviation
	AttributeIn
	AttributeIn2
	AttributeResult
	AttributeXmlns
	AttributeXmlnsXlink

	// Presentation attributes (fill group).
	AttributeFill
	AttributeFillOpacity
	AttributeFillRule

	// Presentation attributes (stroke group).
	AttributeStroke
	AttributeStrokeOpacity
	AttributeStrokeWidth
	AttributeStrokeLinecap
	AttributeStrokeLinejoin
	AttributeStrokeMiterlimit
	AttributeStrokeDasharray
	AttributeStrokeDashoffset

	// Other presentation attributes.
	AttributeOpacity
	AttributeColor
	AttributeDisplay
	AttributeVisibility
	AttributeStopColor
	AttributeStopOpacity
	AttributeClipPath
	AttributeClipRule
	AttributeMask
	AttributeFilter
	AttributeFontFamily
	AttributeFontSize
	AttributeFontStyle
	AttributeFontWeight
	AttributeFontVariant
	AttributeFontStretch
	AttributeTextAnchor
	AttributeTextDecoration
	AttributeLetterSpacing
	AttributeWordSpacing
	AttributeCursor
	AttributeOverflow
	AttributeShapeRendering
	AttributeColorInterpolation
	AttributeColorInterpolationFilters
	AttributeColorRendering
	AttributeImageRendering
	AttributeTextRendering
	AttributePointerEvents
	AttributeVectorEffect
	AttributeIsolation
	AttributeMixBlendMode
	AttributePaintOrder
)

var attributeNames = map[string]AttributeID{
	"id":                          AttributeId,
	"class":                       AttributeClass,
	"style":                       AttributeStyle,
	"xml:space":                   AttributeXmlSpace,
	"xml:lang":                    AttributeXmlLang,
	"xml:base":                    AttributeXmlBase,
	"requiredExtensions":          AttributeRequiredExtensions,
	"requiredFeatures":            AttributeRequiredFeatures,
	"systemLanguage":              AttributeSystemLanguage,
	"onload":                      AttributeOnLoad,
	"onunload":                    AttributeOnUnload,
	"onabort":                     AttributeOnAbort,
	"onerror":                     AttributeOnError,
	"onresize":                    AttributeOnResize,
	"onscroll":                    AttributeOnScroll,
	"onfocusin":                   AttributeOnFocusIn,
	"onfocusout":                  AttributeOnFocusOut,
	"onactivate":                  AttributeOnActivate,
	"onclick":                     AttributeOnClick,
	"onmousedown":                 AttributeOnMouseDown,
	"onmouseup":                   AttributeOnMouseUp,
	"onmouseover":                 AttributeOnMouseOver,
	"onmousemove":                 AttributeOnMouseMove,
	"onmouseout":                  AttributeOnMouseOut,
	"x":                           AttributeX,
	"y":                           AttributeY,
	"x1":                          AttributeX1,
	"y1":                          AttributeY1,
	"x2":                          AttributeX2,
	"y2":                          AttributeY2,
	"cx":                          AttributeCx,
	"cy":                          AttributeCy,
	"r":                           AttributeR,
	"rx":                          AttributeRx,
	"ry":                          AttributeRy,
	"width":                       AttributeWidth,
	"height":                      AttributeHeight,
	"points":                      AttributePoints,
	"d":                           AttributeD,
	"viewBox":                     AttributeViewBox,
	"preserveAspectRatio":         AttributePreserveAspectRatio,
	"transform":                   AttributeTransform,
	"gradientUnits":               AttributeGradientUnits,
	"gradientTransform":           AttributeGradientTransform,
	"spreadMethod":                AttributeSpreadMethod,
	"patternUnits":                AttributePatternUnits,
	"patternContentUnits":         AttributePatternContentUnits,
	"patternTransform":            AttributePatternTransform,
	"offset":                      AttributeOffset,
	"href":                        AttributeHref,
	"xlink:href":                  AttributeXlinkHref,
	"version":                     AttributeVersion,
	"baseProfile":                 AttributeBaseProfile,
	"type":                        AttributeType,
	"media":                       AttributeMedia,
	"title":                       AttributeTitleAttr,
	"refX":                        AttributeRefX,
	"refY":                        AttributeRefY,
	"markerWidth":                 AttributeMarkerWidth,
	"markerHeight":                AttributeMarkerHeight,
	"markerUnits":                 AttributeMarkerUnits,
	"orient":                      AttributeOrient,
	"maskUnits":                   AttributeMaskUnits,
	"maskContentUnits":            AttributeMaskContentUnits,
	"clipPathUnits":               AttributeClipPathUnits,
	"filterUnits":                 AttributeFilterUnits,
	"primitiveUnits":              AttributePrimitiveUnits,
	"stdDeviation":                AttributeStdDeviation,
	"in":                          AttributeIn,
	"in2":                         AttributeIn2,
	"result":                      AttributeResult,
	"xmlns":                       AttributeXmlns,
	"xmlns:xlink":                 AttributeXmlnsXlink,
	"fill":                        AttributeFill,
	"fill-opacity":                AttributeFillOpacity,
	"fill-rule":                   AttributeFillRule,
	"stroke":                      AttributeStroke,
	"stroke-opacity":              AttributeStrokeOpacity,
	"stroke-width":                AttributeStrokeWidth,
	"stroke-linecap":              AttributeStrokeLinecap,
	"stroke-linejoin":             AttributeStrokeLinejoin,
	"stroke-miterlimit":           AttributeStrokeMiterlimit,
	"stroke-dasharray":            AttributeStrokeDasharray,
	"stroke-dashoffset":           AttributeStrokeDashoffset,
	"opacity":                     AttributeOpacity,
	"color":                       AttributeColor,
	"display":                     AttributeDisplay,
	"visibility":                  AttributeVisibility,
	"stop-color":                  AttributeStopColor,
	"stop-opacity":                AttributeStopOpacity,
	"clip-path":                   AttributeClipPath,
	"clip-rule":                   AttributeClipRule,
	"mask":                        AttributeMask,
	"filter":                      AttributeFilter,
	"font-family":                 AttributeFontFamily,
	"font-size":                   AttributeFontSize,
	"font-style":                  AttributeFontStyle,
	"font-weight":                 AttributeFontWeight,
	"font-variant":                AttributeFontVariant,
	"font-stretch":                AttributeFontStretch,
	"text-anchor":                 AttributeTextAnchor,
	"text-decoration":             AttributeTextDecoration,
	"letter-spacing":              AttributeLetterSpacing,
	"word-spacing":                AttributeWordSpacing,
	"cursor":                      AttributeCursor,
	"overflow":                    AttributeOverflow,
	"shape-rendering":             AttributeShapeRendering,
	"color-interpolation":         AttributeColorInterpolation,
	"color-interpolation-filters": AttributeColorInterpolationFilters,
	"color-rendering":             AttributeColorRendering,
	"image-rendering":             AttributeImageRendering,
	"text-rendering":              AttributeTextRendering,
	"pointer-events":              AttributePointerEvents,
	"vector-effect":               AttributeVectorEffect,
	"isolation":                   AttributeIsolation,
	"mix-blend-mode":              AttributeMixBlendMode,
	"paint-order":                 AttributePaintOrder,
	"flood-color":                 AttributeFloodColor,
}

var attributeStrings map[AttributeID]string

func init() {
	attributeStrings = make(map[AttributeID]string, len(attributeNames))
	for s, id := range attributeNames {
		attributeStrings[id] = s
	}
}

// ParseAttributeID looks up the closed attribute enumeration for a local
// (unprefixed, for xlink:href pre-joined) attribute name.
func ParseAttributeID(name string) (AttributeID, bool) {
	id, ok := attributeNames[name]
	return id, ok
}

// String returns the canonical SVG spelling of the attribute name.
func (a AttributeID) String() string {
	if s, ok := attributeStrings[a]; ok {
		return s
	}
	return "unknown"
}

// AttributeGroup classifies attributes the way SVG 1.1 Appendix M does, so
// callers can ask IsPresentation/IsCore without a giant switch of their own.
type AttributeGroup int

const (
	GroupNone AttributeGroup = iota
	GroupCore
	GroupConditionalProcessing
	GroupDocumentEvent
	GroupGraphicalEvent
	GroupAnimationEvent
	GroupPresentation
	GroupFill
	GroupStroke
)

var groupOf = map[AttributeID]AttributeGroup{
	AttributeClass:              GroupCore,
	AttributeStyle:              GroupCore,
	AttributeXmlSpace:           GroupCore,
	AttributeXmlLang:            GroupCore,
	AttributeXmlBase:            GroupCore,
	AttributeRequiredExtensions: GroupConditionalProcessing,
	AttributeRequiredFeatures:   GroupConditionalProcessing,
	AttributeSystemLanguage:     GroupConditionalProcessing,
	AttributeOnLoad:             GroupDocumentEvent,
	AttributeOnUnload:           GroupDocumentEvent,
	AttributeOnAbort:            GroupDocumentEvent,
	AttributeOnError:            GroupDocumentEvent,
	AttributeOnResize:           GroupDocumentEvent,
	AttributeOnScroll:           GroupDocumentEvent,
	AttributeOnFocusIn:          GroupGraphicalEvent,
	AttributeOnFocusOut:         GroupGraphicalEvent,
	AttributeOnActivate:         GroupGraphicalEvent,
	AttributeOnClick:            GroupGraphicalEvent,
	AttributeOnMouseDown:        GroupGraphicalEvent,
	AttributeOnMouseUp:          GroupGraphicalEvent,
	AttributeOnMouseOver:        GroupGraphicalEvent,
	AttributeOnMouseMove:        GroupGraphicalEvent,
	AttributeOnMouseOut:         GroupGraphicalEvent,

	AttributeFill:        GroupFill,
	AttributeFillOpacity: GroupFill,
	AttributeFillRule:    GroupFill,

	AttributeStroke:             GroupStroke,
	AttributeStrokeOpacity:      GroupStroke,
	AttributeStrokeWidth:        GroupStroke,
	AttributeStrokeLinecap:      GroupStroke,
	AttributeStrokeLinejoin:     GroupStroke,
	AttributeStrokeMiterlimit:   GroupStroke,
	AttributeStrokeDasharray:    GroupStroke,
	AttributeStrokeDashoffset:   GroupStroke,

	AttributeOpacity:                    GroupPresentation,
	AttributeColor:                      GroupPresentation,
	AttributeDisplay:                    GroupPresentation,
	AttributeVisibility:                 GroupPresentation,
	AttributeStopColor:                  GroupPresentation,
	AttributeStopOpacity:                GroupPresentation,
	AttributeClipPath:                   GroupPresentation,
	AttributeClipRule:                   GroupPresentation,
	AttributeMask:                       GroupPresentation,
	AttributeFilter:                     GroupPresentation,
	AttributeFontFamily:                 GroupPresentation,
	AttributeFontSize:                   GroupPresentation,
	AttributeFontStyle:                  GroupPresentation,
	AttributeFontWeight:                 GroupPresentation,
	AttributeFontVariant:                GroupPresentation,
	AttributeFontStretch:                GroupPresentation,
	AttributeTextAnchor:                 GroupPresentation,
	AttributeTextDecoration:             GroupPresentation,
	AttributeLetterSpacing:              GroupPresentation,
	AttributeWordSpacing:                GroupPresentation,
	AttributeCursor:                     GroupPresentation,
	AttributeOverflow:                   GroupPresentation,
	AttributeShapeRendering:             GroupPresentation,
	AttributeColorInterpolation:         GroupPresentation,
	AttributeColorInterpolationFilters:  GroupPresentation,
	AttributeColorRendering:             GroupPresentation,
	AttributeImageRendering:             GroupPresentation,
	AttributeTextRendering:              GroupPresentation,
	AttributePointerEvents:              GroupPresentation,
	AttributeVectorEffect:               GroupPresentation,
	AttributeIsolation:                  GroupPresentation,
	AttributeMixBlendMode:               GroupPresentation,
	AttributePaintOrder:                 GroupPresentation,
	AttributeFloodColor:                 GroupPresentation,
}

// GroupOf returns the attribute's classification group, or GroupNone for
// attributes that are structural/geometric rather than stylistic.
func GroupOf(a AttributeID) AttributeGroup {
	if g, ok := groupOf[a]; ok {
		return g
	}
	return GroupNone
}

// IsPresentation reports whether the attribute may alternatively be
// expressed as a CSS property (spec.md's "presentation attribute").
func IsPresentation(a AttributeID) bool {
	switch GroupOf(a) {
	case GroupPresentation, GroupFill, GroupStroke:
		return true
	default:
		return false
	}
}

// IsCore reports whether the attribute belongs to the SVG "core" group.
func IsCore(a AttributeID) bool {
	return GroupOf(a) == GroupCore
}

// paintAttributes are the presentation attributes whose typed value is a
// Paint (fill/stroke and their gradient-stop cousins).
var paintAttributes = map[AttributeID]bool{
	AttributeFill:       true,
	AttributeStroke:     true,
	AttributeStopColor:  true,
	AttributeFloodColor: true,
}

// AttributeFloodColor covers filter primitives' flood-color, which shares
// the fill/stroke color grammar but isn't itself a fill/stroke attribute.
const AttributeFloodColor AttributeID = 1000

// IsPaint reports whether the attribute's typed value is a Paint.
func IsPaint(a AttributeID) bool {
	return paintAttributes[a]
}

// Keyword is the closed set of sentinel keyword values shared by many
// attribute grammars (spec.md §3's AttributeValue variants None/Inherit/
// CurrentColor, plus enumerated presentation keywords).
type Keyword int

const (
	KeywordUnknown Keyword = iota
	KeywordNone
	KeywordInherit
	KeywordCurrentColor
)

var keywords = map[string]Keyword{
	"none":         KeywordNone,
	"inherit":      KeywordInherit,
	"currentColor": KeywordCurrentColor,
}

// ParseKeyword recognizes the three sentinel keywords shared across
// attribute grammars.
func ParseKeyword(s string) (Keyword, bool) {
	k, ok := keywords[s]
	return k, ok
}

func (k Keyword) String() string {
	switch k {
	case KeywordNone:
		return "none"
	case KeywordInherit:
		return "inherit"
	case KeywordCurrentColor:
		return "currentColor"
	default:
		return ""
	}
}
