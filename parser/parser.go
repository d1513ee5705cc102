package parser

import (
	"io"

	svgdom "github.com/RazrFalcon/svgdom"
	"github.com/RazrFalcon/svgdom/ident"
	"github.com/RazrFalcon/svgdom/value"
	"github.com/pkg/errors"
	"github.com/tdewolff/parse/v2/xml"
)

// Result is everything Parse produces beyond the error return: the tree
// itself plus every recoverable problem encountered along the way.
type Result struct {
	Document *svgdom.Document
	Warnings []Warning
}

// Parse reads SVG source from r, builds a live *svgdom.Document, and runs
// the fixed preprocessor pipeline spec.md §5 describes: attribute typing
// happens inline during tree construction; style splitting, CSS cascade,
// whitespace normalization, and link/paint resolution run as passes over
// the finished tree, in that order.
func Parse(r io.Reader, opts svgdom.ParseOptions) (*Result, error) {
	doc := svgdom.NewDocument()
	tb := newTokenSource(xml.NewTokenizer(r))

	var warnings []Warning
	stack := []*svgdom.Node{doc.Root}
	top := func() *svgdom.Node { return stack[len(stack)-1] }

	var pendingAttrsOwner *svgdom.Node

	for {
		t := tb.shift()
		switch t.tt {
		case xml.ErrorToken:
			if err := tb.err(); err != nil && err != io.EOF {
				return nil, &svgdom.Error{Kind: svgdom.ErrXML, Offset: -1, Cause: err}
			}
			return finishParse(doc, warnings, opts)

		case xml.DOCTYPEToken:
			for name, v := range harvestEntities(t.data) {
				doc.DefineEntity(name, v)
			}

		case xml.CommentToken:
			svgdom.AppendChild(top(), svgdom.NewComment(string(t.data)))

		case xml.StartTagToken:
			tag := string(t.data)
			n := svgdom.NewElement(tag)
			svgdom.AppendChild(top(), n)
			stack = append(stack, n)
			pendingAttrsOwner = n

		case xml.StartTagPIToken:
			n := svgdom.NewDeclaration(string(t.data))
			svgdom.AppendChild(top(), n)
			pendingAttrsOwner = n

		case xml.AttributeToken:
			if pendingAttrsOwner == nil || len(t.attrVal) < 2 {
				continue
			}
			name := string(t.data)
			raw, err := decodeEntities(string(t.attrVal[1:len(t.attrVal)-1]), doc.EntitiesSnapshot(), opts, &warnings)
			if err != nil {
				return nil, err
			}
			setTypedAttribute(doc, pendingAttrsOwner, name, raw, opts, &warnings)

		case xml.StartTagCloseToken:
			pendingAttrsOwner = nil

		case xml.StartTagCloseVoidToken:
			pendingAttrsOwner = nil
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}

		case xml.StartTagClosePIToken:
			pendingAttrsOwner = nil

		case xml.EndTagToken:
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}

		case xml.TextToken, xml.CDATAToken:
			if top() == doc.Root {
				continue // character data outside the root element is not kept
			}
			if err := appendTextWithEntities(doc, top(), string(t.data), opts, &warnings, 0); err != nil {
				return nil, err
			}
		}
	}
}

// setTypedAttribute parses raw into its typed value.Value and stores it,
// honoring ParseOptions.SkipInvalidAttributes for values that fail typed
// parsing.
func setTypedAttribute(doc *svgdom.Document, n *svgdom.Node, rawName, rawValue string, opts svgdom.ParseOptions, warnings *[]Warning) {
	prefix, local := splitQName(rawName)
	name := svgdom.NewQName(prefix, local)

	v, err := typeAttributeValue(name.ID, rawValue)
	if err != nil {
		*warnings = append(*warnings, Warning{Kind: WarnInvalidAttributeValue, Context: rawName, Detail: err.Error()})
		return
	}
	n.Attrs.Set(name, v)
}

func splitQName(raw string) (prefix, local string) {
	for i := 0; i < len(raw); i++ {
		if raw[i] == ':' {
			return raw[:i], raw[i+1:]
		}
	}
	return "", raw
}

// finishParse runs the tree-level preprocessor passes and returns the
// completed Result.
func finishParse(doc *svgdom.Document, warnings []Warning, opts svgdom.ParseOptions) (*Result, error) {
	warnings = append(warnings, duplicateIDWarnings(doc)...)
	warnings = append(warnings, applyStylesheets(doc, opts)...)
	normalizeWhitespace(doc)
	linkWarnings, err := resolveLinks(doc, opts)
	warnings = append(warnings, linkWarnings...)
	if err != nil {
		return nil, err
	}
	warnings = append(warnings, breakCrosslinkCycles(doc)...)
	pruneDefaults(doc)
	return &Result{Document: doc, Warnings: warnings}, nil
}

// duplicateIDWarnings reports every element whose "id" lost the
// first-wins race registerID runs during tree construction: its
// attribute survives, but NodeByID(id) resolves to the earlier element.
func duplicateIDWarnings(doc *svgdom.Document) []Warning {
	var warnings []Warning
	for _, el := range append([]*svgdom.Node{doc.Root}, doc.Root.Descendants()...) {
		if !el.IsElement() {
			continue
		}
		v, ok := el.Attrs.GetByID(ident.AttributeId)
		if !ok {
			continue
		}
		if owner, ok := doc.NodeByID(v.String()); !ok || owner != el {
			warnings = append(warnings, Warning{Kind: WarnDuplicateID, Context: v.String()})
		}
	}
	return warnings
}

// resolveLinks walks every element's attributes, replacing the
// placeholder targets typeAttributeValue left behind with the real node
// the id resolves to, and applies spec.md §4.C/§9's broken-FuncIRI policy
// when it doesn't resolve.
func resolveLinks(doc *svgdom.Document, opts svgdom.ParseOptions) ([]Warning, error) {
	var warnings []Warning
	elements := append([]*svgdom.Node{doc.Root}, doc.Root.Descendants()...)
	for _, el := range elements {
		if !el.IsElement() {
			continue
		}
		for _, a := range el.Attrs.All() {
			resolved, changed, warn, err := resolveAttrLinks(doc, a.Value, opts)
			if err != nil {
				return warnings, err
			}
			if warn != nil {
				warnings = append(warnings, Warning{Kind: warn.Kind, Context: a.Name.Local, Detail: warn.Detail})
			}
			if changed {
				el.Attrs.Set(a.Name, resolved)
			}
		}
	}
	return warnings, nil
}

// paintFallbackValue converts a broken Paint::FuncIRI that carries a
// fallback into the resolved paint that fallback names, mirroring the
// Document's own broken-link policy for incoming links removed later.
func paintFallbackValue(p value.PaintValue) value.PaintValue {
	switch p.Fallback.Kind {
	case value.FallbackColor:
		return value.PaintValue{Kind: value.PaintColor, Color: p.Fallback.Color}
	case value.FallbackCurrentColor:
		return value.PaintValue{Kind: value.PaintCurrentColor}
	default:
		return value.PaintValue{Kind: value.PaintNone}
	}
}

func resolveAttrLinks(doc *svgdom.Document, v value.Value, opts svgdom.ParseOptions) (value.Value, bool, *Warning, error) {
	switch t := v.(type) {
	case value.LinkValue:
		if t.Target != nil || t.Raw == "" {
			return v, false, nil, nil
		}
		if target, ok := doc.NodeByID(t.Raw); ok {
			return value.LinkValue{Target: target, Raw: t.Raw}, true, nil, nil
		}
		return v, false, nil, nil
	case value.FuncLinkValue:
		if t.Target != nil || t.Raw == "" {
			return v, false, nil, nil
		}
		if target, ok := doc.NodeByID(t.Raw); ok {
			return value.FuncLinkValue{Target: target, Raw: t.Raw}, true, nil, nil
		}
		return v, false, nil, nil
	case value.PaintValue:
		if t.Kind != value.PaintFuncIRI {
			return v, false, nil, nil
		}
		if t.Link == nil {
			return v, false, nil, nil
		}
		id := t.Link.RefID()
		if _, isNode := t.Link.(*svgdom.Node); isNode {
			return v, false, nil, nil // already resolved
		}
		if target, ok := doc.NodeByID(id); ok {
			t.Link = target
			return value.PaintValue(t), true, nil, nil
		}
		if t.HasFallback {
			return paintFallbackValue(t), true, nil, nil
		}
		if opts.SkipPaintFallback {
			return v, false, &Warning{Kind: WarnBrokenFuncIRI, Detail: "url(#" + id + ") has no target and no fallback"}, nil
		}
		return v, false, nil, &svgdom.Error{Kind: svgdom.ErrBrokenFuncIRI, Offset: -1, Context: id, Cause: errors.Errorf("url(#%s) has no target and no fallback", id)}
	default:
		return v, false, nil, nil
	}
}
