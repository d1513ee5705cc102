package parser

import (
	"strings"

	"github.com/RazrFalcon/svgdom/ident"
	svgdom "github.com/RazrFalcon/svgdom"
	douceurcss "github.com/aymerick/douceur/css"
	douceurparser "github.com/aymerick/douceur/parser"
)

// applyStylesheets resolves every <style> element's CSS text against the
// document and applies matching declarations as if they were presentation
// attributes, in increasing precedence: stylesheet rules first, then the
// element's own presentation attributes (already present from the tree
// build), then its style="" attribute (spec.md §9's decision: style
// overrides direct attributes, applied last).
func applyStylesheets(doc *svgdom.Document, opts svgdom.ParseOptions) []Warning {
	var warnings []Warning
	var rules []*douceurcss.Rule

	for _, n := range append([]*svgdom.Node{doc.Root}, doc.Root.Descendants()...) {
		if !n.IsElement() || n.ElementID != ident.ElementStyle {
			continue
		}
		css := styleElementText(n)
		sheet, err := douceurparser.Parse(css)
		if err != nil {
			warnings = append(warnings, Warning{Kind: WarnInvalidCSS, Detail: err.Error()})
			if !opts.SkipInvalidCSS {
				continue
			}
			continue
		}
		rules = append(rules, sheet.Rules...)
	}

	// Attributes present before any rule is applied are the element's own
	// presentation attributes; a rule never overrides one of them.
	direct := map[*svgdom.Node]map[string]bool{}
	for _, el := range doc.Root.Descendants() {
		direct[el] = map[string]bool{}
		for _, a := range el.Attrs.All() {
			direct[el][a.Name.Local] = true
		}
	}

	for _, rule := range rules {
		for _, sel := range rule.Selectors {
			matched := false
			for _, el := range append([]*svgdom.Node{doc.Root}, doc.Root.Descendants()...) {
				if !el.IsElement() || !selectorMatches(sel, el) {
					continue
				}
				matched = true
				var decls []*douceurcss.Declaration
				for _, d := range rule.Declarations {
					if !direct[el][d.Property] {
						decls = append(decls, d)
					}
				}
				applyDeclarations(el, decls, opts, &warnings)
			}
			if !matched && !opts.SkipUnresolvedClasses {
				warnings = append(warnings, Warning{Kind: WarnUnresolvedClass, Context: sel})
			}
		}
	}

	// style="" attribute, applied last so it wins over both stylesheet
	// rules and direct presentation attributes.
	for _, el := range append([]*svgdom.Node{doc.Root}, doc.Root.Descendants()...) {
		if !el.IsElement() {
			continue
		}
		raw, ok := el.Attrs.GetByID(ident.AttributeStyle)
		if !ok {
			continue
		}
		decls, err := douceurparser.ParseDeclarations(raw.String())
		if err != nil {
			warnings = append(warnings, Warning{Kind: WarnInvalidCSS, Context: "style", Detail: err.Error()})
			continue
		}
		applyDeclarations(el, decls, opts, &warnings)
	}

	return warnings
}

func styleElementText(style *svgdom.Node) string {
	var b strings.Builder
	for c := style.FirstChild; c != nil; c = c.NextSibling {
		if c.Kind == svgdom.KindText {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

// applyDeclarations sets each CSS declaration's property as the matching
// presentation attribute on el, typed the same way the attribute would be
// if it had appeared directly in the markup.
func applyDeclarations(el *svgdom.Node, decls []*douceurcss.Declaration, opts svgdom.ParseOptions, warnings *[]Warning) {
	for _, d := range decls {
		attr, ok := ident.ParseAttributeID(d.Property)
		if !ok || !ident.IsPresentation(attr) {
			continue
		}
		v, err := typeAttributeValue(attr, d.Value)
		if err != nil {
			*warnings = append(*warnings, Warning{Kind: WarnInvalidAttributeValue, Context: d.Property, Detail: err.Error()})
			if !opts.SkipInvalidAttributes {
				continue
			}
			continue
		}
		el.Attrs.Set(svgdom.NewQName("", d.Property), v)
	}
}

// selectorMatches implements the practical subset of CSS selectors SVG
// stylesheets actually use: an optional type selector, any number of
// .class/#id qualifiers on the rightmost compound, and a descendant
// combinator (space-separated compounds, each of which must match some
// strict ancestor in order). Pseudo-classes, attribute selectors, and
// sibling/child combinators are not supported.
func selectorMatches(sel string, el *svgdom.Node) bool {
	parts := strings.Fields(sel)
	if len(parts) == 0 {
		return false
	}
	if !compoundMatches(parts[len(parts)-1], el) {
		return false
	}
	cur := el.Parent
	for i := len(parts) - 2; i >= 0; i-- {
		found := false
		for a := cur; a != nil; a = a.Parent {
			if compoundMatches(parts[i], a) {
				cur = a.Parent
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func compoundMatches(compound string, el *svgdom.Node) bool {
	if compound == "*" {
		return true
	}
	tag, rest := splitTag(compound)
	if tag != "" && tag != "*" && tag != el.TagName {
		return false
	}
	for len(rest) > 0 {
		switch rest[0] {
		case '#':
			rest = rest[1:]
			end := qualifierEnd(rest)
			id := rest[:end]
			rest = rest[end:]
			v, ok := el.Attrs.GetByID(ident.AttributeId)
			if !ok || v.String() != id {
				return false
			}
		case '.':
			rest = rest[1:]
			end := qualifierEnd(rest)
			class := rest[:end]
			rest = rest[end:]
			if !hasClass(el, class) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func splitTag(compound string) (tag, rest string) {
	end := qualifierEnd(compound)
	return compound[:end], compound[end:]
}

func qualifierEnd(s string) int {
	for i, c := range s {
		if c == '#' || c == '.' {
			return i
		}
	}
	return len(s)
}

func hasClass(el *svgdom.Node, class string) bool {
	v, ok := el.Attrs.GetByID(ident.AttributeClass)
	if !ok {
		return false
	}
	for _, c := range strings.Fields(v.String()) {
		if c == class {
			return true
		}
	}
	return false
}

