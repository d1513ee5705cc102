package parser

import (
	"io"
	"strconv"
	"strings"

	svgdom "github.com/RazrFalcon/svgdom"
	"github.com/tdewolff/parse/v2/xml"
)

// maxEntityDepth bounds both string-entity recursion (expandEntities) and
// element-fragment entity recursion (parseEntityFragment): SVG documents
// rarely nest entities, and an unbounded expansion is a classic XML
// billion-laughs vector this module has no reason to accept.
const maxEntityDepth = 4

// decodeEntities expands the five predefined XML entities, numeric
// character references ("&#39;", "&#x27;"), and any custom DOCTYPE
// <!ENTITY> declaration whose value is itself plain text, into raw's flat
// string form. Attribute values run through this: a
// custom entity whose value is markup (element-valued, spec.md §4.E step 2)
// has no flat-string form, so it is rejected as ErrUnsupportedEntity/
// WarnUnsupportedEntity rather than silently stringified. An unknown entity
// name gets the same treatment. Both are gated by
// ParseOptions.SkipInvalidAttributes, by analogy to how the rest of the
// typed-attribute pipeline treats a recoverable parse failure.
func decodeEntities(raw string, custom map[string]string, opts svgdom.ParseOptions, warnings *[]Warning) (string, error) {
	if !strings.ContainsRune(raw, '&') {
		return raw, nil
	}
	var b strings.Builder
	i := 0
	for i < len(raw) {
		if raw[i] != '&' {
			b.WriteByte(raw[i])
			i++
			continue
		}
		end := strings.IndexByte(raw[i:], ';')
		if end < 0 {
			b.WriteByte(raw[i])
			i++
			continue
		}
		name := raw[i+1 : i+end]
		switch name {
		case "amp":
			b.WriteByte('&')
			i += end + 1
			continue
		case "lt":
			b.WriteByte('<')
			i += end + 1
			continue
		case "gt":
			b.WriteByte('>')
			i += end + 1
			continue
		case "quot":
			b.WriteByte('"')
			i += end + 1
			continue
		case "apos":
			b.WriteByte('\'')
			i += end + 1
			continue
		}
		if r, ok := decodeNumericRef(name); ok {
			b.WriteRune(r)
			i += end + 1
			continue
		}
		val, ok := custom[name]
		if !ok {
			if err := reportUnsupportedEntity(warnings, opts, name); err != nil {
				return "", err
			}
			b.WriteString(raw[i : i+end+1])
			i += end + 1
			continue
		}
		if isElementFragment(val) {
			if err := reportUnsupportedEntity(warnings, opts, name); err != nil {
				return "", err
			}
			b.WriteString(raw[i : i+end+1])
			i += end + 1
			continue
		}
		b.WriteString(val)
		i += end + 1
	}
	return expandEntities(b.String(), custom), nil
}

// decodeNumericRef decodes "#39" or "#x27"-style numeric character
// references (the leading '&' and trailing ';' already stripped).
func decodeNumericRef(name string) (rune, bool) {
	if strings.HasPrefix(name, "#x") || strings.HasPrefix(name, "#X") {
		n, err := strconv.ParseInt(name[2:], 16, 32)
		if err != nil {
			return 0, false
		}
		return rune(n), true
	}
	if strings.HasPrefix(name, "#") {
		n, err := strconv.ParseInt(name[1:], 10, 32)
		if err != nil {
			return 0, false
		}
		return rune(n), true
	}
	return 0, false
}

// isElementFragment reports whether a <!ENTITY> replacement text is markup
// (spec.md §4.E step 2's "&R; expands to a <rect> child" scenario) rather
// than plain text.
func isElementFragment(val string) bool {
	return strings.HasPrefix(strings.TrimSpace(val), "<")
}

// reportUnsupportedEntity records name as an unsupported entity reference.
// It returns a non-nil *svgdom.Error when ParseOptions.SkipInvalidAttributes
// is false, which callers should propagate to abort the parse; otherwise it
// returns nil and the caller keeps going, leaving the literal "&name;" text
// in place of a substitution (except for an element-valued entity nested
// past maxEntityDepth, which appendTextWithEntities drops).
func reportUnsupportedEntity(warnings *[]Warning, opts svgdom.ParseOptions, name string) error {
	*warnings = append(*warnings, Warning{Kind: WarnUnsupportedEntity, Context: name})
	if opts.SkipInvalidAttributes {
		return nil
	}
	return &svgdom.Error{Kind: svgdom.ErrUnsupportedEntity, Offset: -1, Context: name}
}

// appendTextWithEntities decodes raw the way decodeEntities does, but for a
// text/CDATA child of host rather than an attribute value: a custom entity
// whose replacement text is element-valued markup is legal here (it is not
// inside an attribute), so instead of rejecting it, it is re-tokenized and
// appended as host's child, splitting any surrounding plain text into its
// own Text node (spec.md §4.E step 2, §8 scenario #1: "&R;" expanding to a
// <rect> child).
func appendTextWithEntities(doc *svgdom.Document, host *svgdom.Node, raw string, opts svgdom.ParseOptions, warnings *[]Warning, depth int) error {
	if !strings.ContainsRune(raw, '&') {
		svgdom.AppendChild(host, svgdom.NewText(raw))
		return nil
	}
	var buf strings.Builder
	flush := func() {
		if buf.Len() > 0 {
			svgdom.AppendChild(host, svgdom.NewText(buf.String()))
			buf.Reset()
		}
	}
	i := 0
	for i < len(raw) {
		if raw[i] != '&' {
			buf.WriteByte(raw[i])
			i++
			continue
		}
		end := strings.IndexByte(raw[i:], ';')
		if end < 0 {
			buf.WriteByte(raw[i])
			i++
			continue
		}
		name := raw[i+1 : i+end]
		switch name {
		case "amp":
			buf.WriteByte('&')
			i += end + 1
			continue
		case "lt":
			buf.WriteByte('<')
			i += end + 1
			continue
		case "gt":
			buf.WriteByte('>')
			i += end + 1
			continue
		case "quot":
			buf.WriteByte('"')
			i += end + 1
			continue
		case "apos":
			buf.WriteByte('\'')
			i += end + 1
			continue
		}
		if r, ok := decodeNumericRef(name); ok {
			buf.WriteRune(r)
			i += end + 1
			continue
		}
		val, ok := doc.Entity(name)
		if !ok {
			if err := reportUnsupportedEntity(warnings, opts, name); err != nil {
				return err
			}
			buf.WriteString(raw[i : i+end+1])
			i += end + 1
			continue
		}
		if isElementFragment(val) {
			flush()
			if depth >= maxEntityDepth {
				if err := reportUnsupportedEntity(warnings, opts, name); err != nil {
					return err
				}
				i += end + 1
				continue
			}
			if err := parseEntityFragment(doc, host, val, opts, warnings, depth+1); err != nil {
				return err
			}
			i += end + 1
			continue
		}
		buf.WriteString(val)
		i += end + 1
	}
	flush()
	return nil
}

// parseEntityFragment re-tokenizes an element-valued <!ENTITY> replacement
// text as SVG markup, appending the resulting node(s) as children of host.
// It runs the same typed-attribute and entity-decoding logic the main
// Parse loop does, so a fragment like `<rect x="1" fill="red"/>` ends up
// with exactly the typed attributes a literal occurrence would have.
func parseEntityFragment(doc *svgdom.Document, host *svgdom.Node, frag string, opts svgdom.ParseOptions, warnings *[]Warning, depth int) error {
	tb := newTokenSource(xml.NewTokenizer(strings.NewReader(frag)))
	stack := []*svgdom.Node{host}
	top := func() *svgdom.Node { return stack[len(stack)-1] }
	var pendingAttrsOwner *svgdom.Node

	for {
		t := tb.shift()
		switch t.tt {
		case xml.ErrorToken:
			if err := tb.err(); err != nil && err != io.EOF {
				return &svgdom.Error{Kind: svgdom.ErrXML, Offset: -1, Context: "entity fragment", Cause: err}
			}
			return nil

		case xml.CommentToken:
			svgdom.AppendChild(top(), svgdom.NewComment(string(t.data)))

		case xml.StartTagToken:
			n := svgdom.NewElement(string(t.data))
			svgdom.AppendChild(top(), n)
			stack = append(stack, n)
			pendingAttrsOwner = n

		case xml.AttributeToken:
			if pendingAttrsOwner == nil || len(t.attrVal) < 2 {
				continue
			}
			name := string(t.data)
			raw, err := decodeEntities(string(t.attrVal[1:len(t.attrVal)-1]), doc.EntitiesSnapshot(), opts, warnings)
			if err != nil {
				return err
			}
			setTypedAttribute(doc, pendingAttrsOwner, name, raw, opts, warnings)

		case xml.StartTagCloseToken:
			pendingAttrsOwner = nil

		case xml.StartTagCloseVoidToken:
			pendingAttrsOwner = nil
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}

		case xml.EndTagToken:
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}

		case xml.TextToken, xml.CDATAToken:
			if err := appendTextWithEntities(doc, top(), string(t.data), opts, warnings, depth); err != nil {
				return err
			}
		}
	}
}

// harvestEntities scans a DOCTYPE token's raw content for its internal
// subset's <!ENTITY name "value"> declarations. The xml tokenizer hands
// back the whole "svg PUBLIC ... [ ... ]" blob as one token, so this does
// its own small scan rather than re-tokenizing it as XML.
func harvestEntities(doctype []byte) map[string]string {
	out := map[string]string{}
	s := string(doctype)
	for {
		i := strings.Index(s, "<!ENTITY")
		if i < 0 {
			break
		}
		s = s[i+len("<!ENTITY"):]
		s = strings.TrimLeft(s, " \t\r\n")
		j := 0
		for j < len(s) && !isSpace(s[j]) {
			j++
		}
		name := s[:j]
		s = strings.TrimLeft(s[j:], " \t\r\n")
		if len(s) == 0 || (s[0] != '"' && s[0] != '\'') {
			continue
		}
		quote := s[0]
		end := strings.IndexByte(s[1:], quote)
		if end < 0 {
			break
		}
		out[name] = s[1 : 1+end]
		s = s[1+end+1:]
	}
	return out
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\r' || c == '\n' }

// expandEntities replaces every "&name;" in text with entities' definition
// for name, recursively up to maxEntityDepth. Only reached for plain-text
// custom entity values - element-valued ones are handled by
// parseEntityFragment instead.
func expandEntities(text string, entities map[string]string) string {
	if len(entities) == 0 || !strings.ContainsRune(text, '&') {
		return text
	}
	for depth := 0; depth < maxEntityDepth; depth++ {
		changed := false
		var b strings.Builder
		i := 0
		for i < len(text) {
			if text[i] != '&' {
				b.WriteByte(text[i])
				i++
				continue
			}
			end := strings.IndexByte(text[i:], ';')
			if end < 0 {
				b.WriteString(text[i:])
				break
			}
			name := text[i+1 : i+end]
			if val, ok := entities[name]; ok && !isElementFragment(val) {
				b.WriteString(val)
				changed = true
				i += end + 1
				continue
			}
			b.WriteByte(text[i])
			i++
		}
		text = b.String()
		if !changed {
			break
		}
	}
	return text
}
