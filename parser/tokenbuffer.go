package parser

import (
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
)

// token bundles one tokenizer event with its (already-unwrapped) attribute
// value, mirroring how tdewolff's own minify/xml package buffers tokens.
type token struct {
	tt      xml.TokenType
	data    []byte
	attrVal []byte
}

// tokenSource wraps an xml.Tokenizer, copying out the byte slices it hands
// back (valid only until the tokenizer's next call) into an owned token
// value. The tree builder and the entity-fragment re-tokenizer both
// consume tokens strictly one at a time - nothing in this package makes a
// decision by looking past the current token - so unlike tdewolff's own
// TokenBuffer this does no ring-buffering or lookahead.
type tokenSource struct {
	z *xml.Tokenizer
}

func newTokenSource(z *xml.Tokenizer) *tokenSource {
	return &tokenSource{z: z}
}

// shift consumes and returns the next token.
func (s *tokenSource) shift() *token {
	tt, data := s.z.Next()
	if !s.z.IsEOF() {
		data = parse.Copy(data)
	}
	var attrVal []byte
	if tt == xml.AttributeToken {
		attrVal = s.z.AttrVal()
		if !s.z.IsEOF() {
			attrVal = parse.Copy(attrVal)
		}
	}
	return &token{tt, data, attrVal}
}

func (s *tokenSource) err() error { return s.z.Err() }
