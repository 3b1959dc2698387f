package xmlite

// Tags assembles lexer tokens into structural tags, one per call.
//
// Malformed token sequences do not end the stream: the assembler
// records a SyntaxError, logs a warning and resynchronizes at the next
// open bracket or text run, so a next tag is always produced if one
// exists after the bad input.
type Tags struct {
	lexer  *Lexer
	diags  []*SyntaxError
	peeked *Tag
}

// NewTags creates a tag stream over src.
func NewTags(src string) *Tags {
	return &Tags{lexer: NewLexer(src)}
}

// Position reports the current lexer position.
func (t *Tags) Position() Position {
	return t.lexer.Position()
}

// Diagnostics returns the syntax errors recovered from so far, in
// encounter order. A parse that produced a plausible tree can still
// have recovered from garbage, so callers interested in strictness
// must inspect the list.
func (t *Tags) Diagnostics() []*SyntaxError {
	return t.diags
}

// Peek returns the next tag without consuming it. Peeking is
// idempotent: repeated calls return the same tag until Next is called.
func (t *Tags) Peek() (Tag, bool) {
	if t.peeked == nil {
		tag, ok := t.Next()
		if !ok {
			return Tag{}, false
		}
		t.peeked = &tag
	}
	return *t.peeked, true
}

// Next returns the next tag, or the zero tag and false at end of
// input.
func (t *Tags) Next() (Tag, bool) {
	if t.peeked != nil {
		tag := *t.peeked
		t.peeked = nil
		return tag, true
	}
	for {
		token, ok := t.lexer.Peek()
		if !ok {
			return Tag{}, false
		}
		if token.Kind == TokenText {
			t.lexer.Next()
			return Tag{Kind: TagText, Text: token.Text}, true
		}
		if tag, ok := t.assemble(); ok {
			return tag, true
		}
		// assemble recovered or ran out of input; retry from the
		// synchronization point.
	}
}

// assemble parses one open bracket, name, attribute list and close
// bracket into a tag. It reports false after recovering from a
// malformed sequence, or when the input ends mid-tag; an incomplete
// trailing tag is not an error at this level.
func (t *Tags) assemble() (Tag, bool) {
	open, ok := t.expect(TokenOpen)
	if !ok {
		return Tag{}, false
	}
	name, ok := t.expect(TokenName)
	if !ok {
		return Tag{}, false
	}

	var attrs map[string]string
	for {
		token, ok := t.lexer.Peek()
		if !ok {
			return Tag{}, false
		}
		if token.Kind == TokenClose {
			break
		}
		key, ok := t.expect(TokenName)
		if !ok {
			return Tag{}, false
		}
		// A name with no "=" is a boolean-style attribute.
		var value string
		if eq, ok := t.lexer.Peek(); ok && eq.Kind == TokenEq {
			t.lexer.Next()
			v, ok := t.lexer.Next()
			if !ok {
				return Tag{}, false
			}
			if v.Kind != TokenValue {
				t.recover(v)
				return Tag{}, false
			}
			value = v.Text
		}
		if attrs == nil {
			attrs = make(map[string]string)
		}
		attrs[key.Text] = value
	}

	end, ok := t.expect(TokenClose)
	if !ok {
		return Tag{}, false
	}

	switch {
	case open.Text == "<" && end.Text == ">":
		return Tag{Kind: TagOpening, Name: name.Text, Attrs: attrs}, true
	case open.Text == "<" && end.Text == "/>":
		return Tag{Kind: TagSelfClosing, Name: name.Text, Attrs: attrs}, true
	case open.Text == "</" && end.Text == ">":
		return Tag{Kind: TagClosing, Name: name.Text, Attrs: attrs}, true
	case open.Text == "<?" && end.Text == "?>":
		return Tag{Kind: TagDeclaration, Name: name.Text, Attrs: attrs}, true
	default:
		// Bracket pair does not match, e.g. "<" closed by "?>".
		t.recover(end)
		return Tag{}, false
	}
}

// expect consumes the next token when it has the wanted kind and
// recovers otherwise. End of input reports false without a diagnostic.
func (t *Tags) expect(kind TokenKind) (Token, bool) {
	token, ok := t.lexer.Peek()
	if !ok {
		return Token{}, false
	}
	if token.Kind != kind {
		t.recover(token)
		return Token{}, false
	}
	t.lexer.Next()
	return token, true
}

// recover records the offending token as a diagnostic and discards
// tokens until the next synchronization point, an open bracket or a
// text run. The offending token itself is kept when it is already a
// synchronization point.
func (t *Tags) recover(offending Token) {
	err := &SyntaxError{Token: offending, Pos: t.lexer.Position()}
	t.diags = append(t.diags, err)
	log.Warningf("recovered from an error: %s", err)

	for {
		token, ok := t.lexer.Peek()
		if !ok || token.Kind == TokenOpen || token.Kind == TokenText {
			return
		}
		t.lexer.Next()
	}
}
