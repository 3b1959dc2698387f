package xmlite

import "strings"

// Lexer splits XML text into classified tokens.
//
// It is a two-state machine: between tags any run of characters up to
// the next '<' is a single text token, inside a tag the open bracket,
// names, '=', quoted values and the closing bracket come out as
// separate tokens. Runs of whitespace between tags and comments are
// consumed without producing a token.
type Lexer struct {
	src    string
	line   int
	column int
	inTag  bool
	peeked *Token
}

// NewLexer creates a lexer over src.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src, line: 1, column: 1}
}

// Position reports the line and column of the next unconsumed byte.
func (l *Lexer) Position() Position {
	return Position{Line: l.line, Column: l.column}
}

// Peek returns the next token without consuming it. Peeking is
// idempotent: repeated calls return the same token until Next is
// called.
func (l *Lexer) Peek() (Token, bool) {
	if l.peeked == nil {
		token, ok := l.Next()
		if !ok {
			return Token{}, false
		}
		l.peeked = &token
	}
	return *l.peeked, true
}

// Next returns the next token, or the zero token and false at end of
// input.
func (l *Lexer) Next() (Token, bool) {
	if l.peeked != nil {
		token := *l.peeked
		l.peeked = nil
		return token, true
	}
	for len(l.src) > 0 {
		if l.inTag {
			l.take(l.scan(isSpace))
			if len(l.src) == 0 {
				break
			}
		}
		before := len(l.src)
		token, emit := l.next()
		if len(l.src) >= before {
			// Every call must consume input, otherwise callers spin.
			panic("xmlite: lexer failed to advance")
		}
		if emit {
			return token, true
		}
	}
	return Token{}, false
}

func (l *Lexer) next() (Token, bool) {
	if !l.inTag {
		return l.content()
	}
	switch c := l.src[0]; {
	case c == '<':
		return l.bracket()
	case c == '>' || c == '/' || c == '?':
		if text, ok := l.eat("?>", "/>", ">"); ok {
			l.inTag = false
			return Token{Text: text, Kind: TokenClose}, true
		}
		return l.illegal()
	case c == '=':
		return Token{Text: l.take(1), Kind: TokenEq}, true
	case c == '"' || c == '\'':
		return l.value(c)
	case isName(c):
		return Token{Text: l.take(l.scan(isName)), Kind: TokenName}, true
	default:
		return l.illegal()
	}
}

// content lexes between tags: a bracket, or a text run ending at the
// next '<'. Runs consisting entirely of whitespace separate tags in
// indented documents and are dropped.
func (l *Lexer) content() (Token, bool) {
	if l.src[0] == '<' {
		return l.bracket()
	}
	text := l.take(l.scan(func(c byte) bool { return c != '<' }))
	if strings.TrimSpace(text) == "" {
		return Token{}, false
	}
	return Token{Text: text, Kind: TokenText}, true
}

// bracket lexes "<?", "</" or "<", switching to tag state, or swallows
// a comment. An unterminated comment consumes the rest of the input.
func (l *Lexer) bracket() (Token, bool) {
	if strings.HasPrefix(l.src, "<!--") {
		if end := strings.Index(l.src, "-->"); end >= 0 {
			l.take(end + len("-->"))
		} else {
			l.take(len(l.src))
		}
		return Token{}, false
	}
	text, _ := l.eat("<?", "</", "<")
	l.inTag = true
	return Token{Text: text, Kind: TokenOpen}, true
}

// value lexes a quoted attribute value. The delimiter must match on
// both ends and the quotes are stripped from the token text. A value
// missing its closing quote turns the rest of the input into one
// illegal token.
func (l *Lexer) value(quote byte) (Token, bool) {
	end := strings.IndexByte(l.src[1:], quote)
	if end < 0 {
		return Token{Text: l.take(len(l.src)), Kind: TokenIllegal}, true
	}
	l.take(1)
	text := l.take(end)
	l.take(1)
	return Token{Text: text, Kind: TokenValue}, true
}

// illegal consumes a never-empty run of bytes that fit no other token
// kind, so that malformed input still moves the lexer forward.
func (l *Lexer) illegal() (Token, bool) {
	n := 1
	for n < len(l.src) && !isSpace(l.src[n]) && !isName(l.src[n]) && !isDelim(l.src[n]) {
		n++
	}
	return Token{Text: l.take(n), Kind: TokenIllegal}, true
}

// take consumes n bytes, advancing the line and column counters.
func (l *Lexer) take(n int) string {
	text := l.src[:n]
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			l.line, l.column = l.line+1, 1
		} else {
			l.column++
		}
	}
	l.src = l.src[n:]
	return text
}

// scan returns the length of the leading run of bytes satisfying p.
func (l *Lexer) scan(p func(byte) bool) int {
	var n int
	for n < len(l.src) && p(l.src[n]) {
		n++
	}
	return n
}

// eat consumes the first matching prefix, trying each in order.
func (l *Lexer) eat(prefixes ...string) (string, bool) {
	for _, prefix := range prefixes {
		if strings.HasPrefix(l.src, prefix) {
			return l.take(len(prefix)), true
		}
	}
	return "", false
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isName(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' || c == '_' || c == ':' || c == '-'
}

func isDelim(c byte) bool {
	return strings.IndexByte(`<>/?="'`, c) >= 0
}
