package xmlite

import "fmt"

// Position is a location in the source text, used for diagnostics.
// Lines and columns are 1-indexed; columns count bytes, not runes.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// TokenKind classifies a lexed token.
type TokenKind uint8

const (
	TokenText    TokenKind = iota // character data between tags
	TokenOpen                     // "<", "</" or "<?"
	TokenClose                    // ">", "/>" or "?>"
	TokenName                     // tag or attribute name
	TokenEq                       // "="
	TokenValue                    // quoted attribute value, quotes stripped
	TokenIllegal                  // bytes that fit no other kind
)

var tokenKindNames = map[TokenKind]string{
	TokenText:    "text",
	TokenOpen:    "open",
	TokenClose:   "close",
	TokenName:    "name",
	TokenEq:      "eq",
	TokenValue:   "value",
	TokenIllegal: "illegal",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Token is a single lexical unit, one of these following:
//   - <, </ or <? starting a tag
//   - a tag or attribute name such as interface
//   - = between an attribute name and its value
//   - an attribute value such as "1.0", delimiting quotes stripped
//   - >, /> or ?> ending a tag
//   - character data between tags
//
// Text aliases the source string the token was lexed from; no bytes
// are copied. Comments never appear as tokens, the lexer discards
// them.
type Token struct {
	Text string
	Kind TokenKind
}
