package xmlite

import "fmt"

type errorString string

func (e errorString) Error() string { return string(e) }

const (
	// ErrUnexpectedEOF means the input ended while a structural
	// expectation, such as a matching closing tag, was still pending.
	ErrUnexpectedEOF = errorString("unexpected end of input")
	// ErrNoRoot means the input contained no root element.
	ErrNoRoot = errorString("document has no root element")
	// ErrMaxDepth means element nesting exceeded the configured bound.
	ErrMaxDepth = errorString("maximum nesting depth exceeded")
)

// SyntaxError records a malformed token sequence the tag assembler
// recovered from. Syntax errors are never fatal: they accumulate as
// diagnostics while the tag stream resynchronizes and continues.
type SyntaxError struct {
	Token Token
	Pos   Position
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: unexpected %s token %q", e.Pos, e.Token.Kind, e.Token.Text)
}

// MismatchError reports a closing tag that does not match the element
// being built. It is fatal for the parse: nesting is never repaired.
type MismatchError struct {
	Expected string
	Found    string
	Pos      Position
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: expected %q, found closing tag %q", e.Pos, e.Expected, e.Found)
}
