package xmlite

import (
	"fmt"
	"strings"
)

// Node is a single node of a document tree: an element when Name is
// non-empty, otherwise a run of text.
//
// Nodes built by Parse alias the source string; replacing an attribute
// or text value stores a new string at that node only and never
// affects siblings or ancestors.
type Node struct {
	Name     string
	Attrs    map[string]string // nil when the element has no attributes
	Children []*Node
	Text     string
}

// Element creates an element node with the given name, for building
// trees programmatically rather than by parsing.
func Element(name string) *Node {
	return &Node{Name: name}
}

// Text creates a text node.
func Text(text string) *Node {
	return &Node{Text: text}
}

// IsElement reports whether the node is an element.
func (n *Node) IsElement() bool { return n.Name != "" }

// IsText reports whether the node is a text node.
func (n *Node) IsText() bool { return n.Name == "" }

// Attr returns the value of the named attribute.
func (n *Node) Attr(key string) (string, bool) {
	value, ok := n.Attrs[key]
	return value, ok
}

// Content returns the node's text. It reports false for elements.
func (n *Node) Content() (string, bool) {
	if n.IsElement() {
		return "", false
	}
	return n.Text, true
}

// SetAttr sets the named attribute, replacing any previous value.
// Text nodes are left unchanged.
func (n *Node) SetAttr(key, value string) {
	if n.IsText() {
		return
	}
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[key] = value
}

// AppendChild appends a child node. Text nodes are left unchanged.
func (n *Node) AppendChild(child *Node) {
	if n.IsText() {
		return
	}
	n.Children = append(n.Children, child)
}

// WithAttr sets the named attribute and returns the node, for
// chained construction.
func (n *Node) WithAttr(key, value string) *Node {
	n.SetAttr(key, value)
	return n
}

// WithChild appends a child node and returns the node, for chained
// construction.
func (n *Node) WithChild(child *Node) *Node {
	n.AppendChild(child)
	return n
}

// Descendants returns an iterator over the node's descendants in
// pre-order, depth-first, excluding the node itself. Each call starts
// a fresh pass; mutating the tree mid-pass is not supported.
func (n *Node) Descendants() *Nodes {
	stack := make([]*Node, len(n.Children))
	for i, child := range n.Children {
		stack[len(stack)-1-i] = child
	}
	return &Nodes{stack: stack}
}

// Nodes is a single pass over a subtree.
type Nodes struct {
	stack []*Node
}

// Next returns the next node, or nil and false when the pass is done.
func (it *Nodes) Next() (*Node, bool) {
	if len(it.stack) == 0 {
		return nil, false
	}
	current := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	for i := len(current.Children) - 1; i >= 0; i-- {
		it.stack = append(it.stack, current.Children[i])
	}
	return current, true
}

// String renders the subtree canonically: elements without children
// self-close, attributes come out in lexicographic key order with
// double-quoted values, and nothing is escaped. Text or attribute
// values containing '"' or '<' therefore do not round-trip.
func (n *Node) String() string {
	var sb strings.Builder
	n.render(&sb)
	return sb.String()
}

func (n *Node) render(sb *strings.Builder) {
	if n.IsText() {
		sb.WriteString(n.Text)
		return
	}
	sb.WriteByte('<')
	sb.WriteString(n.Name)
	writeAttrs(sb, n.Attrs)
	if len(n.Children) == 0 {
		sb.WriteString("/>")
		return
	}
	sb.WriteByte('>')
	for _, child := range n.Children {
		child.render(sb)
	}
	sb.WriteString("</")
	sb.WriteString(n.Name)
	sb.WriteByte('>')
}

// buildElement consumes tags recursively: declarations are skipped,
// text becomes a text node, an opening tag collects children until its
// exact, case-sensitive closing tag arrives. Self-closing tags take no
// children regardless of what follows them.
func buildElement(tags *Tags, depth, maxDepth int) (*Node, error) {
	if maxDepth > 0 && depth > maxDepth {
		return nil, fmt.Errorf("%s: %w", tags.Position(), ErrMaxDepth)
	}

	tag, ok := tags.Next()
	if !ok {
		return nil, fmt.Errorf("%s: %w", tags.Position(), ErrUnexpectedEOF)
	}
	switch tag.Kind {
	case TagDeclaration:
		return buildElement(tags, depth, maxDepth)
	case TagText:
		return Text(tag.Text), nil
	case TagClosing:
		return nil, &MismatchError{Expected: "any opening tag", Found: tag.Name, Pos: tags.Position()}
	}

	node := &Node{Name: tag.Name, Attrs: tag.Attrs}
	if tag.Kind == TagSelfClosing {
		return node, nil
	}
	for {
		next, ok := tags.Peek()
		if !ok {
			return nil, fmt.Errorf("%s: element %q not closed: %w", tags.Position(), node.Name, ErrUnexpectedEOF)
		}
		if next.IsClosing() {
			if next.Name != node.Name {
				return nil, &MismatchError{Expected: node.Name, Found: next.Name, Pos: tags.Position()}
			}
			tags.Next()
			return node, nil
		}
		child, err := buildElement(tags, depth+1, maxDepth)
		if err != nil {
			return nil, err
		}
		node.AppendChild(child)
	}
}
