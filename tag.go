package xmlite

import (
	"slices"
	"strings"
)

// TagKind classifies a structural tag.
type TagKind uint8

const (
	TagOpening     TagKind = iota // <name attr="value">
	TagClosing                    // </name>
	TagSelfClosing                // <name attr="value"/>
	TagDeclaration                // <?name attr="value"?>
	TagText                       // character data between tags
)

var tagKindNames = map[TagKind]string{
	TagOpening:     "opening",
	TagClosing:     "closing",
	TagSelfClosing: "self-closing",
	TagDeclaration: "declaration",
	TagText:        "text",
}

func (k TagKind) String() string {
	if name, ok := tagKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Tag is one structural unit of markup: an element marker, a
// declaration, or a run of text.
//
// Name and attributes are set for element markers and declarations,
// Text only for text tags. Attribute values are raw: quotes are
// stripped but character references pass through undecoded. Duplicate
// attribute names keep the last value.
type Tag struct {
	Kind  TagKind
	Name  string
	Attrs map[string]string // nil when the tag has no attributes
	Text  string
}

// Attr returns the value of the named attribute. A boolean-style
// attribute written without a value yields "".
func (t Tag) Attr(key string) (string, bool) {
	value, ok := t.Attrs[key]
	return value, ok
}

// Content returns the tag's character data. It reports false for
// anything but a text tag.
func (t Tag) Content() (string, bool) {
	if t.Kind != TagText {
		return "", false
	}
	return t.Text, true
}

// IsOpening reports whether the tag opens an element.
func (t Tag) IsOpening() bool { return t.Kind == TagOpening }

// IsClosing reports whether the tag closes an element.
func (t Tag) IsClosing() bool { return t.Kind == TagClosing }

// IsSelfClosing reports whether the tag is a self-closing element.
func (t Tag) IsSelfClosing() bool { return t.Kind == TagSelfClosing }

// IsDeclaration reports whether the tag is a <?...?> declaration.
func (t Tag) IsDeclaration() bool { return t.Kind == TagDeclaration }

// IsText reports whether the tag is a run of character data.
func (t Tag) IsText() bool { return t.Kind == TagText }

// String renders the tag canonically: attributes in lexicographic key
// order, values double-quoted and not escaped.
func (t Tag) String() string {
	var sb strings.Builder
	switch t.Kind {
	case TagText:
		sb.WriteString(t.Text)
	case TagClosing:
		sb.WriteString("</")
		sb.WriteString(t.Name)
		sb.WriteByte('>')
	case TagDeclaration:
		sb.WriteString("<?")
		sb.WriteString(t.Name)
		writeAttrs(&sb, t.Attrs)
		sb.WriteString("?>")
	case TagSelfClosing:
		sb.WriteByte('<')
		sb.WriteString(t.Name)
		writeAttrs(&sb, t.Attrs)
		sb.WriteString("/>")
	default:
		sb.WriteByte('<')
		sb.WriteString(t.Name)
		writeAttrs(&sb, t.Attrs)
		sb.WriteByte('>')
	}
	return sb.String()
}

// writeAttrs renders attributes sorted by key, so that output does not
// depend on map iteration order.
func writeAttrs(sb *strings.Builder, attrs map[string]string) {
	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		sb.WriteByte(' ')
		sb.WriteString(key)
		sb.WriteString(`="`)
		sb.WriteString(attrs[key])
		sb.WriteByte('"')
	}
}
