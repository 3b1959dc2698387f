package schema

import (
	"fmt"
	"strings"

	"github.com/vodofrede/xmlite"
)

// Protocol is a Wayland protocol definition (simplified).
type Protocol struct {
	Name       string      `xml:"name,attr"`
	Copyright  string      `xml:"copyright"`
	Interfaces []Interface `xml:"interface"`
}

func (p *Protocol) UnmarshalNode(node *xmlite.Node) error {
	p.Name, _ = node.Attr("name")

	for _, child := range node.Children {
		switch child.Name {
		case "copyright":
			p.Copyright = text(child)
		case "interface":
			var iface Interface
			if err := iface.UnmarshalNode(child); err != nil {
				return fmt.Errorf("interface: %w", err)
			}
			p.Interfaces = append(p.Interfaces, iface)
		}
	}
	return nil
}

// text concatenates the direct text children of an element, matching
// what encoding/xml collects as chardata for leaf elements.
func text(node *xmlite.Node) string {
	var sb strings.Builder
	for _, child := range node.Children {
		if content, ok := child.Content(); ok {
			sb.WriteString(content)
		}
	}
	return sb.String()
}
