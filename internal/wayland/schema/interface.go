package schema

import (
	"fmt"
	"strconv"

	"github.com/vodofrede/xmlite"
)

type Interface struct {
	Name        string      `xml:"name,attr"`
	Version     int         `xml:"version,attr"`
	Description Description `xml:"description"`
	Requests    []Request   `xml:"request"`
	Events      []Event     `xml:"event"`
	Enums       []Enum      `xml:"enum"`
}

func (i *Interface) UnmarshalNode(node *xmlite.Node) error {
	var err error
	i.Name, _ = node.Attr("name")
	if version, ok := node.Attr("version"); ok {
		i.Version, err = strconv.Atoi(version)
		if err != nil {
			return err
		}
	}

	for _, child := range node.Children {
		switch child.Name {
		case "description":
			i.Description.UnmarshalNode(child)
		case "request":
			var request Request
			if err := request.UnmarshalNode(child); err != nil {
				return fmt.Errorf("request: %w", err)
			}
			i.Requests = append(i.Requests, request)
		case "event":
			var event Event
			if err := event.UnmarshalNode(child); err != nil {
				return fmt.Errorf("event: %w", err)
			}
			i.Events = append(i.Events, event)
		case "enum":
			var enum Enum
			if err := enum.UnmarshalNode(child); err != nil {
				return fmt.Errorf("enum: %w", err)
			}
			i.Enums = append(i.Enums, enum)
		}
	}
	return nil
}

type Description struct {
	Summary string `xml:"summary,attr"`
	Text    string `xml:",chardata"`
}

func (d *Description) UnmarshalNode(node *xmlite.Node) {
	d.Summary, _ = node.Attr("summary")
	d.Text = text(node)
}
