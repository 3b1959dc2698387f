package schema

import (
	"fmt"
	"strings"

	"github.com/vodofrede/xmlite"
)

// Rss is an RSS 2.0 feed (simplified).
type Rss struct {
	Version string  `xml:"version,attr"`
	Channel Channel `xml:"channel"`
}

func (r *Rss) UnmarshalNode(node *xmlite.Node) error {
	r.Version, _ = node.Attr("version")

	for _, child := range node.Children {
		if child.Name == "channel" {
			if err := r.Channel.UnmarshalNode(child); err != nil {
				return fmt.Errorf("channel: %w", err)
			}
		}
	}
	return nil
}

type Channel struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	Language    string `xml:"language,omitempty"`
	Items       []Item `xml:"item"`
}

func (c *Channel) UnmarshalNode(node *xmlite.Node) error {
	for _, child := range node.Children {
		switch child.Name {
		case "title":
			c.Title = text(child)
		case "link":
			c.Link = text(child)
		case "description":
			c.Description = text(child)
		case "language":
			c.Language = text(child)
		case "item":
			var item Item
			item.UnmarshalNode(child)
			c.Items = append(c.Items, item)
		}
	}
	return nil
}

type Item struct {
	Title      string   `xml:"title"`
	Link       string   `xml:"link"`
	GUID       string   `xml:"guid"`
	PubDate    string   `xml:"pubDate"`
	Categories []string `xml:"category"`
}

func (i *Item) UnmarshalNode(node *xmlite.Node) {
	for _, child := range node.Children {
		switch child.Name {
		case "title":
			i.Title = text(child)
		case "link":
			i.Link = text(child)
		case "guid":
			i.GUID = text(child)
		case "pubDate":
			i.PubDate = text(child)
		case "category":
			i.Categories = append(i.Categories, text(child))
		}
	}
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
