package schema

import (
	"strconv"

	"github.com/vodofrede/xmlite"
)

type Request struct {
	Name  string `xml:"name,attr"`
	Type  string `xml:"type,attr,omitempty"`
	Since int    `xml:"since,attr,omitempty"`
	Args  []Arg  `xml:"arg"`
}

func (r *Request) UnmarshalNode(node *xmlite.Node) error {
	var err error
	r.Name, _ = node.Attr("name")
	r.Type, _ = node.Attr("type")
	if since, ok := node.Attr("since"); ok {
		r.Since, err = strconv.Atoi(since)
		if err != nil {
			return err
		}
	}

	for _, child := range node.Children {
		if child.Name == "arg" {
			var arg Arg
			arg.UnmarshalNode(child)
			r.Args = append(r.Args, arg)
		}
	}
	return nil
}

type Event struct {
	Name  string `xml:"name,attr"`
	Since int    `xml:"since,attr,omitempty"`
	Args  []Arg  `xml:"arg"`
}

func (e *Event) UnmarshalNode(node *xmlite.Node) error {
	var err error
	e.Name, _ = node.Attr("name")
	if since, ok := node.Attr("since"); ok {
		e.Since, err = strconv.Atoi(since)
		if err != nil {
			return err
		}
	}

	for _, child := range node.Children {
		if child.Name == "arg" {
			var arg Arg
			arg.UnmarshalNode(child)
			e.Args = append(e.Args, arg)
		}
	}
	return nil
}

type Arg struct {
	Name      string `xml:"name,attr"`
	Type      string `xml:"type,attr"`
	Interface string `xml:"interface,attr,omitempty"`
	Summary   string `xml:"summary,attr,omitempty"`
}

func (a *Arg) UnmarshalNode(node *xmlite.Node) {
	a.Name, _ = node.Attr("name")
	a.Type, _ = node.Attr("type")
	a.Interface, _ = node.Attr("interface")
	a.Summary, _ = node.Attr("summary")
}

type Enum struct {
	Name    string  `xml:"name,attr"`
	Entries []Entry `xml:"entry"`
}

func (e *Enum) UnmarshalNode(node *xmlite.Node) error {
	e.Name, _ = node.Attr("name")

	for _, child := range node.Children {
		if child.Name == "entry" {
			var entry Entry
			entry.UnmarshalNode(child)
			e.Entries = append(e.Entries, entry)
		}
	}
	return nil
}

type Entry struct {
	Name    string `xml:"name,attr"`
	Value   string `xml:"value,attr"`
	Summary string `xml:"summary,attr,omitempty"`
}

func (e *Entry) UnmarshalNode(node *xmlite.Node) {
	e.Name, _ = node.Attr("name")
	e.Value, _ = node.Attr("value")
	e.Summary, _ = node.Attr("summary")
}
