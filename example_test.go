package xmlite_test

import (
	"fmt"

	"github.com/vodofrede/xmlite"
)

func ExampleParse() {
	doc, err := xmlite.Parse(`<?xml version="1.0"?>
<recipe name="beans">
  <ingredient amount="4">Fava beans</ingredient>
  <!-- sauce is optional -->
  <ingredient amount="1">Tomato sauce</ingredient>
</recipe>`)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println(doc.Root.Name)
	it := doc.Root.Descendants()
	for {
		node, ok := it.Next()
		if !ok {
			break
		}
		if content, ok := node.Content(); ok {
			fmt.Println(content)
		}
	}
	// Output:
	// recipe
	// Fava beans
	// Tomato sauce
}

func ExampleParse_recovery() {
	doc, err := xmlite.Parse(`<config><option == key="a"/></config>`)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println(doc)
	for _, diag := range doc.Diagnostics {
		fmt.Println(diag)
	}
	// Output:
	// <config/>
	// line 1, column 18: unexpected eq token "="
}

func ExampleNode_String() {
	list := xmlite.Element("ol").
		WithAttr("class", "steps").
		WithChild(xmlite.Element("li").WithChild(xmlite.Text("soak"))).
		WithChild(xmlite.Element("li").WithChild(xmlite.Text("simmer"))).
		WithChild(xmlite.Element("li"))

	fmt.Println(list)
	// Output: <ol class="steps"><li>soak</li><li>simmer</li><li/></ol>
}

func ExampleNewTags() {
	tags := xmlite.NewTags(`<greeting lang="en">hello</greeting>`)
	for {
		tag, ok := tags.Next()
		if !ok {
			break
		}
		fmt.Println(tag)
	}
	// Output:
	// <greeting lang="en">
	// hello
	// </greeting>
}
