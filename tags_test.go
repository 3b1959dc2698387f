package xmlite_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vodofrede/xmlite"
)

func TestTags(t *testing.T) {
	tt := []struct {
		name     string
		src      string
		expected []xmlite.Tag
		diags    int
	}{
		{
			name: "opening, self-closing and unclosed tags",
			src:  `<a b="c"><d /><e>`,
			expected: []xmlite.Tag{
				{Kind: xmlite.TagOpening, Name: "a", Attrs: map[string]string{"b": "c"}},
				{Kind: xmlite.TagSelfClosing, Name: "d"},
				{Kind: xmlite.TagOpening, Name: "e"},
			},
		},
		{
			name: "closing tag",
			src:  "</a>",
			expected: []xmlite.Tag{
				{Kind: xmlite.TagClosing, Name: "a"},
			},
		},
		{
			name: "declaration",
			src:  `<?xml version="1.0" encoding="UTF-8"?>`,
			expected: []xmlite.Tag{
				{Kind: xmlite.TagDeclaration, Name: "xml", Attrs: map[string]string{
					"version":  "1.0",
					"encoding": "UTF-8",
				}},
			},
		},
		{
			name: "text between tags",
			src:  "<b>some text</b>",
			expected: []xmlite.Tag{
				{Kind: xmlite.TagOpening, Name: "b"},
				{Kind: xmlite.TagText, Text: "some text"},
				{Kind: xmlite.TagClosing, Name: "b"},
			},
		},
		{
			name: "boolean-style attribute",
			src:  "<a data>",
			expected: []xmlite.Tag{
				{Kind: xmlite.TagOpening, Name: "a", Attrs: map[string]string{"data": ""}},
			},
		},
		{
			name: "duplicate attribute keeps the last value",
			src:  `<a k="1" k="2">`,
			expected: []xmlite.Tag{
				{Kind: xmlite.TagOpening, Name: "a", Attrs: map[string]string{"k": "2"}},
			},
		},
		{
			name: "malformed tag recovers at the next open bracket",
			src:  `<a <b /><c />`,
			expected: []xmlite.Tag{
				{Kind: xmlite.TagSelfClosing, Name: "b"},
				{Kind: xmlite.TagSelfClosing, Name: "c"},
			},
			diags: 1,
		},
		{
			name: "mismatched bracket pair recovers",
			src:  `<a?><b/>`,
			expected: []xmlite.Tag{
				{Kind: xmlite.TagSelfClosing, Name: "b"},
			},
			diags: 1,
		},
		{
			name: "recovery resynchronizes on text",
			src:  `<a ="oops">recovered<b/>`,
			expected: []xmlite.Tag{
				{Kind: xmlite.TagText, Text: "recovered"},
				{Kind: xmlite.TagSelfClosing, Name: "b"},
			},
			diags: 1,
		},
	}

	for i, tc := range tt {
		t.Run(fmt.Sprintf("[%d] %s", i, tc.name), func(t *testing.T) {
			tags := xmlite.NewTags(tc.src)
			var got []xmlite.Tag
			for {
				tag, ok := tags.Next()
				if !ok {
					break
				}
				got = append(got, tag)
			}
			if diff := cmp.Diff(got, tc.expected); diff != "" {
				t.Fatal(diff)
			}
			if len(tags.Diagnostics()) != tc.diags {
				t.Fatalf("expected %d diagnostics, got %v", tc.diags, tags.Diagnostics())
			}
		})
	}
}

func TestTagsPeek(t *testing.T) {
	tags := xmlite.NewTags("<a><b/></a>")

	first, ok := tags.Peek()
	if !ok {
		t.Fatal("expected a tag")
	}
	second, _ := tags.Peek()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatal(diff)
	}

	next, _ := tags.Next()
	if diff := cmp.Diff(first, next); diff != "" {
		t.Fatal(diff)
	}
	after, _ := tags.Next()
	if after.Name != "b" || !after.IsSelfClosing() {
		t.Fatalf("expected self-closing tag b, got %s", after)
	}
}

func TestTagsDiagnostics(t *testing.T) {
	tags := xmlite.NewTags(`<a <b />`)
	for {
		if _, ok := tags.Next(); !ok {
			break
		}
	}

	diags := tags.Diagnostics()
	if len(diags) != 1 {
		t.Fatalf("expected one diagnostic, got %d", len(diags))
	}
	expected := xmlite.Token{Text: "<", Kind: xmlite.TokenOpen}
	if diff := cmp.Diff(diags[0].Token, expected); diff != "" {
		t.Fatal(diff)
	}
	if diags[0].Pos.Line != 1 {
		t.Fatalf("unexpected diagnostic position: %s", diags[0].Pos)
	}
}

func TestTagAccessors(t *testing.T) {
	tags := xmlite.NewTags(`<node id="n1" draft>`)
	tag, ok := tags.Next()
	if !ok {
		t.Fatal("expected a tag")
	}

	if !tag.IsOpening() || tag.IsClosing() || tag.IsSelfClosing() || tag.IsDeclaration() || tag.IsText() {
		t.Fatalf("wrong kind: %v", tag.Kind)
	}
	if id, ok := tag.Attr("id"); !ok || id != "n1" {
		t.Fatalf("expected id n1, got %q (%v)", id, ok)
	}
	if draft, ok := tag.Attr("draft"); !ok || draft != "" {
		t.Fatalf("expected empty draft attribute, got %q (%v)", draft, ok)
	}
	if _, ok := tag.Attr("missing"); ok {
		t.Fatal("unexpected attribute value")
	}
	if _, ok := tag.Content(); ok {
		t.Fatal("element tags have no text content")
	}
	if got := tag.String(); got != `<node draft="" id="n1">` {
		t.Fatalf("unexpected rendering: %s", got)
	}
}
