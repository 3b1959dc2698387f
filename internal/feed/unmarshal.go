package feed

import (
	"encoding/xml"
	"os"

	"github.com/vodofrede/xmlite"
	"github.com/vodofrede/xmlite/internal/feed/schema"
)

// UnmarshalWithXmlite reads an RSS 2.0 feed by walking the xmlite
// document tree.
func UnmarshalWithXmlite(path string) (schema.Rss, error) {
	var rss schema.Rss

	data, err := os.ReadFile(path)
	if err != nil {
		return rss, err
	}
	doc, err := xmlite.Parse(string(data))
	if err != nil {
		return rss, err
	}
	err = rss.UnmarshalNode(doc.Root)
	return rss, err
}

// UnmarshalWithStdlibXML reads the same feed with encoding/xml, as the
// reference for differential tests and benchmarks.
func UnmarshalWithStdlibXML(path string) (schema.Rss, error) {
	var rss schema.Rss

	f, err := os.Open(path)
	if err != nil {
		return rss, err
	}
	defer f.Close()
	err = xml.NewDecoder(f).Decode(&rss)
	return rss, err
}
