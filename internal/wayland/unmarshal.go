package wayland

import (
	"encoding/xml"
	"os"

	"github.com/vodofrede/xmlite"
	"github.com/vodofrede/xmlite/internal/wayland/schema"
)

// UnmarshalWithXmlite reads a Wayland protocol definition by walking
// the xmlite document tree.
func UnmarshalWithXmlite(path string) (schema.Protocol, error) {
	var protocol schema.Protocol

	data, err := os.ReadFile(path)
	if err != nil {
		return protocol, err
	}
	doc, err := xmlite.Parse(string(data))
	if err != nil {
		return protocol, err
	}
	err = protocol.UnmarshalNode(doc.Root)
	return protocol, err
}

// UnmarshalWithStdlibXML reads the same definition with encoding/xml,
// as the reference for differential tests and benchmarks.
func UnmarshalWithStdlibXML(path string) (schema.Protocol, error) {
	var protocol schema.Protocol

	f, err := os.Open(path)
	if err != nil {
		return protocol, err
	}
	defer f.Close()
	err = xml.NewDecoder(f).Decode(&protocol)
	return protocol, err
}
