// Package output serializes schemas to and from JSON and YAML documents.
package output

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/hsaito/xlshape-go/pkg/xlshape/schema"
)

// GroupDoc is the serialized form of one header group.
type GroupDoc struct {
	Label string `json:"label" yaml:"label"`
	Span  int    `json:"span" yaml:"span"`
}

// Document is the serialized form of a schema.
type Document struct {
	Columns []string   `json:"columns" yaml:"columns"`
	Groups  []GroupDoc `json:"groups,omitempty" yaml:"groups,omitempty"`
}

// FromSchema converts a schema to its document form.
func FromSchema(s *schema.Schema) Document {
	doc := Document{Columns: s.Columns()}
	for _, g := range s.Groups() {
		doc.Groups = append(doc.Groups, GroupDoc{Label: g.Label, Span: g.Span})
	}
	return doc
}

// ToSchema rebuilds a schema from its document form.
func (d Document) ToSchema() *schema.Schema {
	if len(d.Groups) == 0 {
		return schema.New(d.Columns)
	}
	groups := make([]schema.Group, len(d.Groups))
	for i, g := range d.Groups {
		groups[i] = schema.Group{Label: g.Label, Span: g.Span}
	}
	return schema.NewWithGroups(d.Columns, groups)
}

// ToJSON serializes a schema to JSON.
func ToJSON(s *schema.Schema, pretty bool) ([]byte, error) {
	doc := FromSchema(s)
	if pretty {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}

// FromJSON parses a JSON schema document.
func FromJSON(data []byte) (*schema.Schema, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.ToSchema(), nil
}

// ToYAML serializes a schema to YAML.
func ToYAML(s *schema.Schema) ([]byte, error) {
	return yaml.Marshal(FromSchema(s))
}

// FromYAML parses a YAML schema document.
func FromYAML(data []byte) (*schema.Schema, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.ToSchema(), nil
}
