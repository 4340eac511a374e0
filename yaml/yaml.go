// Package yaml provides a YAML codec implementation.
package yaml

import (
	"github.com/dldc-packages/zenjson"
	"gopkg.in/yaml.v3"
)

const (
	strTag       = "!!str"
	timestampTag = "!!timestamp"
)

// yamlCodec implements zenjson.Codec for YAML.
type yamlCodec struct{}

// New returns a YAML codec.
func New() zenjson.Codec {
	return &yamlCodec{}
}

// ContentType returns the MIME type for YAML.
func (c *yamlCodec) ContentType() string {
	return "application/yaml"
}

// Marshal encodes v as YAML.
func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// Unmarshal decodes YAML data into v.
// Mappings with string keys decode to map[string]any. Timestamp scalars
// decode as strings; dates travel as tagged pairs.
func (c *yamlCodec) Unmarshal(data []byte, v any) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	if doc.Kind == 0 {
		return nil
	}
	untagTimestamps(&doc)
	return doc.Decode(v)
}

func untagTimestamps(n *yaml.Node) {
	if n.Kind == yaml.ScalarNode && n.Tag == timestampTag {
		n.Tag = strTag
	}
	for _, child := range n.Content {
		untagTimestamps(child)
	}
}
