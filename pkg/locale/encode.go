package locale

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Supported encodings.
const (
	EncodingJSON = "json"
	EncodingYAML = "yaml"
)

// Encoder renders a tree to a document.
// Keys are written in insertion order and text is written as UTF-8.
type Encoder interface {
	Encode(w io.Writer, tree *Branch) error
	// Extension returns the file extension including the dot.
	Extension() string
	ContentType() string
}

// EncoderFor returns the encoder registered under name.
func EncoderFor(name string) (Encoder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case EncodingJSON, "":
		return JSONEncoder{}, nil
	case EncodingYAML, "yml":
		return YAMLEncoder{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
}

// Marshal encodes tree into a byte slice.
func Marshal(enc Encoder, tree *Branch) ([]byte, error) {
	var buf bytes.Buffer
	if err := enc.Encode(&buf, tree); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// JSONEncoder writes two-space indented JSON followed by a newline.
// HTML characters and non-ASCII text are not escaped.
type JSONEncoder struct{}

// Encode implements Encoder.
func (JSONEncoder) Encode(w io.Writer, tree *Branch) error {
	var compact bytes.Buffer
	if err := tree.writeJSON(&compact); err != nil {
		return err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return fmt.Errorf("locale: indent json: %w", err)
	}
	out.WriteByte('\n')

	_, err := w.Write(out.Bytes())
	return err
}

// Extension implements Encoder.
func (JSONEncoder) Extension() string { return ".json" }

// ContentType implements Encoder.
func (JSONEncoder) ContentType() string { return "application/json; charset=utf-8" }

// YAMLEncoder writes YAML with a two-space indent.
type YAMLEncoder struct{}

// Encode implements Encoder.
func (YAMLEncoder) Encode(w io.Writer, tree *Branch) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(tree.yamlNode()); err != nil {
		return fmt.Errorf("locale: encode yaml: %w", err)
	}
	return enc.Close()
}

// Extension implements Encoder.
func (YAMLEncoder) Extension() string { return ".yaml" }

// ContentType implements Encoder.
func (YAMLEncoder) ContentType() string { return "application/yaml; charset=utf-8" }

// MarshalJSON implements json.Marshaler, keeping insertion order.
func (b *Branch) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := b.writeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalYAML implements yaml.Marshaler, keeping insertion order.
func (b *Branch) MarshalYAML() (any, error) {
	return b.yamlNode(), nil
}

func (b *Branch) writeJSON(buf *bytes.Buffer) error {
	buf.WriteByte('{')
	i := 0
	for key, child := range b.All() {
		if i > 0 {
			buf.WriteByte(',')
		}
		i++

		if err := writeJSONString(buf, key); err != nil {
			return err
		}
		buf.WriteByte(':')

		switch n := child.(type) {
		case Leaf:
			if err := writeJSONString(buf, string(n)); err != nil {
				return err
			}
		case *Branch:
			if err := n.writeJSON(buf); err != nil {
				return err
			}
		}
	}
	buf.WriteByte('}')
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("locale: encode json string: %w", err)
	}
	// Encode terminates every value with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}

func (b *Branch) yamlNode() *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for key, child := range b.All() {
		k := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
		var v *yaml.Node
		switch n := child.(type) {
		case Leaf:
			v = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(n)}
		case *Branch:
			v = n.yamlNode()
		}
		node.Content = append(node.Content, k, v)
	}
	return node
}
