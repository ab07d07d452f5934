package parse

import (
	"io"
	"math"

	"github.com/go-json-experiment/json/jsontext"
	"gopkg.in/yaml.v3"

	"github.com/dzjyyds666/tomlq/parse/toml"
)

// =========================
// JSON Output
// =========================

// DumpJSON renders a node as JSON. Table keys come out in document order.
// Non-finite floats have no JSON number form and are rendered as the
// strings "nan", "inf" and "-inf". With pretty set the output is indented
// by two spaces.
func DumpJSON(w io.Writer, n toml.Node, pretty bool) error {
	var enc *jsontext.Encoder
	if pretty {
		enc = jsontext.NewEncoder(w, jsontext.WithIndent("  "))
	} else {
		enc = jsontext.NewEncoder(w)
	}
	return writeJSONNode(enc, n)
}

func writeJSONNode(enc *jsontext.Encoder, n toml.Node) error {
	switch v := n.(type) {
	case *toml.Table:
		if err := enc.WriteToken(jsontext.ObjectStart); err != nil {
			return err
		}
		for _, it := range v.Items {
			if err := enc.WriteToken(jsontext.String(it.Key)); err != nil {
				return err
			}
			if err := writeJSONNode(enc, it.Value); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.ObjectEnd)
	case *toml.Array:
		if err := enc.WriteToken(jsontext.ArrayStart); err != nil {
			return err
		}
		for _, el := range v.Elems {
			if err := writeJSONNode(enc, el); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.ArrayEnd)
	case *toml.Value:
		return writeJSONScalar(enc, v)
	default:
		return enc.WriteToken(jsontext.Null)
	}
}

func writeJSONScalar(enc *jsontext.Encoder, v *toml.Value) error {
	switch val := v.V.(type) {
	case string:
		return enc.WriteToken(jsontext.String(val))
	case int64:
		return enc.WriteToken(jsontext.Int(val))
	case float64:
		switch {
		case math.IsNaN(val):
			return enc.WriteToken(jsontext.String("nan"))
		case math.IsInf(val, +1):
			return enc.WriteToken(jsontext.String("inf"))
		case math.IsInf(val, -1):
			return enc.WriteToken(jsontext.String("-inf"))
		}
		return enc.WriteToken(jsontext.Float(val))
	case bool:
		return enc.WriteToken(jsontext.Bool(val))
	default:
		return enc.WriteToken(jsontext.Null)
	}
}

// =========================
// YAML Output
// =========================

// DumpYAML renders a node as YAML. Table keys come out in document order;
// datetime values keep their literal text and come out as strings.
func DumpYAML(w io.Writer, n toml.Node) error {
	node, err := yamlNode(n)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

func yamlNode(n toml.Node) (*yaml.Node, error) {
	switch v := n.(type) {
	case *toml.Table:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, it := range v.Items {
			key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: it.Key}
			val, err := yamlNode(it.Value)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, key, val)
		}
		return node, nil
	case *toml.Array:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, el := range v.Elems {
			c, err := yamlNode(el)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, c)
		}
		return node, nil
	default:
		node := &yaml.Node{}
		if err := node.Encode(n.Value()); err != nil {
			return nil, err
		}
		return node, nil
	}
}
