package i18n

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type decodeFunc func(data []byte) (map[string]any, error)

// decoders maps a locale file extension to its decoder.
var decoders = map[string]decodeFunc{
	".json": decodeJSON,
	".toml": decodeTOML,
	".yaml": decodeYAML,
	".yml":  decodeYAML,
}

func decoderFor(name string) (decodeFunc, bool) {
	dec, ok := decoders[strings.ToLower(path.Ext(name))]
	return dec, ok
}

func decodeJSON(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level object")
	}
	if out == nil {
		return nil, errors.New("top-level value must be an object")
	}
	return out, nil
}

func decodeTOML(data []byte) (map[string]any, error) {
	out := map[string]any{}
	if err := toml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeYAML(data []byte) (map[string]any, error) {
	var out map[string]any
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = map[string]any{}
	}
	return out, nil
}

// buildTree converts a decoded document into a locale table.
func buildTree(doc map[string]any) (*Node, error) {
	return buildNode(doc, "")
}

func buildNode(v any, at string) (*Node, error) {
	switch val := v.(type) {
	case string:
		return &Node{Kind: StringLeaf, Text: val}, nil
	case bool:
		return &Node{Kind: ScalarLeaf, Text: strconv.FormatBool(val)}, nil
	case json.Number:
		text, err := numberText(val)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", at, err)
		}
		return &Node{Kind: ScalarLeaf, Text: text}, nil
	case int:
		return &Node{Kind: ScalarLeaf, Text: strconv.Itoa(val)}, nil
	case int64:
		return &Node{Kind: ScalarLeaf, Text: strconv.FormatInt(val, 10)}, nil
	case uint64:
		return &Node{Kind: ScalarLeaf, Text: strconv.FormatUint(val, 10)}, nil
	case float64:
		return &Node{Kind: ScalarLeaf, Text: strconv.FormatFloat(val, 'f', -1, 64)}, nil
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%s[%d]: list entries must be strings, got %T", at, i, item)
			}
			parts[i] = s
		}
		return &Node{Kind: ListLeaf, Parts: parts}, nil
	case map[string]any:
		n := &Node{Kind: SubtreeNode, Children: make(map[string]*Node, len(val))}
		for k, item := range val {
			child, err := buildNode(item, join(at, k))
			if err != nil {
				return nil, err
			}
			n.Children[k] = child
		}
		return n, nil
	case map[any]any:
		n := &Node{Kind: SubtreeNode, Children: make(map[string]*Node, len(val))}
		for k, item := range val {
			key := fmt.Sprint(k)
			child, err := buildNode(item, join(at, key))
			if err != nil {
				return nil, err
			}
			n.Children[key] = child
		}
		return n, nil
	case nil:
		return nil, fmt.Errorf("%s: null values are not allowed", at)
	default:
		return nil, fmt.Errorf("%s: unsupported value of type %T", at, v)
	}
}

// numberText renders a JSON number the way TOML and YAML numbers are
// rendered: integers in base 10, other values in the shortest plain decimal
// form, so "1.0" reads "1" and "1e3" reads "1000" whatever the file format.
func numberText(n json.Number) (string, error) {
	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10), nil
	}
	f, err := n.Float64()
	if err != nil {
		return "", fmt.Errorf("invalid number %q: %w", n.String(), err)
	}
	return strconv.FormatFloat(f, 'f', -1, 64), nil
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
