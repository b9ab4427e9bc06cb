// Package node holds the insertion-ordered mapping used for every schema
// fragment the converter produces. Key order is part of the output contract,
// so both the JSON and the YAML encodings walk the keys oldest first.
package node

import (
	"bytes"

	json "github.com/goccy/go-json"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	goyaml "gopkg.in/yaml.v3"
)

type Node struct {
	pairs *orderedmap.OrderedMap[string, any]
}

// New returns an empty node. Pairs given as key, value, key, value... are set
// in order; a trailing key without a value is ignored.
func New(keyValues ...any) *Node {
	n := &Node{pairs: orderedmap.New[string, any]()}
	for i := 0; i+1 < len(keyValues); i += 2 {
		key, ok := keyValues[i].(string)
		if !ok {
			continue
		}
		n.Set(key, keyValues[i+1])
	}
	return n
}

// Set stores value under key. An existing key keeps its position.
func (n *Node) Set(key string, value any) *Node {
	n.pairs.Set(key, value)
	return n
}

func (n *Node) Get(key string) (any, bool) {
	if n == nil {
		return nil, false
	}
	return n.pairs.Get(key)
}

func (n *Node) Has(key string) bool {
	_, ok := n.Get(key)
	return ok
}

func (n *Node) Delete(key string) bool {
	if n == nil {
		return false
	}
	_, present := n.pairs.Delete(key)
	return present
}

func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	return n.pairs.Len()
}

func (n *Node) Keys() []string {
	if n == nil {
		return nil
	}
	keys := make([]string, 0, n.pairs.Len())
	for pair := n.pairs.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Each calls fn for every pair, oldest first.
func (n *Node) Each(fn func(key string, value any)) {
	if n == nil {
		return
	}
	for pair := n.pairs.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// Child returns the nested node stored under key, or nil when the key is
// missing or holds something else.
func (n *Node) Child(key string) *Node {
	value, ok := n.Get(key)
	if !ok {
		return nil
	}
	child, _ := value.(*Node)
	return child
}

// Strings returns the string list stored under key.
func (n *Node) Strings(key string) []string {
	value, ok := n.Get(key)
	if !ok {
		return nil
	}
	switch v := value.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// Clone copies the node and every nested node, list and value it owns.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := New()
	n.Each(func(key string, value any) {
		out.Set(key, cloneValue(value))
	})
	return out
}

func cloneValue(value any) any {
	switch v := value.(type) {
	case *Node:
		return v.Clone()
	case []*Node:
		out := make([]*Node, len(v))
		for i, item := range v {
			out[i] = item.Clone()
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = cloneValue(item)
		}
		return out
	case []string:
		return append([]string(nil), v...)
	default:
		return v
	}
}

func (n *Node) MarshalJSON() ([]byte, error) {
	if n == nil {
		return []byte("null"), nil
	}
	return n.pairs.MarshalJSON()
}

func (n *Node) MarshalYAML() (any, error) {
	out := &goyaml.Node{Kind: goyaml.MappingNode, Tag: "!!map"}
	var err error
	n.Each(func(key string, value any) {
		if err != nil {
			return
		}
		encoded := &goyaml.Node{}
		if err = encoded.Encode(value); err != nil {
			return
		}
		out.Content = append(out.Content,
			&goyaml.Node{Kind: goyaml.ScalarNode, Tag: "!!str", Value: key},
			encoded,
		)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// JSON renders the node indented by two spaces.
func (n *Node) JSON() ([]byte, error) {
	return json.MarshalIndent(n, "", "  ")
}

// YAML renders the node as a YAML document.
func (n *Node) YAML() ([]byte, error) {
	var buf bytes.Buffer
	encoder := goyaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(n); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (n *Node) String() string {
	b, err := n.MarshalJSON()
	if err != nil {
		return ""
	}
	return string(b)
}

// Equal reports whether a and b encode to the same JSON, key order included.
func Equal(a, b *Node) bool {
	left, err := a.MarshalJSON()
	if err != nil {
		return false
	}
	right, err := b.MarshalJSON()
	if err != nil {
		return false
	}
	return bytes.Equal(left, right)
}
