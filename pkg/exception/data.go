package exception

import (
	"bytes"
	"encoding/json"
	"errors"
	"iter"
	"slices"

	"gopkg.in/yaml.v3"
)

// Data is an insertion-ordered string-keyed bag of loosely typed values.
// A nil *Data reads as an empty bag and ignores Set.
type Data struct {
	keys   []string
	values map[string]any
}

// NewData returns an empty bag.
func NewData() *Data {
	return &Data{values: make(map[string]any)}
}

// Set stores value under key. Re-setting a key keeps its original position.
// Set on a nil *Data is a no-op.
func (d *Data) Set(key string, value any) {
	if d == nil {
		return
	}
	if d.values == nil {
		d.values = make(map[string]any)
	}
	if _, exists := d.values[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

func (d *Data) Get(key string) (any, bool) {
	if d == nil {
		return nil, false
	}
	v, ok := d.values[key]
	return v, ok
}

func (d *Data) Delete(key string) {
	if d == nil {
		return
	}
	if _, ok := d.values[key]; !ok {
		return
	}
	delete(d.values, key)
	d.keys = slices.DeleteFunc(d.keys, func(k string) bool { return k == key })
}

func (d *Data) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// All yields entries in insertion order.
func (d *Data) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if d == nil {
			return
		}
		for _, k := range d.keys {
			if !yield(k, d.values[k]) {
				return
			}
		}
	}
}

// Compact returns a copy without nil values.
func (d *Data) Compact() *Data {
	out := NewData()
	for k, v := range d.All() {
		if v != nil {
			out.Set(k, v)
		}
	}
	return out
}

// MarshalJSON encodes the bag as a JSON object in insertion order.
func (d *Data) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	i := 0
	for k, v := range d.All() {
		if i > 0 {
			buf.WriteByte(',')
		}
		i++

		key, err := json.Marshal(k)
		if err != nil {
			return nil, errors.Join(ErrEncoding, err)
		}
		val, err := json.Marshal(v)
		if err != nil {
			return nil, errors.Join(ErrEncoding, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the bag as a YAML mapping in insertion order.
func (d *Data) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for k, v := range d.All() {
		var kn, vn yaml.Node
		if err := kn.Encode(k); err != nil {
			return nil, errors.Join(ErrEncoding, err)
		}
		if err := vn.Encode(v); err != nil {
			return nil, errors.Join(ErrEncoding, err)
		}
		node.Content = append(node.Content, &kn, &vn)
	}
	return node, nil
}
