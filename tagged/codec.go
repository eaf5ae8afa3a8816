package tagged

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Tagged values serialize transparently: the wire form of a Value[Tag, A] is
// exactly the wire form of the wrapped A. The tag never appears in the
// output, and decoding re-attaches whatever tag the destination type names.
// Tagging is a static annotation only, so round-tripping through JSON or
// YAML preserves the wrapped value bit-for-bit and the tag by construction.

// MarshalJSON implements json.Marshaler by delegating to the wrapped value.
func (t Value[Tag, A]) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.value)
}

// UnmarshalJSON implements json.Unmarshaler by decoding into the wrapped value.
func (t *Value[Tag, A]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &t.value)
}

// MarshalYAML implements yaml.Marshaler by delegating to the wrapped value.
func (t Value[Tag, A]) MarshalYAML() (any, error) {
	return t.value, nil
}

// UnmarshalYAML implements yaml.Unmarshaler by decoding into the wrapped value.
func (t *Value[Tag, A]) UnmarshalYAML(node *yaml.Node) error {
	return node.Decode(&t.value)
}
