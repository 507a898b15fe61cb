package enums

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalText renders the string associated with v as a text encoding,
// failing with an *OutOfRangeError for values without one.
func MarshalText[E Enum](v E) ([]byte, error) {
	s, err := Label(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText parses data as an associated string of E and stores the
// result in *v. On failure *v is left unchanged.
func UnmarshalText[E Enum](data []byte, v *E) error {
	parsed, err := Parse[E](string(data))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Text adapts an enum value for use as a struct field in encoded
// documents. It implements encoding.TextMarshaler and TextUnmarshaler,
// which covers encoding/json, and implements yaml.Marshaler and
// yaml.Unmarshaler directly because yaml.v3 does not consult the text
// interfaces.
//
//	type Config struct {
//		Mode enums.Text[ScanMode] `yaml:"mode" json:"mode"`
//	}
type Text[E Enum] struct {
	Value E
}

// NewText wraps v for encoding.
func NewText[E Enum](v E) Text[E] {
	return Text[E]{Value: v}
}

// String implements fmt.Stringer. Values without an association render as
// Type(ordinal) rather than failing, keeping String infallible.
func (t Text[E]) String() string {
	s, err := Label(t.Value)
	if err != nil {
		return fmt.Sprintf("%T(%d)", t.Value, int(t.Value))
	}
	return s
}

// MarshalText implements encoding.TextMarshaler.
func (t Text[E]) MarshalText() ([]byte, error) {
	return MarshalText(t.Value)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Text[E]) UnmarshalText(data []byte) error {
	return UnmarshalText(data, &t.Value)
}

// MarshalYAML implements yaml.Marshaler.
func (t Text[E]) MarshalYAML() (any, error) {
	return Label(t.Value)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Text[E]) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return UnmarshalText([]byte(s), &t.Value)
}

// Schema returns a JSON Schema fragment constraining a field to E's
// associated strings:
//
//	{"type": "string", "enum": ["syn", "udp", "connect"]}
func Schema[E Enum]() map[string]any {
	return map[string]any{
		"type": "string",
		"enum": Labels[E](),
	}
}
