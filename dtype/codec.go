package dtype

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Persisted forms use the canonical name. JSON goes through the text
// methods, so a DataType field encodes as "BF16" rather than its code.

// MarshalText implements encoding.TextMarshaler.
func (d DataType) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, &UnknownTypeError{Code: uint32(d)}
	}
	return []byte(d.Name()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *DataType) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d DataType) MarshalYAML() (any, error) {
	if !d.Valid() {
		return nil, &UnknownTypeError{Code: uint32(d)}
	}
	return d.Name(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *DataType) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: data type must be a scalar name", value.Line)
	}
	parsed, err := Parse(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*d = parsed
	return nil
}
