package eval

import (
	"github.com/goccy/go-yaml"

	"github.com/signadot/jot-format/jot/ir"
)

// FromYAML parses a YAML document and converts it to a value tree.
func FromYAML(d []byte) (*ir.Value, error) {
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return nil, err
	}
	return FromAny(v)
}

// ToYAML renders a value tree as YAML. Member order is not preserved.
func ToYAML(node *ir.Value) ([]byte, error) {
	return yaml.Marshal(ToAny(node))
}
