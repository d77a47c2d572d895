package ir

import "fmt"

// Kind identifies which payload of a Value is active.
type Kind int

const (
	UndefinedKind Kind = iota
	NullKind
	BoolKind
	IntKind
	FloatKind
	StringKind
	ArrayKind
	ObjectKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		UndefinedKind: "Undefined",
		NullKind:      "Null",
		BoolKind:      "Bool",
		IntKind:       "Int",
		FloatKind:     "Float",
		StringKind:    "String",
		ArrayKind:     "Array",
		ObjectKind:    "Object",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Undefined": UndefinedKind,
		"Null":      NullKind,
		"Bool":      BoolKind,
		"Int":       IntKind,
		"Float":     FloatKind,
		"String":    StringKind,
		"Array":     ArrayKind,
		"Object":    ObjectKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		UndefinedKind,
		NullKind,
		BoolKind,
		IntKind,
		FloatKind,
		StringKind,
		ArrayKind,
		ObjectKind,
	}
}

// IsLeaf reports whether values of kind k have no children.
func (k Kind) IsLeaf() bool {
	switch k {
	case ArrayKind, ObjectKind:
		return false
	default:
		return true
	}
}
