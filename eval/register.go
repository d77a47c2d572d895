package eval

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/signadot/jot-format/jot/ir"
)

// Converter maps an application type to and from value trees. FromAny
// and ToAnyAs consult registered converters before falling back to the
// generic paths.
type Converter struct {
	Type      reflect.Type
	ToValue   func(v any) (*ir.Value, error)
	FromValue func(node *ir.Value) (any, error)
}

var (
	mu sync.RWMutex
	d  = map[reflect.Type]*Converter{}
)

var ErrConverterExists = errors.New("converter exists")

func Register(c *Converter) error {
	mu.Lock()
	defer mu.Unlock()
	_, present := d[c.Type]
	if present {
		return fmt.Errorf("%s: %w", c.Type, ErrConverterExists)
	}
	d[c.Type] = c
	return nil
}

func Lookup(t reflect.Type) *Converter {
	mu.RLock()
	defer mu.RUnlock()
	return d[t]
}

func Converters() []*Converter {
	mu.RLock()
	defer mu.RUnlock()
	res := make([]*Converter, 0, len(d))
	for _, c := range d {
		res = append(res, c)
	}
	return res
}
