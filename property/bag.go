package property

import (
	"fmt"
	"reflect"
)

// Holder is the dynamic variant of a property target: properties are looked
// up and set by name at runtime rather than through declared struct fields.
type Holder interface {
	Descriptor(name string) (Descriptor, bool)
	SetValue(name string, value any) error
	Value(name string) (any, bool)
}

// Bag is a map-backed Holder with a declared schema. Only declared names
// exist as properties; setting an undeclared or wrongly-typed value is an
// error rather than a silent grow.
type Bag struct {
	schema map[string]reflect.Type
	values map[string]any
}

func NewBag() *Bag {
	return &Bag{
		schema: make(map[string]reflect.Type),
		values: make(map[string]any),
	}
}

// Declare registers a property name with its type. Returns the bag for
// chaining declarations.
func (b *Bag) Declare(name string, rtype reflect.Type) *Bag {
	b.schema[name] = rtype
	return b
}

func (b *Bag) Descriptor(name string) (Descriptor, bool) {
	rtype, ok := b.schema[name]
	if !ok {
		return Descriptor{}, false
	}

	return Descriptor{Name: name, Type: rtype}, true
}

func (b *Bag) SetValue(name string, value any) error {
	rtype, ok := b.schema[name]
	if !ok {
		return fmt.Errorf("bag has no declared property %q", name)
	}

	if vt := reflect.TypeOf(value); vt == nil || !vt.AssignableTo(rtype) {
		return fmt.Errorf("property %q declared as %s, got %T", name, rtype, value)
	}

	b.values[name] = value
	return nil
}

func (b *Bag) Value(name string) (any, bool) {
	v, ok := b.values[name]
	return v, ok
}
