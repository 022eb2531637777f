package property

import (
	"fmt"
	"reflect"
)

// Attach assigns an already-typed value to the named property, without the
// string coercion Set performs. Slice properties append, and a pointer
// value attaches to a value-typed property by dereference. Unknown names
// silently return nil, same as Set.
func Attach(target any, name string, value any) error {
	if h, ok := target.(Holder); ok {
		if _, ok := h.Descriptor(name); !ok {
			return nil
		}
		return h.SetValue(name, value)
	}

	rv := reflect.ValueOf(target)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return fmt.Errorf("cannot attach property %q to nil %T", name, target)
		}
		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("cannot attach property %q to %T", name, target)
	}

	field, ok := fieldByName(rv.Type(), name)
	if !ok {
		return nil
	}

	fv := rv.FieldByIndex(field.Index)
	if !fv.CanSet() {
		return fmt.Errorf("property %q on %T is not settable, pass a pointer", name, target)
	}

	vv := reflect.ValueOf(value)
	switch {
	case vv.Type().AssignableTo(field.Type):
		fv.Set(vv)
	case vv.Kind() == reflect.Pointer && vv.Type().Elem().AssignableTo(field.Type):
		fv.Set(vv.Elem())
	case field.Type.Kind() == reflect.Slice && vv.Type().AssignableTo(field.Type.Elem()):
		fv.Set(reflect.Append(fv, vv))
	case field.Type.Kind() == reflect.Slice && vv.Kind() == reflect.Pointer && vv.Type().Elem().AssignableTo(field.Type.Elem()):
		fv.Set(reflect.Append(fv, vv.Elem()))
	default:
		return fmt.Errorf("cannot attach %T to property %q of type %s", value, name, field.Type)
	}
	return nil
}
