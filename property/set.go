package property

import (
	"fmt"
	"reflect"

	"xml-digester/convert"
)

// Set coerces value into the named property's type and assigns it.
//
// An unknown property name silently returns nil. That mirrors the generic
// setter this toolkit grew around; callers that want loud failures pre-check
// with Describe first.
func Set(target any, name, value string) error {
	if h, ok := target.(Holder); ok {
		desc, ok := h.Descriptor(name)
		if !ok {
			return nil
		}

		parsed, err := convert.Parse(value, desc.Type)
		if err != nil {
			return fmt.Errorf("property %q: %w", name, err)
		}
		return h.SetValue(name, parsed.Interface())
	}

	rv := reflect.ValueOf(target)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return fmt.Errorf("cannot set property %q on nil %T", name, target)
		}
		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("cannot set property %q on %T", name, target)
	}

	field, ok := fieldByName(rv.Type(), name)
	if !ok {
		return nil
	}

	fv := rv.FieldByIndex(field.Index)
	if !fv.CanSet() {
		return fmt.Errorf("property %q on %T is not settable, pass a pointer", name, target)
	}

	parsed, err := convert.Parse(value, field.Type)
	if err != nil {
		return fmt.Errorf("property %q: %w", name, err)
	}

	fv.Set(parsed)
	return nil
}
