package property

import (
	"reflect"
	"strings"
)

// Describe resolves a descriptor for the named property on target, or
// reports absence. Holder targets answer from their own registry; anything
// else is introspected as a struct (through any pointer indirections).
func Describe(target any, name string) (Descriptor, bool) {
	if h, ok := target.(Holder); ok {
		return h.Descriptor(name)
	}

	rtype := baseStructType(target)
	if rtype == nil {
		return Descriptor{}, false
	}

	field, ok := fieldByName(rtype, name)
	if !ok {
		return Descriptor{}, false
	}

	return Descriptor{Name: name, Type: field.Type}, true
}

// baseStructType unwraps pointers and returns the struct type, or nil when
// target is not struct-shaped.
func baseStructType(target any) reflect.Type {
	rtype := reflect.TypeOf(target)
	for rtype != nil && rtype.Kind() == reflect.Pointer {
		rtype = rtype.Elem()
	}

	if rtype == nil || rtype.Kind() != reflect.Struct {
		return nil
	}
	return rtype
}

// fieldByName matches an exported field for an XML-derived property name.
// An explicit xml tag wins; otherwise field names match case-insensitively,
// so element <age> finds field Age.
func fieldByName(rtype reflect.Type, name string) (reflect.StructField, bool) {
	for i := range rtype.NumField() {
		field := rtype.Field(i)
		if !field.IsExported() {
			continue
		}

		if tag, ok := field.Tag.Lookup("xml"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == name {
				return field, true
			}
		}
	}

	for i := range rtype.NumField() {
		field := rtype.Field(i)
		if !field.IsExported() {
			continue
		}

		if strings.EqualFold(field.Name, name) {
			return field, true
		}
	}

	return reflect.StructField{}, false
}
