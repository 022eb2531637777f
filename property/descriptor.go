// Package property gives rules a uniform view over the objects they
// populate: descriptor lookup to validate that a named property exists, and
// a type-coercing setter to assign captured text to it. Two target shapes
// are supported: dynamic bags implementing Holder, and plain structs
// introspected with reflect.
package property

import "reflect"

// Descriptor describes a named property's existence and declared type.
// Rules consult it before assignment; the setter itself never requires one.
type Descriptor struct {
	Name string
	Type reflect.Type
}
