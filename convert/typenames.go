package convert

import (
	"reflect"
	"time"
)

var typesByName = map[string]reflect.Type{
	"string":   reflect.TypeFor[string](),
	"int":      reflect.TypeFor[int](),
	"int64":    reflect.TypeFor[int64](),
	"uint":     reflect.TypeFor[uint](),
	"uint64":   reflect.TypeFor[uint64](),
	"float64":  reflect.TypeFor[float64](),
	"bool":     reflect.TypeFor[bool](),
	"time":     reflect.TypeFor[time.Time](),
	"duration": reflect.TypeFor[time.Duration](),
}

// TypeByName resolves a ruleset type name (as written in bag schemas) to
// its reflect.Type.
func TypeByName(name string) (reflect.Type, bool) {
	rtype, ok := typesByName[name]
	return rtype, ok
}
