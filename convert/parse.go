// Package convert coerces captured XML text into typed Go values. Scalar
// parsing is delegated to spf13/cast; this package adds reflect.Type
// dispatch and range checks for narrow integer targets.
package convert

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/spf13/cast"
)

var ErrUnsupportedType = errors.New("no conversion from string to target type")

// Parse coerces s into a freshly allocated value of the requested type.
// The returned value is addressable-independent and safe to assign with
// reflect.Value.Set.
func Parse(s string, rtype reflect.Type) (reflect.Value, error) {
	kind := FromReflectType(rtype)
	if kind == 0 {
		return reflect.Value{}, fmt.Errorf("%w: %s", ErrUnsupportedType, rtype)
	}

	out := reflect.New(rtype).Elem()

	switch {
	case kind == KindString:
		out.SetString(s)

	case kind == KindBool:
		b, err := cast.ToBoolE(s)
		if err != nil {
			return reflect.Value{}, parseErr(s, rtype, err)
		}
		out.SetBool(b)

	case kind.IsSigned():
		n, err := cast.ToInt64E(s)
		if err != nil {
			return reflect.Value{}, parseErr(s, rtype, err)
		}
		if bits := kind.Bits(); bits < 64 {
			min, max := int64(-1)<<(bits-1), int64(1)<<(bits-1)-1
			if n < min || n > max {
				return reflect.Value{}, parseErr(s, rtype, fmt.Errorf("value out of range [%d, %d]", min, max))
			}
		}
		out.SetInt(n)

	case kind.IsUnsigned():
		u, err := cast.ToUint64E(s)
		if err != nil {
			return reflect.Value{}, parseErr(s, rtype, err)
		}
		if bits := kind.Bits(); bits < 64 {
			if max := uint64(1)<<bits - 1; u > max {
				return reflect.Value{}, parseErr(s, rtype, fmt.Errorf("value out of range [0, %d]", max))
			}
		}
		out.SetUint(u)

	case kind.IsFloat():
		f, err := cast.ToFloat64E(s)
		if err != nil {
			return reflect.Value{}, parseErr(s, rtype, err)
		}
		if kind == KindFloat32 && !math.IsInf(f, 0) && math.Abs(f) > math.MaxFloat32 {
			return reflect.Value{}, parseErr(s, rtype, errors.New("value out of float32 range"))
		}
		out.SetFloat(f)

	case kind == KindTime:
		tv, err := cast.ToTimeE(s)
		if err != nil {
			return reflect.Value{}, parseErr(s, rtype, err)
		}
		out.Set(reflect.ValueOf(tv))

	case kind == KindDuration:
		d, err := cast.ToDurationE(s)
		if err != nil {
			return reflect.Value{}, parseErr(s, rtype, err)
		}
		out.Set(reflect.ValueOf(d))
	}

	return out, nil
}

func parseErr(s string, rtype reflect.Type, cause error) error {
	return fmt.Errorf("parse %q as %s: %w", s, rtype, cause)
}
