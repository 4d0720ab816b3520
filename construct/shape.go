package construct

import (
	"fmt"
	"reflect"
)

// array is a numeric value flattened in row-major order, with its shape.
type array struct {
	shape []int
	data  []float64
}

// squeeze drops every dimension of size one.
func (a *array) squeeze() []int {
	out := make([]int, 0, len(a.shape))
	for _, d := range a.shape {
		if d != 1 {
			out = append(out, d)
		}
	}
	return out
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func toFloat(v reflect.Value) float64 {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(v.Uint())
	default:
		return v.Float()
	}
}

func isSequenceKind(k reflect.Kind) bool {
	return k == reflect.Slice || k == reflect.Array
}

// toArray flattens a number or a rectangular nest of slices and arrays of
// numbers. ok is false when v is not numeric at all; a non-rectangular nest
// is reported as ErrInvalidDimensions.
func toArray(v any) (*array, bool, error) {
	rv := reflect.ValueOf(v)
	for rv.IsValid() && (rv.Kind() == reflect.Interface || rv.Kind() == reflect.Pointer) {
		if rv.IsNil() {
			return nil, false, nil
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil, false, nil
	}
	if isNumberKind(rv.Kind()) {
		return &array{data: []float64{toFloat(rv)}}, true, nil
	}
	if !isSequenceKind(rv.Kind()) {
		return nil, false, nil
	}

	a := &array{}
	ok, err := a.walk(rv, 0)
	if err != nil || !ok {
		return nil, ok, err
	}
	return a, true, nil
}

// walk appends the elements of rv at nesting level depth, recording the size
// of each level on first visit and enforcing it afterwards.
func (a *array) walk(rv reflect.Value, depth int) (bool, error) {
	for rv.Kind() == reflect.Interface || rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return false, nil
		}
		rv = rv.Elem()
	}

	if isNumberKind(rv.Kind()) {
		if depth != len(a.shape) {
			return true, fmt.Errorf("%w: ragged nesting at depth %d", ErrInvalidDimensions, depth)
		}
		a.data = append(a.data, toFloat(rv))
		return true, nil
	}
	if !isSequenceKind(rv.Kind()) {
		return false, nil
	}

	n := rv.Len()
	switch {
	case depth == len(a.shape) && len(a.data) == 0:
		// first visit to this level
		a.shape = append(a.shape, n)
	case depth >= len(a.shape) || a.shape[depth] != n:
		return true, fmt.Errorf("%w: ragged nesting at depth %d", ErrInvalidDimensions, depth)
	}

	for i := 0; i < n; i++ {
		ok, err := a.walk(rv.Index(i), depth+1)
		if err != nil || !ok {
			return ok, err
		}
	}
	return true, nil
}
