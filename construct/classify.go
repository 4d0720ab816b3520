package construct

import (
	"fmt"
	"reflect"

	"github.com/robbyt/go-scalarfunc/function"
)

// Classify inspects the number, types and shapes of args and resolves them to
// a Request. It looks at shapes only: the lengths and contents of a time/value
// table are checked later by Build.
//
// Accepted forms:
//   - one callable: a function.Caller, func(float64) float64 or
//     func(float64) (float64, error)
//   - one number, or one slice/array holding exactly one number after
//     dropping dimensions of size one
//   - two numeric sequences: times and values
func Classify(args ...any) (*Request, error) {
	switch len(args) {
	case 1:
		return classifyOne(args[0])
	case 2:
		return classifyTwo(args[0], args[1])
	default:
		return nil, fmt.Errorf("%w: got %d", ErrInvalidArgumentCount, len(args))
	}
}

var (
	callerFuncType = reflect.TypeFor[func(float64) (float64, error)]()
	plainFuncType  = reflect.TypeFor[func(float64) float64]()
)

// asCaller reports whether v can be called with one number. Nil funcs and
// callers holding a nil func, pointer or map are not callable.
func asCaller(v any) (function.Caller, bool) {
	switch fn := v.(type) {
	case function.Caller:
		return fn, !isNil(fn)
	case func(float64) (float64, error):
		return function.CallerFunc(fn), fn != nil
	case func(float64) float64:
		return function.PlainFunc(fn), fn != nil
	}

	// named func types such as `type profile func(float64) float64`
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return nil, false
	}
	switch {
	case rv.Type().ConvertibleTo(callerFuncType):
		return function.CallerFunc(rv.Convert(callerFuncType).Interface().(func(float64) (float64, error))), true
	case rv.Type().ConvertibleTo(plainFuncType):
		return function.PlainFunc(rv.Convert(plainFuncType).Interface().(func(float64) float64)), true
	}
	return nil, false
}

func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Func, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

func classifyOne(arg any) (*Request, error) {
	if c, ok := asCaller(arg); ok {
		return &Request{Kind: KindCallable, Caller: c}, nil
	}

	arr, ok, err := toArray(arg)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: cannot build a function from %T", ErrTypeMismatch, arg)
	}

	switch dims := arr.squeeze(); len(dims) {
	case 0:
		return &Request{Kind: KindConstant, Value: arr.data[0]}, nil
	case 1:
		return nil, fmt.Errorf(
			"%w: a single sequence must hold exactly one value, got %d; pass times and values as two arguments",
			ErrTypeMismatch, dims[0])
	default:
		return nil, fmt.Errorf("%w: shape %v does not reduce to a scalar", ErrInvalidDimensions, arr.shape)
	}
}

func classifyTwo(times, values any) (*Request, error) {
	t, err := sequence("times", times)
	if err != nil {
		return nil, err
	}
	v, err := sequence("values", values)
	if err != nil {
		return nil, err
	}
	return &Request{Kind: KindTabulated, Times: t, Values: v}, nil
}

// sequence flattens a one-dimensional numeric sequence, allowing extra
// dimensions of size one.
func sequence(name string, v any) ([]float64, error) {
	arr, ok, err := toArray(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if !ok || arr.shape == nil {
		return nil, fmt.Errorf("%w: %s must be a numeric sequence, got %T", ErrTypeMismatch, name, v)
	}
	if dims := arr.squeeze(); len(dims) > 1 {
		return nil, fmt.Errorf("%w: %s has shape %v, expected one dimension", ErrInvalidDimensions, name, arr.shape)
	}
	return arr.data, nil
}
