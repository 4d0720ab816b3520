package function

import (
	"fmt"
	"reflect"
)

// Callable evaluates by calling into a host-supplied Caller. It does not own
// the caller: releasing any resources behind it is the owner's job, and the
// caller must outlive the Callable.
type Callable struct {
	guard
	target Caller
}

// NewCallable wraps target without invoking it. A nil target, or one whose
// underlying func, pointer or map is nil, is rejected with ErrCallerNil.
func NewCallable(target Caller) (*Callable, error) {
	if target == nil {
		return nil, ErrCallerNil
	}
	if rv := reflect.ValueOf(target); nilable(rv.Kind()) && rv.IsNil() {
		return nil, fmt.Errorf("%w: %T", ErrCallerNil, target)
	}
	return &Callable{target: target}, nil
}

func nilable(k reflect.Kind) bool {
	switch k {
	case reflect.Func, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan:
		return true
	}
	return false
}

func (c *Callable) String() string {
	if s, ok := c.target.(fmt.Stringer); ok {
		return "function.Callable{" + s.String() + "}"
	}
	return fmt.Sprintf("function.Callable{%T}", c.target)
}

// Caller returns the wrapped callable.
func (c *Callable) Caller() Caller {
	return c.target
}

// Eval makes exactly one call to the wrapped callable. The error, if any, is
// the callable's own error value, returned as is.
func (c *Callable) Eval(t float64) (float64, error) {
	return c.target.Call(t)
}
