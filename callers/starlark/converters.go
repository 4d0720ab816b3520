package starlark

import (
	"fmt"

	starlarkLib "go.starlark.net/starlark"
)

// toFloat accepts Starlark int and float results. Bool is an Int in some
// languages but not in Starlark, so it is rejected.
func toFloat(v starlarkLib.Value) (float64, error) {
	switch v := v.(type) {
	case starlarkLib.Float:
		return float64(v), nil
	case starlarkLib.Int:
		f, ok := starlarkLib.AsFloat(v)
		if !ok {
			return 0, fmt.Errorf("%w: int %s out of range", ErrNonNumericResult, v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: got %s", ErrNonNumericResult, v.Type())
	}
}
