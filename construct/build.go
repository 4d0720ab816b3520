package construct

import (
	"fmt"

	"github.com/robbyt/go-scalarfunc/function"
)

// Build creates the function variant described by req. Table checks happen
// here, through function.NewTabulated, and fail with function.ErrDomain
// errors rather than structural ones.
func Build(req *Request) (function.Function, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is nil", ErrStructural)
	}

	switch req.Kind {
	case KindConstant:
		return function.NewConstant(req.Value), nil
	case KindCallable:
		f, err := function.NewCallable(req.Caller)
		if err != nil {
			return nil, err
		}
		return f, nil
	case KindTabulated:
		f, err := function.NewTabulated(req.Times, req.Values)
		if err != nil {
			return nil, err
		}
		return f, nil
	default:
		return nil, fmt.Errorf("%w: unknown request kind %s", ErrStructural, req.Kind)
	}
}

// New classifies args and builds the matching function.
func New(args ...any) (function.Function, error) {
	req, err := Classify(args...)
	if err != nil {
		return nil, err
	}
	return Build(req)
}
