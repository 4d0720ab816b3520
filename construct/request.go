// Package construct turns raw construction arguments into exactly one
// function variant. Classify rejects malformed arguments by shape; Build
// creates the variant and leaves the table semantics (matching lengths,
// non-empty, increasing times) to the function package.
package construct

import (
	"fmt"

	"github.com/robbyt/go-scalarfunc/function"
)

// Kind identifies the variant a Request resolves to.
type Kind int

const (
	KindUnknown Kind = iota
	KindConstant
	KindCallable
	KindTabulated
)

func (k Kind) String() string {
	switch k {
	case KindConstant:
		return "constant"
	case KindCallable:
		return "callable"
	case KindTabulated:
		return "tabulated"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Request is the classified form of the construction arguments. Only the
// fields belonging to Kind are set.
type Request struct {
	Kind   Kind
	Value  float64
	Caller function.Caller
	Times  []float64
	Values []float64
}

func (r *Request) String() string {
	switch r.Kind {
	case KindConstant:
		return fmt.Sprintf("construct.Request{Kind: %s, Value: %g}", r.Kind, r.Value)
	case KindCallable:
		return fmt.Sprintf("construct.Request{Kind: %s, Caller: %T}", r.Kind, r.Caller)
	case KindTabulated:
		return fmt.Sprintf("construct.Request{Kind: %s, Times: %d, Values: %d}",
			r.Kind, len(r.Times), len(r.Values))
	default:
		return fmt.Sprintf("construct.Request{Kind: %s}", r.Kind)
	}
}
