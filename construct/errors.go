package construct

import (
	"errors"
	"fmt"
)

// ErrStructural is the root of all errors detected from argument shape alone,
// before any function is built.
var ErrStructural = errors.New("invalid construction arguments")

var (
	ErrInvalidArgumentCount = fmt.Errorf("%w: invalid number of arguments (1 or 2 expected)", ErrStructural)
	ErrTypeMismatch         = fmt.Errorf("%w: type mismatch", ErrStructural)
	ErrInvalidDimensions    = fmt.Errorf("%w: invalid dimensions", ErrStructural)
)
