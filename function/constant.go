package function

import "strconv"

// Constant always evaluates to the same value.
type Constant struct {
	guard
	value float64
}

// NewConstant returns a function that ignores its input and returns v.
func NewConstant(v float64) *Constant {
	return &Constant{value: v}
}

func (c *Constant) String() string {
	return "function.Constant{" + strconv.FormatFloat(c.value, 'g', -1, 64) + "}"
}

// Value returns the stored constant.
func (c *Constant) Value() float64 {
	return c.value
}

// Eval returns the stored value for every t.
func (c *Constant) Eval(float64) (float64, error) {
	return c.value, nil
}
