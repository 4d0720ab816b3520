package function

import (
	"fmt"
	"math"
	"slices"
	"sort"
)

// Tabulated interpolates linearly between (time, value) knots and holds the
// boundary values flat outside the table.
type Tabulated struct {
	guard
	times  []float64
	values []float64
}

// NewTabulated builds a table from positionally paired times and values.
// Both slices are copied. Times must be finite and strictly increasing; they
// are never re-sorted.
func NewTabulated(times, values []float64) (*Tabulated, error) {
	if len(times) != len(values) {
		return nil, fmt.Errorf("%w: %d times, %d values", ErrLengthMismatch, len(times), len(values))
	}
	if len(times) == 0 {
		return nil, ErrEmpty
	}
	for i, t := range times {
		if math.IsInf(t, 0) {
			return nil, fmt.Errorf("%w: times[%d]=%g", ErrNonFinite, i, t)
		}
	}
	for i := 1; i < len(times); i++ {
		// written as a negation so that NaN is rejected too
		if !(times[i] > times[i-1]) {
			return nil, fmt.Errorf("%w: times[%d]=%g follows times[%d]=%g",
				ErrNotIncreasing, i, times[i], i-1, times[i-1])
		}
	}
	if len(times) == 1 && math.IsNaN(times[0]) {
		return nil, fmt.Errorf("%w: times[0] is NaN", ErrNotIncreasing)
	}

	return &Tabulated{
		times:  slices.Clone(times),
		values: slices.Clone(values),
	}, nil
}

func (f *Tabulated) String() string {
	return fmt.Sprintf("function.Tabulated{Points: %d, Range: [%g, %g]}",
		len(f.times), f.times[0], f.times[len(f.times)-1])
}

// Len returns the number of knots.
func (f *Tabulated) Len() int {
	return len(f.times)
}

// Knot returns the i-th (time, value) pair.
func (f *Tabulated) Knot(i int) (float64, float64) {
	return f.times[i], f.values[i]
}

// Eval never fails.
func (f *Tabulated) Eval(t float64) (float64, error) {
	last := len(f.times) - 1
	switch {
	case math.IsNaN(t):
		return t, nil
	case t <= f.times[0]:
		return f.values[0], nil
	case t >= f.times[last]:
		return f.values[last], nil
	}

	// smallest index whose time exceeds t; 1 <= j <= last here
	j := sort.Search(len(f.times), func(k int) bool { return f.times[k] > t })
	i := j - 1
	if t == f.times[i] {
		return f.values[i], nil
	}
	frac := (t - f.times[i]) / (f.times[j] - f.times[i])
	return f.values[i] + (f.values[j]-f.values[i])*frac, nil
}
