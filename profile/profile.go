// Package profile decodes tabulated profiles, the time/value tables that
// become function.Tabulated, from YAML or JSON documents.
//
// Two layouts are accepted:
//
//	times: [0, 1, 2]
//	values: [2, 1, 0]
//
// or one row per knot:
//
//	points:
//	  - [0, 2]
//	  - [1, 1]
//	  - [2, 0]
package profile

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/robbyt/go-scalarfunc/function"
	"github.com/robbyt/go-scalarfunc/loader"
)

var ErrInvalidProfile = errors.New("invalid profile")

// Profile is a decoded table. Lengths are not checked here; NewFunction
// reports mismatches as function.ErrDomain errors.
type Profile struct {
	Name   string      `yaml:"name,omitempty"`
	Times  []float64   `yaml:"times,omitempty"`
	Values []float64   `yaml:"values,omitempty"`
	Points [][]float64 `yaml:"points,omitempty"`
}

// Decode reads a single profile document from r.
func Decode(r io.Reader) (*Profile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	p := &Profile{}
	if err := dec.Decode(p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: document is empty", ErrInvalidProfile)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}
	if err := p.normalize(); err != nil {
		return nil, err
	}
	return p, nil
}

// Load decodes the profile served by ldr.
func Load(ldr loader.Loader) (*Profile, error) {
	content, err := loader.ReadAll(ldr)
	if err != nil {
		return nil, err
	}
	p, err := Decode(bytes.NewReader(content))
	if err != nil {
		if u := ldr.GetSourceURL(); u != nil {
			return nil, fmt.Errorf("%s: %w", u, err)
		}
		return nil, err
	}
	return p, nil
}

// normalize folds the points layout into Times and Values.
func (p *Profile) normalize() error {
	hasColumns := p.Times != nil || p.Values != nil
	switch {
	case hasColumns && p.Points != nil:
		return fmt.Errorf("%w: use either times/values or points, not both", ErrInvalidProfile)
	case !hasColumns && p.Points == nil:
		return fmt.Errorf("%w: no times/values or points given", ErrInvalidProfile)
	case hasColumns:
		if p.Times == nil {
			p.Times = []float64{}
		}
		if p.Values == nil {
			p.Values = []float64{}
		}
		return nil
	}

	p.Times = make([]float64, 0, len(p.Points))
	p.Values = make([]float64, 0, len(p.Points))
	for i, row := range p.Points {
		if len(row) != 2 {
			return fmt.Errorf("%w: points[%d] has %d entries, expected [time, value]", ErrInvalidProfile, i, len(row))
		}
		p.Times = append(p.Times, row[0])
		p.Values = append(p.Values, row[1])
	}
	p.Points = nil
	return nil
}

// NewFunction builds the tabulated function for p.
func (p *Profile) NewFunction() (*function.Tabulated, error) {
	return function.NewTabulated(p.Times, p.Values)
}
