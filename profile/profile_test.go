package profile

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robbyt/go-scalarfunc/function"
	"github.com/robbyt/go-scalarfunc/loader"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		doc        string
		wantTimes  []float64
		wantValues []float64
		wantName   string
	}{
		{
			name:       "columns",
			doc:        "name: inlet\ntimes: [0, 1, 2]\nvalues: [2, 1, 0]\n",
			wantTimes:  []float64{0, 1, 2},
			wantValues: []float64{2, 1, 0},
			wantName:   "inlet",
		},
		{
			name:       "points",
			doc:        "points:\n  - [0, 2]\n  - [1, 1]\n  - [2, 0]\n",
			wantTimes:  []float64{0, 1, 2},
			wantValues: []float64{2, 1, 0},
		},
		{
			name:       "json",
			doc:        `{"times": [0, 0.5], "values": [1e3, 2e3]}`,
			wantTimes:  []float64{0, 0.5},
			wantValues: []float64{1000, 2000},
		},
		{
			name:       "empty columns",
			doc:        "times: []\nvalues: []\n",
			wantTimes:  []float64{},
			wantValues: []float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Decode(strings.NewReader(tt.doc))
			require.NoError(t, err)
			assert.Equal(t, tt.wantTimes, p.Times)
			assert.Equal(t, tt.wantValues, p.Values)
			assert.Equal(t, tt.wantName, p.Name)
			assert.Nil(t, p.Points)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     string
		wantMsg string
	}{
		{name: "empty document", doc: "", wantMsg: "empty"},
		{name: "both layouts", doc: "times: [0]\nvalues: [1]\npoints: [[0, 1]]\n", wantMsg: "not both"},
		{name: "no table", doc: "name: x\n", wantMsg: "no times/values"},
		{name: "short row", doc: "points: [[0, 1], [2]]\n", wantMsg: "points[1]"},
		{name: "unknown field", doc: "times: [0]\nvalue: [1]\n", wantMsg: "value"},
		{name: "not a number", doc: "times: [a]\nvalues: [1]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Decode(strings.NewReader(tt.doc))
			require.ErrorIs(t, err, ErrInvalidProfile)
			assert.Nil(t, p)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("from string", func(t *testing.T) {
		l, err := loader.NewFromString("times: [0, 1, 2]\nvalues: [2, 1, 0]")
		require.NoError(t, err)

		p, err := Load(l)
		require.NoError(t, err)

		f, err := p.NewFunction()
		require.NoError(t, err)
		got, err := f.Eval(0.5)
		require.NoError(t, err)
		assert.InDelta(t, 1.5, got, 1e-12)
	})

	t.Run("error names the source", func(t *testing.T) {
		l, err := loader.NewFromString("name: nothing")
		require.NoError(t, err)

		_, err = Load(l)
		require.ErrorIs(t, err, ErrInvalidProfile)
		assert.Contains(t, err.Error(), "string://inline/")
	})

	t.Run("reader failure", func(t *testing.T) {
		boom := errors.New("boom")
		m := new(loader.MockLoader)
		m.On("GetReader").Return(nil, boom)

		_, err := Load(m)
		require.ErrorIs(t, err, boom)
		m.AssertExpectations(t)
	})

	t.Run("mock content", func(t *testing.T) {
		m := loader.NewMockLoaderWithContent([]byte("points: [[0, 1], [1, 3]]"))

		p, err := Load(m)
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 1}, p.Times)
		assert.Equal(t, []float64{1, 3}, p.Values)
	})
}

func TestNewFunctionDomainErrors(t *testing.T) {
	t.Parallel()

	p, err := Decode(strings.NewReader("times: [0, 1]\nvalues: [0, 1, 2]\n"))
	require.NoError(t, err)

	f, err := p.NewFunction()
	require.ErrorIs(t, err, function.ErrLengthMismatch)
	assert.Nil(t, f)

	p, err = Decode(strings.NewReader("times: []\nvalues: []\n"))
	require.NoError(t, err)

	_, err = p.NewFunction()
	require.ErrorIs(t, err, function.ErrEmpty)
}
