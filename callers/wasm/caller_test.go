package wasm

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tetratelabs/wazero"

	"github.com/robbyt/go-scalarfunc/function"
	"github.com/robbyt/go-scalarfunc/loader"
)

// testModule is a hand-assembled module exporting:
//
//	double (f64) -> f64   returns t + t
//	trap   (f64) -> f64   executes unreachable
//	ident  (i32) -> i32   returns its argument
var testModule = []byte{
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00, // magic, version

	// type section: (f64) -> f64, (i32) -> i32
	0x01, 0x0b, 0x02,
	0x60, 0x01, 0x7c, 0x01, 0x7c,
	0x60, 0x01, 0x7f, 0x01, 0x7f,

	// function section: types 0, 0, 1
	0x03, 0x04, 0x03, 0x00, 0x00, 0x01,

	// export section
	0x07, 0x19, 0x03,
	0x06, 'd', 'o', 'u', 'b', 'l', 'e', 0x00, 0x00,
	0x04, 't', 'r', 'a', 'p', 0x00, 0x01,
	0x05, 'i', 'd', 'e', 'n', 't', 0x00, 0x02,

	// code section
	0x0a, 0x12, 0x03,
	0x07, 0x00, 0x20, 0x00, 0x20, 0x00, 0xa0, 0x0b, // local.get 0, local.get 0, f64.add
	0x03, 0x00, 0x00, 0x0b, // unreachable
	0x04, 0x00, 0x20, 0x00, 0x0b, // local.get 0
}

func quietHandler() slog.Handler {
	return slog.NewTextHandler(&bytes.Buffer{}, nil)
}

func newTestCaller(t *testing.T, export string) *Caller {
	t.Helper()
	ctx := context.Background()
	c, err := FromBytes(ctx, testModule, export, WithLogHandler(quietHandler()))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, c.Close(ctx)) })
	return c
}

func TestCall(t *testing.T) {
	t.Parallel()

	c := newTestCaller(t, "double")
	assert.Equal(t, "wasm.Caller{double}", c.String())

	for _, in := range []float64{0, 0.1, -4.5, 1e300, math.Inf(-1)} {
		got, err := c.Call(in)
		require.NoError(t, err)
		assert.Equal(t, in+in, got, "Call(%g)", in)
	}
}

func TestCallTrapPassesThrough(t *testing.T) {
	t.Parallel()

	c := newTestCaller(t, "trap")
	f, err := function.NewCallable(c)
	require.NoError(t, err)

	_, direct := c.Call(1)
	require.Error(t, direct)
	assert.Contains(t, direct.Error(), "unreachable")

	_, viaEval := f.Eval(1)
	require.Error(t, viaEval)
	assert.IsType(t, direct, viaEval)
	assert.Equal(t, direct.Error(), viaEval.Error())
}

func TestFromBytesErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tests := []struct {
		name    string
		wasm    []byte
		export  string
		wantErr error
	}{
		{name: "nil content", wasm: nil, export: "double", wantErr: ErrContentNil},
		{name: "invalid module", wasm: []byte("not wasm"), export: "double", wantErr: ErrCompileFailed},
		{name: "missing export", wasm: testModule, export: "triple", wantErr: ErrFunctionNotFound},
		{name: "wrong signature", wasm: testModule, export: "ident", wantErr: ErrSignatureMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := FromBytes(ctx, tt.wasm, tt.export, WithLogHandler(quietHandler()))
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, c)
		})
	}
}

func TestSignatureMessage(t *testing.T) {
	t.Parallel()

	_, err := FromBytes(context.Background(), testModule, "ident", WithLogHandler(quietHandler()))
	require.ErrorIs(t, err, ErrSignatureMismatch)
	assert.Contains(t, err.Error(), "[i32]")
}

func TestClose(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c, err := FromBytes(ctx, testModule, "double", WithLogHandler(quietHandler()))
	require.NoError(t, err)

	require.NoError(t, c.Close(ctx))
	require.NoError(t, c.Close(ctx), "second close is a no-op")

	_, err = c.Call(1)
	require.ErrorIs(t, err, ErrClosed)
}

func TestConcurrentCalls(t *testing.T) {
	t.Parallel()

	c := newTestCaller(t, "double")

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func(x float64) {
			defer wg.Done()
			got, err := c.Call(x)
			assert.NoError(t, err)
			assert.Equal(t, 2*x, got)
		}(float64(i))
	}
	wg.Wait()
}

func TestFromLoader(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	l, err := loader.NewFromBytes(testModule, "test.wasm")
	require.NoError(t, err)

	c, err := FromLoader(ctx, l, "double",
		WithRuntimeConfig(wazero.NewRuntimeConfigInterpreter()),
		WithLogger(slog.New(quietHandler())),
	)
	require.NoError(t, err)
	defer func() { require.NoError(t, c.Close(ctx)) }()

	got, err := c.Call(21)
	require.NoError(t, err)
	assert.Equal(t, 42.0, got)

	_, err = FromLoader(ctx, nil, "double")
	require.ErrorIs(t, err, ErrContentNil)
}

func TestOptions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	_, err := FromBytes(ctx, testModule, "double", WithRuntimeConfig(nil))
	require.Error(t, err)

	_, err = FromBytes(ctx, testModule, "double", WithLogHandler(nil))
	require.Error(t, err)

	_, err = FromBytes(ctx, testModule, "double", WithLogger(nil))
	require.Error(t, err)
}
