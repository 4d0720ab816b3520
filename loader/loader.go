// Package loader reads function sources (Starlark scripts, WASM modules,
// tabulated profiles) from strings, files and readers.
package loader

import (
	"io"
	"net/url"
)

// Loader is a source of function content.
type Loader interface {
	// GetReader returns a new reader positioned at the start of the content.
	// Every call returns an independent reader; the caller must close it.
	GetReader() (io.ReadCloser, error)

	// GetSourceURL identifies the source in logs and error messages, for
	// example file:///etc/profiles/inflow.star or string://inline/1a2b3c4d.
	GetSourceURL() *url.URL
}

// ReadAll reads the full content of the source.
func ReadAll(l Loader) ([]byte, error) {
	r, err := l.GetReader()
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()
	return io.ReadAll(r)
}
