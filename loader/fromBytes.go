package loader

import (
	"bytes"
	"fmt"
	"io"
	"net/url"

	"github.com/robbyt/go-scalarfunc/internal/helpers"
)

// FromBytes serves binary content, such as a WASM module, held in memory.
// Unlike FromString the content is not trimmed.
type FromBytes struct {
	content   []byte
	sourceURL *url.URL
}

// NewFromBytes keeps a reference to content; the caller must not modify it.
func NewFromBytes(content []byte, sourceName string) (*FromBytes, error) {
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: content is empty", ErrSourceNotAvailable)
	}
	if sourceName == "" {
		sourceName = "unnamed"
	}

	u, err := url.Parse("bytes://" + sourceName + "/" + helpers.ShortHash(content))
	if err != nil {
		return nil, fmt.Errorf("failed to create source URL: %w", err)
	}

	return &FromBytes{content: content, sourceURL: u}, nil
}

func (l *FromBytes) String() string {
	return fmt.Sprintf("loader.FromBytes{Bytes: %d, Source: %s}", len(l.content), l.sourceURL)
}

func (l *FromBytes) GetReader() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(l.content)), nil
}

func (l *FromBytes) GetSourceURL() *url.URL {
	return l.sourceURL
}
