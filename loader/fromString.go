package loader

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/robbyt/go-scalarfunc/internal/helpers"
)

// FromString serves inline source text.
type FromString struct {
	content   string
	sourceURL *url.URL
}

// NewFromString creates a loader for inline source text.
//
// Parameters:
//   - content: the source; leading and trailing whitespace is trimmed
//
// Returns:
//   - a loader whose URL is string://inline/<short content hash>
//   - ErrSourceNotAvailable when content is empty after trimming
func NewFromString(content string) (*FromString, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: content is empty", ErrSourceNotAvailable)
	}

	u, err := url.Parse("string://inline/" + helpers.ShortHash([]byte(content)))
	if err != nil {
		return nil, fmt.Errorf("failed to create source URL: %w", err)
	}

	return &FromString{content: content, sourceURL: u}, nil
}

func (l *FromString) String() string {
	return fmt.Sprintf("loader.FromString{Chars: %d}", len(l.content))
}

// GetReader returns a reader over the trimmed content.
func (l *FromString) GetReader() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(l.content)), nil
}

// GetSourceURL returns the string:// URL built from the content hash.
func (l *FromString) GetSourceURL() *url.URL {
	return l.sourceURL
}
