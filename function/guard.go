package function

import (
	"encoding"
	"encoding/gob"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// noCopy trips go vet's copylocks check when a function value is copied.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// guard is embedded in every variant. A callable-backed function holds a live
// reference into foreign code, so no variant can be encoded, decoded or
// duplicated.
type guard struct {
	_ noCopy
}

var (
	_ json.Marshaler             = (*guard)(nil)
	_ json.Unmarshaler           = (*guard)(nil)
	_ encoding.TextMarshaler     = (*guard)(nil)
	_ encoding.TextUnmarshaler   = (*guard)(nil)
	_ encoding.BinaryMarshaler   = (*guard)(nil)
	_ encoding.BinaryUnmarshaler = (*guard)(nil)
	_ gob.GobEncoder             = (*guard)(nil)
	_ gob.GobDecoder             = (*guard)(nil)
	_ yaml.Marshaler             = (*guard)(nil)
	_ yaml.Unmarshaler           = (*guard)(nil)
)

func (*guard) MarshalJSON() ([]byte, error) {
	return nil, fmt.Errorf("%w: json encoding", ErrUnsupportedOperation)
}

func (*guard) UnmarshalJSON([]byte) error {
	return fmt.Errorf("%w: json decoding", ErrUnsupportedOperation)
}

func (*guard) MarshalText() ([]byte, error) {
	return nil, fmt.Errorf("%w: text encoding", ErrUnsupportedOperation)
}

func (*guard) UnmarshalText([]byte) error {
	return fmt.Errorf("%w: text decoding", ErrUnsupportedOperation)
}

func (*guard) MarshalBinary() ([]byte, error) {
	return nil, fmt.Errorf("%w: binary encoding", ErrUnsupportedOperation)
}

func (*guard) UnmarshalBinary([]byte) error {
	return fmt.Errorf("%w: binary decoding", ErrUnsupportedOperation)
}

func (*guard) GobEncode() ([]byte, error) {
	return nil, fmt.Errorf("%w: gob encoding", ErrUnsupportedOperation)
}

func (*guard) GobDecode([]byte) error {
	return fmt.Errorf("%w: gob decoding", ErrUnsupportedOperation)
}

func (*guard) MarshalYAML() (any, error) {
	return nil, fmt.Errorf("%w: yaml encoding", ErrUnsupportedOperation)
}

func (*guard) UnmarshalYAML(*yaml.Node) error {
	return fmt.Errorf("%w: yaml decoding", ErrUnsupportedOperation)
}

// Clone always fails: no variant may be duplicated, whether or not a copy
// would be safe for that variant.
func Clone(f Function) (Function, error) {
	return nil, fmt.Errorf("%w: cannot duplicate %T", ErrUnsupportedOperation, f)
}
