package registry

import (
	"bytes"
	"errors"
	"os"

	"gopkg.in/yaml.v3"

	gterrors "github.com/inshell-art/glyphtable/pkg/errors"
)

// NotSequenceMessage is reported when the document root is not a sequence.
const NotSequenceMessage = "Top-level YAML must be a sequence"

// Sentinel errors for decode failures. Decode wraps them in an
// INVALID_REGISTRY error, so both errors.Is and gterrors.Is work.
var (
	// ErrNotSequence is returned when the document root is a mapping or scalar.
	ErrNotSequence = errors.New("document root is not a sequence")

	// ErrEmptyDocument is returned when the document has no content or is null.
	ErrEmptyDocument = errors.New("document is empty")
)

// Decode parses a registry document into raw records.
func Decode(data []byte) ([]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, gterrors.Wrap(gterrors.ErrCodeInvalidRegistry, ErrEmptyDocument, "registry document is empty")
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, gterrors.Wrap(gterrors.ErrCodeInvalidRegistry, err, "parse registry YAML")
	}

	switch v := doc.(type) {
	case nil:
		return nil, gterrors.Wrap(gterrors.ErrCodeInvalidRegistry, ErrEmptyDocument, "registry document is empty")
	case []any:
		return v, nil
	default:
		return nil, gterrors.Wrap(gterrors.ErrCodeInvalidRegistry, ErrNotSequence, NotSequenceMessage)
	}
}

// DecodeLenient is Decode for the viewer path: an empty document is an
// empty registry rather than an error.
func DecodeLenient(data []byte) ([]any, error) {
	records, err := Decode(data)
	if errors.Is(err, ErrEmptyDocument) {
		return []any{}, nil
	}
	return records, err
}

// LoadFile reads the registry document at path.
func LoadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, gterrors.Wrap(gterrors.ErrCodeFileNotFound, err, "registry file %s not found", path)
	}
	if err != nil {
		return nil, gterrors.Wrap(gterrors.ErrCodeInvalidInput, err, "read registry file %s", path)
	}
	return data, nil
}
