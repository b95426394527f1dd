package serialization

import "github.com/pkg/errors"

// Common errors.
var (
	ErrChecksumMismatch   = errors.New("checksum mismatch: file may be corrupted")
	ErrHeaderTooLarge     = errors.New("header exceeds maximum size")
	ErrInvalidMagic       = errors.New("invalid magic bytes")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrTooManyParameters  = errors.New("too many parameters in file")
	ErrParameterCount     = errors.New("parameter count does not match model")
	ErrLabelMismatch      = errors.New("parameter label does not match model")
)
