package serialization

import (
	"encoding/binary"
	"encoding/json"
	"io"
	"math"

	"github.com/pkg/errors"
)

// Read reads a parameter file written by Write.
//
// The checksum is always verified before values are returned.
func Read(r io.Reader) (*Header, []float64, error) {
	magic := make([]byte, len(MagicBytes))
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, nil, errors.Wrap(err, "failed to read magic bytes")
	}
	if string(magic) != MagicBytes {
		return nil, nil, errors.Wrapf(ErrInvalidMagic, "expected %q, got %q", MagicBytes, magic)
	}

	var version uint32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, nil, errors.Wrap(err, "failed to read version")
	}
	if version != FormatVersion {
		return nil, nil, errors.Wrapf(ErrUnsupportedVersion, "version %d", version)
	}

	var headerSize uint64
	if err := binary.Read(r, binary.LittleEndian, &headerSize); err != nil {
		return nil, nil, errors.Wrap(err, "failed to read header size")
	}
	if headerSize > MaxHeaderSize {
		return nil, nil, errors.Wrapf(ErrHeaderTooLarge, "%d bytes", headerSize)
	}

	headerJSON := make([]byte, headerSize)
	if _, err := io.ReadFull(r, headerJSON); err != nil {
		return nil, nil, errors.Wrap(err, "failed to read header")
	}
	var header Header
	if err := json.Unmarshal(headerJSON, &header); err != nil {
		return nil, nil, errors.Wrap(err, "failed to parse header")
	}
	if header.NumParameters < 0 || header.NumParameters > MaxParameters {
		return nil, nil, errors.Wrapf(ErrTooManyParameters, "%d", header.NumParameters)
	}

	var stored [ChecksumSize]byte
	if _, err := io.ReadFull(r, stored[:]); err != nil {
		return nil, nil, errors.Wrap(err, "failed to read checksum")
	}

	payload := make([]byte, 8*header.NumParameters)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, nil, errors.Wrap(err, "failed to read parameter data")
	}
	if err := ValidateChecksum(ComputeChecksum(payload), stored); err != nil {
		return nil, nil, err
	}

	return &header, decodeValues(payload), nil
}

func decodeValues(buf []byte) []float64 {
	values := make([]float64, len(buf)/8)
	for i := range values {
		values[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[8*i:]))
	}
	return values
}
