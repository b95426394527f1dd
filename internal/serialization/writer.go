package serialization

import (
	"encoding/binary"
	"encoding/json"
	"io"
	"math"
	"time"

	"github.com/pkg/errors"
)

// Write writes header and values to w.
//
// FormatVersion and NumParameters are filled in from the arguments; CreatedAt
// is set to the current time when zero.
func Write(w io.Writer, header Header, values []float64) error {
	header.FormatVersion = FormatVersion
	header.NumParameters = len(values)
	if header.CreatedAt.IsZero() {
		header.CreatedAt = time.Now().UTC()
	}
	if header.Labels != nil && len(header.Labels) != len(values) {
		return errors.Wrapf(ErrParameterCount, "%d labels for %d values", len(header.Labels), len(values))
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return errors.Wrap(err, "failed to marshal header")
	}

	payload := encodeValues(values)
	checksum := ComputeChecksum(payload)

	if _, err := io.WriteString(w, MagicBytes); err != nil {
		return errors.Wrap(err, "failed to write magic bytes")
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(FormatVersion)); err != nil {
		return errors.Wrap(err, "failed to write version")
	}
	if err := binary.Write(w, binary.LittleEndian, uint64(len(headerJSON))); err != nil {
		return errors.Wrap(err, "failed to write header size")
	}
	if _, err := w.Write(headerJSON); err != nil {
		return errors.Wrap(err, "failed to write header")
	}
	if _, err := w.Write(checksum[:]); err != nil {
		return errors.Wrap(err, "failed to write checksum")
	}
	if _, err := w.Write(payload); err != nil {
		return errors.Wrap(err, "failed to write parameter data")
	}
	return nil
}

func encodeValues(values []float64) []byte {
	buf := make([]byte, 8*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint64(buf[8*i:], math.Float64bits(v))
	}
	return buf
}
