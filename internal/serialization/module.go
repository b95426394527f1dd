package serialization

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/dcunhrya/karpathy-micrograd/internal/autodiff"
)

// ParameterSource is implemented by every nn.Module.
type ParameterSource interface {
	Parameters() []*autodiff.Value
}

// SaveModule writes the parameter values and labels of m to w.
func SaveModule(w io.Writer, m ParameterSource, header Header) error {
	params := m.Parameters()
	values := make([]float64, len(params))
	header.Labels = make([]string, len(params))
	for i, p := range params {
		values[i] = p.Data()
		header.Labels[i] = p.Label()
	}
	return Write(w, header, values)
}

// LoadModule reads parameter values from r into m.
//
// The file must hold exactly as many values as m has parameters, and when
// both sides carry labels they must match position by position. m is left
// untouched on error.
func LoadModule(r io.Reader, m ParameterSource) (*Header, error) {
	header, values, err := Read(r)
	if err != nil {
		return nil, err
	}

	params := m.Parameters()
	if len(values) != len(params) {
		return nil, errors.Wrapf(ErrParameterCount, "file has %d, model has %d", len(values), len(params))
	}
	if len(header.Labels) == len(params) {
		for i, p := range params {
			if p.Label() != "" && header.Labels[i] != "" && p.Label() != header.Labels[i] {
				return nil, errors.Wrapf(ErrLabelMismatch, "parameter %d: file %q, model %q", i, header.Labels[i], p.Label())
			}
		}
	}

	for i, p := range params {
		p.SetData(values[i])
	}
	return header, nil
}

// SaveFile writes m to the file at path, replacing it if it exists.
func SaveFile(path string, m ParameterSource, header Header) (err error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for model saving
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create file")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "failed to close file")
		}
	}()
	return SaveModule(f, m, header)
}

// LoadFile reads the file at path into m.
func LoadFile(path string, m ParameterSource) (*Header, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for model loading
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}
	defer func() { _ = f.Close() }()
	return LoadModule(f, m)
}
