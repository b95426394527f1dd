package autodiff_test

import (
	"testing"

	"github.com/dcunhrya/karpathy-micrograd/autodiff"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPublicAPI exercises the facade end to end.
func TestPublicAPI(t *testing.T) {
	a := autodiff.NewLabeled(2.0, "a")
	b := autodiff.New(-3.0)
	c := autodiff.Add(autodiff.Mul(a, b), a)

	c.Backward()

	assert.Equal(t, autodiff.OpAdd, c.Op())
	assert.InDelta(t, -4.0, c.Data(), 1e-12)
	assert.InDelta(t, -2.0, a.Grad(), 1e-12)
	assert.InDelta(t, 2.0, b.Grad(), 1e-12)
	assert.Equal(t, []*autodiff.Value{a, b}, autodiff.Leaves(c))

	autodiff.ZeroGrad(c)
	assert.Equal(t, 0.0, a.Grad())

	_, err := autodiff.Power(a, b)
	require.Error(t, err)
	assert.True(t, errors.Is(err, autodiff.ErrInvalidOperand))

	half := autodiff.Div(autodiff.Scalar(1), autodiff.Scalar(2))
	assert.InDelta(t, 0.5, half.Data(), 1e-12)
	assert.Equal(t, autodiff.OpMul, half.Op())
}
