package autodiff

// Operand is anything that can appear as an argument of an operation: a
// *Value or a Scalar literal.
type Operand interface {
	// AsValue returns the operand as a graph node. Scalars are promoted to a
	// new unlabeled leaf on every call.
	AsValue() *Value
}

// Scalar is a constant operand. It becomes a leaf Value when used.
type Scalar float64

// AsValue promotes s to a new leaf.
func (s Scalar) AsValue() *Value {
	return New(float64(s))
}

// AsValue returns v itself.
func (v *Value) AsValue() *Value {
	return v
}

// Scalars converts plain numbers into operands.
func Scalars(xs []float64) []Operand {
	out := make([]Operand, len(xs))
	for i, x := range xs {
		out[i] = Scalar(x)
	}
	return out
}

// Operands converts a slice of values into operands.
func Operands(vs []*Value) []Operand {
	out := make([]Operand, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out
}
