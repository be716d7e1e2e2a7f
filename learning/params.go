package learning

import "gonum.org/v1/gonum/mat"

// Parameter is one trainable weight matrix and its accumulated gradient.
type Parameter struct {
	Value *mat.Dense
	Grad  *mat.Dense
}

// NewParameter allocates a zero valued r by c parameter with a zeroed
// gradient buffer of the same shape. A zero dimension yields an empty
// parameter, since gonum cannot allocate zero sized matrices.
func NewParameter(r, c int) *Parameter {
	if r == 0 || c == 0 {
		return &Parameter{Value: &mat.Dense{}, Grad: &mat.Dense{}}
	}
	return &Parameter{
		Value: mat.NewDense(r, c, nil),
		Grad:  mat.NewDense(r, c, nil),
	}
}

// Empty reports whether the parameter has no elements.
func (p *Parameter) Empty() bool {
	r, c := p.Value.Dims()
	return r == 0 || c == 0
}

// ZeroGrad clears the accumulated gradient.
func (p *Parameter) ZeroGrad() {
	p.Grad.Zero()
}
