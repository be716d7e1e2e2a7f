package learning

import "gonum.org/v1/gonum/mat"

// Optimizer updates trainable parameters in place from their accumulated
// gradients.
type Optimizer interface {

	// ZeroGrad clears the gradient buffers of all managed parameters.
	ZeroGrad()

	// Step applies one parameter update from the accumulated gradients.
	Step()
}

// SGD is stochastic gradient descent with optional momentum.
type SGD struct {
	LR       float64 // learning rate, mutated by schedulers
	Momentum float64 // momentum factor, zero disables the velocity term

	params     []*Parameter
	velocities []*mat.Dense
}

// NewSGD creates an SGD optimizer over params with learning rate lr.
func NewSGD(params []*Parameter, lr float64) *SGD {
	return &SGD{LR: lr, params: params}
}

// ZeroGrad clears the gradient buffers of all managed parameters.
func (s *SGD) ZeroGrad() {
	for _, p := range s.params {
		p.ZeroGrad()
	}
}

// Step applies one update, value -= lr * grad, with a velocity term when
// momentum is nonzero.
func (s *SGD) Step() {
	if s.Momentum != 0 && s.velocities == nil {
		s.velocities = make([]*mat.Dense, len(s.params))
		for i, p := range s.params {
			if p.Empty() {
				s.velocities[i] = &mat.Dense{}
				continue
			}
			r, c := p.Value.Dims()
			s.velocities[i] = mat.NewDense(r, c, nil)
		}
	}
	for i, p := range s.params {
		if p.Empty() {
			continue
		}
		var scaled mat.Dense
		scaled.Scale(s.LR, p.Grad)
		if s.Momentum != 0 {
			v := s.velocities[i]
			v.Scale(s.Momentum, v)
			v.Sub(v, &scaled)
			p.Value.Add(p.Value, v)
		} else {
			p.Value.Sub(p.Value, &scaled)
		}
	}
}
