// Package feedforward implements the two layer radical prediction network
package feedforward

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/neurlang/kanjiffnn/learning"
)

// Network maps a one hot English word vector to radical activations:
// Linear, ReLU, Linear, sigmoid. Forward caches activations for Backward,
// so a Network is not safe for concurrent training; Predict is the pure,
// concurrency safe forward pass.
type Network struct {
	w1, b1 *learning.Parameter
	w2, b2 *learning.Parameter

	// activations cached by the most recent Forward call
	x  *mat.VecDense
	z1 *mat.VecDense
	a1 *mat.VecDense
	y  *mat.VecDense
}

// New creates a network with in inputs, nodes hidden units and out
// outputs. Weights are Xavier uniform drawn from rng, biases start at
// zero.
func New(in, nodes, out int, rng *rand.Rand) *Network {
	n := newZero(in, nodes, out)
	xavier(n.w1.Value, in, nodes, rng)
	xavier(n.w2.Value, nodes, out, rng)
	return n
}

func newZero(in, nodes, out int) *Network {
	return &Network{
		w1: learning.NewParameter(nodes, in),
		b1: learning.NewParameter(nodes, 1),
		w2: learning.NewParameter(out, nodes),
		b2: learning.NewParameter(out, 1),
	}
}

func xavier(w *mat.Dense, fanIn, fanOut int, rng *rand.Rand) {
	limit := math.Sqrt(6.0 / float64(fanIn+fanOut))
	r, c := w.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			w.Set(i, j, (rng.Float64()*2-1)*limit)
		}
	}
}

// Dims returns the input, hidden and output sizes.
func (n *Network) Dims() (in, nodes, out int) {
	nodes, in = n.w1.Value.Dims()
	out, _ = n.w2.Value.Dims()
	return in, nodes, out
}

// Forward runs one forward pass, caching the activations Backward needs,
// and returns the sigmoid output.
func (n *Network) Forward(x *mat.VecDense) *mat.VecDense {
	n.x = copyVec(x)
	n.z1 = linear(n.w1, n.b1, x)
	n.a1 = relu(n.z1)
	z2 := linear(n.w2, n.b2, n.a1)
	n.y = sigmoid(z2)
	return copyVec(n.y)
}

// Predict runs a forward pass without touching the cached activations.
// Safe for concurrent use.
func (n *Network) Predict(x *mat.VecDense) *mat.VecDense {
	a1 := relu(linear(n.w1, n.b1, x))
	return sigmoid(linear(n.w2, n.b2, a1))
}

// Backward accumulates parameter gradients for the most recent Forward
// call. grad is the loss gradient with respect to the network output.
func (n *Network) Backward(grad *mat.VecDense) {
	// a network with no outputs has a constant loss and no gradient
	if grad.Len() == 0 {
		return
	}

	// through the sigmoid
	dz2 := mat.NewVecDense(grad.Len(), nil)
	for i := 0; i < grad.Len(); i++ {
		y := n.y.AtVec(i)
		dz2.SetVec(i, grad.AtVec(i)*y*(1-y))
	}

	var outer2 mat.Dense
	outer2.Outer(1, dz2, n.a1)
	n.w2.Grad.Add(n.w2.Grad, &outer2)
	addColumn(n.b2.Grad, dz2)

	da1 := mat.NewVecDense(n.a1.Len(), nil)
	da1.MulVec(n.w2.Value.T(), dz2)

	// through the ReLU
	dz1 := mat.NewVecDense(da1.Len(), nil)
	for i := 0; i < da1.Len(); i++ {
		if n.z1.AtVec(i) > 0 {
			dz1.SetVec(i, da1.AtVec(i))
		}
	}

	var outer1 mat.Dense
	outer1.Outer(1, dz1, n.x)
	n.w1.Grad.Add(n.w1.Grad, &outer1)
	addColumn(n.b1.Grad, dz1)
}

// Parameters exposes the trainable parameters in a stable order.
func (n *Network) Parameters() []*learning.Parameter {
	return []*learning.Parameter{n.w1, n.b1, n.w2, n.b2}
}

func linear(w, b *learning.Parameter, x *mat.VecDense) *mat.VecDense {
	rows, _ := w.Value.Dims()
	if rows == 0 {
		return &mat.VecDense{}
	}
	out := mat.NewVecDense(rows, nil)
	out.MulVec(w.Value, x)
	out.AddVec(out, b.Value.ColView(0))
	return out
}

func relu(v *mat.VecDense) *mat.VecDense {
	out := newVec(v.Len())
	for i := 0; i < v.Len(); i++ {
		out.SetVec(i, math.Max(0, v.AtVec(i)))
	}
	return out
}

func sigmoid(v *mat.VecDense) *mat.VecDense {
	out := newVec(v.Len())
	for i := 0; i < v.Len(); i++ {
		out.SetVec(i, 1/(1+math.Exp(-v.AtVec(i))))
	}
	return out
}

func newVec(n int) *mat.VecDense {
	if n == 0 {
		return &mat.VecDense{}
	}
	return mat.NewVecDense(n, nil)
}

func copyVec(v *mat.VecDense) *mat.VecDense {
	if v.Len() == 0 {
		return &mat.VecDense{}
	}
	return mat.VecDenseCopyOf(v)
}

func addColumn(g *mat.Dense, v *mat.VecDense) {
	for i := 0; i < v.Len(); i++ {
		g.Set(i, 0, g.At(i, 0)+v.AtVec(i))
	}
}
