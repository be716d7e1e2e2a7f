package learning

import "gonum.org/v1/gonum/mat"

// Criterion measures the distance between a prediction and a target and
// provides the gradient of that distance with respect to the prediction.
type Criterion interface {
	Loss(pred, target *mat.VecDense) float64
	Grad(pred, target *mat.VecDense) *mat.VecDense
}

// MSE is the mean squared error criterion.
type MSE struct{}

// NewMSE creates a fresh MSE criterion. Callers that want the default
// criterion construct one per call rather than sharing an instance.
func NewMSE() MSE {
	return MSE{}
}

// Loss returns the mean of the squared elementwise differences. Empty
// vectors have zero loss.
func (MSE) Loss(pred, target *mat.VecDense) float64 {
	n := pred.Len()
	if n == 0 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		d := pred.AtVec(i) - target.AtVec(i)
		sum += d * d
	}
	return sum / float64(n)
}

// Grad returns dLoss/dPred, elementwise 2*(pred-target)/n.
func (MSE) Grad(pred, target *mat.VecDense) *mat.VecDense {
	n := pred.Len()
	if n == 0 {
		return &mat.VecDense{}
	}
	out := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		out.SetVec(i, 2*(pred.AtVec(i)-target.AtVec(i))/float64(n))
	}
	return out
}
