package trainer

import (
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/neurlang/kanjiffnn/learning"
)

// Model is a differentiable forward pass with trainable parameters.
type Model interface {
	Forward(x *mat.VecDense) *mat.VecDense
	Backward(grad *mat.VecDense)
	Parameters() []*learning.Parameter
}

// Train runs epochs full sequential passes over the encoded pairs. Each
// sample does zero grad, forward, loss, backward, step; the scheduler, if
// any, steps once per epoch. There is no early exit and no parallelism.
//
// A nil crit constructs a fresh MSE criterion for this call. A nil logger
// trains silently; otherwise the last sample loss is logged for each of
// the first 100 epochs and every 1000th epoch after that. Panics when the
// input and target counts differ.
//
// Returns the last sample loss of every epoch, in order.
func Train(model Model, inputs, targets []*mat.VecDense, opt learning.Optimizer, crit learning.Criterion, epochs int, sched learning.Scheduler, logger *zap.Logger) []float64 {
	if len(inputs) != len(targets) {
		panic(fmt.Sprintf("trainer: %d input vectors for %d target vectors", len(inputs), len(targets)))
	}
	if crit == nil {
		crit = learning.NewMSE()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	losses := make([]float64, 0, epochs)
	for epoch := 0; epoch < epochs; epoch++ {
		var loss float64
		for i := range inputs {
			opt.ZeroGrad()
			output := model.Forward(inputs[i])
			loss = crit.Loss(output, targets[i])
			model.Backward(crit.Grad(output, targets[i]))
			opt.Step()
		}
		if sched != nil {
			sched.Step()
		}
		losses = append(losses, loss)
		if epoch%1000 == 0 || epoch < 100 {
			logger.Info("epoch", zap.Int("epoch", epoch+1), zap.Float64("loss", loss))
		}
	}
	return losses
}
