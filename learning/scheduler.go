package learning

// Scheduler adjusts the optimizer learning rate, stepped once per epoch.
type Scheduler interface {
	Step()
}

// StepLR multiplies the SGD learning rate by Gamma every StepSize epochs.
type StepLR struct {
	Opt      *SGD
	StepSize int
	Gamma    float64

	epoch int
}

// NewStepLR creates a StepLR scheduler driving opt.
func NewStepLR(opt *SGD, stepSize int, gamma float64) *StepLR {
	return &StepLR{Opt: opt, StepSize: stepSize, Gamma: gamma}
}

// Step counts one epoch and decays the learning rate on the interval.
func (s *StepLR) Step() {
	s.epoch++
	if s.StepSize > 0 && s.epoch%s.StepSize == 0 {
		s.Opt.LR *= s.Gamma
	}
}
