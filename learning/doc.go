// Package learning provides the gradient machinery consumed by the
// trainer: trainable parameters, the SGD optimizer, the MSE criterion and
// a step learning rate scheduler.
package learning
