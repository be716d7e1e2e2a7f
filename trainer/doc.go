// Package trainer provides training orchestration for the radical
// prediction network. It runs sequential epoch loops over encoded word and
// radical vectors, driving an externally supplied optimizer, criterion and
// optional learning rate scheduler.
package trainer
