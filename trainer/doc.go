// Package trainer provides high-level training orchestration for puzzlenet
// networks. It manages the epoch loop over decoded datasets, the gradient
// optimizers, statistically sampled evaluation and best-model checkpointing.
package trainer
