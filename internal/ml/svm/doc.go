// Package svm is a didactic support vector machine trained with the
// simplified SMO procedure.
//
// Training always happens against a kernel Gram matrix. Train builds the
// matrix from a Kernel function and keeps the training samples so the model
// can score arbitrary points; TrainGram accepts a precomputed matrix, which
// is how the quantum fidelity kernel plugs in.
package svm
