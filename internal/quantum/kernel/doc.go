// Package kernel computes fidelity quantum kernels.
//
// A feature map encodes a classical sample x into a parameterised circuit;
// the kernel between two samples is the fidelity |<phi(x)|phi(z)>|^2 of the
// resulting statevectors. The Gram matrix of a dataset under such a kernel
// is what a kernel SVM consumes in place of a classical kernel.
package kernel
