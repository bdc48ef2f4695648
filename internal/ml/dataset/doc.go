// Package dataset generates the synthetic 2-D binary-classification data
// used by the svm and qsvm demonstrations, plus split and scaling helpers.
// All randomness flows through an injected lcg generator so a seed fully
// determines the data.
package dataset
