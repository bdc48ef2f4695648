// Package plot renders the demonstration figures: histograms of harvested
// random numbers and 2-D decision boundaries of trained classifiers. Output
// is PNG, sized for a quick look rather than publication.
package plot
