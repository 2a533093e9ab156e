// Package synth synthesizes backing values that belong to no case of an
// enumeration.
//
// String values are perturbed from the original ("invalid_<value>_<n>").
// Integer values are probed around the valid range: just past the boundary
// for dense enumerations, sampled from a band around the range for sparse
// ones. Sampling is bounded, so synthesis always terminates.
//
// A Synthesizer is seeded. Reusing the seed reproduces the values, which
// lets a failing conformance run be replayed exactly.
package synth
