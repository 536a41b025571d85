// Package distance provides distance calculations between unit-tagged vectors.
//
// All functions work on canonical values: both operands are converted into
// the canonical unit of their shared dimension first, so vectors of
// different axis layouts can be compared directly.
//
// # Supported Metrics
//
//   - MetricL2: Euclidean distance (canonical unit)
//   - MetricSquaredL2: Squared Euclidean distance (squared canonical unit)
//   - MetricCosine: Cosine similarity (dimensionless)
//
// # Usage
//
//	d := distance.L2(a, b)
//	n := distance.Norm(a)
package distance
