// Package stats computes throughput averages and chart series over the
// flight record table, and linearly extrapolates a completion date against
// the mountain target.
package stats
