// Package mathx implements the integer routines behind the numq CLI:
// factorial computation and single-pass aggregates over integer sequences.
package mathx
