// Package engine implements the real-estate calculators as pure functions.
//
// Every function takes value inputs and returns value results at full float64
// precision; nothing is rounded for display and nothing is shared between
// calls, so all functions are safe for concurrent use. Invalid inputs
// (negative amounts or rates, non-positive terms, NaN or Inf) are rejected
// with an error wrapping ErrInvalidParameter. Ratios whose denominator is zero
// are reported as 0 rather than NaN or Inf.
package engine
