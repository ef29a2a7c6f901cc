package integrate

import (
	"errors"

	"github.com/katalvlaran/obspace/limit"
)

// Sentinel errors for integration requests.
var (
	// ErrNilIntegrand indicates MonteCarlo was called without a function.
	ErrNilIntegrand = errors.New("integrate: nil integrand")
	// ErrBadSamples indicates a negative draw count or a Monte-Carlo
	// sample count below MinSamples.
	ErrBadSamples = errors.New("integrate: bad sample count")
	// ErrUnboundedDomain indicates a region whose box has infinite edges.
	ErrUnboundedDomain = errors.New("integrate: domain has unbounded edges")
)

// ErrNoLimits aliases the limit-level sentinel so callers matching at this
// level need not import package limit.
var ErrNoLimits = limit.ErrNoLimits

// panicNilRand guards sampling against a nil randomness source, a
// programmer error rather than a data error.
const panicNilRand = "integrate: nil *rand.Rand"

const (
	// DefaultSamples is the sample count DefaultOptions starts from.
	DefaultSamples = 100_000
	// DefaultSeed is the RNG seed DefaultOptions starts from.
	DefaultSeed int64 = 1
	// MinSamples is the smallest sample count with a defined standard
	// error.
	MinSamples = 2
)

// Integrand evaluates the integrated function on a batch of points, one
// value per row.
type Integrand func(x [][]float64) ([]float64, error)

// Options contains tunable parameters for MonteCarlo.
type Options struct {
	// Samples is the number of points drawn; at least MinSamples.
	Samples int
	// Seed seeds the internal RNG. Estimates are deterministic per seed.
	Seed int64
}

// DefaultOptions returns Options with DefaultSamples and DefaultSeed.
func DefaultOptions() Options {
	return Options{Samples: DefaultSamples, Seed: DefaultSeed}
}

// Result carries a Monte-Carlo estimate.
type Result struct {
	// Value is the integral estimate: region volume times the sample mean.
	Value float64
	// StdErr is the standard error of Value.
	StdErr float64
	// Samples is the number of points the estimate used.
	Samples int
}
