package integrate

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/obspace/space"
)

// Sample draws n uniform points from region. A union region splits the
// draw across its alternatives proportionally to their box volume, the
// last alternative absorbing the rounding remainder; overlap between
// alternatives is not corrected for.
//
// The region must have defined, purely rectangular, finite limits:
// ErrNoLimits for Unset/Absent state, space.ErrNoRectLimits for
// predicate-shaped limits, ErrUnboundedDomain for sentinel edges.
// Panics with panicNilRand when r is nil.
//
// Complexity: O(n × dim).
func Sample(r *rand.Rand, region space.Region, n int) ([][]float64, error) {
	if r == nil {
		panic(panicNilRand)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadSamples, n)
	}
	if !region.HasLimits() {
		return nil, fmt.Errorf("%w: state %s", ErrNoLimits, region.State())
	}
	if !region.HasRectLimits() {
		return nil, fmt.Errorf("%w: no box to draw from", space.ErrNoRectLimits)
	}

	alts := region.Alternatives()
	areas := make([]float64, len(alts))
	for i, alt := range alts {
		area, err := alt.RectArea()
		if err != nil {
			return nil, err
		}
		if math.IsInf(area, 0) {
			return nil, fmt.Errorf("%w: infinite volume", ErrUnboundedDomain)
		}
		areas[i] = area
	}
	total := floats.Sum(areas)

	out := make([][]float64, 0, n)
	assigned := 0
	for i, alt := range alts {
		count := n - assigned
		if i < len(alts)-1 {
			weight := 1 / float64(len(alts))
			if total > 0 {
				weight = areas[i] / total
			}
			count = int(float64(n) * weight)
		}
		pts, err := sampleBox(r, alt, count)
		if err != nil {
			return nil, err
		}
		out = append(out, pts...)
		assigned += count
	}

	return out, nil
}

// sampleBox draws n uniform points from the box of one alternative.
func sampleBox(r *rand.Rand, s *space.Space, n int) ([][]float64, error) {
	lo, up, err := s.ConcreteRect()
	if err != nil {
		return nil, err
	}
	for d := range lo {
		if math.IsInf(lo[d], 0) || math.IsInf(up[d], 0) {
			return nil, fmt.Errorf("%w: dimension %d", ErrUnboundedDomain, d)
		}
	}

	out := make([][]float64, n)
	for i := range out {
		row := make([]float64, len(lo))
		for d := range row {
			row[d] = lo[d] + r.Float64()*(up[d]-lo[d])
		}
		out[i] = row
	}

	return out, nil
}

// MonteCarlo estimates the integral of f over region as volume×mean(f)
// with the standard error volume×stddev(f)/√n, drawing opts.Samples points
// seeded by opts.Seed. The region must satisfy the Sample requirements.
//
// Complexity: O(samples × dim) plus one integrand call on the full batch.
func MonteCarlo(f Integrand, region space.Region, opts Options) (Result, error) {
	if f == nil {
		return Result{}, ErrNilIntegrand
	}
	if opts.Samples < MinSamples {
		return Result{}, fmt.Errorf("%w: %d < %d", ErrBadSamples, opts.Samples, MinSamples)
	}

	r := rand.New(rand.NewSource(opts.Seed))
	x, err := Sample(r, region, opts.Samples)
	if err != nil {
		return Result{}, err
	}
	vals, err := f(x)
	if err != nil {
		return Result{}, fmt.Errorf("integrate: integrand: %w", err)
	}
	if len(vals) != len(x) {
		return Result{}, fmt.Errorf("integrate: integrand returned %d values for %d points", len(vals), len(x))
	}

	volume, err := region.RectArea()
	if err != nil {
		return Result{}, err
	}
	mean := stat.Mean(vals, nil)
	sd := stat.StdDev(vals, nil)

	return Result{
		Value:   volume * mean,
		StdErr:  volume * sd / math.Sqrt(float64(len(vals))),
		Samples: len(vals),
	}, nil
}
