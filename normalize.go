// seehuhn.de/go/filter - reconstruction filters for image sampling
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package filter

import (
	"fmt"
	"math"

	"seehuhn.de/go/filter/qmc"
)

// DefaultSampleCount is the sample count used by [NormalizationFactor] and
// [NewNormalized] when the caller passes a non-positive count.
const DefaultSampleCount = 1024

// NormalizationFactor estimates the integral of f.Evaluate over the
// filter's support using quasi-Monte Carlo integration with a radix-2
// Hammersley point set.  Dividing the filter's output by this value yields
// a filter which integrates to 1 over its support.
//
// Larger sample counts reduce the estimation error but do not change the
// expected value.  A sampleCount <= 0 selects [DefaultSampleCount].
//
// The point set is deterministic, so repeated calls with the same filter
// and sample count return bit-identical results.
func NormalizationFactor(f Filter, sampleCount int) float64 {
	if sampleCount <= 0 {
		sampleCount = DefaultSampleCount
	}

	xRadius := f.XRadius()
	yRadius := f.YRadius()

	n := uint32(sampleCount)
	var sum float64
	for i := uint32(0); i < n; i++ {
		s := qmc.Hammersley(i, n)

		// map the unit square onto the support rectangle
		px := xRadius * (2*s.X - 1)
		py := yRadius * (2*s.Y - 1)

		sum += f.Evaluate(px, py)
	}

	// standard Monte Carlo estimator: mean value times the area of the
	// integration domain
	return sum * (4 * xRadius * yRadius) / float64(sampleCount)
}

// Normalized wraps a filter so that it integrates (approximately) to 1
// over its support.  The normalization factor is estimated once, by
// [NormalizationFactor], when the wrapper is created.
type Normalized struct {
	Filter
	factor    float64
	rcpFactor float64
}

// NewNormalized wraps f with its normalization factor, estimated with the
// given sample count (or [DefaultSampleCount] if sampleCount <= 0).  An
// error is returned if the estimated factor is zero or not finite, since
// such a filter cannot be normalized.
func NewNormalized(f Filter, sampleCount int) (*Normalized, error) {
	factor := NormalizationFactor(f, sampleCount)
	if factor == 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return nil, fmt.Errorf("normalization factor %g: %w",
			factor, ErrInvalidParameter)
	}
	return &Normalized{
		Filter:    f,
		factor:    factor,
		rcpFactor: 1 / factor,
	}, nil
}

// Factor returns the normalization factor estimated at construction.
func (f *Normalized) Factor() float64 {
	return f.factor
}

// Evaluate returns the normalized filter weight at offset (x, y).
func (f *Normalized) Evaluate(x, y float64) float64 {
	return f.Filter.Evaluate(x, y) * f.rcpFactor
}
