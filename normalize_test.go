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

package filter_test

import (
	"maps"
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/filter"
	"seehuhn.de/go/filter/testcases"
)

// TestBoxNormalization: the box filter is constant, so the estimator is
// exact (the area of the support) at every sample count.
func TestBoxNormalization(t *testing.T) {
	f, err := filter.NewBox(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	for _, n := range []int{64, 1024, 16384} {
		if got := filter.NormalizationFactor(f, n); got != 4.0 {
			t.Errorf("NormalizationFactor(box, %d) = %v, want 4", n, got)
		}
	}
}

// TestAnalyticIntegrals compares the estimator against the closed-form
// integral for every catalog case which has one.
func TestAnalyticIntegrals(t *testing.T) {
	for _, family := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[family] {
			if math.IsNaN(tc.Integral) {
				continue
			}
			t.Run(family+"_"+tc.Name, func(t *testing.T) {
				got := filter.NormalizationFactor(tc.Filter, 16384)
				relErr := math.Abs(got-tc.Integral) / math.Abs(tc.Integral)
				if relErr > 1e-3 {
					t.Errorf("estimate %v, analytic %v (relative error %v)",
						got, tc.Integral, relErr)
				}
			})
		}
	}
}

// TestConvergence: the low-discrepancy estimator error shrinks as the
// sample count grows.
func TestConvergence(t *testing.T) {
	f, err := filter.NewGaussian(2, 2, 4)
	if err != nil {
		t.Fatal(err)
	}

	// closed form, matching the catalog's gaussian cases
	axis := 2 * (math.Sqrt(math.Pi/4)*math.Erf(2) - 2*math.Exp(-4))
	exact := axis * axis

	counts := []int{64, 1024, 16384}
	errs := make([]float64, len(counts))
	for i, n := range counts {
		errs[i] = math.Abs(filter.NormalizationFactor(f, n) - exact)
	}
	for i := 1; i < len(errs); i++ {
		if errs[i] >= errs[i-1] {
			t.Errorf("error did not shrink from %d to %d samples: %v -> %v",
				counts[i-1], counts[i], errs[i-1], errs[i])
		}
	}
	if relErr := errs[len(errs)-1] / exact; relErr > 1e-3 {
		t.Errorf("relative error %v at %d samples", relErr, counts[len(counts)-1])
	}
}

// TestLanczosSelfConsistent: no closed form is available, so check that the
// estimate has stabilized at high sample counts.
func TestLanczosSelfConsistent(t *testing.T) {
	f, err := filter.NewLanczos(3, 3, 3)
	if err != nil {
		t.Fatal(err)
	}
	coarse := filter.NormalizationFactor(f, 16384)
	fine := filter.NormalizationFactor(f, 65536)
	if math.Abs(coarse/fine-1) > 1e-2 {
		t.Errorf("estimates disagree: %v at 16384 vs %v at 65536 samples",
			coarse, fine)
	}
}

func TestDeterministic(t *testing.T) {
	for _, family := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[family] {
			a := filter.NormalizationFactor(tc.Filter, 1024)
			b := filter.NormalizationFactor(tc.Filter, 1024)
			if a != b {
				t.Errorf("%s_%s: results differ: %v vs %v",
					family, tc.Name, a, b)
			}
		}
	}
}

func TestDefaultSampleCount(t *testing.T) {
	f, err := filter.NewTriangle(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	got := filter.NormalizationFactor(f, 0)
	want := filter.NormalizationFactor(f, filter.DefaultSampleCount)
	if got != want {
		t.Errorf("NormalizationFactor(f, 0) = %v, want %v", got, want)
	}
}

func TestNormalized(t *testing.T) {
	f, err := filter.NewGaussian(2, 2, 4)
	if err != nil {
		t.Fatal(err)
	}
	nf, err := filter.NewNormalized(f, 16384)
	if err != nil {
		t.Fatal(err)
	}

	// radii and support pass through unchanged
	if nf.XRadius() != f.XRadius() || nf.YRadius() != f.YRadius() {
		t.Errorf("radii %v x %v, want %v x %v",
			nf.XRadius(), nf.YRadius(), f.XRadius(), f.YRadius())
	}

	// the wrapped filter integrates to 1
	integral := filter.NormalizationFactor(nf, 16384)
	if math.Abs(integral-1) > 1e-6 {
		t.Errorf("normalized integral = %v, want 1", integral)
	}

	// Evaluate is the raw weight divided by the factor
	factor := nf.Factor()
	got := nf.Evaluate(0.5, -0.25)
	want := f.Evaluate(0.5, -0.25) / factor
	if math.Abs(got-want) > 1e-15 {
		t.Errorf("Evaluate = %v, want %v", got, want)
	}
}
