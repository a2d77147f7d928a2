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

	"golang.org/x/image/draw"
)

// DrawKernel adapts f for use with the golang.org/x/image/draw package,
// so that any filter in this package can drive draw.Kernel.Scale and
// draw.Kernel.Transform.
//
// Since draw.Kernel applies the same 1D kernel along both axes, f must
// have square support (XRadius == YRadius).  The 1D response is recovered
// from the separable 2D filter as Evaluate(t, 0) / Evaluate(0, 0), which
// requires a nonzero centre weight.  Filters violating either condition
// are rejected with [ErrInvalidParameter].
//
// Note that draw.Kernel normalizes the kernel weights for each destination
// pixel, so the adapted kernel behaves identically whether or not f is
// wrapped in [Normalized].
func DrawKernel(f Filter) (*draw.Kernel, error) {
	xRadius := f.XRadius()
	yRadius := f.YRadius()
	if xRadius != yRadius {
		return nil, fmt.Errorf("support %g x %g is not square: %w",
			2*xRadius, 2*yRadius, ErrInvalidParameter)
	}

	centre := f.Evaluate(0, 0)
	if centre == 0 || math.IsNaN(centre) || math.IsInf(centre, 0) {
		return nil, fmt.Errorf("centre weight %g: %w",
			centre, ErrInvalidParameter)
	}
	rcpCentre := 1 / centre

	return &draw.Kernel{
		Support: xRadius,
		At: func(t float64) float64 {
			return f.Evaluate(t, 0) * rcpCentre
		},
	}, nil
}
