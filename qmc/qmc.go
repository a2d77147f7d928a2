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

// Package qmc provides deterministic low-discrepancy point sets for
// quasi-Monte Carlo integration.
//
// Compared with pseudo-random sampling, a low-discrepancy point set covers
// the unit square more evenly, so integration estimates converge like
// O(1/n) rather than O(1/sqrt(n)) for smooth integrands.
package qmc

import (
	"math/bits"

	"seehuhn.de/go/geom/vec"
)

// RadicalInverse returns the base-2 radical inverse of i: the binary digits
// of i, mirrored around the binary point.  The result is in [0, 1).
func RadicalInverse(i uint32) float64 {
	return float64(bits.Reverse32(i)) * 0x1p-32
}

// Hammersley returns point i of the n-point radix-2 Hammersley set in
// [0, 1) x [0, 1).  The first coordinate is i/n, the second is the base-2
// radical inverse of i.  The set is deterministic: the same (i, n) always
// yields the same point.
//
// The caller must ensure 0 <= i < n.
func Hammersley(i, n uint32) vec.Vec2 {
	return vec.Vec2{
		X: float64(i) / float64(n),
		Y: RadicalInverse(i),
	}
}
