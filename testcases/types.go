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

// Package testcases defines filter instances shared by the tests, the
// benchmarks, and the genpdf command.
package testcases

import (
	"math"

	"seehuhn.de/go/filter"
)

// Case pairs a filter instance with its exact integral, where one is known.
type Case struct {
	Name   string // lowercase a-z, 0-9 and _ only
	Filter filter.Filter

	// Integral is the analytic value of the integral of Evaluate over the
	// support, or NaN if no closed form is available.
	Integral float64
}

func box(xRadius, yRadius float64) filter.Filter {
	f, err := filter.NewBox(xRadius, yRadius)
	if err != nil {
		panic(err)
	}
	return f
}

func triangle(xRadius, yRadius float64) filter.Filter {
	f, err := filter.NewTriangle(xRadius, yRadius)
	if err != nil {
		panic(err)
	}
	return f
}

func gaussian(xRadius, yRadius, alpha float64) filter.Filter {
	f, err := filter.NewGaussian(xRadius, yRadius, alpha)
	if err != nil {
		panic(err)
	}
	return f
}

func mitchell(xRadius, yRadius, b, c float64) filter.Filter {
	f, err := filter.NewMitchell(xRadius, yRadius, b, c)
	if err != nil {
		panic(err)
	}
	return f
}

func lanczos(xRadius, yRadius, tau float64) filter.Filter {
	f, err := filter.NewLanczos(xRadius, yRadius, tau)
	if err != nil {
		panic(err)
	}
	return f
}

// gaussianIntegral is the closed form for the shifted Gaussian filter:
// each axis contributes r * (sqrt(pi/alpha)*erf(sqrt(alpha)) - 2*exp(-alpha)).
func gaussianIntegral(xRadius, yRadius, alpha float64) float64 {
	axis := math.Sqrt(math.Pi/alpha)*math.Erf(math.Sqrt(alpha)) - 2*math.Exp(-alpha)
	return xRadius * axis * yRadius * axis
}
