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

// Package filter implements 2D reconstruction filters for image sampling.
//
// A reconstruction filter assigns a weight to each sample offset within a
// rectangular support region centred on the origin.  Callers evaluate the
// filter at sample offsets and accumulate the weighted samples elsewhere,
// for example when reconstructing a continuous image from Monte Carlo point
// samples or when resampling a raster image.
//
// The filters are not normalized: they do not integrate to 1 over their
// support.  Callers who need a unit-integral kernel divide by the value
// returned by [NormalizationFactor], or use [NewNormalized].
//
// All filters are separable: the 2D weight is the product of the same 1D
// response applied to x/xRadius and y/yRadius.
package filter

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"
)

// ErrInvalidParameter indicates a filter constructor argument which is
// outside the valid range, for example a non-positive radius.
var ErrInvalidParameter = errors.New("invalid filter parameter")

// Filter is a 2D reconstruction filter with rectangular support.
//
// Evaluate returns the filter weight at offset (x, y) from the filter's
// centre.  The return value is only meaningful for |x| <= XRadius() and
// |y| <= YRadius(); outside the support the result is undefined.  The
// filter does not clamp or reject out-of-domain arguments, bounding the
// queries is the caller's responsibility.
//
// Filters are immutable after construction.  Evaluate may be called
// concurrently from multiple goroutines.
type Filter interface {
	// XRadius returns the half-width of the support along the x axis.
	XRadius() float64

	// YRadius returns the half-width of the support along the y axis.
	YRadius() float64

	// Support returns the support rectangle, centred on the origin.
	Support() rect.Rect

	// Evaluate returns the (unnormalized) filter weight at offset (x, y).
	Evaluate(x, y float64) float64
}

// kernel holds the state shared by all filter variants.  The reciprocal
// radii are computed once at construction so that Evaluate only multiplies.
type kernel struct {
	xRadius, yRadius       float64
	rcpXRadius, rcpYRadius float64
}

func newKernel(xRadius, yRadius float64) (kernel, error) {
	if err := checkPositive("xRadius", xRadius); err != nil {
		return kernel{}, err
	}
	if err := checkPositive("yRadius", yRadius); err != nil {
		return kernel{}, err
	}
	return kernel{
		xRadius:    xRadius,
		yRadius:    yRadius,
		rcpXRadius: 1 / xRadius,
		rcpYRadius: 1 / yRadius,
	}, nil
}

// checkPositive verifies that v is finite and strictly positive.
func checkPositive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%s = %g: %w", name, v, ErrInvalidParameter)
	}
	return nil
}

// checkFinite verifies that v is finite.
func checkFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s = %g: %w", name, v, ErrInvalidParameter)
	}
	return nil
}

// XRadius returns the half-width of the support along the x axis.
func (k *kernel) XRadius() float64 { return k.xRadius }

// YRadius returns the half-width of the support along the y axis.
func (k *kernel) YRadius() float64 { return k.yRadius }

// Support returns the support rectangle, centred on the origin.
func (k *kernel) Support() rect.Rect {
	return rect.Rect{
		LLx: -k.xRadius,
		LLy: -k.yRadius,
		URx: k.xRadius,
		URy: k.yRadius,
	}
}

// Box is the 2D box filter: a constant weight of 1 everywhere inside the
// support.
type Box struct {
	kernel
}

// NewBox creates a box filter with the given support half-widths.
func NewBox(xRadius, yRadius float64) (*Box, error) {
	k, err := newKernel(xRadius, yRadius)
	if err != nil {
		return nil, err
	}
	return &Box{kernel: k}, nil
}

// Evaluate returns 1 regardless of the offset.
func (f *Box) Evaluate(x, y float64) float64 {
	return 1.0
}

// Triangle is the 2D triangle (tent) filter.  The weight falls off linearly
// from 1 at the centre to 0 at the edge of the support.
type Triangle struct {
	kernel
}

// NewTriangle creates a triangle filter with the given support half-widths.
func NewTriangle(xRadius, yRadius float64) (*Triangle, error) {
	k, err := newKernel(xRadius, yRadius)
	if err != nil {
		return nil, err
	}
	return &Triangle{kernel: k}, nil
}

// Evaluate returns the triangle filter weight at offset (x, y).
func (f *Triangle) Evaluate(x, y float64) float64 {
	nx := x * f.rcpXRadius
	ny := y * f.rcpYRadius
	return (1 - math.Abs(nx)) * (1 - math.Abs(ny))
}

// Gaussian is a 2D Gaussian filter.  The underlying Gaussian is shifted
// down by its value at the edge of the support, so the filter reaches
// exactly zero at the boundary.  Without the shift, kernels from adjacent
// pixels would tile with a visible seam.
type Gaussian struct {
	kernel
	alpha float64
	shift float64
}

// NewGaussian creates a Gaussian filter.  Larger alpha values give a
// narrower bell; alpha must be finite.
func NewGaussian(xRadius, yRadius, alpha float64) (*Gaussian, error) {
	k, err := newKernel(xRadius, yRadius)
	if err != nil {
		return nil, err
	}
	if err := checkFinite("alpha", alpha); err != nil {
		return nil, err
	}
	return &Gaussian{
		kernel: k,
		alpha:  alpha,
		shift:  gauss(1, alpha),
	}, nil
}

// Evaluate returns the Gaussian filter weight at offset (x, y).
func (f *Gaussian) Evaluate(x, y float64) float64 {
	nx := x * f.rcpXRadius
	ny := y * f.rcpYRadius
	fx := gauss(nx, f.alpha) - f.shift
	fy := gauss(ny, f.alpha) - f.shift
	return fx * fy
}

func gauss(n, alpha float64) float64 {
	return math.Exp(-alpha * n * n)
}

// Mitchell is the 2D Mitchell-Netravali filter, a piecewise-cubic kernel
// controlled by the two filter-design parameters B and C.  Common choices
// are B = C = 1/3 (the values recommended by Mitchell and Netravali) and
// B = 0, C = 1/2 (Catmull-Rom).
//
// Reference: D. Mitchell, A. Netravali, "Reconstruction Filters in
// Computer Graphics", SIGGRAPH 1988.
type Mitchell struct {
	kernel

	// cubic coefficients, derived from B and C at construction
	a3, a2, a0     float64 // inner region, |2n| < 1
	b3, b2, b1, b0 float64 // outer region, 1 <= |2n| < 2
}

// NewMitchell creates a Mitchell-Netravali filter with design parameters
// b and c.
func NewMitchell(xRadius, yRadius, b, c float64) (*Mitchell, error) {
	k, err := newKernel(xRadius, yRadius)
	if err != nil {
		return nil, err
	}
	if err := checkFinite("b", b); err != nil {
		return nil, err
	}
	if err := checkFinite("c", c); err != nil {
		return nil, err
	}

	f := &Mitchell{kernel: k}
	f.a3 = (1.0 / 6.0) * (12 - 9*b - 6*c)
	f.a2 = (1.0 / 6.0) * (-18 + 12*b + 6*c)
	f.a0 = (1.0 / 6.0) * (6 - 2*b)
	f.b3 = (1.0 / 6.0) * (-b - 6*c)
	f.b2 = (1.0 / 6.0) * (6*b + 30*c)
	f.b1 = (1.0 / 6.0) * (-12*b - 48*c)
	f.b0 = (1.0 / 6.0) * (8*b + 24*c)
	return f, nil
}

// Evaluate returns the Mitchell-Netravali filter weight at offset (x, y).
func (f *Mitchell) Evaluate(x, y float64) float64 {
	return f.profile(x*f.rcpXRadius) * f.profile(y*f.rcpYRadius)
}

// profile evaluates the 1D response at normalized coordinate n in [-1, 1].
// The cubics are expressed in t = |2n|, so the inner polynomial covers
// t < 1 and the outer polynomial covers 1 <= t <= 2.  A tie at exactly
// t = 1 takes the outer branch.
func (f *Mitchell) profile(n float64) float64 {
	t1 := math.Abs(n + n)
	t2 := t1 * t1
	t3 := t2 * t1
	if t1 < 1 {
		return f.a3*t3 + f.a2*t2 + f.a0
	}
	return f.b3*t3 + f.b2*t2 + f.b1*t1 + f.b0
}

// Lanczos is the 2D Lanczos filter, a sinc kernel windowed by a wider sinc.
// The parameter tau controls the window width; tau = 2 and tau = 3 are the
// usual choices.
type Lanczos struct {
	kernel
	rcpTau float64
}

// NewLanczos creates a Lanczos filter with window width parameter tau.
func NewLanczos(xRadius, yRadius, tau float64) (*Lanczos, error) {
	k, err := newKernel(xRadius, yRadius)
	if err != nil {
		return nil, err
	}
	if err := checkPositive("tau", tau); err != nil {
		return nil, err
	}
	return &Lanczos{kernel: k, rcpTau: 1 / tau}, nil
}

// Evaluate returns the Lanczos filter weight at offset (x, y).
func (f *Lanczos) Evaluate(x, y float64) float64 {
	nx := x * f.rcpXRadius
	ny := y * f.rcpYRadius
	return f.profile(nx) * f.profile(ny)
}

func (f *Lanczos) profile(n float64) float64 {
	theta := math.Pi * n
	if theta == 0 {
		// removable singularity of sinc at 0
		return 1.0
	}
	return sinc(theta*f.rcpTau) * sinc(theta)
}

// sinc is the unnormalized sinc function sin(x)/x.  Callers must handle
// x == 0 themselves.
func sinc(x float64) float64 {
	return math.Sin(x) / x
}
