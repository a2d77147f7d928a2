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

// Command genpdf plots the 1D cross-section of each filter test case
// as a single-page PDF, for visual inspection of the kernel shapes.
// Run from the go-filter module root directory.
package main

import (
	"fmt"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/filter/testcases"
)

const outDir = "testdata/profiles"

const (
	pageWidth  = 360.0
	pageHeight = 240.0
	margin     = 24.0
	numSamples = 256
)

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, family := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[family] {
			name := family + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")
			if err := plotProfile(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

// plotProfile strokes the curve x -> Evaluate(x, 0) over the support
// interval [-XRadius, XRadius].
func plotProfile(tc testcases.Case, pdfPath string) error {
	paper := &pdf.Rectangle{URx: pageWidth, URy: pageHeight}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	xRadius := tc.Filter.XRadius()

	// sample the 1D cross-section and find the value range
	xs := make([]float64, numSamples+1)
	ys := make([]float64, numSamples+1)
	yMin, yMax := 0.0, 0.0
	for i := range xs {
		x := xRadius * (2*float64(i)/numSamples - 1)
		y := tc.Filter.Evaluate(x, 0)
		xs[i] = x
		ys[i] = y
		yMin = math.Min(yMin, y)
		yMax = math.Max(yMax, y)
	}
	if yMax == yMin {
		yMax = yMin + 1
	}

	toPageX := func(x float64) float64 {
		return margin + (x+xRadius)/(2*xRadius)*(pageWidth-2*margin)
	}
	toPageY := func(y float64) float64 {
		return margin + (y-yMin)/(yMax-yMin)*(pageHeight-2*margin)
	}

	// frame and zero line in light gray
	page.SetStrokeColor(color.DeviceGray(0.7))
	page.SetLineWidth(0.5)
	page.Rectangle(margin, margin, pageWidth-2*margin, pageHeight-2*margin)
	page.MoveTo(toPageX(-xRadius), toPageY(0))
	page.LineTo(toPageX(xRadius), toPageY(0))
	page.MoveTo(toPageX(0), margin)
	page.LineTo(toPageX(0), pageHeight-margin)
	page.Stroke()

	// the profile curve
	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(1)
	page.MoveTo(toPageX(xs[0]), toPageY(ys[0]))
	for i := 1; i < len(xs); i++ {
		page.LineTo(toPageX(xs[i]), toPageY(ys[i]))
	}
	page.Stroke()

	return page.Close()
}
