package testcases

import "math"

// All contains all filter cases, grouped by kernel family.
// The family name is used as a prefix in output filenames.
var All = map[string][]Case{
	"box":      boxCases,
	"triangle": triangleCases,
	"gaussian": gaussianCases,
	"mitchell": mitchellCases,
	"lanczos":  lanczosCases,
}

// The box filter integrates to the area of its support.
var boxCases = []Case{
	{Name: "unit", Filter: box(1, 1), Integral: 4},
	{Name: "wide", Filter: box(4, 0.5), Integral: 8},
}

// Each triangle axis integrates to its radius.
var triangleCases = []Case{
	{Name: "unit", Filter: triangle(1, 1), Integral: 1},
	{Name: "tall", Filter: triangle(1.5, 3), Integral: 4.5},
}

var gaussianCases = []Case{
	{Name: "default", Filter: gaussian(2, 2, 4), Integral: gaussianIntegral(2, 2, 4)},
	{Name: "narrow", Filter: gaussian(1.5, 1.5, 8), Integral: gaussianIntegral(1.5, 1.5, 8)},
	{Name: "rect", Filter: gaussian(2, 1, 2), Integral: gaussianIntegral(2, 1, 2)},
}

// The Mitchell-Netravali family integrates to xRadius*yRadius/4 for every
// choice of B and C (the family's normalization constraint).
var mitchellCases = []Case{
	{Name: "classic", Filter: mitchell(2, 2, 1.0/3, 1.0/3), Integral: 1},
	{Name: "catmull_rom", Filter: mitchell(2, 2, 0, 0.5), Integral: 1},
	{Name: "bspline", Filter: mitchell(2, 2, 1, 0), Integral: 1},
}

// No closed form for the windowed sinc.
var lanczosCases = []Case{
	{Name: "tau_2", Filter: lanczos(2, 2, 2), Integral: math.NaN()},
	{Name: "tau_3", Filter: lanczos(3, 3, 3), Integral: math.NaN()},
}
