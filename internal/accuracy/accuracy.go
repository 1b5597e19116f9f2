// SPDX-License-Identifier: MIT

// Package accuracy sweeps the toolkit's fast approximations against
// their stdlib references and reduces the differences to summary
// statistics. Sample grids are jittered from a seed so repeated sweeps
// with the same seed are identical.
package accuracy

import (
	"fmt"
	"math"
	"strconv"
	"toolkit/pkg/fastmath"
	"toolkit/pkg/mathx"
	"toolkit/pkg/random"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Report summarizes approximation error for one function sweep.
type Report struct {
	Name    string  // Function under test
	Samples int     // Number of sample points swept
	MaxAbs  float64 // Largest absolute error
	MeanAbs float64 // Mean absolute error
	RMS     float64 // Root mean square error
	MaxRel  float64 // Largest relative error, zero references skipped
}

// Header returns the column titles for rendered reports, aligned with
// Report.Row.
func Header() []string {
	return []string{"FUNCTION", "SAMPLES", "MAX ABS", "MEAN ABS", "RMS", "MAX REL"}
}

// Row renders the report as strings for table or CSV output.
func (r Report) Row() []string {
	return []string{
		r.Name,
		strconv.Itoa(r.Samples),
		fmt.Sprintf("%.3e", r.MaxAbs),
		fmt.Sprintf("%.3e", r.MeanAbs),
		fmt.Sprintf("%.3e", r.RMS),
		fmt.Sprintf("%.3e", r.MaxRel),
	}
}

// Workspace holds pre-allocated buffers for error sweeps.
type Workspace struct {
	inputs []float64 // ...sample points for the sweep
	absErr []float64 // ...absolute error per sample
	sqErr  []float64 // ...squared error per sample
}

// Evaluator sweeps approximation error across a fixed set of sample
// points. Buffers are allocated once so repeated Evaluate calls stay
// off the heap.
type Evaluator struct {
	workspace Workspace
}

// NewEvaluator creates an evaluator over the given sample points and
// pre-allocates all required error buffers.
func NewEvaluator(inputs []float64) (*Evaluator, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("accuracy: no sample points")
	}

	return &Evaluator{
		workspace: Workspace{
			inputs: inputs,
			absErr: make([]float64, len(inputs)),
			sqErr:  make([]float64, len(inputs)),
		},
	}, nil
}

// Evaluate runs approx and exact over every sample point and reduces
// the differences to summary statistics. MaxRel skips samples where
// the reference value is zero.
func (e *Evaluator) Evaluate(name string, approx, exact func(float64) float64) Report {
	maxRel := 0.0
	for i, x := range e.workspace.inputs {
		got := approx(x)
		want := exact(x)
		diff := math.Abs(got - want)
		e.workspace.absErr[i] = diff
		e.workspace.sqErr[i] = diff * diff
		if want != 0 {
			if rel := diff / math.Abs(want); rel > maxRel {
				maxRel = rel
			}
		}
	}

	return Report{
		Name:    name,
		Samples: len(e.workspace.inputs),
		MaxAbs:  floats.Max(e.workspace.absErr),
		MeanAbs: stat.Mean(e.workspace.absErr, nil),
		RMS:     math.Sqrt(stat.Mean(e.workspace.sqErr, nil)),
		MaxRel:  maxRel,
	}
}

// Grid returns n evenly spaced sample points covering [lo, hi]
// inclusive. It returns nil when n is not positive; a grid of one
// point holds lo.
func Grid(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}

// jitteredGrid perturbs each grid point by up to half a step in either
// direction, clamped back into [lo, hi].
func jitteredGrid(lo, hi float64, n int, rng *random.Rand) []float64 {
	grid := Grid(lo, hi, n)
	if n < 2 {
		return grid
	}

	step := (hi - lo) / float64(n-1)
	for i := range grid {
		grid[i] = mathx.Clamp(grid[i]+(rng.Float64()-0.5)*step, lo, hi)
	}
	return grid
}

// Suite sweeps every approximation in the toolkit against its stdlib
// reference over jittered grids and returns one report per function.
func Suite(samples int, seed uint64) ([]Report, error) {
	rng := random.New(random.NewSeededSource(seed))

	cases := []struct {
		name   string
		lo, hi float64
		approx func(float64) float64
		exact  func(float64) float64
	}{
		{"sqrt", 0, 1e6, fastmath.Sqrt, math.Sqrt},
		{"invsqrt", 1e-3, 1e6, fastmath.InvSqrt, func(x float64) float64 { return 1 / math.Sqrt(x) }},
		{"sin", -math.Pi, math.Pi, fastmath.Sin, math.Sin},
		{"cos", -math.Pi, math.Pi, fastmath.Cos, math.Cos},
		{"tan", -1.5, 1.5, fastmath.Tan, math.Tan},
	}

	reports := make([]Report, 0, len(cases))
	for _, c := range cases {
		ev, err := NewEvaluator(jitteredGrid(c.lo, c.hi, samples, rng))
		if err != nil {
			return nil, fmt.Errorf("failed to build %s sweep: %w", c.name, err)
		}
		reports = append(reports, ev.Evaluate(c.name, c.approx, c.exact))
	}

	return reports, nil
}
