// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/picobj/grid"
	"github.com/cpmech/picobj/poisson"
)

func Test_corrector01(tst *testing.T) {

	chk.PrintTitle("corrector01: a floating conductor is equipotential after correction")

	g := grid.New([3]int{4, 4, 4}, 1, nil)

	// tag the (0,0,0)-(1,1,1) true corner sub-cube as object 1; the rest
	// of the true domain is open plasma region.
	for i := 0; i <= 1; i++ {
		for j := 0; j <= 1; j++ {
			for k := 0; k <= 1; k++ {
				g.Values[g.Linear(i+1, j+1, k+1)] = 1
			}
		}
	}
	m := &Map{G: g, N: 1}

	c, err := Classify(m)
	if err != nil {
		tst.Errorf("classify failed: %v\n", err)
		return
	}
	if c.Surface.Count(1) < 2 {
		tst.Errorf("need at least two surface nodes to test equipotential, got %d\n", c.Surface.Count(1))
		return
	}

	rt := &Runtime{Rank: 0, Nproc: 1, Root: true, Distr: false}
	gm, err := GatherSurfaces(rt, 1, &c.Surface)
	if err != nil {
		tst.Errorf("gather failed: %v\n", err)
		return
	}

	solver := &poisson.SOR{G: g, MaxIter: 8000, Rtol: 1e-8}
	rho := make([]float64, g.NNodes())
	phi := make([]float64, g.NNodes())

	store, err := BuildCapacitance(rt, m, &c.Surface, gm, solver, rho, phi, nil)
	if err != nil {
		tst.Errorf("build capacitance failed: %v\n", err)
		return
	}

	// background plasma charge placed far from the object, breaking the
	// symmetry that would otherwise make the tentative solution already
	// equipotential at the object's surface.
	farIdx := g.Linear(4, 4, 4)
	rho[farIdx] = 1.0

	if err := solver.Solve(rho, phi); err != nil {
		tst.Errorf("tentative solve failed: %v\n", err)
		return
	}

	scratch := NewScratch(MaxTa(gm))
	Correct(rt, &c.Surface, gm, store, rho, phi, scratch)

	if err := solver.Solve(rho, phi); err != nil {
		tst.Errorf("corrected solve failed: %v\n", err)
		return
	}

	ref := phi[c.Surface.Entries(1)[0]]
	for _, idx := range c.Surface.Entries(1) {
		chk.Scalar(tst, "equipotential surface", 1e-3, phi[idx], ref)
	}

	// background charge, away from the object, must be conserved.
	if math.Abs(rho[farIdx]-1.0) > 1e-9 {
		tst.Errorf("background charge was disturbed: rho[far]=%g\n", rho[farIdx])
	}
}
