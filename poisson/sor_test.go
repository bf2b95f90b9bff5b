// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poisson

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/picobj/grid"
)

func Test_sor01(tst *testing.T) {

	chk.PrintTitle("sor01: zero source gives zero potential")

	g := grid.New([3]int{6, 6, 6}, 1, nil)
	rho := make([]float64, g.NNodes())
	phi := make([]float64, g.NNodes())

	s := &SOR{G: g}
	if err := s.Solve(rho, phi); err != nil {
		tst.Errorf("solve failed: %v\n", err)
	}
	chk.Vector(tst, "phi", 1e-9, phi, make([]float64, g.NNodes()))
}

func Test_sor02(tst *testing.T) {

	chk.PrintTitle("sor02: unit point charge gives a symmetric, nonzero field")

	g := grid.New([3]int{7, 7, 7}, 1, nil)
	rho := make([]float64, g.NNodes())
	phi := make([]float64, g.NNodes())

	center := g.Linear(4, 4, 4)
	rho[center] = 1

	s := &SOR{G: g, MaxIter: 2000}
	if err := s.Solve(rho, phi); err != nil {
		tst.Errorf("solve failed: %v\n", err)
	}

	if phi[center] <= 0 {
		tst.Errorf("expected positive potential at the source, got %g\n", phi[center])
	}

	// symmetric neighbours of the point charge must match by symmetry
	// of the 7-point stencil and the cubic domain.
	a := phi[g.Linear(5, 4, 4)]
	b := phi[g.Linear(3, 4, 4)]
	chk.Scalar(tst, "phi(+x) == phi(-x)", 1e-6, a, b)
}
