// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poisson

import (
	"math"

	"github.com/cpmech/gosl/la"
	"github.com/cpmech/picobj/grid"
)

// SOR is a successive-over-relaxation solver on g's 7-point stencil,
// Dirichlet-zero on the outer ghost band. It stands in for the real
// simulator's multigrid/spectral solver — just enough to drive the
// capacitance builder and charge corrector in tests. Re-entrant: Solve
// never mutates g's geometry or rho; it writes only the caller-supplied
// phi slice, whose incoming values are the starting iterate.
type SOR struct {
	G       *grid.Grid
	Omega   float64 // relaxation factor, 0 < Omega < 2; 0 selects 1.5
	Atol    float64 // absolute residual tolerance; 0 selects 1e-10
	Rtol    float64 // relative residual tolerance; 0 selects 1e-8
	MaxIter int     // iteration cap; 0 selects 10000
}

// Solve performs SOR sweeps over g's true (non-ghost) nodes until the
// residual norm satisfies the configured tolerance or MaxIter is hit.
func (s *SOR) Solve(rho, phi []float64) error {
	g := s.G
	omega := s.Omega
	if omega == 0 {
		omega = 1.5
	}
	atol := s.Atol
	if atol == 0 {
		atol = 1e-10
	}
	rtol := s.Rtol
	if rtol == 0 {
		rtol = 1e-8
	}
	maxIter := s.MaxIter
	if maxIter == 0 {
		maxIter = 10000
	}

	h2 := 1.0 // unit grid spacing; the real solver owns physical scaling
	residual := make([]float64, len(phi))
	for iter := 0; iter < maxIter; iter++ {
		for i := g.NGhostLayers[0]; i < g.Size[0]-g.NGhostLayers[1]; i++ {
			for j := g.NGhostLayers[2]; j < g.Size[1]-g.NGhostLayers[3]; j++ {
				for k := g.NGhostLayers[4]; k < g.Size[2]-g.NGhostLayers[5]; k++ {
					idx := g.Linear(i, j, k)
					nb := phi[idx+g.SizeProd[1]] + phi[idx-g.SizeProd[1]] +
						phi[idx+g.SizeProd[2]] + phi[idx-g.SizeProd[2]] +
						phi[idx+1] + phi[idx-1]
					target := (nb + h2*rho[idx]) / 6.0
					phi[idx] += omega * (target - phi[idx])
				}
			}
		}
		la.VecFill(residual, 0)
		for i := g.NGhostLayers[0]; i < g.Size[0]-g.NGhostLayers[1]; i++ {
			for j := g.NGhostLayers[2]; j < g.Size[1]-g.NGhostLayers[3]; j++ {
				for k := g.NGhostLayers[4]; k < g.Size[2]-g.NGhostLayers[5]; k++ {
					idx := g.Linear(i, j, k)
					nb := phi[idx+g.SizeProd[1]] + phi[idx-g.SizeProd[1]] +
						phi[idx+g.SizeProd[2]] + phi[idx-g.SizeProd[2]] +
						phi[idx+1] + phi[idx-1]
					residual[idx] = rho[idx] + (nb-6*phi[idx])/h2
				}
			}
		}
		norm := la.VecNorm(residual)
		if norm < atol+rtol*math.Max(1, la.VecNorm(phi)) {
			break
		}
	}
	return nil
}
