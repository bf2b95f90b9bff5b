// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package poisson defines the contract the object package consumes for
// the field solver — Solve(rho, phi) — and provides one reference
// implementation for testing the capacitance core without pulling in a
// full multigrid or spectral solver.
package poisson

// Solver solves ∇²φ = −ρ subject to boundary conditions the solver owns,
// so a positive charge raises the potential around it.
// Implementations must be re-entrant: repeated calls with an unchanged
// ρ produce an unchanged φ (the object package's capacitance builder and
// charge corrector both rely on this).
type Solver interface {
	// Solve reads rho and writes phi on the same grid geometry. Both
	// slices are borrowed; the solver must not retain them past return.
	Solve(rho, phi []float64) error
}
