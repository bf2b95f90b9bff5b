// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package object implements the embedded-conductor electrostatic core:
// object classification against grid geometry, the MPI surface gather,
// the capacitance-matrix builder, the per-step charge corrector, and
// particle impact collection.
package object

import "github.com/cpmech/gosl/mpi"

// Runtime is the borrowed MPI handle every collective operation in this
// package takes explicitly. It plays the role of fem.global
// (fem/solver.go) but is never package-level state: a borrowed MPI
// handle should never be hidden behind process-wide state.
type Runtime struct {
	Rank  int
	Nproc int
	Root  bool
	Distr bool

	// Nproc-length scratch allocated by NewRuntime for distributed runs,
	// mirroring fem.global.WspcStop/WspcInum (fem/errorhandler.go). The
	// collectives below allocate their own scratch per call and do not
	// read these.
	wspcInt   []int
	wspcFloat []float64
}

// NewRuntime builds a Runtime from the live MPI state, or a single-rank
// Runtime if MPI was never started (mpi.IsOn() == false), exactly as
// fem.Start does for fem.global.
func NewRuntime() Runtime {
	rt := Runtime{Rank: 0, Nproc: 1, Root: true, Distr: false}
	if mpi.IsOn() {
		rt.Rank = mpi.Rank()
		rt.Nproc = mpi.Size()
		rt.Root = rt.Rank == 0
		rt.Distr = rt.Nproc > 1
	}
	if rt.Distr {
		rt.wspcInt = make([]int, rt.Nproc)
		rt.wspcFloat = make([]float64, rt.Nproc)
	}
	return rt
}

// globalIntMax returns the max of local across all ranks. In a
// single-rank run it is the identity — no collective is issued, mirroring
// every "if global.Distr { ... }" guard in fem/errorhandler.go.
func (rt *Runtime) globalIntMax(local int) int {
	if !rt.Distr {
		return local
	}
	dest := []int{local}
	scratch := []int{0}
	mpi.IntAllReduceMax(dest, scratch)
	return dest[0]
}

// allGatherCounts returns, for every rank, its contribution to local —
// an all-gather built from IntAllReduceMax the same way
// fem/errorhandler.go's Stop builds a "did anyone fail" vote: each rank
// writes only its own slot, the rest are zero, and an elementwise max
// across ranks reconstructs the full per-rank vector on every rank.
func (rt *Runtime) allGatherCounts(localCount int) []int {
	counts := make([]int, rt.Nproc)
	if !rt.Distr {
		counts[0] = localCount
		return counts
	}
	counts[rt.Rank] = localCount
	scratch := make([]int, rt.Nproc)
	mpi.IntAllReduceMax(counts, scratch)
	return counts
}

// allReduceSumFloats sums dest elementwise across ranks in place, the
// same call shape as mpi.AllReduceSum(d.Fb, d.Wb) in fem/solver.go.
func (rt *Runtime) allReduceSumFloats(dest []float64) {
	if !rt.Distr {
		return
	}
	scratch := make([]float64, len(dest))
	mpi.AllReduceSum(dest, scratch)
}
