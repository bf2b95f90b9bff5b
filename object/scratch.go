// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import "github.com/cpmech/gosl/la"

// Scratch holds the per-step deltaPhi/rhoCorr buffers, sized once for
// the largest Tₐ and reused across objects and steps exactly
// as d.Sol.ΔY is zeroed-and-reused once per iteration in
// run_iterations (fem/solver.go: la.VecFill(d.Sol.ΔY, 0)).
type Scratch struct {
	deltaPhiBuf []float64
	rhoCorrBuf  []float64
}

// NewScratch allocates buffers sized for maxTa, the largest Tₐ across
// all objects.
func NewScratch(maxTa int) *Scratch {
	return &Scratch{
		deltaPhiBuf: make([]float64, maxTa),
		rhoCorrBuf:  make([]float64, maxTa),
	}
}

func (s *Scratch) deltaPhi(ta int) []float64 {
	buf := s.deltaPhiBuf[:ta]
	la.VecFill(buf, 0)
	return buf
}

func (s *Scratch) rhoCorr(ta int) []float64 {
	buf := s.rhoCorrBuf[:ta]
	la.VecFill(buf, 0)
	return buf
}

// MaxTa computes the largest Tₐ across a GlobalSurfaceMap, the size
// NewScratch should be allocated with.
func MaxTa(gm *GlobalSurfaceMap) int {
	max := 0
	for _, t := range gm.T {
		if t > max {
			max = t
		}
	}
	return max
}
