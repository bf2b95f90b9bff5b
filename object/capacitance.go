// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import (
	"math"
	"time"

	"github.com/cpmech/gosl/la"
	"github.com/cpmech/picobj/poisson"
	"gonum.org/v1/gonum/mat"
)

// minPivot is the tolerance la.MatInv uses to decide a pivot is too
// small to trust, the same role MINDET plays in shp.Shape's Jacobian
// inversion (shp/shp.go).
const minPivot = 1e-12

// CapacitanceStore holds, for each object, the dense inverse capacitance
// matrix K⁻¹ₐ (row-major, concatenated across objects) and the scalar
// Sₐ = 1/ΣK⁻¹ₐ. ConditionNumber[a-1] is Cₐ's 2-norm condition number,
// reported when computable.
type CapacitanceStore struct {
	N               int
	Ta              []int     // [N] surface-node count per object
	offset          []int     // [N+1] offset into KInv, offset[a] == offset[a-1] + Ta[a-1]^2
	KInv            []float64 // concatenated row-major Tₐ×Tₐ blocks
	S               []float64 // [N]
	ConditionNumber []float64 // [N]
}

// KInvAt returns K⁻¹ₐ[i,j] (0-based surface indices) for object a (1-based).
func (s *CapacitanceStore) KInvAt(a, i, j int) float64 {
	ta := s.Ta[a-1]
	return s.KInv[s.offset[a-1]+i*ta+j]
}

func (s *CapacitanceStore) setKInvAt(a, i, j int, v float64) {
	ta := s.Ta[a-1]
	s.KInv[s.offset[a-1]+i*ta+j] = v
}

// BuildCapacitance assembles, inverts, and stores one dense capacitance
// matrix per object. rho and phi are full-grid scratch buffers borrowed
// from the caller; solver is invoked Σₐ Tₐ times, the dominant setup
// cost of this whole subsystem.
func BuildCapacitance(rt *Runtime, m *Map, surf *Lookup, gm *GlobalSurfaceMap, solver poisson.Solver, rho, phi []float64, metrics *Metrics) (*CapacitanceStore, error) {
	n := m.N
	store := &CapacitanceStore{
		N:               n,
		Ta:              append([]int(nil), gm.T...),
		offset:          make([]int, n+1),
		S:               make([]float64, n),
		ConditionNumber: make([]float64, n),
	}
	for a := 1; a <= n; a++ {
		store.offset[a] = store.offset[a-1] + gm.T[a-1]*gm.T[a-1]
	}
	store.KInv = make([]float64, store.offset[n])

	started := time.Now()
	for a := 1; a <= n; a++ {
		ta := gm.T[a-1]
		if ta < 1 {
			return nil, ConfigErrorf("capacitance: object %d has Ta=%d (< 1)", a, ta)
		}
		local := surf.Entries(a)
		dense := la.MatAlloc(ta, ta)

		for i := 0; i < ta; i++ {
			owner := gm.OwnerRank(a, i)
			var localI int
			if rt.Rank == owner {
				localI = i - gm.G[a-1][owner]
				rho[local[localI]] = 1
			}

			if err := solver.Solve(rho, phi); err != nil {
				return nil, CommErrorf("capacitance: Poisson solve failed for object %d column %d: %v", a, i, err)
			}
			if metrics != nil {
				metrics.SolvesIssued.Inc()
			}

			for j, idx := range local {
				globalJ := gm.LocalToGlobal(rt, a, j)
				dense[globalJ][i] = phi[idx]
			}

			if rt.Rank == owner {
				rho[local[localI]] = 0
			}
		}

		reduceDenseMatrix(rt, dense)

		ai := la.MatAlloc(ta, ta)
		det, err := la.MatInv(ai, dense, minPivot)
		if err != nil {
			return nil, NumericalErrorf("capacitance: LU decomposition failed for object %d: %v", a, err)
		}
		if math.Abs(det) < minPivot {
			return nil, NumericalErrorf("capacitance: object %d capacitance matrix is singular (det=%g)", a, det)
		}

		sum := 0.0
		for i := 0; i < ta; i++ {
			for j := 0; j < ta; j++ {
				sum += ai[i][j]
				store.setKInvAt(a, i, j, ai[i][j])
			}
		}
		if sum == 0 {
			return nil, NumericalErrorf("capacitance: object %d has degenerate Sa (sum K^-1 == 0)", a)
		}
		store.S[a-1] = 1 / sum
		store.ConditionNumber[a-1] = conditionNumber(dense)

		if metrics != nil {
			metrics.ObjectsTracked.Set(float64(n))
		}
	}
	if metrics != nil {
		metrics.CapacitanceBuildMs.Set(float64(time.Since(started).Milliseconds()))
	}
	return store, nil
}

// reduceDenseMatrix all-reduce-sums a dense matrix across ranks, row by
// row, reusing Runtime.allReduceSumFloats (mpi.AllReduceSum's call
// shape in fem/solver.go).
func reduceDenseMatrix(rt *Runtime, dense [][]float64) {
	if !rt.Distr {
		return
	}
	for _, row := range dense {
		rt.allReduceSumFloats(row)
	}
}

// conditionNumber reports Cₐ's 2-norm condition number via gonum, since
// gosl/la has no condition-number helper cited anywhere in the pack.
func conditionNumber(dense [][]float64) float64 {
	ta := len(dense)
	if ta == 0 {
		return 0
	}
	flat := make([]float64, 0, ta*ta)
	for _, row := range dense {
		flat = append(flat, row...)
	}
	m := mat.NewDense(ta, ta, flat)
	return mat.Cond(m, 2)
}
