// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

// Correct applies the inverted capacitance matrices to force every
// conductor to its self-consistent equipotential, the Hockney–Miyake
// method (Miyake & Usui, PoP 2009, eqs. 5 & 7). Called once per time
// step, after the base Poisson solve on rho has produced a tentative
// phi; the caller must re-invoke the Poisson solver afterwards to
// obtain the corrected phi.
func Correct(rt *Runtime, surf *Lookup, gm *GlobalSurfaceMap, store *CapacitanceStore, rho, phi []float64, scratch *Scratch) {
	for a := 1; a <= store.N; a++ {
		ta := store.Ta[a-1]
		local := surf.Entries(a)

		// step 1: floating potential φcₐ, local contribution then reduced.
		localSum := 0.0
		for j, idx := range local {
			globalJ := gm.LocalToGlobal(rt, a, j)
			rowSum := 0.0
			for i := 0; i < ta; i++ {
				rowSum += store.KInvAt(a, globalJ, i)
			}
			localSum += phi[idx] * rowSum
		}
		phic := []float64{store.S[a-1] * localSum}
		rt.allReduceSumFloats(phic)

		// step 2: deltaPhi, scattered into the global surface index, gathered.
		deltaPhi := scratch.deltaPhi(ta)
		for j, idx := range local {
			globalJ := gm.LocalToGlobal(rt, a, j)
			deltaPhi[globalJ] = phic[0] - phi[idx]
		}
		rt.allReduceSumFloats(deltaPhi)

		// step 3: rhoCorr, local rows summed then reduced across ranks.
		rhoCorr := scratch.rhoCorr(ta)
		for j := range local {
			globalJ := gm.LocalToGlobal(rt, a, j)
			for i := 0; i < ta; i++ {
				rhoCorr[i] += store.KInvAt(a, globalJ, i) * deltaPhi[globalJ]
			}
		}
		rt.allReduceSumFloats(rhoCorr)

		// step 4: apply the correction to this rank's locally-owned nodes.
		for j, idx := range local {
			globalJ := gm.LocalToGlobal(rt, a, j)
			rho[idx] += rhoCorr[globalJ]
		}
	}
}
