// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import (
	"math"

	"github.com/cpmech/picobj/population"
)

// buildInteriorOwner turns an Interior Lookup (concatenated per-object
// index blocks) into a direct linear-index -> object-id table, 0
// meaning "no object". Attributing impacts by scanning each object's
// Interior list and an O(1) reverse lookup produce the identical
// outcome — the same matched node attributed to the same object —
// without re-scanning every object's block per particle.
func buildInteriorOwner(n, nNodes int, interior *Lookup) []int {
	owner := make([]int, nNodes)
	for a := 1; a <= n; a++ {
		for _, idx := range interior.Entries(a) {
			owner[idx] = a
		}
	}
	return owner
}

// gridLike is the subset of grid.Grid that CollectImpacts needs.
type gridLike interface {
	Linear(i, j, k int) int
	IsGhost(idx int) bool
}

// CollectImpacts detects particles entering object interiors, removes
// them, sums their charge per object, and redistributes it uniformly
// onto surface nodes. rhoObj accumulates across steps — floating
// conductors retain net charge between impacts — so the caller adds it
// into the plasma rho before each Poisson solve rather than this
// function zeroing it.
func CollectImpacts(rt *Runtime, n int, g gridLike, interior, surf *Lookup, gm *GlobalSurfaceMap, pop *population.Population, rhoObj []float64, policy CollisionPolicy, metrics *Metrics) []float64 {
	if policy == nil {
		policy = AbsorbPolicy{}
	}
	owner := buildInteriorOwner(n, len(rhoObj), interior)
	collected := make([]float64, n)

	for s := 0; s < pop.NSpecies(); s++ {
		charge := pop.Charge(s)
		// iterate back-to-front: Cut swaps the species' last particle
		// into the removed slot, so a forward scan would skip the
		// particle that got swapped into the current index.
		for idx := pop.Species[s].IStop - 1; idx >= pop.Species[s].IStart; idx-- {
			pos := pop.Pos[idx]
			i := int(math.Floor(float64(pos[0])))
			j := int(math.Floor(float64(pos[1])))
			k := int(math.Floor(float64(pos[2])))
			cell := g.Linear(i, j, k)
			if cell < 0 || cell >= len(owner) {
				continue
			}
			if g.IsGhost(cell) {
				// migration runs before this step, so a ghost hit here
				// is not attributed.
				continue
			}
			a := owner[cell]
			if a == 0 {
				continue
			}
			if policy.Resolve(a, charge) != Absorb {
				continue
			}
			collected[a-1] += charge
			pop.Cut(s, idx)
		}
	}

	rt.allReduceSumFloats(collected)

	if metrics != nil {
		total := 0.0
		for _, c := range collected {
			total += c
		}
		metrics.ChargeCollected.Add(total)
	}

	for a := 1; a <= n; a++ {
		ta := gm.T[a-1]
		if ta == 0 {
			continue
		}
		share := collected[a-1] / float64(ta)
		for _, idx := range surf.Entries(a) {
			rhoObj[idx] += share
		}
	}
	return collected
}
