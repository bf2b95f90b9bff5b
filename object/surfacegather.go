// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

// GlobalSurfaceMap is the canonical global ordering of every object's
// surface nodes: rank-major, then local scan order within rank.
// G[a-1] has length Nproc+1; rank r owns global indices
// [G[a-1][r], G[a-1][r+1]) of object a's surface list.
type GlobalSurfaceMap struct {
	G [][]int // [N][Nproc+1]
	T []int   // [N] global surface totals T[a-1] == G[a-1][Nproc]
}

// GatherSurfaces performs the cross-rank surface all-gather: every
// rank's local surface count per object, prefix-summed into the
// canonical global ordering.
// Built on the same sparse-array all-reduce trick as fem.Stop's
// "did anyone want to abort" vote (fem/errorhandler.go): each rank
// writes only its own slot of a Nproc-length count vector, and an
// elementwise max/sum across ranks reconstructs the full vector
// everywhere (object.Runtime.allGatherCounts).
func GatherSurfaces(rt *Runtime, n int, surf *Lookup) (*GlobalSurfaceMap, error) {
	gm := &GlobalSurfaceMap{
		G: make([][]int, n),
		T: make([]int, n),
	}
	for a := 1; a <= n; a++ {
		localCount := surf.Count(a)
		counts := rt.allGatherCounts(localCount)
		g := make([]int, rt.Nproc+1)
		for r := 0; r < rt.Nproc; r++ {
			g[r+1] = g[r] + counts[r]
		}
		gm.G[a-1] = g
		gm.T[a-1] = g[rt.Nproc]
		if gm.T[a-1] < 1 {
			return nil, ConfigErrorf("surfacegather: object %d has Ta=%d (< 1)", a, gm.T[a-1])
		}
	}
	return gm, nil
}

// OwnerRank returns the rank owning global surface index i of object a
// (1-based), per G[a-1].
func (gm *GlobalSurfaceMap) OwnerRank(a, i int) int {
	g := gm.G[a-1]
	for r := 0; r < len(g)-1; r++ {
		if i >= g[r] && i < g[r+1] {
			return r
		}
	}
	return -1
}

// LocalToGlobal maps a rank's j-th local surface entry of object a
// (0-based within this rank's slice) to its global surface index.
func (gm *GlobalSurfaceMap) LocalToGlobal(rt *Runtime, a, localJ int) int {
	return gm.G[a-1][rt.Rank] + localJ
}
