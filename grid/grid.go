// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grid implements the regular Cartesian per-process subdomain
// that the object package classifies conductors against. It is a
// structured-grid analogue of gofem's unstructured finite-element mesh:
// where a mesh carries vertices and cells, a Grid carries a flat value
// array addressed by cumulative strides, plus ghost layers for halo
// exchange across rank boundaries.
package grid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// HaloMode selects how ghost layers are reconciled with neighbour
// subdomains during an exchange.
type HaloMode int

const (
	// HaloSet overwrites ghost values with the neighbour's truth.
	HaloSet HaloMode = iota
	// HaloAdd accumulates the neighbour's contribution into ghost-adjacent
	// true nodes (used when scattering deposited charge across boundaries).
	HaloAdd
)

// Exchanger performs the halo exchange a Grid cannot perform on its own
// (it requires knowledge of neighbour ranks); supplied by the enclosing
// simulation. A nil Exchanger is valid for single-rank runs.
type Exchanger interface {
	Exchange(g *Grid, mode HaloMode) error
}

// Grid is a 3D scalar field over a single process's subdomain, including
// ghost layers on each face. Linear indices address Values directly;
// coordinate d (0-based) advances the linear index by SizeProd[d+1].
type Grid struct {
	Size         [3]int    // subdomain size including ghosts
	TrueSize     [3]int    // subdomain size excluding ghosts
	SizeProd     [4]int    // cumulative strides; SizeProd[3] == 1
	NGhostLayers [6]int    // ghost layer counts [2*d] lower, [2*d+1] upper, per axis
	Values       []float64 // flat field, len == Size[0]*Size[1]*Size[2]

	exchanger Exchanger
}

// New allocates a Grid with the given true (non-ghost) size and uniform
// ghost layer count on every face.
func New(trueSize [3]int, ghost int, ex Exchanger) *Grid {
	g := &Grid{
		TrueSize:  trueSize,
		exchanger: ex,
	}
	for d := 0; d < 3; d++ {
		g.NGhostLayers[2*d] = ghost
		g.NGhostLayers[2*d+1] = ghost
		g.Size[d] = trueSize[d] + 2*ghost
	}
	g.SizeProd[3] = 1
	g.SizeProd[2] = g.Size[2]
	g.SizeProd[1] = g.Size[2] * g.Size[1]
	g.SizeProd[0] = g.Size[2] * g.Size[1] * g.Size[0]
	n := g.Size[0] * g.Size[1] * g.Size[2]
	g.Values = make([]float64, n)
	return g
}

// Coords returns the (i,j,k) coordinate corresponding to linear index idx.
func (g *Grid) Coords(idx int) (i, j, k int) {
	i = idx / g.SizeProd[1]
	rem := idx % g.SizeProd[1]
	j = rem / g.SizeProd[2]
	k = rem % g.SizeProd[2]
	return
}

// Linear returns the linear index for coordinate (i,j,k).
func (g *Grid) Linear(i, j, k int) int {
	return i*g.SizeProd[1] + j*g.SizeProd[2] + k
}

// IsGhost reports whether idx lies in the ghost band on any axis.
func (g *Grid) IsGhost(idx int) bool {
	i, j, k := g.Coords(idx)
	c := [3]int{i, j, k}
	for d := 0; d < 3; d++ {
		if c[d] < g.NGhostLayers[2*d] || c[d] >= g.Size[d]-g.NGhostLayers[2*d+1] {
			return true
		}
	}
	return false
}

// NNodes returns the total number of nodes including ghosts.
func (g *Grid) NNodes() int {
	return len(g.Values)
}

// GZero zeroes the entire value array.
func (g *Grid) GZero() {
	for i := range g.Values {
		g.Values[i] = 0
	}
}

// GAddTo adds v to the value at linear index i.
func (g *Grid) GAddTo(i int, v float64) {
	g.Values[i] += v
}

// HaloExchange reconciles ghost layers with neighbour subdomains. With no
// Exchanger configured (single-rank run) this is a no-op.
func (g *Grid) HaloExchange(mode HaloMode) error {
	if g.exchanger == nil {
		return nil
	}
	return g.exchanger.Exchange(g, mode)
}

// CheckShape returns an error if other does not have the same true size
// as g — used to validate a loaded field against the simulation grid.
func (g *Grid) CheckShape(other [3]int) error {
	if g.TrueSize != other {
		return chk.Err("grid shape mismatch: have trueSize=%v, loaded=%v\n", g.TrueSize, other)
	}
	return nil
}

// String prints a short summary, in the style of fem.Node.String.
func (g *Grid) String() string {
	return io.Sf("{ \"Size\": %v \"TrueSize\": %v \"NGhostLayers\": %v }", g.Size, g.TrueSize, g.NGhostLayers)
}
