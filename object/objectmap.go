// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/picobj/config"
	"github.com/cpmech/picobj/grid"
)

// Map owns the per-node integer tag field identifying which object each
// node belongs to. Immutable after Load.
type Map struct {
	G *grid.Grid // borrowed; never owned
	N int        // number of objects; 0 means the subsystem is disabled
}

// Tag returns round(value) at linear index idx.
func (m *Map) Tag(idx int) int {
	return int(math.Round(m.G.Values[idx]))
}

// Load reads the "Object" dataset, exchanges ghost layers in
// Set mode so every rank's halo matches its neighbour's truth, then
// determines N by a local max followed by a global max reduction — the
// same count-determination shape as inp.ReadMat's load-then-log
// (inp/mat.go), generalized to an MPI all-reduce.
func Load(rt *Runtime, reader config.StateReader, g *grid.Grid, enabled bool) (*Map, error) {
	values, trueSize, err := reader.ReadObjectField("Object")
	if err != nil {
		return nil, ConfigErrorf("objectmap: %v", err)
	}
	if err := g.CheckShape(trueSize); err != nil {
		return nil, ConfigErrorf("objectmap: %v", err)
	}
	copy(g.Values, values)

	if err := g.HaloExchange(grid.HaloSet); err != nil {
		return nil, CommErrorf("objectmap: halo exchange failed: %v", err)
	}

	localMax := 0
	for _, v := range g.Values {
		if t := int(math.Round(v)); t > localMax {
			localMax = t
		}
	}
	n := rt.globalIntMax(localMax)

	if n == 0 && enabled {
		return nil, ConfigErrorf("objectmap: object subsystem enabled but no object tags (N=0) were found in the loaded field")
	}

	if rt.Root {
		io.Pf("objectmap: loaded, N=%d objects\n", n)
	}
	return &Map{G: g, N: n}, nil
}
