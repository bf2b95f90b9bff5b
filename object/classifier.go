// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

// Lookup is a concatenated per-object index table: object a's entries
// (1-based) occupy Index[Offset[a-1]:Offset[a]]. Used for both the
// Interior and Surface tables. Offset has length N+1.
type Lookup struct {
	Offset []int
	Index  []int
}

// Count returns the number of entries belonging to object a (1-based).
func (l *Lookup) Count(a int) int {
	return l.Offset[a] - l.Offset[a-1]
}

// Entries returns object a's (1-based) index slice.
func (l *Lookup) Entries(a int) []int {
	return l.Index[l.Offset[a-1]:l.Offset[a]]
}

// Classification holds everything object classification derives from a
// Map: interior and surface lookups, plus the optional sun-facing
// exposed-node table.
type Classification struct {
	Interior Lookup
	Surface  Lookup
	Exposed  *Lookup // nil unless photoemission is configured
}

// buildOffsets turns per-object counts (1-based object ids, length N)
// into a length N+1 offset table via prefix sum — the same
// count-then-prefix-sum-then-fill shape as EssentialBcs.Build
// (fem/essenbcs.go).
func buildOffsets(counts []int) []int {
	n := len(counts)
	offset := make([]int, n+1)
	for a := 1; a <= n; a++ {
		offset[a] = offset[a-1] + counts[a-1]
	}
	return offset
}

// surfaceStencilCount counts how many of the eight "lower corner"
// cells — the cells whose upper corner is idx — carry tag a, including
// idx itself. The asymmetry (only cells below-and-including each axis)
// is a deliberate, bit-for-bit contract: it halves stencil cost at the
// price of anisotropy, and changing it changes the capacitance matrix.
func surfaceStencilCount(m *Map, idx, a int) int {
	sp1, sp2, sp3 := m.G.SizeProd[1], m.G.SizeProd[2], m.G.SizeProd[3]
	offsets := [8]int{
		0,
		-sp3,
		-sp1,
		-sp1 - sp3,
		-sp2,
		-sp2 - sp3,
		-sp2 - sp1,
		-sp2 - sp1 - sp3,
	}
	d := 0
	for _, off := range offsets {
		j := idx + off
		if j < 0 || j >= len(m.G.Values) {
			continue
		}
		if m.Tag(j) == a {
			d++
		}
	}
	return d
}

// Classify derives the Interior and Surface lookups from m. Each table
// is built in two passes — count to size the offsets, then fill — and
// fill order equals the scanning order of the counting pass.
func Classify(m *Map) (*Classification, error) {
	n := m.N
	g := m.G

	// interior: pass 1 counts, pass 2 fills
	interiorCounts := make([]int, n)
	for idx := range g.Values {
		if a := m.Tag(idx); a >= 1 && a <= n {
			interiorCounts[a-1]++
		}
	}
	interiorOffset := buildOffsets(interiorCounts)
	interiorIndex := make([]int, interiorOffset[n])
	cursor := append([]int(nil), interiorOffset[:n]...)
	for idx := range g.Values {
		if a := m.Tag(idx); a >= 1 && a <= n {
			interiorIndex[cursor[a-1]] = idx
			cursor[a-1]++
		}
	}

	// surface: pass 1 counts (and remembers which nodes qualify), pass 2 fills
	surfaceCounts := make([]int, n)
	isSurface := make([]bool, len(g.Values))
	for idx := range g.Values {
		a := m.Tag(idx)
		if a < 1 || a > n || g.IsGhost(idx) {
			continue
		}
		d := surfaceStencilCount(m, idx, a)
		if d > 0 && d < 8 {
			isSurface[idx] = true
			surfaceCounts[a-1]++
		}
	}
	surfaceOffset := buildOffsets(surfaceCounts)
	surfaceIndex := make([]int, surfaceOffset[n])
	cursor = append([]int(nil), surfaceOffset[:n]...)
	for idx := range g.Values {
		if !isSurface[idx] {
			continue
		}
		a := m.Tag(idx)
		surfaceIndex[cursor[a-1]] = idx
		cursor[a-1]++
	}

	for _, idx := range surfaceIndex {
		if g.IsGhost(idx) {
			return nil, InternalErrorf("classifier: ghost index leaked into surface lookup")
		}
	}

	return &Classification{
		Interior: Lookup{Offset: interiorOffset, Index: interiorIndex},
		Surface:  Lookup{Offset: surfaceOffset, Index: surfaceIndex},
	}, nil
}

// ClassifyExposed derives, for each object, the sun-facing exposed-node
// table: for every (j,k) position in the local (y,z) plane, the first
// surface node encountered scanning +x is the one with an unobstructed
// line-of-sight to the sun. Only meaningful when photoemission is
// configured.
func ClassifyExposed(m *Map, c *Classification) *Lookup {
	g := m.G
	n := m.N
	surfaceOf := make([]int, len(g.Values)) // 0 == not a surface node, else object id
	for a := 1; a <= n; a++ {
		for _, idx := range c.Surface.Entries(a) {
			surfaceOf[idx] = a
		}
	}

	counts := make([]int, n)
	found := make([][2]int, 0, n) // (a, idx) in scan order, appended once per (j,k)
	for j := 0; j < g.Size[1]; j++ {
		for k := 0; k < g.Size[2]; k++ {
			for i := 0; i < g.Size[0]; i++ {
				idx := g.Linear(i, j, k)
				if a := surfaceOf[idx]; a > 0 {
					counts[a-1]++
					found = append(found, [2]int{a, idx})
					break
				}
			}
		}
	}

	offset := buildOffsets(counts)
	index := make([]int, offset[n])
	cursor := append([]int(nil), offset[:n]...)
	for _, af := range found {
		a, idx := af[0], af[1]
		index[cursor[a-1]] = idx
		cursor[a-1]++
	}
	return &Lookup{Offset: offset, Index: index}
}
