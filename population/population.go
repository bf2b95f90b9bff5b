// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package population implements per-species particle storage as
// contiguous arrays with an amortized O(1) Cut operation. A generic
// archetype-based ECS (mlange-42/ark) was considered and rejected —
// see DESIGN.md — because this contract is narrower than a general
// entity store: contiguous per-species index ranges, swap-with-last-
// of-species removal.
package population

// Species holds the contiguous index range and charge of one particle
// species within Population.Pos/Vel.
type Species struct {
	Name     string
	IStart   int // inclusive
	IStop    int // exclusive
	Charge   float64
	RestMass float64
}

// Population holds all particles across all species in flat arrays,
// partitioned into contiguous per-species ranges.
type Population struct {
	Species []Species
	Pos     [][3]float64 // particle positions
	Vel     [][3]float64 // particle velocities
}

// New allocates an empty Population with the given species charges.
func New(species []Species) *Population {
	return &Population{Species: append([]Species(nil), species...)}
}

// Charge returns species s's per-particle charge.
func (p *Population) Charge(s int) float64 {
	return p.Species[s].Charge
}

// Add appends a particle to species s, extending its range and shifting
// every later species' range by one.
func (p *Population) Add(s int, pos, vel [3]float64) {
	at := p.Species[s].IStop
	p.Pos = append(p.Pos, [3]float64{})
	p.Vel = append(p.Vel, [3]float64{})
	copy(p.Pos[at+1:], p.Pos[at:len(p.Pos)-1])
	copy(p.Vel[at+1:], p.Vel[at:len(p.Vel)-1])
	p.Pos[at] = pos
	p.Vel[at] = vel
	p.Species[s].IStop++
	for t := s + 1; t < len(p.Species); t++ {
		p.Species[t].IStart++
		p.Species[t].IStop++
	}
}

// Cut removes the particle at index within species s by swapping in the
// last particle of that species, then shrinking every later species'
// range by one: each later species moves its own last particle into the
// slot freed just before its range. O(1) in the number of particles.
func (p *Population) Cut(s, index int) {
	last := p.Species[s].IStop - 1
	if index != last {
		p.Pos[index] = p.Pos[last]
		p.Vel[index] = p.Vel[last]
	}
	hole := last
	p.Species[s].IStop--
	for t := s + 1; t < len(p.Species); t++ {
		tLast := p.Species[t].IStop - 1
		p.Pos[hole] = p.Pos[tLast]
		p.Vel[hole] = p.Vel[tLast]
		hole = tLast
		p.Species[t].IStart--
		p.Species[t].IStop--
	}
	p.Pos = p.Pos[:len(p.Pos)-1]
	p.Vel = p.Vel[:len(p.Vel)-1]
}

// NSpecies returns the number of species.
func (p *Population) NSpecies() int {
	return len(p.Species)
}
