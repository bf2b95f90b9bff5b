// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// Planck/physical constants (SI), used only by GrayBodyEmitter.
const (
	planckH     = 6.62607015e-34
	boltzmannK  = 1.380649e-23
	speedOfLigh = 2.99792458e8
	elemCharge  = 1.602176634e-19
	solarAU     = 1.495978707e11 // metres per astronomical unit
)

// PhotoEmitter estimates the photoemitted current density at an
// exposed surface node — a future-extension module sharing the object
// map's sun-facing exposed-node scan, never called from the
// equipotential corrector.
type PhotoEmitter interface {
	// EmittedCurrentDensity returns A/m^2 for a surface with the given
	// work function (eV), at distanceAU from the illumination source.
	EmittedCurrentDensity(workFunctionEV, distanceAU, blackBodyTempK float64) float64
}

// GrayBodyEmitter integrates the Planck spectral photon radiance (spectral
// radiance divided by hν) above the work-function threshold frequency via
// Gauss-Legendre quadrature
// (gonum.org/v1/gonum/integrate/quad), scaled by inverse-square
// distance and a unit quantum yield. This is a simplified stand-in for
// a full photoemission model — no reference implementation survived
// retrieval to validate constants or yield curves against.
type GrayBodyEmitter struct {
	QuadPoints int // Gauss-Legendre node count; 0 selects 64
}

// EmittedCurrentDensity implements PhotoEmitter.
func (e GrayBodyEmitter) EmittedCurrentDensity(workFunctionEV, distanceAU, blackBodyTempK float64) float64 {
	if distanceAU <= 0 || blackBodyTempK <= 0 {
		return 0
	}
	n := e.QuadPoints
	if n == 0 {
		n = 64
	}
	nuThreshold := workFunctionEV * elemCharge / planckH
	nuUpper := nuThreshold + 30*boltzmannK*blackBodyTempK/planckH

	photonRadiance := func(nu float64) float64 {
		x := planckH * nu / (boltzmannK * blackBodyTempK)
		if x > 700 {
			return 0
		}
		return (2 * nu * nu / (speedOfLigh * speedOfLigh)) / (math.Exp(x) - 1)
	}

	integral := quad.Fixed(photonRadiance, nuThreshold, nuUpper, n, nil, 0)

	solidAngleFactor := math.Pi
	distanceFactor := 1.0 / (distanceAU * distanceAU)
	return integral * solidAngleFactor * distanceFactor * elemCharge
}
