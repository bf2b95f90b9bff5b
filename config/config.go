// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config implements the configuration the object package
// consumes, in the shape of gofem's inp.Data: a JSON-tagged struct
// with a SetDefault method and a fatal, logged load path. It
// additionally accepts YAML, extending inp.Data.Encoder's gob/json
// selector idea (inp/sim.go) with one more interchangeable format.
// It also carries the per-rank log file lifecycle
// (InitLogFile/FlushLog), the inp.InitLogFile/inp.FlushLog analogue
// (inp/logging.go).
package config

import (
	"encoding/json"
	"log"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"gopkg.in/yaml.v3"
)

// ObjectConfig holds the configuration inputs for the conductor core
// and its photoemission subcomponent.
type ObjectConfig struct {
	Methods struct {
		Poisson string `json:"poisson" yaml:"poisson"` // solver backend selector
	} `json:"methods" yaml:"methods"`

	Objects struct {
		WorkFunction      []float64 `json:"workFunction" yaml:"workFunction"`           // per-object, eV
		ConductingSurface []bool    `json:"conductingSurface" yaml:"conductingSurface"` // per-object
		DistanceFromSun   float64   `json:"distanceFromSun" yaml:"distanceFromSun"`     // AU
	} `json:"objects" yaml:"objects"`

	Spectrum struct {
		BlackBodyTemp float64 `json:"blackBodyTemp" yaml:"blackBodyTemp"` // K
	} `json:"spectrum" yaml:"spectrum"`
}

// SetDefault sets conservative defaults, mirroring inp.Data.SetDefault.
func (o *ObjectConfig) SetDefault() {
	if o.Methods.Poisson == "" {
		o.Methods.Poisson = "sor"
	}
	if o.Spectrum.BlackBodyTemp == 0 {
		o.Spectrum.BlackBodyTemp = 5778 // solar photosphere
	}
}

// Load reads an ObjectConfig from a JSON or YAML file, selected by
// extension (".yaml"/".yml" vs everything else, defaulting to JSON).
func Load(path string, data []byte) (*ObjectConfig, error) {
	var o ObjectConfig
	ext := strings.ToLower(filepath.Ext(path))
	var err error
	switch ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &o)
	default:
		err = json.Unmarshal(data, &o)
	}
	if err != nil {
		return nil, chk.Err("config: cannot unmarshal %q: %v\n", path, err)
	}
	o.SetDefault()
	log.Printf("config: loaded %s: nobjects=%d poisson=%s\n", path, len(o.Objects.WorkFunction), o.Methods.Poisson)
	return &o, nil
}

// MustLoad is Load but fatal on error, matching gofem's
// chk.Panic-on-bad-config idiom (fem/t_up_test.go).
func MustLoad(path string, data []byte) *ObjectConfig {
	o, err := Load(path, data)
	if err != nil {
		chk.Panic("%v", err)
	}
	return o
}
