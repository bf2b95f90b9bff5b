// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/cpmech/picobj/config"
	"github.com/cpmech/picobj/grid"
	"github.com/cpmech/picobj/object"
	"github.com/cpmech/picobj/poisson"
)

func main() {

	// catch errors
	defer func() {
		if mpi.Rank() == 0 {
			if err := recover(); err != nil {
				io.PfRed("ERROR: %v\n", err)
			}
		}
		mpi.Stop(false)
	}()
	mpi.Start(false)

	// message
	io.Pf("\npicobj -- embedded-conductor electrostatic core\n\n")
	io.Pf("Use of this source code is governed by a BSD-style\n")
	io.Pf("license that can be found in the LICENSE file.\n\n")

	configPath := flag.String("config", "", "object/photoemission configuration file (.json or .yaml)")
	dumpPath := flag.String("dump", "", "optional path to write the capacitance diagnostics CSV")
	dirout := flag.String("dirout", ".", "directory for the per-rank log file")
	verbose := flag.Bool("verbose", false, "print status lines on the root rank")
	nx := flag.Int("nx", 0, "local subdomain true size along x")
	ny := flag.Int("ny", 0, "local subdomain true size along y")
	nz := flag.Int("nz", 0, "local subdomain true size along z")
	ghost := flag.Int("ghost", 1, "ghost layer count on every face")
	flag.Parse()

	var statePath string
	if len(flag.Args()) > 0 {
		statePath = flag.Arg(0)
	} else {
		chk.Panic("Please, provide a state file. Ex.: state.json")
	}
	if *configPath == "" {
		chk.Panic("Please, provide -config\n")
	}
	if *nx == 0 || *ny == 0 || *nz == 0 {
		chk.Panic("Please, provide -nx -ny -nz (the local subdomain's true size)\n")
	}

	if err := config.InitLogFile(*dirout, "picobj"); err != nil {
		chk.Panic("cannot open log file: %v", err)
	}
	defer config.FlushLog()

	rt := object.NewRuntime()
	config.Status(rt.Root, *verbose, "picobj: rank %d starting (nproc=%d)\n", rt.Rank, rt.Nproc)

	configData, err := os.ReadFile(*configPath)
	if err != nil {
		rt.Abort(object.ConfigErrorf("main: cannot read config %q: %v", *configPath, err))
	}
	cfg := config.MustLoad(*configPath, configData)

	stateData, err := os.ReadFile(statePath)
	if err != nil {
		rt.Abort(object.ConfigErrorf("main: cannot read state file %q: %v", statePath, err))
	}
	reader, err := config.NewJSONStateReader(stateData)
	rt.Abort(err)

	g := grid.New([3]int{*nx, *ny, *nz}, *ghost, nil)

	m, err := object.Load(&rt, reader, g, true)
	rt.Abort(err)

	classification, err := object.Classify(m)
	rt.Abort(err)

	gm, err := object.GatherSurfaces(&rt, m.N, &classification.Surface)
	rt.Abort(err)

	var solver poisson.Solver
	switch cfg.Methods.Poisson {
	case "sor", "":
		solver = &poisson.SOR{G: g}
	default:
		rt.Abort(object.ConfigErrorf("main: unknown poisson method %q", cfg.Methods.Poisson))
	}

	metrics := object.NewMetrics(prometheus.DefaultRegisterer)

	rho := make([]float64, g.NNodes())
	phi := make([]float64, g.NNodes())
	store, err := object.BuildCapacitance(&rt, m, &classification.Surface, gm, solver, rho, phi, metrics)
	rt.Abort(err)

	config.Status(rt.Root, *verbose, "picobj: capacitance assembled for %d objects\n", m.N)

	if *dumpPath != "" && rt.Root {
		f, err := os.Create(*dumpPath)
		rt.Abort(err)
		defer f.Close()
		rt.Abort(object.WriteDiagnosticsCSV(f, store))
		config.Status(rt.Root, *verbose, "picobj: diagnostics written to %s\n", *dumpPath)
	}
}
