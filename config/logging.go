// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"log"
	"os"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"
)

// logFile holds the handle to this rank's log file.
var logFile *os.File

// InitLogFile opens one log file per MPI rank, named
// "<dirout>/<fnamekey>_p<rank>.log", and connects the standard logger
// to it — the same one-file-per-rank shape as inp.InitLogFile
// (inp/logging.go), generalized from a package-level fem.global rank
// to a direct mpi.Rank() query (this package has no Runtime of its
// own; object.Runtime cannot be imported here without a cycle).
func InitLogFile(dirout, fnamekey string) error {
	rank := 0
	if mpi.IsOn() {
		rank = mpi.Rank()
	}
	f, err := os.Create(io.Sf("%s/%s_p%d.log", dirout, fnamekey, rank))
	if err != nil {
		return err
	}
	logFile = f
	log.SetOutput(logFile)
	return nil
}

// FlushLog closes the rank's log file, the FlushLog analogue of
// inp.FlushLog.
func FlushLog() {
	if logFile != nil {
		logFile.Close()
	}
}

// LogErr logs err under msg and reports whether the caller should stop,
// mirroring inp.LogErr.
func LogErr(err error, msg string) bool {
	if err != nil {
		log.Printf("ERROR: %s : %v", msg, err)
		return true
	}
	return false
}

// Status prints a console status line, gated on root && verbose —
// the same gating fem.Start applies to global.Verbose before every
// utl.Pf/utl.Pfgrey call in fem/solver.go, generalized to this
// package's io.Pf.
func Status(root, verbose bool, format string, prm ...interface{}) {
	if root && verbose {
		io.Pf(format, prm...)
	}
}
