// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"
)

// ErrorKind classifies a fatal error.
type ErrorKind int

const (
	// CONFIG: the object map or configuration is inconsistent.
	CONFIG ErrorKind = iota
	// NUMERICAL: LU decomposition failed or the capacitance matrix is singular.
	NUMERICAL
	// COMM: an MPI collective failed or participants disagree on sizes.
	COMM
	// INTERNAL: an assertion (e.g. a ghost index in an interior table) failed.
	INTERNAL
)

// String names the kind, used in rank-prefixed abort messages.
func (k ErrorKind) String() string {
	switch k {
	case CONFIG:
		return "CONFIG"
	case NUMERICAL:
		return "NUMERICAL"
	case COMM:
		return "COMM"
	case INTERNAL:
		return "INTERNAL"
	}
	return "UNKNOWN"
}

// Error is a classified, fatal error from the object core. None of the
// four kinds are recovered locally — the physical simulation has no
// meaning without a correctly assembled capacitance structure.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	return io.Sf("[%s] %s", e.Kind, e.Msg)
}

func newErrorf(kind ErrorKind, msg string, prm ...interface{}) error {
	return &Error{Kind: kind, Msg: io.Sf(msg, prm...)}
}

// ConfigErrorf builds a CONFIG error, formatted like chk.Err.
func ConfigErrorf(msg string, prm ...interface{}) error { return newErrorf(CONFIG, msg, prm...) }

// NumericalErrorf builds a NUMERICAL error, formatted like chk.Err.
func NumericalErrorf(msg string, prm ...interface{}) error { return newErrorf(NUMERICAL, msg, prm...) }

// CommErrorf builds a COMM error, formatted like chk.Err.
func CommErrorf(msg string, prm ...interface{}) error { return newErrorf(COMM, msg, prm...) }

// InternalErrorf builds an INTERNAL error, formatted like chk.Err.
func InternalErrorf(msg string, prm ...interface{}) error { return newErrorf(INTERNAL, msg, prm...) }

// Abort classifies err (if non-nil) as this rank wanting to stop, waits
// for every rank to agree via an all-reduce-max vote exactly like
// fem.Stop/fem.PanicOrNot (fem/errorhandler.go), then panics with a
// rank-prefixed message so no rank is left blocking on a later
// collective whose peers have already aborted. It is a no-op only when
// no rank passes a non-nil err; a rank whose own err is nil still
// panics when another rank voted to stop.
func (rt *Runtime) Abort(err error) {
	if !rt.Distr {
		if err != nil {
			io.Pf("\n")
			panic(io.Sf("rank %d: simulation failed: %v", rt.Rank, err))
		}
		return
	}
	vote := make([]int, rt.Nproc)
	if err != nil {
		vote[rt.Rank] = 1
	}
	scratch := make([]int, rt.Nproc)
	mpi.IntAllReduceMax(vote, scratch)
	for r := 0; r < rt.Nproc; r++ {
		if vote[r] > 0 {
			panic(io.Sf("rank %d: simulation failed: %v", rt.Rank, err))
		}
	}
}
