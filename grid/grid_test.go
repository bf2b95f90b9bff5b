// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_grid01(tst *testing.T) {

	chk.PrintTitle("grid01: strides and coordinates")

	g := New([3]int{4, 3, 2}, 1, nil)
	chk.IntAssert(g.Size[0], 6)
	chk.IntAssert(g.Size[1], 5)
	chk.IntAssert(g.Size[2], 4)
	chk.IntAssert(g.NNodes(), 6*5*4)

	for i := 0; i < g.Size[0]; i++ {
		for j := 0; j < g.Size[1]; j++ {
			for k := 0; k < g.Size[2]; k++ {
				idx := g.Linear(i, j, k)
				ii, jj, kk := g.Coords(idx)
				chk.IntAssert(ii, i)
				chk.IntAssert(jj, j)
				chk.IntAssert(kk, k)
			}
		}
	}
}

func Test_grid02(tst *testing.T) {

	chk.PrintTitle("grid02: ghost classification")

	g := New([3]int{2, 2, 2}, 1, nil)
	nGhost, nTrue := 0, 0
	for idx := 0; idx < g.NNodes(); idx++ {
		if g.IsGhost(idx) {
			nGhost++
		} else {
			nTrue++
		}
	}
	chk.IntAssert(nTrue, 2*2*2)
	chk.IntAssert(nGhost, g.NNodes()-8)
}

func Test_grid03(tst *testing.T) {

	chk.PrintTitle("grid03: nil exchanger is a no-op")

	g := New([3]int{2, 2, 2}, 1, nil)
	if err := g.HaloExchange(HaloSet); err != nil {
		tst.Errorf("expected nil-exchanger HaloExchange to be a no-op, got %v\n", err)
	}
}

type countingExchanger struct {
	calls int
	mode  HaloMode
}

func (e *countingExchanger) Exchange(g *Grid, mode HaloMode) error {
	e.calls++
	e.mode = mode
	return nil
}

func Test_grid04(tst *testing.T) {

	chk.PrintTitle("grid04: exchanger is invoked with the requested mode")

	ex := &countingExchanger{}
	g := New([3]int{2, 2, 2}, 1, ex)
	if err := g.HaloExchange(HaloAdd); err != nil {
		tst.Errorf("HaloExchange failed: %v\n", err)
	}
	chk.IntAssert(ex.calls, 1)
	if ex.mode != HaloAdd {
		tst.Errorf("expected HaloAdd, got %v\n", ex.mode)
	}
}

func Test_grid05(tst *testing.T) {

	chk.PrintTitle("grid05: shape check")

	g := New([3]int{2, 2, 2}, 1, nil)
	if err := g.CheckShape([3]int{2, 2, 2}); err != nil {
		tst.Errorf("expected matching shape to pass, got %v\n", err)
	}
	if err := g.CheckShape([3]int{3, 2, 2}); err == nil {
		tst.Errorf("expected mismatched shape to fail\n")
	}
}
