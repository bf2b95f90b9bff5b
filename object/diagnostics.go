// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import (
	"io"

	"github.com/gocarina/gocsv"
)

// CapacitanceSummary is one CSV row of the per-object diagnostic dump
// written once after capacitance assembly, in the header-then-append
// style telemetry.OutputManager uses for its run-time CSVs
// (pthm-soup: telemetry/output.go).
type CapacitanceSummary struct {
	Object          int     `csv:"object"`
	SurfaceNodes    int     `csv:"surface_nodes"`
	S               float64 `csv:"s"`
	ConditionNumber float64 `csv:"condition_number"`
}

// WriteDiagnosticsCSV dumps store's per-object summary to w.
func WriteDiagnosticsCSV(w io.Writer, store *CapacitanceStore) error {
	rows := make([]CapacitanceSummary, store.N)
	for a := 1; a <= store.N; a++ {
		rows[a-1] = CapacitanceSummary{
			Object:          a,
			SurfaceNodes:    store.Ta[a-1],
			S:               store.S[a-1],
			ConditionNumber: store.ConditionNumber[a-1],
		}
	}
	return gocsv.Marshal(rows, w)
}

// ImpactLedgerRow is one CSV row of the per-step impact-charge ledger.
type ImpactLedgerRow struct {
	Step            int     `csv:"step"`
	Object          int     `csv:"object"`
	CollectedCharge float64 `csv:"collected_charge"`
}

// WriteImpactLedgerCSV appends one step's collected-charge row per
// object, preceded by a header row only when withHeader is set,
// matching telemetry.OutputManager.WriteTelemetry's
// written-once-then-append pattern.
func WriteImpactLedgerCSV(w io.Writer, step int, collected []float64, withHeader bool) error {
	rows := make([]ImpactLedgerRow, len(collected))
	for a := range collected {
		rows[a] = ImpactLedgerRow{Step: step, Object: a + 1, CollectedCharge: collected[a]}
	}
	if withHeader {
		return gocsv.Marshal(rows, w)
	}
	return gocsv.MarshalWithoutHeaders(rows, w)
}
