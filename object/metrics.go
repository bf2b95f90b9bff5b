// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import "github.com/prometheus/client_golang/prometheus"

// Metrics instruments the object core for an operator dashboard, the
// same register-and-increment idiom arx-os-arxos uses for its service
// request counters, applied here to Poisson solves and charge
// collection instead of HTTP requests.
type Metrics struct {
	SolvesIssued       prometheus.Counter
	CapacitanceBuildMs prometheus.Gauge
	ObjectsTracked     prometheus.Gauge
	ChargeCollected    prometheus.Counter
}

// NewMetrics registers the object core's metrics on reg and returns the
// handles used throughout BuildCapacitance/CollectImpacts.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		SolvesIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "picobj",
			Name:      "poisson_solves_issued_total",
			Help:      "Poisson solves issued by the capacitance builder.",
		}),
		CapacitanceBuildMs: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "picobj",
			Name:      "capacitance_build_duration_ms",
			Help:      "Wall-clock duration of the most recent capacitance assembly.",
		}),
		ObjectsTracked: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "picobj",
			Name:      "objects_tracked",
			Help:      "Number of conductor objects currently tracked.",
		}),
		ChargeCollected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "picobj",
			Name:      "impact_charge_collected_total",
			Help:      "Total particle charge absorbed by conductor objects.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.SolvesIssued, m.CapacitanceBuildMs, m.ObjectsTracked, m.ChargeCollected)
	}
	return m
}
