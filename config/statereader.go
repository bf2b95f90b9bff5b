// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
)

// StateReader is the seam where the real simulator's HDF5 state-file
// reader plugs in: a single dataset named "Object", a scalar field
// over the full grid. No HDF5 client library appears anywhere in the
// retrieved example pack (see DESIGN.md); JSONStateReader is the
// concrete stand-in, carrying the same named-dataset shape.
type StateReader interface {
	// ReadObjectField returns the flat, real-valued field for dataset,
	// and the trueSize the field was written against.
	ReadObjectField(dataset string) (values []float64, trueSize [3]int, err error)
}

// stateFile is the on-disk shape a JSONStateReader understands: one
// named dataset per field, flattened row-major, plus its true grid size.
type stateFile struct {
	Datasets map[string]struct {
		TrueSize [3]int    `json:"trueSize"`
		Values   []float64 `json:"values"`
	} `json:"datasets"`
}

// JSONStateReader reads datasets from a JSON-encoded state bundle.
type JSONStateReader struct {
	file stateFile
}

// NewJSONStateReader parses raw as a JSON state bundle.
func NewJSONStateReader(raw []byte) (*JSONStateReader, error) {
	var sf stateFile
	if err := json.Unmarshal(raw, &sf); err != nil {
		return nil, chk.Err("statereader: cannot unmarshal state file: %v\n", err)
	}
	return &JSONStateReader{file: sf}, nil
}

// ReadObjectField implements StateReader.
func (r *JSONStateReader) ReadObjectField(dataset string) ([]float64, [3]int, error) {
	ds, ok := r.file.Datasets[dataset]
	if !ok {
		return nil, [3]int{}, chk.Err("statereader: dataset %q not found\n", dataset)
	}
	return ds.Values, ds.TrueSize, nil
}
