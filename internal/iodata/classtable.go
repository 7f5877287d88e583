// Package iodata adapts the cached dataset metadata files to the pure
// taxonomy and selection packages, and persists the selection result
// between pipeline phases.
package iodata

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/imgset/oiprep/pkg/taxonomy"
)

// ClassTable streams the two-column class description CSV as a
// taxonomy.RowSource. The file is consumed lazily so class resolution can
// stop early.
type ClassTable struct {
	f *os.File
	r *csv.Reader
}

// OpenClassTable opens the class description CSV.
func OpenClassTable(path string) (*ClassTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ClassTableError(path, err)
	}
	r := csv.NewReader(f)
	r.FieldsPerRecord = 2
	r.ReuseRecord = true
	return &ClassTable{f: f, r: r}, nil
}

// Next returns the next (ID, name) row; io.EOF after the last one.
func (t *ClassTable) Next() (taxonomy.Row, error) {
	rec, err := t.r.Read()
	if err == io.EOF {
		return taxonomy.Row{}, io.EOF
	}
	if err != nil {
		return taxonomy.Row{}, ClassTableError(t.f.Name(), err)
	}
	return taxonomy.Row{ID: rec[0], Name: rec[1]}, nil
}

// Close releases the underlying file.
func (t *ClassTable) Close() error {
	return t.f.Close()
}
