package iodata

import (
	"os"

	"github.com/gnames/gnfmt"
	"github.com/imgset/oiprep/pkg/selection"
)

// SaveSelection persists a finalized selection as a flat JSON file, the
// hand-off point between the select and upload phases.
func SaveSelection(path string, sel *selection.Selection) error {
	enc := gnfmt.GNjson{Pretty: true}
	data, err := enc.Encode(sel)
	if err != nil {
		return SelectionSaveError(path, err)
	}
	if err = os.WriteFile(path, data, 0644); err != nil {
		return SelectionSaveError(path, err)
	}
	return nil
}

// LoadSelection reads a selection persisted by SaveSelection.
func LoadSelection(path string) (*selection.Selection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, SelectionLoadError(path, err)
	}
	enc := gnfmt.GNjson{}
	var res selection.Selection
	if err = enc.Decode(data, &res); err != nil {
		return nil, SelectionLoadError(path, err)
	}
	return &res, nil
}
