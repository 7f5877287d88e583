package iodata

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/cheggaaa/pb/v3"
	"github.com/imgset/oiprep/pkg/selection"
)

// Annotation table columns (after the header row). The table carries
// more columns than the pipeline uses; only these are read.
const (
	colImageID = 0
	colLabelID = 2
	colXMin    = 4
	colXMax    = 5
	colYMin    = 6
	colYMax    = 7
)

// StreamAnnotations feeds the bounding box annotation CSV to the
// selector in one sequential pass, in file order. The pass ends early
// once every class reached its accumulation cutoff. With progress
// enabled a byte progress bar tracks the position in the file.
func StreamAnnotations(
	path string,
	sel *selection.Selector,
	progress bool,
) error {
	f, err := os.Open(path)
	if err != nil {
		return AnnotationsError(path, err)
	}
	defer f.Close()

	var src io.Reader = f
	if progress {
		info, err := f.Stat()
		if err == nil {
			bar := pb.Full.Start64(info.Size())
			bar.Set(pb.Bytes, true)
			bar.Set("prefix", "annotations ")
			bar.Set(pb.CleanOnFinish, true)
			src = bar.NewProxyReader(f)
			defer bar.Finish()
		}
	}

	r := csv.NewReader(src)
	r.ReuseRecord = true

	// Header row.
	if _, err = r.Read(); err != nil {
		return AnnotationsError(path, err)
	}

	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return AnnotationsError(path, err)
		}

		row, err := parseRecord(rec)
		if err != nil {
			return AnnotationsError(path, err)
		}
		sel.Add(row)

		if sel.AllFilled() {
			break
		}
	}
	return nil
}

func parseRecord(rec []string) (selection.Record, error) {
	var res selection.Record
	coords := [4]float64{}
	for i, col := range []int{colXMin, colXMax, colYMin, colYMax} {
		v, err := strconv.ParseFloat(rec[col], 64)
		if err != nil {
			return res, err
		}
		coords[i] = v
	}
	res = selection.Record{
		ImageID: rec[colImageID],
		LabelID: rec[colLabelID],
		XMin:    coords[0],
		XMax:    coords[1],
		YMin:    coords[2],
		YMax:    coords[3],
	}
	return res, nil
}
