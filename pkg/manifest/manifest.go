// Package manifest reads and writes labeling job manifests: newline
// delimited JSON where every line references one stored image.
//
// The input manifest consumed by the labeling service carries only a
// "source-ref" per line. After labeling, each line additionally holds a
// task field with the produced bounding boxes; ReadLabeled parses that
// richer form for downstream training consumers.
package manifest

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Entry is one input manifest line.
type Entry struct {
	// SourceRef is the URI of the stored image, e.g.
	// "s3://bucket/training/images/000002b66c9c498e.jpg".
	SourceRef string `json:"source-ref"`
}

// BoundingBox is one labeled box in pixel coordinates, as produced by the
// annotation workforce.
type BoundingBox struct {
	ClassID int     `json:"class_id"`
	Left    float64 `json:"left"`
	Top     float64 `json:"top"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
}

// Annotations is the value of a task field in an output manifest line.
type Annotations struct {
	Annotations []BoundingBox `json:"annotations"`
}

// LabeledEntry is one output manifest line: the image reference plus the
// boxes produced for it by the given task.
type LabeledEntry struct {
	SourceRef string
	Boxes     []BoundingBox
}

// Write encodes entries as newline-delimited JSON.
func Write(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		data, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("cannot encode manifest entry: %w", err)
		}
		if _, err = bw.Write(data); err != nil {
			return err
		}
		if err = bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Read decodes an input manifest. Blank lines are skipped.
func Read(r io.Reader) ([]Entry, error) {
	var res []Entry
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		var e Entry
		if err := json.Unmarshal(line, &e); err != nil {
			return nil, fmt.Errorf("malformed manifest line: %w", err)
		}
		res = append(res, e)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// ReadLabeled decodes an output manifest produced by the labeling job
// named task. Lines without the task field yield an entry with no boxes.
func ReadLabeled(r io.Reader, task string) ([]LabeledEntry, error) {
	var res []LabeledEntry
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(line, &fields); err != nil {
			return nil, fmt.Errorf("malformed manifest line: %w", err)
		}

		var e LabeledEntry
		if raw, ok := fields["source-ref"]; ok {
			if err := json.Unmarshal(raw, &e.SourceRef); err != nil {
				return nil, fmt.Errorf("malformed source-ref: %w", err)
			}
		}
		if raw, ok := fields[task]; ok {
			var ann Annotations
			if err := json.Unmarshal(raw, &ann); err != nil {
				return nil, fmt.Errorf(
					"malformed annotations for task %q: %w", task, err,
				)
			}
			e.Boxes = ann.Annotations
		}
		res = append(res, e)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return res, nil
}
