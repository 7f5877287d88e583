// Package selection implements the deterministic image selection pass
// over a stream of bounding-box annotation records.
//
// Selection is an explicit two-phase algorithm:
//
//  1. Bounded accumulation: records are appended to per-class,
//     insertion-ordered image buckets until a class holds
//     imagesPerClass*(batch+1) distinct images, after which the class
//     stops accumulating.
//  2. Deterministic windowing: after the stream ends, the last
//     imagesPerClass image entries of every class form its window.
//
// Because accumulation for batch B+1 produces a strict superset of the
// entries accumulated for batch B, taking the tail gives collaborators
// running distinct batch numbers disjoint image windows from the same
// annotation stream. Both phases follow stream order, so repeated runs
// over the same input are byte-for-byte identical.
package selection

import (
	"github.com/imgset/oiprep/pkg/taxonomy"
)

// Record is one bounding-box annotation row. Coordinates are relative
// (0..1) as in the source annotation table.
type Record struct {
	ImageID string  `json:"image_id"`
	LabelID string  `json:"label_id"`
	XMin    float64 `json:"xmin"`
	XMax    float64 `json:"xmax"`
	YMin    float64 `json:"ymin"`
	YMax    float64 `json:"ymax"`
}

// Class binds a requested class name to its expanded taxonomy ID set.
type Class struct {
	Name string
	IDs  taxonomy.IDSet
}

// classAccum tracks the accumulation state for one class. The only state
// transition is accumulating -> filled; there is no rollback.
type classAccum struct {
	name    string
	ids     taxonomy.IDSet
	order   []string
	byImage map[string][]Record
	filled  bool
}

// Selector accumulates annotation records for a fixed set of classes.
// It is not safe for concurrent use; the selection pass is single-threaded
// by design.
type Selector struct {
	classes        []*classAccum
	imagesPerClass int
	cutoff         int
	skip           map[string]struct{}
	records        int
}

// NewSelector creates a Selector for the given classes. imagesPerClass is
// the window size N, batch the zero-based batch offset B; accumulation for
// a class stops after N*(B+1) distinct images. Image IDs in skip are
// ignored entirely.
func NewSelector(
	classes []Class,
	imagesPerClass, batch int,
	skip []string,
) *Selector {
	accums := make([]*classAccum, len(classes))
	for i, cl := range classes {
		accums[i] = &classAccum{
			name:    cl.Name,
			ids:     cl.IDs,
			byImage: make(map[string][]Record),
		}
	}
	skipSet := make(map[string]struct{}, len(skip))
	for _, id := range skip {
		skipSet[id] = struct{}{}
	}
	return &Selector{
		classes:        accums,
		imagesPerClass: imagesPerClass,
		cutoff:         imagesPerClass * (batch + 1),
		skip:           skipSet,
	}
}

// Add feeds one annotation record to every class that is still
// accumulating and whose ID set contains the record's label.
func (s *Selector) Add(rec Record) {
	if _, ok := s.skip[rec.ImageID]; ok {
		return
	}
	s.records++
	for _, cl := range s.classes {
		if cl.filled || !cl.ids.Contains(rec.LabelID) {
			continue
		}
		if _, seen := cl.byImage[rec.ImageID]; !seen {
			cl.order = append(cl.order, rec.ImageID)
		}
		cl.byImage[rec.ImageID] = append(cl.byImage[rec.ImageID], rec)
		if len(cl.order) == s.cutoff {
			cl.filled = true
		}
	}
}

// AllFilled reports whether every class reached its accumulation cutoff.
// Callers may stop streaming once it returns true; this only bounds work,
// the windows are identical either way.
func (s *Selector) AllFilled() bool {
	for _, cl := range s.classes {
		if !cl.filled {
			return false
		}
	}
	return true
}

// Records returns the number of records accepted so far (skip-listed
// images excluded).
func (s *Selector) Records() int {
	return s.records
}

// ClassImages is the selected window of one class: image IDs in stream
// order with their matching records.
type ClassImages struct {
	Name     string              `json:"name"`
	Want     int                 `json:"want"`
	ImageIDs []string            `json:"image_ids"`
	Records  map[string][]Record `json:"records"`
}

// ClassCount pairs a class name with its achieved image count.
type ClassCount struct {
	Name  string
	Count int
}

// Selection is the finalized result of the selection pass.
type Selection struct {
	// Classes holds the per-class windows in requested class order.
	Classes []ClassImages `json:"classes"`

	// ImageIDs is the union of all selected images in first-seen order.
	ImageIDs []string `json:"image_ids"`

	// Images maps every selected image to its matching records from all
	// classes that chose it.
	Images map[string][]Record `json:"images"`
}

// Finalize applies the deterministic window to every class and merges the
// per-class results. For each class the last imagesPerClass accumulated
// image entries are kept; an image selected by several classes carries the
// records of each.
func (s *Selector) Finalize() *Selection {
	res := &Selection{
		Classes: make([]ClassImages, 0, len(s.classes)),
		Images:  make(map[string][]Record),
	}
	for _, cl := range s.classes {
		start := len(cl.order) - s.imagesPerClass
		if start < 0 {
			start = 0
		}
		window := cl.order[start:]

		ci := ClassImages{
			Name:     cl.name,
			Want:     s.imagesPerClass,
			ImageIDs: make([]string, 0, len(window)),
			Records:  make(map[string][]Record, len(window)),
		}
		for _, imgID := range window {
			ci.ImageIDs = append(ci.ImageIDs, imgID)
			ci.Records[imgID] = cl.byImage[imgID]

			if _, ok := res.Images[imgID]; !ok {
				res.ImageIDs = append(res.ImageIDs, imgID)
			}
			res.Images[imgID] = append(
				res.Images[imgID], cl.byImage[imgID]...,
			)
		}
		res.Classes = append(res.Classes, ci)
	}
	return res
}

// Underfilled returns the classes whose window ended up smaller than
// requested, zero-match classes included. Under-fill is a recoverable
// condition: callers report it as a warning and continue with partial
// results.
func (sel *Selection) Underfilled() []ClassCount {
	var res []ClassCount
	for _, ci := range sel.Classes {
		if len(ci.ImageIDs) < ci.Want {
			res = append(res, ClassCount{
				Name:  ci.Name,
				Count: len(ci.ImageIDs),
			})
		}
	}
	return res
}
