// Package taxonomy maps human-readable object class names to dataset
// taxonomy IDs and expands an ID over the label hierarchy into the set of
// the ID and all of its descendants.
//
// This package is pure: it never touches files or the network. Callers
// supply the class description table as a RowSource and the hierarchy as a
// decoded Node tree.
package taxonomy

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// Row is one entry of the class description table: a taxonomy ID paired
// with its human-readable display name.
type Row struct {
	ID   string
	Name string
}

// RowSource streams rows of the class description table. Next returns
// io.EOF after the last row. The source is consumed lazily so resolution
// can stop as soon as all requested names are found.
type RowSource interface {
	Next() (Row, error)
}

// ClassNotFoundError reports requested class names that have no match in
// the class description table.
type ClassNotFoundError struct {
	Names []string
}

func (e *ClassNotFoundError) Error() string {
	return fmt.Sprintf(
		"classes not found in description table: %s",
		strings.Join(e.Names, ", "),
	)
}

// ResolveClasses maps every requested class name to its taxonomy ID using
// case-insensitive exact match on the display name. The source is read
// only as far as needed: once the last requested name is resolved no
// further rows are consumed. If the source is exhausted first, the
// returned error is a *ClassNotFoundError enumerating every unresolved
// name.
func ResolveClasses(
	names []string,
	src RowSource,
) (map[string]string, error) {
	res := make(map[string]string, len(names))
	pending := make(map[string]string, len(names))
	for _, n := range names {
		pending[strings.ToLower(n)] = n
	}

	for len(pending) > 0 {
		row, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read class table: %w", err)
		}
		key := strings.ToLower(row.Name)
		if name, ok := pending[key]; ok {
			res[name] = row.ID
			delete(pending, key)
		}
	}

	if len(pending) > 0 {
		missing := make([]string, 0, len(pending))
		for _, name := range pending {
			missing = append(missing, name)
		}
		slices.Sort(missing)
		return nil, &ClassNotFoundError{Names: missing}
	}
	return res, nil
}
