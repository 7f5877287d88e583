package iodata

import (
	"os"

	"github.com/imgset/oiprep/pkg/taxonomy"
)

// LoadHierarchy reads and decodes the label hierarchy JSON file.
func LoadHierarchy(path string) (*taxonomy.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, HierarchyError(path, err)
	}
	defer f.Close()

	root, err := taxonomy.ParseHierarchy(f)
	if err != nil {
		return nil, HierarchyError(path, err)
	}
	return root, nil
}
