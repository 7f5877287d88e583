package taxonomy

import (
	"encoding/json"
	"fmt"
	"io"
)

// Node is one node of the label hierarchy. The JSON field names follow
// the Open Images hierarchy encoding.
type Node struct {
	LabelName   string  `json:"LabelName"`
	Subcategory []*Node `json:"Subcategory,omitempty"`
}

// IDSet is a set of taxonomy IDs.
type IDSet map[string]struct{}

// Contains reports whether id is a member of the set.
func (s IDSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the members of the set in unspecified order.
func (s IDSet) IDs() []string {
	res := make([]string, 0, len(s))
	for id := range s {
		res = append(res, id)
	}
	return res
}

// ParseHierarchy decodes a label hierarchy tree from its JSON encoding.
func ParseHierarchy(r io.Reader) (*Node, error) {
	var root Node
	dec := json.NewDecoder(r)
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("cannot decode label hierarchy: %w", err)
	}
	return &root, nil
}

// Expand returns the set of rootID plus the IDs of every node in its
// subtree. If rootID does not occur anywhere under n the result is an
// empty set; a malformed hierarchy that lacks a requested class is
// accepted input, not an error.
func (n *Node) Expand(rootID string) IDSet {
	res := make(IDSet)
	if start := n.find(rootID); start != nil {
		start.collect(res)
	}
	return res
}

// find locates the node with the given ID by depth-first search.
func (n *Node) find(id string) *Node {
	if n.LabelName == id {
		return n
	}
	for _, child := range n.Subcategory {
		if found := child.find(id); found != nil {
			return found
		}
	}
	return nil
}

// collect adds the IDs of n and its whole subtree to the set.
func (n *Node) collect(set IDSet) {
	set[n.LabelName] = struct{}{}
	for _, child := range n.Subcategory {
		child.collect(set)
	}
}
