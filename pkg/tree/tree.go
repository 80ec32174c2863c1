// Package tree defines the canonical in-memory representation of a
// directory tree. Every input format parses into this model, and the
// generator consumes it to produce filesystem effects.
package tree

// Kind classifies a node as a directory or a file.
type Kind int

const (
	// KindDir is a directory node. Only directories carry children.
	KindDir Kind = iota
	// KindFile is a file node, optionally carrying content.
	KindFile
)

// Node is a single entry in the canonical tree.
//
// The root of every tree is a synthetic directory whose name is empty,
// meaning "the destination directory itself" — no extra path segment is
// appended for it. Directory names parsed from tree drawings keep their
// trailing slash as written.
type Node struct {
	// Name is the path segment for this node. Empty only on the root.
	Name string

	// Kind is fixed at parse time and never changes afterward.
	Kind Kind

	// Children holds child nodes in parse order. Always empty for files.
	Children []*Node

	// Content is the file body. Nil means "create an empty file".
	// Meaningful only for file nodes.
	Content *string
}

// NewRoot returns the synthetic root directory.
func NewRoot() *Node {
	return NewDir("")
}

// NewDir returns an empty directory node.
func NewDir(name string) *Node {
	return &Node{Name: name, Kind: KindDir}
}

// NewFile returns a file node. Content may be nil for an empty file.
func NewFile(name string, content *string) *Node {
	return &Node{Name: name, Kind: KindFile, Content: content}
}

// IsDir reports whether the node is a directory.
func (n *Node) IsDir() bool {
	return n.Kind == KindDir
}

// Merge appends the other tree's top-level children to this node.
// Duplicate names are kept as-is: both siblings stay in the tree, and
// whichever is materialized last wins on disk.
func (n *Node) Merge(other *Node) {
	if other == nil {
		return
	}
	n.Children = append(n.Children, other.Children...)
}
