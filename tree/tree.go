// Package tree implements the arena-indexed spatial tree produced by a
// generation run. Nodes are addressed by index into a flat arena rather
// than by live pointers, decoupling tree lifetime from any scene-object
// lifetime in the host.
package tree

import "goki.dev/mat32/v2"

// NodeID indexes a node within a Tree's arena.
type NodeID int

// NoNode marks the absence of a parent (only the root has one).
const NoNode NodeID = -1

// Root is the id of the root node in every tree.
const Root NodeID = 0

// Node is a positioned, oriented element of the generated structure.
// Parent is established at creation and never reassigned; the parent
// exclusively owns its children for the lifetime of the tree.
type Node struct {
	Position mat32.Vec3
	Rotation mat32.Quat
	Parent   NodeID
	Children []NodeID
}

// Tree is a rooted arena of spatial nodes. The root sits at the origin
// with identity orientation and carries the caller's opaque scene
// handle, which the core threads through without inspecting.
type Tree struct {
	nodes []Node
	ref   any
}

// New creates a tree containing only the root node.
// ref is the caller's external handle for the root (may be nil).
func New(ref any) *Tree {
	root := Node{Parent: NoNode}
	root.Rotation.SetIdentity()
	return &Tree{
		nodes: []Node{root},
		ref:   ref,
	}
}

// Ref returns the external handle supplied at creation.
func (t *Tree) Ref() any {
	return t.ref
}

// Len returns the number of nodes, including the root.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Node returns the node for the given id.
func (t *Tree) Node(id NodeID) Node {
	return t.nodes[id]
}

// AddChild appends a new node under parent and returns its id.
func (t *Tree) AddChild(parent NodeID, pos mat32.Vec3, rot mat32.Quat) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, Node{
		Position: pos,
		Rotation: rot,
		Parent:   parent,
	})
	t.nodes[parent].Children = append(t.nodes[parent].Children, id)
	return id
}

// Traverse visits every parent->child edge in pre-order: a node is
// visited after its parent, children in creation order. It does not
// mutate the tree and can be restarted any number of times.
func (t *Tree) Traverse(visit func(parent, child Node)) {
	t.TraverseIDs(func(parent, child NodeID) {
		visit(t.nodes[parent], t.nodes[child])
	})
}

// TraverseIDs is Traverse with arena ids instead of node values, for
// visitors that need to address nodes (e.g. to map them onto external
// scene objects).
func (t *Tree) TraverseIDs(visit func(parent, child NodeID)) {
	// Iterative pre-order; children pushed in reverse so the first
	// created child is visited first.
	stack := []NodeID{Root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		children := t.nodes[id].Children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
		for _, child := range children {
			visit(id, child)
		}
	}
}

// Depth returns the length of the longest root-to-leaf path in edges.
// A root-only tree has depth 0.
func (t *Tree) Depth() int {
	depths := make([]int, len(t.nodes))
	max := 0
	t.TraverseIDs(func(parent, child NodeID) {
		depths[child] = depths[parent] + 1
		if depths[child] > max {
			max = depths[child]
		}
	})
	return max
}

// Leaves returns the number of nodes with no children.
func (t *Tree) Leaves() int {
	n := 0
	for i := range t.nodes {
		if len(t.nodes[i].Children) == 0 {
			n++
		}
	}
	return n
}
