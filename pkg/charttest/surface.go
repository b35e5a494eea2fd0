package charttest

import "github.com/go-drift/charts/pkg/plot"

// FakeNode is a DOM-like node with a parent pointer, so ancestor walks
// behave as they would over real rendered output.
type FakeNode struct {
	Label  string
	parent *FakeNode
}

// Parent returns the enclosing node, or nil at the root.
func (n *FakeNode) Parent() plot.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// Child creates a new node nested under n, emulating inner markup that a
// real surface would put inside a rendered rectangle.
func (n *FakeNode) Child(label string) *FakeNode {
	return &FakeNode{Label: label, parent: n}
}

// FakeSurface records every render pass and materializes one FakeNode per
// descriptor, parented to the surface container.
type FakeSurface struct {
	container *FakeNode

	// Passes holds the descriptor slice of every Render call, oldest first.
	Passes [][]plot.RectSpec
	// Nodes holds the nodes from the most recent pass.
	Nodes []*FakeNode
}

// NewFakeSurface creates an empty surface.
func NewFakeSurface() *FakeSurface {
	return &FakeSurface{container: &FakeNode{Label: "container"}}
}

// Render materializes specs into fresh nodes, replacing those of the prior
// pass.
func (s *FakeSurface) Render(specs []plot.RectSpec) []plot.Node {
	s.Passes = append(s.Passes, specs)
	s.Nodes = make([]*FakeNode, len(specs))
	handles := make([]plot.Node, len(specs))
	for i := range specs {
		node := s.container.Child("rect")
		s.Nodes[i] = node
		handles[i] = node
	}
	return handles
}

// Container returns the node bounding the rendered region.
func (s *FakeSurface) Container() plot.Node {
	return s.container
}

// LastPass returns the descriptors of the most recent render, or nil if
// nothing rendered yet.
func (s *FakeSurface) LastPass() []plot.RectSpec {
	if len(s.Passes) == 0 {
		return nil
	}
	return s.Passes[len(s.Passes)-1]
}

// Tap builds a pointer event targeting the given node.
func Tap(target plot.Node) plot.PointerEvent {
	return plot.PointerEvent{Target: target}
}
