package plot

// RectSpec describes one rectangle for the rendering surface. Key is stable
// across re-renders for the same input record so the surface can diff
// efficiently.
type RectSpec struct {
	Key    any
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Node is an opaque handle to one materialized visual element. The only
// operation the plot needs is walking toward the root, which is how pointer
// event targets are tested for membership in the rendered set.
type Node interface {
	// Parent returns the enclosing node, or nil at the root.
	Parent() Node
}

// Surface materializes rectangle descriptors into displayed output.
//
// Render consumes the descriptors in emitted order and returns one node
// handle per descriptor, in the same order. Container returns the node that
// bounds the plot's rendered region; pointer events bubbling past it are not
// the plot's concern.
type Surface interface {
	Render(specs []RectSpec) []Node
	Container() Node
}

// KeyFunc derives the diffing key for one input record. The default uses
// the record itself.
type KeyFunc[T any] func(input T) any
