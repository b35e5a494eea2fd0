package plot

import "github.com/go-drift/charts/pkg/graphics"

// PointerEvent is a click bubbling up from inside the plot's rendered
// region. Target is the node the pointer actually hit, which may be an
// arbitrarily deep descendant of a rendered column node.
type PointerEvent struct {
	Target   Node
	Position graphics.Offset
}

// Selection is the outcome of mapping one pointer event back to the data.
// Point is nil when no rendered column contained the target; that is a
// defined result, not an error.
type Selection[T any] struct {
	Point *ColumnPoint[T]
	Event PointerEvent
}

// HandleTap maps a pointer event back to the column it landed on and emits
// the outcome on the selection signal.
//
// The mapping works without per-node metadata: the ancestor chain from the
// event target up to (and excluding) the surface container is collected
// into an identity set, and the registry from the last render pass is
// scanned in order for the first handle present in that set. The walk is
// bounded by tree depth, not by data size.
//
// A target outside every rendered column, or an event arriving while the
// registry is stale or empty, degrades to a no-match selection. An event
// whose direct target is the container itself hit no inner node at all and
// is dropped without emitting.
func (p *BarPlot[T]) HandleTap(ev PointerEvent) {
	container := Node(nil)
	if p.surface != nil {
		container = p.surface.Container()
	}
	if ev.Target == nil || ev.Target == container {
		return
	}

	visited := make(map[Node]struct{})
	for node := ev.Target; node != nil && node != container; node = node.Parent() {
		visited[node] = struct{}{}
	}

	var match *ColumnPoint[T]
	for i, handle := range p.nodes {
		if _, ok := visited[handle]; ok {
			point := p.points[i]
			match = &point
			break
		}
	}
	p.selection.Emit(Selection[T]{Point: match, Event: ev})
}
