// Package raster renders rectangle descriptors into an in-memory image.
// It implements plot.Surface for headless output: PNG files, snapshots in
// tests, or any consumer of image.Image.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/colornames"

	"github.com/go-drift/charts/pkg/graphics"
	"github.com/go-drift/charts/pkg/plot"
)

// node is the handle returned for one rendered rectangle. The raster tree
// is flat: every rectangle hangs directly off the container.
type node struct {
	rect   graphics.Rect
	parent plot.Node
}

func (n *node) Parent() plot.Node { return n.parent }

type containerNode struct{}

func (*containerNode) Parent() plot.Node { return nil }

// Surface rasterizes each render pass into an RGBA image, replacing the
// previous pass entirely.
type Surface struct {
	img        *image.RGBA
	background color.Color
	palette    []color.Color
	container  *containerNode
	nodes      []*node
}

// NewSurface creates a surface with the given pixel dimensions, a white
// background, and a default column palette.
func NewSurface(width, height int) *Surface {
	return &Surface{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		background: colornames.White,
		palette: []color.Color{
			colornames.Steelblue,
			colornames.Coral,
			colornames.Mediumseagreen,
			colornames.Goldenrod,
		},
		container: &containerNode{},
	}
}

// SetPalette replaces the column fill colors, cycled per descriptor index.
func (s *Surface) SetPalette(colors ...color.Color) {
	if len(colors) > 0 {
		s.palette = colors
	}
}

// Render clears the image and fills one rectangle per descriptor, returning
// one node handle per descriptor in emitted order. Degenerate rectangles
// (non-positive width or height) paint nothing but still produce a handle,
// keeping the returned sequence index-aligned with the input.
func (s *Surface) Render(specs []plot.RectSpec) []plot.Node {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(s.background), image.Point{}, draw.Src)

	s.nodes = make([]*node, len(specs))
	handles := make([]plot.Node, len(specs))
	for i, spec := range specs {
		rect := graphics.RectFromLTWH(spec.X, spec.Y, spec.Width, spec.Height)
		n := &node{rect: rect, parent: s.container}
		s.nodes[i] = n
		handles[i] = n

		if rect.IsEmpty() {
			continue
		}
		fill := s.palette[i%len(s.palette)]
		bounds := image.Rect(
			int(math.Round(rect.Left)),
			int(math.Round(rect.Top)),
			int(math.Round(rect.Right)),
			int(math.Round(rect.Bottom)),
		).Intersect(s.img.Bounds())
		draw.Draw(s.img, bounds, image.NewUniform(fill), image.Point{}, draw.Src)
	}
	return handles
}

// Container returns the node bounding the rendered region.
func (s *Surface) Container() plot.Node {
	return s.container
}

// NodeAt returns the rendered node containing the position, or the
// container when the position hits background. Useful for turning raw
// pointer coordinates into plot.PointerEvent targets.
func (s *Surface) NodeAt(position graphics.Offset) plot.Node {
	for _, n := range s.nodes {
		if n.rect.Contains(position) {
			return n
		}
	}
	return s.container
}

// Image exposes the current raster output.
func (s *Surface) Image() image.Image {
	return s.img
}

// EncodePNG writes the current raster output as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}
