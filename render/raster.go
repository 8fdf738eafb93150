package render

import (
	"image"
	"image/color"
	"math"

	"github.com/phanxgames/motion"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// StrokeUnit is the scene length of one unit of Node.StrokeWidth.
const StrokeUnit = 0.01

// curveSteps is the number of line pieces a stroked cubic is flattened to.
const curveSteps = 16

// Options configures a Renderer. Zero values select defaults.
type Options struct {
	// Width and Height are the output size in pixels (default 854x480).
	Width, Height int
	// Background fills the frame before drawing (default black).
	Background *motion.Color
	// Supersample renders at this multiple of the output size and scales
	// down with bilinear filtering. Values below 2 disable it.
	Supersample int
	// PointSize is the side in pixels of each point-cloud point (default 3).
	PointSize float64
}

func (o *Options) applyDefaults() {
	if o.Width <= 0 {
		o.Width = 854
	}
	if o.Height <= 0 {
		o.Height = 480
	}
	if o.Background == nil {
		bg := motion.ColorBlack
		o.Background = &bg
	}
	if o.Supersample < 1 {
		o.Supersample = 1
	}
	if o.PointSize <= 0 {
		o.PointSize = 3
	}
}

// Renderer rasterizes a node tree into an RGBA image. It reuses its
// buffers between frames, so Render results are only valid until the next
// call. A Renderer is not safe for concurrent use.
type Renderer struct {
	opts   Options
	cam    *Camera
	ras    *vector.Rasterizer
	canvas *image.RGBA // drawing surface, supersampled when enabled
	out    *image.RGBA
	bg     *image.Uniform
}

// NewRenderer creates a renderer with a camera covering the default frame.
func NewRenderer(opts Options) *Renderer {
	opts.applyDefaults()
	w, h := opts.Width*opts.Supersample, opts.Height*opts.Supersample
	r := &Renderer{
		opts:   opts,
		cam:    NewCamera(w, h),
		ras:    vector.NewRasterizer(w, h),
		canvas: image.NewRGBA(image.Rect(0, 0, w, h)),
		bg:     image.NewUniform(opts.Background.NRGBA()),
	}
	if opts.Supersample > 1 {
		r.out = image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	} else {
		r.out = r.canvas
	}
	return r
}

// Camera returns the renderer's camera. Its pixel size is the drawing
// surface size, which includes supersampling.
func (r *Renderer) Camera() *Camera { return r.cam }

// Bounds returns the output image bounds.
func (r *Renderer) Bounds() image.Rectangle { return r.out.Bounds() }

// Render draws root and its descendants in pre-order and returns the
// frame.
func (r *Renderer) Render(root *motion.Node) *image.RGBA {
	draw.Draw(r.canvas, r.canvas.Bounds(), r.bg, image.Point{}, draw.Src)
	if root != nil {
		for _, n := range root.Family() {
			r.drawNode(n)
		}
	}
	if r.out != r.canvas {
		draw.BiLinear.Scale(r.out, r.out.Bounds(), r.canvas, r.canvas.Bounds(), draw.Src, nil)
	}
	return r.out
}

// Rasterize renders root once into a new image.
func Rasterize(root *motion.Node, opts Options) *image.RGBA {
	r := NewRenderer(opts)
	img := r.Render(root)
	if img == r.canvas {
		return img
	}
	cp := image.NewRGBA(img.Bounds())
	copy(cp.Pix, img.Pix)
	return cp
}

func (r *Renderer) drawNode(n *motion.Node) {
	switch n.Type {
	case motion.NodeTypePoints:
		r.drawPoints(n)
	case motion.NodeTypePath, motion.NodeTypeText, motion.NodeTypeGroup:
		if len(n.Points) < 4 {
			return
		}
		if n.Fill.A > 0 {
			r.fillPath(n.Points, n.Fill)
		}
		if n.Stroke.A > 0 && n.StrokeWidth > 0 {
			r.strokePath(n.Points, n.StrokeWidth, n.Stroke)
		}
	}
}

func (r *Renderer) screen(p motion.Vec3) (float32, float32) {
	x, y := r.cam.WorldToScreen(p)
	return float32(x), float32(y)
}

func (r *Renderer) reset() {
	b := r.canvas.Bounds()
	r.ras.Reset(b.Dx(), b.Dy())
	r.ras.DrawOp = draw.Over
}

func (r *Renderer) paint(c motion.Color) {
	r.ras.Draw(r.canvas, r.canvas.Bounds(), image.NewUniform(c.NRGBA()), image.Point{})
}

// fillPath fills the cubic segments as closed subpaths. A segment whose
// start does not meet the previous segment's end opens a new subpath.
func (r *Renderer) fillPath(points []motion.Vec3, c motion.Color) {
	r.reset()
	var last motion.Vec3
	open := false
	for i := 0; i+3 < len(points); i += 4 {
		p0, p1, p2, p3 := points[i], points[i+1], points[i+2], points[i+3]
		if !open || !near(p0, last) {
			if open {
				r.ras.ClosePath()
			}
			r.ras.MoveTo(r.screen(p0))
			open = true
		}
		bx, by := r.screen(p1)
		cx, cy := r.screen(p2)
		dx, dy := r.screen(p3)
		r.ras.CubeTo(bx, by, cx, cy, dx, dy)
		last = p3
	}
	if open {
		r.ras.ClosePath()
	}
	r.paint(c)
}

// strokePath draws each flattened piece as a quad with square caps. All
// quads share one winding, so overlaps saturate instead of cancelling.
func (r *Renderer) strokePath(points []motion.Vec3, width float64, c motion.Color) {
	half := width * StrokeUnit * r.cam.PixelsPerUnit() / 2
	if half < 0.25 {
		half = 0.25
	}
	r.reset()
	for i := 0; i+3 < len(points); i += 4 {
		seg := [4]motion.Vec3{points[i], points[i+1], points[i+2], points[i+3]}
		px, py := r.screenF(seg[0])
		for k := 1; k <= curveSteps; k++ {
			qx, qy := r.screenF(cubicAt(seg, float64(k)/curveSteps))
			r.quad(px, py, qx, qy, half)
			px, py = qx, qy
		}
	}
	r.paint(c)
}

func (r *Renderer) screenF(p motion.Vec3) (float64, float64) {
	return r.cam.WorldToScreen(p)
}

func (r *Renderer) quad(ax, ay, bx, by, half float64) {
	dx, dy := bx-ax, by-ay
	l := math.Hypot(dx, dy)
	if l < 1e-9 {
		return
	}
	ux, uy := dx/l*half, dy/l*half
	nx, ny := -uy, ux
	ax, ay = ax-ux, ay-uy
	bx, by = bx+ux, by+uy
	r.ras.MoveTo(float32(ax+nx), float32(ay+ny))
	r.ras.LineTo(float32(bx+nx), float32(by+ny))
	r.ras.LineTo(float32(bx-nx), float32(by-ny))
	r.ras.LineTo(float32(ax-nx), float32(ay-ny))
	r.ras.ClosePath()
}

// drawPoints draws each point as a square in the stroke color.
func (r *Renderer) drawPoints(n *motion.Node) {
	if len(n.Points) == 0 || n.Stroke.A <= 0 {
		return
	}
	half := float32(r.opts.PointSize*float64(r.opts.Supersample)) / 2
	r.reset()
	for _, p := range n.Points {
		x, y := r.screen(p)
		r.ras.MoveTo(x-half, y-half)
		r.ras.LineTo(x+half, y-half)
		r.ras.LineTo(x+half, y+half)
		r.ras.LineTo(x-half, y+half)
		r.ras.ClosePath()
	}
	r.paint(n.Stroke)
}

func cubicAt(p [4]motion.Vec3, t float64) motion.Vec3 {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return p[0].Scale(a).Add(p[1].Scale(b)).Add(p[2].Scale(c)).Add(p[3].Scale(d))
}

func near(a, b motion.Vec3) bool {
	return a.Sub(b).Len() < 1e-6
}

// ColorAt returns the color of img at pixel (x, y) as straight alpha.
func ColorAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}
