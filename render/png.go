package render

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

// FrameWriter encodes frames to numbered PNG files in a directory. Frames
// are copied on Write and encoded in parallel; Close waits for all of them
// and returns the first error.
type FrameWriter struct {
	dir    string
	prefix string
	g      *errgroup.Group
	ctx    context.Context
	n      int
}

// NewFrameWriter creates dir if needed and returns a writer whose files are
// named <label>_<index>.png. workers limits concurrent encodes; zero or
// less uses GOMAXPROCS.
func NewFrameWriter(ctx context.Context, dir, label string, workers int) (*FrameWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("render: mkdir %s: %w", dir, err)
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	return &FrameWriter{dir: dir, prefix: sanitizeLabel(label), g: g, ctx: gctx}, nil
}

// Path returns the file path used for frame index.
func (w *FrameWriter) Path(index int) string {
	return filepath.Join(w.dir, fmt.Sprintf("%s_%05d.png", w.prefix, index))
}

// Written returns the number of frames submitted so far.
func (w *FrameWriter) Written() int { return w.n }

// Write queues img for encoding as frame index. It blocks while all workers
// are busy and returns the context error once a previous write has failed.
func (w *FrameWriter) Write(index int, img *image.RGBA) error {
	if err := w.ctx.Err(); err != nil {
		return err
	}
	cp := image.NewRGBA(img.Bounds())
	copy(cp.Pix, img.Pix)
	path := w.Path(index)
	w.n++
	w.g.Go(func() error {
		if err := w.ctx.Err(); err != nil {
			return err
		}
		return writePNG(path, cp)
	})
	return nil
}

// Close waits for pending encodes.
func (w *FrameWriter) Close() error {
	return w.g.Wait()
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("render: encode %s: %w", path, err)
	}
	return f.Close()
}

// WritePNG encodes a single image to path.
func WritePNG(path string, img image.Image) error {
	return writePNG(path, img)
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "frame" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "frame"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
