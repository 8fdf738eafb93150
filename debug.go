package motion

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-play timing. Only populated when Scene.debug is true.
type debugStats struct {
	frames   int
	total    time.Duration
	maxFrame time.Duration
}

func (d *debugStats) record(frame time.Duration) {
	d.frames++
	d.total += frame
	d.maxFrame = max(d.maxFrame, frame)
}

// debugLog prints play stats to stderr.
func (s *Scene) debugLog(name string, stats debugStats) {
	if !s.debug {
		return
	}
	var avg time.Duration
	if stats.frames > 0 {
		avg = stats.total / time.Duration(stats.frames)
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[motion] play %q: frames: %d | update: %v | avg: %v | max frame: %v\n",
		name, stats.frames, stats.total, avg, stats.maxFrame)
	_, _ = fmt.Fprintf(os.Stderr,
		"[motion] scene: t=%.3fs | nodes: %d\n", s.Time(), s.root.FamilySize())
}
