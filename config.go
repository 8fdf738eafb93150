package motion

import (
	"errors"
	"fmt"
)

// Construction errors. Constructors and Begin wrap these with the name of
// the animation; test with errors.Is.
var (
	ErrNilNode         = errors.New("nil node")
	ErrNoTarget        = errors.New("no target")
	ErrUnsupportedNode = errors.New("unsupported node type")
	ErrTooFewMembers   = errors.New("too few members")
	ErrBadMatrix       = errors.New("matrix has bad dimensions")
	ErrNoSavedState    = errors.New("no saved state")
	ErrBadConfig       = errors.New("bad configuration")
)

// Default animation settings.
const (
	DefaultRunTime       = 1.0
	DefaultLagRatio      = 0.0
	DefaultFlashWidth    = 0.1
	DefaultLaggedRatio   = 0.05
	DefaultTimePerWord   = 0.2
	DefaultBorderWidth   = 2.0
	DefaultBroadcastRuns = 5
)

// TimeSpan restricts an animation to part of its parent's timeline, in
// seconds. Before Start the animation sits at alpha 0, after End at 1.
type TimeSpan struct {
	Start, End float64
}

// Config holds the options shared by every animation constructor. The zero
// value means "use the family default" for every field; pointer fields
// distinguish an explicit zero from unset. Use Float and Bool to fill them.
type Config struct {
	// Name labels the animation in errors, events and debug output.
	Name string

	// RunTime in seconds. Values <= 0 use the family default.
	RunTime float64
	// RateFunc reshapes progress. Nil uses the family default.
	RateFunc RateFunc
	// LagRatio staggers family members (or combinator children): 0 runs them
	// together, 1 runs them one after another.
	LagRatio *float64

	Remover                *bool
	SuspendMobjectUpdating *bool
	ShouldMatchStart       *bool

	// FinalAlpha is the alpha interpolated by Finish.
	FinalAlpha *float64

	// PathArc moves Transform points along an arc of this many radians
	// about PathArcAxis (zero axis means Out). PathFunc overrides both.
	PathArc     *float64
	PathArcAxis Vec3
	PathFunc    PathFunc

	TimeSpan *TimeSpan
}

// Float returns a pointer to v, for Config fields.
func Float(v float64) *float64 { return &v }

// Bool returns a pointer to v, for Config fields.
func Bool(v bool) *bool { return &v }

// settings is a Config with every default resolved.
type settings struct {
	name       string
	runTime    float64
	rate       RateFunc
	lagRatio   float64
	remover    bool
	suspend    bool
	matchStart bool
	finalAlpha float64
	pathArc    float64
	path       PathFunc
	timeSpan   *TimeSpan
}

// defaultSettings are the family-independent defaults.
func defaultSettings(name string) settings {
	return settings{
		name:       name,
		runTime:    DefaultRunTime,
		rate:       Smooth,
		lagRatio:   DefaultLagRatio,
		suspend:    true,
		finalAlpha: 1,
	}
}

// resolve overlays c on the family defaults d and validates the result.
func (c Config) resolve(d settings) (settings, error) {
	s := d
	if c.Name != "" {
		s.name = c.Name
	}
	if c.RunTime > 0 {
		s.runTime = c.RunTime
	}
	if c.RateFunc != nil {
		s.rate = c.RateFunc
	}
	if c.LagRatio != nil {
		if *c.LagRatio < 0 {
			return s, fmt.Errorf("motion: %s: lag ratio %v: %w", s.name, *c.LagRatio, ErrBadConfig)
		}
		s.lagRatio = *c.LagRatio
	}
	if c.Remover != nil {
		s.remover = *c.Remover
	}
	if c.SuspendMobjectUpdating != nil {
		s.suspend = *c.SuspendMobjectUpdating
	}
	if c.ShouldMatchStart != nil {
		s.matchStart = *c.ShouldMatchStart
	}
	if c.FinalAlpha != nil {
		s.finalAlpha = *c.FinalAlpha
	}
	if c.PathArc != nil {
		s.pathArc = *c.PathArc
	}
	if c.TimeSpan != nil {
		ts := *c.TimeSpan
		if ts.Start < 0 || ts.End <= ts.Start {
			return s, fmt.Errorf("motion: %s: time span [%v, %v]: %w", s.name, ts.Start, ts.End, ErrBadConfig)
		}
		s.timeSpan = &ts
		s.runTime = max(s.runTime, ts.End)
	}
	switch {
	case c.PathFunc != nil:
		s.path = c.PathFunc
	case s.pathArc != 0:
		s.path = PathAlongArc(s.pathArc, c.PathArcAxis)
	case s.path == nil:
		s.path = StraightPath
	}
	return s, nil
}
