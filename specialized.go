package motion

import "fmt"

// BroadcastConfig configures Broadcast. Zero fields use the defaults noted
// on each.
type BroadcastConfig struct {
	Config

	// SmallRadius is the circles' starting radius (0).
	SmallRadius float64
	// BigRadius is the radius the circles expand to (5).
	BigRadius float64
	// NCircles is the number of ripples (DefaultBroadcastRuns).
	NCircles int
	// StartStrokeWidth is the stroke width at the small radius (8). The
	// stroke thins to zero as a circle expands.
	StartStrokeWidth float64
	// Color of the ripples; nil means white.
	Color *Color
}

func (c *BroadcastConfig) applyDefaults() {
	if c.BigRadius <= 0 {
		c.BigRadius = 5
	}
	if c.NCircles <= 0 {
		c.NCircles = DefaultBroadcastRuns
	}
	if c.StartStrokeWidth <= 0 {
		c.StartStrokeWidth = 8
	}
	if c.Color == nil {
		white := ColorWhite
		c.Color = &white
	}
	if c.RunTime <= 0 {
		c.RunTime = 3
	}
	if c.LagRatio == nil {
		c.LagRatio = Float(0.2)
	}
	if c.Remover == nil {
		c.Remover = Bool(true)
	}
}

// Broadcast sends ripples out of focal: NCircles circles, each restored
// from a small bright ring to a wide invisible one, staggered in time.
// Every circle carries an updater pinning it to focal. The circles are
// reachable through the returned group's animations.
func Broadcast(focal Vec3, cfg BroadcastConfig) (*Group, error) {
	cfg.applyDefaults()
	if cfg.SmallRadius < 0 || cfg.SmallRadius > cfg.BigRadius {
		return nil, fmt.Errorf("motion: Broadcast: radius %v to %v: %w", cfg.SmallRadius, cfg.BigRadius, ErrBadConfig)
	}
	anims := make([]Animation, 0, cfg.NCircles)
	for i := 0; i < cfg.NCircles; i++ {
		circle := NewCircle(fmt.Sprintf("broadcast.%d", i), cfg.BigRadius)
		circle.SetStroke(ColorBlack, 0)
		circle.MoveTo(focal)
		circle.AddUpdater(func(n *Node, _ float64) { n.MoveTo(focal) })
		circle.SaveState()
		circle.Scale(cfg.SmallRadius / cfg.BigRadius)
		circle.SetStroke(*cfg.Color, cfg.StartStrokeWidth)
		a, err := Restore(circle, Config{SuspendMobjectUpdating: Bool(false)})
		if err != nil {
			return nil, fmt.Errorf("motion: Broadcast: %w", err)
		}
		anims = append(anims, a)
	}
	group := cfg.Config
	if group.Name == "" {
		group.Name = "Broadcast"
	}
	return LaggedStart(group, anims...)
}
