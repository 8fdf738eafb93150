package motion

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ErrBadScript is wrapped by every script parse and build error.
var ErrBadScript = errors.New("bad script")

// Script is a YAML scene description: node declarations and a list of
// steps. Angles in scripts are in degrees.
//
//	fps: 30
//	nodes:
//	  - {name: sq, shape: square, size: 2, stroke: "#58c4dd"}
//	steps:
//	  - play: [{anim: show_creation, node: sq}]
//	  - wait: 1
type Script struct {
	FPS   int        `yaml:"fps,omitempty"`
	Nodes []NodeSpec `yaml:"nodes"`
	Steps []StepSpec `yaml:"steps"`
}

// NodeSpec declares one node. Which fields apply depends on Shape.
type NodeSpec struct {
	Name  string `yaml:"name"`
	Shape string `yaml:"shape"`

	Size       float64     `yaml:"size,omitempty"`
	Width      float64     `yaml:"width,omitempty"`
	Height     float64     `yaml:"height,omitempty"`
	StartAngle float64     `yaml:"start_angle,omitempty"`
	Angle      float64     `yaml:"angle,omitempty"`
	At         []float64   `yaml:"at,omitempty"`
	From       []float64   `yaml:"from,omitempty"`
	To         []float64   `yaml:"to,omitempty"`
	Points     [][]float64 `yaml:"points,omitempty"`
	Closed     bool        `yaml:"closed,omitempty"`
	Text       string      `yaml:"text,omitempty"`
	Value      float64     `yaml:"value,omitempty"`
	Children   []string    `yaml:"children,omitempty"`

	Stroke      string   `yaml:"stroke,omitempty"`
	StrokeWidth *float64 `yaml:"stroke_width,omitempty"`
	Fill        string   `yaml:"fill,omitempty"`
	FillOpacity *float64 `yaml:"fill_opacity,omitempty"`

	// Hidden nodes are built but not added to the scene.
	Hidden bool `yaml:"hidden,omitempty"`
}

// StepSpec is one script step. Add, Remove and Save apply instantly in
// that order; then Play runs its animations together, or Wait idles.
type StepSpec struct {
	Add    []string   `yaml:"add,omitempty"`
	Remove []string   `yaml:"remove,omitempty"`
	Save   []string   `yaml:"save,omitempty"`
	Play   []PlaySpec `yaml:"play,omitempty"`
	Wait   float64    `yaml:"wait,omitempty"`
}

// PlaySpec describes one animation. Combinators (animation_group,
// lagged_start, succession) take child specs in Anims; lagged_start_map
// applies Each to every child of Node.
type PlaySpec struct {
	Anim     string   `yaml:"anim"`
	Node     string   `yaml:"node,omitempty"`
	Target   string   `yaml:"target,omitempty"`
	RunTime  float64  `yaml:"run_time,omitempty"`
	Rate     string   `yaml:"rate,omitempty"`
	LagRatio *float64 `yaml:"lag_ratio,omitempty"`
	PathArc  *float64 `yaml:"path_arc,omitempty"`
	Remover  *bool    `yaml:"remover,omitempty"`

	Options map[string]any `yaml:"options,omitempty"`
	Anims   []PlaySpec     `yaml:"anims,omitempty"`
	Each    *PlaySpec      `yaml:"each,omitempty"`
}

// animOptions holds every per-animation option a script can set. Options
// are decoded from PlaySpec.Options; unknown keys are errors.
type animOptions struct {
	Shift       []float64   `mapstructure:"shift"`
	Scale       *float64    `mapstructure:"scale"`
	Point       []float64   `mapstructure:"point"`
	Edge        []float64   `mapstructure:"edge"`
	Color       string      `mapstructure:"color"`
	Angle       float64     `mapstructure:"angle"`
	Axis        []float64   `mapstructure:"axis"`
	About       []float64   `mapstructure:"about"`
	Width       float64     `mapstructure:"width"`
	StrokeWidth float64     `mapstructure:"stroke_width"`
	Stretch     bool        `mapstructure:"stretch"`
	Factor      float64     `mapstructure:"factor"`
	Matrix      [][]float64 `mapstructure:"matrix"`
	Value       float64     `mapstructure:"value"`
	Source      float64     `mapstructure:"source"`
	TimePerWord float64     `mapstructure:"time_per_word"`
	VirtualTime float64     `mapstructure:"virtual_time"`
	SmallRadius float64     `mapstructure:"small_radius"`
	BigRadius   float64     `mapstructure:"big_radius"`
	Circles     int         `mapstructure:"circles"`
}

// ParseScript decodes a YAML script and checks its references.
func ParseScript(data []byte) (*Script, error) {
	var sc Script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("motion: parse script: %w: %w", ErrBadScript, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks node declarations and name references. Animation
// arguments are checked when the step runs.
func (sc *Script) Validate() error {
	if len(sc.Steps) == 0 {
		return scriptErr("no steps")
	}
	if sc.FPS < 0 {
		return scriptErr("fps %d", sc.FPS)
	}
	known := make(map[string]bool, len(sc.Nodes))
	for i, ns := range sc.Nodes {
		if ns.Name == "" {
			return scriptErr("node %d has no name", i)
		}
		if known[ns.Name] {
			return scriptErr("node %q declared twice", ns.Name)
		}
		for _, c := range ns.Children {
			if !known[c] {
				return scriptErr("node %q: child %q is not declared before it", ns.Name, c)
			}
		}
		known[ns.Name] = true
	}
	ref := func(step int, name string) error {
		if name != "" && !known[name] {
			return scriptErr("step %d: unknown node %q", step, name)
		}
		return nil
	}
	var checkPlay func(step int, p PlaySpec) error
	checkPlay = func(step int, p PlaySpec) error {
		if _, ok := scriptAnims[p.Anim]; !ok && !isCombinator(p.Anim) {
			return scriptErr("step %d: unknown animation %q", step, p.Anim)
		}
		if p.Rate != "" {
			if _, ok := LookupRateFunc(p.Rate); !ok {
				return scriptErr("step %d: unknown rate function %q", step, p.Rate)
			}
		}
		if err := ref(step, p.Node); err != nil {
			return err
		}
		if err := ref(step, p.Target); err != nil {
			return err
		}
		for _, c := range p.Anims {
			if err := checkPlay(step, c); err != nil {
				return err
			}
		}
		if p.Each != nil {
			return checkPlay(step, *p.Each)
		}
		return nil
	}
	for i, st := range sc.Steps {
		if st.Wait < 0 {
			return scriptErr("step %d: negative wait", i)
		}
		if len(st.Play) > 0 && st.Wait > 0 {
			return scriptErr("step %d: play and wait in one step", i)
		}
		for _, names := range [][]string{st.Add, st.Remove, st.Save} {
			for _, n := range names {
				if err := ref(i, n); err != nil {
					return err
				}
			}
		}
		for _, p := range st.Play {
			if err := checkPlay(i, p); err != nil {
				return err
			}
		}
	}
	return nil
}

func scriptErr(format string, args ...any) error {
	return fmt.Errorf("motion: script: %s: %w", fmt.Sprintf(format, args...), ErrBadScript)
}

// ScriptRunner plays a Script on its own Scene, one frame per Step.
type ScriptRunner struct {
	script *Script
	scene  *Scene
	nodes  map[string]*Node

	cursor    int
	playing   bool
	waitCount int
	done      bool
}

// NewScriptRunner builds the script's nodes and a scene to play them on.
// A non-zero cfg.FPS overrides the script's frame rate.
func NewScriptRunner(sc *Script, cfg SceneConfig) (*ScriptRunner, error) {
	if cfg.FPS <= 0 {
		cfg.FPS = sc.FPS
	}
	r := &ScriptRunner{
		script: sc,
		scene:  NewScene(cfg),
		nodes:  make(map[string]*Node, len(sc.Nodes)),
	}
	for _, ns := range sc.Nodes {
		n, err := r.buildNode(ns)
		if err != nil {
			return nil, err
		}
		r.nodes[ns.Name] = n
	}
	// Children were attached in declaration order; only top-level nodes
	// are added to the scene.
	for _, ns := range sc.Nodes {
		if n := r.nodes[ns.Name]; n.Parent == nil && !ns.Hidden {
			r.scene.Add(n)
		}
	}
	return r, nil
}

// LoadScript parses data and returns a runner for it.
func LoadScript(data []byte, cfg SceneConfig) (*ScriptRunner, error) {
	sc, err := ParseScript(data)
	if err != nil {
		return nil, err
	}
	return NewScriptRunner(sc, cfg)
}

// Scene returns the scene the script plays on.
func (r *ScriptRunner) Scene() *Scene { return r.scene }

// Node returns the declared node with the given name, or nil.
func (r *ScriptRunner) Node(name string) *Node { return r.nodes[name] }

// Done reports whether every step has run.
func (r *ScriptRunner) Done() bool { return r.done }

// Run steps until the script is done.
func (r *ScriptRunner) Run() error {
	for !r.done {
		if err := r.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step produces exactly one frame, starting steps as needed. Steps without
// a play or wait run instantly and do not produce a frame on their own.
func (r *ScriptRunner) Step() error {
	for !r.done {
		switch {
		case r.playing:
			more, err := r.scene.Advance()
			if err != nil {
				r.scene.End()
				return err
			}
			if !more {
				r.scene.End()
				r.playing = false
				r.cursor++
			}
			return nil
		case r.waitCount > 0:
			r.waitCount--
			if r.waitCount == 0 {
				r.cursor++
			}
			return r.scene.Wait(1 / float64(r.scene.FPS()))
		case r.cursor >= len(r.script.Steps):
			r.done = true
			return nil
		}
		if err := r.startStep(r.script.Steps[r.cursor]); err != nil {
			r.done = true
			return fmt.Errorf("motion: script step %d: %w", r.cursor, err)
		}
	}
	return nil
}

// startStep applies a step's instant actions and arms its play or wait.
func (r *ScriptRunner) startStep(st StepSpec) error {
	for _, name := range st.Add {
		r.scene.Add(r.nodes[name])
	}
	for _, name := range st.Remove {
		r.scene.Remove(r.nodes[name])
	}
	for _, name := range st.Save {
		r.nodes[name].SaveState()
	}
	switch {
	case len(st.Play) > 0:
		anims := make([]Animation, 0, len(st.Play))
		for _, p := range st.Play {
			a, err := r.buildAnim(p, nil)
			if err != nil {
				return err
			}
			anims = append(anims, a)
		}
		if err := r.scene.Begin(anims...); err != nil {
			return err
		}
		r.playing = true
	case st.Wait > 0:
		r.waitCount = max(1, int(math.Round(st.Wait*float64(r.scene.FPS()))))
	default:
		r.cursor++
	}
	return nil
}

func (r *ScriptRunner) buildNode(ns NodeSpec) (*Node, error) {
	size := ns.Size
	var n *Node
	switch ns.Shape {
	case "group", "":
		n = NewGroup(ns.Name)
	case "square":
		n = NewSquare(ns.Name, orDefault(size, 2))
	case "rectangle":
		n = NewRectangle(ns.Name, orDefault(ns.Width, 4), orDefault(ns.Height, 2))
	case "circle":
		n = NewCircle(ns.Name, orDefault(size, 1))
	case "arc":
		n = NewArc(ns.Name, orDefault(size, 1), ns.StartAngle*Degree, orDefault(ns.Angle, 90)*Degree)
	case "dot":
		n = NewDot(ns.Name, Origin)
		if size > 0 {
			n.Scale(size / DefaultDotRadius)
		}
	case "line", "arrow":
		from, err := vecArg(ns.From, Left)
		if err != nil {
			return nil, scriptErr("node %q: from: %v", ns.Name, err)
		}
		to, err := vecArg(ns.To, Right)
		if err != nil {
			return nil, scriptErr("node %q: to: %v", ns.Name, err)
		}
		if ns.Shape == "line" {
			n = NewLine(ns.Name, from, to)
		} else {
			n = NewArrow(ns.Name, from, to)
		}
	case "polyline", "points":
		pts := make([]Vec3, len(ns.Points))
		for i, p := range ns.Points {
			v, err := vecArg(p, Origin)
			if err != nil {
				return nil, scriptErr("node %q: point %d: %v", ns.Name, i, err)
			}
			pts[i] = v
		}
		if ns.Shape == "points" {
			n = NewPointCloud(ns.Name, pts)
		} else {
			n = NewPolyline(ns.Name, pts, ns.Closed)
		}
	case "text":
		n = NewText(ns.Name, ns.Text, size)
	case "value":
		n = NewValue(ns.Name, ns.Value)
	default:
		return nil, scriptErr("node %q: unknown shape %q", ns.Name, ns.Shape)
	}
	for _, c := range ns.Children {
		n.AddChild(r.nodes[c])
	}
	if err := applyStyle(n, ns); err != nil {
		return nil, err
	}
	if len(ns.At) > 0 {
		at, err := vecArg(ns.At, Origin)
		if err != nil {
			return nil, scriptErr("node %q: at: %v", ns.Name, err)
		}
		n.MoveTo(at)
	}
	return n, nil
}

func applyStyle(n *Node, ns NodeSpec) error {
	if ns.Stroke != "" {
		c, err := ParseColor(ns.Stroke)
		if err != nil {
			return scriptErr("node %q: stroke: %v", ns.Name, err)
		}
		n.SetStroke(c, n.StrokeWidth)
	}
	if ns.StrokeWidth != nil {
		n.SetStrokeWidth(*ns.StrokeWidth)
	}
	if ns.Fill != "" {
		c, err := ParseColor(ns.Fill)
		if err != nil {
			return scriptErr("node %q: fill: %v", ns.Name, err)
		}
		n.SetFill(c.WithAlpha(1))
	}
	if ns.FillOpacity != nil {
		for _, m := range n.Family() {
			m.Fill.A = clamp(*ns.FillOpacity, 0, 1)
		}
	}
	return nil
}

// namedColors are the color names scripts may use instead of hex codes.
var namedColors = map[string]Color{
	"white":  ColorWhite,
	"black":  ColorBlack,
	"red":    ColorRed,
	"green":  ColorGreen,
	"blue":   ColorBlue,
	"yellow": ColorYellow,
}

// ParseColor reads a color name or a "#rgb" / "#rrggbb" hex code.
func ParseColor(s string) (Color, error) {
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, err
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
}

func orDefault(v, d float64) float64 {
	if v == 0 {
		return d
	}
	return v
}

// vecArg reads a 2- or 3-component vector; empty means def.
func vecArg(v []float64, def Vec3) (Vec3, error) {
	switch len(v) {
	case 0:
		return def, nil
	case 2:
		return Vec3{v[0], v[1], 0}, nil
	case 3:
		return Vec3{v[0], v[1], v[2]}, nil
	default:
		return Origin, fmt.Errorf("want 2 or 3 components, got %d", len(v))
	}
}

func isCombinator(name string) bool {
	switch name {
	case "animation_group", "lagged_start", "lagged_start_map", "succession":
		return true
	}
	return false
}

// buildAnim constructs the animation for p against the current node
// states. A non-nil node replaces the one p names.
func (r *ScriptRunner) buildAnim(p PlaySpec, node *Node) (Animation, error) {
	if node == nil {
		node = r.nodes[p.Node]
	}
	cfg := Config{Name: p.Anim, RunTime: p.RunTime, LagRatio: p.LagRatio, Remover: p.Remover}
	if p.Rate != "" {
		fn, ok := LookupRateFunc(p.Rate)
		if !ok {
			return nil, scriptErr("unknown rate function %q", p.Rate)
		}
		cfg.RateFunc = fn
	}
	if p.PathArc != nil {
		cfg.PathArc = Float(*p.PathArc * Degree)
	}
	if isCombinator(p.Anim) {
		return r.buildCombinator(p, node, cfg)
	}
	var opts animOptions
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &opts,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(p.Options); err != nil {
		return nil, scriptErr("%s options: %v", p.Anim, err)
	}
	build := scriptAnims[p.Anim]
	if build == nil {
		return nil, scriptErr("unknown animation %q", p.Anim)
	}
	return build(scriptArgs{node: node, target: r.nodes[p.Target], opts: opts, cfg: cfg})
}

func (r *ScriptRunner) buildCombinator(p PlaySpec, node *Node, cfg Config) (Animation, error) {
	if p.Anim == "lagged_start_map" {
		if p.Each == nil {
			return nil, scriptErr("lagged_start_map without each")
		}
		each := *p.Each
		return LaggedStartMap(func(child *Node) (Animation, error) {
			return r.buildAnim(each, child)
		}, node, cfg)
	}
	anims := make([]Animation, 0, len(p.Anims))
	for _, c := range p.Anims {
		a, err := r.buildAnim(c, nil)
		if err != nil {
			return nil, err
		}
		anims = append(anims, a)
	}
	switch p.Anim {
	case "lagged_start":
		return LaggedStart(cfg, anims...)
	case "succession":
		return Succession(cfg, anims...)
	default:
		return AnimationGroup(cfg, anims...)
	}
}

// scriptArgs carries the resolved inputs of one script animation.
type scriptArgs struct {
	node, target *Node
	opts         animOptions
	cfg          Config
}

func (a scriptArgs) vec(v []float64, def Vec3) (Vec3, error) {
	out, err := vecArg(v, def)
	if err != nil {
		return Origin, scriptErr("%s: %v", a.cfg.Name, err)
	}
	return out, nil
}

func (a scriptArgs) color() (*Color, error) {
	if a.opts.Color == "" {
		return nil, nil
	}
	c, err := ParseColor(a.opts.Color)
	if err != nil {
		return nil, scriptErr("%s: color: %v", a.cfg.Name, err)
	}
	return &c, nil
}

// anim adapts a constructor returning *Anim to the script registry. The
// typed nil is not allowed to leak into the Animation interface.
func anim(a *Anim, err error) (Animation, error) {
	if err != nil {
		return nil, err
	}
	return a, nil
}

// scriptAnims maps script animation names to constructors.
var scriptAnims = map[string]func(scriptArgs) (Animation, error){
	"show_creation": func(a scriptArgs) (Animation, error) {
		return anim(ShowCreation(a.node, a.cfg))
	},
	"uncreate": func(a scriptArgs) (Animation, error) {
		return anim(Uncreate(a.node, a.cfg))
	},
	"show_passing_flash": func(a scriptArgs) (Animation, error) {
		return anim(ShowPassingFlash(a.node, a.opts.Width, a.cfg))
	},
	"draw_border_then_fill": func(a scriptArgs) (Animation, error) {
		c, err := a.color()
		if err != nil {
			return nil, err
		}
		return anim(DrawBorderThenFill(a.node, BorderOptions{StrokeWidth: a.opts.StrokeWidth, StrokeColor: c}, a.cfg))
	},
	"write": func(a scriptArgs) (Animation, error) {
		c, err := a.color()
		if err != nil {
			return nil, err
		}
		return anim(Write(a.node, BorderOptions{StrokeWidth: a.opts.StrokeWidth, StrokeColor: c}, a.cfg))
	},
	"show_increasing_subsets": func(a scriptArgs) (Animation, error) {
		return anim(ShowIncreasingSubsets(a.node, nil, a.cfg))
	},
	"show_submobjects_one_by_one": func(a scriptArgs) (Animation, error) {
		return anim(ShowSubmobjectsOneByOne(a.node, nil, a.cfg))
	},
	"add_text_word_by_word": func(a scriptArgs) (Animation, error) {
		return anim(AddTextWordByWord(a.node, a.opts.TimePerWord, a.cfg))
	},
	"fade_in": func(a scriptArgs) (Animation, error) {
		shift, err := a.vec(a.opts.Shift, Origin)
		if err != nil {
			return nil, err
		}
		return anim(FadeIn(a.node, FadeOptions{Shift: shift, Scale: a.opts.Scale}, a.cfg))
	},
	"fade_out": func(a scriptArgs) (Animation, error) {
		shift, err := a.vec(a.opts.Shift, Origin)
		if err != nil {
			return nil, err
		}
		return anim(FadeOut(a.node, FadeOptions{Shift: shift, Scale: a.opts.Scale}, a.cfg))
	},
	"fade_in_from_point": func(a scriptArgs) (Animation, error) {
		p, err := a.vec(a.opts.Point, Origin)
		if err != nil {
			return nil, err
		}
		return anim(FadeInFromPoint(a.node, p, a.cfg))
	},
	"fade_out_to_point": func(a scriptArgs) (Animation, error) {
		p, err := a.vec(a.opts.Point, Origin)
		if err != nil {
			return nil, err
		}
		return anim(FadeOutToPoint(a.node, p, a.cfg))
	},
	"fade_transform": func(a scriptArgs) (Animation, error) {
		return anim(FadeTransform(a.node, a.target, a.opts.Stretch, a.cfg))
	},
	"vfade_in": func(a scriptArgs) (Animation, error) {
		return anim(VFadeIn(a.node, a.cfg))
	},
	"vfade_out": func(a scriptArgs) (Animation, error) {
		return anim(VFadeOut(a.node, a.cfg))
	},
	"vfade_in_then_out": func(a scriptArgs) (Animation, error) {
		return anim(VFadeInThenOut(a.node, a.cfg))
	},
	"grow_from_center": func(a scriptArgs) (Animation, error) {
		return growScript(a, GrowFromCenter)
	},
	"grow_arrow": func(a scriptArgs) (Animation, error) {
		return growScript(a, GrowArrow)
	},
	"spin_in_from_nothing": func(a scriptArgs) (Animation, error) {
		return growScript(a, SpinInFromNothing)
	},
	"grow_from_point": func(a scriptArgs) (Animation, error) {
		p, err := a.vec(a.opts.Point, Origin)
		if err != nil {
			return nil, err
		}
		return growScript(a, func(n *Node, c *Color, cfg Config) (*Anim, error) {
			return GrowFromPoint(n, p, c, cfg)
		})
	},
	"grow_from_edge": func(a scriptArgs) (Animation, error) {
		e, err := a.vec(a.opts.Edge, Down)
		if err != nil {
			return nil, err
		}
		return growScript(a, func(n *Node, c *Color, cfg Config) (*Anim, error) {
			return GrowFromEdge(n, e, c, cfg)
		})
	},
	"transform": func(a scriptArgs) (Animation, error) {
		return anim(Transform(a.node, a.target, a.cfg))
	},
	"replacement_transform": func(a scriptArgs) (Animation, error) {
		return anim(ReplacementTransform(a.node, a.target, a.cfg))
	},
	"transform_from_copy": func(a scriptArgs) (Animation, error) {
		return anim(TransformFromCopy(a.node, a.target, a.cfg))
	},
	"restore": func(a scriptArgs) (Animation, error) {
		return anim(Restore(a.node, a.cfg))
	},
	"apply_matrix": func(a scriptArgs) (Animation, error) {
		return anim(ApplyMatrix(a.node, a.opts.Matrix, a.cfg))
	},
	"scale_in_place": func(a scriptArgs) (Animation, error) {
		return anim(ScaleInPlace(a.node, a.opts.Factor, a.cfg))
	},
	"shrink_to_center": func(a scriptArgs) (Animation, error) {
		return anim(ShrinkToCenter(a.node, a.cfg))
	},
	"fade_to_color": func(a scriptArgs) (Animation, error) {
		c, err := a.color()
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, scriptErr("fade_to_color: no color")
		}
		return anim(FadeToColor(a.node, *c, a.cfg))
	},
	"shift": func(a scriptArgs) (Animation, error) {
		shift, err := a.vec(a.opts.Shift, Origin)
		if err != nil {
			return nil, err
		}
		return anim(ApplyMethod(a.node, func(t *Node) { t.Shift(shift) }, a.cfg))
	},
	"move_to": func(a scriptArgs) (Animation, error) {
		p, err := a.vec(a.opts.Point, Origin)
		if err != nil {
			return nil, err
		}
		return anim(ApplyMethod(a.node, func(t *Node) { t.MoveTo(p) }, a.cfg))
	},
	"rotate": func(a scriptArgs) (Animation, error) {
		return rotateScript(a, Rotate)
	},
	"rotating": func(a scriptArgs) (Animation, error) {
		return rotateScript(a, Rotating)
	},
	"cyclic_replace": func(a scriptArgs) (Animation, error) {
		return anim(CyclicReplace(a.node, a.cfg))
	},
	"swap": func(a scriptArgs) (Animation, error) {
		return anim(Swap(a.node, a.cfg))
	},
	"move_along_path": func(a scriptArgs) (Animation, error) {
		return anim(MoveAlongPath(a.node, a.target, a.cfg))
	},
	"phase_flow_rotation": func(a scriptArgs) (Animation, error) {
		about, err := a.vec(a.opts.About, Origin)
		if err != nil {
			return nil, err
		}
		field := func(p Vec3) Vec3 {
			d := p.Sub(about)
			return Vec3{-d.Y, d.X, 0}
		}
		return anim(PhaseFlow(a.node, field, a.opts.VirtualTime, a.cfg))
	},
	"change_value_to": func(a scriptArgs) (Animation, error) {
		return anim(ChangeValueTo(a.node, a.opts.Value, a.cfg))
	},
	"count_in_from": func(a scriptArgs) (Animation, error) {
		return anim(CountInFrom(a.node, a.opts.Source, a.cfg))
	},
	"broadcast": func(a scriptArgs) (Animation, error) {
		p, err := a.vec(a.opts.Point, Origin)
		if err != nil {
			return nil, err
		}
		c, err := a.color()
		if err != nil {
			return nil, err
		}
		g, err := Broadcast(p, BroadcastConfig{
			Config:      a.cfg,
			SmallRadius: a.opts.SmallRadius,
			BigRadius:   a.opts.BigRadius,
			NCircles:    a.opts.Circles,
			Color:       c,
		})
		if err != nil {
			return nil, err
		}
		return g, nil
	},
}

func growScript(a scriptArgs, fn func(*Node, *Color, Config) (*Anim, error)) (Animation, error) {
	c, err := a.color()
	if err != nil {
		return nil, err
	}
	return anim(fn(a.node, c, a.cfg))
}

func rotateScript(a scriptArgs, fn func(*Node, RotateOptions, Config) (*Anim, error)) (Animation, error) {
	axis, err := a.vec(a.opts.Axis, Out)
	if err != nil {
		return nil, err
	}
	opts := RotateOptions{Angle: a.opts.Angle * Degree, Axis: axis}
	if len(a.opts.About) > 0 {
		about, err := a.vec(a.opts.About, Origin)
		if err != nil {
			return nil, err
		}
		opts.About = &about
	}
	return anim(fn(a.node, opts, a.cfg))
}

// ScriptAnimations returns the animation names a script may use, combinators
// included.
func ScriptAnimations() []string {
	names := make([]string, 0, len(scriptAnims)+4)
	for name := range scriptAnims {
		names = append(names, name)
	}
	names = append(names, "animation_group", "lagged_start", "lagged_start_map", "succession")
	slices.Sort(names)
	return names
}
