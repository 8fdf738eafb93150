package motion

import (
	"math"
	"sort"

	"github.com/tanema/gween/ease"
)

// RateFunc reshapes linear progress t in [0,1] into eased progress. Rate
// functions are pure. Most satisfy f(0) = 0 and f(1) = 1; the ones that do
// not are registered as non-anchored (see RateFuncInfo).
type RateFunc func(t float64) float64

// Linear leaves progress unchanged.
func Linear(t float64) float64 { return t }

// Smooth eases in and out with zero first and second derivatives at both
// ends.
func Smooth(t float64) float64 {
	s := 1 - t
	return t * t * t * (10*s*s + 5*s*t + t*t)
}

// RushInto accelerates quickly from rest.
func RushInto(t float64) float64 { return 2 * Smooth(0.5*t) }

// RushFrom arrives quickly and settles.
func RushFrom(t float64) float64 { return 2*Smooth(0.5*(t+1)) - 1 }

// SlowInto eases in along a quarter circle.
func SlowInto(t float64) float64 { return math.Sqrt(1 - (1-t)*(1-t)) }

// DoubleSmooth runs Smooth twice, each over half the range.
func DoubleSmooth(t float64) float64 {
	if t < 0.5 {
		return 0.5 * Smooth(2*t)
	}
	return 0.5 * (1 + Smooth(2*t-1))
}

// ThereAndBack goes to 1 at the midpoint and back to 0.
func ThereAndBack(t float64) float64 {
	if t < 0.5 {
		return Smooth(2 * t)
	}
	return Smooth(2 * (1 - t))
}

// ThereAndBackWithPause is ThereAndBack holding 1 for the middle third.
func ThereAndBackWithPause(t float64) float64 {
	return ThereAndBackWithPauseRatio(1.0 / 3)(t)
}

// ThereAndBackWithPauseRatio returns a there-and-back curve that holds 1 for
// the given fraction of the range.
func ThereAndBackWithPauseRatio(pause float64) RateFunc {
	a := 2 / (1 - pause)
	return func(t float64) float64 {
		switch {
		case t < 0.5-pause/2:
			return Smooth(a * t)
		case t < 0.5+pause/2:
			return 1
		default:
			return Smooth(a - a*t)
		}
	}
}

// RunningStart pulls back before moving forward.
func RunningStart(t float64) float64 {
	return bernstein(t, 0, 0, -0.5, -0.5, 1, 1, 1)
}

// Overshoot passes 1 and settles back.
func Overshoot(t float64) float64 {
	return bernstein(t, 0, 0, 1.5, 1.5, 1, 1)
}

// NotQuiteThere scales fn so it stops at proportion of the way.
func NotQuiteThere(fn RateFunc, proportion float64) RateFunc {
	return func(t float64) float64 { return proportion * fn(t) }
}

// Wiggle oscillates around 0 twice, ending at 0.
func Wiggle(t float64) float64 {
	return ThereAndBack(t) * math.Sin(2*math.Pi*t)
}

// Squish compresses fn into [a, b], holding fn(0) before and fn(1) after.
// A zero-width window returns a constant a.
func Squish(fn RateFunc, a, b float64) RateFunc {
	return func(t float64) float64 {
		switch {
		case a == b:
			return a
		case t < a:
			return fn(0)
		case t > b:
			return fn(1)
		default:
			return fn((t - a) / (b - a))
		}
	}
}

var lingering = Squish(Linear, 0, 0.8)

// Lingering reaches 1 at 80% and holds.
func Lingering(t float64) float64 { return lingering(t) }

// ExponentialDecay approaches 1 with a half-life of 0.1.
func ExponentialDecay(t float64) float64 {
	return 1 - math.Exp(-t/0.1)
}

// Reverse returns t -> fn(1-t).
func Reverse(fn RateFunc) RateFunc {
	return func(t float64) float64 { return fn(1 - t) }
}

// FromEase adapts a gween easing function to a RateFunc.
func FromEase(fn ease.TweenFunc) RateFunc {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

// bernstein evaluates the 1D Bézier curve with the given control values.
func bernstein(t float64, ctrl ...float64) float64 {
	n := len(ctrl) - 1
	s := 1 - t
	var sum float64
	for k, c := range ctrl {
		sum += c * binomial(n, k) * math.Pow(t, float64(k)) * math.Pow(s, float64(n-k))
	}
	return sum
}

func binomial(n, k int) float64 {
	r := 1.0
	for i := 1; i <= k; i++ {
		r = r * float64(n-k+i) / float64(i)
	}
	return r
}

// RateFuncInfo describes a registered rate function. Anchored curves satisfy
// f(0) = 0 and f(1) = 1.
type RateFuncInfo struct {
	Name     string
	Func     RateFunc
	Anchored bool
}

var rateFuncs = map[string]RateFuncInfo{}

// RegisterRateFunc makes fn available by name to scripts and the CLI.
// Registering an existing name replaces it.
func RegisterRateFunc(name string, fn RateFunc, anchored bool) {
	rateFuncs[name] = RateFuncInfo{Name: name, Func: fn, Anchored: anchored}
}

// LookupRateFunc returns the rate function registered under name.
func LookupRateFunc(name string) (RateFunc, bool) {
	info, ok := rateFuncs[name]
	return info.Func, ok
}

// RateFuncs returns every registered rate function sorted by name.
func RateFuncs() []RateFuncInfo {
	out := make([]RateFuncInfo, 0, len(rateFuncs))
	for _, info := range rateFuncs {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func init() {
	RegisterRateFunc("linear", Linear, true)
	RegisterRateFunc("smooth", Smooth, true)
	RegisterRateFunc("rush_into", RushInto, true)
	RegisterRateFunc("rush_from", RushFrom, true)
	RegisterRateFunc("slow_into", SlowInto, true)
	RegisterRateFunc("double_smooth", DoubleSmooth, true)
	RegisterRateFunc("there_and_back", ThereAndBack, false)
	RegisterRateFunc("there_and_back_with_pause", ThereAndBackWithPause, false)
	RegisterRateFunc("running_start", RunningStart, true)
	RegisterRateFunc("overshoot", Overshoot, true)
	RegisterRateFunc("not_quite_there", NotQuiteThere(Smooth, 0.7), false)
	RegisterRateFunc("wiggle", Wiggle, false)
	RegisterRateFunc("lingering", Lingering, true)
	RegisterRateFunc("exponential_decay", ExponentialDecay, false)

	// Penner curves from gween. in_expo stops 0.001 short of 1.
	eases := []struct {
		name     string
		fn       ease.TweenFunc
		anchored bool
	}{
		{"in_quad", ease.InQuad, true},
		{"out_quad", ease.OutQuad, true},
		{"in_out_quad", ease.InOutQuad, true},
		{"in_cubic", ease.InCubic, true},
		{"out_cubic", ease.OutCubic, true},
		{"in_out_cubic", ease.InOutCubic, true},
		{"in_quart", ease.InQuart, true},
		{"out_quart", ease.OutQuart, true},
		{"in_out_quart", ease.InOutQuart, true},
		{"in_quint", ease.InQuint, true},
		{"out_quint", ease.OutQuint, true},
		{"in_out_quint", ease.InOutQuint, true},
		{"in_sine", ease.InSine, true},
		{"out_sine", ease.OutSine, true},
		{"in_out_sine", ease.InOutSine, true},
		{"in_expo", ease.InExpo, false},
		{"out_expo", ease.OutExpo, true},
		{"in_out_expo", ease.InOutExpo, true},
		{"in_circ", ease.InCirc, true},
		{"out_circ", ease.OutCirc, true},
		{"in_out_circ", ease.InOutCirc, true},
		{"in_back", ease.InBack, true},
		{"out_back", ease.OutBack, true},
		{"in_out_back", ease.InOutBack, true},
		{"in_bounce", ease.InBounce, true},
		{"out_bounce", ease.OutBounce, true},
		{"in_out_bounce", ease.InOutBounce, true},
		{"in_elastic", ease.InElastic, true},
		{"out_elastic", ease.OutElastic, true},
		{"in_out_elastic", ease.InOutElastic, true},
	}
	for _, e := range eases {
		RegisterRateFunc(e.name, FromEase(e.fn), e.anchored)
	}
}
