package motion

import (
	"errors"
	"testing"
)

func TestChangeValueTo(t *testing.T) {
	v := NewValue("v", 2)
	a := mustAnim(t)(ChangeValueTo(v, 10, Config{}))
	v.Value = 4 // captured at Begin, not construction
	mustBegin(t, a)
	if v.Value != 4 {
		t.Errorf("after Begin value = %v, want 4", v.Value)
	}
	a.Update(0.5)
	if v.Value != 7 {
		t.Errorf("value at 0.5 = %v, want 7 (no easing)", v.Value)
	}
	a.Finish()
	if v.Value != 10 {
		t.Errorf("final value = %v, want 10", v.Value)
	}
}

func TestCountInFrom(t *testing.T) {
	v := NewValue("v", 5)
	a := mustAnim(t)(CountInFrom(v, 0, Config{}))
	mustBegin(t, a)
	if v.Value != 0 {
		t.Errorf("after Begin value = %v, want 0", v.Value)
	}
	a.Update(0.5)
	if v.Value != 2.5 {
		t.Errorf("value at 0.5 = %v, want 2.5", v.Value)
	}
	a.Finish()
	if v.Value != 5 {
		t.Errorf("final value = %v, want 5", v.Value)
	}
}

func TestChangingValue(t *testing.T) {
	v := NewValue("v", 0)
	a := mustAnim(t)(ChangingValue(v, func(x float64) float64 { return x * x }, Config{}))
	mustBegin(t, a)
	a.Update(0.5)
	if v.Value != 0.25 {
		t.Errorf("value = %v, want 0.25", v.Value)
	}
}

func TestValueAnimErrors(t *testing.T) {
	if _, err := ChangingValue(NewSquare("sq", 1), func(x float64) float64 { return x }, Config{}); !errors.Is(err, ErrUnsupportedNode) {
		t.Errorf("non-value node error = %v, want ErrUnsupportedNode", err)
	}
	if _, err := ChangingValue(NewValue("v", 0), nil, Config{}); !errors.Is(err, ErrBadConfig) {
		t.Errorf("nil fn error = %v, want ErrBadConfig", err)
	}
	if _, err := ChangeValueTo(nil, 1, Config{}); !errors.Is(err, ErrNilNode) {
		t.Errorf("nil node error = %v, want ErrNilNode", err)
	}
	if _, err := CountInFrom(nil, 1, Config{}); !errors.Is(err, ErrNilNode) {
		t.Errorf("nil node error = %v, want ErrNilNode", err)
	}
}
