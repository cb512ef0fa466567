package shimmer

import (
	"fmt"
	"math"
	"testing"
)

func TestEnvelopeDisabledPassThrough(t *testing.T) {
	var env Envelope
	for _, localT := range []float64{0, 0.3, 1} {
		v, integral := env.Eval(localT)
		assertNear(t, "value", v, 1)
		assertNear(t, "integral", integral, localT)
	}
}

func TestEnvelopeZeroTotalPassThrough(t *testing.T) {
	env := NewEnvelope(0, 0, 0)
	v, integral := env.Eval(0.4)
	assertNear(t, "value", v, 1)
	assertNear(t, "integral", integral, 0.4)
}

func TestEnvelopeLinearSegments(t *testing.T) {
	// Attack 1, hold 1, release 2 → total 4, area 0.5+1+1 = 2.5.
	env := NewEnvelope(1, 1, 2)

	cases := []struct {
		localT        float64
		value, normed float64
	}{
		{0, 0, 0},
		{0.125, 0.5, 0.05},  // halfway up the attack: cum 0.125
		{0.25, 1, 0.2},      // attack end: cum 0.5
		{0.5, 1, 0.6},       // hold end: cum 1.5
		{0.75, 0.5, 0.9},    // halfway down the release: cum 2.25
		{1, 0, 1},
	}
	for _, c := range cases {
		v, integral := env.Eval(c.localT)
		assertNear(t, "value", v, c.value)
		assertNear(t, "integral", integral, c.normed)
	}
}

func TestEnvelopeHoldOnly(t *testing.T) {
	env := NewEnvelope(0, 1, 0)
	v, integral := env.Eval(0.3)
	assertNear(t, "value", v, 1)
	assertNear(t, "integral", integral, 0.3)
}

func TestEnvelopeEaseInValue(t *testing.T) {
	env := NewEnvelope(1, 0, 0).EaseIn(2)
	v, _ := env.Eval(0.5)
	// (exp(p*g)-1)/(exp(g)-1) at p=0.5, g=2
	want := (math.Exp(1) - 1) / (math.Exp(2) - 1)
	assertNear(t, "eased attack value", v, want)
}

func TestEnvelopeEaseOutValue(t *testing.T) {
	env := NewEnvelope(0, 0, 1).EaseOut(2)
	v, _ := env.Eval(0.5)
	// Decay is the negated strength: 1-(exp(p*d)-1)/(exp(d)-1) at p=0.5, d=-2
	want := 1 - (math.Exp(-1)-1)/(math.Exp(-2)-1)
	assertNear(t, "eased release value", v, want)
}

func TestEnvelopeIntegralEndpoints(t *testing.T) {
	envs := []Envelope{
		NewEnvelope(1, 1, 2),
		NewEnvelope(0.3, 0.2, 0.5).EaseIn(3),
		NewEnvelope(0.3, 0.2, 0.5).EaseOut(2),
		NewEnvelope(1, 0, 1).EaseIn(4).EaseOut(4),
	}
	for i, env := range envs {
		_, at0 := env.Eval(0)
		assertNear(t, fmt.Sprintf("env[%d] integral(0)", i), at0, 0)
		_, at1 := env.Eval(1)
		assertNear(t, fmt.Sprintf("env[%d] integral(1)", i), at1, 1)
	}
}

func TestEnvelopeIntegralMonotone(t *testing.T) {
	env := NewEnvelope(0.3, 0.2, 0.5).EaseIn(3).EaseOut(2)
	prev := 0.0
	for i := 0; i <= 100; i++ {
		localT := float64(i) / 100
		v, integral := env.Eval(localT)
		if v < 0 || v > 1 {
			t.Fatalf("value %v out of [0,1] at %v", v, localT)
		}
		if integral < 0 || integral > 1 {
			t.Fatalf("integral %v out of [0,1] at %v", integral, localT)
		}
		if integral < prev-epsilon {
			t.Fatalf("integral decreased at %v: %v -> %v", localT, prev, integral)
		}
		prev = integral
	}
}

func TestEnvelopeContinuityAtBoundaries(t *testing.T) {
	// The integral must not jump across segment boundaries: that continuity
	// is what keeps envelope-driven oscillator phase from popping.
	env := NewEnvelope(0.3, 0.2, 0.5).EaseIn(3).EaseOut(2)
	for _, boundary := range []float64{0.3, 0.5} {
		vLo, iLo := env.Eval(boundary - 1e-6)
		vHi, iHi := env.Eval(boundary + 1e-6)
		if math.Abs(vHi-vLo) > 1e-4 {
			t.Errorf("value jump at %v: %v -> %v", boundary, vLo, vHi)
		}
		if math.Abs(iHi-iLo) > 1e-4 {
			t.Errorf("integral jump at %v: %v -> %v", boundary, iLo, iHi)
		}
	}
}

func TestEnvelopeClampsLocalT(t *testing.T) {
	env := NewEnvelope(1, 1, 2)

	vLo, iLo := env.Eval(-0.5)
	v0, i0 := env.Eval(0)
	assertNear(t, "value below range", vLo, v0)
	assertNear(t, "integral below range", iLo, i0)

	vHi, iHi := env.Eval(1.5)
	v1, i1 := env.Eval(1)
	assertNear(t, "value above range", vHi, v1)
	assertNear(t, "integral above range", iHi, i1)
}
