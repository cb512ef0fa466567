package shimmer

import (
	"math"
	"testing"
)

// --- Inert sentinel ---

func TestWaveZeroValueInert(t *testing.T) {
	var w Wave
	clamped, raw := w.Eval(0.5)
	assertNear(t, "clamped", clamped, 0)
	assertNear(t, "raw", raw, 0)
}

func TestWaveBiasOnlyStillInert(t *testing.T) {
	// Freq == 0 && Amp == 0 is the disabled sentinel even with a bias; use
	// Constant for a pure bias, it sets Amp to 1.
	w := Wave{Kind: WaveConstant, Bias: 0.7}
	_, raw := w.Eval(0.5)
	assertNear(t, "raw", raw, 0)
}

// --- Oscillator shapes ---

func TestSineQuarterPoints(t *testing.T) {
	w := Sine(1, 1, 0)

	clamped, raw := w.Eval(0.25) // theta = pi/2
	assertNear(t, "raw at 0.25", raw, 1)
	assertNear(t, "clamped at 0.25", clamped, 1)

	_, raw = w.Eval(0.5)
	assertNear(t, "raw at 0.5", raw, 0)

	clamped, raw = w.Eval(0.75) // theta = 3pi/2
	assertNear(t, "raw at 0.75", raw, -1)
	assertNear(t, "clamped at 0.75", clamped, 0)
}

func TestSineFreqIsCyclesPerWindow(t *testing.T) {
	w := Sine(2, 1, 0)
	_, raw := w.Eval(0.25) // theta = pi for the doubled frequency
	assertNear(t, "raw", raw, 0)
}

func TestSineBias(t *testing.T) {
	w := Sine(1, 0.25, 0.5)
	_, raw := w.Eval(0.25)
	assertNear(t, "raw", raw, 0.75)
}

func TestTriangleShape(t *testing.T) {
	w := Triangle(1, 1, 0)

	clamped, raw := w.Eval(0)
	assertNear(t, "raw at 0", raw, -1)
	assertNear(t, "clamped at 0", clamped, 0)

	_, raw = w.Eval(0.25)
	assertNear(t, "raw at 0.25", raw, 0)

	_, raw = w.Eval(0.5) // peak at half period
	assertNear(t, "raw at 0.5", raw, 1)

	_, raw = w.Eval(0.125)
	assertNear(t, "raw at 0.125", raw, -0.5)
}

func TestSquareShape(t *testing.T) {
	w := Square(1, 1, 0)

	_, raw := w.Eval(0.25)
	assertNear(t, "first half", raw, 1)

	_, raw = w.Eval(0.5) // second half starts exactly at the midpoint
	assertNear(t, "midpoint", raw, -1)

	clamped, raw := w.Eval(0.75)
	assertNear(t, "second half", raw, -1)
	assertNear(t, "second half clamped", clamped, 0)
}

func TestSawtoothShape(t *testing.T) {
	w := Sawtooth(1, 1, 0)

	_, raw := w.Eval(0)
	assertNear(t, "raw at 0", raw, -1)

	_, raw = w.Eval(0.5)
	assertNear(t, "raw at 0.5", raw, 0)

	_, raw = w.Eval(0.75)
	assertNear(t, "raw at 0.75", raw, 0.5)
}

// --- Ramps and constants ---

func TestConstant(t *testing.T) {
	w := Constant(0.3)
	for _, localT := range []float64{0, 0.5, 1} {
		clamped, raw := w.Eval(localT)
		assertNear(t, "raw", raw, 0.3)
		assertNear(t, "clamped", clamped, 0.3)
	}

	clamped, raw := Constant(1.5).Eval(0)
	assertNear(t, "over-range raw", raw, 1.5)
	assertNear(t, "over-range clamped", clamped, 1)
}

func TestLinearRamp(t *testing.T) {
	_, raw := LinearRamp(1, 0).Eval(0.5)
	assertNear(t, "rising", raw, 0.5)

	_, raw = LinearRamp(-1, 1).Eval(0.25)
	assertNear(t, "falling", raw, 0.75)

	clamped, _ := LinearRamp(-2, 1).Eval(1)
	assertNear(t, "clamped below", clamped, 0)
}

func TestQuadraticRamp(t *testing.T) {
	_, raw := QuadraticRamp(1, 0).Eval(0.5)
	assertNear(t, "raw", raw, 0.25)
}

func TestExponentialRamp(t *testing.T) {
	w := ExponentialRamp(1, 0)

	_, raw := w.Eval(0)
	assertNear(t, "raw at 0", raw, math.Exp(-2))

	_, raw = w.Eval(0.5)
	assertNear(t, "raw at 0.5", raw, 1)

	clamped, raw := w.Eval(1)
	assertNear(t, "raw at 1", raw, math.Exp(2))
	assertNear(t, "clamped at 1", clamped, 1)
}

func TestRawPhase(t *testing.T) {
	w := RawPhase(1, 0)

	clamped, raw := w.Eval(0.5)
	assertNear(t, "raw", raw, math.Pi)
	assertNear(t, "clamped", clamped, 1)

	_, raw = RawPhase(0.25, 0).Eval(1)
	assertNear(t, "quarter rev", raw, math.Pi/2)

	_, raw = RawPhase(1, 1).Eval(0)
	assertNear(t, "phase offset", raw, 1)
}

// --- Rotation helpers ---

func TestRotateOscillating(t *testing.T) {
	w := RotateOscillating(1, 90)
	_, raw := w.Eval(0.25)
	assertNear(t, "swing peak", raw, math.Pi/4)
}

func TestRotateContinuous(t *testing.T) {
	w := RotateContinuous(2)
	_, raw := w.Eval(0.5)
	assertNear(t, "one revolution", raw, 2*math.Pi)
}

// --- CenterPhase ---

func TestCenterPhaseSine(t *testing.T) {
	w := Sine(1, 1, 0).CenterPhase()
	_, raw := w.Eval(0)
	assertNear(t, "starts at peak", raw, 1)
}

func TestCenterPhaseTriangle(t *testing.T) {
	w := Triangle(1, 1, 0).CenterPhase()
	_, raw := w.Eval(0)
	assertNear(t, "starts at peak", raw, 1)
}

// --- Envelopes ---

func TestAmpEnvelopeScalesOutput(t *testing.T) {
	w := Sine(1, 1, 0)
	w.AmpEnvelope = NewEnvelope(1, 0, 1)
	// At 0.25 the envelope attack is halfway up (value 0.5) and the
	// unmodulated sine is at its peak.
	_, raw := w.Eval(0.25)
	assertNear(t, "scaled peak", raw, 0.5)
}

func TestFreqEnvelopeDrivesTheta(t *testing.T) {
	// An all-attack frequency envelope integrates to localT^2, so theta
	// reaches pi/2 at localT 0.5 instead of 0.25.
	w := Sine(1, 1, 0)
	w.FreqEnvelope = NewEnvelope(1, 0, 0)

	_, raw := w.Eval(0.5)
	assertNear(t, "raw at 0.5", raw, 1)

	_, raw = w.Eval(1)
	assertNear(t, "raw at 1", raw, 0)
}

func TestFreqEnvelopePhaseMonotone(t *testing.T) {
	// Raw phase output must never run backwards while frequency is being
	// modulated, however the envelope is shaped.
	w := RawPhase(1, 0)
	w.FreqEnvelope = NewEnvelope(0.5, 0, 0.5).EaseIn(2).EaseOut(3)

	prev := math.Inf(-1)
	for i := 0; i <= 100; i++ {
		_, raw := w.Eval(float64(i) / 100)
		if raw < prev-epsilon {
			t.Fatalf("theta decreased at %v: %v -> %v", float64(i)/100, prev, raw)
		}
		prev = raw
	}
}

// --- Clamping across kinds ---

func TestAllKindsClampedRange(t *testing.T) {
	waves := []Wave{
		Sine(3, 2, 0),
		Triangle(3, 2, -1),
		Square(2, 5, 0),
		Sawtooth(4, 3, 1),
		Constant(2),
		LinearRamp(4, -2),
		QuadraticRamp(-3, 2),
		ExponentialRamp(1, -1),
		RawPhase(3, -10),
	}
	for i, w := range waves {
		for j := 0; j <= 20; j++ {
			clamped, _ := w.Eval(float64(j) / 20)
			if clamped < 0 || clamped > 1 {
				t.Fatalf("wave %d clamped output %v out of [0,1]", i, clamped)
			}
		}
	}
}
