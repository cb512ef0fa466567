package shimmer

import "math"

// WaveKind selects the oscillator shape a Wave produces.
type WaveKind uint8

const (
	WaveSine        WaveKind = iota // sin(theta)
	WaveTriangle                    // linear rise/fall, -1 at phase 0, peak at half period
	WaveSquare                      // +1 for the first half period, -1 for the second
	WaveSawtooth                    // -1 to +1 ramp per period
	WaveConstant                    // bias only, ignores phase
	WaveLinear                      // ramp in local time (not phase)
	WaveQuadratic                   // ramp in local time squared
	WaveExponential                 // exp(localT*4-2) ramp in local time
	WaveRawPhase                    // passes theta through untouched, no amp/bias
)

// Wave is a periodic (or ramping) scalar source. Periodic kinds advance along
// theta = 2*pi*Freq*integral + Phase, where integral is the frequency
// envelope's normalized time-integral; ramp kinds read local time directly.
//
// Driving theta from the envelope integral rather than the instantaneous
// frequency keeps phase continuous while frequency is being modulated. The
// amplitude envelope scales Amp sample by sample.
//
// A wave with Freq == 0 and Amp == 0 is inert and always evaluates to (0, 0);
// the zero value is therefore a safe disabled sentinel.
type Wave struct {
	Kind         WaveKind
	Freq         float64
	Amp          float64
	Bias         float64
	Phase        float64
	AmpEnvelope  Envelope
	FreqEnvelope Envelope
}

// Sine returns a sine wave with the given frequency, amplitude, and bias.
func Sine(freq, amp, bias float64) Wave {
	return Wave{Kind: WaveSine, Freq: freq, Amp: amp, Bias: bias}
}

// Triangle returns a triangle wave with the given frequency, amplitude, and bias.
func Triangle(freq, amp, bias float64) Wave {
	return Wave{Kind: WaveTriangle, Freq: freq, Amp: amp, Bias: bias}
}

// Square returns a square wave with the given frequency, amplitude, and bias.
func Square(freq, amp, bias float64) Wave {
	return Wave{Kind: WaveSquare, Freq: freq, Amp: amp, Bias: bias}
}

// Sawtooth returns a sawtooth wave with the given frequency, amplitude, and bias.
func Sawtooth(freq, amp, bias float64) Wave {
	return Wave{Kind: WaveSawtooth, Freq: freq, Amp: amp, Bias: bias}
}

// Constant returns a wave that always outputs value. Amp is set to 1 so the
// inert-wave early-out does not swallow a pure bias.
func Constant(value float64) Wave {
	return Wave{Kind: WaveConstant, Amp: 1, Bias: value}
}

// LinearRamp returns a wave ramping linearly over local time from bias to
// bias+amp. Freq is set to 1 only to keep the wave non-inert; ramps ignore phase.
func LinearRamp(amp, bias float64) Wave {
	return Wave{Kind: WaveLinear, Freq: 1, Amp: amp, Bias: bias}
}

// QuadraticRamp returns a wave ramping over local time squared.
func QuadraticRamp(amp, bias float64) Wave {
	return Wave{Kind: WaveQuadratic, Freq: 1, Amp: amp, Bias: bias}
}

// ExponentialRamp returns a wave following exp(localT*4-2), spanning roughly
// 0.135 to 7.39 times amp across the window.
func ExponentialRamp(amp, bias float64) Wave {
	return Wave{Kind: WaveExponential, Freq: 1, Amp: amp, Bias: bias}
}

// RawPhase returns a wave whose raw output is theta itself: 2*pi*freq per
// period plus the given phase offset, no amplitude or bias applied. Useful
// for continuous spatial rotation.
func RawPhase(freq, phase float64) Wave {
	return Wave{Kind: WaveRawPhase, Freq: freq, Amp: 1, Phase: phase}
}

// RotateOscillating returns a sine wave whose raw output swings between
// -degrees/2 and +degrees/2, converted to radians, for use with
// SpatialRotate at intensity 1.
func RotateOscillating(freq, degrees float64) Wave {
	return Sine(freq, degrees*math.Pi/360, 0)
}

// RotateContinuous returns a raw-phase wave completing the given number of
// full revolutions per time unit, for use with SpatialRotate at intensity 1.
func RotateContinuous(revolutions float64) Wave {
	return RawPhase(revolutions, 0)
}

// CenterPhase returns a copy phase-shifted so the oscillator starts at the
// center of its positive lobe: a quarter period for sine and square, a half
// period for triangle and sawtooth (whose peaks sit at half).
func (w Wave) CenterPhase() Wave {
	switch w.Kind {
	case WaveTriangle, WaveSawtooth:
		w.Phase += math.Pi
	default:
		w.Phase += math.Pi / 2
	}
	return w
}

// Eval samples the wave at localT in [0, 1], returning the output clamped to
// [0, 1] and the raw unclamped output. Inert waves and unknown kinds return
// (0, 0).
func (w Wave) Eval(localT float64) (clamped, raw float64) {
	if w.Freq == 0 && w.Amp == 0 {
		return 0, 0
	}

	ampVal, _ := w.AmpEnvelope.Eval(localT)
	modAmp := w.Amp * ampVal
	_, freqInt := w.FreqEnvelope.Eval(localT)
	theta := 2*math.Pi*w.Freq*freqInt + w.Phase

	switch w.Kind {
	case WaveSine:
		raw = math.Sin(theta)*modAmp + w.Bias
	case WaveTriangle:
		f := fract(theta / (2 * math.Pi))
		raw = (1-4*math.Abs(f-0.5))*modAmp + w.Bias
	case WaveSquare:
		if fract(theta/(2*math.Pi)) < 0.5 {
			raw = modAmp + w.Bias
		} else {
			raw = -modAmp + w.Bias
		}
	case WaveSawtooth:
		raw = (2*fract(theta/(2*math.Pi))-1)*modAmp + w.Bias
	case WaveConstant:
		raw = w.Bias
	case WaveLinear:
		raw = localT*modAmp + w.Bias
	case WaveQuadratic:
		raw = localT*localT*modAmp + w.Bias
	case WaveExponential:
		raw = math.Exp(localT*4-2)*modAmp + w.Bias
	case WaveRawPhase:
		raw = theta
	default:
		return 0, 0
	}
	return clamp01(raw), raw
}
