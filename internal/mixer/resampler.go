package mixer

const (
	// CPUClockHz is the NTSC CPU clock rate.
	CPUClockHz = 1789773.0
	// OutputRateHz is the target PCM sample rate.
	OutputRateHz = 44100.0
)

// Resampler decimates a CPU-clock-rate signal down to OutputRateHz, applying
// the three-pole analog-chain filter cascade (90 Hz HPF, 440 Hz HPF, 14 kHz
// LPF) before decimating, so the output is band-limited rather than the
// product of a bare averaging decimator (see DESIGN.md for why the
// averaging-decimator fallback was not used).
type Resampler struct {
	hp1, hp2 *onePoleHighPass
	lp       *onePoleLowPass

	step        float64
	accumulator float64
}

// NewResampler builds a resampler from CPU clock to 44.1 kHz.
func NewResampler() *Resampler {
	return &Resampler{
		hp1:  newHighPass(90.0, CPUClockHz),
		hp2:  newHighPass(440.0, CPUClockHz),
		lp:   newLowPass(14000.0, CPUClockHz),
		step: OutputRateHz / CPUClockHz,
	}
}

// Advance feeds one CPU-clock-rate raw mixer sample (range ≈ 0..1) through
// the filter chain and the decimator. It
// reports the filtered, 16-bit-scaled output sample and whether this CPU
// cycle crossed a decimation boundary (i.e. whether `out` should be
// appended to the audio ring).
func (r *Resampler) Advance(rawSample float64) (out int16, emitted bool) {
	filtered := r.lp.process(r.hp2.process(r.hp1.process(rawSample)))

	r.accumulator += r.step
	if r.accumulator < 1.0 {
		return 0, false
	}
	r.accumulator -= 1.0

	// filtered is already DC-free (a high-pass cascade settles to 0 for any
	// sustained input), so just scale it to fill most of the 16-bit signed
	// range without clipping on transients.
	scaled := filtered * 56000.0
	if scaled > 32767 {
		scaled = 32767
	} else if scaled < -32768 {
		scaled = -32768
	}
	return int16(scaled), true
}

// Reset clears filter and accumulator state (does not change coefficients).
func (r *Resampler) Reset() {
	r.hp1 = newHighPass(90.0, CPUClockHz)
	r.hp2 = newHighPass(440.0, CPUClockHz)
	r.lp = newLowPass(14000.0, CPUClockHz)
	r.accumulator = 0
}
