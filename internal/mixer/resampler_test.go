package mixer

import "testing"

// TestResamplerSampleRateStability checks that advancing the resampler by
// one NTSC video frame's worth of CPU cycles (29,780) emits a sample count
// between one below and two above the integer part of the expected
// frame-cycles * output-rate / CPU-clock count, rather than drifting.
func TestResamplerSampleRateStability(t *testing.T) {
	const cyclesPerFrame = 29780
	r := NewResampler()

	emitted := 0
	for i := 0; i < cyclesPerFrame; i++ {
		if _, ok := r.Advance(0.5); ok {
			emitted++
		}
	}

	want := cyclesPerFrame * OutputRateHz / CPUClockHz
	lo, hi := int(want)-1, int(want)+2
	if emitted < lo || emitted > hi {
		t.Fatalf("emitted %d samples for one frame, want within [%d,%d] of %.2f", emitted, lo, hi, want)
	}
}

// TestResamplerDCBlocksConstantInput checks that a constant raw input
// settles toward zero after the high-pass cascade, since the 90 Hz and
// 440 Hz stages block DC.
func TestResamplerDCBlocksConstantInput(t *testing.T) {
	r := NewResampler()

	var last int16
	for i := 0; i < 200000; i++ {
		if out, ok := r.Advance(0.8); ok {
			last = out
		}
	}

	if last > 2000 || last < -2000 {
		t.Fatalf("output after settling on constant input = %d, want near 0", last)
	}
}

// TestResamplerResetClearsAccumulator checks that Reset drops any partial
// decimation progress so the next Advance call starts from a clean state.
func TestResamplerResetClearsAccumulator(t *testing.T) {
	r := NewResampler()
	r.Advance(0.5)
	r.Reset()
	if r.accumulator != 0 {
		t.Fatalf("accumulator after Reset = %f, want 0", r.accumulator)
	}
}
