// Package mixer implements the NES APU's non-linear channel mix and the
// CPU-clock-to-output-rate resampler.
package mixer

// Mix combines the five channel outputs (0..15 for pulse/triangle/noise,
// 0..127 for dmc) into a single sample in the approximate 0..1 range using
// the canonical NES non-linear mixer formulas.
func Mix(pulse1, pulse2, triangle, noise, dmc uint8) float64 {
	pulseSum := float64(pulse1) + float64(pulse2)
	var pulseOut float64
	if pulseSum > 0 {
		pulseOut = 95.88 / (8128.0/pulseSum + 100.0)
	}

	tndSum := float64(triangle)/8227.0 + float64(noise)/12241.0 + float64(dmc)/22638.0
	var tndOut float64
	if tndSum > 0 {
		tndOut = 159.79 / (1.0/tndSum + 100.0)
	}

	return pulseOut + tndOut
}
