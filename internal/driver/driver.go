// Package driver implements the frame-synchronous emulation driver: it
// advances the APU core by a CPU-cycle delta, decodes CPU bus
// reads/writes onto the APU's register file, mixes and resamples the raw
// channel outputs into 16-bit PCM, and exposes the aggregated IRQ line.
package driver

import (
	"nesapu/internal/apu"
	"nesapu/internal/audioring"
	"nesapu/internal/mixer"
)

// CyclesPerNTSCFrame is the number of CPU cycles in one NTSC video frame.
const CyclesPerNTSCFrame = 29780

// nonAPUAddresses carves the handful of $40xx addresses out of the APU's
// range that are unused ($4009, $400D) or belong to other subsystems (OAM
// DMA, joypad strobe/read) and are never routed to the APU.
var nonAPUAddresses = map[uint16]bool{
	0x4009: true,
	0x400D: true,
	0x4014: true,
	0x4016: true,
}

func inAPURange(addr uint16) bool {
	return addr >= 0x4000 && addr <= 0x4017 && !nonAPUAddresses[addr]
}

// Driver owns the output ring buffer and the IRQ line observable by the
// CPU; the APU core owns all channel sub-states.
type Driver struct {
	apu        *apu.APU
	resampler  *mixer.Resampler
	ring       *audioring.Ring
	cpuCycles  uint64 // total CPU cycles executed so far, as last seen by AdvanceTo
	frameCount uint64
}

// New builds a driver with a ring sized to at least audioring.MinCapacity
// samples.
func New(ringCapacity int) *Driver {
	return &Driver{
		apu:       apu.New(),
		resampler: mixer.NewResampler(),
		ring:      audioring.New(ringCapacity),
	}
}

// Reset restores the APU and resampler to power-on state. The output
// sample accumulator is cleared along with it.
func (d *Driver) Reset() {
	d.apu.Reset()
	d.resampler.Reset()
	d.cpuCycles = 0
}

// AdvanceTo runs the timing kernel for exactly newCPUCycle-previous CPU
// cycles. It must be monotone: calling with a value lower than the last
// call's is a contract violation.
func (d *Driver) AdvanceTo(newCPUCycle uint64) error {
	if newCPUCycle < d.cpuCycles {
		return &Error{Op: "AdvanceTo", Kind: NonMonotonicAdvance}
	}
	delta := newCPUCycle - d.cpuCycles
	d.cpuCycles = newCPUCycle

	for i := uint64(0); i < delta; i++ {
		out := d.apu.Tick()
		raw := mixer.Mix(out.Pulse1, out.Pulse2, out.Triangle, out.Noise, out.DMC)
		if sample, emitted := d.resampler.Advance(raw); emitted {
			d.ring.Push(sample)
		}
	}
	return nil
}

// AdvanceFrame runs exactly one NTSC video frame's worth of CPU cycles.
func (d *Driver) AdvanceFrame() error {
	if err := d.AdvanceTo(d.cpuCycles + CyclesPerNTSCFrame); err != nil {
		return err
	}
	d.frameCount++
	return nil
}

// Read decodes a CPU bus read.
func (d *Driver) Read(addr uint16) (uint8, error) {
	if !inAPURange(addr) {
		return 0, &Error{Op: "Read", Kind: InvalidAddress}
	}
	return d.apu.ReadRegister(addr), nil
}

// Write decodes a CPU bus write.
func (d *Driver) Write(addr uint16, value uint8) error {
	if !inAPURange(addr) {
		return &Error{Op: "Write", Kind: InvalidAddress}
	}
	d.apu.WriteRegister(addr, value)
	return nil
}

// IRQLine reports whether the frame or DMC IRQ is currently pending.
func (d *Driver) IRQLine() bool {
	return d.apu.FrameIRQ() || d.apu.DMCIRQ()
}

// DrainAudio copies up to len(buf) samples into buf at 44.1 kHz mono,
// zero-filling and counting an underrun on any shortfall. It always
// returns len(buf).
func (d *Driver) DrainAudio(buf []int16) int {
	return d.ring.Drain(buf)
}

// Underruns returns the monotonic underrun sample count.
func (d *Driver) Underruns() uint64 {
	return d.ring.Underruns()
}

// TimingStats reports driver-observable timing counters. FPS is left to
// the caller to compute from
// wall-clock deltas between AdvanceFrame calls; Driver only tracks the
// frame count and underrun total it owns directly.
type TimingStats struct {
	Frames    uint64
	Underruns uint64
}

func (d *Driver) TimingStats() TimingStats {
	return TimingStats{Frames: d.frameCount, Underruns: d.ring.Underruns()}
}
