package apu

import "nesapu/internal/sequencer"

// APU owns all five channel sub-states and the frame sequencer. It advances
// one CPU cycle at a time; the output ring and IRQ-line aggregation live in
// internal/driver, and the non-linear mix + resampling live in
// internal/mixer — APU.Tick only returns raw per-channel analog-scale
// samples for those packages to combine.
type APU struct {
	pulse1   *pulseChannel
	pulse2   *pulseChannel
	triangle triangleChannel
	noise    *noiseChannel
	dmc      dmcStub
	seq      *sequencer.Sequencer

	apuPhase bool // toggles every CPU cycle; true on APU-clock edges
}

// New returns a power-on APU with every channel at its documented reset
// default.
func New() *APU {
	a := &APU{
		pulse1: newPulseChannel(true),
		pulse2: newPulseChannel(false),
		noise:  newNoiseChannel(),
		seq:    sequencer.New(),
	}
	return a
}

// Reset restores power-on/reset state.
func (a *APU) Reset() {
	a.pulse1 = newPulseChannel(true)
	a.pulse2 = newPulseChannel(false)
	a.triangle = triangleChannel{}
	a.noise = newNoiseChannel()
	a.dmc = dmcStub{}
	a.seq.Reset()
	a.apuPhase = false
}

// Outputs holds the raw per-channel analog-scale samples for one CPU cycle,
// ready for internal/mixer.Mix.
type Outputs struct {
	Pulse1, Pulse2, Triangle, Noise, DMC uint8
}

// Tick advances every channel and the frame sequencer by exactly one CPU
// cycle and returns the resulting channel outputs.
func (a *APU) Tick() Outputs {
	frame := a.seq.Tick()
	if frame.Quarter {
		a.pulse1.clockQuarter()
		a.pulse2.clockQuarter()
		a.noise.clockQuarter()
		a.triangle.clockQuarter()
	}
	if frame.Half {
		a.pulse1.clockHalf()
		a.pulse2.clockHalf()
		a.triangle.clockHalf()
		a.noise.clockHalf()
	}

	// Triangle ticks every CPU cycle; pulse/noise tick at the APU clock
	// (CPU/2).
	a.triangle.tickTimer()
	if a.apuPhase {
		a.pulse1.tickTimer()
		a.pulse2.tickTimer()
		a.noise.tickTimer()
	}
	a.apuPhase = !a.apuPhase

	return Outputs{
		Pulse1:   a.pulse1.output(),
		Pulse2:   a.pulse2.output(),
		Triangle: a.triangle.output(),
		Noise:    a.noise.output(),
		DMC:      a.dmc.output(),
	}
}

// FrameIRQ reports whether the frame sequencer's IRQ is asserted.
func (a *APU) FrameIRQ() bool {
	return a.seq.IRQ()
}

// DMCIRQ reports whether the (stubbed) DMC's IRQ is asserted.
func (a *APU) DMCIRQ() bool {
	return a.dmc.irqFlag
}

// WriteRegister decodes a bus write in $4000..$4017. The
// caller (internal/driver) is responsible for rejecting addresses outside
// that range and the non-APU addresses carved out of it ($4009, $400D,
// $4014, $4016); WriteRegister treats any address it does not recognize as
// a silent no-op, matching real open-bus register decode.
func (a *APU) WriteRegister(addr uint16, value uint8) {
	switch addr {
	case 0x4000:
		a.pulse1.writeControl(value)
	case 0x4001:
		a.pulse1.writeSweep(value)
	case 0x4002:
		a.pulse1.writeTimerLow(value)
	case 0x4003:
		a.pulse1.writeTimerHigh(value)

	case 0x4004:
		a.pulse2.writeControl(value)
	case 0x4005:
		a.pulse2.writeSweep(value)
	case 0x4006:
		a.pulse2.writeTimerLow(value)
	case 0x4007:
		a.pulse2.writeTimerHigh(value)

	case 0x4008:
		a.triangle.writeLinear(value)
	case 0x400A:
		a.triangle.writeTimerLow(value)
	case 0x400B:
		a.triangle.writeTimerHigh(value)

	case 0x400C:
		a.noise.writeControl(value)
	case 0x400E:
		a.noise.writePeriod(value)
	case 0x400F:
		a.noise.writeLength(value)

	case 0x4010:
		a.dmc.writeControl(value)
	case 0x4011:
		a.dmc.outputLevel = value & 0x7F
	case 0x4012:
		a.dmc.writeSampleAddress(value)
	case 0x4013:
		a.dmc.writeSampleLength(value)

	case 0x4015:
		a.writeChannelEnable(value)
	case 0x4017:
		a.seq.WriteControl(value, a.apuPhase)
	}
}

// ReadRegister decodes a bus read. Only $4015 is meaningful; every other
// address returns 0 (open bus).
func (a *APU) ReadRegister(addr uint16) uint8 {
	if addr != 0x4015 {
		return 0
	}
	return a.readStatus()
}

func (a *APU) writeChannelEnable(value uint8) {
	a.pulse1.length.setEnabled(value&0x01 != 0)
	a.pulse2.length.setEnabled(value&0x02 != 0)
	a.triangle.length.setEnabled(value&0x04 != 0)
	a.noise.length.setEnabled(value&0x08 != 0)
	a.dmc.setEnabled(value&0x10 != 0)
	a.dmc.irqFlag = false
}

// readStatus implements the $4015 read side: length-counter-nonzero bits,
// frame IRQ, DMC IRQ, and the frame-IRQ-clearing side effect.
func (a *APU) readStatus() uint8 {
	var status uint8
	if !a.pulse1.length.silent() {
		status |= 0x01
	}
	if !a.pulse2.length.silent() {
		status |= 0x02
	}
	if !a.triangle.length.silent() {
		status |= 0x04
	}
	if !a.noise.length.silent() {
		status |= 0x08
	}
	if a.dmc.bytesRemaining > 0 {
		status |= 0x10
	}
	if a.seq.IRQ() {
		status |= 0x40
	}
	if a.dmc.irqFlag {
		status |= 0x80
	}
	a.seq.AcknowledgeIRQ()
	return status
}

// LengthCounters exposes the four audible channels' length counter values,
// for diagnostics and tests.
func (a *APU) LengthCounters() (pulse1, pulse2, triangle, noise uint8) {
	return a.pulse1.length.value, a.pulse2.length.value, a.triangle.length.value, a.noise.length.value
}

// NoiseLFSR exposes the noise channel's shift register, for tests.
func (a *APU) NoiseLFSR() uint16 {
	return a.noise.lfsr
}

// TrianglePhase exposes the triangle sequencer position, for tests.
func (a *APU) TrianglePhase() uint8 {
	return a.triangle.seqStep
}
