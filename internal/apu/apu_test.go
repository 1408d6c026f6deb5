package apu

import "testing"

// TestStatusReadClearsFrameIRQ checks that reading $4015 clears the frame
// IRQ flag: two consecutive reads without an intervening IRQ source must
// report frame_interrupt=0 on the second read.
func TestStatusReadClearsFrameIRQ(t *testing.T) {
	a := New()

	if got := a.ReadRegister(0x4015); got != 0x00 {
		t.Fatalf("default status = %#02x, want 0x00", got)
	}

	// Advance to just before the 4-step mode's IRQ assertion cycle.
	for i := 0; i < 29827; i++ {
		a.Tick()
	}
	if a.FrameIRQ() {
		t.Fatalf("frame IRQ asserted early")
	}

	a.Tick() // cycle 29828: IRQ asserts
	if !a.FrameIRQ() {
		t.Fatalf("frame IRQ not asserted at cycle 29828")
	}

	status := a.ReadRegister(0x4015)
	if status&0x40 == 0 {
		t.Fatalf("status bit 6 (frame IRQ) not set: %#02x", status)
	}
	if a.FrameIRQ() {
		t.Fatalf("frame IRQ still asserted after status read")
	}

	status2 := a.ReadRegister(0x4015)
	if status2&0x40 != 0 {
		t.Fatalf("second read still reports frame IRQ: %#02x", status2)
	}
}

// TestWriteStatusClearsDMCIRQ checks that writing $4015 clears the DMC IRQ
// flag.
func TestWriteStatusClearsDMCIRQ(t *testing.T) {
	a := New()
	a.dmc.irqFlag = true

	a.WriteRegister(0x4015, 0x00)

	if a.DMCIRQ() {
		t.Fatalf("DMC IRQ still set after $4015 write")
	}
}

// TestDisablingChannelLocksLengthCounter checks that disabling a channel
// forces its length counter to zero and that length-load writes are
// ignored while the channel stays disabled.
func TestDisablingChannelLocksLengthCounter(t *testing.T) {
	a := New()

	a.WriteRegister(0x4015, 0x01) // enable pulse1 only
	a.WriteRegister(0x4002, 0xFE)
	a.WriteRegister(0x4003, 0x08) // length-load index 1 -> 254

	p1, _, _, _ := a.LengthCounters()
	if p1 != 254 {
		t.Fatalf("pulse1 length = %d, want 254", p1)
	}

	a.WriteRegister(0x4015, 0x00) // disable pulse1
	p1, _, _, _ = a.LengthCounters()
	if p1 != 0 {
		t.Fatalf("pulse1 length after disable = %d, want 0", p1)
	}

	a.WriteRegister(0x4003, 0x08) // write while disabled must be ignored
	p1, _, _, _ = a.LengthCounters()
	if p1 != 0 {
		t.Fatalf("pulse1 length after disabled write = %d, want 0", p1)
	}
}
