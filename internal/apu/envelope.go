package apu

// envelope implements the per-channel volume ramp shared by the pulse and
// noise channels.
type envelope struct {
	start    bool
	divider  uint8
	decay    uint8
	loop     bool  // counter_halt on the owning channel doubles as envelope loop
	constant bool  // constant_volume flag
	volume   uint8 // volume_env: reload period, or the constant level
}

// clockQuarter runs one quarter-frame clock of the envelope divider/decay.
func (e *envelope) clockQuarter() {
	if e.start {
		e.start = false
		e.decay = 15
		e.divider = e.volume
		return
	}
	if e.divider == 0 {
		e.divider = e.volume
		if e.decay > 0 {
			e.decay--
		} else if e.loop {
			e.decay = 15
		}
		return
	}
	e.divider--
}

// output returns the effective 0..15 volume.
func (e *envelope) output() uint8 {
	if e.constant {
		return e.volume
	}
	return e.decay
}
