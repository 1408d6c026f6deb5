package apu

// sweep implements the pulse-only period modulator. It mutates the owning
// pulse channel's timer period directly; target/muting are recomputed on
// every half-frame clock:
//
//	muting = (period < 8) || (target_period > 0x7FF)
type sweep struct {
	enabled  bool
	period   uint8 // divider_period, 0..7
	negate   bool
	shift    uint8 // 0..7
	reload   bool
	divider  uint8
	isPulse1 bool // selects one's- vs two's-complement negation

	target uint16
	muting bool
}

// targetFor computes the sweep target period for the given current period,
// without mutating state — used both by clock() and by callers that only
// need the muting invariant (e.g. the pulse output gate).
func (s *sweep) targetFor(period uint16) (target uint16, muting bool) {
	change := period >> s.shift
	if s.negate {
		if s.isPulse1 {
			change++ // one's complement: subtract one extra
		}
		if change > period {
			target = 0
		} else {
			target = period - change
		}
	} else {
		target = period + change
	}
	muting = period < 8 || target > 0x7FF
	return target, muting
}

// clock runs one half-frame clock, mutating period in place when the
// divider underflows and the sweep is actively enabled and unmuted.
func (s *sweep) clock(period *uint16) {
	target, muting := s.targetFor(*period)
	s.target = target
	s.muting = muting

	if s.divider == 0 && s.enabled && !muting && s.shift != 0 {
		*period = target
	}

	if s.divider == 0 || s.reload {
		s.divider = s.period
		s.reload = false
	} else {
		s.divider--
	}
}
