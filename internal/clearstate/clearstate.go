// Package clearstate implements Component G: the small value type tracking
// b2b and per-clear-kind counters across a sequence of placements.
package clearstate

// State is clear/b2b bookkeeping accumulated along one search path. The
// zero value is not meaningful on its own for b2b purposes; use New to set
// the initial b2b flag explicitly (spec.md §9 Open Question (b): callers
// decide whether that flag carries over from real game state or starts
// false).
type State struct {
	B2B bool

	B2BClears uint8

	SingleClears uint8
	DoubleClears uint8
	TripleClears uint8
	QuadClears   uint8

	SpinSingleClears uint8
	SpinDoubleClears uint8
	SpinTripleClears uint8
}

// New returns the initial state for a search, with b2b carried over from
// the caller's real game state.
func New(b2b bool) State {
	return State{B2B: b2b}
}

// Next returns the state after a placement that cleared `cleared` lines,
// where isSpin reports whether the placement was immobile at the moment of
// lock. A cleared count of zero leaves the state unchanged — combo/ren is
// intentionally unmodeled.
func (s State) Next(cleared uint8, isSpin bool) State {
	if cleared == 0 {
		return s
	}

	var b2bClear bool
	if isSpin {
		b2bClear = true
		switch cleared {
		case 3, 4:
			s.SpinTripleClears++
		case 2:
			s.SpinDoubleClears++
		default:
			s.SpinSingleClears++
		}
	} else {
		b2bClear = cleared >= 4
		switch cleared {
		case 4:
			s.QuadClears++
		case 3:
			s.TripleClears++
		case 2:
			s.DoubleClears++
		default:
			s.SingleClears++
		}
	}

	if b2bClear && s.B2B {
		s.B2BClears++
	}
	s.B2B = b2bClear
	return s
}
