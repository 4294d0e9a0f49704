package booking

import (
	"strings"
	"time"
)

// State is the listing filter vocabulary: a temporal or status category used
// to narrow a booking listing for either viewpoint.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"

	// StateUnsupported is the sentinel an unrecognized filter value parses
	// to. Listing with it must fail loudly, never fall back to ALL.
	StateUnsupported State = "UNSUPPORTED_STATUS"
)

// statePredicates maps each recognized state to its filter predicate. CURRENT,
// PAST and FUTURE partition the timeline against a single instant: every
// booking matches exactly one of the three.
var statePredicates = map[State]func(b *Booking, now time.Time) bool{
	StateAll: func(*Booking, time.Time) bool { return true },
	StateCurrent: func(b *Booking, now time.Time) bool {
		return !b.Start().After(now) && b.End().After(now)
	},
	StatePast: func(b *Booking, now time.Time) bool {
		return b.End().Before(now)
	},
	StateFuture: func(b *Booking, now time.Time) bool {
		return b.Start().After(now)
	},
	StateWaiting: func(b *Booking, _ time.Time) bool {
		return b.Status() == StatusWaiting
	},
	StateRejected: func(b *Booking, _ time.Time) bool {
		return b.Status() == StatusRejected
	},
}

// ParseState resolves a raw filter value case-insensitively. Anything outside
// the vocabulary resolves to StateUnsupported rather than an error so the
// dispatcher can report the original value.
func ParseState(value string) State {
	s := State(strings.ToUpper(value))
	if _, ok := statePredicates[s]; ok {
		return s
	}
	return StateUnsupported
}

// IsSupported reports whether the state belongs to the recognized vocabulary.
func (s State) IsSupported() bool {
	_, ok := statePredicates[s]
	return ok
}

// Matches reports whether the booking falls under this state at the given
// instant. Unsupported states match nothing.
func (s State) Matches(b *Booking, now time.Time) bool {
	pred, ok := statePredicates[s]
	if !ok {
		return false
	}
	return pred(b, now)
}

// String returns the string representation of the state.
func (s State) String() string {
	return string(s)
}
