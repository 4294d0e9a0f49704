// Package booking is the core domain: the booking aggregate, its status
// lifecycle and the listing state vocabulary.
package booking

import (
	"time"

	"github.com/shareit-app/backend/internal/domain"
)

// ItemRef is the slice of an item a booking needs to carry: enough to render
// a view and to answer "is this caller the owner".
type ItemRef struct {
	ID      int64
	Name    string
	OwnerID int64
}

// UserRef identifies the booker in a booking view.
type UserRef struct {
	ID   int64
	Name string
}

// Booking is the aggregate root for the booking domain. It is the sole owner
// of its (start, end, item-ref, booker-ref, status) tuple; item and booker are
// referenced, never owned.
type Booking struct {
	id     int64
	start  time.Time
	end    time.Time
	item   ItemRef
	booker UserRef
	status Status
}

// New creates a booking in WAITING status. The caller has already resolved
// booker and item; this enforces the invariants that survive resolution:
// a strictly ordered time range and no self-booking.
func New(start, end time.Time, item ItemRef, booker UserRef) (*Booking, error) {
	if start.IsZero() || end.IsZero() {
		return nil, domain.NewNotAvailableError("booking start and end are required")
	}
	if !start.Before(end) {
		return nil, domain.NewNotAvailableError("booking start must be strictly before its end")
	}
	if booker.ID == item.OwnerID {
		// Reported as not-found so a non-owner caller learns nothing
		// about who owns what.
		return nil, domain.NewNotFoundMessage("user %d cannot book their own item", booker.ID)
	}
	return &Booking{
		start:  start,
		end:    end,
		item:   item,
		booker: booker,
		status: StatusWaiting,
	}, nil
}

// Reconstruct rebuilds a Booking from persistence data (no validation).
func Reconstruct(id int64, start, end time.Time, item ItemRef, booker UserRef, status Status) *Booking {
	return &Booking{
		id:     id,
		start:  start,
		end:    end,
		item:   item,
		booker: booker,
		status: status,
	}
}

// --- Getters ---

// ID returns the booking's unique identifier.
func (b *Booking) ID() int64 { return b.id }

// Start returns the start of the booked range.
func (b *Booking) Start() time.Time { return b.start }

// End returns the end of the booked range.
func (b *Booking) End() time.Time { return b.end }

// Item returns the booked item's reference.
func (b *Booking) Item() ItemRef { return b.item }

// Booker returns the requesting user's reference.
func (b *Booking) Booker() UserRef { return b.booker }

// Status returns the current lifecycle status.
func (b *Booking) Status() Status { return b.status }

// --- Behavior ---

// Decide applies the owner's one-shot decision: APPROVED when approved is
// true, REJECTED otherwise. Only a WAITING booking can be decided.
func (b *Booking) Decide(approved bool) error {
	target := StatusRejected
	if approved {
		target = StatusApproved
	}
	if !b.status.CanTransitionTo(target) {
		return domain.NewNotAvailableError("booking with id = %d is not waiting for a decision", b.id)
	}
	b.status = target
	return nil
}

// CanBeViewedBy reports whether the user is the booker or the item's owner,
// the only two parties allowed to read a booking.
func (b *Booking) CanBeViewedBy(userID int64) bool {
	return b.booker.ID == userID || b.item.OwnerID == userID
}
