package booking

import (
	"context"
	"time"
)

// Page is a zero-based offset window over an ordered listing.
type Page struct {
	Offset int
	Limit  int
}

// Repository is the temporal query contract the booking core depends on. Both
// the Postgres implementation and the in-memory test double satisfy it; the
// core never sees a concrete storage technology.
//
// All listings are ordered by start descending, id ascending as the
// deterministic tie-break for reproducible pagination.
type Repository interface {
	// Save persists a new booking and returns it with the assigned id.
	Save(ctx context.Context, b *Booking) (*Booking, error)

	// FindByID retrieves a booking with its item and booker refs resolved.
	FindByID(ctx context.Context, id int64) (*Booking, error)

	// UpdateStatusIfWaiting atomically moves the booking to target only if
	// it is still WAITING, reporting whether a row changed. This is the
	// compare-and-set that keeps the one-shot transition safe under
	// concurrent decisions.
	UpdateStatusIfWaiting(ctx context.Context, id int64, target Status) (bool, error)

	// ListByBooker retrieves the booker's bookings narrowed by state; the
	// temporal states evaluate against the single instant now.
	ListByBooker(ctx context.Context, bookerID int64, state State, now time.Time, page Page) ([]*Booking, error)

	// ListByItems retrieves bookings of any of the given items narrowed by
	// state, the owner-viewpoint query.
	ListByItems(ctx context.Context, itemIDs []int64, state State, now time.Time, page Page) ([]*Booking, error)

	// ExistsApprovedPast reports whether the booker has an APPROVED booking
	// of the item that ended before the given instant. The comment
	// precondition in the item service relies on it.
	ExistsApprovedPast(ctx context.Context, itemID, bookerID int64, before time.Time) (bool, error)

	// FindLastForItem returns the latest APPROVED booking of the item
	// started before now, or nil if there is none.
	FindLastForItem(ctx context.Context, itemID int64, now time.Time) (*Booking, error)

	// FindNextForItem returns the earliest APPROVED booking of the item
	// starting after now, or nil if there is none.
	FindNextForItem(ctx context.Context, itemID int64, now time.Time) (*Booking, error)
}
