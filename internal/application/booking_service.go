package application

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/shareit-app/backend/internal/domain"
	"github.com/shareit-app/backend/internal/domain/booking"
	"github.com/shareit-app/backend/internal/domain/item"
	"github.com/shareit-app/backend/internal/domain/user"
	"github.com/shareit-app/backend/internal/events"
)

// CreateBookingRequest holds the data needed to request a booking.
type CreateBookingRequest struct {
	ItemID int64     `json:"itemId" binding:"required"`
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
}

// BookingItemView is the item slice embedded in a booking view.
type BookingItemView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BookingUserView is the booker slice embedded in a booking view.
type BookingUserView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BookingView is the response representation of a booking.
type BookingView struct {
	ID     int64           `json:"id"`
	Start  time.Time       `json:"start"`
	End    time.Time       `json:"end"`
	Status string          `json:"status"`
	Item   BookingItemView `json:"item"`
	Booker BookingUserView `json:"booker"`
}

// BookingService is the application service owning the booking lifecycle and
// the state-filtered listing dispatch.
type BookingService struct {
	bookings  booking.Repository
	users     user.Repository
	items     item.Repository
	publisher events.Publisher
	logger    *zap.Logger
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	bookings booking.Repository,
	users user.Repository,
	items item.Repository,
	publisher events.Publisher,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		bookings:  bookings,
		users:     users,
		items:     items,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateBooking validates the request against booker, item and range
// invariants and persists a new WAITING booking.
func (s *BookingService) CreateBooking(ctx context.Context, bookerID int64, req CreateBookingRequest) (*BookingView, error) {
	booker, err := s.users.FindByID(ctx, bookerID)
	if err != nil {
		return nil, err
	}
	itm, err := s.items.FindByID(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	if !itm.Available {
		return nil, domain.NewNotAvailableError("item with id = %d is not available for booking", itm.ID)
	}

	bk, err := booking.New(
		req.Start, req.End,
		booking.ItemRef{ID: itm.ID, Name: itm.Name, OwnerID: itm.OwnerID},
		booking.UserRef{ID: booker.ID, Name: booker.Name},
	)
	if err != nil {
		return nil, err
	}

	saved, err := s.bookings.Save(ctx, bk)
	if err != nil {
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}

	s.logger.Info("booking created, waiting for the owner's decision",
		zap.Int64("booking_id", saved.ID()),
		zap.Int64("item_id", itm.ID),
		zap.Int64("booker_id", bookerID),
	)
	s.publisher.PublishBookingEvent(ctx, events.BookingRequested, toBookingEvent(saved))

	result := toBookingView(saved)
	return &result, nil
}

// Decide applies the owner's one-shot approval or rejection. The transition is
// committed with a compare-and-set keyed on WAITING status, so concurrent
// decisions cannot both take effect.
func (s *BookingService) Decide(ctx context.Context, approved bool, ownerID, bookingID int64) (*BookingView, error) {
	exists, err := s.users.Exists(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.NewNotFoundError("user", ownerID)
	}

	bk, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	// Ownership mismatch reads the same as a missing booking on purpose.
	if bk.Item().OwnerID != ownerID {
		return nil, domain.NewNotFoundMessage("user %d is not the owner of the booked item", ownerID)
	}

	if err := bk.Decide(approved); err != nil {
		return nil, err
	}

	changed, err := s.bookings.UpdateStatusIfWaiting(ctx, bookingID, bk.Status())
	if err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	if !changed {
		// A concurrent decision won the compare-and-set.
		return nil, domain.NewNotAvailableError("booking with id = %d is not waiting for a decision", bookingID)
	}

	eventType := events.BookingRejected
	if approved {
		eventType = events.BookingApproved
	}
	s.logger.Info("booking decided",
		zap.Int64("booking_id", bookingID),
		zap.String("status", bk.Status().String()),
	)
	s.publisher.PublishBookingEvent(ctx, eventType, toBookingEvent(bk))

	result := toBookingView(bk)
	return &result, nil
}

// GetBooking retrieves a single booking for its booker or the item's owner.
func (s *BookingService) GetBooking(ctx context.Context, bookingID, requesterID int64) (*BookingView, error) {
	bk, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !bk.CanBeViewedBy(requesterID) {
		return nil, domain.NewNotFoundMessage(
			"user %d neither booked nor owns the booked item", requesterID)
	}
	result := toBookingView(bk)
	return &result, nil
}

// ListByBooker retrieves the user's own bookings narrowed by the state filter,
// newest start first.
func (s *BookingService) ListByBooker(ctx context.Context, rawState string, userID int64, from, size int) ([]BookingView, error) {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.NewNotFoundError("user", userID)
	}

	state, page, err := resolveListing(rawState, from, size)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookings.ListByBooker(ctx, userID, state, time.Now(), page)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings by booker: %w", err)
	}
	return toBookingViews(bookings), nil
}

// ListByOwner retrieves bookings of every item the user owns, narrowed by the
// state filter. A user owning nothing gets a not-found instead of an empty
// page, which would be indistinguishable from "no bookings yet".
func (s *BookingService) ListByOwner(ctx context.Context, rawState string, userID int64, from, size int) ([]BookingView, error) {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.NewNotFoundError("user", userID)
	}
	owns, err := s.items.ExistsByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !owns {
		return nil, domain.NewNotFoundMessage("user %d has no items to receive bookings for", userID)
	}

	state, page, err := resolveListing(rawState, from, size)
	if err != nil {
		return nil, err
	}

	itemIDs, err := s.items.FindIDsByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookings.ListByItems(ctx, itemIDs, state, time.Now(), page)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings by owner: %w", err)
	}
	return toBookingViews(bookings), nil
}

// resolveListing parses the state filter and computes the page window.
// The window is page-aligned: page index = from/size by integer division, so a
// from that is not a multiple of size rounds down to the page boundary. This
// is the legacy listing contract, pinned by tests.
func resolveListing(rawState string, from, size int) (booking.State, booking.Page, error) {
	if from < 0 || size <= 0 {
		return "", booking.Page{}, domain.NewValidationError("from must be >= 0 and size must be > 0")
	}
	state := booking.ParseState(rawState)
	if !state.IsSupported() {
		return "", booking.Page{}, domain.NewStateError(rawState)
	}
	pageIndex := from / size
	return state, booking.Page{Offset: pageIndex * size, Limit: size}, nil
}

// --- Helpers ---

func toBookingView(bk *booking.Booking) BookingView {
	return BookingView{
		ID:     bk.ID(),
		Start:  bk.Start(),
		End:    bk.End(),
		Status: bk.Status().String(),
		Item:   BookingItemView{ID: bk.Item().ID, Name: bk.Item().Name},
		Booker: BookingUserView{ID: bk.Booker().ID, Name: bk.Booker().Name},
	}
}

func toBookingViews(bookings []*booking.Booking) []BookingView {
	views := make([]BookingView, len(bookings))
	for i, bk := range bookings {
		views[i] = toBookingView(bk)
	}
	return views
}

func toBookingEvent(bk *booking.Booking) events.BookingEvent {
	return events.BookingEvent{
		BookingID:  bk.ID(),
		ItemID:     bk.Item().ID,
		BookerID:   bk.Booker().ID,
		OwnerID:    bk.Item().OwnerID,
		Start:      bk.Start(),
		End:        bk.End(),
		Status:     bk.Status().String(),
		OccurredAt: time.Now().UTC(),
	}
}
