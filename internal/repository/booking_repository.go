package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/shareit-app/backend/internal/domain"
	"github.com/shareit-app/backend/internal/domain/booking"
)

// BookingModel is the GORM model for the bookings table.
type BookingModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	StartDate time.Time `gorm:"column:start_date;not null;index"`
	EndDate   time.Time `gorm:"column:end_date;not null"`
	ItemID    int64     `gorm:"index;not null"`
	BookerID  int64     `gorm:"index;not null"`
	Status    string    `gorm:"not null;size:16;index"`

	Item   ItemModel `gorm:"foreignKey:ItemID"`
	Booker UserModel `gorm:"foreignKey:BookerID"`
}

// TableName returns the table name for the GORM model.
func (BookingModel) TableName() string {
	return "bookings"
}

// stateClause is a query descriptor: the WHERE fragment a listing state adds
// on top of the viewpoint's base predicate.
type stateClause struct {
	cond string
	args func(now time.Time) []any
}

// stateClauses is the dispatch table for the listing state vocabulary. Both
// viewpoints share it; only the base predicate differs. The temporal states
// compare against the single now instant passed in, so CURRENT's two bounds
// cannot drift apart.
var stateClauses = map[booking.State]stateClause{
	booking.StateAll: {},
	booking.StateCurrent: {
		cond: "start_date <= ? AND end_date > ?",
		args: func(now time.Time) []any { return []any{now, now} },
	},
	booking.StatePast: {
		cond: "end_date < ?",
		args: func(now time.Time) []any { return []any{now} },
	},
	booking.StateFuture: {
		cond: "start_date > ?",
		args: func(now time.Time) []any { return []any{now} },
	},
	booking.StateWaiting: {
		cond: "status = ?",
		args: func(time.Time) []any { return []any{string(booking.StatusWaiting)} },
	},
	booking.StateRejected: {
		cond: "status = ?",
		args: func(time.Time) []any { return []any{string(booking.StatusRejected)} },
	},
}

// GormBookingRepository is the GORM-based implementation of
// booking.Repository.
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GormBookingRepository.
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// Save persists a new booking.
func (r *GormBookingRepository) Save(ctx context.Context, bk *booking.Booking) (*booking.Booking, error) {
	model := &BookingModel{
		StartDate: bk.Start(),
		EndDate:   bk.End(),
		ItemID:    bk.Item().ID,
		BookerID:  bk.Booker().ID,
		Status:    string(bk.Status()),
	}
	if err := r.db.WithContext(ctx).Omit("Item", "Booker").Create(model).Error; err != nil {
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}
	return booking.Reconstruct(model.ID, bk.Start(), bk.End(), bk.Item(), bk.Booker(), bk.Status()), nil
}

// FindByID retrieves a booking with its item and booker resolved.
func (r *GormBookingRepository) FindByID(ctx context.Context, id int64) (*booking.Booking, error) {
	var model BookingModel
	if err := r.db.WithContext(ctx).
		Preload("Item").
		Preload("Booker").
		First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("booking", id)
		}
		return nil, fmt.Errorf("failed to find booking by id: %w", err)
	}
	return toDomainBooking(&model)
}

// UpdateStatusIfWaiting atomically moves the booking out of WAITING. The
// affected-row count tells whether this call won the transition.
func (r *GormBookingRepository) UpdateStatusIfWaiting(ctx context.Context, id int64, target booking.Status) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&BookingModel{}).
		Where("id = ? AND status = ?", id, string(booking.StatusWaiting)).
		Update("status", string(target))
	if result.Error != nil {
		return false, fmt.Errorf("failed to update booking status: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// ListByBooker retrieves the booker's bookings narrowed by state.
func (r *GormBookingRepository) ListByBooker(ctx context.Context, bookerID int64, state booking.State, now time.Time, page booking.Page) ([]*booking.Booking, error) {
	q := r.db.WithContext(ctx).Where("booker_id = ?", bookerID)
	return r.list(ctx, q, state, now, page)
}

// ListByItems retrieves bookings of any of the given items narrowed by state.
func (r *GormBookingRepository) ListByItems(ctx context.Context, itemIDs []int64, state booking.State, now time.Time, page booking.Page) ([]*booking.Booking, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}
	q := r.db.WithContext(ctx).Where("item_id IN ?", itemIDs)
	return r.list(ctx, q, state, now, page)
}

func (r *GormBookingRepository) list(ctx context.Context, q *gorm.DB, state booking.State, now time.Time, page booking.Page) ([]*booking.Booking, error) {
	clause, ok := stateClauses[state]
	if !ok {
		return nil, domain.NewStateError(state.String())
	}
	if clause.cond != "" {
		q = q.Where(clause.cond, clause.args(now)...)
	}

	var models []BookingModel
	if err := q.
		Preload("Item").
		Preload("Booker").
		Order("start_date DESC, id ASC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	bookings := make([]*booking.Booking, len(models))
	for i := range models {
		bk, err := toDomainBooking(&models[i])
		if err != nil {
			return nil, err
		}
		bookings[i] = bk
	}
	return bookings, nil
}

// ExistsApprovedPast reports whether the booker finished an APPROVED booking
// of the item before the given instant.
func (r *GormBookingRepository) ExistsApprovedPast(ctx context.Context, itemID, bookerID int64, before time.Time) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&BookingModel{}).
		Where("item_id = ? AND booker_id = ? AND status = ? AND end_date < ?",
			itemID, bookerID, string(booking.StatusApproved), before).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check past bookings: %w", err)
	}
	return count > 0, nil
}

// FindLastForItem returns the latest APPROVED booking started before now.
func (r *GormBookingRepository) FindLastForItem(ctx context.Context, itemID int64, now time.Time) (*booking.Booking, error) {
	return r.findOneForItem(ctx,
		"item_id = ? AND start_date < ? AND status = ?",
		[]any{itemID, now, string(booking.StatusApproved)},
		"end_date DESC")
}

// FindNextForItem returns the earliest APPROVED booking starting after now.
func (r *GormBookingRepository) FindNextForItem(ctx context.Context, itemID int64, now time.Time) (*booking.Booking, error) {
	return r.findOneForItem(ctx,
		"item_id = ? AND start_date > ? AND status = ?",
		[]any{itemID, now, string(booking.StatusApproved)},
		"start_date ASC")
}

func (r *GormBookingRepository) findOneForItem(ctx context.Context, cond string, args []any, order string) (*booking.Booking, error) {
	var model BookingModel
	err := r.db.WithContext(ctx).
		Preload("Item").
		Preload("Booker").
		Where(cond, args...).
		Order(order).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find booking for item: %w", err)
	}
	return toDomainBooking(&model)
}

// --- Conversion helpers ---

func toDomainBooking(m *BookingModel) (*booking.Booking, error) {
	status, err := booking.ParseStatus(m.Status)
	if err != nil {
		return nil, err
	}
	return booking.Reconstruct(
		m.ID,
		m.StartDate,
		m.EndDate,
		booking.ItemRef{ID: m.Item.ID, Name: m.Item.Name, OwnerID: m.Item.OwnerID},
		booking.UserRef{ID: m.Booker.ID, Name: m.Booker.Name},
		status,
	), nil
}
