package application

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/shareit-app/backend/internal/domain"
	"github.com/shareit-app/backend/internal/domain/booking"
	"github.com/shareit-app/backend/internal/domain/item"
	"github.com/shareit-app/backend/internal/domain/user"
)

// CreateItemRequest is the payload for listing a new item.
type CreateItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   *bool  `json:"available"`
	RequestID   *int64 `json:"requestId"`
}

// UpdateItemRequest is the partial-update payload; absent fields are kept.
type UpdateItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   *bool  `json:"available"`
}

// CommentRequest is the payload for commenting on an item.
type CommentRequest struct {
	Text string `json:"text"`
}

// BookingRefView is the compact last/next booking projection an owner sees on
// their items.
type BookingRefView struct {
	ID       int64 `json:"id"`
	BookerID int64 `json:"bookerId"`
}

// CommentView is the response representation of a comment.
type CommentView struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

// ItemView is the response representation of an item.
type ItemView struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Available   bool            `json:"available"`
	LastBooking *BookingRefView `json:"lastBooking,omitempty"`
	NextBooking *BookingRefView `json:"nextBooking,omitempty"`
	Comments    []CommentView   `json:"comments,omitempty"`
	RequestID   *int64          `json:"requestId,omitempty"`
}

// ItemService implements item listing, search and commenting.
type ItemService struct {
	items    item.Repository
	users    user.Repository
	bookings booking.Repository
	comments item.CommentRepository
	logger   *zap.Logger
}

// NewItemService creates a new ItemService.
func NewItemService(
	items item.Repository,
	users user.Repository,
	bookings booking.Repository,
	comments item.CommentRepository,
	logger *zap.Logger,
) *ItemService {
	return &ItemService{
		items:    items,
		users:    users,
		bookings: bookings,
		comments: comments,
		logger:   logger,
	}
}

// CreateItem lists a new item owned by the given user.
func (s *ItemService) CreateItem(ctx context.Context, ownerID int64, req CreateItemRequest) (*ItemView, error) {
	if _, err := s.users.FindByID(ctx, ownerID); err != nil {
		return nil, err
	}
	itm, err := item.New(ownerID, req.Name, req.Description, req.Available, req.RequestID)
	if err != nil {
		return nil, err
	}
	saved, err := s.items.Save(ctx, itm)
	if err != nil {
		return nil, err
	}
	s.logger.Info("item created",
		zap.Int64("item_id", saved.ID),
		zap.Int64("owner_id", ownerID),
	)
	result := toItemView(saved)
	return &result, nil
}

// UpdateItem applies a partial update. Only the owner may edit an item; anyone
// else gets a not-found.
func (s *ItemService) UpdateItem(ctx context.Context, ownerID, itemID int64, req UpdateItemRequest) (*ItemView, error) {
	itm, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !itm.IsOwnedBy(ownerID) {
		return nil, domain.NewNotFoundMessage("user %d is not the owner of item %d", ownerID, itemID)
	}
	itm.ApplyPatch(req.Name, req.Description, req.Available)
	updated, err := s.items.Update(ctx, itm)
	if err != nil {
		return nil, err
	}
	result := toItemView(updated)
	return &result, nil
}

// GetItem retrieves an item with its comments. The owner additionally sees the
// last and next approved booking of the item.
func (s *ItemService) GetItem(ctx context.Context, viewerID, itemID int64) (*ItemView, error) {
	itm, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	view := toItemView(itm)

	comments, err := s.comments.ListByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	view.Comments = toCommentViews(comments)

	if itm.IsOwnedBy(viewerID) {
		if err := s.attachBookingRefs(ctx, &view, itemID); err != nil {
			return nil, err
		}
	}
	return &view, nil
}

// ListByOwner retrieves a page of the user's items, each with its last/next
// approved booking projection.
func (s *ItemService) ListByOwner(ctx context.Context, ownerID int64, from, size int) ([]ItemView, error) {
	if _, err := s.users.FindByID(ctx, ownerID); err != nil {
		return nil, err
	}
	offset, limit, err := pageWindow(from, size)
	if err != nil {
		return nil, err
	}
	items, err := s.items.ListByOwner(ctx, ownerID, offset, limit)
	if err != nil {
		return nil, err
	}

	views := make([]ItemView, len(items))
	for i, itm := range items {
		views[i] = toItemView(itm)
		if err := s.attachBookingRefs(ctx, &views[i], itm.ID); err != nil {
			return nil, err
		}
	}
	return views, nil
}

// Search finds available items whose name or description contains the text.
// Blank text matches nothing.
func (s *ItemService) Search(ctx context.Context, text string, from, size int) ([]ItemView, error) {
	if strings.TrimSpace(text) == "" {
		return []ItemView{}, nil
	}
	offset, limit, err := pageWindow(from, size)
	if err != nil {
		return nil, err
	}
	items, err := s.items.Search(ctx, text, offset, limit)
	if err != nil {
		return nil, err
	}
	views := make([]ItemView, len(items))
	for i, itm := range items {
		views[i] = toItemView(itm)
	}
	return views, nil
}

// AddComment posts a comment on an item. Only a user whose approved booking of
// the item already ended may comment.
func (s *ItemService) AddComment(ctx context.Context, authorID, itemID int64, req CommentRequest) (*CommentView, error) {
	rented, err := s.bookings.ExistsApprovedPast(ctx, itemID, authorID, time.Now())
	if err != nil {
		return nil, err
	}
	if !rented {
		return nil, domain.NewNotAvailableError("user %d has not completed a booking of item %d", authorID, itemID)
	}
	author, err := s.users.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if _, err := s.items.FindByID(ctx, itemID); err != nil {
		return nil, err
	}

	c, err := item.NewComment(req.Text, itemID, authorID, time.Now())
	if err != nil {
		return nil, err
	}
	c.AuthorName = author.Name
	saved, err := s.comments.Save(ctx, c)
	if err != nil {
		return nil, err
	}
	result := toCommentView(saved)
	return &result, nil
}

func (s *ItemService) attachBookingRefs(ctx context.Context, view *ItemView, itemID int64) error {
	now := time.Now()
	last, err := s.bookings.FindLastForItem(ctx, itemID, now)
	if err != nil {
		return err
	}
	next, err := s.bookings.FindNextForItem(ctx, itemID, now)
	if err != nil {
		return err
	}
	view.LastBooking = toBookingRefView(last)
	view.NextBooking = toBookingRefView(next)
	return nil
}

// pageWindow computes the page-aligned offset window shared by the item and
// request listings (same from/size semantics as the booking dispatcher).
func pageWindow(from, size int) (offset, limit int, err error) {
	if from < 0 || size <= 0 {
		return 0, 0, domain.NewValidationError("from must be >= 0 and size must be > 0")
	}
	return (from / size) * size, size, nil
}

func toItemView(itm *item.Item) ItemView {
	return ItemView{
		ID:          itm.ID,
		Name:        itm.Name,
		Description: itm.Description,
		Available:   itm.Available,
		RequestID:   itm.RequestID,
	}
}

func toBookingRefView(bk *booking.Booking) *BookingRefView {
	if bk == nil {
		return nil
	}
	return &BookingRefView{ID: bk.ID(), BookerID: bk.Booker().ID}
}

func toCommentView(c *item.Comment) CommentView {
	return CommentView{
		ID:         c.ID,
		Text:       c.Text,
		AuthorName: c.AuthorName,
		Created:    c.Created,
	}
}

func toCommentViews(comments []*item.Comment) []CommentView {
	views := make([]CommentView, len(comments))
	for i, c := range comments {
		views[i] = toCommentView(c)
	}
	return views
}
