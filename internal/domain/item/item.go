// Package item defines items offered for sharing and the comments left on
// them after completed bookings.
package item

import (
	"strings"
	"time"

	"github.com/shareit-app/backend/internal/domain"
)

// Item is a thing an owner offers for booking. Available=false makes the item
// ineligible for new bookings without touching existing ones.
type Item struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	// RequestID links the item to the request it was created to fulfill.
	RequestID *int64
}

// New validates listing data and builds an Item ready to persist.
func New(ownerID int64, name, description string, available *bool, requestID *int64) (*Item, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.NewValidationError("item name is required")
	}
	if strings.TrimSpace(description) == "" {
		return nil, domain.NewValidationError("item description is required")
	}
	if available == nil {
		return nil, domain.NewValidationError("item availability is required")
	}
	return &Item{
		Name:        name,
		Description: description,
		Available:   *available,
		OwnerID:     ownerID,
		RequestID:   requestID,
	}, nil
}

// ApplyPatch overwrites only the fields present in a partial update.
func (i *Item) ApplyPatch(name, description string, available *bool) {
	if strings.TrimSpace(name) != "" {
		i.Name = name
	}
	if strings.TrimSpace(description) != "" {
		i.Description = description
	}
	if available != nil {
		i.Available = *available
	}
}

// IsOwnedBy reports whether the item belongs to the given user.
func (i *Item) IsOwnedBy(userID int64) bool {
	return i.OwnerID == userID
}

// Comment is feedback left on an item by a user who completed an approved
// booking of it.
type Comment struct {
	ID         int64
	Text       string
	ItemID     int64
	AuthorID   int64
	AuthorName string
	Created    time.Time
}

// NewComment validates comment data and stamps the creation time.
func NewComment(text string, itemID, authorID int64, now time.Time) (*Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.NewValidationError("comment text is required")
	}
	return &Comment{
		Text:     text,
		ItemID:   itemID,
		AuthorID: authorID,
		Created:  now,
	}, nil
}
