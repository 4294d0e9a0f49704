// Package request defines item requests: wishes users post for items they
// would like somebody to offer.
package request

import (
	"strings"
	"time"

	"github.com/shareit-app/backend/internal/domain"
)

// ItemRequest is a wish for an item, possibly fulfilled later by one or more
// items created against it.
type ItemRequest struct {
	ID          int64
	Description string
	RequesterID int64
	Created     time.Time
}

// New validates request data and stamps the creation time.
func New(requesterID int64, description string, now time.Time) (*ItemRequest, error) {
	if strings.TrimSpace(description) == "" {
		return nil, domain.NewValidationError("request description is required")
	}
	return &ItemRequest{
		Description: description,
		RequesterID: requesterID,
		Created:     now,
	}, nil
}
