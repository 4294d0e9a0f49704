package request

import "context"

// Repository defines the persistence contract for item requests.
type Repository interface {
	// Save persists a new request and returns it with the assigned id.
	Save(ctx context.Context, r *ItemRequest) (*ItemRequest, error)

	// FindByID retrieves a request by id.
	FindByID(ctx context.Context, id int64) (*ItemRequest, error)

	// ListByRequester retrieves the user's own requests, newest first.
	ListByRequester(ctx context.Context, requesterID int64) ([]*ItemRequest, error)

	// ListOthers retrieves a page of other users' requests, newest first.
	ListOthers(ctx context.Context, userID int64, offset, limit int) ([]*ItemRequest, error)
}
