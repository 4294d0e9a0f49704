package item

import "context"

// Repository defines the persistence contract for items.
type Repository interface {
	// Save persists a new item and returns it with the assigned id.
	Save(ctx context.Context, i *Item) (*Item, error)

	// Update persists changes to an existing item.
	Update(ctx context.Context, i *Item) (*Item, error)

	// FindByID retrieves an item by id.
	FindByID(ctx context.Context, id int64) (*Item, error)

	// ListByOwner retrieves a page of the owner's items ordered by id.
	ListByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]*Item, error)

	// Search retrieves a page of available items whose name or description
	// contains the text, case-insensitively.
	Search(ctx context.Context, text string, offset, limit int) ([]*Item, error)

	// FindIDsByOwner returns the ids of every item the user owns.
	FindIDsByOwner(ctx context.Context, ownerID int64) ([]int64, error)

	// ExistsByOwner reports whether the user owns at least one item.
	ExistsByOwner(ctx context.Context, ownerID int64) (bool, error)

	// FindByRequestIDs returns items created to fulfill any of the requests.
	FindByRequestIDs(ctx context.Context, requestIDs []int64) ([]*Item, error)
}

// CommentRepository defines the persistence contract for item comments.
type CommentRepository interface {
	// Save persists a new comment and returns it with the assigned id and
	// the author's name resolved.
	Save(ctx context.Context, c *Comment) (*Comment, error)

	// ListByItem retrieves all comments on an item ordered by creation time.
	ListByItem(ctx context.Context, itemID int64) ([]*Comment, error)
}
