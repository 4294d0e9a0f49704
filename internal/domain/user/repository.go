package user

import "context"

// Repository defines the persistence contract for users.
type Repository interface {
	// Save persists a new user and returns it with the assigned id.
	// A duplicate email yields a domain.ConflictError.
	Save(ctx context.Context, u *User) (*User, error)

	// Update persists changes to an existing user.
	Update(ctx context.Context, u *User) (*User, error)

	// FindByID retrieves a user by id.
	FindByID(ctx context.Context, id int64) (*User, error)

	// FindAll retrieves every user ordered by id.
	FindAll(ctx context.Context) ([]*User, error)

	// Exists reports whether a user with the given id exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// Delete removes a user by id.
	Delete(ctx context.Context, id int64) error
}
