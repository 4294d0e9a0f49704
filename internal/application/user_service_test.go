package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shareit-app/backend/internal/domain"
)

func newUserService() (*UserService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return NewUserService(repo, zap.NewNop()), repo
}

func TestCreateUser(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, CreateUserRequest{Name: "alice", Email: "alice@example.com"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	var validationErr *domain.ValidationError
	_, err = svc.CreateUser(ctx, CreateUserRequest{Name: "", Email: "a@example.com"})
	require.ErrorAs(t, err, &validationErr)
	_, err = svc.CreateUser(ctx, CreateUserRequest{Name: "bob", Email: "not-an-email"})
	require.ErrorAs(t, err, &validationErr)
}

func TestCreateUser_DuplicateEmailConflicts(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, CreateUserRequest{Name: "alice", Email: "alice@example.com"})
	require.NoError(t, err)

	var conflict *domain.ConflictError
	_, err = svc.CreateUser(ctx, CreateUserRequest{Name: "impostor", Email: "alice@example.com"})
	require.ErrorAs(t, err, &conflict)
}

func TestUpdateUser_PartialPatch(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, CreateUserRequest{Name: "alice", Email: "alice@example.com"})
	require.NoError(t, err)

	// Blank fields are kept, present fields overwrite.
	updated, err := svc.UpdateUser(ctx, created.ID, UpdateUserRequest{Email: "new@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "alice", updated.Name)
	assert.Equal(t, "new@example.com", updated.Email)

	updated, err = svc.UpdateUser(ctx, created.ID, UpdateUserRequest{Name: "alicia"})
	require.NoError(t, err)
	assert.Equal(t, "alicia", updated.Name)
	assert.Equal(t, "new@example.com", updated.Email)
}

func TestGetAndListUsers(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	a, err := svc.CreateUser(ctx, CreateUserRequest{Name: "a", Email: "a@example.com"})
	require.NoError(t, err)
	b, err := svc.CreateUser(ctx, CreateUserRequest{Name: "b", Email: "b@example.com"})
	require.NoError(t, err)

	got, err := svc.GetUser(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "a", got.Name)

	all, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, []int64{a.ID, b.ID}, []int64{all[0].ID, all[1].ID})

	var notFound *domain.NotFoundError
	_, err = svc.GetUser(ctx, 999)
	require.ErrorAs(t, err, &notFound)
}

func TestDeleteUser(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, CreateUserRequest{Name: "alice", Email: "alice@example.com"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(ctx, created.ID))

	var notFound *domain.NotFoundError
	err = svc.DeleteUser(ctx, created.ID)
	require.ErrorAs(t, err, &notFound)
}
