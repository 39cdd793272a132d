package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lynossweets/storefront-server/internal/mocks"
	"github.com/lynossweets/storefront-server/internal/model"
	"github.com/lynossweets/storefront-server/internal/testutil"
)

func TestUser_Create_HashesPassword(t *testing.T) {
	ctx := context.Background()
	users := &mocks.UserStore{}
	hasher := &mocks.PasswordHasher{}

	hasher.On("Hash", "secret123").Return("$2a$10$digest", nil)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.Email == "staff@lynossweets.com" && u.PasswordHash == "$2a$10$digest" &&
			u.Role == model.RoleUser && u.IsActive
	})).Return(model.User{ID: 2, Email: "staff@lynossweets.com", Role: model.RoleUser}, nil)

	s := NewUser(users, hasher, testutil.MakeNoopLogger())

	created, err := s.Create(ctx, UserInput{Email: "staff@lynossweets.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), created.ID)
	users.AssertExpectations(t)
}

func TestUser_Create_EmailTaken(t *testing.T) {
	ctx := context.Background()
	users := &mocks.UserStore{}
	hasher := &mocks.PasswordHasher{}

	hasher.On("Hash", "secret123").Return("$2a$10$digest", nil)
	users.On("Create", mock.Anything, mock.Anything).Return(model.User{}, model.ErrEmailTaken)

	s := NewUser(users, hasher, testutil.MakeNoopLogger())

	_, err := s.Create(ctx, UserInput{Email: "admin@lynossweets.com", Password: "secret123", Role: model.RoleAdmin})
	require.ErrorIs(t, err, model.ErrEmailTaken)
}

func TestUser_Update_KeepsPasswordWhenAbsent(t *testing.T) {
	ctx := context.Background()
	users := &mocks.UserStore{}
	hasher := &mocks.PasswordHasher{}

	users.On("GetByID", mock.Anything, int64(2)).Return(model.User{
		ID: 2, Email: "staff@lynossweets.com", PasswordHash: "$2a$10$old", Role: model.RoleUser, IsActive: true,
	}, nil)
	users.On("Update", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.PasswordHash == "$2a$10$old" && u.Role == model.RoleAdmin && !u.IsActive
	})).Return(model.User{ID: 2, Role: model.RoleAdmin}, nil)

	s := NewUser(users, hasher, testutil.MakeNoopLogger())

	_, err := s.Update(ctx, 2, UserUpdate{
		Email:    "staff@lynossweets.com",
		Role:     model.RoleAdmin,
		IsActive: false,
	})
	require.NoError(t, err)
	hasher.AssertNotCalled(t, "Hash", mock.Anything)
	users.AssertExpectations(t)
}

func TestUser_Update_RehashesProvidedPassword(t *testing.T) {
	ctx := context.Background()
	users := &mocks.UserStore{}
	hasher := &mocks.PasswordHasher{}

	users.On("GetByID", mock.Anything, int64(2)).Return(model.User{
		ID: 2, Email: "staff@lynossweets.com", PasswordHash: "$2a$10$old", Role: model.RoleUser, IsActive: true,
	}, nil)
	hasher.On("Hash", "newpassword").Return("$2a$10$new", nil)
	users.On("Update", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.PasswordHash == "$2a$10$new"
	})).Return(model.User{ID: 2}, nil)

	s := NewUser(users, hasher, testutil.MakeNoopLogger())

	password := "newpassword"
	_, err := s.Update(ctx, 2, UserUpdate{
		Email:    "staff@lynossweets.com",
		Role:     model.RoleUser,
		IsActive: true,
		Password: &password,
	})
	require.NoError(t, err)
	users.AssertExpectations(t)
}

func TestUser_Delete(t *testing.T) {
	ctx := context.Background()
	users := &mocks.UserStore{}

	users.On("Delete", mock.Anything, int64(2)).Return(nil)

	s := NewUser(users, &mocks.PasswordHasher{}, testutil.MakeNoopLogger())

	require.NoError(t, s.Delete(ctx, 2))
}
