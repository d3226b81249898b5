// AngelaMos | 2026
// register_test.go

package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/grocerly/backoffice/internal/authz"
	"github.com/grocerly/backoffice/internal/core"
)

type mockUserProvider struct {
	mock.Mock
}

func (m *mockUserProvider) GetByUsername(
	ctx context.Context,
	username string,
) (*UserInfo, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*UserInfo), args.Error(1)
}

func (m *mockUserProvider) GetByID(
	ctx context.Context,
	id string,
) (*UserInfo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*UserInfo), args.Error(1)
}

func (m *mockUserProvider) Create(
	ctx context.Context,
	params CreateAccountParams,
) (*UserInfo, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*UserInfo), args.Error(1)
}

func (m *mockUserProvider) IncrementTokenVersion(
	ctx context.Context,
	userID string,
) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *mockUserProvider) UpdatePassword(
	ctx context.Context,
	userID, passwordHash string,
) error {
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

func registerRequest(isAdmin bool) RegisterRequest {
	return RegisterRequest{
		Username:       "clerk",
		Password:       "correct-horse-battery",
		FirstName:      "Casey",
		LastName:       "Clerk",
		PhoneNumber:    "+15550100",
		BillingAddress: "7 Till Lane",
		IsAdmin:        isAdmin,
	}
}

func TestRegister_AnonymousCreatesPlainAccount(t *testing.T) {
	provider := new(mockUserProvider)
	svc := &Service{userProvider: provider}

	provider.On("Create", mock.Anything,
		mock.MatchedBy(func(p CreateAccountParams) bool {
			return p.Username == "clerk" &&
				!p.IsAdmin &&
				p.PasswordHash != "" &&
				p.PasswordHash != "correct-horse-battery"
		}),
	).Return(&UserInfo{ID: "u1", Username: "clerk"}, nil)

	user, err := svc.Register(
		context.Background(),
		registerRequest(false),
		authz.Anonymous,
	)

	require.NoError(t, err)
	assert.Equal(t, "clerk", user.Username)
	provider.AssertExpectations(t)
}

func TestRegister_AnonymousCannotCreateAdmin(t *testing.T) {
	provider := new(mockUserProvider)
	svc := &Service{userProvider: provider}

	_, err := svc.Register(
		context.Background(),
		registerRequest(true),
		authz.Anonymous,
	)

	require.ErrorIs(t, err, ErrAdminNotAllowed)
	provider.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_NonAdminRequesterCannotCreateAdmin(t *testing.T) {
	provider := new(mockUserProvider)
	svc := &Service{userProvider: provider}

	requester := authz.Subject{
		UserID:        "u2",
		Authenticated: true,
		IsStaff:       true,
	}

	_, err := svc.Register(context.Background(), registerRequest(true), requester)

	require.ErrorIs(t, err, ErrAdminNotAllowed)
}

func TestRegister_AdminCreatesAdmin(t *testing.T) {
	provider := new(mockUserProvider)
	svc := &Service{userProvider: provider}

	provider.On("Create", mock.Anything,
		mock.MatchedBy(func(p CreateAccountParams) bool {
			return p.IsAdmin
		}),
	).Return(&UserInfo{ID: "u3", Username: "clerk", IsAdmin: true}, nil)

	requester := authz.Subject{
		UserID:        "admin-1",
		Authenticated: true,
		IsAdmin:       true,
	}

	user, err := svc.Register(
		context.Background(),
		registerRequest(true),
		requester,
	)

	require.NoError(t, err)
	assert.True(t, user.IsAdmin)
	provider.AssertExpectations(t)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	provider := new(mockUserProvider)
	svc := &Service{userProvider: provider}

	provider.On("Create", mock.Anything, mock.Anything).
		Return(nil, core.ErrDuplicateKey)

	_, err := svc.Register(
		context.Background(),
		registerRequest(false),
		authz.Anonymous,
	)

	require.ErrorIs(t, err, ErrUsernameExists)
	assert.False(t, errors.Is(err, core.ErrNotFound))
}
