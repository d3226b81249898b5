// AngelaMos | 2026
// service_test.go

package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/grocerly/backoffice/internal/auth"
	"github.com/grocerly/backoffice/internal/core"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, user *User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockRepository) GetByID(
	ctx context.Context,
	id string,
) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *mockRepository) GetByUsername(
	ctx context.Context,
	username string,
) (*User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *mockRepository) Update(ctx context.Context, user *User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockRepository) UpdatePassword(
	ctx context.Context,
	id, passwordHash string,
) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *mockRepository) IncrementTokenVersion(
	ctx context.Context,
	id string,
) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRepository) SoftDelete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRepository) List(
	ctx context.Context,
	params ListUsersParams,
) ([]User, int, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]User), args.Int(1), args.Error(2)
}

func (m *mockRepository) ExistsByUsername(
	ctx context.Context,
	username string,
) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func TestCreate_PersistsAdminFlag(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *User) bool {
		return u.IsAdmin && !u.IsStaff && !u.IsSuperuser && u.ID != ""
	})).Return(nil)

	info, err := svc.Create(context.Background(), auth.CreateAccountParams{
		Username:       "Root",
		PasswordHash:   "$argon2id$...",
		FirstName:      "Ada",
		LastName:       "Lovelace",
		PhoneNumber:    "+3312345678",
		BillingAddress: "1 Analytical Way",
		IsAdmin:        true,
	})

	require.NoError(t, err)
	assert.True(t, info.IsAdmin)
	assert.Equal(t, "root", info.Username)
	repo.AssertExpectations(t)
}

func TestCreate_LowercasesUsername(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *User) bool {
		return u.Username == "shopkeeper" && u.Email == "shop@example.com"
	})).Return(nil)

	_, err := svc.Create(context.Background(), auth.CreateAccountParams{
		Username:       "ShopKeeper",
		Email:          "Shop@Example.com",
		PasswordHash:   "$argon2id$...",
		FirstName:      "Sam",
		LastName:       "Keeper",
		PhoneNumber:    "+3312345678",
		BillingAddress: "2 Market St",
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateUserRoles_SuperuserImpliesAdmin(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	existing := &User{ID: "u1", Username: "worker"}

	repo.On("GetByID", mock.Anything, "u1").Return(existing, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(u *User) bool {
		return u.IsSuperuser && u.IsAdmin
	})).Return(nil)

	isSuperuser := true
	updated, err := svc.UpdateUserRoles(
		context.Background(),
		"u1",
		UpdateUserRolesRequest{IsSuperuser: &isSuperuser},
	)

	require.NoError(t, err)
	assert.True(t, updated.IsAdmin)
	repo.AssertExpectations(t)
}

func TestUpdateUser_RunsInvariantOnProfileEdits(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	// A row written before the invariant existed: superuser without admin.
	existing := &User{ID: "u1", Username: "legacy", IsSuperuser: true}

	repo.On("GetByID", mock.Anything, "u1").Return(existing, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(u *User) bool {
		return u.IsAdmin
	})).Return(nil)

	firstName := "Greta"
	_, err := svc.UpdateUser(context.Background(), "u1", UpdateUserRequest{
		FirstName: &firstName,
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestGetMe_RequiresIdentity(t *testing.T) {
	svc := NewService(new(mockRepository))

	_, err := svc.GetMe(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrUnauthorized))
}

func TestCanDeleteUser(t *testing.T) {
	adminUser := &User{ID: "admin", IsAdmin: true}
	plainUser := &User{ID: "plain"}
	superUser := &User{ID: "super", IsAdmin: true, IsSuperuser: true}

	tests := []struct {
		name        string
		requesterID string
		targetID    string
		requester   *User
		target      *User
		wantErr     error
	}{
		{
			name:        "self deletion allowed",
			requesterID: "plain",
			targetID:    "plain",
		},
		{
			name:        "admin deletes plain user",
			requesterID: "admin",
			targetID:    "plain",
			requester:   adminUser,
			target:      plainUser,
		},
		{
			name:        "plain user cannot delete others",
			requesterID: "plain",
			targetID:    "admin",
			requester:   plainUser,
			wantErr:     core.ErrForbidden,
		},
		{
			name:        "superuser accounts are protected",
			requesterID: "admin",
			targetID:    "super",
			requester:   adminUser,
			target:      superUser,
			wantErr:     core.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockRepository)
			svc := NewService(repo)

			if tt.requester != nil {
				repo.On("GetByID", mock.Anything, tt.requesterID).
					Return(tt.requester, nil)
			}
			if tt.target != nil {
				repo.On("GetByID", mock.Anything, tt.targetID).
					Return(tt.target, nil)
			}

			err := svc.CanDeleteUser(
				context.Background(),
				tt.requesterID,
				tt.targetID,
			)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
		})
	}
}
