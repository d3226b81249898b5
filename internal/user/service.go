// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/grocerly/backoffice/internal/auth"
	"github.com/grocerly/backoffice/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(
	ctx context.Context,
	id string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) GetByUsername(
	ctx context.Context,
	username string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByUsername(ctx, strings.ToLower(username))
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

// Create persists a new account. The role invariant runs before the write,
// as it does on every other persist path.
func (s *Service) Create(
	ctx context.Context,
	params auth.CreateAccountParams,
) (*auth.UserInfo, error) {
	account := DeriveRoles(User{
		ID:             uuid.New().String(),
		Username:       strings.ToLower(params.Username),
		Email:          strings.ToLower(params.Email),
		PasswordHash:   params.PasswordHash,
		FirstName:      params.FirstName,
		LastName:       params.LastName,
		PhoneNumber:    params.PhoneNumber,
		BillingAddress: params.BillingAddress,
		IsAdmin:        params.IsAdmin,
	})

	if err := s.repo.Create(ctx, &account); err != nil {
		return nil, err
	}

	return toUserInfo(&account), nil
}

func (s *Service) IncrementTokenVersion(
	ctx context.Context,
	userID string,
) error {
	return s.repo.IncrementTokenVersion(ctx, userID)
}

func (s *Service) UpdatePassword(
	ctx context.Context,
	userID, passwordHash string,
) error {
	return s.repo.UpdatePassword(ctx, userID, passwordHash)
}

func (s *Service) GetUser(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) UpdateUser(
	ctx context.Context,
	id string,
	req UpdateUserRequest,
) (*User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		user.Email = strings.ToLower(*req.Email)
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}
	if req.BillingAddress != nil {
		user.BillingAddress = *req.BillingAddress
	}

	derived := DeriveRoles(*user)

	if err := s.repo.Update(ctx, &derived); err != nil {
		return nil, err
	}

	return &derived, nil
}

// UpdateUserRoles mutates role flags through the privileged path. The role
// invariant runs after the caller's flags are applied, so requesting
// is_superuser without is_admin still yields an admin account.
func (s *Service) UpdateUserRoles(
	ctx context.Context,
	id string,
	req UpdateUserRolesRequest,
) (*User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.IsAdmin != nil {
		user.IsAdmin = *req.IsAdmin
	}
	if req.IsStaff != nil {
		user.IsStaff = *req.IsStaff
	}
	if req.IsSuperuser != nil {
		user.IsSuperuser = *req.IsSuperuser
	}

	derived := DeriveRoles(*user)

	if err := s.repo.Update(ctx, &derived); err != nil {
		return nil, err
	}

	return &derived, nil
}

func (s *Service) DeleteUser(ctx context.Context, id string) error {
	return s.repo.SoftDelete(ctx, id)
}

func (s *Service) ListUsers(
	ctx context.Context,
	params ListUsersParams,
) ([]User, int, error) {
	return s.repo.List(ctx, params)
}

func (s *Service) GetMe(ctx context.Context, userID string) (*User, error) {
	if userID == "" {
		return nil, fmt.Errorf("get me: %w", core.ErrUnauthorized)
	}

	return s.repo.GetByID(ctx, userID)
}

func (s *Service) UpdateMe(
	ctx context.Context,
	userID string,
	req UpdateUserRequest,
) (*User, error) {
	if userID == "" {
		return nil, fmt.Errorf("update me: %w", core.ErrUnauthorized)
	}

	return s.UpdateUser(ctx, userID, req)
}

func (s *Service) GetRole(ctx context.Context, userID string) (*User, error) {
	if userID == "" {
		return nil, fmt.Errorf("get role: %w", core.ErrUnauthorized)
	}

	return s.repo.GetByID(ctx, userID)
}

func (s *Service) UsernameExists(
	ctx context.Context,
	username string,
) (bool, error) {
	return s.repo.ExistsByUsername(ctx, strings.ToLower(username))
}

func (s *Service) CanDeleteUser(
	ctx context.Context,
	requesterID, targetID string,
) error {
	if requesterID == targetID {
		return nil
	}

	requester, err := s.repo.GetByID(ctx, requesterID)
	if err != nil {
		return err
	}

	if !requester.IsAdmin {
		return fmt.Errorf("delete user: %w", core.ErrForbidden)
	}

	target, err := s.repo.GetByID(ctx, targetID)
	if err != nil {
		return err
	}

	if target.IsSuperuser {
		return fmt.Errorf("cannot delete superuser accounts: %w", core.ErrForbidden)
	}

	return nil
}

func toUserInfo(u *User) *auth.UserInfo {
	return &auth.UserInfo{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		PasswordHash: u.PasswordHash,
		IsAdmin:      u.IsAdmin,
		IsStaff:      u.IsStaff,
		IsSuperuser:  u.IsSuperuser,
		TokenVersion: u.TokenVersion,
	}
}

var _ auth.UserProvider = (*Service)(nil)
