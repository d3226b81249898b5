// AngelaMos | 2026
// dto.go

package user

import (
	"time"
)

type UpdateUserRequest struct {
	Email          *string `json:"email,omitempty"           validate:"omitempty,email,max=255"`
	FirstName      *string `json:"first_name,omitempty"      validate:"omitempty,min=1,max=100"`
	LastName       *string `json:"last_name,omitempty"       validate:"omitempty,min=1,max=100"`
	PhoneNumber    *string `json:"phone_number,omitempty"    validate:"omitempty,min=1,max=20"`
	BillingAddress *string `json:"billing_address,omitempty" validate:"omitempty,min=1,max=500"`
}

type UpdateUserRolesRequest struct {
	IsAdmin     *bool `json:"is_admin,omitempty"`
	IsStaff     *bool `json:"is_staff,omitempty"`
	IsSuperuser *bool `json:"is_superuser,omitempty"`
}

type UserResponse struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email,omitempty"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	PhoneNumber    string    `json:"phone_number"`
	BillingAddress string    `json:"billing_address"`
	IsAdmin        bool      `json:"is_admin"`
	IsStaff        bool      `json:"is_staff"`
	IsSuperuser    bool      `json:"is_superuser"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type RoleResponse struct {
	IsAdmin     bool `json:"is_admin"`
	IsStaff     bool `json:"is_staff"`
	IsSuperuser bool `json:"is_superuser"`
}

type ListUsersParams struct {
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	Search   string `json:"search"`
	Admin    *bool  `json:"admin"`
}

func (p *ListUsersParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
}

func (p *ListUsersParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func ToUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		PhoneNumber:    u.PhoneNumber,
		BillingAddress: u.BillingAddress,
		IsAdmin:        u.IsAdmin,
		IsStaff:        u.IsStaff,
		IsSuperuser:    u.IsSuperuser,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func ToRoleResponse(u *User) RoleResponse {
	return RoleResponse{
		IsAdmin:     u.IsAdmin,
		IsStaff:     u.IsStaff,
		IsSuperuser: u.IsSuperuser,
	}
}

func ToUserResponseList(users []User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, ToUserResponse(&u))
	}
	return responses
}
