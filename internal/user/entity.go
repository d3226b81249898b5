// AngelaMos | 2026
// entity.go

package user

import (
	"time"
)

type User struct {
	ID             string     `db:"id"`
	Username       string     `db:"username"`
	Email          string     `db:"email"`
	PasswordHash   string     `db:"password_hash"`
	FirstName      string     `db:"first_name"`
	LastName       string     `db:"last_name"`
	PhoneNumber    string     `db:"phone_number"`
	BillingAddress string     `db:"billing_address"`
	IsAdmin        bool       `db:"is_admin"`
	IsStaff        bool       `db:"is_staff"`
	IsSuperuser    bool       `db:"is_superuser"`
	TokenVersion   int        `db:"token_version"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
	DeletedAt      *time.Time `db:"deleted_at"`
}

func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
