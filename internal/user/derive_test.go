// AngelaMos | 2026
// derive_test.go

package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveRoles(t *testing.T) {
	tests := []struct {
		name string
		in   User
		want User
	}{
		{
			name: "superuser gains admin",
			in:   User{IsSuperuser: true},
			want: User{IsSuperuser: true, IsAdmin: true},
		},
		{
			name: "superuser keeps admin",
			in:   User{IsSuperuser: true, IsAdmin: true},
			want: User{IsSuperuser: true, IsAdmin: true},
		},
		{
			name: "plain admin untouched",
			in:   User{IsAdmin: true},
			want: User{IsAdmin: true},
		},
		{
			name: "staff flag independent",
			in:   User{IsStaff: true},
			want: User{IsStaff: true},
		},
		{
			name: "no flags stay clear",
			in:   User{},
			want: User{},
		},
		{
			name: "admin is never revoked for non-superusers",
			in:   User{IsAdmin: true, IsStaff: true},
			want: User{IsAdmin: true, IsStaff: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveRoles(tt.in))
		})
	}
}

func TestDeriveRolesDoesNotMutateInput(t *testing.T) {
	in := User{IsSuperuser: true}
	_ = DeriveRoles(in)
	assert.False(t, in.IsAdmin)
}
