// AngelaMos | 2026
// policy_test.go

package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	anonymous = Subject{}
	member    = Subject{UserID: "u1", Authenticated: true}
	staff     = Subject{UserID: "u2", Authenticated: true, IsStaff: true}
	admin     = Subject{UserID: "u3", Authenticated: true, IsAdmin: true}
)

func TestAllowed(t *testing.T) {
	tests := []struct {
		name     string
		sub      Subject
		action   Action
		resource Resource
		want     bool
	}{
		{"anonymous denied product read", anonymous, ActionRead, ResourceProduct, false},
		{"anonymous denied invoice read", anonymous, ActionRead, ResourceInvoice, false},
		{"anonymous denied report read", anonymous, ActionRead, ResourceReport, false},
		{"anonymous may create account", anonymous, ActionCreate, ResourceAccount, true},
		{"anonymous denied account update", anonymous, ActionUpdate, ResourceAccount, false},

		{"member reads products", member, ActionRead, ResourceProduct, true},
		{"member reads invoices", member, ActionRead, ResourceInvoice, true},
		{"member creates invoices", member, ActionCreate, ResourceInvoice, true},
		{"member denied product create", member, ActionCreate, ResourceProduct, false},
		{"member denied product update", member, ActionUpdate, ResourceProduct, false},
		{"member denied product delete", member, ActionDelete, ResourceProduct, false},
		{"member denied reports", member, ActionRead, ResourceReport, false},
		{"member denied account delete", member, ActionDelete, ResourceAccount, false},

		{"staff flag grants nothing extra on products", staff, ActionCreate, ResourceProduct, false},
		{"staff denied reports", staff, ActionRead, ResourceReport, false},

		{"admin creates products", admin, ActionCreate, ResourceProduct, true},
		{"admin updates products", admin, ActionUpdate, ResourceProduct, true},
		{"admin deletes products", admin, ActionDelete, ResourceProduct, true},
		{"admin reads reports", admin, ActionRead, ResourceReport, true},
		{"admin deletes accounts", admin, ActionDelete, ResourceAccount, true},

		{"unknown resource denied", admin, ActionRead, Resource("unknown"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allowed(tt.sub, tt.action, tt.resource))
		})
	}
}

func TestAllowedOwn(t *testing.T) {
	tests := []struct {
		name    string
		sub     Subject
		action  Action
		ownerID string
		want    bool
	}{
		{"anonymous denied", anonymous, ActionRead, "u1", false},
		{"member reads own account", member, ActionRead, "u1", true},
		{"member updates own account", member, ActionUpdate, "u1", true},
		{"member denied other account", member, ActionRead, "u9", false},
		{"admin reads any account", admin, ActionRead, "u9", true},
		{"admin updates any account", admin, ActionUpdate, "u9", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AllowedOwn(tt.sub, tt.action, tt.ownerID))
		})
	}
}

func TestCanCreateAdmin(t *testing.T) {
	assert.False(t, CanCreateAdmin(anonymous))
	assert.False(t, CanCreateAdmin(member))
	assert.False(t, CanCreateAdmin(staff))
	assert.True(t, CanCreateAdmin(admin))
}
