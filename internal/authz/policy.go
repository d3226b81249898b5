// AngelaMos | 2026
// policy.go

package authz

// Action is an operation class performed against a resource.
type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Resource is a protected resource type.
type Resource string

const (
	ResourceAccount Resource = "accounts"
	ResourceProduct Resource = "products"
	ResourceInvoice Resource = "invoices"
	ResourceReport  Resource = "reports"
)

// Subject carries the requester's identity and role flags as resolved from
// the access token. The zero value is an unauthenticated requester, which
// the policy denies everything except account creation.
type Subject struct {
	UserID        string
	Authenticated bool
	IsAdmin       bool
	IsStaff       bool
	IsSuperuser   bool
}

// Anonymous is the subject used for requests without a verified token.
var Anonymous = Subject{}

// Allowed decides whether the subject may perform the action on the given
// resource type. It is a pure function with no side effects; anything not
// explicitly granted is denied.
func Allowed(sub Subject, action Action, res Resource) bool {
	if !sub.Authenticated {
		// Unauthenticated requesters may only create an account. Requesting
		// elevated flags during registration is handled by CanCreateAdmin.
		return res == ResourceAccount && action == ActionCreate
	}

	switch res {
	case ResourceProduct:
		if action == ActionRead {
			return true
		}
		return sub.IsAdmin

	case ResourceInvoice:
		return true

	case ResourceAccount:
		switch action {
		case ActionRead, ActionUpdate, ActionCreate:
			return true
		case ActionDelete:
			return sub.IsAdmin
		}
		return false

	case ResourceReport:
		return sub.IsAdmin
	}

	return false
}

// AllowedOwn decides account-scoped operations: a requester may always act
// on their own account, otherwise admin rights are required.
func AllowedOwn(sub Subject, action Action, ownerID string) bool {
	if !sub.Authenticated {
		return false
	}

	if sub.UserID == ownerID {
		return Allowed(sub, action, ResourceAccount)
	}

	return sub.IsAdmin
}

// CanCreateAdmin reports whether the subject may create an account that
// carries the admin flag. Only an authenticated admin qualifies.
func CanCreateAdmin(sub Subject) bool {
	return sub.Authenticated && sub.IsAdmin
}
