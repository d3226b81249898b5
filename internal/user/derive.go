// AngelaMos | 2026
// derive.go

package user

// DeriveRoles applies the role invariant to an account and returns the
// corrected copy: a superuser always carries the admin flag, regardless of
// what the caller supplied. Every persist path (create and update alike)
// must pass the account through this function before writing.
func DeriveRoles(u User) User {
	if u.IsSuperuser {
		u.IsAdmin = true
	}
	return u
}
