package user

import "time"

type Role string

const (
	RoleEmployee   Role = "employee"    // Clocks in, requests leave
	RoleAdmin      Role = "admin"       // Manages office settings, streaks and recaps
	RoleSuperAdmin Role = "super_admin" // Reads the error log
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Roles        []Role
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO / Join
	EmployeeID *string
}

// HasRole reports whether the user holds r.
func (u *User) HasRole(r Role) bool {
	return HasAnyRole(u.Roles, r)
}

// HasAnyRole reports whether roles contains at least one of allowed.
func HasAnyRole(roles []Role, allowed ...Role) bool {
	for _, have := range roles {
		for _, want := range allowed {
			if have == want {
				return true
			}
		}
	}
	return false
}

// IsValidRole checks r against the known role set.
func IsValidRole(r Role) bool {
	switch r {
	case RoleEmployee, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}
