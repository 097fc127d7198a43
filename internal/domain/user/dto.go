package user

// UserResponse represents user data in API responses
type UserResponse struct {
	ID         string   `json:"id"`
	Email      string   `json:"email"`
	Roles      []string `json:"roles"`
	EmployeeID *string  `json:"employee_id,omitempty"`
}

func NewUserResponse(u User) UserResponse {
	roles := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		roles = append(roles, string(r))
	}
	return UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Roles:      roles,
		EmployeeID: u.EmployeeID,
	}
}
