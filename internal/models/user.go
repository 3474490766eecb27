package models

// RoleAdmin is the role required to enter the admin console.
const RoleAdmin = "admin"

type User struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	IsBlocked bool   `json:"isBlocked"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
