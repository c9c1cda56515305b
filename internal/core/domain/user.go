package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// BootstrapAdminUsername is the reserved username for the seeded admin account.
const BootstrapAdminUsername = "admin"

// User models an authenticated actor in the system.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsAdmin reports whether the user passes the administrator gate.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
