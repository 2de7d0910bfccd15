package models

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// ValidRole reports whether role is one the API knows how to authorize.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

// User is an account allowed to log in.
type User struct {
	ID       string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Username string `json:"username" gorm:"uniqueIndex;type:varchar(100)"`
	Email    string `json:"email" gorm:"type:varchar(255)"`
	Password string `json:"-" gorm:"type:varchar(255)"` // bcrypt hash
	Role     string `json:"role" gorm:"type:varchar(20)"`
}

// Claims is the identity carried by a verified bearer token.
type Claims struct {
	Subject string
	Role    string
}

// IsAdmin is the capability required by the admin routes.
func (c *Claims) IsAdmin() bool {
	return c != nil && c.Role == RoleAdmin
}
