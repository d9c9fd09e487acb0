package domain

// User roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents an account that can authenticate against the service.
type User struct {
	UserID       string `json:"userID"`
	Email        string `json:"email"` // unique, always lowercase
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"` // RoleAdmin or RoleUser
	AuditFields
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
