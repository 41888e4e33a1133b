package domain

import (
	"strings"
	"time"
)

// Roles understood by the authorization layer.
const (
	RoleAdmin   = "Admin"
	RoleManager = "Manager"
	RoleUser    = "User"
)

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleUser:
		return true
	default:
		return false
	}
}

// MaxPasswordBytes is the longest password bcrypt accepts, counted in bytes.
const MaxPasswordBytes = 72

// ValidatePassword checks a plaintext password before it is hashed.
func ValidatePassword(password string) error {
	if strings.TrimSpace(password) == "" {
		return NewValidationError("password", "Password is required", ErrPasswordRequired)
	}
	if len(password) > MaxPasswordBytes {
		return NewValidationError("password", "must be at most 72 bytes", ErrPasswordTooLong)
	}
	return nil
}

// User is an account that can authenticate against the API.
type User struct {
	ID       int64
	Username string
	Email    string
	FullName string
	Role     string
	// PasswordHash is the only form in which a password is stored.
	PasswordHash string
	CreatedDate  time.Time
}

// Validate checks the User fields, including that a password hash is present.
func (u *User) Validate() error {
	if err := requireText("username", u.Username, 50); err != nil {
		return err
	}
	if err := requireText("email", u.Email, 100); err != nil {
		return err
	}
	if err := validateEmail("email", u.Email); err != nil {
		return err
	}
	if err := limitText("fullName", u.FullName, 100); err != nil {
		return err
	}
	if !ValidRole(u.Role) {
		return NewValidationError("role", "must be one of Admin, Manager, User", ErrInvalidRole)
	}
	if u.PasswordHash == "" {
		return NewValidationError("password", "Password is required", ErrPasswordRequired)
	}
	return nil
}
