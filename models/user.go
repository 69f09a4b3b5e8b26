package models

import "time"

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User is the public view of an account. It never carries the password.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// UserRecord is the stored form of a user inside the users bucket.
type UserRecord struct {
	User
	Password string `json:"password"` // bcrypt hash
}

// Session is one authenticated slot in the sessions bucket.
type Session struct {
	Token     string    `json:"token"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// ResetToken is stored in the resets bucket keyed by email.
type ResetToken struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires"`
}
