package domain

import "time"

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User models an authenticated actor. New registrations always get
// RoleCustomer; admins are promoted out of band.
type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
