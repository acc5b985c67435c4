package models

import "time"

// User roles. "jovem" is a regular canteen user who creates lists and orders;
// "adm" manages the catalog, costs and aggregate reports.
const (
	RoleJovem = "jovem"
	RoleAdm   = "adm"
)

// User represents an authenticated account.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"` // never serialized
	CreatedAt    time.Time `json:"created_at"`
}
