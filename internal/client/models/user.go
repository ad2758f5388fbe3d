package models

// User is an admin-managed account. Email is the identity key.
type User struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
