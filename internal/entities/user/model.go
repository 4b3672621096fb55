// Package user defines the User entity and its test samples.
package user

// User is an account of the admin application.
type User struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
}
