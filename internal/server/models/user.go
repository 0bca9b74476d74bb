package models

import "time"

// User is an account record. PasswordHash holds a bcrypt hash; the plaintext
// password is never persisted. Rows are immutable after registration.
type User struct {
	ID           string
	UserName     string
	PasswordHash []byte
	CreatedAt    time.Time
}
