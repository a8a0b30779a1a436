package models

import "time"

// User represents an admin account. Accounts are created by the one-time
// seed procedure and only ever read afterwards.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}
