package user

import (
	"time"
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	IsAdmin      bool
	GoogleID     *string
	CreatedAt    time.Time
}
