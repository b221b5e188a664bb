package account

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered storage account.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Password     string    `json:"-"`
	Plan         string    `json:"plan"`
	StorageUsed  int64     `json:"storage_used"`
	StorageLimit int64     `json:"storage_limit"`
	CreatedAt    time.Time `json:"created_at"`
}

// SafeUser removes the credential for response payloads.
func (u User) SafeUser() User {
	u.Password = ""
	return u
}
