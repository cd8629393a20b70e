package entity

import (
	"time"

	"github.com/gofrs/uuid"
)

type User struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Username  string     `json:"username" db:"username"`
	APIToken  string     `json:"-" db:"api_token"`
	CreatedAt *time.Time `json:"created_at,omitempty" db:"created_at"`
}
