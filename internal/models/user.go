package models

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"not null;index" json:"username"`
	Password  string    `gorm:"not null" json:"-"` // salted digest, "<hex>,<salt>"
	Email     string    `json:"email"`             // Optional
	CreatedAt time.Time `json:"created_at"`
}
