package models

import "time"

type Coach struct {
	ID          int       `json:"id" db:"id"`
	FullName    string    `json:"full_name" db:"full_name"`
	Role        string    `json:"role" db:"role"`
	Phone       string    `json:"phone" db:"phone"`
	Description *string   `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
