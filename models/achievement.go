package models

import "time"

type Achievement struct {
	ID          int       `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Category    *string   `json:"category,omitempty" db:"category"`
	Description *string   `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`

	ImageKey *string `json:"-" db:"image_key"`
	ImageURL *string `json:"image_url,omitempty" db:"-"`
	VideoKey *string `json:"-" db:"video_key"`
	VideoURL *string `json:"video_url,omitempty" db:"-"`
}
