package models

import "time"

// Banner defines the struct for the 'banners' table. Listing sorts by
// display_order ascending, then newest first.
type Banner struct {
	ID           int64     `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	ImageURL     string    `json:"image_url" db:"image_url"`
	Link         *string   `json:"link,omitempty" db:"link"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	DisplayOrder int       `json:"display_order" db:"display_order"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
