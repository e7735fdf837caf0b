package models

import "time"

// Studio represents the studio profile shown on the home and about pages
type Studio struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Image       string     `json:"image,omitempty"`
	Location    string     `json:"location,omitempty"`
	Contact     string     `json:"contact,omitempty"`
	Email       string     `json:"email,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}
