package models

import "time"

// TeamMember represents a person shown on the about page
type TeamMember struct {
	ID          string     `json:"_id"`
	Name        string     `json:"name"`
	Role        string     `json:"role"`
	Description string     `json:"description,omitempty"`
	Image       string     `json:"image,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}
