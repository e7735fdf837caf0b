package models

import "time"

// Press represents a press article about the studio
type Press struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Date        string     `json:"date"`
	Description string     `json:"description"`
	Link        string     `json:"link,omitempty"`
	Image       string     `json:"image,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}
