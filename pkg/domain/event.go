package domain

import "time"

// Event is a campus event feedback can refer to
type Event struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Date      time.Time `json:"date"`
	Venue     string    `json:"venue,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
