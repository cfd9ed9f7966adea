package entities

import "time"

// Tree is a tracked plant identified by a human-readable code (e.g. "A-12").
// Code uniqueness is not enforced by the store; duplicate codes resolve
// last-write-wins at read time.
type Tree struct {
	ID          string     `json:"id"`
	Code        string     `json:"code"`
	Name        string     `json:"name,omitempty"`
	Location    string     `json:"location,omitempty"`
	Variety     string     `json:"variety,omitempty"`
	PlantedDate *time.Time `json:"planted_date,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
