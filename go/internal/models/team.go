package models

import (
	"time"
)

const (
	DefaultPrimaryColor   = "#3498db"
	DefaultSecondaryColor = "#ffffff"
)

// Team represents a sports team in the system
type Team struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	City           *string   `json:"city,omitempty"`
	LogoURL        *string   `json:"logo_url,omitempty"`
	PrimaryColor   *string   `json:"primary_color,omitempty"`
	SecondaryColor *string   `json:"secondary_color,omitempty"`
	Active         bool      `json:"active"`
	Description    *string   `json:"description,omitempty"`
	Coach          *string   `json:"coach,omitempty"`
	FoundedYear    *int      `json:"founded_year,omitempty"`
	Stadium        *string   `json:"stadium,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
