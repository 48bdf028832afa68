package domain

import "time"

// Trip groups itinerary items under one travel plan.
type Trip struct {
	ID          string
	Name        string
	Destination string
	StartDate   *time.Time
	Days        int

	CreatedAt time.Time
	UpdatedAt time.Time
}
