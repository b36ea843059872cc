package domain

import "time"

// Client represents a registered client of the practitioner
type Client struct {
	ID        string
	Name      string
	Phone     string
	CreatedAt time.Time
}

// UnknownClientName is reported for occurrences whose client id
// cannot be resolved against the client directory
const UnknownClientName = "Unknown"
