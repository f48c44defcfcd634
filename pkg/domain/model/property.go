package model

import "time"

// Property represents a retail premises under management
type Property struct {
	ID        int64
	Name      string
	Address   string
	Postcode  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
