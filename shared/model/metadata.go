package model

import "time"

// Metadata holds the server-assigned timestamps shared by every table.
type Metadata struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
