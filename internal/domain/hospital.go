package domain

import "time"

// Hospital represents a medical institution that accounts and patients are
// scoped to.
type Hospital struct {
	ID        int64
	Name      string
	Address   string
	Contact   string
	Email     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
