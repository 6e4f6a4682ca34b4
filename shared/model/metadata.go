package model

import "time"

type Metadata struct {
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

// Touch stamps ModifiedAt, and CreatedAt when it has never been set.
func (m *Metadata) Touch(now time.Time) {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}

	m.ModifiedAt = now
}
