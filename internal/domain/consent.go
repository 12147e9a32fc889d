package domain

import (
	"time"

	"github.com/google/uuid"
)

// Consent is the PDPA acknowledgment for one member: two checkbox flags,
// one row per member, upserted on resubmission. No history is kept.
type Consent struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"userId"`
	Checkbox1 bool      `db:"checkbox1" json:"checkbox1"`
	Checkbox2 bool      `db:"checkbox2" json:"checkbox2"`

	CreatedAt time.Time `db:"created_at" json:"-"`
	UpdatedAt time.Time `db:"updated_at" json:"-"`
}
