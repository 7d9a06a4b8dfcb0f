package models

import "time"

// SupportReport is a free-form message sent to the support desk.
type SupportReport struct {
	ID        string    `db:"id" json:"id"`
	UserID    *string   `db:"usuario_id" json:"usuario_id,omitempty"`
	Email     string    `db:"email" json:"email"`
	Message   string    `db:"mensaje" json:"mensaje"`
	CreatedAt time.Time `db:"fecha" json:"fecha"`
}
