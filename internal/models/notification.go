package models

import "time"

// Notification is an append-only message addressed to a user.
type Notification struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"usuario_id" json:"usuario_id"`
	Title     string    `db:"titulo" json:"titulo"`
	Message   string    `db:"mensaje" json:"mensaje"`
	CreatedAt time.Time `db:"fecha" json:"fecha"`
}
