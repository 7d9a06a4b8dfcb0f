package models

import "time"

// EnrollmentAction tells whether an assignment created or moved a membership.
type EnrollmentAction string

const (
	EnrollmentEnrolled EnrollmentAction = "enrolled"
	EnrollmentMoved    EnrollmentAction = "moved"
)

// Enrollment is the membership of a student in a group. A student has at most one.
type Enrollment struct {
	ID         string    `db:"id" json:"id"`
	StudentID  string    `db:"alumno_id" json:"alumno_id"`
	GroupID    string    `db:"grupo_id" json:"grupo_id"`
	EnrolledAt time.Time `db:"fecha_inscripcion" json:"fecha_inscripcion"`
}

// StudentGroup is the group a student currently belongs to.
type StudentGroup struct {
	GroupID   string `db:"id"`
	GroupName string `db:"nombre"`
}
