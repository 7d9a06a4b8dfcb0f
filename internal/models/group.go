package models

import "time"

// Group is a named cohort of students.
type Group struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"nombre" json:"nombre"`
	CreatedAt time.Time `db:"fecha_creacion" json:"fecha_creacion"`
}

// Subject is a course topic reusable across class sections.
type Subject struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"nombre" json:"nombre"`
	Code string `db:"codigo" json:"codigo"`
}

// ClassSection associates a group, a subject and an optional teacher.
type ClassSection struct {
	ID        string  `db:"id" json:"id"`
	GroupID   string  `db:"grupo_id" json:"grupo_id"`
	SubjectID string  `db:"materia_id" json:"materia_id"`
	TeacherID *string `db:"profesor_id" json:"profesor_id,omitempty"`
}

// ClassSectionDetail joins a class section with its group and subject names.
type ClassSectionDetail struct {
	ID        string `db:"id" json:"id"`
	GroupID   string `db:"grupo_id" json:"grupo_id"`
	GroupName string `db:"nombre" json:"nombre"`
	Subject   string `db:"materia" json:"materia"`
}

// ClassSubject resolves a class section to the subject grades are recorded against.
type ClassSubject struct {
	SubjectID   string `db:"id"`
	SubjectName string `db:"nombre"`
}
