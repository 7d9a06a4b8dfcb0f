package models

import (
	"math"
	"time"
)

// PassingGrade is the inclusive lower bound of an approved grade on the 0-10 scale.
const PassingGrade = 7.0

// GradeRecord is the single final grade of a student in a subject.
type GradeRecord struct {
	ID         string    `db:"id" json:"id"`
	StudentID  string    `db:"alumno_id" json:"alumno_id"`
	SubjectID  string    `db:"materia_id" json:"materia_id"`
	Grade      float64   `db:"calificacion" json:"calificacion"`
	RecordedAt time.Time `db:"fecha_registro" json:"fecha_registro"`
}

// GradeUpsertStatus describes what an upsert did to the stored record.
type GradeUpsertStatus string

const (
	GradeCreated   GradeUpsertStatus = "created"
	GradeUpdated   GradeUpsertStatus = "updated"
	GradeUnchanged GradeUpsertStatus = "unchanged"
)

// IsFailing reports whether a grade is below the passing threshold.
func IsFailing(grade float64) bool {
	return grade < PassingGrade
}

// SameGrade compares grades at the two decimals the column stores.
func SameGrade(a, b float64) bool {
	return math.Round(a*100) == math.Round(b*100)
}
