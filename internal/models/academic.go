package models

// SubjectGradeRow is one subject visible to a student with its grade if recorded.
type SubjectGradeRow struct {
	Subject string   `db:"materia"`
	Grade   *float64 `db:"calificacion"`
}

// HistoryRow is one graded subject with the group and teacher it was taken with.
type HistoryRow struct {
	Subject   string   `db:"nombre"`
	Grade     *float64 `db:"calificacion"`
	GroupName *string  `db:"grupo_nombre"`
	Teacher   *string  `db:"profesor"`
}

// TeacherStats counts distinct groups and students a teacher works with.
type TeacherStats struct {
	Groups   int `json:"grupos"`
	Students int `json:"alumnos"`
}
