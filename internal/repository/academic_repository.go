package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/DiegoMarin025/EduTrack-SW/internal/models"
)

// AcademicRepository serves the read-side joins behind dashboards, history and stats.
type AcademicRepository struct {
	db *sqlx.DB
}

// NewAcademicRepository constructs the repository.
func NewAcademicRepository(db *sqlx.DB) *AcademicRepository {
	return &AcademicRepository{db: db}
}

// SubjectGrades lists every subject exposed to the student's group with its grade, if any.
func (r *AcademicRepository) SubjectGrades(ctx context.Context, studentID string) ([]models.SubjectGradeRow, error) {
	query := r.db.Rebind(`SELECT m.nombre AS materia, cf.calificacion
        FROM alumnos_grupos ag
        JOIN materias_grupos mg ON ag.grupo_id = mg.grupo_id
        JOIN materias m ON mg.materia_id = m.id
        LEFT JOIN calificaciones_finales cf ON cf.materia_id = mg.materia_id AND cf.alumno_id = ag.alumno_id
        WHERE ag.alumno_id = ?
        ORDER BY m.nombre`)
	rows := []models.SubjectGradeRow{}
	if err := r.db.SelectContext(ctx, &rows, query, studentID); err != nil {
		return nil, fmt.Errorf("list subject grades: %w", err)
	}
	return rows, nil
}

// History lists graded subjects with the group and teacher of each class section.
func (r *AcademicRepository) History(ctx context.Context, studentID string) ([]models.HistoryRow, error) {
	query := r.db.Rebind(`SELECT m.nombre, cf.calificacion, g.nombre AS grupo_nombre, u.nombre AS profesor
        FROM calificaciones_finales cf
        JOIN materias m ON cf.materia_id = m.id
        JOIN materias_grupos mg ON m.id = mg.materia_id
        JOIN grupos g ON mg.grupo_id = g.id
        LEFT JOIN usuarios u ON mg.profesor_id = u.id
        WHERE cf.alumno_id = ?
        ORDER BY g.nombre, m.nombre`)
	rows := []models.HistoryRow{}
	if err := r.db.SelectContext(ctx, &rows, query, studentID); err != nil {
		return nil, fmt.Errorf("list academic history: %w", err)
	}
	return rows, nil
}

// TeacherStats counts the distinct groups and students a teacher is linked to.
func (r *AcademicRepository) TeacherStats(ctx context.Context, teacherID string) (*models.TeacherStats, error) {
	var stats models.TeacherStats
	groupsQuery := r.db.Rebind(`SELECT COUNT(DISTINCT grupo_id) FROM materias_grupos WHERE profesor_id = ?`)
	if err := r.db.GetContext(ctx, &stats.Groups, groupsQuery, teacherID); err != nil {
		return nil, fmt.Errorf("count teacher groups: %w", err)
	}
	studentsQuery := r.db.Rebind(`SELECT COUNT(DISTINCT ag.alumno_id)
        FROM alumnos_grupos ag
        JOIN materias_grupos mg ON ag.grupo_id = mg.grupo_id
        WHERE mg.profesor_id = ?`)
	if err := r.db.GetContext(ctx, &stats.Students, studentsQuery, teacherID); err != nil {
		return nil, fmt.Errorf("count teacher students: %w", err)
	}
	return &stats, nil
}
