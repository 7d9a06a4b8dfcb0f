package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/DiegoMarin025/EduTrack-SW/internal/models"
)

// GradeRepository handles final grade persistence.
type GradeRepository struct {
	db *sqlx.DB
}

// NewGradeRepository creates a new grade repository.
func NewGradeRepository(db *sqlx.DB) *GradeRepository {
	return &GradeRepository{db: db}
}

// FindByStudentAndSubject returns the grade record for the pair.
func (r *GradeRepository) FindByStudentAndSubject(ctx context.Context, studentID, subjectID string) (*models.GradeRecord, error) {
	query := r.db.Rebind(`SELECT id, alumno_id, materia_id, calificacion, fecha_registro
        FROM calificaciones_finales WHERE alumno_id = ? AND materia_id = ? LIMIT 1`)
	var record models.GradeRecord
	if err := r.db.GetContext(ctx, &record, query, studentID, subjectID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find grade: %w", err)
	}
	return &record, nil
}

// Create inserts a grade record. The (alumno_id, materia_id) unique key turns a
// concurrent duplicate into ErrDuplicate.
func (r *GradeRepository) Create(ctx context.Context, record *models.GradeRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.RecordedAt.IsZero() {
		record.RecordedAt = time.Now().UTC()
	}
	const query = `INSERT INTO calificaciones_finales (id, alumno_id, materia_id, calificacion, fecha_registro)
        VALUES (:id, :alumno_id, :materia_id, :calificacion, :fecha_registro)`
	if _, err := r.db.NamedExecContext(ctx, query, record); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("create grade: %w", err)
	}
	return nil
}

// UpdateGrade mutates the stored value of an existing record in place.
func (r *GradeRepository) UpdateGrade(ctx context.Context, id string, grade float64, recordedAt time.Time) error {
	query := r.db.Rebind(`UPDATE calificaciones_finales SET calificacion = ?, fecha_registro = ? WHERE id = ?`)
	if _, err := r.db.ExecContext(ctx, query, grade, recordedAt, id); err != nil {
		return fmt.Errorf("update grade: %w", err)
	}
	return nil
}
