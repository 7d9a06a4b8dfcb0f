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

// EnrollmentRepository handles persistence of group memberships.
type EnrollmentRepository struct {
	db *sqlx.DB
}

// NewEnrollmentRepository constructs the repository.
func NewEnrollmentRepository(db *sqlx.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// FindByStudent returns the student's current membership.
func (r *EnrollmentRepository) FindByStudent(ctx context.Context, studentID string) (*models.Enrollment, error) {
	query := r.db.Rebind(`SELECT id, alumno_id, grupo_id, fecha_inscripcion FROM alumnos_grupos WHERE alumno_id = ? LIMIT 1`)
	var enrollment models.Enrollment
	if err := r.db.GetContext(ctx, &enrollment, query, studentID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find enrollment: %w", err)
	}
	return &enrollment, nil
}

// FindStudentGroup returns the group a student is enrolled in.
func (r *EnrollmentRepository) FindStudentGroup(ctx context.Context, studentID string) (*models.StudentGroup, error) {
	query := r.db.Rebind(`SELECT g.id, g.nombre FROM alumnos_grupos ag JOIN grupos g ON ag.grupo_id = g.id WHERE ag.alumno_id = ? LIMIT 1`)
	var group models.StudentGroup
	if err := r.db.GetContext(ctx, &group, query, studentID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find student group: %w", err)
	}
	return &group, nil
}

// Create persists a new membership. A student already enrolled yields ErrDuplicate.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	if enrollment.ID == "" {
		enrollment.ID = uuid.NewString()
	}
	if enrollment.EnrolledAt.IsZero() {
		enrollment.EnrolledAt = time.Now().UTC()
	}
	const query = `INSERT INTO alumnos_grupos (id, alumno_id, grupo_id, fecha_inscripcion)
        VALUES (:id, :alumno_id, :grupo_id, :fecha_inscripcion)`
	if _, err := r.db.NamedExecContext(ctx, query, enrollment); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("create enrollment: %w", err)
	}
	return nil
}

// UpdateGroup moves a membership to another group and refreshes its timestamp.
func (r *EnrollmentRepository) UpdateGroup(ctx context.Context, id, groupID string, enrolledAt time.Time) error {
	query := r.db.Rebind(`UPDATE alumnos_grupos SET grupo_id = ?, fecha_inscripcion = ? WHERE id = ?`)
	if _, err := r.db.ExecContext(ctx, query, groupID, enrolledAt, id); err != nil {
		return fmt.Errorf("move enrollment: %w", err)
	}
	return nil
}

// Delete removes a membership by identifier.
func (r *EnrollmentRepository) Delete(ctx context.Context, id string) error {
	query := r.db.Rebind(`DELETE FROM alumnos_grupos WHERE id = ?`)
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete enrollment: %w", err)
	}
	return nil
}
