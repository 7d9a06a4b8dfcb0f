package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/DiegoMarin025/EduTrack-SW/internal/models"
)

// SubjectRepository persists course subjects.
type SubjectRepository struct {
	db *sqlx.DB
}

// NewSubjectRepository constructs the repository.
func NewSubjectRepository(db *sqlx.DB) *SubjectRepository {
	return &SubjectRepository{db: db}
}

// FindByName looks a subject up by its exact name.
func (r *SubjectRepository) FindByName(ctx context.Context, name string) (*models.Subject, error) {
	query := r.db.Rebind(`SELECT id, nombre, codigo FROM materias WHERE nombre = ? LIMIT 1`)
	var subject models.Subject
	if err := r.db.GetContext(ctx, &subject, query, name); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find subject by name: %w", err)
	}
	return &subject, nil
}

// Create inserts a subject.
func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	if subject.ID == "" {
		subject.ID = uuid.NewString()
	}
	const query = `INSERT INTO materias (id, nombre, codigo) VALUES (:id, :nombre, :codigo)`
	if _, err := r.db.NamedExecContext(ctx, query, subject); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("create subject: %w", err)
	}
	return nil
}
