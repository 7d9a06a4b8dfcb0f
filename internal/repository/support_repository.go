package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/DiegoMarin025/EduTrack-SW/internal/models"
)

// SupportRepository stores support desk reports.
type SupportRepository struct {
	db *sqlx.DB
}

// NewSupportRepository constructs the repository.
func NewSupportRepository(db *sqlx.DB) *SupportRepository {
	return &SupportRepository{db: db}
}

// Create inserts a report.
func (r *SupportRepository) Create(ctx context.Context, report *models.SupportReport) error {
	if report.ID == "" {
		report.ID = uuid.NewString()
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO reportes_soporte (id, usuario_id, email, mensaje, fecha)
        VALUES (:id, :usuario_id, :email, :mensaje, :fecha)`
	if _, err := r.db.NamedExecContext(ctx, query, report); err != nil {
		return fmt.Errorf("create support report: %w", err)
	}
	return nil
}
