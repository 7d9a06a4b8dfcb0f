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

// GroupRepository persists groups and the class sections they host.
type GroupRepository struct {
	db *sqlx.DB
}

// NewGroupRepository constructs the repository.
func NewGroupRepository(db *sqlx.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// Create inserts a group.
func (r *GroupRepository) Create(ctx context.Context, group *models.Group) error {
	if group.ID == "" {
		group.ID = uuid.NewString()
	}
	if group.CreatedAt.IsZero() {
		group.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO grupos (id, nombre, fecha_creacion) VALUES (:id, :nombre, :fecha_creacion)`
	if _, err := r.db.NamedExecContext(ctx, query, group); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("create group: %w", err)
	}
	return nil
}

// FindByID returns a group by identifier.
func (r *GroupRepository) FindByID(ctx context.Context, id string) (*models.Group, error) {
	query := r.db.Rebind(`SELECT id, nombre, fecha_creacion FROM grupos WHERE id = ?`)
	var group models.Group
	if err := r.db.GetContext(ctx, &group, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find group: %w", err)
	}
	return &group, nil
}

// List returns every group ordered by name.
func (r *GroupRepository) List(ctx context.Context) ([]models.Group, error) {
	const query = `SELECT id, nombre, fecha_creacion FROM grupos ORDER BY nombre`
	groups := []models.Group{}
	if err := r.db.SelectContext(ctx, &groups, query); err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return groups, nil
}

// CreateClassSection links a subject (and optionally a teacher) to a group.
func (r *GroupRepository) CreateClassSection(ctx context.Context, section *models.ClassSection) error {
	if section.ID == "" {
		section.ID = uuid.NewString()
	}
	const query = `INSERT INTO materias_grupos (id, grupo_id, materia_id, profesor_id)
        VALUES (:id, :grupo_id, :materia_id, :profesor_id)`
	if _, err := r.db.NamedExecContext(ctx, query, section); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("create class section: %w", err)
	}
	return nil
}

// ListClassSections returns class sections, optionally restricted to one teacher.
func (r *GroupRepository) ListClassSections(ctx context.Context, teacherID string) ([]models.ClassSectionDetail, error) {
	query := `SELECT mg.id, g.id AS grupo_id, g.nombre, m.nombre AS materia
        FROM materias_grupos mg
        JOIN grupos g ON mg.grupo_id = g.id
        JOIN materias m ON mg.materia_id = m.id`
	var args []interface{}
	if teacherID != "" {
		query += " WHERE mg.profesor_id = ?"
		args = append(args, teacherID)
	}
	query += " ORDER BY g.nombre ASC, m.nombre ASC"
	sections := []models.ClassSectionDetail{}
	if err := r.db.SelectContext(ctx, &sections, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list class sections: %w", err)
	}
	return sections, nil
}

// FindClassSubject resolves a class section to its subject.
func (r *GroupRepository) FindClassSubject(ctx context.Context, classSectionID string) (*models.ClassSubject, error) {
	query := r.db.Rebind(`SELECT m.id, m.nombre
        FROM materias_grupos mg
        JOIN materias m ON mg.materia_id = m.id
        WHERE mg.id = ?`)
	var subject models.ClassSubject
	if err := r.db.GetContext(ctx, &subject, query, classSectionID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find class subject: %w", err)
	}
	return &subject, nil
}

// ListStudentsByClassSection returns students enrolled in the class section's group.
func (r *GroupRepository) ListStudentsByClassSection(ctx context.Context, classSectionID string) ([]models.StudentSummary, error) {
	query := r.db.Rebind(`SELECT u.id, u.nombre, u.email AS correo
        FROM usuarios u
        JOIN alumnos_grupos ag ON u.id = ag.alumno_id
        JOIN materias_grupos mg ON mg.grupo_id = ag.grupo_id
        WHERE mg.id = ? AND u.rol = ?
        ORDER BY u.nombre`)
	students := []models.StudentSummary{}
	if err := r.db.SelectContext(ctx, &students, query, classSectionID, models.RoleStudent); err != nil {
		return nil, fmt.Errorf("list class students: %w", err)
	}
	return students, nil
}

// ClassSectionExists reports whether the identifier names a class section.
func (r *GroupRepository) ClassSectionExists(ctx context.Context, classSectionID string) (bool, error) {
	query := r.db.Rebind(`SELECT 1 FROM materias_grupos WHERE id = ? LIMIT 1`)
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, classSectionID); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check class section: %w", err)
	}
	return true, nil
}
