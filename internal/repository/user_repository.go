package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/DiegoMarin025/EduTrack-SW/internal/models"
)

// UserRepository provides database access for accounts.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new account. A taken email yields ErrDuplicate.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO usuarios (id, nombre, email, password, rol, fecha_registro)
        VALUES (:id, :nombre, :email, :password, :rol, :fecha_registro)`
	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// FindByEmail returns a user by email address.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := r.db.Rebind(`SELECT id, nombre, email, password, rol, fecha_registro FROM usuarios WHERE email = ? LIMIT 1`)
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

// FindByID returns a user by identifier.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	query := r.db.Rebind(`SELECT id, nombre, email, password, rol, fecha_registro FROM usuarios WHERE id = ? LIMIT 1`)
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &user, nil
}

// SearchStudents matches students by name or email fragment.
func (r *UserRepository) SearchStudents(ctx context.Context, term string, limit int) ([]models.StudentSummary, error) {
	if limit <= 0 {
		limit = 5
	}
	pattern := "%" + strings.ToLower(strings.TrimSpace(term)) + "%"
	query := r.db.Rebind(fmt.Sprintf(`SELECT id, nombre, email AS correo FROM usuarios
        WHERE rol = ? AND (LOWER(nombre) LIKE ? OR LOWER(email) LIKE ?)
        ORDER BY nombre LIMIT %d`, limit))
	students := []models.StudentSummary{}
	if err := r.db.SelectContext(ctx, &students, query, models.RoleStudent, pattern, pattern); err != nil {
		return nil, fmt.Errorf("search students: %w", err)
	}
	return students, nil
}
