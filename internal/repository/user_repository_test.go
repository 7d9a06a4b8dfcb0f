package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DiegoMarin025/EduTrack-SW/internal/models"
)

func TestUserRepositoryCreateDuplicateEmail(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO usuarios")).
		WillReturnError(&pq.Error{Code: "23505"})

	err := NewUserRepository(db).Create(context.Background(), &models.User{Name: "Ana", Email: "ana@example.com", Role: models.RoleStudent})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestUserRepositoryFindByEmail(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "nombre", "email", "password", "rol", "fecha_registro"}).
		AddRow("usr-1", "Ana", "ana@example.com", "secret", "alumno", time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("FROM usuarios WHERE email = $1")).
		WithArgs("ana@example.com").
		WillReturnRows(rows)

	user, err := NewUserRepository(db).FindByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, user.Role)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositorySearchStudents(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "nombre", "correo"}).
		AddRow("usr-1", "Ana", "ana@example.com")
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY nombre LIMIT 5")).
		WithArgs("alumno", "%ana%", "%ana%").
		WillReturnRows(rows)

	students, err := NewUserRepository(db).SearchStudents(context.Background(), " Ana ", 0)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "ana@example.com", students[0].Email)
	require.NoError(t, mock.ExpectationsWereMet())
}
