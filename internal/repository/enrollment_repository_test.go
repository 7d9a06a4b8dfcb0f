package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DiegoMarin025/EduTrack-SW/internal/models"
)

func TestEnrollmentRepositoryFindByStudent(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "alumno_id", "grupo_id", "fecha_inscripcion"}).
		AddRow("enr-1", "stu-1", "grp-1", time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("FROM alumnos_grupos WHERE alumno_id = $1")).
		WithArgs("stu-1").
		WillReturnRows(rows)

	enrollment, err := NewEnrollmentRepository(db).FindByStudent(context.Background(), "stu-1")
	require.NoError(t, err)
	assert.Equal(t, "grp-1", enrollment.GroupID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentRepositoryFindStudentGroup(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "nombre"}).AddRow("grp-1", "3A")
	mock.ExpectQuery(regexp.QuoteMeta("JOIN grupos g ON ag.grupo_id = g.id WHERE ag.alumno_id = $1")).
		WithArgs("stu-1").
		WillReturnRows(rows)

	group, err := NewEnrollmentRepository(db).FindStudentGroup(context.Background(), "stu-1")
	require.NoError(t, err)
	assert.Equal(t, "3A", group.GroupName)
}

func TestEnrollmentRepositoryCreateMapsMySQLDuplicate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO alumnos_grupos")).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	err := NewEnrollmentRepository(db).Create(context.Background(), &models.Enrollment{StudentID: "stu-1", GroupID: "grp-1"})
	assert.True(t, errors.Is(err, ErrDuplicate))
}

func TestEnrollmentRepositoryMoveAndDelete(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	now := time.Now().UTC()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE alumnos_grupos SET grupo_id = $1, fecha_inscripcion = $2 WHERE id = $3")).
		WithArgs("grp-2", now, "enr-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM alumnos_grupos WHERE id = $1")).
		WithArgs("enr-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewEnrollmentRepository(db)
	require.NoError(t, repo.UpdateGroup(context.Background(), "enr-1", "grp-2", now))
	require.NoError(t, repo.Delete(context.Background(), "enr-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}
