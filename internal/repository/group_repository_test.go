package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DiegoMarin025/EduTrack-SW/internal/models"
)

func TestGroupRepositoryListClassSectionsByTeacher(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "grupo_id", "nombre", "materia"}).
		AddRow("cls-1", "grp-1", "3A", "Algebra").
		AddRow("cls-2", "grp-2", "3B", "Physics")
	mock.ExpectQuery(regexp.QuoteMeta("WHERE mg.profesor_id = $1 ORDER BY g.nombre ASC, m.nombre ASC")).
		WithArgs("tch-1").
		WillReturnRows(rows)

	sections, err := NewGroupRepository(db).ListClassSections(context.Background(), "tch-1")
	require.NoError(t, err)
	require.Len(t, sections, 2)
	assert.Equal(t, "Algebra", sections[0].Subject)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGroupRepositoryListClassSectionsWithoutTeacher(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("JOIN materias m ON mg.materia_id = m.id ORDER BY g.nombre ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "grupo_id", "nombre", "materia"}))

	sections, err := NewGroupRepository(db).ListClassSections(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, sections)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGroupRepositoryFindClassSubject(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE mg.id = $1")).
		WithArgs("cls-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "nombre"}).AddRow("sub-1", "Algebra"))

	subject, err := NewGroupRepository(db).FindClassSubject(context.Background(), "cls-1")
	require.NoError(t, err)
	assert.Equal(t, "sub-1", subject.SubjectID)
	assert.Equal(t, "Algebra", subject.SubjectName)
}

func TestGroupRepositoryClassSectionExists(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM materias_grupos WHERE id = $1")).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	exists, err := NewGroupRepository(db).ClassSectionExists(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGroupRepositoryCreateClassSectionWithoutTeacher(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO materias_grupos")).
		WithArgs(sqlmock.AnyArg(), "grp-1", "sub-1", nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	section := &models.ClassSection{GroupID: "grp-1", SubjectID: "sub-1"}
	require.NoError(t, NewGroupRepository(db).CreateClassSection(context.Background(), section))
	assert.NotEmpty(t, section.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}
