package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DiegoMarin025/EduTrack-SW/internal/models"
	appErrors "github.com/DiegoMarin025/EduTrack-SW/pkg/errors"
)

type fakeSupportRepo struct {
	reports []models.SupportReport
}

func (f *fakeSupportRepo) Create(_ context.Context, report *models.SupportReport) error {
	report.ID = "rep-1"
	f.reports = append(f.reports, *report)
	return nil
}

type fakeStudentSearch struct {
	term  string
	limit int
}

func (f *fakeStudentSearch) SearchStudents(_ context.Context, term string, limit int) ([]models.StudentSummary, error) {
	f.term, f.limit = term, limit
	return []models.StudentSummary{{ID: "stu-1", Name: "Ana"}}, nil
}

func TestSupportServiceSubmit(t *testing.T) {
	repo := &fakeSupportRepo{}
	svc := NewSupportService(repo, nil, nil)
	empty := ""

	report, err := svc.Submit(context.Background(), SupportRequest{UserID: &empty, Email: "ana@example.com", Message: " cannot log in "})
	require.NoError(t, err)
	assert.Equal(t, "rep-1", report.ID)
	assert.Nil(t, repo.reports[0].UserID)
	assert.Equal(t, "cannot log in", repo.reports[0].Message)

	_, err = svc.Submit(context.Background(), SupportRequest{Email: "ana@example.com"})
	assert.True(t, errors.Is(err, appErrors.ErrMissingFields))

	_, err = svc.Submit(context.Background(), SupportRequest{Email: "nope", Message: "hi"})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}

func TestUserServiceSearchStudents(t *testing.T) {
	repo := &fakeStudentSearch{}
	svc := NewUserService(repo, nil)

	students, err := svc.SearchStudents(context.Background(), " an ")
	require.NoError(t, err)
	assert.Len(t, students, 1)
	assert.Equal(t, "an", repo.term)
	assert.Equal(t, 5, repo.limit)

	none, err := svc.SearchStudents(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, none)
}
