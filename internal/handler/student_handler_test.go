package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DiegoMarin025/EduTrack-SW/internal/dto"
	"github.com/DiegoMarin025/EduTrack-SW/internal/models"
	"github.com/DiegoMarin025/EduTrack-SW/internal/service"
	appErrors "github.com/DiegoMarin025/EduTrack-SW/pkg/errors"
)

type fakeStudentSearch struct {
	term   string
	result []models.StudentSummary
}

func (f *fakeStudentSearch) SearchStudents(_ context.Context, term string) ([]models.StudentSummary, error) {
	f.term = term
	return f.result, nil
}

type fakeHistorySrv struct {
	history    *dto.AcademicHistoryResponse
	file       *service.ExportedFile
	err        error
	lastFormat string
}

func (f *fakeHistorySrv) History(context.Context, string) (*dto.AcademicHistoryResponse, error) {
	return f.history, f.err
}

func (f *fakeHistorySrv) Export(_ context.Context, _ string, format string) (*service.ExportedFile, error) {
	f.lastFormat = format
	return f.file, f.err
}

func studentRouter(t *testing.T, users *fakeStudentSearch, history *fakeHistorySrv) http.Handler {
	r := newTestRouter(t)
	h := NewStudentHandler(users, history)
	r.GET("/alumnos/buscar", h.Search)
	r.GET("/historial_academico/:alumnoId", h.History)
	r.GET("/historial_academico/:alumnoId/export", h.ExportHistory)
	return r
}

func TestStudentHandlerSearch(t *testing.T) {
	users := &fakeStudentSearch{result: []models.StudentSummary{{ID: "s-1", Name: "Ana Torres", Email: "ana@example.com"}}}
	rec := performRequest(studentRouter(t, users, &fakeHistorySrv{}), http.MethodGet, "/alumnos/buscar?q=ana", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ana", users.term)
	assert.Contains(t, rec.Body.String(), "Ana Torres")
}

func TestStudentHandlerHistory(t *testing.T) {
	history := &fakeHistorySrv{history: &dto.AcademicHistoryResponse{Terms: map[string][]dto.HistorySubject{
		"1A": {{Name: "Math", Teacher: "Luis", Term: "1A", Evaluations: []dto.HistoryEvaluation{{Name: "Final", Weight: 100, Grade: 9}}}},
	}}}
	rec := performRequest(studentRouter(t, &fakeStudentSearch{}, history), http.MethodGet, "/historial_academico/s-1", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"semestres"`)
	assert.Contains(t, rec.Body.String(), `"profesor":"Luis"`)
}

func TestStudentHandlerExportHistory(t *testing.T) {
	t.Run("csv attachment", func(t *testing.T) {
		history := &fakeHistorySrv{file: &service.ExportedFile{Filename: "historial_s-1.csv", ContentType: "text/csv", Payload: []byte("Group,Subject,Teacher,Grade\n")}}
		rec := performRequest(studentRouter(t, &fakeStudentSearch{}, history), http.MethodGet, "/historial_academico/s-1/export?format=csv", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "csv", history.lastFormat)
		assert.Equal(t, `attachment; filename="historial_s-1.csv"`, rec.Header().Get("Content-Disposition"))
		assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
		assert.Equal(t, "Group,Subject,Teacher,Grade\n", rec.Body.String())
	})

	t.Run("unsupported format", func(t *testing.T) {
		history := &fakeHistorySrv{err: appErrors.Clone(appErrors.ErrValidation, "unsupported export format")}
		rec := performRequest(studentRouter(t, &fakeStudentSearch{}, history), http.MethodGet, "/historial_academico/s-1/export?format=doc", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
