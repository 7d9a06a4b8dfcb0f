package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DiegoMarin025/EduTrack-SW/internal/dto"
	appErrors "github.com/DiegoMarin025/EduTrack-SW/pkg/errors"
)

type fakeDashboardSrv struct {
	resp      *dto.StudentDashboardResponse
	hit       bool
	err       error
	studentID string
}

func (f *fakeDashboardSrv) Student(_ context.Context, studentID string) (*dto.StudentDashboardResponse, bool, error) {
	f.studentID = studentID
	return f.resp, f.hit, f.err
}

func TestDashboardHandlerStudent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	grade := 8.0
	srv := &fakeDashboardSrv{
		resp: &dto.StudentDashboardResponse{
			Average: 8,
			Student: dto.DashboardStudent{Name: "Ana", Program: "Computer Science", EnrollmentNo: "s-1"},
			Subjects: []dto.DashboardSubject{
				{Subject: "Math", Grade: &grade, Status: dto.SubjectApproved},
				{Subject: "History", Status: dto.SubjectPending},
			},
		},
		hit: true,
	}
	handler := NewDashboardHandler(srv)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/dashboard/s-1", nil)
	c.Params = gin.Params{{Key: "id", Value: "s-1"}}

	handler.Student(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "s-1", srv.studentID)
	assert.Equal(t, "HIT", rec.Header().Get("X-Cache"))

	var body dto.StudentDashboardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 8.0, body.Average)
	require.Len(t, body.Subjects, 2)
	assert.Nil(t, body.Subjects[1].Grade)
	assert.Equal(t, dto.SubjectPending, body.Subjects[1].Status)
}

func TestDashboardHandlerStudentMiss(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewDashboardHandler(&fakeDashboardSrv{resp: &dto.StudentDashboardResponse{Subjects: []dto.DashboardSubject{}}})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/dashboard/s-1", nil)
	c.Params = gin.Params{{Key: "id", Value: "s-1"}}

	handler.Student(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "MISS", rec.Header().Get("X-Cache"))
}

func TestDashboardHandlerStudentNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewDashboardHandler(&fakeDashboardSrv{err: appErrors.Clone(appErrors.ErrNotFound, "student not found")})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/dashboard/nope", nil)
	c.Params = gin.Params{{Key: "id", Value: "nope"}}

	handler.Student(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Header().Get("X-Cache"))
}
