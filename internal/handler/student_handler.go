package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/DiegoMarin025/EduTrack-SW/internal/dto"
	"github.com/DiegoMarin025/EduTrack-SW/internal/models"
	"github.com/DiegoMarin025/EduTrack-SW/internal/service"
	"github.com/DiegoMarin025/EduTrack-SW/pkg/response"
)

type studentSearchService interface {
	SearchStudents(ctx context.Context, term string) ([]models.StudentSummary, error)
}

type historyService interface {
	History(ctx context.Context, studentID string) (*dto.AcademicHistoryResponse, error)
	Export(ctx context.Context, studentID, format string) (*service.ExportedFile, error)
}

// StudentHandler serves student lookups and academic history.
type StudentHandler struct {
	users   studentSearchService
	history historyService
}

// NewStudentHandler constructs handler.
func NewStudentHandler(users studentSearchService, history historyService) *StudentHandler {
	return &StudentHandler{users: users, history: history}
}

// Search godoc
// @Summary Search students by name or email
// @Tags Students
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {array} models.StudentSummary
// @Router /alumnos/buscar [get]
func (h *StudentHandler) Search(c *gin.Context) {
	students, err := h.users.SearchStudents(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, students)
}

// History godoc
// @Summary Academic history grouped by cohort
// @Tags Students
// @Produce json
// @Param alumnoId path string true "Student ID"
// @Success 200 {object} dto.AcademicHistoryResponse
// @Router /historial_academico/{alumnoId} [get]
func (h *StudentHandler) History(c *gin.Context) {
	history, err := h.history.History(c.Request.Context(), c.Param("alumnoId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, history)
}

// ExportHistory godoc
// @Summary Download the academic history
// @Tags Students
// @Produce text/csv
// @Produce application/pdf
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param alumnoId path string true "Student ID"
// @Param format query string false "csv, pdf or xlsx"
// @Success 200 {file} file
// @Router /historial_academico/{alumnoId}/export [get]
func (h *StudentHandler) ExportHistory(c *gin.Context) {
	file, err := h.history.Export(c.Request.Context(), c.Param("alumnoId"), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.File(c, file.Filename, file.ContentType, file.Payload)
}
