package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DiegoMarin025/EduTrack-SW/internal/dto"
	"github.com/DiegoMarin025/EduTrack-SW/internal/models"
	"github.com/DiegoMarin025/EduTrack-SW/internal/service"
	"github.com/DiegoMarin025/EduTrack-SW/pkg/response"
)

type gradeService interface {
	Upsert(ctx context.Context, req service.UpsertGradeRequest) (*dto.GradeUpsertResponse, error)
	Get(ctx context.Context, studentID, classSectionID string) (*dto.GradeLookupResponse, error)
}

// GradeHandler exposes grade endpoints.
type GradeHandler struct {
	grades gradeService
}

// NewGradeHandler constructs handler.
func NewGradeHandler(grades gradeService) *GradeHandler {
	return &GradeHandler{grades: grades}
}

// Upsert godoc
// @Summary Record or update a final grade
// @Tags Grades
// @Accept json
// @Produce json
// @Param payload body service.UpsertGradeRequest true "Grade payload"
// @Success 200 {object} dto.GradeUpsertResponse
// @Success 201 {object} dto.GradeUpsertResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /calificaciones [post]
func (h *GradeHandler) Upsert(c *gin.Context) {
	var req service.UpsertGradeRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.grades.Upsert(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	status := http.StatusOK
	if result.Status == models.GradeCreated {
		status = http.StatusCreated
	}
	response.JSON(c, status, result)
}

// Get godoc
// @Summary Fetch a student's grade for a class section
// @Tags Grades
// @Produce json
// @Param alumno_id query string true "Student ID"
// @Param grupo_id query string true "Class section ID"
// @Success 200 {object} dto.GradeLookupResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /calificaciones [get]
func (h *GradeHandler) Get(c *gin.Context) {
	result, err := h.grades.Get(c.Request.Context(), c.Query("alumno_id"), c.Query("grupo_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}
