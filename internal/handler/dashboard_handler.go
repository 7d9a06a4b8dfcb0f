package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/DiegoMarin025/EduTrack-SW/internal/dto"
	"github.com/DiegoMarin025/EduTrack-SW/pkg/response"
)

type dashboardService interface {
	Student(ctx context.Context, studentID string) (*dto.StudentDashboardResponse, bool, error)
}

// DashboardHandler serves the student dashboard.
type DashboardHandler struct {
	service dashboardService
}

// NewDashboardHandler constructs a DashboardHandler.
func NewDashboardHandler(svc dashboardService) *DashboardHandler {
	return &DashboardHandler{service: svc}
}

// Student godoc
// @Summary Student dashboard
// @Description Subjects of the student's group with grade, status and the average of graded subjects
// @Tags Dashboard
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} dto.StudentDashboardResponse
// @Failure 404 {object} response.ErrorBody
// @Router /dashboard/{id} [get]
func (h *DashboardHandler) Student(c *gin.Context) {
	dashboard, hit, err := h.service.Student(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if hit {
		c.Header("X-Cache", "HIT")
	} else {
		c.Header("X-Cache", "MISS")
	}
	response.OK(c, dashboard)
}
