package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/DiegoMarin025/EduTrack-SW/internal/models"
	"github.com/DiegoMarin025/EduTrack-SW/internal/service"
	"github.com/DiegoMarin025/EduTrack-SW/pkg/response"
)

type supportService interface {
	Submit(ctx context.Context, req service.SupportRequest) (*models.SupportReport, error)
}

// SupportHandler accepts support desk reports.
type SupportHandler struct {
	support supportService
}

// NewSupportHandler constructs handler.
func NewSupportHandler(support supportService) *SupportHandler {
	return &SupportHandler{support: support}
}

// Submit godoc
// @Summary Send a support report
// @Tags Support
// @Accept json
// @Produce json
// @Param payload body service.SupportRequest true "Report"
// @Success 201 {object} response.Message
// @Router /reportes_soporte [post]
func (h *SupportHandler) Submit(c *gin.Context) {
	var req service.SupportRequest
	if !bindJSON(c, &req) {
		return
	}
	report, err := h.support.Submit(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, response.Message{Message: "report received", ID: report.ID})
}
