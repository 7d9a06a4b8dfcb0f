package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/DiegoMarin025/EduTrack-SW/internal/dto"
	"github.com/DiegoMarin025/EduTrack-SW/internal/service"
	"github.com/DiegoMarin025/EduTrack-SW/pkg/response"
)

type enrollmentService interface {
	Assign(ctx context.Context, req service.GroupMembershipRequest) (*dto.EnrollmentResponse, error)
	Remove(ctx context.Context, req service.GroupMembershipRequest) error
	StudentGroup(ctx context.Context, studentID string) (*dto.StudentGroupResponse, error)
}

// EnrollmentHandler exposes group membership endpoints.
type EnrollmentHandler struct {
	enrollments enrollmentService
}

// NewEnrollmentHandler constructs handler.
func NewEnrollmentHandler(enrollments enrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollments: enrollments}
}

// Assign godoc
// @Summary Enroll a student in a group or move them to it
// @Tags Groups
// @Accept json
// @Produce json
// @Param payload body service.GroupMembershipRequest true "Membership"
// @Success 200 {object} dto.EnrollmentResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /grupos/agregar_alumno [post]
func (h *EnrollmentHandler) Assign(c *gin.Context) {
	var req service.GroupMembershipRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.enrollments.Assign(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// Remove godoc
// @Summary Remove a student from a group
// @Tags Groups
// @Accept json
// @Produce json
// @Param payload body service.GroupMembershipRequest true "Membership"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.ErrorBody
// @Router /grupos/eliminar_alumno [post]
func (h *EnrollmentHandler) Remove(c *gin.Context) {
	var req service.GroupMembershipRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.enrollments.Remove(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, response.Message{Message: "student removed from group"})
}

// StudentGroup godoc
// @Summary Current group of a student
// @Tags Students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} dto.StudentGroupResponse
// @Router /alumnos/{id}/grupo [get]
func (h *EnrollmentHandler) StudentGroup(c *gin.Context) {
	result, err := h.enrollments.StudentGroup(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}
