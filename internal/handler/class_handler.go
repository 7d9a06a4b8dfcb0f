package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/DiegoMarin025/EduTrack-SW/internal/models"
	"github.com/DiegoMarin025/EduTrack-SW/internal/service"
	"github.com/DiegoMarin025/EduTrack-SW/pkg/response"
)

type classService interface {
	CreateGroup(ctx context.Context, req service.CreateGroupRequest) (*models.Group, error)
	ListGroups(ctx context.Context) ([]models.Group, error)
	ListClassSections(ctx context.Context, teacherID string) ([]models.ClassSectionDetail, error)
	CreateClass(ctx context.Context, req service.CreateClassRequest) (*models.ClassSection, error)
	ClassRoster(ctx context.Context, classSectionID string) ([]models.StudentSummary, error)
	TeacherStats(ctx context.Context, teacherID string) (*models.TeacherStats, error)
}

// ClassHandler exposes groups, class sections and teacher stats.
type ClassHandler struct {
	classes classService
}

// NewClassHandler constructs handler.
func NewClassHandler(classes classService) *ClassHandler {
	return &ClassHandler{classes: classes}
}

// ListClassSections godoc
// @Summary List class sections
// @Tags Groups
// @Produce json
// @Param profesor_id query string false "Only sections taught by this teacher"
// @Success 200 {array} models.ClassSectionDetail
// @Router /grupos [get]
func (h *ClassHandler) ListClassSections(c *gin.Context) {
	sections, err := h.classes.ListClassSections(c.Request.Context(), c.Query("profesor_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, sections)
}

// CreateGroup godoc
// @Summary Create a group
// @Tags Groups
// @Accept json
// @Produce json
// @Param payload body service.CreateGroupRequest true "Group"
// @Success 201 {object} models.Group
// @Router /grupos [post]
func (h *ClassHandler) CreateGroup(c *gin.Context) {
	var req service.CreateGroupRequest
	if !bindJSON(c, &req) {
		return
	}
	group, err := h.classes.CreateGroup(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, group)
}

// ListGroups godoc
// @Summary Groups available for enrollment
// @Tags Groups
// @Produce json
// @Success 200 {array} models.Group
// @Router /grupos_disponibles [get]
func (h *ClassHandler) ListGroups(c *gin.Context) {
	groups, err := h.classes.ListGroups(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, groups)
}

// Roster godoc
// @Summary Students of a class section
// @Tags Groups
// @Produce json
// @Param clase_id path string true "Class section ID"
// @Success 200 {array} models.StudentSummary
// @Failure 404 {object} response.ErrorBody
// @Router /grupos/{clase_id}/alumnos [get]
func (h *ClassHandler) Roster(c *gin.Context) {
	students, err := h.classes.ClassRoster(c.Request.Context(), c.Param("clase_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, students)
}

// CreateClass godoc
// @Summary Assign a subject to a group
// @Tags Groups
// @Accept json
// @Produce json
// @Param payload body service.CreateClassRequest true "Class section"
// @Success 201 {object} models.ClassSection
// @Failure 404 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody
// @Router /clases/crear [post]
func (h *ClassHandler) CreateClass(c *gin.Context) {
	var req service.CreateClassRequest
	if !bindJSON(c, &req) {
		return
	}
	section, err := h.classes.CreateClass(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, section)
}

// TeacherStats godoc
// @Summary Group and student counts of a teacher
// @Tags Teachers
// @Produce json
// @Param id path string true "Teacher ID"
// @Success 200 {object} models.TeacherStats
// @Router /profesor/{id}/stats [get]
func (h *ClassHandler) TeacherStats(c *gin.Context) {
	stats, err := h.classes.TeacherStats(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, stats)
}
