package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/DiegoMarin025/EduTrack-SW/internal/dto"
	"github.com/DiegoMarin025/EduTrack-SW/internal/models"
	"github.com/DiegoMarin025/EduTrack-SW/internal/repository"
	appErrors "github.com/DiegoMarin025/EduTrack-SW/pkg/errors"
)

const failingWarning = "You are at risk of failing."

type gradeRepository interface {
	FindByStudentAndSubject(ctx context.Context, studentID, subjectID string) (*models.GradeRecord, error)
	Create(ctx context.Context, record *models.GradeRecord) error
	UpdateGrade(ctx context.Context, id string, grade float64, recordedAt time.Time) error
}

type classSubjectResolver interface {
	FindClassSubject(ctx context.Context, classSectionID string) (*models.ClassSubject, error)
}

// UpsertGradeRequest is the payload of a grade submission. Grade is a pointer so zero stays valid.
type UpsertGradeRequest struct {
	StudentID      string   `json:"alumno_id"`
	ClassSectionID string   `json:"grupo_id"`
	Grade          *float64 `json:"calificacion" validate:"required,gte=0,lte=10"`
}

// GradeService records final grades and notifies students about them.
type GradeService struct {
	grades    gradeRepository
	classes   classSubjectResolver
	notifier  Notifier
	cache     *CacheService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewGradeService constructs GradeService.
func NewGradeService(grades gradeRepository, classes classSubjectResolver, notifier Notifier, cache *CacheService, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *GradeService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GradeService{
		grades:    grades,
		classes:   classes,
		notifier:  notifier,
		cache:     cache,
		metrics:   metrics,
		validator: validate,
		logger:    logger,
		now:       time.Now,
	}
}

// Upsert creates the student's grade for the class section's subject or updates it in place.
func (s *GradeService) Upsert(ctx context.Context, req UpsertGradeRequest) (*dto.GradeUpsertResponse, error) {
	req.StudentID = strings.TrimSpace(req.StudentID)
	req.ClassSectionID = strings.TrimSpace(req.ClassSectionID)
	if req.StudentID == "" || req.ClassSectionID == "" || req.Grade == nil {
		return nil, appErrors.Clone(appErrors.ErrMissingFields, "alumno_id, grupo_id and calificacion are required")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "calificacion must be between 0 and 10")
	}
	grade := roundGrade(*req.Grade)

	subject, err := s.classes.FindClassSubject(ctx, req.ClassSectionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "class section not found")
		}
		return nil, appErrors.Persistence(err, "failed to resolve class section")
	}

	existing, err := s.findGrade(ctx, req.StudentID, subject.SubjectID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	if existing == nil {
		record := &models.GradeRecord{StudentID: req.StudentID, SubjectID: subject.SubjectID, Grade: grade, RecordedAt: now}
		err := s.grades.Create(ctx, record)
		switch {
		case err == nil:
			s.afterWrite(ctx, req.StudentID)
			s.notifier.Emit(ctx, req.StudentID, newGradeTitle(grade), newGradeMessage(subject.SubjectName, grade))
			return s.result(models.GradeCreated, record.ID, "grade recorded"), nil
		case errors.Is(err, repository.ErrDuplicate):
			s.logger.Info("grade inserted concurrently, updating instead",
				zap.String("student_id", req.StudentID), zap.String("subject_id", subject.SubjectID))
			existing, err = s.findGrade(ctx, req.StudentID, subject.SubjectID)
			if err != nil {
				return nil, err
			}
			if existing == nil {
				return nil, appErrors.Persistence(repository.ErrDuplicate, "failed to load concurrently created grade")
			}
		default:
			return nil, appErrors.Persistence(err, "failed to create grade")
		}
	}

	if models.SameGrade(existing.Grade, grade) {
		return s.result(models.GradeUnchanged, existing.ID, "grade unchanged"), nil
	}

	if err := s.grades.UpdateGrade(ctx, existing.ID, grade, now); err != nil {
		return nil, appErrors.Persistence(err, "failed to update grade")
	}
	s.afterWrite(ctx, req.StudentID)
	s.notifier.Emit(ctx, req.StudentID, changedGradeTitle(grade), changedGradeMessage(subject.SubjectName, existing.Grade, grade))
	return s.result(models.GradeUpdated, existing.ID, "grade updated"), nil
}

// Get returns the stored grade of a student for the class section's subject.
func (s *GradeService) Get(ctx context.Context, studentID, classSectionID string) (*dto.GradeLookupResponse, error) {
	studentID = strings.TrimSpace(studentID)
	classSectionID = strings.TrimSpace(classSectionID)
	if studentID == "" || classSectionID == "" {
		return nil, appErrors.Clone(appErrors.ErrMissingFields, "alumno_id and grupo_id are required")
	}
	subject, err := s.classes.FindClassSubject(ctx, classSectionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "class section not found")
		}
		return nil, appErrors.Persistence(err, "failed to resolve class section")
	}
	record, err := s.findGrade(ctx, studentID, subject.SubjectID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return &dto.GradeLookupResponse{}, nil
	}
	grade := record.Grade
	return &dto.GradeLookupResponse{Grade: &grade, RecordID: record.ID}, nil
}

func (s *GradeService) findGrade(ctx context.Context, studentID, subjectID string) (*models.GradeRecord, error) {
	record, err := s.grades.FindByStudentAndSubject(ctx, studentID, subjectID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, appErrors.Persistence(err, "failed to load grade")
	}
	return record, nil
}

func (s *GradeService) afterWrite(ctx context.Context, studentID string) {
	_ = s.cache.Invalidate(ctx, dashboardCacheKey(studentID))
}

func (s *GradeService) result(status models.GradeUpsertStatus, recordID, message string) *dto.GradeUpsertResponse {
	s.metrics.RecordGradeUpsert(status)
	return &dto.GradeUpsertResponse{Status: status, RecordID: recordID, Message: message}
}

func roundGrade(v float64) float64 {
	return math.Round(v*100) / 100
}

func formatGrade(v float64) string {
	return strconv.FormatFloat(roundGrade(v), 'f', -1, 64)
}

func newGradeTitle(grade float64) string {
	if models.IsFailing(grade) {
		return "Academic Alert"
	}
	return "New Grade"
}

func newGradeMessage(subject string, grade float64) string {
	msg := fmt.Sprintf("You received a grade of %s in %s.", formatGrade(grade), subject)
	if models.IsFailing(grade) {
		msg += " " + failingWarning
	}
	return msg
}

func changedGradeTitle(grade float64) string {
	if models.IsFailing(grade) {
		return "Academic Alert: Failing Grade"
	}
	return "Grade Updated"
}

func changedGradeMessage(subject string, previous, grade float64) string {
	msg := fmt.Sprintf("Your grade in %s changed from %s to %s.", subject, formatGrade(previous), formatGrade(grade))
	if models.IsFailing(grade) {
		msg += " " + failingWarning
	}
	return msg
}
