package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/DiegoMarin025/EduTrack-SW/internal/models"
	"github.com/DiegoMarin025/EduTrack-SW/internal/repository"
	appErrors "github.com/DiegoMarin025/EduTrack-SW/pkg/errors"
)

type groupRepository interface {
	Create(ctx context.Context, group *models.Group) error
	FindByID(ctx context.Context, id string) (*models.Group, error)
	List(ctx context.Context) ([]models.Group, error)
	CreateClassSection(ctx context.Context, section *models.ClassSection) error
	ListClassSections(ctx context.Context, teacherID string) ([]models.ClassSectionDetail, error)
	ListStudentsByClassSection(ctx context.Context, classSectionID string) ([]models.StudentSummary, error)
	ClassSectionExists(ctx context.Context, classSectionID string) (bool, error)
}

type subjectRepository interface {
	FindByName(ctx context.Context, name string) (*models.Subject, error)
	Create(ctx context.Context, subject *models.Subject) error
}

type teacherStatsReader interface {
	TeacherStats(ctx context.Context, teacherID string) (*models.TeacherStats, error)
}

// CreateGroupRequest is the payload for a new group.
type CreateGroupRequest struct {
	Name string `json:"nombre"`
}

// CreateClassRequest links a subject, looked up or created by name, to a group.
type CreateClassRequest struct {
	GroupID     string  `json:"grupo_id"`
	SubjectName string  `json:"nombre_materia"`
	TeacherID   *string `json:"profesor_id"`
}

// ClassService manages groups, subjects and the class sections joining them.
type ClassService struct {
	groups   groupRepository
	subjects subjectRepository
	stats    teacherStatsReader
	logger   *zap.Logger
	codeGen  func(subjectName string) string
}

// NewClassService constructs ClassService.
func NewClassService(groups groupRepository, subjects subjectRepository, stats teacherStatsReader, logger *zap.Logger) *ClassService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassService{groups: groups, subjects: subjects, stats: stats, logger: logger, codeGen: subjectCode}
}

// CreateGroup adds a group.
func (s *ClassService) CreateGroup(ctx context.Context, req CreateGroupRequest) (*models.Group, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, appErrors.Clone(appErrors.ErrMissingFields, "nombre is required")
	}
	group := &models.Group{Name: name, CreatedAt: time.Now().UTC()}
	if err := s.groups.Create(ctx, group); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "group already exists")
		}
		return nil, appErrors.Persistence(err, "failed to create group")
	}
	return group, nil
}

// ListGroups returns every group ordered by name.
func (s *ClassService) ListGroups(ctx context.Context) ([]models.Group, error) {
	groups, err := s.groups.List(ctx)
	if err != nil {
		return nil, appErrors.Persistence(err, "failed to list groups")
	}
	return groups, nil
}

// ListClassSections returns class sections, optionally those taught by one teacher.
func (s *ClassService) ListClassSections(ctx context.Context, teacherID string) ([]models.ClassSectionDetail, error) {
	sections, err := s.groups.ListClassSections(ctx, strings.TrimSpace(teacherID))
	if err != nil {
		return nil, appErrors.Persistence(err, "failed to list class sections")
	}
	return sections, nil
}

// CreateClass reuses the subject with the exact name or creates it, then links it to the group.
func (s *ClassService) CreateClass(ctx context.Context, req CreateClassRequest) (*models.ClassSection, error) {
	req.GroupID = strings.TrimSpace(req.GroupID)
	req.SubjectName = strings.TrimSpace(req.SubjectName)
	if req.GroupID == "" || req.SubjectName == "" {
		return nil, appErrors.Clone(appErrors.ErrMissingFields, "grupo_id and nombre_materia are required")
	}
	if req.TeacherID != nil && strings.TrimSpace(*req.TeacherID) == "" {
		req.TeacherID = nil
	}

	if _, err := s.groups.FindByID(ctx, req.GroupID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "group not found")
		}
		return nil, appErrors.Persistence(err, "failed to load group")
	}

	subject, err := s.resolveSubject(ctx, req.SubjectName)
	if err != nil {
		return nil, err
	}

	section := &models.ClassSection{GroupID: req.GroupID, SubjectID: subject.ID, TeacherID: req.TeacherID}
	if err := s.groups.CreateClassSection(ctx, section); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "subject already assigned to group")
		}
		return nil, appErrors.Persistence(err, "failed to create class section")
	}
	return section, nil
}

// ClassRoster lists the students enrolled in the class section's group.
func (s *ClassService) ClassRoster(ctx context.Context, classSectionID string) ([]models.StudentSummary, error) {
	classSectionID = strings.TrimSpace(classSectionID)
	if classSectionID == "" {
		return nil, appErrors.Clone(appErrors.ErrMissingFields, "clase_id is required")
	}
	exists, err := s.groups.ClassSectionExists(ctx, classSectionID)
	if err != nil {
		return nil, appErrors.Persistence(err, "failed to load class section")
	}
	if !exists {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "class section not found")
	}
	students, err := s.groups.ListStudentsByClassSection(ctx, classSectionID)
	if err != nil {
		return nil, appErrors.Persistence(err, "failed to list class students")
	}
	return students, nil
}

// TeacherStats counts the groups and students a teacher works with.
func (s *ClassService) TeacherStats(ctx context.Context, teacherID string) (*models.TeacherStats, error) {
	teacherID = strings.TrimSpace(teacherID)
	if teacherID == "" {
		return nil, appErrors.Clone(appErrors.ErrMissingFields, "teacher id is required")
	}
	stats, err := s.stats.TeacherStats(ctx, teacherID)
	if err != nil {
		return nil, appErrors.Persistence(err, "failed to load teacher stats")
	}
	return stats, nil
}

func (s *ClassService) resolveSubject(ctx context.Context, name string) (*models.Subject, error) {
	subject, err := s.subjects.FindByName(ctx, name)
	if err == nil {
		return subject, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Persistence(err, "failed to look up subject")
	}

	subject = &models.Subject{Name: name, Code: s.codeGen(name)}
	if err := s.subjects.Create(ctx, subject); err != nil {
		if !errors.Is(err, repository.ErrDuplicate) {
			return nil, appErrors.Persistence(err, "failed to create subject")
		}
		// created by a concurrent request
		existing, findErr := s.subjects.FindByName(ctx, name)
		if findErr != nil {
			return nil, appErrors.Persistence(findErr, "failed to look up subject")
		}
		return existing, nil
	}
	s.logger.Info("subject created", zap.String("subject_id", subject.ID), zap.String("code", subject.Code))
	return subject, nil
}

// subjectCode is the first three letters of the name upper-cased plus a number below 1000.
func subjectCode(name string) string {
	prefix := name
	if utf8.RuneCountInString(prefix) > 3 {
		prefix = string([]rune(prefix)[:3])
	}
	return fmt.Sprintf("%s%d", strings.ToUpper(prefix), rand.Intn(1000))
}
