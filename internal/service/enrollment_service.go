package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/DiegoMarin025/EduTrack-SW/internal/dto"
	"github.com/DiegoMarin025/EduTrack-SW/internal/models"
	"github.com/DiegoMarin025/EduTrack-SW/internal/repository"
	appErrors "github.com/DiegoMarin025/EduTrack-SW/pkg/errors"
)

type enrollmentRepository interface {
	FindByStudent(ctx context.Context, studentID string) (*models.Enrollment, error)
	FindStudentGroup(ctx context.Context, studentID string) (*models.StudentGroup, error)
	Create(ctx context.Context, enrollment *models.Enrollment) error
	UpdateGroup(ctx context.Context, id, groupID string, enrolledAt time.Time) error
	Delete(ctx context.Context, id string) error
}

type userReader interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

type groupReader interface {
	FindByID(ctx context.Context, id string) (*models.Group, error)
}

// GroupMembershipRequest identifies a student and a group.
type GroupMembershipRequest struct {
	StudentID string `json:"alumno_id"`
	GroupID   string `json:"grupo_id"`
}

func (r *GroupMembershipRequest) normalize() error {
	r.StudentID = strings.TrimSpace(r.StudentID)
	r.GroupID = strings.TrimSpace(r.GroupID)
	if r.StudentID == "" || r.GroupID == "" {
		return appErrors.Clone(appErrors.ErrMissingFields, "alumno_id and grupo_id are required")
	}
	return nil
}

// EnrollmentService manages the single group membership of each student.
type EnrollmentService struct {
	enrollments enrollmentRepository
	users       userReader
	groups      groupReader
	notifier    Notifier
	cache       *CacheService
	logger      *zap.Logger
	now         func() time.Time
}

// NewEnrollmentService constructs EnrollmentService.
func NewEnrollmentService(enrollments enrollmentRepository, users userReader, groups groupReader, notifier Notifier, cache *CacheService, logger *zap.Logger) *EnrollmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentService{
		enrollments: enrollments,
		users:       users,
		groups:      groups,
		notifier:    notifier,
		cache:       cache,
		logger:      logger,
		now:         time.Now,
	}
}

// Assign enrolls the student in the group, moving them when they already belong to one.
func (s *EnrollmentService) Assign(ctx context.Context, req GroupMembershipRequest) (*dto.EnrollmentResponse, error) {
	if err := req.normalize(); err != nil {
		return nil, err
	}
	if err := s.ensureStudent(ctx, req.StudentID); err != nil {
		return nil, err
	}
	group, err := s.groups.FindByID(ctx, req.GroupID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "group not found")
		}
		return nil, appErrors.Persistence(err, "failed to load group")
	}

	current, err := s.currentEnrollment(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	action := models.EnrollmentMoved
	if current == nil {
		err := s.enrollments.Create(ctx, &models.Enrollment{StudentID: req.StudentID, GroupID: group.ID, EnrolledAt: now})
		switch {
		case err == nil:
			action = models.EnrollmentEnrolled
		case errors.Is(err, repository.ErrDuplicate):
			if current, err = s.currentEnrollment(ctx, req.StudentID); err != nil {
				return nil, err
			}
			if current == nil {
				return nil, appErrors.Persistence(repository.ErrDuplicate, "failed to load concurrent enrollment")
			}
		default:
			return nil, appErrors.Persistence(err, "failed to enroll student")
		}
	}
	if action == models.EnrollmentMoved {
		if err := s.enrollments.UpdateGroup(ctx, current.ID, group.ID, now); err != nil {
			return nil, appErrors.Persistence(err, "failed to move student")
		}
	}

	_ = s.cache.Invalidate(ctx, dashboardCacheKey(req.StudentID))
	var message string
	if action == models.EnrollmentEnrolled {
		message = fmt.Sprintf("You have been enrolled in group %s.", group.Name)
	} else {
		message = fmt.Sprintf("You have been moved to group %s.", group.Name)
	}
	s.notifier.Emit(ctx, req.StudentID, "Group Assignment", message)

	return &dto.EnrollmentResponse{Action: action, Message: fmt.Sprintf("student %s in group %s", action, group.Name)}, nil
}

// Remove drops the student's membership in the given group.
func (s *EnrollmentService) Remove(ctx context.Context, req GroupMembershipRequest) error {
	if err := req.normalize(); err != nil {
		return err
	}
	current, err := s.currentEnrollment(ctx, req.StudentID)
	if err != nil {
		return err
	}
	if current == nil || current.GroupID != req.GroupID {
		return appErrors.Clone(appErrors.ErrNotFound, "student is not enrolled in this group")
	}
	if err := s.enrollments.Delete(ctx, current.ID); err != nil {
		return appErrors.Persistence(err, "failed to remove student from group")
	}

	_ = s.cache.Invalidate(ctx, dashboardCacheKey(req.StudentID))
	groupName := req.GroupID
	if group, err := s.groups.FindByID(ctx, req.GroupID); err == nil {
		groupName = group.Name
	} else {
		s.logger.Warn("group lookup failed after removal", zap.String("group_id", req.GroupID), zap.Error(err))
	}
	s.notifier.Emit(ctx, req.StudentID, "Group Removal", fmt.Sprintf("You have been removed from group %s.", groupName))
	return nil
}

// StudentGroup reports the group the student currently belongs to, if any.
func (s *EnrollmentService) StudentGroup(ctx context.Context, studentID string) (*dto.StudentGroupResponse, error) {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return nil, appErrors.Clone(appErrors.ErrMissingFields, "student id is required")
	}
	group, err := s.enrollments.FindStudentGroup(ctx, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &dto.StudentGroupResponse{Enrolled: false}, nil
		}
		return nil, appErrors.Persistence(err, "failed to load student group")
	}
	return &dto.StudentGroupResponse{Enrolled: true, GroupID: group.GroupID, GroupName: group.GroupName}, nil
}

func (s *EnrollmentService) ensureStudent(ctx context.Context, studentID string) error {
	user, err := s.users.FindByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return appErrors.Persistence(err, "failed to load student")
	}
	if user.Role != models.RoleStudent {
		return appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	return nil
}

func (s *EnrollmentService) currentEnrollment(ctx context.Context, studentID string) (*models.Enrollment, error) {
	enrollment, err := s.enrollments.FindByStudent(ctx, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, appErrors.Persistence(err, "failed to load enrollment")
	}
	return enrollment, nil
}
