package service

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/DiegoMarin025/EduTrack-SW/internal/dto"
	"github.com/DiegoMarin025/EduTrack-SW/internal/models"
	appErrors "github.com/DiegoMarin025/EduTrack-SW/pkg/errors"
)

type subjectGradeReader interface {
	SubjectGrades(ctx context.Context, studentID string) ([]models.SubjectGradeRow, error)
}

// DashboardServiceConfig tunes dashboard behaviour.
type DashboardServiceConfig struct {
	CacheTTL    time.Duration
	ProgramName string
}

// DashboardService composes the student landing view.
type DashboardService struct {
	users  userReader
	grades subjectGradeReader
	cache  *CacheService
	logger *zap.Logger
	cfg    DashboardServiceConfig
}

// NewDashboardService constructs a DashboardService with sane defaults.
func NewDashboardService(users userReader, grades subjectGradeReader, cache *CacheService, logger *zap.Logger, cfg DashboardServiceConfig) *DashboardService {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	if cfg.ProgramName == "" {
		cfg.ProgramName = "Software"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{users: users, grades: grades, cache: cache, logger: logger, cfg: cfg}
}

func dashboardCacheKey(studentID string) string {
	return "dash:student:" + studentID
}

// Student returns the dashboard of a student and whether it was served from cache.
func (s *DashboardService) Student(ctx context.Context, studentID string) (*dto.StudentDashboardResponse, bool, error) {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return nil, false, appErrors.Clone(appErrors.ErrMissingFields, "student id is required")
	}

	key := dashboardCacheKey(studentID)
	var cached dto.StudentDashboardResponse
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		return &cached, true, nil
	}

	user, err := s.users.FindByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, false, appErrors.Persistence(err, "failed to load student")
	}
	if user.Role != models.RoleStudent {
		return nil, false, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}

	rows, err := s.grades.SubjectGrades(ctx, studentID)
	if err != nil {
		return nil, false, appErrors.Persistence(err, "failed to load subject grades")
	}

	dashboard := &dto.StudentDashboardResponse{
		Student: dto.DashboardStudent{
			Name:         user.Name,
			Program:      s.cfg.ProgramName,
			EnrollmentNo: user.ID,
		},
		Subjects: make([]dto.DashboardSubject, 0, len(rows)),
	}
	var sum float64
	var graded int
	for _, row := range rows {
		subject := dto.DashboardSubject{Subject: row.Subject, Grade: row.Grade, Status: dto.SubjectPending}
		if row.Grade != nil {
			sum += *row.Grade
			graded++
			subject.Status = dto.SubjectApproved
			if models.IsFailing(*row.Grade) {
				subject.Status = dto.SubjectFailed
			}
		}
		dashboard.Subjects = append(dashboard.Subjects, subject)
	}
	if graded > 0 {
		dashboard.Average = math.Round(sum/float64(graded)*10) / 10
	}

	if err := s.cache.Set(ctx, key, dashboard, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("dashboard cache write failed", zap.String("key", key), zap.Error(err))
	}
	return dashboard, false, nil
}
