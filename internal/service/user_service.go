package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/DiegoMarin025/EduTrack-SW/internal/models"
	appErrors "github.com/DiegoMarin025/EduTrack-SW/pkg/errors"
)

const studentSearchLimit = 5

type studentSearcher interface {
	SearchStudents(ctx context.Context, term string, limit int) ([]models.StudentSummary, error)
}

// UserService exposes user lookups.
type UserService struct {
	repo   studentSearcher
	logger *zap.Logger
}

// NewUserService constructs UserService.
func NewUserService(repo studentSearcher, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{repo: repo, logger: logger}
}

// SearchStudents returns up to five students whose name or email contains the term.
func (s *UserService) SearchStudents(ctx context.Context, term string) ([]models.StudentSummary, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []models.StudentSummary{}, nil
	}
	students, err := s.repo.SearchStudents(ctx, term, studentSearchLimit)
	if err != nil {
		return nil, appErrors.Persistence(err, "failed to search students")
	}
	return students, nil
}
