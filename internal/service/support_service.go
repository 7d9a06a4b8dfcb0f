package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/DiegoMarin025/EduTrack-SW/internal/models"
	appErrors "github.com/DiegoMarin025/EduTrack-SW/pkg/errors"
)

type supportRepository interface {
	Create(ctx context.Context, report *models.SupportReport) error
}

// SupportRequest is a message for the support desk.
type SupportRequest struct {
	UserID  *string `json:"usuario_id"`
	Email   string  `json:"email" validate:"email"`
	Message string  `json:"mensaje" validate:"max=2000"`
}

// SupportService records support reports.
type SupportService struct {
	repo      supportRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSupportService constructs SupportService.
func NewSupportService(repo supportRepository, validate *validator.Validate, logger *zap.Logger) *SupportService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SupportService{repo: repo, validator: validate, logger: logger}
}

// Submit stores the report and returns it with its identifier.
func (s *SupportService) Submit(ctx context.Context, req SupportRequest) (*models.SupportReport, error) {
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)
	if req.Email == "" || req.Message == "" {
		return nil, appErrors.Clone(appErrors.ErrMissingFields, "email and mensaje are required")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid support report")
	}
	if req.UserID != nil && strings.TrimSpace(*req.UserID) == "" {
		req.UserID = nil
	}

	report := &models.SupportReport{UserID: req.UserID, Email: req.Email, Message: req.Message, CreatedAt: time.Now().UTC()}
	if err := s.repo.Create(ctx, report); err != nil {
		return nil, appErrors.Persistence(err, "failed to save support report")
	}
	s.logger.Info("support report received", zap.String("report_id", report.ID))
	return report, nil
}
