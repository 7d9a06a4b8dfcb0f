package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/DiegoMarin025/EduTrack-SW/internal/dto"
	"github.com/DiegoMarin025/EduTrack-SW/internal/models"
	appErrors "github.com/DiegoMarin025/EduTrack-SW/pkg/errors"
	"github.com/DiegoMarin025/EduTrack-SW/pkg/export"
)

const (
	noGroupLabel   = "No Group"
	unknownTeacher = "Unknown"
)

type historyReader interface {
	History(ctx context.Context, studentID string) ([]models.HistoryRow, error)
}

// ExportedFile is a rendered document ready for download.
type ExportedFile struct {
	Filename    string
	ContentType string
	Payload     []byte
}

// HistoryService builds the academic history of a student.
type HistoryService struct {
	repo   historyReader
	logger *zap.Logger
}

// NewHistoryService constructs HistoryService.
func NewHistoryService(repo historyReader, logger *zap.Logger) *HistoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HistoryService{repo: repo, logger: logger}
}

// History groups graded subjects by the cohort they were taken in.
func (s *HistoryService) History(ctx context.Context, studentID string) (*dto.AcademicHistoryResponse, error) {
	rows, err := s.load(ctx, studentID)
	if err != nil {
		return nil, err
	}
	resp := &dto.AcademicHistoryResponse{Terms: map[string][]dto.HistorySubject{}}
	for _, row := range rows {
		term := historyTerm(row)
		resp.Terms[term] = append(resp.Terms[term], dto.HistorySubject{
			Name:    row.Subject,
			Teacher: historyTeacher(row),
			Term:    term,
			Evaluations: []dto.HistoryEvaluation{
				{Name: "Final", Weight: 100, Grade: historyGrade(row)},
			},
		})
	}
	return resp, nil
}

// Export renders the history as a csv, pdf or xlsx document.
func (s *HistoryService) Export(ctx context.Context, studentID, rawFormat string) (*ExportedFile, error) {
	studentID = strings.TrimSpace(studentID)
	format, err := export.ParseFormat(rawFormat)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "format must be csv, pdf or xlsx")
	}
	rows, err := s.load(ctx, studentID)
	if err != nil {
		return nil, err
	}

	dataset := export.Dataset{
		Title:   "Academic History",
		Headers: []string{"Group", "Subject", "Teacher", "Grade"},
		Rows:    make([]map[string]string, 0, len(rows)),
	}
	for _, row := range rows {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Group":   historyTerm(row),
			"Subject": row.Subject,
			"Teacher": historyTeacher(row),
			"Grade":   formatGrade(historyGrade(row)),
		})
	}
	sort.SliceStable(dataset.Rows, func(i, j int) bool {
		return dataset.Rows[i]["Group"] < dataset.Rows[j]["Group"]
	})

	exporter := export.ForFormat(format)
	payload, err := exporter.Render(dataset)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render history")
	}
	s.logger.Debug("academic history exported", zap.String("student_id", studentID), zap.String("format", string(format)), zap.Int("rows", len(rows)))
	return &ExportedFile{
		Filename:    fmt.Sprintf("historial_%s.%s", studentID, exporter.Extension()),
		ContentType: exporter.ContentType(),
		Payload:     payload,
	}, nil
}

func (s *HistoryService) load(ctx context.Context, studentID string) ([]models.HistoryRow, error) {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return nil, appErrors.Clone(appErrors.ErrMissingFields, "student id is required")
	}
	rows, err := s.repo.History(ctx, studentID)
	if err != nil {
		return nil, appErrors.Persistence(err, "failed to load academic history")
	}
	return rows, nil
}

func historyTerm(row models.HistoryRow) string {
	if row.GroupName == nil || *row.GroupName == "" {
		return noGroupLabel
	}
	return *row.GroupName
}

func historyTeacher(row models.HistoryRow) string {
	if row.Teacher == nil || *row.Teacher == "" {
		return unknownTeacher
	}
	return *row.Teacher
}

func historyGrade(row models.HistoryRow) float64 {
	if row.Grade == nil {
		return 0
	}
	return *row.Grade
}
