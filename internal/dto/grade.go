package dto

import "github.com/DiegoMarin025/EduTrack-SW/internal/models"

// GradeUpsertResponse reports the outcome of a grade submission.
type GradeUpsertResponse struct {
	Status   models.GradeUpsertStatus `json:"status"`
	RecordID string                   `json:"record_id"`
	Message  string                   `json:"message"`
}

// GradeLookupResponse returns the stored grade for a student in a class section.
type GradeLookupResponse struct {
	Grade    *float64 `json:"calificacion"`
	RecordID string   `json:"record_id,omitempty"`
}
