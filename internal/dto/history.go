package dto

// AcademicHistoryResponse groups graded subjects by the cohort they were taken in.
type AcademicHistoryResponse struct {
	Terms map[string][]HistorySubject `json:"semestres"`
}

// HistorySubject is a graded subject inside a cohort bucket.
type HistorySubject struct {
	Name        string              `json:"nombre"`
	Teacher     string              `json:"profesor"`
	Term        string              `json:"semestre"`
	Evaluations []HistoryEvaluation `json:"evaluaciones"`
}

// HistoryEvaluation is a weighted evaluation; only the final grade is tracked today.
type HistoryEvaluation struct {
	Name   string  `json:"nombre"`
	Weight int     `json:"peso"`
	Grade  float64 `json:"calificacion"`
}
