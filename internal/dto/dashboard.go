package dto

// SubjectStatus classifies a subject on the student dashboard.
type SubjectStatus string

const (
	SubjectApproved SubjectStatus = "Approved"
	SubjectFailed   SubjectStatus = "Failed"
	SubjectPending  SubjectStatus = "Pending"
)

// StudentDashboardResponse is the student landing view.
type StudentDashboardResponse struct {
	Average  float64            `json:"average"`
	Student  DashboardStudent   `json:"student"`
	Subjects []DashboardSubject `json:"subjects"`
}

// DashboardStudent identifies the student the dashboard belongs to.
type DashboardStudent struct {
	Name         string `json:"nombre"`
	Program      string `json:"carrera"`
	EnrollmentNo string `json:"matricula"`
}

// DashboardSubject is one subject line; Grade is nil while pending.
type DashboardSubject struct {
	Subject string        `json:"materia"`
	Grade   *float64      `json:"calificacion"`
	Status  SubjectStatus `json:"estado"`
}
