package dto

import "github.com/DiegoMarin025/EduTrack-SW/internal/models"

// EnrollmentResponse reports the result of assigning a student to a group.
type EnrollmentResponse struct {
	Action  models.EnrollmentAction `json:"action"`
	Message string                  `json:"message"`
}

// StudentGroupResponse tells whether a student belongs to a group.
type StudentGroupResponse struct {
	Enrolled  bool   `json:"enrolled"`
	GroupID   string `json:"group_id,omitempty"`
	GroupName string `json:"group_name,omitempty"`
}
