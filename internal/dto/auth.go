package dto

import "github.com/DiegoMarin025/EduTrack-SW/internal/models"

// LoginResponse carries the authenticated user and an access token.
type LoginResponse struct {
	Message   string          `json:"message"`
	User      models.UserInfo `json:"usuario"`
	Token     string          `json:"token"`
	ExpiresIn int64           `json:"expires_in"`
}
