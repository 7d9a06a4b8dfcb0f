package models

import "time"

// UserRole mirrors the values stored in usuarios.rol.
type UserRole string

const (
	RoleStudent UserRole = "alumno"
	RoleTeacher UserRole = "profesor"
)

// ParseRole maps the registration user type onto a stored role.
func ParseRole(raw string) (UserRole, bool) {
	switch normalized(raw) {
	case "alumno", "student", "estudiante":
		return RoleStudent, true
	case "profesor", "maestro", "teacher", "docente":
		return RoleTeacher, true
	default:
		return "", false
	}
}

// User represents an account stored in the usuarios table.
type User struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"nombre" json:"nombre"`
	Email     string    `db:"email" json:"correo"`
	Password  string    `db:"password" json:"-"`
	Role      UserRole  `db:"rol" json:"rol"`
	CreatedAt time.Time `db:"fecha_registro" json:"fecha_registro"`
}

// UserInfo is the public projection returned after login.
type UserInfo struct {
	ID   string   `json:"id"`
	Name string   `json:"nombre"`
	Role UserRole `json:"rol"`
}

// StudentSummary is returned by search and roster listings.
type StudentSummary struct {
	ID    string `db:"id" json:"id"`
	Name  string `db:"nombre" json:"nombre"`
	Email string `db:"correo" json:"correo"`
}
