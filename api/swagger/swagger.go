package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "EduTrack API",
        "description": "Academic records backend: grades, group enrollment, dashboards and notifications",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "in": "header", "name": "Authorization"}
    },
    "tags": [
        {"name": "Authentication", "description": "Registration and login"},
        {"name": "Grades", "description": "Final grade records"},
        {"name": "Groups", "description": "Groups, class sections and membership"},
        {"name": "Students", "description": "Student lookups and academic history"},
        {"name": "Dashboard", "description": "Student landing view"},
        {"name": "Notifications", "description": "User notifications"},
        {"name": "Support", "description": "Support desk reports"}
    ],
    "paths": {
        "/health": {
            "get": {"summary": "Health check", "responses": {"200": {"description": "OK"}}}
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Database reachable"},
                    "503": {"description": "Database unreachable"}
                }
            }
        },
        "/register": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Create an account",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Message"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "409": {"description": "Email already registered", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate user",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/LoginResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/calificaciones": {
            "get": {
                "tags": ["Grades"],
                "summary": "Fetch a student's grade for a class section",
                "parameters": [
                    {"name": "alumno_id", "in": "query", "required": true, "type": "string"},
                    {"name": "grupo_id", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/GradeLookupResponse"}},
                    "404": {"description": "Unknown class section", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "post": {
                "tags": ["Grades"],
                "security": [{"BearerAuth": []}],
                "summary": "Record or update a final grade",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpsertGradeRequest"}}],
                "responses": {
                    "200": {"description": "Updated or unchanged", "schema": {"$ref": "#/definitions/GradeUpsertResponse"}},
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/GradeUpsertResponse"}},
                    "400": {"description": "Missing fields or grade out of range", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Unknown class section", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/grupos/agregar_alumno": {
            "post": {
                "tags": ["Groups"],
                "security": [{"BearerAuth": []}],
                "summary": "Enroll a student in a group or move them to it",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/GroupMembershipRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/EnrollmentResponse"}},
                    "404": {"description": "Unknown student or group", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/grupos/eliminar_alumno": {
            "post": {
                "tags": ["Groups"],
                "security": [{"BearerAuth": []}],
                "summary": "Remove a student from a group",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/GroupMembershipRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Message"}},
                    "404": {"description": "Not enrolled in that group", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/grupos": {
            "get": {
                "tags": ["Groups"],
                "summary": "List class sections",
                "parameters": [{"name": "profesor_id", "in": "query", "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/ClassSectionDetail"}}}}
            },
            "post": {
                "tags": ["Groups"],
                "security": [{"BearerAuth": []}],
                "summary": "Create a group",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateGroupRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Group"}}}
            }
        },
        "/grupos_disponibles": {
            "get": {
                "tags": ["Groups"],
                "summary": "Groups available for enrollment",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Group"}}}}
            }
        },
        "/grupos/{clase_id}/alumnos": {
            "get": {
                "tags": ["Groups"],
                "summary": "Students of a class section",
                "parameters": [{"name": "clase_id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/StudentSummary"}}},
                    "404": {"description": "Unknown class section", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/clases/crear": {
            "post": {
                "tags": ["Groups"],
                "security": [{"BearerAuth": []}],
                "summary": "Assign a subject to a group",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateClassRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ClassSection"}},
                    "404": {"description": "Unknown group", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "409": {"description": "Subject already assigned", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/profesor/{id}/stats": {
            "get": {
                "tags": ["Groups"],
                "summary": "Group and student counts of a teacher",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/TeacherStats"}}}
            }
        },
        "/alumnos/buscar": {
            "get": {
                "tags": ["Students"],
                "summary": "Search students by name or email",
                "parameters": [{"name": "q", "in": "query", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/StudentSummary"}}}}
            }
        },
        "/alumnos/{id}/grupo": {
            "get": {
                "tags": ["Students"],
                "summary": "Current group of a student",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/StudentGroupResponse"}}}
            }
        },
        "/historial_academico/{alumnoId}": {
            "get": {
                "tags": ["Students"],
                "summary": "Academic history grouped by cohort",
                "parameters": [{"name": "alumnoId", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/AcademicHistoryResponse"}}}
            }
        },
        "/historial_academico/{alumnoId}/export": {
            "get": {
                "tags": ["Students"],
                "summary": "Download the academic history",
                "produces": ["text/csv", "application/pdf", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "parameters": [
                    {"name": "alumnoId", "in": "path", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf", "xlsx"]}
                ],
                "responses": {
                    "200": {"description": "Attachment", "schema": {"type": "file"}},
                    "400": {"description": "Unsupported format", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/dashboard/{id}": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Student dashboard",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK", "headers": {"X-Cache": {"type": "string"}}, "schema": {"$ref": "#/definitions/StudentDashboardResponse"}},
                    "404": {"description": "Unknown student", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/notificaciones/{usuario_id}": {
            "get": {
                "tags": ["Notifications"],
                "summary": "Notifications of a user, newest first",
                "parameters": [{"name": "usuario_id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Notification"}}}}
            }
        },
        "/reportes_soporte": {
            "post": {
                "tags": ["Support"],
                "summary": "Send a support report",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SupportRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Message"}}}
            }
        }
    },
    "definitions": {
        "ErrorBody": {
            "type": "object",
            "properties": {"error": {"type": "string"}, "code": {"type": "string"}}
        },
        "Message": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "id": {"type": "string"}}
        },
        "RegisterRequest": {
            "type": "object",
            "properties": {
                "nombre": {"type": "string"},
                "correo": {"type": "string"},
                "contrasena": {"type": "string"},
                "tipo_usuario": {"type": "string", "enum": ["alumno", "profesor"]}
            }
        },
        "LoginRequest": {
            "type": "object",
            "properties": {"correo": {"type": "string"}, "contrasena": {"type": "string"}}
        },
        "LoginResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "usuario": {
                    "type": "object",
                    "properties": {"id": {"type": "string"}, "nombre": {"type": "string"}, "rol": {"type": "string"}}
                },
                "token": {"type": "string"},
                "expires_in": {"type": "integer"}
            }
        },
        "UpsertGradeRequest": {
            "type": "object",
            "properties": {
                "alumno_id": {"type": "string"},
                "grupo_id": {"type": "string"},
                "calificacion": {"type": "number", "minimum": 0, "maximum": 10}
            }
        },
        "GradeUpsertResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["created", "updated", "unchanged"]},
                "record_id": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "GradeLookupResponse": {
            "type": "object",
            "properties": {"calificacion": {"type": "number"}, "record_id": {"type": "string"}}
        },
        "GroupMembershipRequest": {
            "type": "object",
            "properties": {"alumno_id": {"type": "string"}, "grupo_id": {"type": "string"}}
        },
        "EnrollmentResponse": {
            "type": "object",
            "properties": {"action": {"type": "string", "enum": ["enrolled", "moved"]}, "message": {"type": "string"}}
        },
        "StudentGroupResponse": {
            "type": "object",
            "properties": {"enrolled": {"type": "boolean"}, "group_id": {"type": "string"}, "group_name": {"type": "string"}}
        },
        "CreateGroupRequest": {
            "type": "object",
            "properties": {"nombre": {"type": "string"}}
        },
        "CreateClassRequest": {
            "type": "object",
            "properties": {"grupo_id": {"type": "string"}, "nombre_materia": {"type": "string"}, "profesor_id": {"type": "string"}}
        },
        "Group": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "nombre": {"type": "string"}, "fecha_creacion": {"type": "string", "format": "date-time"}}
        },
        "ClassSection": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "grupo_id": {"type": "string"}, "materia_id": {"type": "string"}, "profesor_id": {"type": "string"}}
        },
        "ClassSectionDetail": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "grupo_id": {"type": "string"}, "nombre": {"type": "string"}, "materia": {"type": "string"}}
        },
        "StudentSummary": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "nombre": {"type": "string"}, "correo": {"type": "string"}}
        },
        "TeacherStats": {
            "type": "object",
            "properties": {"grupos": {"type": "integer"}, "alumnos": {"type": "integer"}}
        },
        "StudentDashboardResponse": {
            "type": "object",
            "properties": {
                "average": {"type": "number"},
                "student": {
                    "type": "object",
                    "properties": {"nombre": {"type": "string"}, "carrera": {"type": "string"}, "matricula": {"type": "string"}}
                },
                "subjects": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "materia": {"type": "string"},
                            "calificacion": {"type": "number"},
                            "estado": {"type": "string", "enum": ["Approved", "Failed", "Pending"]}
                        }
                    }
                }
            }
        },
        "AcademicHistoryResponse": {
            "type": "object",
            "properties": {
                "semestres": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "array",
                        "items": {
                            "type": "object",
                            "properties": {
                                "nombre": {"type": "string"},
                                "profesor": {"type": "string"},
                                "semestre": {"type": "string"},
                                "evaluaciones": {"type": "array", "items": {"type": "object"}}
                            }
                        }
                    }
                }
            }
        },
        "Notification": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "usuario_id": {"type": "string"},
                "titulo": {"type": "string"},
                "mensaje": {"type": "string"},
                "fecha": {"type": "string", "format": "date-time"}
            }
        },
        "SupportRequest": {
            "type": "object",
            "properties": {"usuario_id": {"type": "string"}, "email": {"type": "string"}, "mensaje": {"type": "string"}}
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
