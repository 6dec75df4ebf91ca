package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Engineering Compass API",
        "description": "Career guidance backend for engineering students",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "tags": [
        {"name": "Authentication", "description": "Registration, login and profile"},
        {"name": "Students", "description": "Dashboard, CGPA and timeline"},
        {"name": "Skills", "description": "Assessment and learning paths"},
        {"name": "Career", "description": "Resume and interview preparation"},
        {"name": "Community", "description": "Mentorship, forums and events"},
        {"name": "Advisor", "description": "Generated guidance"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/auth/register": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Register a student",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Email already registered"}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate a student",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["Authentication"],
                "summary": "Get current student",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/auth/profile": {
            "put": {
                "tags": ["Authentication"],
                "summary": "Update profile",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/auth/interest-quiz": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Submit interest quiz",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/students/dashboard": {
            "get": {
                "tags": ["Students"],
                "summary": "Get dashboard",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/cgpa": {
            "put": {
                "tags": ["Students"],
                "summary": "Update CGPA",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/students/cgpa/export": {
            "get": {
                "tags": ["Students"],
                "summary": "Export CGPA history as CSV",
                "security": [{"BearerAuth": []}],
                "produces": ["text/csv"],
                "responses": {
                    "200": {"description": "CSV download"}
                }
            }
        },
        "/students/timeline-goals": {
            "post": {
                "tags": ["Students"],
                "summary": "Set timeline goals",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/students/timeline-goals/{semester}/{goalId}": {
            "put": {
                "tags": ["Students"],
                "summary": "Toggle a timeline goal",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "semester", "in": "path", "required": true, "type": "integer"},
                    {"name": "goalId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Goal not found"}
                }
            }
        },
        "/students/weekly-focus": {
            "post": {
                "tags": ["Students"],
                "summary": "Set weekly focus tasks",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/students/weekly-focus/{taskId}": {
            "put": {
                "tags": ["Students"],
                "summary": "Toggle a weekly task",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "taskId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Task not found"}
                }
            }
        },
        "/students/initialize-sample-data": {
            "post": {
                "tags": ["Students"],
                "summary": "Seed sample data",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/students/opportunities": {
            "get": {
                "tags": ["Students"],
                "summary": "List branch-eligible opportunities",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/skills/learning-paths": {
            "get": {
                "tags": ["Skills"],
                "summary": "List learning paths",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/skills/assessment": {
            "post": {
                "tags": ["Skills"],
                "summary": "Submit skills assessment",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/skills/recommended": {
            "get": {
                "tags": ["Skills"],
                "summary": "Recommended skills",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/skills/progress": {
            "get": {
                "tags": ["Skills"],
                "summary": "Started path progress",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/skills/start-path": {
            "post": {
                "tags": ["Skills"],
                "summary": "Start a learning path",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Already started"}
                }
            }
        },
        "/skills/complete-step": {
            "post": {
                "tags": ["Skills"],
                "summary": "Complete a path step",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/skills/add-goal": {
            "post": {
                "tags": ["Skills"],
                "summary": "Add a skill goal to the timeline",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "201": {"description": "Created"}
                }
            }
        },
        "/skills/ai-assessment": {
            "post": {
                "tags": ["Skills"],
                "summary": "Generated skill assessment",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/career/resume": {
            "post": {
                "tags": ["Career"],
                "summary": "Update resume",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/career/resume/export": {
            "get": {
                "tags": ["Career"],
                "summary": "Export resume as PDF",
                "security": [{"BearerAuth": []}],
                "produces": ["application/pdf"],
                "responses": {
                    "200": {"description": "PDF download"}
                }
            }
        },
        "/career/companies": {
            "get": {
                "tags": ["Career"],
                "summary": "List company preparation kits",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/career/mock-interview": {
            "get": {
                "tags": ["Career"],
                "summary": "Start a mock interview",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "type", "in": "query", "type": "string", "enum": ["technical", "hr"]},
                    {"name": "company", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/career/interview-feedback": {
            "post": {
                "tags": ["Career"],
                "summary": "Review a mock interview",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/community/students": {
            "get": {
                "tags": ["Community"],
                "summary": "List college cohort",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/community/connect": {
            "post": {
                "tags": ["Community"],
                "summary": "Request a connection",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Request already sent"}
                }
            }
        },
        "/community/connections": {
            "get": {
                "tags": ["Community"],
                "summary": "List connections",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/community/connections/{connectionId}": {
            "put": {
                "tags": ["Community"],
                "summary": "Accept or reject a connection",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "connectionId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Connection not found"}
                }
            }
        },
        "/community/forums": {
            "get": {
                "tags": ["Community"],
                "summary": "List campus forums",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/community/events": {
            "get": {
                "tags": ["Community"],
                "summary": "List campus events",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ai/recommendations": {
            "post": {
                "tags": ["Advisor"],
                "summary": "Generate recommendations",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"},
                    "500": {"description": "Generation failed"}
                }
            }
        },
        "/ai/chat": {
            "post": {
                "tags": ["Advisor"],
                "summary": "Advisor chat",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ai/weekly-focus": {
            "post": {
                "tags": ["Advisor"],
                "summary": "Generate weekly focus tasks",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"},
                    "500": {"description": "Generation failed"}
                }
            }
        },
        "/ai/project-ideas": {
            "post": {
                "tags": ["Advisor"],
                "summary": "Generate project ideas",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"},
                    "500": {"description": "Generation failed"}
                }
            }
        },
        "/ai/resume-enhancement": {
            "post": {
                "tags": ["Advisor"],
                "summary": "Resume enhancement advice",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"},
                    "500": {"description": "Generation failed"}
                }
            }
        }
    },
    "definitions": {
        "RegisterRequest": {
            "type": "object",
            "required": ["name", "email", "password", "college", "branch", "admissionYear", "currentYear", "currentSemester"],
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 6},
                "college": {"type": "object"},
                "branch": {"type": "string"},
                "admissionYear": {"type": "integer"},
                "currentYear": {"type": "integer"},
                "currentSemester": {"type": "integer"}
            }
        },
        "LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
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
