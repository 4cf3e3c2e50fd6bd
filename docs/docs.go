// Package docs holds the OpenAPI document served by gin-swagger. It follows
// the layout swag init produces and must be kept in step with the handler
// annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
        },
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/feedback": {
            "get": {
                "description": "Returns the full attempt history, most recent attempt first.",
                "produces": ["application/json"],
                "tags": ["Feedback"],
                "summary": "List every feedback attempt of a user on an interview",
                "parameters": [
                    {"type": "string", "description": "Interview ID", "name": "interviewId", "in": "query", "required": true},
                    {"type": "string", "description": "User ID", "name": "userId", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.FeedbackResponseDTO"}}},
                    "400": {"description": "Missing required parameters", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Failed to fetch feedbacks", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Scores the transcript and stores it as a new attempt, or re-evaluates the attempt named by feedbackId in place.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Feedback"],
                "summary": "Evaluate an interview transcript",
                "parameters": [
                    {"description": "Interview, user and transcript", "name": "submission", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateFeedbackRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CreateFeedbackResult"}},
                    "400": {"description": "Invalid request body", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "429": {"description": "Too many evaluations from this client", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Evaluation or write failed", "schema": {"$ref": "#/definitions/dto.CreateFeedbackResult"}}
                }
            }
        },
        "/feedback/latest": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Feedback"],
                "summary": "Get the most recent feedback attempt",
                "parameters": [
                    {"type": "string", "description": "Interview ID", "name": "interviewId", "in": "query", "required": true},
                    {"type": "string", "description": "User ID", "name": "userId", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.FeedbackResponseDTO"}},
                    "400": {"description": "Missing required parameters", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "No attempt yet", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Failed to fetch feedback", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/attempts/{feedback_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Feedback"],
                "summary": "Get one feedback attempt by ID",
                "parameters": [
                    {"type": "string", "description": "Feedback ID", "name": "feedback_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.FeedbackResponseDTO"}},
                    "404": {"description": "Feedback not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Failed to fetch feedback", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/interviews": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Interviews"],
                "summary": "List interviews owned by a user",
                "parameters": [
                    {"type": "string", "description": "Owner user ID", "name": "userId", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.InterviewResponseDTO"}}},
                    "400": {"description": "Missing required parameters", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/interviews/{interview_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Interviews"],
                "summary": "Get one interview",
                "parameters": [
                    {"type": "string", "description": "Interview ID", "name": "interview_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.InterviewResponseDTO"}},
                    "404": {"description": "Interview not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/available-interviews": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Interviews"],
                "summary": "List finalized interviews created by other users",
                "parameters": [
                    {"type": "string", "description": "Current user ID", "name": "userId", "in": "query", "required": true},
                    {"type": "integer", "description": "Maximum number of interviews (default 20)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.InterviewResponseDTO"}}},
                    "400": {"description": "Missing or invalid parameters", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/users/{user_id}/history": {
            "get": {
                "description": "Only interviews with at least one feedback record are returned, with attempt count and latest score.",
                "produces": ["application/json"],
                "tags": ["Interviews"],
                "summary": "List the interviews a user has attempted",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "user_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.InterviewHistoryDTO"}}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Service health",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.HealthResponse"}},
                    "503": {"description": "Store unreachable", "schema": {"$ref": "#/definitions/dto.HealthResponse"}}
                }
            }
        },
        "/admin/interviews": {
            "post": {
                "description": "Called by the interview generation step once the questions are ready. The ID and creation time are assigned by the store.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Admin - Interviews"],
                "summary": "(Admin) Store a generated interview",
                "parameters": [
                    {"description": "Interview to store", "name": "interview", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateInterviewRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.InterviewResponseDTO"}},
                    "400": {"description": "Invalid request body", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.CategoryScoreDTO": {
            "type": "object",
            "properties": {
                "comment": {"type": "string"},
                "name": {"type": "string"},
                "score": {"type": "number"}
            }
        },
        "dto.CreateFeedbackRequest": {
            "type": "object",
            "required": ["interviewId", "transcript", "userId"],
            "properties": {
                "feedbackId": {"type": "string"},
                "interviewId": {"type": "string"},
                "transcript": {"type": "array", "items": {"$ref": "#/definitions/model.TranscriptMessage"}},
                "userId": {"type": "string"}
            }
        },
        "dto.CreateFeedbackResult": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "feedbackId": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "dto.CreateInterviewRequest": {
            "type": "object",
            "required": ["level", "questions", "role", "type", "userId"],
            "properties": {
                "finalized": {"type": "boolean"},
                "level": {"type": "string"},
                "questions": {"type": "array", "minItems": 1, "items": {"type": "string"}},
                "role": {"type": "string"},
                "techstack": {"type": "array", "items": {"type": "string"}},
                "type": {"type": "string"},
                "userId": {"type": "string"}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "details": {"type": "array", "items": {"type": "string"}},
                "error": {"type": "string"}
            }
        },
        "dto.FeedbackResponseDTO": {
            "type": "object",
            "properties": {
                "areasForImprovement": {"type": "array", "items": {"type": "string"}},
                "attemptTimestamp": {"type": "string"},
                "categoryScores": {"type": "array", "items": {"$ref": "#/definitions/dto.CategoryScoreDTO"}},
                "createdAt": {"type": "string"},
                "finalAssessment": {"type": "string"},
                "id": {"type": "string"},
                "interviewId": {"type": "string"},
                "strengths": {"type": "array", "items": {"type": "string"}},
                "totalScore": {"type": "integer"},
                "userId": {"type": "string"}
            }
        },
        "dto.HealthResponse": {
            "type": "object",
            "properties": {
                "database": {"type": "string"},
                "detail": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "dto.InterviewHistoryDTO": {
            "type": "object",
            "properties": {
                "attemptCount": {"type": "integer"},
                "interview": {"$ref": "#/definitions/dto.InterviewResponseDTO"},
                "latestAttemptAt": {"type": "string"},
                "latestScore": {"type": "integer"}
            }
        },
        "dto.InterviewResponseDTO": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "finalized": {"type": "boolean"},
                "id": {"type": "string"},
                "level": {"type": "string"},
                "questions": {"type": "array", "items": {"type": "string"}},
                "role": {"type": "string"},
                "techstack": {"type": "array", "items": {"type": "string"}},
                "type": {"type": "string"},
                "userId": {"type": "string"}
            }
        },
        "model.TranscriptMessage": {
            "type": "object",
            "required": ["role"],
            "properties": {
                "content": {"type": "string"},
                "role": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Interview Practice Feedback API",
	Description:      "Stores AI-evaluated mock interview attempts and serves interview and feedback history.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
