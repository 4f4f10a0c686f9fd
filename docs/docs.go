// Package docs holds the OpenAPI description served under /swagger/.
// Regenerate with: swag init -g cmd/api/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/rooms": {
            "post": {
                "description": "Creates a scheduling room over the candidate dates. Every broken date rule is reported in error.details, translated per Accept-Language. When email is set the organiser receives the room link.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["rooms"],
                "summary": "Create a room",
                "parameters": [
                    {"type": "string", "description": "Language for validation messages (en, ko)", "name": "Accept-Language", "in": "header"},
                    {"description": "Room data", "name": "room", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.CreateRoomRequest"}}
                ],
                "responses": {
                    "201": {"description": "data contains the created room", "schema": {"$ref": "#/definitions/controllers.RoomSuccessResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/rooms/{code}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["rooms"],
                "summary": "Get a room by code",
                "parameters": [
                    {"type": "string", "description": "Room code", "name": "code", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "data contains the room", "schema": {"$ref": "#/definitions/controllers.RoomSuccessResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/rooms/{code}/date-only": {
            "get": {
                "produces": ["application/json"],
                "tags": ["rooms"],
                "summary": "Report whether a room collects dates only",
                "parameters": [
                    {"type": "string", "description": "Room code", "name": "code", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.DateOnlySuccessResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/rooms/{code}/result": {
            "get": {
                "description": "enableTimes maps each slot (a date in date-only rooms, otherwise the date part of each submitted slot) to the number of participants available, in ascending slot order.",
                "produces": ["application/json"],
                "tags": ["rooms"],
                "summary": "Get the aggregated availability of a room",
                "parameters": [
                    {"type": "string", "description": "Room code", "name": "code", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.RoomResultSuccessResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/rooms/{code}/participants": {
            "get": {
                "produces": ["application/json"],
                "tags": ["rooms"],
                "summary": "List a room's participants",
                "parameters": [
                    {"type": "string", "description": "Room code", "name": "code", "in": "path", "required": true},
                    {"type": "integer", "description": "Page number (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (default 20, max 100)", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/users": {
            "post": {
                "description": "Signs a participant into a room by name. An unknown name is registered with the given password; a known name must present the same password. Returns a bearer token scoped to the room.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Join a room",
                "parameters": [
                    {"description": "Room code, name and optional password", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.JoinRequest"}}
                ],
                "responses": {
                    "201": {"description": "data contains token, token_type and participant", "schema": {"$ref": "#/definitions/controllers.JoinSuccessResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "401": {"description": "error.code: unauthorized", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/users/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get the current participant",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.ParticipantSuccessResponse"}},
                    "401": {"description": "error.code: unauthorized", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/users/{roomCode}": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "description": "Slots are YYYY-MM-DD in date-only rooms and \"YYYY-MM-DD HH:MM\" otherwise. The token must belong to a participant of roomCode. Last write wins.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Replace the current participant's available slots",
                "parameters": [
                    {"type": "string", "description": "Room code", "name": "roomCode", "in": "path", "required": true},
                    {"description": "Available slots", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.UpdateAvailabilityRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.ParticipantSuccessResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "401": {"description": "error.code: unauthorized", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "403": {"description": "error.code: forbidden", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "controllers.CreateRoomRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "dates": {"type": "array", "items": {"type": "string"}},
                "dateOnly": {"type": "boolean"},
                "startTime": {"type": "string"},
                "endTime": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "controllers.JoinRequest": {
            "type": "object",
            "properties": {
                "roomCode": {"type": "string"},
                "name": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "controllers.UpdateAvailabilityRequest": {
            "type": "object",
            "properties": {
                "enableTimes": {"type": "array", "items": {"type": "string"}}
            }
        },
        "controllers.DateOnlySuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "object", "properties": {"dateOnly": {"type": "boolean"}}},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.JoinSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object",
                    "properties": {
                        "token": {"type": "string"},
                        "token_type": {"type": "string"},
                        "participant": {"$ref": "#/definitions/domain.Participant"}
                    }
                },
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.ParticipantSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/domain.Participant"},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.RoomSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/domain.Room"},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.RoomResultSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/domain.RoomResult"},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "domain.Participant": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "roomId": {"type": "string"},
                "name": {"type": "string"},
                "enableTimes": {"type": "array", "items": {"type": "string"}},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "domain.Room": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "code": {"type": "string"},
                "title": {"type": "string"},
                "dates": {"type": "array", "items": {"type": "string"}},
                "dateOnly": {"type": "boolean"},
                "startTime": {"type": "string"},
                "endTime": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "domain.RoomResult": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "code": {"type": "string"},
                "title": {"type": "string"},
                "dates": {"type": "array", "items": {"type": "string"}},
                "dateOnly": {"type": "boolean"},
                "startTime": {"type": "string"},
                "endTime": {"type": "string"},
                "participantCount": {"type": "integer"},
                "enableTimes": {"type": "object", "additionalProperties": {"type": "integer"}}
            }
        },
        "helpers.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "array", "items": {"type": "string"}}
            }
        },
        "helpers.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the participant token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Room Scheduler API",
	Description:      "Group availability rooms: create a room over candidate dates, collect each participant's available slots, read the aggregated result.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
