// Package docs registers the committed OpenAPI description served at
// /swagger in dev mode.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/dialog/events": {
            "post": {
                "description": "Inbound conversational event from the messaging gateway. Returns the reply template id plus its data.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["dialog"],
                "summary": "Process a dialog event",
                "responses": {
                    "200": {"description": "reply template and data"},
                    "400": {"description": "malformed event"},
                    "500": {"description": "storage unavailable"}
                }
            }
        },
        "/attendances": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["attendance"],
                "summary": "List all attendance records",
                "responses": {"200": {"description": "record snapshot"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["attendance"],
                "summary": "Wipe all attendance records (profiles survive)",
                "responses": {"200": {"description": "cleared"}}
            }
        },
        "/reports/export": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Compile the timesheet and push it to the spool",
                "responses": {
                    "200": {"description": "artifact metadata"},
                    "204": {"description": "no data for the period"}
                }
            }
        },
        "/reports/export/file": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["reports"],
                "summary": "Compile the timesheet and download the workbook",
                "responses": {
                    "200": {"description": "xlsx attachment"},
                    "204": {"description": "no data for the period"}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Exchange credentials for a JWT",
                "responses": {
                    "200": {"description": "token"},
                    "401": {"description": "wrong id or password"}
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "2.0.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Tabel backend",
	Description:      "Attendance dialog engine and timesheet compiler",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
