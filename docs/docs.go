// Package docs is generated by swaggo/swag from the handler annotations. Regenerate with
// `swag init -g cmd/api/main.go` after changing them.
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
        "/ping": {
            "get": {"tags": ["ops"], "summary": "Liveness check", "responses": {"200": {"description": "OK"}}}
        },
        "/agreements": {
            "get": {
                "tags": ["agreements"],
                "summary": "List the contractor's agreements, newest first",
                "parameters": [
                    {"type": "string", "name": "X-User-ID", "in": "header", "required": true},
                    {"type": "string", "name": "status", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["agreements"],
                "summary": "Create a draft agreement",
                "parameters": [
                    {"type": "string", "name": "X-User-ID", "in": "header", "required": true},
                    {"type": "string", "description": "FREE, SOLO or BUSINESS", "name": "X-User-Plan", "in": "header"},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.CreateAgreementRequest"}}
                ],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}}
            }
        },
        "/agreements/{id}": {
            "get": {
                "tags": ["agreements"],
                "summary": "Agreement detail with allowed transitions and recent timeline",
                "parameters": [
                    {"type": "string", "name": "X-User-ID", "in": "header", "required": true},
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}}
            },
            "patch": {
                "tags": ["agreements"],
                "summary": "Update agreement fields; commercial terms are rejected once locked",
                "parameters": [
                    {"type": "string", "name": "X-User-ID", "in": "header", "required": true},
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}}
            }
        },
        "/agreements/{id}/status": {
            "post": {
                "tags": ["agreements"],
                "summary": "Move the agreement to another status",
                "parameters": [
                    {"type": "string", "name": "X-User-ID", "in": "header", "required": true},
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}}
            }
        },
        "/agreements/{id}/revert": {
            "post": {
                "tags": ["agreements"],
                "summary": "Step the agreement back one status with a reason",
                "parameters": [
                    {"type": "string", "name": "X-User-ID", "in": "header", "required": true},
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}}
            }
        },
        "/agreements/{id}/corrections": {
            "post": {
                "tags": ["agreements"],
                "summary": "Record a correction note on the timeline",
                "parameters": [
                    {"type": "string", "name": "X-User-ID", "in": "header", "required": true},
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/agreements/{id}/events": {
            "get": {
                "tags": ["agreements"],
                "summary": "Full agreement timeline, oldest first",
                "parameters": [
                    {"type": "string", "name": "X-User-ID", "in": "header", "required": true},
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/usage": {
            "get": {
                "tags": ["agreements"],
                "summary": "Agreements created this month against the plan limit",
                "parameters": [
                    {"type": "string", "name": "X-User-ID", "in": "header", "required": true},
                    {"type": "string", "description": "FREE, SOLO or BUSINESS", "name": "X-User-Plan", "in": "header"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/q/{public_slug}": {
            "get": {
                "tags": ["public"],
                "summary": "Client view of an agreement",
                "parameters": [{"type": "string", "name": "public_slug", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}}
            }
        },
        "/q/{public_slug}/accept": {
            "post": {
                "tags": ["public"],
                "summary": "Client accepts the agreement",
                "parameters": [
                    {"type": "string", "name": "public_slug", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}, "429": {"description": "Too Many Requests"}}
            }
        },
        "/q/{public_slug}/deposit": {
            "post": {
                "tags": ["public"],
                "summary": "Client confirms the deposit was sent",
                "parameters": [
                    {"type": "string", "name": "public_slug", "in": "path", "required": true},
                    {"name": "body", "in": "body", "schema": {"type": "object"}}
                ],
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}, "429": {"description": "Too Many Requests"}}
            }
        }
    },
    "definitions": {
        "pkg.HTTPError": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "code": {"type": "string"},
                "error": {"type": "string"},
                "details": {"type": "object"}
            }
        },
        "request.CreateAgreementRequest": {
            "type": "object",
            "required": ["title", "work_included", "work_excluded", "payment_instructions", "cancellation_terms", "governing_country"],
            "properties": {
                "title": {"type": "string"},
                "client_name": {"type": "string"},
                "client_email": {"type": "string"},
                "work_included": {"type": "string"},
                "work_excluded": {"type": "string"},
                "total_price": {"type": "string"},
                "deposit_amount": {"type": "string"},
                "balance_due": {"type": "string"},
                "currency": {"type": "string"},
                "expires_at": {"type": "string"},
                "payment_instructions": {"type": "string"},
                "external_payment_link": {"type": "string"},
                "cancellation_terms": {"type": "string"},
                "governing_country": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "QuoteLock API",
	Description:      "Contractor quotes that become tamper-evident agreements once accepted.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
