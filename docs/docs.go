// Package docs holds the OpenAPI document served by gin-swagger.
//
// It mirrors the swag annotations of the handlers; `swag init -g cmd/api/main.go` rewrites it.
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
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/cnpj/extract": {
            "post": {
                "description": "Find every valid CNPJ in a JSON text payload or in an HTML document (Content-Type text/html)",
                "consumes": ["application/json", "text/html"],
                "produces": ["application/json"],
                "tags": ["CNPJ"],
                "summary": "Extract CNPJs from a document",
                "parameters": [
                    {
                        "description": "Text to scan",
                        "name": "request",
                        "in": "body",
                        "schema": {"$ref": "#/definitions/models.ExtractRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ExtractResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/api/v1/cnpj/format": {
            "get": {
                "description": "Format a raw 14-digit CNPJ; any other input is returned unchanged",
                "produces": ["application/json"],
                "tags": ["CNPJ"],
                "summary": "Format a raw CNPJ",
                "parameters": [
                    {"type": "string", "example": "11222333000181", "description": "Raw CNPJ", "name": "value", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.MaskResponse"}}
                }
            }
        },
        "/api/v1/cnpj/generate": {
            "get": {
                "description": "Generate CNPJs that pass validation. They are fictitious and for testing only.",
                "produces": ["application/json"],
                "tags": ["CNPJ"],
                "summary": "Generate fictitious CNPJs",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "How many to generate", "name": "count", "in": "query"},
                    {"type": "boolean", "default": false, "description": "Return masked values", "name": "masked", "in": "query"},
                    {"type": "boolean", "default": false, "description": "Draw the branch digits at random instead of 0001", "name": "random_branch", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.GenerateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/api/v1/cnpj/mask": {
            "get": {
                "description": "Sanitize, truncate to 14 digits and insert the separators reached so far",
                "produces": ["application/json"],
                "tags": ["CNPJ"],
                "summary": "Mask partial input",
                "parameters": [
                    {"type": "string", "example": "1122233300", "description": "Digits typed so far", "name": "value", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.MaskResponse"}}
                }
            }
        },
        "/api/v1/cnpj/validate": {
            "post": {
                "description": "Validate a CNPJ in any format. The outcome is returned as data, never as an HTTP error.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["CNPJ"],
                "summary": "Validate a CNPJ",
                "parameters": [
                    {
                        "description": "CNPJ to validate",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.ValidateRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ValidationResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/api/v1/cnpj/validate/batch": {
            "post": {
                "description": "Validate a list of CNPJs and aggregate the outcomes",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["CNPJ"],
                "summary": "Validate multiple CNPJs",
                "parameters": [
                    {
                        "description": "Batch validation request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.BatchValidationRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.BatchValidationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/api/v1/cnpj/{cnpj}/analyze": {
            "get": {
                "description": "Return the outcome, root, branch and kind (MATRIZ or FILIAL) of a CNPJ",
                "produces": ["application/json"],
                "tags": ["CNPJ"],
                "summary": "Analyze a CNPJ",
                "parameters": [
                    {"type": "string", "example": "11222333000181", "description": "CNPJ", "name": "cnpj", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/cnpj.Info"}}
                }
            }
        },
        "/api/v1/cnpj/{cnpj}/validate": {
            "get": {
                "description": "Validate a CNPJ given in the path. Masked input must be URL-encoded.",
                "produces": ["application/json"],
                "tags": ["CNPJ"],
                "summary": "Validate a CNPJ",
                "parameters": [
                    {"type": "string", "example": "11222333000181", "description": "CNPJ, raw or masked", "name": "cnpj", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ValidationResult"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Get the health status of the API and its dependencies",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/models.HealthResponse"}}
                }
            }
        },
        "/health/live": {
            "get": {
                "description": "Check if the API is alive and responding",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/health/ready": {
            "get": {
                "description": "Check if the API is ready to serve requests",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/metrics": {
            "get": {
                "description": "Prometheus metrics in text exposition format",
                "produces": ["text/plain"],
                "tags": ["Metrics"],
                "summary": "Get application metrics",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "cnpj.Info": {
            "type": "object",
            "properties": {
                "branch": {"type": "string"},
                "cleaned": {"type": "string"},
                "formatted": {"type": "string"},
                "kind": {"type": "string"},
                "original": {"type": "string"},
                "outcome": {"type": "string"},
                "root": {"type": "string"},
                "valid": {"type": "boolean"}
            }
        },
        "models.BatchValidationRequest": {
            "description": "List of CNPJs to validate in one call",
            "type": "object",
            "required": ["cnpjs"],
            "properties": {
                "cnpjs": {"type": "array", "items": {"type": "string"}, "example": ["11.222.333/0001-81", "11222333000182"]}
            }
        },
        "models.BatchValidationResponse": {
            "type": "object",
            "properties": {
                "by_outcome": {"type": "object", "additionalProperties": {"type": "integer"}},
                "duration_ms": {"type": "integer", "example": 1},
                "invalid": {"type": "integer", "example": 1},
                "results": {"type": "array", "items": {"$ref": "#/definitions/models.ValidationResult"}},
                "timestamp": {"type": "string", "example": "2024-01-15T10:30:00Z"},
                "total": {"type": "integer", "example": 2},
                "valid": {"type": "integer", "example": 1}
            }
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "INVALID_REQUEST"},
                "error": {"type": "string", "example": "Invalid request format"},
                "message": {"type": "string", "example": "cnpjs must not be empty"},
                "path": {"type": "string", "example": "/api/v1/cnpj/validate/batch"},
                "timestamp": {"type": "string", "example": "2024-01-15T10:30:00Z"}
            }
        },
        "models.ExtractRequest": {
            "type": "object",
            "required": ["text"],
            "properties": {
                "text": {"type": "string", "example": "Contratante: 11.222.333/0001-81"}
            }
        },
        "models.ExtractResponse": {
            "type": "object",
            "properties": {
                "cnpjs": {"type": "array", "items": {"type": "string"}, "example": ["11222333000181"]},
                "count": {"type": "integer", "example": 1},
                "source": {"type": "string", "example": "text"}
            }
        },
        "models.HealthResponse": {
            "type": "object",
            "properties": {
                "services": {"type": "object", "additionalProperties": {"$ref": "#/definitions/models.ServiceInfo"}},
                "status": {"type": "string", "example": "healthy"},
                "timestamp": {"type": "string", "example": "2024-01-15T10:30:00Z"},
                "uptime": {"type": "string", "example": "2h30m45s"},
                "version": {"type": "string", "example": "1.0.0"}
            }
        },
        "models.ServiceInfo": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "last_check": {"type": "string", "example": "2024-01-15T10:30:00Z"},
                "status": {"type": "string", "example": "healthy"}
            }
        },
        "models.GenerateResponse": {
            "type": "object",
            "properties": {
                "cnpjs": {"type": "array", "items": {"type": "string"}, "example": ["12345678000195"]},
                "count": {"type": "integer", "example": 1},
                "fictitious": {"type": "boolean", "example": true},
                "notice": {"type": "string", "example": "Generated numbers are fictitious and must only be used for testing"},
                "timestamp": {"type": "string", "example": "2024-01-15T10:30:00Z"}
            }
        },
        "models.MaskResponse": {
            "type": "object",
            "properties": {
                "input": {"type": "string", "example": "1122233300"},
                "output": {"type": "string", "example": "11.222.333/00"}
            }
        },
        "models.ValidateRequest": {
            "type": "object",
            "properties": {
                "cnpj": {"type": "string", "example": "11.222.333/0001-81"}
            }
        },
        "models.ValidationResult": {
            "type": "object",
            "properties": {
                "cleaned": {"type": "string", "example": "11222333000181"},
                "input": {"type": "string", "example": "11.222.333/0001-81"},
                "masked": {"type": "string", "example": "11.222.333/0001-81"},
                "message": {"type": "string", "example": "CNPJ is valid"},
                "outcome": {"type": "string", "example": "VALID"},
                "valid": {"type": "boolean", "example": true}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "CNPJ Toolkit API",
	Description:      "Validate, mask, format, generate and extract Brazilian CNPJ numbers",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
