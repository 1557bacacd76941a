// Package docs registra el documento Swagger servido en /swagger/.
// Escrito a mano con el layout de swag init; mantener en sync con las anotaciones
// de internal/domain/animals/handler.go.
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
        "/animals": {
            "get": {
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "List animals",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/animals.animalResponse"}}
                    }
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Create an animal",
                "parameters": [
                    {
                        "description": "Raw form values",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/animals.createAnimalRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/animals.animalResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "string"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/animals.validationErrorResponse"}}
                }
            }
        },
        "/animals/{animalID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Get an animal",
                "parameters": [
                    {"type": "string", "description": "Animal ID", "name": "animalID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/animals.animalResponse"}},
                    "404": {"description": "Not Found", "schema": {"type": "string"}}
                }
            }
        },
        "/breeds": {
            "get": {
                "produces": ["application/json"],
                "tags": ["breeds"],
                "summary": "List breeds",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/animals.breedResponse"}}
                    }
                }
            }
        }
    },
    "definitions": {
        "animals.Breed": {
            "type": "string",
            "enum": ["dog", "cat", "rabbit", "hamster", "parrot"]
        },
        "animals.animalResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "breed": {"$ref": "#/definitions/animals.Breed"},
                "age": {"type": "integer"},
                "weight": {"type": "number"},
                "height": {"type": "number"}
            }
        },
        "animals.breedResponse": {
            "type": "object",
            "properties": {
                "breed": {"$ref": "#/definitions/animals.Breed"},
                "label": {"type": "string"},
                "cover": {"type": "string"}
            }
        },
        "animals.createAnimalRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "breed": {"type": "string"},
                "age": {"type": "string"},
                "weight": {"type": "string"},
                "height": {"type": "string"}
            }
        },
        "animals.validationErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "enum": ["empty_name", "invalid_age", "invalid_weight", "invalid_height"]},
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "animals-safety API",
	Description:      "Animal records: validated creation, listing and details.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
