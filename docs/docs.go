// Package docs registers the OpenAPI document of the console with swag.
// The document follows the godoc annotations of internal/controllers and must
// list every route of controllers.SetupRoutes; TestSwaggerDocumentsEveryRoute
// enforces it.
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
        "/": {
            "get": {
                "description": "Links to the store owner and pizza chef screens",
                "produces": ["application/json"],
                "tags": ["home"],
                "summary": "Home screen",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.HomeView"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Check if the service is running",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/store-owner": {
            "get": {
                "description": "Mount the store owner screen and load the topping catalog",
                "produces": ["application/json"],
                "tags": ["store-owner"],
                "summary": "Store owner screen",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.StoreOwnerView"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/controllers.StoreOwnerView"}}
                }
            }
        },
        "/store-owner/toppings": {
            "post": {
                "description": "Create a topping. Blank names are rejected before reaching the backend.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["store-owner"],
                "summary": "Add a topping",
                "parameters": [
                    {"description": "Topping name", "name": "topping", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.ToppingRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.StoreOwnerView"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/controllers.StoreOwnerView"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/controllers.StoreOwnerView"}}
                }
            }
        },
        "/store-owner/toppings/{id}": {
            "put": {
                "description": "Replace the name of a topping",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["store-owner"],
                "summary": "Rename a topping",
                "parameters": [
                    {"type": "integer", "description": "Topping ID", "name": "id", "in": "path", "required": true},
                    {"description": "New name", "name": "topping", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.ToppingRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.StoreOwnerView"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.APIError"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/controllers.StoreOwnerView"}}
                }
            },
            "delete": {
                "description": "Delete a topping. Pizzas on other screens keep it until they refresh.",
                "produces": ["application/json"],
                "tags": ["store-owner"],
                "summary": "Remove a topping",
                "parameters": [
                    {"type": "integer", "description": "Topping ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.StoreOwnerView"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.APIError"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/controllers.StoreOwnerView"}}
                }
            }
        },
        "/store-owner/toppings/{id}/edit": {
            "post": {
                "description": "Put a row in edit mode, or save its draft when it is already in edit mode",
                "produces": ["application/json"],
                "tags": ["store-owner"],
                "summary": "Edit or save a topping row",
                "parameters": [
                    {"type": "integer", "description": "Topping ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.StoreOwnerView"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/controllers.StoreOwnerView"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/controllers.StoreOwnerView"}}
                }
            },
            "patch": {
                "description": "Change the temporary name of a row in edit mode",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["store-owner"],
                "summary": "Change a row draft",
                "parameters": [
                    {"type": "integer", "description": "Topping ID", "name": "id", "in": "path", "required": true},
                    {"description": "Draft name", "name": "draft", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.ToppingRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.StoreOwnerView"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/controllers.StoreOwnerView"}}
                }
            },
            "delete": {
                "description": "Leave edit mode and discard the draft",
                "produces": ["application/json"],
                "tags": ["store-owner"],
                "summary": "Cancel a row edit",
                "parameters": [
                    {"type": "integer", "description": "Topping ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.StoreOwnerView"}}
                }
            }
        },
        "/pizza-chef": {
            "get": {
                "description": "Mount the pizza chef screen, loading pizzas and toppings in parallel",
                "produces": ["application/json"],
                "tags": ["pizza-chef"],
                "summary": "Pizza chef screen",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.PizzaChefView"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/controllers.PizzaChefView"}}
                }
            }
        },
        "/pizza-chef/form": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pizza-chef"],
                "summary": "Type the new pizza name",
                "parameters": [
                    {"description": "Pizza name", "name": "form", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.ToppingRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.PizzaChefView"}}
                }
            }
        },
        "/pizza-chef/form/toppings/{toppingId}": {
            "post": {
                "produces": ["application/json"],
                "tags": ["pizza-chef"],
                "summary": "Select a topping for the new pizza",
                "parameters": [
                    {"type": "integer", "description": "Topping ID", "name": "toppingId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.PizzaChefView"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/controllers.PizzaChefView"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["pizza-chef"],
                "summary": "Deselect a topping of the new pizza",
                "parameters": [
                    {"type": "integer", "description": "Topping ID", "name": "toppingId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.PizzaChefView"}}
                }
            }
        },
        "/pizza-chef/pizzas": {
            "post": {
                "description": "Submit the new-pizza form. A request body, when present, is used instead of the form.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pizza-chef"],
                "summary": "Add a pizza",
                "parameters": [
                    {"description": "Pizza name and topping ids", "name": "pizza", "in": "body", "schema": {"$ref": "#/definitions/models.PizzaRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.PizzaChefView"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/controllers.PizzaChefView"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/controllers.PizzaChefView"}}
                }
            }
        },
        "/pizza-chef/pizzas/{id}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["pizza-chef"],
                "summary": "Delete a pizza",
                "parameters": [
                    {"type": "integer", "description": "Pizza ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.PizzaChefView"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.APIError"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/controllers.PizzaChefView"}}
                }
            }
        },
        "/pizza-chef/pizzas/{id}/edit": {
            "post": {
                "description": "Move the edit cursor to a pizza, discarding any edit in progress",
                "produces": ["application/json"],
                "tags": ["pizza-chef"],
                "summary": "Edit a pizza",
                "parameters": [
                    {"type": "integer", "description": "Pizza ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.PizzaChefView"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/controllers.PizzaChefView"}}
                }
            }
        },
        "/pizza-chef/edit": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pizza-chef"],
                "summary": "Rename the pizza being edited",
                "parameters": [
                    {"description": "Draft name", "name": "draft", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.ToppingRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.PizzaChefView"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/controllers.PizzaChefView"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["pizza-chef"],
                "summary": "Cancel the pizza edit",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.PizzaChefView"}}
                }
            }
        },
        "/pizza-chef/edit/toppings/{toppingId}": {
            "post": {
                "produces": ["application/json"],
                "tags": ["pizza-chef"],
                "summary": "Select a topping for the pizza being edited",
                "parameters": [
                    {"type": "integer", "description": "Topping ID", "name": "toppingId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.PizzaChefView"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/controllers.PizzaChefView"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/controllers.PizzaChefView"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["pizza-chef"],
                "summary": "Deselect a topping of the pizza being edited",
                "parameters": [
                    {"type": "integer", "description": "Topping ID", "name": "toppingId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.PizzaChefView"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/controllers.PizzaChefView"}}
                }
            }
        },
        "/pizza-chef/edit/commit": {
            "post": {
                "description": "Validate and submit the draft. The cursor stays on the pizza when saving fails.",
                "produces": ["application/json"],
                "tags": ["pizza-chef"],
                "summary": "Save the pizza being edited",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.PizzaChefView"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/controllers.PizzaChefView"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/controllers.PizzaChefView"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/controllers.PizzaChefView"}}
                }
            }
        }
    },
    "definitions": {
        "catalog.PizzaDraft": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "toppings": {"type": "array", "items": {"$ref": "#/definitions/models.Topping"}}
            }
        },
        "controllers.HomeView": {
            "type": "object",
            "properties": {
                "screens": {"type": "array", "items": {"$ref": "#/definitions/controllers.ScreenLink"}},
                "service": {"type": "string"}
            }
        },
        "controllers.PizzaChefView": {
            "type": "object",
            "properties": {
                "editing": {"$ref": "#/definitions/catalog.PizzaDraft"},
                "error": {"type": "string"},
                "form": {"$ref": "#/definitions/catalog.PizzaDraft"},
                "pizzas": {"type": "array", "items": {"$ref": "#/definitions/models.Pizza"}},
                "problem": {"$ref": "#/definitions/models.APIError"},
                "toppings": {"type": "array", "items": {"$ref": "#/definitions/models.Topping"}}
            }
        },
        "controllers.ScreenLink": {
            "type": "object",
            "properties": {
                "path": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "controllers.StoreOwnerView": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "problem": {"$ref": "#/definitions/models.APIError"},
                "toppings": {"type": "array", "items": {"$ref": "#/definitions/controllers.ToppingRowView"}}
            }
        },
        "controllers.ToppingRowView": {
            "type": "object",
            "properties": {
                "draft": {"type": "string"},
                "editing": {"type": "boolean"},
                "id": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "models.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "details": {"type": "object", "additionalProperties": true},
                "message": {"type": "string"}
            }
        },
        "models.Pizza": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "toppings": {"type": "array", "items": {"$ref": "#/definitions/models.Topping"}}
            }
        },
        "models.PizzaRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "toppingIds": {"type": "array", "items": {"type": "integer"}}
            }
        },
        "models.Topping": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "models.ToppingRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Pizza Manager Console API",
	Description:      "Screens of the pizza manager: store owner topping catalog and pizza chef workbench",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
