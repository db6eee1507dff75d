// Package docs registers the OpenAPI description served at /swagger.
// Regenerate with: swag init -g cmd/server/main.go
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
        "/accounts/v1/accounts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "List active accounts",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/account.ListResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Open an account",
                "parameters": [
                    {"description": "Account details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/account.CreateAccountRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/account.Summary"}},
                    "400": {"description": "Invalid balance or account limit reached", "schema": {"$ref": "#/definitions/common.ErrorResponse"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            }
        },
        "/accounts/v1/accounts/transfer": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Transfer funds",
                "parameters": [
                    {"description": "Transfer details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/account.TransferRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/account.TransferResponse"}},
                    "400": {"description": "Closed account, insufficient funds, non-positive amount or same account", "schema": {"$ref": "#/definitions/common.ErrorResponse"}},
                    "404": {"description": "Source or destination not found", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            }
        },
        "/accounts/v1/accounts/{accountNumber}/close": {
            "post": {
                "tags": ["accounts"],
                "summary": "Close an account",
                "parameters": [
                    {"type": "string", "description": "Account number", "name": "accountNumber", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "Closed"},
                    "404": {"description": "Account not found", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            }
        },
        "/accounts/v1/accounts/{accountNumber}/transactions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "List account transactions",
                "parameters": [
                    {"type": "string", "description": "Account number", "name": "accountNumber", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/account.HistoryResponse"}},
                    "404": {"description": "Account not found", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            }
        },
        "/users/v1/kyc": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["kyc"],
                "summary": "Save KYC profile",
                "parameters": [
                    {"description": "Profile details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/kyc.UpsertProfileRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/kyc.ProfileResponse"}},
                    "400": {"description": "Underage or salary out of range", "schema": {"$ref": "#/definitions/common.ErrorResponse"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            }
        },
        "/users/v1/kyc/{userId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["kyc"],
                "summary": "Get KYC profile",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "userId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/kyc.ProfileResponse"}},
                    "404": {"description": "Profile not found", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            }
        },
        "/users/v1/register": {
            "post": {
                "consumes": ["application/json"],
                "tags": ["users"],
                "summary": "Register a user",
                "parameters": [
                    {"description": "Credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/user.RegisterRequest"}}
                ],
                "responses": {
                    "200": {"description": "Registered"},
                    "400": {"description": "Username taken, too short or too long", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            }
        },
        "/auth/v1/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "User login",
                "parameters": [
                    {"description": "Login credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/auth.LoginInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/auth.TokenResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "account.CreateAccountRequest": {
            "type": "object",
            "required": ["userId"],
            "properties": {
                "userId": {"type": "string", "format": "uuid"},
                "initialBalance": {"type": "number", "example": 777.777},
                "name": {"type": "string", "example": "savings"}
            }
        },
        "account.Summary": {
            "type": "object",
            "properties": {
                "userId": {"type": "string", "format": "uuid"},
                "balance": {"type": "number", "example": 777.777},
                "accountNumber": {"type": "string", "example": "77123456789012"},
                "name": {"type": "string"}
            }
        },
        "account.ListResponse": {
            "type": "object",
            "properties": {
                "accounts": {"type": "array", "items": {"$ref": "#/definitions/account.Summary"}}
            }
        },
        "account.TransferRequest": {
            "type": "object",
            "required": ["sourceAccountNumber", "destinationAccountNumber"],
            "properties": {
                "sourceAccountNumber": {"type": "string", "example": "77123456789012"},
                "destinationAccountNumber": {"type": "string", "example": "77987654321098"},
                "amount": {"type": "number", "example": 50}
            }
        },
        "account.TransferResponse": {
            "type": "object",
            "properties": {
                "newBalance": {"type": "number", "example": 50}
            }
        },
        "account.TransactionDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "format": "uuid"},
                "sourceAccountId": {"type": "string", "format": "uuid"},
                "destinationAccountId": {"type": "string", "format": "uuid"},
                "amount": {"type": "number"},
                "createdAt": {"type": "string"}
            }
        },
        "account.HistoryResponse": {
            "type": "object",
            "properties": {
                "transactions": {"type": "array", "items": {"$ref": "#/definitions/account.TransactionDTO"}}
            }
        },
        "kyc.UpsertProfileRequest": {
            "type": "object",
            "required": ["userId", "dateOfBirth"],
            "properties": {
                "userId": {"type": "string", "format": "uuid"},
                "firstName": {"type": "string", "example": "Jane"},
                "lastName": {"type": "string", "example": "Doe"},
                "dateOfBirth": {"type": "string", "example": "1990-04-23"},
                "salary": {"type": "number", "example": 1500}
            }
        },
        "kyc.ProfileResponse": {
            "type": "object",
            "properties": {
                "userId": {"type": "string", "format": "uuid"},
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "dateOfBirth": {"type": "string", "example": "1990-04-23"},
                "salary": {"type": "number", "example": 1500}
            }
        },
        "user.RegisterRequest": {
            "type": "object",
            "required": ["password"],
            "properties": {
                "username": {"type": "string", "example": "testuser"},
                "password": {"type": "string", "example": "password123"}
            }
        },
        "auth.LoginInput": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string", "example": "testuser"},
                "password": {"type": "string", "example": "password123"}
            }
        },
        "auth.TokenResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"}
            }
        },
        "common.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "source account is closed"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Enter your Bearer token in the format: Bearer {token}",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Banking API",
	Description:      "Accounts, transfers, KYC profiles and user registration.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
