package docs

import "github.com/swaggo/swag"

// @title           Teamboard API
// @version         1.0
// @description     API for the kanban task and team-management dashboard: columns, categories, tasks, projects and team member tracking

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token

// @securityDefinitions.apikey IntegrationKey
// @in header
// @name X-API-Key
// @description Shared secret for the integration endpoints

// @tag.name Users
// @tag.description User management operations

// @tag.name Columns
// @tag.description Column management operations

// @tag.name Categories
// @tag.description Category and person-category operations

// @tag.name Tasks
// @tag.description Task management and placement operations

// @tag.name Projects
// @tag.description Project management operations

// @tag.name Team
// @tag.description Team member tracking and the integration surface

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
    "paths": {}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Teamboard API",
	Description:      "API for the kanban task and team-management dashboard.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
