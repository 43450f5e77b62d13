package main

import (
	"github.com/sirupsen/logrus"

	_ "teamboard/docs"
	"teamboard/internal/config"
	"teamboard/internal/logging"
	"teamboard/internal/server"
)

// @title           Teamboard API
// @version         1.0
// @description     API for the kanban task and team-management dashboard.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @securityDefinitions.apikey IntegrationKey
// @in header
// @name X-API-Key
// @description Shared secret for the integration endpoints.

// @schemes http
func main() {
	logging.Setup()
	cfg := config.Load()

	s, err := server.Init(cfg)
	if err != nil {
		logrus.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}
