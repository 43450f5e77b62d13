package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"teamboard/internal/config"
	"teamboard/internal/handler"
	"teamboard/internal/middleware"
	"teamboard/internal/repository"
	"teamboard/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
}

func Init(cfg *config.Config) (*Server, error) {
	// Setup GORM
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
	}
	logrus.Info("✅ Connected to database")

	if err := runMigrations(cfg); err != nil {
		return nil, fmt.Errorf("❌ migrations failed: %w", err)
	}
	logrus.Info("✅ Migrations applied")

	// Snapshot store: postgres by default, a JSON file for local single-user runs
	var snapshot store.Store
	if cfg.StorageDriver == "file" {
		snapshot = store.NewFileStore(cfg.StateFile)
		logrus.WithField("path", cfg.StateFile).Info("📁 Using file snapshot store")
	} else {
		snapshot = store.NewDBStore(db)
	}

	// Setup Gin
	r := gin.Default()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	columnRepo := repository.NewColumnRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	memberRepo := repository.NewMemberRepository(db)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userRepo)
	taskHandler := handler.NewTaskHandler(taskRepo, columnRepo, snapshot)
	categoryHandler := handler.NewCategoryHandler(categoryRepo, snapshot)
	columnHandler := handler.NewColumnHandler(columnRepo, snapshot)
	projectHandler := handler.NewProjectHandler(projectRepo)
	memberHandler := handler.NewMemberHandler(memberRepo)
	teamHandler := handler.NewTeamHandler(memberRepo)
	stateHandler := handler.NewStateHandler(snapshot)

	// Public routes
	r.POST("/register", userHandler.Register)
	r.POST("/login", userHandler.Login)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes - require authentication
	authorized := r.Group("/")
	authorized.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	{
		// Snapshot routes
		authorized.GET("/state", stateHandler.Get)
		authorized.PUT("/state", stateHandler.Put)

		// Column routes
		authorized.POST("/columns", columnHandler.Create)
		authorized.GET("/columns", columnHandler.GetAll)
		authorized.GET("/columns/:id", columnHandler.GetByID)
		authorized.PUT("/columns/:id", columnHandler.Update)
		authorized.DELETE("/columns/:id", columnHandler.Delete)
		authorized.POST("/columns/reorder", columnHandler.Reorder)
		authorized.GET("/columns/:id/tasks", columnHandler.GetTasks)
		authorized.GET("/columns/:id/categories", categoryHandler.GetByColumn)

		// Task routes
		authorized.POST("/tasks", taskHandler.Create)
		authorized.GET("/tasks", taskHandler.GetAll)
		authorized.GET("/tasks/:id", taskHandler.GetByID)
		authorized.PUT("/tasks/:id", taskHandler.Update)
		authorized.DELETE("/tasks/:id", taskHandler.Delete)
		authorized.POST("/tasks/:id/move", taskHandler.Move)

		// Category routes
		authorized.POST("/categories", categoryHandler.Create)
		authorized.PUT("/categories/:id", categoryHandler.Update)
		authorized.DELETE("/categories/:id", categoryHandler.Delete)
		authorized.POST("/categories/person", categoryHandler.EnsurePerson)
		authorized.POST("/categories/:id/team-member", categoryHandler.SetTeamMember)
		authorized.GET("/categories/persons", categoryHandler.VisiblePersons)

		// Project routes
		authorized.POST("/projects", projectHandler.Create)
		authorized.GET("/projects", projectHandler.GetAll)
		authorized.GET("/projects/:id", projectHandler.GetByID)
		authorized.PUT("/projects/:id", projectHandler.Update)
		authorized.DELETE("/projects/:id", projectHandler.Delete)

		// Team member routes
		authorized.POST("/members", memberHandler.Create)
		authorized.GET("/members", memberHandler.GetAll)
		authorized.GET("/members/:id", memberHandler.GetByID)
		authorized.PUT("/members/:id", memberHandler.Update)
		authorized.DELETE("/members/:id", memberHandler.Delete)
		authorized.POST("/members/:id/goals", memberHandler.AddGoal)
	}

	// Integration routes - shared-secret API key
	integration := r.Group("/integration")
	integration.Use(middleware.APIKeyMiddleware(cfg.APIKey))
	{
		integration.POST("/log-checkin", teamHandler.LogCheckIn)
		integration.POST("/log-one-on-one", teamHandler.LogOneOnOne)
		integration.POST("/add-red-flag", teamHandler.AddRedFlag)
		integration.POST("/remove-red-flag", teamHandler.RemoveRedFlag)
		integration.POST("/update-goal", teamHandler.UpdateGoal)
		integration.GET("/team-pulse", teamHandler.TeamPulse)
	}

	return &Server{
		Engine: r,
		DB:     db,
		Config: cfg,
	}, nil
}

func runMigrations(cfg *config.Config) error {
	dbURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName,
	)
	m, err := migrate.New("file://"+cfg.MigrationsPath, dbURL)
	if err != nil {
		return err
	}
	defer m.Close()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		logrus.Infof("🚀 Server running on port %s", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("❌ Failed to listen: %s", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Fatalf("❌ Server forced to shutdown: %s", err)
	}

	logrus.Info("✅ Server exited properly")
}
