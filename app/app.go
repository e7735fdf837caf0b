package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"linedori-web/app/controller"
	"linedori-web/app/router"
	"linedori-web/db"
	"linedori-web/home"
	"linedori-web/repository"
	"linedori-web/service"
)

// Settings is the environment driven configuration of the server
type Settings struct {
	Port             string
	BackendURL       string
	PublicBaseURL    string
	UploadDir        string
	LayoutConfigPath string
	CredentialsPath  string
	SessionTTL       time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// LoadSettings reads Settings from environment variables
func LoadSettings() Settings {
	port := getenv("PORT", "8080")
	if len(port) > 0 && port[0] == ':' {
		port = port[1:]
	}
	self := "http://localhost:" + port

	ttlHours := 24 * 7
	if v := os.Getenv("SESSION_TTL_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ttlHours = n
		} else {
			log.Printf("⚠️  Invalid SESSION_TTL_HOURS %q, using %d", v, ttlHours)
		}
	}

	backend := getenv("BACKEND_URL", self)
	return Settings{
		Port:             port,
		BackendURL:       backend,
		PublicBaseURL:    getenv("PUBLIC_BASE_URL", self),
		UploadDir:        getenv("UPLOAD_DIR", "uploads"),
		LayoutConfigPath: getenv("LAYOUT_CONFIG", "config/layout.yaml"),
		CredentialsPath:  os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		SessionTTL:       time.Duration(ttlHours) * time.Hour,
	}
}

// Initialize connects the database, wires services and controllers and returns the HTTP handler.
// Background work (layout config watch, session purge) stops when ctx is cancelled.
func Initialize(ctx context.Context, settings Settings) (http.Handler, error) {
	if err := db.InitDB(); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := db.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	layout, err := home.NewConfigStore(settings.LayoutConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load layout config: %w", err)
	}
	go func() {
		if err := layout.Watch(ctx); err != nil {
			log.Printf("⚠️  Layout config watch stopped: %v", err)
		}
	}()

	storage, err := service.NewStorageService(settings.UploadDir)
	if err != nil {
		return nil, err
	}

	var drive service.DriveServiceInterface
	if settings.CredentialsPath != "" {
		driveService, err := service.NewDriveService(ctx, settings.CredentialsPath)
		if err != nil {
			return nil, err
		}
		drive = driveService
	} else {
		log.Printf("⚠️  GOOGLE_APPLICATION_CREDENTIALS not set, Drive image import disabled")
	}

	// Repositories
	projectRepo := repository.NewProjectRepository()
	studioRepo := repository.NewStudioRepository()
	teamRepo := repository.NewTeamRepository()
	pressRepo := repository.NewPressRepository()
	userRepo := repository.NewUserRepository()
	sessionRepo := repository.NewSessionRepository()

	// Services
	authService := service.NewAuthService(userRepo, sessionRepo, settings.SessionTTL)
	projectService := service.NewProjectService(projectRepo, storage, drive)
	fetcher := service.NewContentFetcher(settings.BackendURL, nil)
	pdfService := service.NewPDFService(settings.PublicBaseURL)
	renderer, err := service.NewPageRenderer()
	if err != nil {
		return nil, err
	}

	go purgeSessions(ctx, authService)

	controllers := &router.Controllers{
		Auth:    controller.NewAuthController(authService),
		Project: controller.NewProjectController(projectRepo, projectService),
		Team:    controller.NewTeamController(teamRepo, storage),
		Press:   controller.NewPressController(pressRepo, storage),
		Studio:  controller.NewStudioController(studioRepo, storage),
		Page:    controller.NewPageController(fetcher, renderer, pdfService, layout),
	}

	log.Printf("✓ Application initialized (backend=%s, uploads=%s)", settings.BackendURL, settings.UploadDir)
	return router.SetupRoutes(controllers, settings.UploadDir), nil
}

func purgeSessions(ctx context.Context, auth *service.AuthService) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := auth.PurgeExpiredSessions(ctx); err != nil {
				log.Printf("❌ Failed to purge sessions: %v", err)
			}
		}
	}
}
