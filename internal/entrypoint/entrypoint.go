package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ayayoy/lendhub/internal/audit"
	"github.com/ayayoy/lendhub/internal/auth"
	"github.com/ayayoy/lendhub/internal/config"
	"github.com/ayayoy/lendhub/internal/database"
	"github.com/ayayoy/lendhub/internal/database/books"
	"github.com/ayayoy/lendhub/internal/database/borrows"
	"github.com/ayayoy/lendhub/internal/database/users"
	http_controllers "github.com/ayayoy/lendhub/internal/http"
	"github.com/ayayoy/lendhub/internal/maintenance"
	"github.com/ayayoy/lendhub/internal/scheduler"
	"github.com/ayayoy/lendhub/internal/storage/providers/disk"
	"github.com/ayayoy/lendhub/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Stop background work before the listener goes away.
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting lendhub v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	imageStore, err := disk.NewStore(cfg.Storage.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize image store: %v", err)
	}

	auditor := audit.NewRecorder(cfg.Audit.Dir)

	bookRepo := books.NewRepository(db.DB)
	userRepo := users.NewRepository(db.DB)
	borrowRepo := borrows.NewRepository(db.DB, cfg.Borrow.PendingLimit)

	// Task queue for out-of-band image cleanup
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	if cfg.Tasks.Enabled {
		taskCfg := tasks.Config{
			Workers:         cfg.Tasks.Workers,
			MaxRetries:      cfg.Tasks.MaxRetries,
			RetryDelay:      cfg.Tasks.RetryDelay,
			ReleaseAfter:    cfg.Tasks.ReleaseAfter,
			CleanupInterval: cfg.Tasks.CleanupInterval,
		}

		taskClient, err = tasks.NewClient(cfg.Database.Path, taskCfg)
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		taskClient.Register(
			tasks.NewCleanupImageQueue(imageStore),
		)

		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)
	}

	// Periodic overdue-loan report
	var reporter *scheduler.OverdueReporter
	if cfg.Reports.OverdueEnabled {
		reporter = scheduler.NewOverdueReporter(borrowRepo, cfg.Reports.OverdueSchedule)
		if err := reporter.Start(); err != nil {
			log.Fatalf("Failed to start overdue report: %v", err)
		}
	}

	if cfg.Auth.Mode == auth.ModeNone {
		log.Printf("Authorization mode: none (every request is treated as admin)")
	} else {
		log.Printf("Authorization mode: %s", cfg.Auth.Mode)
		if cfg.Auth.AdminTokenHash == "" {
			log.Printf("WARNING: no admin token hash configured; admin routes are unreachable")
		}
	}

	authMiddleware := auth.NewMiddleware(cfg.Auth.Mode, auth.DefaultPolicy(), cfg.Auth.AdminTokenHash, userRepo)

	maintenanceMiddleware := maintenance.NewMiddleware(cfg.Global.ReadOnly)
	if maintenanceMiddleware.IsEnabled() {
		log.Printf("Read-only maintenance mode is ON: write endpoints return 503")
	}

	routerCfg := http_controllers.RouterConfig{
		Database:              db,
		Auditor:               auditor,
		CatalogStore:          bookRepo,
		AccountStore:          userRepo,
		BorrowStore:           borrowRepo,
		ImageStore:            imageStore,
		AuthMiddleware:        authMiddleware,
		MaintenanceMiddleware: maintenanceMiddleware,
		TaskClient:            taskClient,
		ResourcePort:          cfg.Storage.ResourcePort,
		Version:               version,
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		if reporter != nil {
			reporter.Stop()
		}
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
	}

	Serve(router, cfg, onShutdown)
}
