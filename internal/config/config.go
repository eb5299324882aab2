package config

import (
	"time"

	"github.com/spf13/viper"

	"github.com/ayayoy/lendhub/internal/auth"
)

type (
	Config struct {
		HTTP
		Database
		Storage
		Borrow
		Auth
		Audit
		Tasks
		Reports
		Global
	}

	HTTP struct {
		Port int32
		Host string
	}
	Database struct {
		Path string
	}
	Storage struct {
		// UploadDir is where the disk blob store keeps book images.
		UploadDir string
		// ResourcePort is the fixed port of the external server that
		// serves image blobs; resolved image URLs point at it.
		ResourcePort int32
	}
	Borrow struct {
		// PendingLimit caps simultaneous pending requests per user.
		PendingLimit int
	}
	Auth struct {
		Mode           auth.Mode
		AdminTokenHash string // bcrypt hash of the admin bearer token
	}
	Audit struct {
		Dir string
	}
	Tasks struct {
		Enabled         bool
		Workers         int
		MaxRetries      int
		RetryDelay      time.Duration
		ReleaseAfter    time.Duration
		CleanupInterval time.Duration
	}
	Reports struct {
		OverdueEnabled  bool
		OverdueSchedule string // cron format: "0 8 * * *" = daily at 08:00
	}
	Global struct {
		ShutdownTimeoutInSeconds int
		// ReadOnly blocks all write endpoints while still serving reads,
		// for maintenance windows and backups.
		ReadOnly bool
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8080)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("read_only", false)
	v.SetDefault("database_path", "./lendhub.db")
	v.SetDefault("upload_dir", "./upload")
	v.SetDefault("resource_port", 4000)
	v.SetDefault("borrow_limit", 3)
	v.SetDefault("audit_dir", "./audit")

	// Auth defaults
	v.SetDefault("auth_mode", "none")
	v.SetDefault("auth_admin_token_hash", "")

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 2)
	v.SetDefault("task_max_retries", 3)
	v.SetDefault("task_retry_delay", "1m")
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")

	// Overdue report defaults
	v.SetDefault("overdue_report_enabled", true)
	v.SetDefault("overdue_report_schedule", "0 8 * * *")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Storage: Storage{
			UploadDir:    v.GetString("UPLOAD_DIR"),
			ResourcePort: v.GetInt32("RESOURCE_PORT"),
		},
		Borrow: Borrow{
			PendingLimit: v.GetInt("BORROW_LIMIT"),
		},
		Auth: Auth{
			Mode:           auth.Mode(v.GetString("AUTH_MODE")),
			AdminTokenHash: v.GetString("AUTH_ADMIN_TOKEN_HASH"),
		},
		Audit: Audit{
			Dir: v.GetString("AUDIT_DIR"),
		},
		Tasks: Tasks{
			Enabled:         v.GetBool("TASKS_ENABLED"),
			Workers:         v.GetInt("TASK_WORKERS"),
			MaxRetries:      v.GetInt("TASK_MAX_RETRIES"),
			RetryDelay:      v.GetDuration("TASK_RETRY_DELAY"),
			ReleaseAfter:    v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval: v.GetDuration("TASK_CLEANUP_INTERVAL"),
		},
		Reports: Reports{
			OverdueEnabled:  v.GetBool("OVERDUE_REPORT_ENABLED"),
			OverdueSchedule: v.GetString("OVERDUE_REPORT_SCHEDULE"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
			ReadOnly:                 v.GetBool("READ_ONLY"),
		},
	}
}
