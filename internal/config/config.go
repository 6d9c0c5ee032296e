package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"outliner/internal/pipeline"
)

type Config struct {
	Port string

	// Auth. Empty disables authentication.
	APIKey string

	// Extraction
	Mode        string
	OCRLanguage string

	// Classifier tunables
	H1Ratio         float64
	MaxHeadingWords int
	DedupPageWindow int

	// Worker pool
	WorkerCount  int
	MaxQueueSize int

	// Upload limits
	MaxUploadBytes int64

	// Job state
	JobTTL time.Duration

	// Batch folders
	InputDir  string
	OutputDir string
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8091"),

		APIKey: os.Getenv("OUTLINER_API_KEY"),

		Mode:        envOr("MODE", "auto"),
		OCRLanguage: envOr("OCR_LANGUAGE", "eng"),

		H1Ratio:         envFloat("H1_RATIO", 1.3),
		MaxHeadingWords: envInt("MAX_HEADING_WORDS", 20),
		DedupPageWindow: envInt("DEDUP_PAGE_WINDOW", 2),

		WorkerCount:  envInt("WORKER_COUNT", 4),
		MaxQueueSize: envInt("MAX_QUEUE_SIZE", 100),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		JobTTL: envDuration("JOB_TTL", 1*time.Hour),

		InputDir:  envOr("INPUT_DIR", "input"),
		OutputDir: envOr("OUTPUT_DIR", "output"),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}
	if cfg.H1Ratio <= 1.0 {
		cfg.H1Ratio = 1.3
	}
	if cfg.MaxHeadingWords <= 0 {
		cfg.MaxHeadingWords = 20
	}
	if cfg.DedupPageWindow <= 0 {
		cfg.DedupPageWindow = 2
	}

	return cfg
}

func (c Config) Validate() error {
	if _, err := pipeline.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("MODE: %w", err)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
