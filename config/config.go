package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config настройки приложения
type Config struct {
	TelegramToken string

	FaceCascade    string `validate:"required"`
	EyeCascade     string `validate:"required"`
	AltFaceCascade string `validate:"required"`
	AltEyeCascade  string `validate:"required"`

	ProfileSize int    `validate:"min=64,max=4096"`
	Workers     int    `validate:"min=1,max=64"`
	Seed        uint64 // 0 — сид от текущего времени
	SessionTTL  time.Duration

	LogLevel string `validate:"oneof=debug info warn error"`
	LogFile  string
}

const (
	defaultCascadeDir  = "resources/haarcascade"
	defaultProfileSize = 720
	defaultWorkers     = 4
	defaultSessionTTL  = 24 * time.Hour
)

var validate = validator.New()

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	dir := getenv("CASCADE_DIR", defaultCascadeDir)

	cfg := &Config{
		TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
		FaceCascade:    getenv("FACE_CASCADE", filepath.Join(dir, "haarcascade_frontalface_tree_alt.xml")),
		EyeCascade:     getenv("EYE_CASCADE", filepath.Join(dir, "haarcascade_eyes_update.xml")),
		AltFaceCascade: getenv("ALT_FACE_CASCADE", filepath.Join(dir, "haarcascade_anime_face.xml")),
		AltEyeCascade:  getenv("ALT_EYE_CASCADE", filepath.Join(dir, "haarcascade_anime_eyes.xml")),
		ProfileSize:    defaultProfileSize,
		Workers:        defaultWorkers,
		SessionTTL:     defaultSessionTTL,
		LogLevel:       getenv("LOG_LEVEL", "info"),
		LogFile:        os.Getenv("LOG_FILE"),
	}

	var err error
	if cfg.ProfileSize, err = intEnv("PROFILE_SIZE", cfg.ProfileSize); err != nil {
		return nil, err
	}
	if cfg.Workers, err = intEnv("WORKERS", cfg.Workers); err != nil {
		return nil, err
	}
	if v := os.Getenv("SEED"); v != "" {
		if cfg.Seed, err = strconv.ParseUint(v, 10, 64); err != nil {
			return nil, fmt.Errorf("parse SEED: %w", err)
		}
	}
	if v := os.Getenv("SESSION_TTL"); v != "" {
		if cfg.SessionTTL, err = time.ParseDuration(v); err != nil {
			return nil, fmt.Errorf("parse SESSION_TTL: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет значения настроек
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// CascadePaths возвращает пути к каскадам в порядке face, eye, alt face, alt eye.
func (c *Config) CascadePaths() [4]string {
	return [4]string{c.FaceCascade, c.EyeCascade, c.AltFaceCascade, c.AltEyeCascade}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func intEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return n, nil
}
