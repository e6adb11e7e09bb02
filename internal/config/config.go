// Package config loads the application settings from the environment.
//
// A .env file next to the working directory is loaded first if present;
// variables already set in the environment win.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Settings holds everything the application reads from the environment.
type Settings struct {
	// DatabasePath is the sqlite file backing the table store.
	DatabasePath string
	// AttachmentsDir is the root directory of the local object store.
	AttachmentsDir string
	// AttachmentsBaseURL is prepended to storage paths to form public URLs.
	AttachmentsBaseURL string
	// PrefsPath is the JSON file holding the last-used entry form values.
	PrefsPath string
	// AnalyticsURL is the embedded analytics dashboard address.
	AnalyticsURL string
	// DefaultUserID preselects the active user at startup. Optional.
	DefaultUserID uuid.UUID
	// LogFormat is "human" or "json".
	LogFormat string
}

var ErrInvalidDefaultUserID = errors.New("DEFAULT_USER_ID is not a valid UUID")

// Load reads the settings and validates them. Callers must treat an error
// as fatal before constructing anything else.
func Load() (Settings, error) {
	// A missing .env file is fine, the environment may be set directly.
	_ = godotenv.Load()

	settings := Settings{
		DatabasePath:       lookup("DATABASE_PATH", "data/budget.db"),
		AttachmentsDir:     lookup("ATTACHMENTS_DIR", "data/attachments"),
		AttachmentsBaseURL: os.Getenv("ATTACHMENTS_BASE_URL"),
		PrefsPath:          lookup("PREFS_PATH", "user_prefs.json"),
		AnalyticsURL:       lookup("ANALYTICS_URL", "http://localhost:3000"),
		LogFormat:          lookup("LOG_FORMAT", "human"),
	}

	if raw, ok := os.LookupEnv("DEFAULT_USER_ID"); ok && raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return Settings{}, fmt.Errorf("%w: %q", ErrInvalidDefaultUserID, raw)
		}
		settings.DefaultUserID = id
	}

	return settings, settings.validate()
}

func (s Settings) validate() error {
	var missing []string
	if s.AttachmentsBaseURL == "" {
		missing = append(missing, "ATTACHMENTS_BASE_URL")
	}
	if s.DatabasePath == "" {
		missing = append(missing, "DATABASE_PATH")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required settings: %s", strings.Join(missing, ", "))
	}
	return nil
}

func lookup(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
