package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"archive-listing/internal/parser"
)

const (
	EnvLogLevel = "ARCHIVE_LISTING_LOG_LEVEL"
	EnvLimit    = "ARCHIVE_LISTING_LIMIT"
	EnvFormat   = "ARCHIVE_LISTING_FORMAT"

	FormatTable = "table"
	FormatJSON  = "json"
)

type Config struct {
	LogLevel string
	Limit    int
	Format   string
}

func Default() Config {
	return Config{
		LogLevel: "info",
		Limit:    parser.NoLimit,
		Format:   FormatTable,
	}
}

// Load reads envFile (if it exists) into the process environment and then
// builds a Config from the environment. Variables that are already set win
// over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	cfg := Default()
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLimit)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", EnvLimit, v, err)
		}
		cfg.Limit = n
	}
	if v := strings.TrimSpace(os.Getenv(EnvFormat)); v != "" {
		cfg.Format = strings.ToLower(v)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Format {
	case FormatTable, FormatJSON:
	default:
		return fmt.Errorf("invalid output format %q", c.Format)
	}
	if c.Limit < parser.NoLimit {
		return fmt.Errorf("invalid limit %d", c.Limit)
	}
	return nil
}
