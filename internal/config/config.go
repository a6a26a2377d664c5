// Package config loads sheetlocale settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/sheetlocale/pkg/locale"
	"github.com/dmitrymomot/sheetlocale/pkg/logger"
	"github.com/dmitrymomot/sheetlocale/pkg/storage"
)

// Output backends.
const (
	BackendFS = "fs"
	BackendS3 = "s3"
)

// ErrInvalid is returned when a setting has an unusable value.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the complete application configuration.
type Config struct {
	Sheet  Sheet
	Locale Locale
	Output Output
	S3     storage.Config
	Cache  Cache
	HTTP   HTTP
	Log    logger.Config
	Sentry logger.SentryConfig
}

// Sheet configures where the table comes from.
type Sheet struct {
	URL             string        `env:"SHEET_URL"`
	GID             int           `env:"SHEET_GID" envDefault:"-1"`
	Timeout         time.Duration `env:"FETCH_TIMEOUT" envDefault:"30s"`
	MaxSize         int64         `env:"FETCH_MAX_SIZE" envDefault:"52428800"`
	CredentialsFile string        `env:"GOOGLE_CREDENTIALS_FILE"`
}

// Locale configures how rows become locale trees.
// An empty COMMENT_PREFIX falls back to "#"; disable comments with the
// --comment-prefix= flag instead.
type Locale struct {
	KeyColumn             string   `env:"KEY_COLUMN" envDefault:"key"`
	Format                string   `env:"LOCALE_FORMAT" envDefault:"nested"`
	Separator             string   `env:"KEY_SEPARATOR" envDefault:"."`
	AllowLanguages        []string `env:"ALLOW_LANGUAGES" envSeparator:","`
	IncludeMissingAsEmpty bool     `env:"INCLUDE_MISSING_AS_EMPTY" envDefault:"true"`
	CommentPrefix         string   `env:"COMMENT_PREFIX" envDefault:"#"`
	Strict                bool     `env:"STRICT_PATHS" envDefault:"false"`
}

// Output configures where documents are written.
type Output struct {
	Dir       string `env:"OUTPUT_DIR" envDefault:"./locales"`
	Namespace string `env:"LOCALE_NAMESPACE" envDefault:"common"`
	Encoding  string `env:"OUTPUT_ENCODING" envDefault:"json"`
	Backend   string `env:"OUTPUT_BACKEND" envDefault:"fs"`
}

// Cache configures sheet caching for the HTTP server.
type Cache struct {
	RedisURL string        `env:"REDIS_URL"`
	TTL      time.Duration `env:"CACHE_TTL" envDefault:"5m"`
}

// HTTP configures the server command.
type HTTP struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ExportSchedule  string        `env:"EXPORT_SCHEDULE"`
	RequestTimeout  time.Duration `env:"HTTP_REQUEST_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// Load reads optional .env files, then parses the process environment.
// Missing .env files are ignored.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load env file: %w", err)
	}
	return Parse(env.ToMap(os.Environ()))
}

// Parse builds a Config from the given environment map.
func Parse(environ map[string]string) (*Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{Environment: environ})
	if err != nil {
		return nil, fmt.Errorf("config: parse environment: %w", err)
	}
	for i, l := range cfg.Locale.AllowLanguages {
		cfg.Locale.AllowLanguages[i] = strings.TrimSpace(l)
	}
	return &cfg, nil
}

// Validate reports settings that cannot work together.
func (c *Config) Validate() error {
	opts, err := c.LocaleOptions()
	if err != nil {
		return err
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	if _, err := locale.EncoderFor(c.Output.Encoding); err != nil {
		return err
	}
	if c.Output.Namespace == "" {
		return fmt.Errorf("%w: LOCALE_NAMESPACE cannot be empty", ErrInvalid)
	}
	if c.Sheet.GID < -1 {
		return fmt.Errorf("%w: SHEET_GID must be -1 or a tab id", ErrInvalid)
	}
	switch c.Output.Backend {
	case BackendFS:
	case BackendS3:
		if c.S3.Bucket == "" || c.S3.AccessKey == "" || c.S3.SecretKey == "" {
			return fmt.Errorf("%w: s3 backend needs S3_BUCKET, S3_ACCESS_KEY and S3_SECRET_KEY", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown OUTPUT_BACKEND %q", ErrInvalid, c.Output.Backend)
	}
	return nil
}

// LocaleOptions converts the locale settings into builder options.
func (c *Config) LocaleOptions() (locale.Options, error) {
	format, err := locale.ParseFormat(c.Locale.Format)
	if err != nil {
		return locale.Options{}, err
	}

	var allow []string
	for _, l := range c.Locale.AllowLanguages {
		if l != "" {
			allow = append(allow, l)
		}
	}

	return locale.Options{
		KeyColumn:             c.Locale.KeyColumn,
		AllowLanguages:        allow,
		CommentPrefix:         c.Locale.CommentPrefix,
		Separator:             c.Locale.Separator,
		Format:                format,
		IncludeMissingAsEmpty: c.Locale.IncludeMissingAsEmpty,
		Strict:                c.Locale.Strict,
	}, nil
}

// NewStorage opens the configured output backend.
func (c *Config) NewStorage() (storage.Storage, error) {
	if c.Output.Backend == BackendS3 {
		return storage.NewS3(c.S3)
	}
	return storage.NewDir(c.Output.Dir), nil
}
