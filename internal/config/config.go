// Package config collects the shortener settings from, in rising priority,
// built-in defaults, an optional JSON file, command-line flags and the
// environment. A .env file in the working directory is loaded into the
// environment first when present.
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultSecretKey is the built-in token signing key. It is public, so any
// deployment that keeps it accepts forged tokens.
const DefaultSecretKey = "test_secret_key"

// Options holds the configuration values for the application.
type Options struct {
	// Port defines the server's listening address (ip:port).
	Port string

	// ResultHostname is the base URL short links are rendered with.
	ResultHostname string

	// DatabaseDSN selects the PostgreSQL store; empty means in-memory.
	DatabaseDSN string

	// RedisURL selects the Redis cache; empty means an in-process cache.
	RedisURL string

	// SecretKey signs bearer tokens.
	SecretKey string

	ShortCodeLength    int
	LinkExpirationDays int
	CacheTTL           time.Duration

	// SweepInterval enables the periodic expiry sweep when positive.
	SweepInterval time.Duration

	// TrustedSubnet is the CIDR allowed to read internal stats.
	TrustedSubnet string

	EnableHTTPS bool
	EnablePprof bool
	LogLevel    string

	// Config is the path of the optional JSON file.
	Config string
}

// fileOptions mirrors Options as read from JSON. Nil fields are absent.
type fileOptions struct {
	Port               *string `json:"server_address"`
	ResultHostname     *string `json:"base_url"`
	DatabaseDSN        *string `json:"database_dsn"`
	RedisURL           *string `json:"redis_url"`
	SecretKey          *string `json:"secret_key"`
	ShortCodeLength    *int    `json:"short_code_length"`
	LinkExpirationDays *int    `json:"link_expiration_days"`
	CacheTTL           *string `json:"cache_ttl"`
	SweepInterval      *string `json:"sweep_interval"`
	TrustedSubnet      *string `json:"trusted_subnet"`
	EnableHTTPS        *bool   `json:"enable_https"`
	EnablePprof        *bool   `json:"enable_pprof"`
	LogLevel           *string `json:"log_level"`
}

func defaults() *Options {
	return &Options{
		Port:               "localhost:8080",
		ResultHostname:     "http://localhost:8080",
		SecretKey:          DefaultSecretKey,
		ShortCodeLength:    6,
		LinkExpirationDays: 180,
		CacheTTL:           time.Hour,
		LogLevel:           "info",
		Config:             "config.json",
	}
}

// LinkLifetime is the default expiry applied to new links.
func (o *Options) LinkLifetime() time.Duration {
	return time.Duration(o.LinkExpirationDays) * 24 * time.Hour
}

// Parse reads the process arguments and environment.
func Parse() (*Options, error) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs is Parse over an explicit argument list.
func ParseArgs(args []string) (*Options, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	options := defaults()

	// The file sits below flags, so its path has to be known before the
	// real flag pass.
	path, err := configPath(args, options.Config)
	if err != nil {
		return nil, err
	}
	options.Config = path
	if err := loadFile(path, options); err != nil {
		return nil, err
	}

	flags := newFlagSet(options)
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	if err := applyEnv(options); err != nil {
		return nil, err
	}

	return options, options.validate()
}

func newFlagSet(o *Options) *flag.FlagSet {
	f := flag.NewFlagSet("shortener", flag.ContinueOnError)

	f.StringVar(&o.Port, "a", o.Port, "run on ip:port server")
	f.StringVar(&o.ResultHostname, "b", o.ResultHostname, "result base url")
	f.StringVar(&o.DatabaseDSN, "d", o.DatabaseDSN, "db address")
	f.StringVar(&o.RedisURL, "r", o.RedisURL, "redis url")
	f.StringVar(&o.SecretKey, "k", o.SecretKey, "token signing key")
	f.IntVar(&o.ShortCodeLength, "l", o.ShortCodeLength, "length of generated short codes")
	f.IntVar(&o.LinkExpirationDays, "e", o.LinkExpirationDays, "default link lifetime in days")
	f.DurationVar(&o.CacheTTL, "t", o.CacheTTL, "cache entry ttl")
	f.DurationVar(&o.SweepInterval, "w", o.SweepInterval, "expired links sweep interval, 0 disables")
	f.StringVar(&o.TrustedSubnet, "n", o.TrustedSubnet, "trusted subnet CIDR")
	f.BoolVar(&o.EnableHTTPS, "s", o.EnableHTTPS, "enable https")
	f.BoolVar(&o.EnablePprof, "p", o.EnablePprof, "enable pprof")
	f.StringVar(&o.LogLevel, "v", o.LogLevel, "log level")
	f.StringVar(&o.Config, "c", o.Config, "path to json config")

	return f
}

// configPath finds -c or CONFIG without touching the other options.
func configPath(args []string, def string) (string, error) {
	probe := newFlagSet(defaults())
	probe.SetOutput(io.Discard)
	if err := probe.Parse(args); err != nil {
		return "", err
	}

	path := def
	probe.Visit(func(f *flag.Flag) {
		if f.Name == "c" {
			path = f.Value.String()
		}
	})
	if env := os.Getenv("CONFIG"); env != "" {
		path = env
	}

	return path, nil
}

func loadFile(path string, o *Options) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var f fileOptions
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&o.Port, f.Port)
	setString(&o.ResultHostname, f.ResultHostname)
	setString(&o.DatabaseDSN, f.DatabaseDSN)
	setString(&o.RedisURL, f.RedisURL)
	setString(&o.SecretKey, f.SecretKey)
	setString(&o.TrustedSubnet, f.TrustedSubnet)
	setString(&o.LogLevel, f.LogLevel)
	if f.ShortCodeLength != nil {
		o.ShortCodeLength = *f.ShortCodeLength
	}
	if f.LinkExpirationDays != nil {
		o.LinkExpirationDays = *f.LinkExpirationDays
	}
	if f.EnableHTTPS != nil {
		o.EnableHTTPS = *f.EnableHTTPS
	}
	if f.EnablePprof != nil {
		o.EnablePprof = *f.EnablePprof
	}
	if err := setDuration(&o.CacheTTL, f.CacheTTL); err != nil {
		return fmt.Errorf("config cache_ttl: %w", err)
	}
	if err := setDuration(&o.SweepInterval, f.SweepInterval); err != nil {
		return fmt.Errorf("config sweep_interval: %w", err)
	}

	return nil
}

func applyEnv(o *Options) error {
	envString("SERVER_ADDRESS", &o.Port)
	envString("BASE_URL", &o.ResultHostname)
	envString("DATABASE_DSN", &o.DatabaseDSN)
	envString("REDIS_URL", &o.RedisURL)
	envString("SECRET_KEY", &o.SecretKey)
	envString("TRUSTED_SUBNET", &o.TrustedSubnet)
	envString("LOG_LEVEL", &o.LogLevel)

	if v := os.Getenv("SHORT_CODE_LENGTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SHORT_CODE_LENGTH: %w", err)
		}
		o.ShortCodeLength = n
	}
	if v := os.Getenv("LINK_EXPIRATION_DAYS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("LINK_EXPIRATION_DAYS: %w", err)
		}
		o.LinkExpirationDays = n
	}
	if v := os.Getenv("CACHE_TTL"); v != "" {
		if err := setDuration(&o.CacheTTL, &v); err != nil {
			return fmt.Errorf("CACHE_TTL: %w", err)
		}
	}
	if v := os.Getenv("SWEEP_INTERVAL"); v != "" {
		if err := setDuration(&o.SweepInterval, &v); err != nil {
			return fmt.Errorf("SWEEP_INTERVAL: %w", err)
		}
	}
	if v := os.Getenv("ENABLE_HTTPS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("ENABLE_HTTPS: %w", err)
		}
		o.EnableHTTPS = b
	}
	if v := os.Getenv("ENABLE_PPROF"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("ENABLE_PPROF: %w", err)
		}
		o.EnablePprof = b
	}

	return nil
}

func (o *Options) validate() error {
	if o.ShortCodeLength < 1 {
		return fmt.Errorf("short code length must be positive, got %d", o.ShortCodeLength)
	}
	if o.LinkExpirationDays < 1 {
		return fmt.Errorf("link expiration must be at least one day, got %d", o.LinkExpirationDays)
	}
	if o.CacheTTL <= 0 {
		return fmt.Errorf("cache ttl must be positive, got %s", o.CacheTTL)
	}
	if o.SweepInterval < 0 {
		return fmt.Errorf("sweep interval must not be negative, got %s", o.SweepInterval)
	}
	return nil
}

func envString(name string, dst *string) {
	if v := os.Getenv(name); v != "" {
		*dst = v
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v *string) error {
	if v == nil {
		return nil
	}
	d, err := time.ParseDuration(*v)
	if err != nil {
		return err
	}
	*dst = d
	return nil
}
