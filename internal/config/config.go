package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress         string
	DatabaseURI        string
	SmaregiAccessToken string
	AuthSecret         string
	AdminEmails        []string
	ShutdownTimeout    time.Duration
}

const (
	defaultRunAddress      = ":8080"
	defaultAuthSecret      = "change-me-in-production"
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:         getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:        getString(lookup, "DATABASE_URI", ""),
		SmaregiAccessToken: getString(lookup, "SMAREGI_ACCESS_TOKEN", ""),
		AuthSecret:         getString(lookup, "AUTH_SECRET", defaultAuthSecret),
		ShutdownTimeout:    getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	adminEmails := getString(lookup, "ADMIN_EMAILS", "")

	fs := flag.NewFlagSet("memberhub", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	shutdownTimeoutStr := cfg.ShutdownTimeout.String()

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.SmaregiAccessToken, "t", cfg.SmaregiAccessToken, "Shared secret expected in the x-access-token header")
	fs.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "Secret for signing member auth tokens")
	fs.StringVar(&adminEmails, "admin-emails", adminEmails, "Comma-separated list of admin email addresses")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if tokenFile, ok := lookup("SMAREGI_ACCESS_TOKEN_FILE"); ok && tokenFile != "" {
		content, err := os.ReadFile(tokenFile)
		if err != nil {
			return nil, fmt.Errorf("read smaregi token file: %w", err)
		}
		cfg.SmaregiAccessToken = strings.TrimSpace(string(content))
	}

	cfg.AdminEmails = splitEmails(adminEmails)

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.SmaregiAccessToken == "" {
		return nil, fmt.Errorf("smaregi access token must be provided")
	}

	return cfg, nil
}

func splitEmails(raw string) []string {
	var emails []string
	for _, part := range strings.Split(raw, ",") {
		if email := strings.TrimSpace(part); email != "" {
			emails = append(emails, strings.ToLower(email))
		}
	}
	return emails
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
