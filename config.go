package aadissuer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/joeshaw/envdecode"

	"github.com/ggoodman/aad-issuer-go/internal/logctx"
)

// Config carries the configured issuer expectations for a validation call.
// ValidIssuers is consulted in declaration order before ValidIssuer; any
// entry may contain the {tenantid} placeholder.
type Config struct {
	// ValidIssuer is a single expected issuer template.
	// ENV: AAD_VALID_ISSUER
	ValidIssuer string `env:"AAD_VALID_ISSUER" json:"validIssuer,omitempty"`
	// ValidIssuers is an ordered list of expected issuer templates.
	// ENV: AAD_VALID_ISSUERS (semicolon separated)
	ValidIssuers []string `env:"AAD_VALID_ISSUERS" json:"validIssuers,omitempty"`
}

// ConfigFromEnv populates a Config from the environment. Both fields are
// optional; discovery alone carries validation when neither is set.
func ConfigFromEnv() *Config {
	var cfg Config
	// Use envdecode; unset variables leave zero values in place.
	_ = envdecode.Decode(&cfg)
	return &cfg
}

// LoadConfigFile reads a JSON issuer-template file.
func LoadConfigFile(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// WatchConfig reloads path whenever it changes and hands each successfully
// parsed Config to onChange. It blocks until ctx is done or the watcher
// shuts down. Parse failures are logged through log (nil falls back to the
// validation-context handler over slog.Default) and the previous config
// stays in effect.
func WatchConfig(ctx context.Context, path string, log *slog.Logger, onChange func(*Config)) error {
	if log == nil {
		log = slog.New(logctx.Handler{Handler: slog.Default().Handler()})
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config watcher: %w", err)
	}
	defer w.Close()

	// Watch the directory so atomic replaces (rename-over) are observed.
	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	// Editors fire bursts of events per save; coalesce them.
	const debounce = 100 * time.Millisecond
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
				fire = timer.C
			} else {
				timer.Reset(debounce)
			}
		case <-fire:
			timer = nil
			fire = nil
			cfg, err := LoadConfigFile(path)
			if err != nil {
				log.Warn("issuer config reload failed",
					slog.String("path", path), slog.String("err", err.Error()))
				continue
			}
			onChange(cfg)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Debug("config watcher error", slog.String("err", err.Error()))
		}
	}
}
