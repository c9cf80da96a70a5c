// Package prefs persists the integer preferences that select the voice
// effect and quality preset.
package prefs

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Store persists integer values by key.
type Store interface {
	// GetInt returns the value stored under key, or def if none was written.
	GetInt(ctx context.Context, key string, def int) (int, error)

	// SetInt stores value under key, replacing any previous value.
	SetInt(ctx context.Context, key string, value int) error

	// Close releases the backend.
	Close() error
}

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// ErrUnknownBackend indicates an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown preference backend")

// Options selects and configures a backend.
type Options struct {
	Backend string

	// SQLitePath is the database file for BackendSQLite.
	SQLitePath string

	// Redis connection for BackendRedis.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisKey      string
}

// Open creates the backend named in opts.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch strings.ToLower(opts.Backend) {
	case "", BackendMemory:
		return NewMemoryStore(), nil
	case BackendSQLite:
		return OpenSQLite(ctx, opts.SQLitePath)
	case BackendRedis:
		return OpenRedis(ctx, opts.RedisAddr, opts.RedisPassword, opts.RedisDB, opts.RedisKey)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
}
