// Package config loads command-line tool settings from the environment and
// an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/tphakala/go-voice-effects/internal/prefs"
)

// Environment variable names.
const (
	EnvStore         = "VOICEFX_STORE"
	EnvDBPath        = "VOICEFX_DB_PATH"
	EnvRedisAddr     = "VOICEFX_REDIS_ADDR"
	EnvRedisPassword = "VOICEFX_REDIS_PASSWORD"
	EnvRedisDB       = "VOICEFX_REDIS_DB"
	EnvRedisKey      = "VOICEFX_REDIS_KEY"
	EnvBlockSize     = "VOICEFX_BLOCK_SIZE"
)

// Defaults
const (
	DefaultStore     = prefs.BackendSQLite
	DefaultDBPath    = "./voicefx.db"
	DefaultRedisAddr = "localhost:6379"
)

// ErrInvalid indicates a setting that cannot be used.
var ErrInvalid = errors.New("invalid setting")

// Config holds settings shared by the command-line tools.
type Config struct {
	Store         string
	DBPath        string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisKey      string

	// BlockSize is the capture block size in bytes. Zero selects 20 ms blocks.
	BlockSize int
}

// Load reads settings from the process environment, falling back to the
// given .env files (default ".env"). Missing files are ignored and the
// process environment is never modified.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	fileEnv := make(map[string]string)
	for _, f := range files {
		values, err := godotenv.Read(f)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to read %s: %w", f, err)
		}
		for k, v := range values {
			if _, ok := fileEnv[k]; !ok {
				fileEnv[k] = v
			}
		}
	}

	env := func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fileEnv[key]
	}

	redisDB, err := getEnvAsIntOrDefault(env, EnvRedisDB, 0)
	if err != nil {
		return nil, err
	}
	blockSize, err := getEnvAsIntOrDefault(env, EnvBlockSize, 0)
	if err != nil {
		return nil, err
	}

	c := &Config{
		Store:         strings.ToLower(strings.TrimSpace(getEnvOrDefault(env, EnvStore, DefaultStore))),
		DBPath:        getEnvOrDefault(env, EnvDBPath, DefaultDBPath),
		RedisAddr:     getEnvOrDefault(env, EnvRedisAddr, DefaultRedisAddr),
		RedisPassword: env(EnvRedisPassword),
		RedisDB:       redisDB,
		RedisKey:      env(EnvRedisKey),
		BlockSize:     blockSize,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks if the settings are usable.
func (c *Config) Validate() error {
	switch c.Store {
	case prefs.BackendMemory, prefs.BackendSQLite, prefs.BackendRedis:
	default:
		return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvStore, c.Store)
	}

	if c.BlockSize < 0 || c.BlockSize%2 != 0 {
		return fmt.Errorf("%w: %s must be a non-negative even byte count, got %d",
			ErrInvalid, EnvBlockSize, c.BlockSize)
	}

	if c.RedisDB < 0 {
		return fmt.Errorf("%w: %s must not be negative", ErrInvalid, EnvRedisDB)
	}

	return nil
}

// PrefsOptions returns the preference store selection.
func (c *Config) PrefsOptions() prefs.Options {
	return prefs.Options{
		Backend:       c.Store,
		SQLitePath:    c.DBPath,
		RedisAddr:     c.RedisAddr,
		RedisPassword: c.RedisPassword,
		RedisDB:       c.RedisDB,
		RedisKey:      c.RedisKey,
	}
}

func getEnvOrDefault(env func(string) string, key, defaultValue string) string {
	if value := env(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(env func(string) string, key string, defaultValue int) (int, error) {
	valueStr := env(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalid, key, valueStr)
	}
	return value, nil
}
