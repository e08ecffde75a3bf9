package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that provide defaults for global CLI flags.
const (
	EnvFPS    = "ARCADE_FPS"
	EnvSeed   = "ARCADE_SEED"
	EnvDBPath = "ARCADE_DB"
	EnvLog    = "ARCADE_LOG"
)

// LoadEnv loads variables from the given dotenv files into the process
// environment. Missing files are not an error; variables already set in the
// environment win over file values.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: cannot load %s: %w", f, err)
		}
	}
	return nil
}

// EnvString returns the value of key, or def when unset or empty.
func EnvString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// EnvInt returns key parsed as an int, or def when unset or malformed.
func EnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// EnvInt64 returns key parsed as an int64, or def when unset or malformed.
func EnvInt64(key string, def int64) int64 {
	if n, ok := LookupEnvInt64(key); ok {
		return n
	}
	return def
}

// LookupEnvInt64 parses key as an int64. ok is false when the variable is
// unset, empty or malformed, so a set zero is told apart from no value.
func LookupEnvInt64(key string) (n int64, ok bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
