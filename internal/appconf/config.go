package appconf

import (
	"os"
	"strconv"
)

// Environment is the operating environment for the Application.
type Environment int

const (
	Development Environment = iota
	Test
	Production
)

// EnvFlagToEnvironment maps the -env flag value to an Environment.
func EnvFlagToEnvironment(flag string) Environment {
	switch flag {
	case "production":
		return Production
	case "test":
		return Test
	default:
		return Development
	}
}

func (e Environment) String() string {
	switch e {
	case Production:
		return "production"
	case Test:
		return "test"
	default:
		return "development"
	}
}

// Config holds all the configuration settings for the Application: the HTTP
// listen port, the operating environment, API keys for the /api routes, and
// the per-key rate limit.
type Config struct {
	Port      int
	Env       Environment
	APIKeys   []string
	RateLimit int
}

// APIKeyValid reports whether the presented key is in the configured set.
func (c Config) APIKeyValid(key string) bool {
	for _, candidate := range c.APIKeys {
		if candidate != "" && candidate == key {
			return true
		}
	}
	return false
}

// EnvString reads an environment variable with a fallback.
func EnvString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// EnvInt reads an integer environment variable with a fallback. Unparseable
// values fall back rather than fail: the service should come up with
// defaults instead of crash-looping on a typo.
func EnvInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
