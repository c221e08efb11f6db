// Package config reads the process environment once into a plain map and
// exposes typed accessors over it. The keys this service uses: PORT, the
// DB_* connection vars, ACCEPTED_ORIGINS, ADMIN_TOKEN_SECRET,
// MODERATION_GATE (subscriber|flag), the *_TIMEOUT_SECONDS server knobs and
// the RESEND_* mail vars.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

func New() map[string]string {
	environ := os.Environ()
	envAsMap := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry != "" {
			key, value := split(entry)
			envAsMap[key] = value
		}
	}
	return envAsMap
}

// assumes entry is not the empty string
func split(entry string) (key, value string) {
	parts := strings.SplitN(entry, "=", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func GetString(config map[string]string, key string, defaultValue string) string {
	if config == nil {
		return defaultValue
	}

	if val, ok := config[key]; ok {
		return val
	}
	return defaultValue
}

func GetInt(config map[string]string, key string, defaultValue int) int {
	if config == nil {
		return defaultValue
	}

	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asInt, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}

	return asInt
}

// GetDuration reads a *_SECONDS knob as a duration. The value is a whole
// number of seconds; anything unparsable falls back to the default.
func GetDuration(config map[string]string, key string, defaultValue time.Duration) time.Duration {
	seconds := GetInt(config, key, -1)
	if seconds < 0 {
		return defaultValue
	}
	return time.Duration(seconds) * time.Second
}
