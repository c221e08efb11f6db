package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetString(t *testing.T) {
	c := map[string]string{"MODERATION_GATE": "flag"}

	assert.Equal(t, "flag", GetString(c, "MODERATION_GATE", "subscriber"))
	assert.Equal(t, "subscriber", GetString(c, "MISSING", "subscriber"))
	assert.Equal(t, "subscriber", GetString(nil, "MODERATION_GATE", "subscriber"))
}

func TestGetInt(t *testing.T) {
	c := map[string]string{"PORT": "9090", "BAD": "not-a-number"}

	assert.Equal(t, 9090, GetInt(c, "PORT", 8080))
	assert.Equal(t, 8080, GetInt(c, "MISSING", 8080))
	assert.Equal(t, 8080, GetInt(c, "BAD", 8080))
}

func TestGetDuration(t *testing.T) {
	c := map[string]string{
		"READ_TIMEOUT_SECONDS": "30",
		"ZERO":                 "0",
		"BAD":                  "soon",
	}

	assert.Equal(t, 30*time.Second, GetDuration(c, "READ_TIMEOUT_SECONDS", time.Minute))
	assert.Equal(t, time.Duration(0), GetDuration(c, "ZERO", time.Minute))
	assert.Equal(t, time.Minute, GetDuration(c, "MISSING", time.Minute))
	assert.Equal(t, time.Minute, GetDuration(c, "BAD", time.Minute))
}
