package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("FUNDFLOW_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("FUNDFLOW_TEST_KEY", "default"))
	assert.Equal(t, "default", GetEnv("FUNDFLOW_MISSING_KEY", "default"))

	t.Setenv("FUNDFLOW_EMPTY_KEY", "")
	assert.Equal(t, "default", GetEnv("FUNDFLOW_EMPTY_KEY", "default"))
}

func TestGetIntEnv(t *testing.T) {
	t.Setenv("FUNDFLOW_INT_KEY", "42")
	assert.Equal(t, 42, GetIntEnv("FUNDFLOW_INT_KEY", 7))

	t.Setenv("FUNDFLOW_BAD_INT", "not a number")
	assert.Equal(t, 7, GetIntEnv("FUNDFLOW_BAD_INT", 7))
}

func TestGetDurationEnv(t *testing.T) {
	t.Setenv("FUNDFLOW_DURATION_KEY", "30s")
	assert.Equal(t, 30*time.Second, GetDurationEnv("FUNDFLOW_DURATION_KEY", time.Minute))

	t.Setenv("FUNDFLOW_BAD_DURATION", "soon")
	assert.Equal(t, time.Minute, GetDurationEnv("FUNDFLOW_BAD_DURATION", time.Minute))
}
