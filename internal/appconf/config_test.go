package appconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvFlagToEnvironment(t *testing.T) {
	assert.Equal(t, Production, EnvFlagToEnvironment("production"))
	assert.Equal(t, Test, EnvFlagToEnvironment("test"))
	assert.Equal(t, Development, EnvFlagToEnvironment("development"))
	assert.Equal(t, Development, EnvFlagToEnvironment("anything-else"))
}

func TestEnvironmentString(t *testing.T) {
	assert.Equal(t, "production", Production.String())
	assert.Equal(t, "test", Test.String())
	assert.Equal(t, "development", Development.String())
}

func TestAPIKeyValid(t *testing.T) {
	cfg := Config{APIKeys: []string{"alpha", "beta"}}

	assert.True(t, cfg.APIKeyValid("alpha"))
	assert.True(t, cfg.APIKeyValid("beta"))
	assert.False(t, cfg.APIKeyValid("gamma"))
	assert.False(t, cfg.APIKeyValid(""))

	empty := Config{}
	assert.False(t, empty.APIKeyValid("alpha"))
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("LAB007_TEST_STRING", "value")
	t.Setenv("LAB007_TEST_INT", "42")
	t.Setenv("LAB007_TEST_BAD_INT", "forty-two")

	assert.Equal(t, "value", EnvString("LAB007_TEST_STRING", "fallback"))
	assert.Equal(t, "fallback", EnvString("LAB007_TEST_MISSING", "fallback"))
	assert.Equal(t, 42, EnvInt("LAB007_TEST_INT", 7))
	assert.Equal(t, 7, EnvInt("LAB007_TEST_MISSING", 7))
	assert.Equal(t, 7, EnvInt("LAB007_TEST_BAD_INT", 7))
}
