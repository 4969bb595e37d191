package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults verifies that default values are used when env vars are missing.
func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("APP_ENV")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("SERVER_PORT")

	os.Setenv("API_BASE_URL", "https://api.default.test")
	defer os.Unsetenv("API_BASE_URL")

	cfg, err := Load(".")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, 10, cfg.API.TimeoutSeconds)
	assert.Equal(t, float64(150), cfg.Checkout.FreeDeliveryThreshold)
	assert.Equal(t, float64(40), cfg.Checkout.DeliveryFee)
}

// TestLoad_EnvVars verifies that environment variables override defaults.
func TestLoad_EnvVars(t *testing.T) {
	os.Setenv("APP_ENV", "production")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("API_BASE_URL", "https://api.example.com")
	os.Setenv("API_SESSION_TOKEN", "tok_123")
	os.Setenv("CLOUDINARY_CLOUD_NAME", "demo")
	os.Setenv("CLOUDINARY_UPLOAD_PRESET", "unsigned")
	os.Setenv("FREE_DELIVERY_THRESHOLD", "200")
	defer func() {
		os.Unsetenv("APP_ENV")
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("API_BASE_URL")
		os.Unsetenv("API_SESSION_TOKEN")
		os.Unsetenv("CLOUDINARY_CLOUD_NAME")
		os.Unsetenv("CLOUDINARY_UPLOAD_PRESET")
		os.Unsetenv("FREE_DELIVERY_THRESHOLD")
	}()

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, "https://api.example.com", cfg.API.BaseURL)
	assert.Equal(t, "tok_123", cfg.API.SessionToken)
	assert.Equal(t, "demo", cfg.Cloudinary.CloudName)
	assert.Equal(t, float64(200), cfg.Checkout.FreeDeliveryThreshold)
}

// TestLoad_File verifies that values are loaded from a .env file.
func TestLoad_File(t *testing.T) {
	content := []byte(`
APP_ENV=staging
LOG_LEVEL=warn
SERVER_PORT=7070
API_BASE_URL=https://staging.example.com
API_TIMEOUT_SECONDS=5
`)
	err := os.WriteFile(".env", content, 0644)
	require.NoError(t, err)
	defer os.Remove(".env")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 7070, cfg.ServerPort)
	assert.Equal(t, 5, cfg.API.TimeoutSeconds)
}

// TestLoad_ValidationFailure verifies that missing required fields return an error.
func TestLoad_ValidationFailure(t *testing.T) {
	os.Unsetenv("API_BASE_URL")

	cfg, err := Load(".")
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "missing required configuration")
}
