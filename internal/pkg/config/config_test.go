package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/piresc/smsmock/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_FromEnv(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "access")
	t.Setenv("JWT_REFRESH_SECRET", "refresh")
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "8080")
	t.Setenv("OTP_TTL", "5m")

	cfg, err := InitConfig("")
	require.NoError(t, err)

	assert.True(t, cfg.App.IsProduction())
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5*time.Minute, cfg.OTP.TTL)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessExpiration)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshExpiration)
	assert.Equal(t, "verification", cfg.OTP.DefaultPurpose)
}

func TestInitConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "JWT_ACCESS_SECRET=file-access\nJWT_REFRESH_SECRET=file-refresh\nDB_DATABASE=smsmock_test\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := InitConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "file-access", cfg.JWT.AccessSecret)
	assert.Equal(t, "smsmock_test", cfg.Database.Database)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.False(t, cfg.App.IsProduction())
}

func TestInitConfig_MissingFileIgnored(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "access")
	t.Setenv("JWT_REFRESH_SECRET", "refresh")

	_, err := InitConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *models.Config {
		return &models.Config{
			JWT: models.JWTConfig{
				AccessSecret:      "a",
				RefreshSecret:     "b",
				AccessExpiration:  time.Minute,
				RefreshExpiration: time.Hour,
			},
			OTP: models.OTPConfig{TTL: time.Minute},
		}
	}

	tests := []struct {
		name        string
		mutate      func(*models.Config)
		expectedErr error
		expectError bool
	}{
		{name: "Valid", mutate: func(*models.Config) {}},
		{name: "Missing access secret", mutate: func(c *models.Config) { c.JWT.AccessSecret = "" }, expectedErr: ErrMissingJWTSecrets, expectError: true},
		{name: "Missing refresh secret", mutate: func(c *models.Config) { c.JWT.RefreshSecret = "" }, expectedErr: ErrMissingJWTSecrets, expectError: true},
		{name: "Shared secret", mutate: func(c *models.Config) { c.JWT.RefreshSecret = "a" }, expectedErr: ErrSharedJWTSecret, expectError: true},
		{name: "Zero otp ttl", mutate: func(c *models.Config) { c.OTP.TTL = 0 }, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := Validate(cfg)
			if !tt.expectError {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			}
		})
	}
}

func TestRetentionWindow(t *testing.T) {
	cfg := &models.Config{Messages: models.MessagesConfig{RetentionDays: 2}}
	assert.Equal(t, 48*time.Hour, RetentionWindow(cfg))
}
