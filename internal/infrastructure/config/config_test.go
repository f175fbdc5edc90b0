package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, "crm-backend", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "http://localhost:8080", cfg.App.BaseURL)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenExpiration)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshTokenExpiration)
	assert.Equal(t, 24*time.Hour, cfg.Auth.ConfirmationTokenTTL)
	assert.Equal(t, time.Hour, cfg.Auth.ResetTokenTTL)
	assert.Equal(t, 5, cfg.Auth.MaxLoginAttempts)
	assert.Equal(t, "log", cfg.Mail.Mode)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestApplyDefaults_ProductionLogFormat(t *testing.T) {
	cfg := &Config{App: AppConfig{Env: "production"}}
	applyDefaults(cfg)

	assert.Equal(t, "json", cfg.Log.Format)
	assert.Empty(t, cfg.JWT.Secret, "production must not get a default secret")
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg := &Config{}
		applyDefaults(cfg)
		return cfg
	}

	t.Run("valid development config", func(t *testing.T) {
		require.NoError(t, base().Validate())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		cfg := base()
		cfg.JWT.Secret = ""
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.secret")
	})

	t.Run("dev secret rejected in production", func(t *testing.T) {
		cfg := base()
		cfg.App.Env = "production"
		err := cfg.Validate()
		require.Error(t, err)
	})

	t.Run("invalid mail mode", func(t *testing.T) {
		cfg := base()
		cfg.Mail.Mode = "sendmail"
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mail.mode")
	})

	t.Run("smtp mode requires host", func(t *testing.T) {
		cfg := base()
		cfg.Mail.Mode = "smtp"
		require.Error(t, cfg.Validate())

		cfg.Mail.Host = "smtp.example.com"
		require.NoError(t, cfg.Validate())
	})
}

func TestDatabaseDSN(t *testing.T) {
	c := DatabaseConfig{
		Host: "db", Port: 5433, User: "crm", Password: "secret",
		DBName: "crm", SSLMode: "require",
	}
	assert.Equal(t,
		"host=db port=5433 user=crm password=secret dbname=crm sslmode=require",
		c.DSN())
}

func TestRedisAddr(t *testing.T) {
	c := RedisConfig{Host: "cache", Port: 6380}
	assert.Equal(t, "cache:6380", c.Addr())
}
