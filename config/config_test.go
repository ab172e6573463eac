package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  env: test
  serviceName: sellerhub
  log:
    level: debug
http:
  port: 8080
  timeouts:
    readTimeout: 5s
secretKey:
  access: access-secret
  refresh: refresh-secret
mail:
  provider: smtp
  from: no-reply@example.com
  smtp:
    host: smtp.example.com
    port: 587
`

func writeConfig(t *testing.T, dir string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testYAML), 0o600))
}

func TestLoadWithEnv_ReadsYAMLAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir)
	t.Chdir(dir)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("MAIL_SMTP_HOST", "mail.internal")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "sellerhub", cfg.Env.ServiceName)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	assert.Equal(t, "access-secret", cfg.SecretKey.Access)
	require.NotNil(t, cfg.Mail)
	assert.Equal(t, MailProviderSMTP, cfg.Mail.Provider)
	assert.Equal(t, "mail.internal", cfg.Mail.SMTP.Host)
	assert.Equal(t, 587, cfg.Mail.SMTP.Port)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultAccessTokenTTL, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, defaultRefreshTokenTTL, cfg.Auth.RefreshTokenTTL)
	assert.Equal(t, defaultOTPLength, cfg.OTP.Length)
	assert.Equal(t, MailProviderLog, cfg.Mail.Provider)
	assert.Equal(t, defaultBucketURL, cfg.Storage.BucketURL)
	assert.Equal(t, defaultMediaBasePath, cfg.Storage.MediaBasePath)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Auth:    &AuthConfig{AccessTokenTTL: time.Minute},
		OTP:     &OTPConfig{Length: 8},
		Storage: &StorageConfig{BucketURL: "mem://"},
	}
	applyDefaults(cfg)

	assert.Equal(t, time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 8, cfg.OTP.Length)
	assert.Equal(t, "mem://", cfg.Storage.BucketURL)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("SELLERHUB_DOTENV_MARKER=from-file\n"), 0o600))

	t.Setenv("SELLERHUB_DOTENV_MARKER", "")
	require.NoError(t, os.Unsetenv("SELLERHUB_DOTENV_MARKER"))

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "from-file", os.Getenv("SELLERHUB_DOTENV_MARKER"))

	assert.NoError(t, loadDotEnv(filepath.Join(dir, "missing.env")))
}
