package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validConfig = `
[server]
http_port = 8080

[database]
host = "db.local"
port = 5432
user = "app"
password = "secret"
dbname = "bookingapp"
sslmode = "disable"

[logs]
file = "logs/app.log"
level = "debug"

[metrics]
enabled = true
path = "/metrics"
service_name = "bookingapp"

[bank_details.1]
bank_name = "Example Bank"
account_holder = "Coastal Rentals Ltd"
iban = "GR1601101250000000012300695"
bic = "EXAMPGRAA"
`

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "db.local", cfg.Database.Host)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Contains(t, cfg.Database.DSN(), "host=db.local")
	assert.Contains(t, cfg.Database.DSN(), "dbname=bookingapp")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "override.local")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_PASSWORD", "env-secret")

	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, "override.local", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, "env-secret", cfg.Database.Password)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, ErrLoadConfig)
}

func TestPaymentDetails(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	details, ok := cfg.PaymentDetails(1)
	require.True(t, ok)
	assert.Equal(t, "Example Bank", details.BankName)
	assert.Equal(t, "GR1601101250000000012300695", details.IBAN)

	_, ok = cfg.PaymentDetails(2)
	assert.False(t, ok)
}
