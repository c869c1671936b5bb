package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: 20
  write_timeout: 20
  idle_timeout: 180
database:
  host: localhost
  port: 5432
  user: testuser
  password: testpass
  dbname: testdb
  sslmode: require
nats:
  url: "nats://localhost:4222"
  subject_prefix: "custom.drops"
  max_reconnects: 5
  reconnect_wait: "5s"
  connection_name: "test-connection"
auth:
  jwt_public_key: "test-public-key"
  api_keys:
    - "key1"
    - "key2"
drop:
  slug: "test-drop"
  owner: "0x1111111111111111111111111111111111111111"
  edition_size: 100
  royalty_bps: 500
  partition_offset: 5000
  funds_recipient: "0x2222222222222222222222222222222222222222"
  metadata_base_uri: "https://meta.example.com/items/"
  contract_uri: "https://meta.example.com/collection"
pricing:
  url: "http://localhost:9001"
  timeout: "5s"
payments:
  url: "http://localhost:9002"
  timeout: "5s"
  send_budget: "3s"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 20, cfg.Server.ReadTimeout)
				assert.Equal(t, 180, cfg.Server.IdleTimeout)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
				assert.Equal(t, "custom.drops", cfg.NATS.SubjectPrefix)
				assert.Equal(t, 5, cfg.NATS.MaxReconnects)
				assert.Equal(t, 5*time.Second, cfg.NATS.ReconnectWait)
				assert.Equal(t, "test-public-key", cfg.Auth.JWTPublicKey)
				assert.Len(t, cfg.Auth.APIKeys, 2)
				assert.Equal(t, "test-drop", cfg.Drop.Slug)
				assert.Equal(t, "0x1111111111111111111111111111111111111111", cfg.Drop.Owner)
				assert.Equal(t, uint64(100), cfg.Drop.EditionSize)
				assert.Equal(t, uint16(500), cfg.Drop.RoyaltyBPS)
				assert.Equal(t, uint64(5000), cfg.Drop.PartitionOffset)
				assert.Equal(t, "https://meta.example.com/items/", cfg.Drop.MetadataBaseURI)
				assert.Equal(t, "http://localhost:9001", cfg.Pricing.URL)
				assert.Equal(t, 5*time.Second, cfg.Pricing.Timeout)
				assert.Equal(t, "http://localhost:9002", cfg.Payments.URL)
				assert.Equal(t, 3*time.Second, cfg.Payments.SendBudget)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				// Check defaults
				assert.False(t, cfg.Debug)
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 10, cfg.Server.ReadTimeout)
				assert.Equal(t, 10, cfg.Server.WriteTimeout)
				assert.Equal(t, 120, cfg.Server.IdleTimeout)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.NATS.MaxReconnects)
				assert.Equal(t, "2s", cfg.NATS.ReconnectWait.String())
				assert.Equal(t, "drops", cfg.NATS.SubjectPrefix)
				assert.Equal(t, "ff-drop-engine", cfg.NATS.ConnectionName)
				assert.Equal(t, "genesis-drop", cfg.Drop.Slug)
				assert.Equal(t, uint64(0), cfg.Drop.EditionSize)
				assert.Equal(t, 10*time.Second, cfg.Pricing.Timeout)
				assert.Equal(t, 15*time.Second, cfg.Payments.Timeout)
				assert.Equal(t, 10*time.Second, cfg.Payments.SendBudget)
			},
		},
		{
			name:        "missing config file - should work with env vars",
			configFile:  "",
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.NotNil(t, cfg)
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, "genesis-drop", cfg.Drop.Slug)
			},
		},
		{
			name: "invalid yaml",
			configFile: `
				database:
				  host: localhost
				  port: invalid
			`,
			expectError: true, // Invalid port should cause unmarshal error
			validate:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var configFile string

			if tt.configFile != "" {
				tmpDir := t.TempDir()
				configFile = filepath.Join(tmpDir, "config.yaml")
				err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
				require.NoError(t, err)
			} else {
				// Missing file: viper falls back to defaults and env vars
				configFile = ""
			}

			cfg, err := LoadAPIConfig(configFile, "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				if tt.validate != nil {
					require.NoError(t, err)
					require.NotNil(t, cfg)
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	tests := []struct {
		name     string
		config   DatabaseConfig
		expected string
	}{
		{
			name: "complete config",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "testpass",
				DBName:   "testdb",
				SSLMode:  "require",
			},
			expected: "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=require",
		},
		{
			name: "with special characters in password",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "p@ssw0rd!",
				DBName:   "testdb",
				SSLMode:  "disable",
			},
			expected: "host=localhost port=5432 user=testuser password=p@ssw0rd! dbname=testdb sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dsn := tt.config.DSN()
			assert.Equal(t, tt.expected, dsn)
		})
	}
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	tmpDir := t.TempDir()

	// Create temporary directory for env files
	envDir := filepath.Join(tmpDir, "env")
	err := os.MkdirAll(envDir, 0750)
	require.NoError(t, err)

	// Create .env file with environment variables
	// Note: Viper uses FF_DROP_ prefix, so env vars need the prefix
	envFile := filepath.Join(envDir, ".env")
	envContent := `FF_DROP_DEBUG=true
FF_DROP_DATABASE_HOST=env-host
FF_DROP_DATABASE_PORT=3306
FF_DROP_DATABASE_USER=env-user
FF_DROP_DATABASE_PASSWORD=env-pass
FF_DROP_DATABASE_DBNAME=env-db
FF_DROP_DATABASE_SSLMODE=require
FF_DROP_DROP_SLUG=env-drop
`
	err = os.WriteFile(envFile, []byte(envContent), 0600)
	require.NoError(t, err)

	// Create config file with different values to verify env vars override
	configPath := filepath.Join(tmpDir, "config.yaml")
	configFile := `
debug: false
database:
  host: file-host
  port: 5432
  user: file-user
  password: file-pass
  dbname: file-db
  sslmode: disable
drop:
  slug: file-drop
`

	err = os.WriteFile(configPath, []byte(configFile), 0600)
	require.NoError(t, err)

	// Load config with envPath pointing to the temporary env directory
	cfg, err := LoadAPIConfig(configPath, envDir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// The .env file is loaded via godotenv.Overload, which sets actual
	// environment variables; viper's AutomaticEnv then picks them up with
	// the FF_DROP_ prefix and they take precedence over the config file
	assert.True(t, cfg.Debug)
	assert.Equal(t, "env-host", cfg.Database.Host)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "env-user", cfg.Database.User)
	assert.Equal(t, "env-pass", cfg.Database.Password)
	assert.Equal(t, "env-db", cfg.Database.DBName)
	assert.Equal(t, "require", cfg.Database.SSLMode)
	assert.Equal(t, "env-drop", cfg.Drop.Slug)
}
