package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	testCases := []struct {
		name    string
		env     map[string]string
		wantErr error
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "Defaults",
			env:  map[string]string{"DB_URL": "postgres://shop@localhost/shop"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "postgres://shop@localhost/shop", cfg.DBURL)
				assert.Equal(t, DriverPgx, cfg.DBDriver)
				assert.Equal(t, "warn", cfg.DBLogLevel)
			},
		},
		{
			name: "Explicit lib/pq driver and log level",
			env: map[string]string{
				"DB_URL":       "postgres://shop@localhost/shop",
				"DB_DRIVER":    "postgres",
				"DB_LOG_LEVEL": "info",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DriverPq, cfg.DBDriver)
				assert.Equal(t, "info", cfg.DBLogLevel)
			},
		},
		{
			name:    "Missing DB_URL",
			env:     map[string]string{"DB_URL": ""},
			wantErr: ErrMissingEnv,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("DB_DRIVER", "")
			t.Setenv("DB_LOG_LEVEL", "")
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			cfg, err := FromEnv()

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			tc.check(t, cfg)
		})
	}
}

func TestFromEnvRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_URL", "postgres://shop@localhost/shop")
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("DB_LOG_LEVEL", "")

	_, err := FromEnv()
	assert.ErrorContains(t, err, "unsupported DB_DRIVER")
}
