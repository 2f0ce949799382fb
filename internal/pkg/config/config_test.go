//go:build unit

package config_test

import (
	"testing"

	"grocery-admin/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDSN(t *testing.T) {
	cfg := config.NewTestConfig().DB
	cfg.Password = "p@ss/w:rd?"

	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	require.NoError(t, err)
	assert.Equal(t, "p@ss/w:rd?", poolCfg.ConnConfig.Password)
	assert.Equal(t, "test_db", poolCfg.ConnConfig.Database)
	assert.Equal(t, "Asia/Kolkata", poolCfg.ConnConfig.RuntimeParams["timezone"])
}

func TestValidate(t *testing.T) {
	require.NoError(t, config.NewTestConfig().Validate())

	cases := []struct {
		name   string
		mutate func(c *config.Config)
		want   string
	}{
		{name: "bad token duration", mutate: func(c *config.Config) { c.JWT.AccessTokenDuration = "soon" }, want: "JWT_ACCESS_TOKEN_DURATION"},
		{name: "unknown same site", mutate: func(c *config.Config) { c.Cookie.SameSite = "Sometimes" }, want: "COOKIE_SAME_SITE"},
		{name: "same site none without secure", mutate: func(c *config.Config) { c.Cookie.SameSite = "None" }, want: "COOKIE_SECURE"},
		{name: "zero lock ttl", mutate: func(c *config.Config) { c.Payout.ReviewLockTTL = 0 }, want: "PAYOUT_REVIEW_LOCK_TTL"},
		{name: "zero relay batch", mutate: func(c *config.Config) { c.Relay.BatchSize = 0 }, want: "RELAY_BATCH_SIZE"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.NewTestConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}
