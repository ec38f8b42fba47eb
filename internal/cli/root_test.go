package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus_connect/internal/config"
	"campus_connect/internal/ratelimit"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "campus-connect", cmd.Use)

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "config.yaml", configFlag.DefValue)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()

	for _, name := range []string{"serve", "migrate"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestServeCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	serveCmd, _, err := cmd.Find([]string{"serve"})
	require.NoError(t, err)

	migrateFlag := serveCmd.Flags().Lookup("migrate")
	require.NotNil(t, migrateFlag)
	assert.Equal(t, "false", migrateFlag.DefValue)
}

func TestServe_MissingConfig(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"serve", "--config", t.TempDir() + "/missing.yaml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestRateLimitRules(t *testing.T) {
	rules := rateLimitRules(config.RateLimitConfig{
		Read:  config.LimitConfig{Requests: 300, Window: time.Minute},
		Write: config.LimitConfig{Requests: 60, Window: time.Minute},
		Batch: config.LimitConfig{Requests: 10, Window: time.Hour},
	})

	assert.Equal(t, ratelimit.Rule{Limit: 300, Window: time.Minute}, rules[ratelimit.TierRead])
	assert.Equal(t, ratelimit.Rule{Limit: 60, Window: time.Minute}, rules[ratelimit.TierWrite])
	assert.Equal(t, ratelimit.Rule{Limit: 10, Window: time.Hour}, rules[ratelimit.TierBatch])
}
