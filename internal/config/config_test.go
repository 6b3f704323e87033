package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10, cfg.Chat.MaxHistoryLength)
	assert.Equal(t, "gemini", cfg.Chat.Provider)
	assert.Equal(t, 3, cfg.Chat.TopK)
	assert.Equal(t, "us-east-1", cfg.AWS.Region)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")
	t.Setenv("MAX_HISTORY_LENGTH", "4")
	t.Setenv("BUCKET_NAME", "chat-docs")
	t.Setenv("AWS_REGION", "eu-west-1")
	t.Setenv("KENDRA_INDEX_ID", "idx-1")
	t.Setenv("KENDRA_DATA_SOURCE_ID", "ds-1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Chat.MaxHistoryLength)
	assert.Equal(t, "chat-docs", cfg.Storage.Bucket)
	assert.Equal(t, "eu-west-1", cfg.AWS.Region)
	assert.Equal(t, "idx-1", cfg.Search.IndexID)
	assert.Equal(t, "ds-1", cfg.Search.DataSourceID)
}

func TestRedisConfig_Addr(t *testing.T) {
	c := RedisConfig{Host: "localhost", Port: 6379}
	assert.Equal(t, "localhost:6379", c.Addr())
}
