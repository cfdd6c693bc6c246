package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "newsmunger.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
doc_path: /var/lib/news
parser_timeout: 30s
max_retries: 8
redis:
  addr: localhost:6379
sink:
  kind: sqlite
  path: corpses.db
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/news", cfg.DocPath)
	assert.Equal(t, 30*time.Second, cfg.ParserTimeout)
	assert.Equal(t, 8, cfg.MaxRetries)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 24*time.Hour, cfg.Redis.TTL)
	assert.Equal(t, SinkSqlite, cfg.Sink.Kind)
	assert.Equal(t, "corpses.db", cfg.Sink.Path)

	// untouched defaults
	assert.Equal(t, 2, cfg.MaxDepth)
	assert.Equal(t, "http://localhost:8080/parse", cfg.ParserURL)
}

func TestLoadEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "newsmunger.yaml")
	require.NoError(t, os.WriteFile(path, []byte("doc_path: /from/file\nmax_depth: 1\n"), 0644))

	t.Setenv("NEWSMUNGER_DOC_PATH", "/from/env")
	t.Setenv("NEWSMUNGER_REDIS_ADDR", "redis:6379")
	t.Setenv("NEWSMUNGER_SINK_KIND", "s3")
	t.Setenv("NEWSMUNGER_SINK_BUCKET", "corpses")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/from/env", cfg.DocPath)
	assert.Equal(t, 1, cfg.MaxDepth)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, SinkS3, cfg.Sink.Kind)
	assert.Equal(t, "corpses", cfg.Sink.Bucket)
}

func TestLoadErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_retries: [1"), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "YAML decoding error")

	require.NoError(t, os.WriteFile(path, []byte("sink:\n  kind: ftp\n"), 0644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "unknown sink kind")

	require.NoError(t, os.WriteFile(path, []byte("max_retries: 0\n"), 0644))
	_, err = Load(path)
	assert.Error(t, err)
}
