package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_LoadBaseConfigFromENV(t *testing.T) {
	t.Setenv("PORT", "4000")
	t.Setenv("NLP_SERVICE_URL", "http://nlp.internal:8001/")

	cfg := LoadBaseConfigFromENV()
	assert.Equal(t, ":4000", cfg.Addr)
	assert.Equal(t, "http://nlp.internal:8001", cfg.NLP.BaseURL)
}

func Test_ConfigDefaults(t *testing.T) {
	os.Unsetenv("PORT")
	os.Unsetenv("NLP_SERVICE_URL")

	cfg := LoadBaseConfigFromENV()
	assert.Equal(t, ":3000", cfg.Addr)
	assert.Equal(t, "http://127.0.0.1:8001", cfg.NLP.BaseURL)
	assert.Equal(t, time.Second*30, cfg.NLP.Timeout())
}

func Test_MustLoadBaseConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "service.toml")
	raw := `
addr = ":9090"

[log]
level = "info"

[nlp]
base_url = "http://127.0.0.1:9001/"
timeout_seconds = 5
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	cfg := MustLoadBaseConfig(path)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "http://127.0.0.1:9001", cfg.NLP.BaseURL)
	assert.Equal(t, time.Second*5, cfg.NLP.Timeout())
}
