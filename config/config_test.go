package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "whisper-1", cfg.WhisperModel)
	assert.Equal(t, "gpt-4", cfg.GPTModel)
	assert.Equal(t, "ffmpeg", cfg.FFmpegPath)
	assert.Equal(t, "libmp3lame", cfg.AudioCodec)
	assert.Equal(t, 2*time.Minute, cfg.TranscodeTimeout)
	assert.Equal(t, 5*time.Minute, cfg.TranscribeTimeout)
	assert.Equal(t, 0, cfg.TranslateWorkers)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("GPT_MODEL", "gpt-4o")
	t.Setenv("TRANSLATE_TIMEOUT", "30s")
	t.Setenv("TRANSLATE_WORKERS", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o", cfg.GPTModel)
	assert.Equal(t, 30*time.Second, cfg.TranslateTimeout)
	assert.Equal(t, 3, cfg.TranslateWorkers)
}

func TestLoadMissingAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := Load()
	assert.Error(t, err)
}
