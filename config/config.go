// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	WhisperModel string `env:"WHISPER_MODEL" envDefault:"whisper-1"`
	GPTModel     string `env:"GPT_MODEL"     envDefault:"gpt-4"`

	FFmpegPath  string `env:"FFMPEG_PATH"  envDefault:"ffmpeg"`
	FFprobePath string `env:"FFPROBE_PATH" envDefault:"ffprobe"`
	AudioCodec  string `env:"AUDIO_CODEC"  envDefault:"libmp3lame"`

	// TempDir is the parent for per-run work areas. Empty means the
	// system temp directory.
	TempDir string `env:"TEMP_DIR"`

	TranscodeTimeout  time.Duration `env:"TRANSCODE_TIMEOUT"  envDefault:"2m"`
	TranscribeTimeout time.Duration `env:"TRANSCRIBE_TIMEOUT" envDefault:"5m"`
	TranslateTimeout  time.Duration `env:"TRANSLATE_TIMEOUT"  envDefault:"2m"`

	// TranslateWorkers bounds concurrent translation calls; 0 runs all
	// requested languages at once.
	TranslateWorkers int `env:"TRANSLATE_WORKERS" envDefault:"0"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is not set")
	}
	return cfg, nil
}
