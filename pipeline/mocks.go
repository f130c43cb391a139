package pipeline

import (
	"context"
	"time"

	"github.com/zulalbeyza/ai-powered-video-translation-app/stt"
)

type MockExtractor struct {
	ExtractAudioFunc  func(ctx context.Context, videoPath, audioPath string) error
	AudioDurationFunc func(ctx context.Context, path string) (time.Duration, error)
}

func (m *MockExtractor) ExtractAudio(ctx context.Context, videoPath, audioPath string) error {
	return m.ExtractAudioFunc(ctx, videoPath, audioPath)
}

func (m *MockExtractor) AudioDuration(ctx context.Context, path string) (time.Duration, error) {
	if m.AudioDurationFunc == nil {
		return 0, nil
	}
	return m.AudioDurationFunc(ctx, path)
}

type MockTranscriber struct {
	TranscribeFunc func(ctx context.Context, audioPath string) (stt.Transcript, error)
}

func (m *MockTranscriber) Transcribe(ctx context.Context, audioPath string) (stt.Transcript, error) {
	return m.TranscribeFunc(ctx, audioPath)
}
