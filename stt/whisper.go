// Package stt wraps the Whisper speech-to-text backend.
package stt

import (
	"context"
	"math"
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
	openai "github.com/sashabaranov/go-openai"
)

// Whisper transcribes audio files through the OpenAI Whisper API. The
// API client and the language detector are initialized once on first
// use and reused by every subsequent call; a Whisper value is safe for
// concurrent use across runs.
type Whisper struct {
	apiKey string
	model  string

	clientOnce sync.Once
	client     *openai.Client

	detectorOnce sync.Once
	detector     lingua.LanguageDetector
}

func NewWhisper(apiKey, model string) *Whisper {
	if model == "" {
		model = openai.Whisper1
	}
	return &Whisper{apiKey: apiKey, model: model}
}

// Transcribe converts the audio file at audioPath into a Transcript.
// Silent audio yields an empty-text transcript rather than an error.
func (w *Whisper) Transcribe(ctx context.Context, audioPath string) (Transcript, error) {
	w.clientOnce.Do(func() {
		w.client = openai.NewClient(w.apiKey)
	})

	resp, err := w.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    w.model,
		FilePath: audioPath,
		Format:   openai.AudioResponseFormatVerboseJSON,
	})
	if err != nil {
		return Transcript{}, &TranscriptionError{Err: err}
	}

	t := Transcript{Text: strings.TrimSpace(resp.Text)}
	logprobs := make([]float64, 0, len(resp.Segments))
	for _, s := range resp.Segments {
		t.Segments = append(t.Segments, Segment{Start: s.Start, End: s.End, Text: s.Text})
		logprobs = append(logprobs, s.AvgLogprob)
	}
	t.Confidence = confidence(logprobs)
	t.Language = w.detectLanguage(t.Text)

	return t, nil
}

// confidence averages exp(avg_logprob) over the segments, clamped to
// [0,1]. Nil when the backend returned no segments.
func confidence(logprobs []float64) *float64 {
	if len(logprobs) == 0 {
		return nil
	}
	var sum float64
	for _, lp := range logprobs {
		sum += math.Exp(lp)
	}
	c := sum / float64(len(logprobs))
	if c > 1 {
		c = 1
	}
	if c < 0 {
		c = 0
	}
	return &c
}

func (w *Whisper) detectLanguage(text string) string {
	if text == "" {
		return ""
	}
	w.detectorOnce.Do(func() {
		w.detector = lingua.NewLanguageDetectorBuilder().FromAllLanguages().Build()
	})
	lang, ok := w.detector.DetectLanguageOf(text)
	if !ok {
		return ""
	}
	return strings.ToLower(lang.IsoCode639_1().String())
}
