// Package pipeline sequences the video translation run: stage the
// upload, extract audio, transcribe, fan translations out per language.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zulalbeyza/ai-powered-video-translation-app/identity"
	"github.com/zulalbeyza/ai-powered-video-translation-app/stt"
	"github.com/zulalbeyza/ai-powered-video-translation-app/translate"
)

// Extractor converts a staged video into an audio file.
type Extractor interface {
	ExtractAudio(ctx context.Context, videoPath, audioPath string) error
	AudioDuration(ctx context.Context, path string) (time.Duration, error)
}

// Transcriber converts an audio file into a transcript.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (stt.Transcript, error)
}

// Progress receives milestone events for display. A run succeeds with
// or without a subscriber.
type Progress func(stage Stage, fraction float64)

// Status is the terminal state of a run.
type Status string

const (
	StatusCompleted Status = "completed"
	// StatusCompletedWithErrors means the run finished but one or more
	// languages carry a translation error.
	StatusCompletedWithErrors Status = "completed_with_errors"
	StatusFailed              Status = "failed"
)

// Run is the aggregate outcome of one pipeline invocation. Elapsed is
// set on every outcome, including failures.
type Run struct {
	ID           string
	Fingerprint  string
	Transcript   stt.Transcript
	Translations []translate.Result
	Elapsed      time.Duration
	Status       Status
	FailedStage  Stage // set only when Status is StatusFailed
}

type Config struct {
	// TempDir is the parent directory for per-run work areas; empty
	// means the system temp directory.
	TempDir string

	// TranscribeTimeout bounds the transcription call; 0 disables the
	// bound.
	TranscribeTimeout time.Duration
}

// Pipeline orchestrates one run at a time; independent runs may execute
// concurrently, each with its own work area.
type Pipeline struct {
	// Progress, when set, receives milestone events.
	Progress Progress

	extractor   Extractor
	transcriber Transcriber
	fanOut      *translate.FanOut
	logger      *zap.Logger
	cfg         Config
}

func New(extractor Extractor, transcriber Transcriber, fanOut *translate.FanOut, logger *zap.Logger, cfg Config) *Pipeline {
	return &Pipeline{
		extractor:   extractor,
		transcriber: transcriber,
		fanOut:      fanOut,
		logger:      logger,
		cfg:         cfg,
	}
}

// Run processes one upload end to end. On a stage failure it returns
// the partial Run (status failed, elapsed time set) together with a
// *StageError; translation failures are per-language and do not fail
// the run.
func (p *Pipeline) Run(ctx context.Context, input MediaInput, langs []translate.Language) (*Run, error) {
	start := time.Now()
	run := &Run{ID: uuid.NewString()}
	defer func() { run.Elapsed = time.Since(start) }()

	fail := func(stage Stage, cause error) (*Run, error) {
		run.Status = StatusFailed
		run.FailedStage = stage
		p.logger.Error("pipeline run failed",
			zap.String("run_id", run.ID),
			zap.String("stage", string(stage)),
			zap.Error(cause),
		)
		return run, &StageError{Stage: stage, Err: cause}
	}

	// Validate before touching the filesystem: a rejected upload must
	// not leave a work area behind.
	if len(input.Data) == 0 {
		return fail(StageInput, errors.New("empty upload"))
	}
	if !SupportedFormat(input.Filename) {
		return fail(StageInput, fmt.Errorf("unsupported container format %q", filepath.Ext(input.Filename)))
	}

	name := SanitizeFilename(input.Filename)
	run.Fingerprint = identity.Fingerprint(input.Data)

	log := p.logger.With(
		zap.String("run_id", run.ID),
		zap.String("fingerprint", run.Fingerprint),
	)
	log.Info("processing video",
		zap.String("file", name),
		zap.Int("size_bytes", len(input.Data)),
		zap.Int("languages", len(langs)),
	)

	area, err := NewWorkArea(p.cfg.TempDir, run.ID)
	if err != nil {
		return fail(StageInternal, err)
	}
	defer func() {
		if rerr := area.Release(); rerr != nil {
			log.Warn("failed to release work area", zap.Error(rerr))
		}
	}()

	videoPath := area.Path(name)
	if err := os.WriteFile(videoPath, input.Data, 0o644); err != nil {
		return fail(StageInternal, fmt.Errorf("stage upload: %w", err))
	}
	audioPath := area.Path(strings.TrimSuffix(name, filepath.Ext(name)) + ".mp3")

	if err := p.extractor.ExtractAudio(ctx, videoPath, audioPath); err != nil {
		return fail(StageTranscode, err)
	}
	if d, err := p.extractor.AudioDuration(ctx, audioPath); err != nil {
		log.Warn("could not probe audio duration", zap.Error(err))
	} else {
		log.Info("audio extracted", zap.Duration("audio_duration", d))
	}
	p.report(StageTranscode, 0.33)

	sctx := ctx
	if p.cfg.TranscribeTimeout > 0 {
		var cancel context.CancelFunc
		sctx, cancel = context.WithTimeout(ctx, p.cfg.TranscribeTimeout)
		defer cancel()
	}
	transcript, err := p.transcriber.Transcribe(sctx, audioPath)
	if err != nil {
		return fail(StageTranscribe, err)
	}
	run.Transcript = transcript
	p.report(StageTranscribe, 0.66)

	fields := []zap.Field{
		zap.Int("transcript_chars", len(transcript.Text)),
		zap.String("detected_language", transcript.Language),
	}
	if transcript.Confidence != nil {
		fields = append(fields, zap.Float64("confidence", *transcript.Confidence))
	}
	log.Info("audio transcribed", fields...)

	var done int
	run.Translations = p.fanOut.Translate(ctx, transcript.Text, langs, func(r translate.Result) {
		done++
		if r.Err != nil {
			log.Warn("translation failed",
				zap.String("language", r.Language.Code),
				zap.Error(r.Err),
			)
		}
		p.report(StageTranslate, 0.66+0.34*float64(done)/float64(len(langs)))
	})

	run.Status = StatusCompleted
	for _, r := range run.Translations {
		if r.Err != nil {
			run.Status = StatusCompletedWithErrors
			break
		}
	}

	log.Info("pipeline run completed",
		zap.String("status", string(run.Status)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return run, nil
}

func (p *Pipeline) report(stage Stage, fraction float64) {
	if p.Progress != nil {
		p.Progress(stage, fraction)
	}
}
