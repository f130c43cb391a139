// Package media shells out to ffmpeg to turn uploaded videos into audio
// files the transcription engine can consume.
package media

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// TranscodeError reports a failed ffmpeg invocation. Stderr carries the
// tool's diagnostic output for logging; user-facing code should not
// display it.
type TranscodeError struct {
	Stderr string
	Err    error
}

func (e *TranscodeError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("ffmpeg: %v", e.Err)
	}
	return fmt.Sprintf("ffmpeg: %v: %s", e.Err, strings.TrimSpace(e.Stderr))
}

func (e *TranscodeError) Unwrap() error { return e.Err }

// Extractor extracts the audio track of a video via ffmpeg.
type Extractor struct {
	Binary      string // ffmpeg executable, "ffmpeg" if empty
	ProbeBinary string // ffprobe executable, "ffprobe" if empty
	Codec       string // target audio codec, "libmp3lame" if empty
	Timeout     time.Duration
}

func (e *Extractor) binary() string {
	if e.Binary == "" {
		return "ffmpeg"
	}
	return e.Binary
}

func (e *Extractor) probeBinary() string {
	if e.ProbeBinary == "" {
		return "ffprobe"
	}
	return e.ProbeBinary
}

func (e *Extractor) codec() string {
	if e.Codec == "" {
		return "libmp3lame"
	}
	return e.Codec
}

// ExtractAudio writes the audio track of videoPath to audioPath,
// dropping the video stream. The input file is not modified.
func (e *Extractor) ExtractAudio(ctx context.Context, videoPath, audioPath string) error {
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, e.binary(), "-i", videoPath, "-vn", "-acodec", e.codec(), audioPath)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		return &TranscodeError{Stderr: stderr.String(), Err: err}
	}
	return nil
}

// AudioDuration probes the duration of a media file via ffprobe.
func (e *Extractor) AudioDuration(ctx context.Context, path string) (time.Duration, error) {
	cmd := exec.CommandContext(ctx, e.probeBinary(),
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	output, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe: %w", err)
	}

	seconds, err := strconv.ParseFloat(strings.TrimSpace(string(output)), 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration: %w", err)
	}
	return time.Duration(seconds * float64(time.Second)), nil
}
