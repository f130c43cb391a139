package pipeline

import "fmt"

// Stage identifies where in the run a failure happened.
type Stage string

const (
	StageInput      Stage = "input"
	StageTranscode  Stage = "transcode"
	StageTranscribe Stage = "transcribe"
	StageTranslate  Stage = "translate"
	StageInternal   Stage = "internal"
)

// StageError tags a failure with the stage it occurred in. Error()
// carries the full diagnostic chain for logging; UserMessage() is the
// generic text safe to show end users.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

func (e *StageError) UserMessage() string {
	switch e.Stage {
	case StageInput:
		return "The uploaded file could not be accepted."
	case StageTranscode:
		return "Converting the video to audio failed."
	case StageTranscribe:
		return "Transcribing the audio failed."
	case StageTranslate:
		return "Translating the transcript failed."
	default:
		return "An unexpected error occurred during processing."
	}
}
