package stt

import "fmt"

// Segment is a timestamped portion of a transcript.
type Segment struct {
	Start float64
	End   float64
	Text  string
}

// Transcript is the output of one transcription call. Confidence is nil
// when the backend provides no per-segment probabilities; that is a
// valid state, not an error. Language is the detected ISO 639-1 code,
// empty when detection was not possible (e.g. empty transcript).
type Transcript struct {
	Text       string
	Confidence *float64
	Language   string
	Segments   []Segment
}

// TranscriptionError reports a model-level transcription failure. The
// wrapped error carries backend detail for logging.
type TranscriptionError struct {
	Err error
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("transcription: %v", e.Err)
}

func (e *TranscriptionError) Unwrap() error { return e.Err }
