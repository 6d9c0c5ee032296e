package pipeline

import (
	"errors"
	"fmt"
)

// Mode selects the extraction strategy. It is a closed set so the fallback
// state machine can be exhaustive.
type Mode int

const (
	// ModeAuto tries layout extraction first and falls back to OCR at most
	// once when the layout path produces nothing.
	ModeAuto Mode = iota
	// ModeLayout runs only the layout classifier, even if the result is empty.
	ModeLayout
	// ModeOCR runs only the OCR path with the pattern classifier.
	ModeOCR
)

// ErrInvalidMode is returned when a caller requests an unrecognized mode.
// The pipeline fails fast; no partial processing is attempted.
var ErrInvalidMode = errors.New("invalid extraction mode")

func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeLayout:
		return "layout"
	case ModeOCR:
		return "ocr"
	}
	return "unknown"
}

// ParseMode maps a mode string to its Mode value. The empty string means
// auto. Unknown values fail with ErrInvalidMode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "auto":
		return ModeAuto, nil
	case "layout":
		return ModeLayout, nil
	case "ocr":
		return ModeOCR, nil
	}
	return ModeAuto, fmt.Errorf("%w: %q", ErrInvalidMode, s)
}
