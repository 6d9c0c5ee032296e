package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"outliner/internal/classify"
	"outliner/internal/outline"
)

// Source produces the observation sequence for one document. Implementations
// wrap the external extractors (PDF layout analysis, OCR inference); calls
// into them may be slow and are treated as opaque synchronous operations.
// An unavailable extractor reports an empty sequence, not an error the
// pipeline would abort on.
type Source interface {
	Observations(ctx context.Context) ([]outline.Observation, error)
}

// Runner drives one extraction: pick a classifier per the mode, run it over
// the matching source's observations, and hand the candidates to the
// assembler. Runners are cheap and carry no cross-document state; build one
// per document.
type Runner struct {
	Layout   Source
	OCR      Source
	Classify classify.Config
	Assemble outline.AssembleConfig
	Log      *slog.Logger
}

// extraction states; auto mode walks TryLayout -> TryOCR -> Done and never
// loops back.
type state int

const (
	stateTryLayout state = iota
	stateTryOCR
	stateDone
)

// Extract runs the pipeline for one document and returns its outline.
// sourceName is the title fallback when page 1 yields no candidates. The only
// caller errors are an unrecognized mode and context cancellation; extractor
// failures degrade to an empty outline.
func (r *Runner) Extract(ctx context.Context, mode Mode, sourceName string) (outline.Outline, error) {
	var st state
	switch mode {
	case ModeAuto, ModeLayout:
		st = stateTryLayout
	case ModeOCR:
		st = stateTryOCR
	default:
		return outline.Outline{}, fmt.Errorf("%w: %d", ErrInvalidMode, int(mode))
	}

	var candidates []outline.Candidate
	for st != stateDone {
		if err := ctx.Err(); err != nil {
			return outline.Outline{}, err
		}
		switch st {
		case stateTryLayout:
			candidates = r.runLayout(ctx)
			if mode == ModeAuto && len(candidates) == 0 {
				st = stateTryOCR
				continue
			}
			st = stateDone
		case stateTryOCR:
			candidates = r.runOCR(ctx)
			st = stateDone
		}
	}

	return outline.Assemble(candidates, sourceName, r.Assemble), nil
}

func (r *Runner) runLayout(ctx context.Context) []outline.Candidate {
	obs := r.observe(ctx, r.Layout, "layout")
	return classify.NewLayoutClassifier(r.Classify).Classify(obs)
}

func (r *Runner) runOCR(ctx context.Context) []outline.Candidate {
	obs := r.observe(ctx, r.OCR, "ocr")
	return classify.NewPatternClassifier(r.Classify).Classify(obs)
}

// observe calls a source and flattens extractor failure into an empty
// sequence. "No observations" and "extractor unavailable" are the same
// downstream: a valid, possibly empty outline.
func (r *Runner) observe(ctx context.Context, src Source, name string) []outline.Observation {
	if src == nil {
		return nil
	}
	obs, err := src.Observations(ctx)
	if err != nil {
		if r.Log != nil {
			r.Log.Warn("extractor unavailable", "source", name, "error", err)
		}
		return nil
	}
	return obs
}
