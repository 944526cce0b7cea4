package wine

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"wine-club-be/internal/entity"
	"wine-club-be/internal/pkg/logger"
	"wine-club-be/pkg/llm"
	"wine-club-be/pkg/session"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const logModule = "WINE_PIPELINE"

// Identification is the outcome of one pipeline run.
// On inference or extraction failure Result holds the synthetic error record.
type Identification struct {
	Result    entity.WineResult
	Candidate *entity.WineCandidate
	Outcome   entity.ScanOutcome
	Duration  time.Duration
}

// Pipeline runs ingestion, inference, extraction, matching and merge strictly in that order.
type Pipeline struct {
	inference *Inference
	matcher   *Matcher
	merger    *Merger
	log       logger.ILogger
	tracer    trace.Tracer
}

func NewPipeline(inference *Inference, matcher *Matcher, merger *Merger, log logger.ILogger) *Pipeline {
	return &Pipeline{
		inference: inference,
		matcher:   matcher,
		merger:    merger,
		log:       log,
		tracer:    otel.Tracer("wine-club-be/pkg/wine"),
	}
}

// Identify returns ErrNoImageProvided with a nil Identification when payload is empty.
// ErrInferenceUnavailable and ErrMalformedModelOutput come back together with a displayable Identification.
// A curated lookup failure is not terminal: the result is built without curator data and marked lookup_failed.
func (p *Pipeline) Identify(ctx context.Context, payload []byte, declaredMime string) (*Identification, error) {
	start := time.Now()
	ctx, span := p.tracer.Start(ctx, "wine.identify")
	defer span.End()

	details := map[string]interface{}{"bytes": len(payload)}
	if s, ok := session.FromContext(ctx); ok {
		details["user_id"] = s.UserID.String()
	}

	image, err := EncodeImage(payload, declaredMime)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	details["mime"] = image.MimeType

	raw, err := p.runInference(ctx, image)
	if err != nil {
		details["error"] = err.Error()
		p.log.Error(logModule, "Inference call failed", details)
		return p.failed(span, start, entity.ScanOutcomeInferenceUnavailable, err), err
	}

	candidate, err := ExtractCandidate(raw)
	if err != nil {
		details["error"] = err.Error()
		details["raw"] = truncate(raw, 500)
		p.log.Warn(logModule, "Model output rejected", details)
		return p.failed(span, start, entity.ScanOutcomeMalformedOutput, err), err
	}
	details["candidate"] = candidate.Name
	span.SetAttributes(attribute.String("wine.candidate", candidate.Name))

	note, status := p.lookup(ctx, candidate.Name, details)

	result := p.merger.Merge(candidate, note)
	result.CuratedStatus = status
	span.SetAttributes(attribute.String("wine.curated_status", string(status)))

	elapsed := time.Since(start)
	details["curated_status"] = string(status)
	details["duration_ms"] = elapsed.Milliseconds()
	p.log.Info(logModule, "Wine identified", details)

	return &Identification{
		Result:    result,
		Candidate: &candidate,
		Outcome:   entity.ScanOutcomeIdentified,
		Duration:  elapsed,
	}, nil
}

func (p *Pipeline) runInference(ctx context.Context, image llm.Image) (string, error) {
	ctx, span := p.tracer.Start(ctx, "wine.inference")
	defer span.End()

	raw, err := p.inference.Run(ctx, image)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	}
	return raw, err
}

func (p *Pipeline) lookup(ctx context.Context, name string, details map[string]interface{}) (*entity.CuratedNote, entity.CuratedStatus) {
	ctx, span := p.tracer.Start(ctx, "wine.curated_lookup")
	defer span.End()

	note, found, err := p.matcher.Match(ctx, name)
	switch {
	case err != nil:
		span.SetStatus(codes.Error, err.Error())
		p.log.Error(logModule, "Curated notes lookup failed, continuing without curator data", map[string]interface{}{
			"candidate": name,
			"error":     err.Error(),
		})
		return nil, entity.CuratedStatusLookupFailed
	case found:
		details["curated_match"] = note.WineName
		return note, entity.CuratedStatusMatched
	default:
		return nil, entity.CuratedStatusNotReviewed
	}
}

func (p *Pipeline) failed(span trace.Span, start time.Time, outcome entity.ScanOutcome, err error) *Identification {
	span.SetStatus(codes.Error, err.Error())
	span.SetAttributes(attribute.String("wine.outcome", string(outcome)))
	return &Identification{
		Result:   ErrorResult(err),
		Outcome:  outcome,
		Duration: time.Since(start),
	}
}

// IsDisplayable reports whether err is one of the failures surfaced as a synthetic error record.
func IsDisplayable(err error) bool {
	return errors.Is(err, ErrInferenceUnavailable) || errors.Is(err, ErrMalformedModelOutput)
}

// truncate cuts s to at most n bytes without splitting a multi-byte character.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
