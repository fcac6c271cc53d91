package processquery

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	classifyintent "supplychain-assistant/internal/assistant/classify-intent"
	extractentities "supplychain-assistant/internal/assistant/extract-entities"
	synthesizeresponse "supplychain-assistant/internal/assistant/synthesize-response"
	"supplychain-assistant/internal/common/config"
	"supplychain-assistant/internal/common/logger"
	"supplychain-assistant/internal/common/metrics"
	"supplychain-assistant/internal/common/observability"
	"supplychain-assistant/internal/fixtures"
	"supplychain-assistant/internal/models"
)

// Processor runs one chat turn: normalize, extract, classify, synthesize,
// then merge the handler's context delta. It keeps no state between calls,
// so one Processor serves every session concurrently.
type Processor struct {
	extractor   Extractor
	classifier  Classifier
	synthesizer Synthesizer
	obs         *observability.Observability
	logger      Logger
}

// NewProcessor wires explicit collaborators. obs may be nil.
func NewProcessor(extractor Extractor, classifier Classifier, synthesizer Synthesizer, obs *observability.Observability, log Logger) *Processor {
	return &Processor{
		extractor:   extractor,
		classifier:  classifier,
		synthesizer: synthesizer,
		obs:         obs,
		logger:      log,
	}
}

// NewFromStore builds the standard pipeline over a fixture store.
func NewFromStore(cfg *config.Config, store *fixtures.Store, suggestions synthesizeresponse.SuggestionSource, obs *observability.Observability, log logger.Logger) *Processor {
	return NewProcessor(
		extractentities.NewHandler(extractentities.LoadConfig(store)),
		classifyintent.NewHandler(),
		synthesizeresponse.NewHandler(synthesizeresponse.LoadConfig(cfg.Engine), store, suggestions, log),
		obs,
		log,
	)
}

// Process never fails. q.Context is read, never modified; the merged
// context comes back in Result.Context.
func (p *Processor) Process(ctx context.Context, q Query) Result {
	start := time.Now()
	ctx, span := p.obs.StartSpan(ctx, "assistant.process_query", attribute.String("role", string(q.Role)))
	defer span.End()

	normalized := extractentities.Normalize(q.Text)
	entities := p.extractor.Extract(normalized)

	_, classifySpan := p.obs.StartSpan(ctx, "assistant.classify")
	match := p.classifier.Match(normalized, classificationContext(q.Context, entities))
	classifySpan.SetAttributes(
		attribute.String("intent", string(match.Intent)),
		attribute.String("tier", match.Tier.String()),
	)
	classifySpan.End()

	_, synthSpan := p.obs.StartSpan(ctx, "assistant.synthesize", attribute.String("intent", string(match.Intent)))
	resp := p.synthesizer.Synthesize(synthesizeresponse.Request{
		Text:     q.Text,
		Intent:   match.Intent,
		Entities: entities,
		Context:  q.Context,
		Role:     q.Role,
	})
	synthSpan.End()

	updated := q.Context.Merge(resp.ContextDelta)
	elapsed := time.Since(start)

	p.record(ctx, q, resp.Intent, entities, elapsed)

	fields := map[string]interface{}{
		"intent":      resp.Intent,
		"tier":        match.Tier.String(),
		"role":        q.Role,
		"entities":    len(entities),
		"duration_ms": elapsed.Milliseconds(),
	}
	if resp.Intent == models.IntentUnrecognized {
		fields["text"] = normalized
		p.logger.Warn("query not recognized", fields)
	} else {
		p.logger.Info("query processed", fields)
	}

	return Result{
		Response: resp,
		Context:  updated,
		Entities: entities,
		Match:    match,
	}
}

// classificationContext lets a trailer named in the query satisfy follow-up
// rules that otherwise need one carried from an earlier turn.
func classificationContext(c models.ConversationContext, entities models.Entities) models.ConversationContext {
	if id, ok := entities.First(models.EntityTrailer); ok {
		return c.Merge(&models.ConversationContext{TrailerID: id})
	}
	return c
}

func (p *Processor) record(ctx context.Context, q Query, intent models.Intent, entities models.Entities, elapsed time.Duration) {
	metrics.QueriesProcessed.WithLabelValues(string(intent), string(q.Role)).Inc()
	metrics.QueryDuration.WithLabelValues(string(intent)).Observe(elapsed.Seconds())
	if intent == models.IntentUnrecognized {
		metrics.UnrecognizedQueries.WithLabelValues(string(q.Role)).Inc()
	}
	for kind, n := range entities.Count() {
		metrics.EntitiesExtracted.WithLabelValues(string(kind)).Add(float64(n))
	}
	p.obs.RecordQuery(ctx, string(intent), string(q.Role), elapsed)
}
