package processquery

import (
	classifyintent "supplychain-assistant/internal/assistant/classify-intent"
	synthesizeresponse "supplychain-assistant/internal/assistant/synthesize-response"
	"supplychain-assistant/internal/models"
)

// Query is one chat turn as the caller sees it.
type Query struct {
	Text    string
	Role    models.Role
	Context models.ConversationContext
}

// Result pairs the response with the context the caller should keep for the
// next turn. Entities and Match are diagnostics for logs and tests.
type Result struct {
	Response models.QueryResponse
	Context  models.ConversationContext
	Entities models.Entities
	Match    classifyintent.Match
}

type Extractor interface {
	Extract(normalized string) models.Entities
}

type Classifier interface {
	Match(text string, ctx models.ConversationContext) classifyintent.Match
}

type Synthesizer interface {
	Synthesize(req synthesizeresponse.Request) models.QueryResponse
}

type Logger interface {
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Input is the job variable payload of the process-query task. The
// conversation context travels with the process instance.
type Input struct {
	Text    string                     `json:"text"`
	Role    string                     `json:"role"`
	Context models.ConversationContext `json:"context"`
}

type Output struct {
	Response models.QueryResponse       `json:"response"`
	Context  models.ConversationContext `json:"context"`
}
