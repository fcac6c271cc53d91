package api

import "supplychain-assistant/internal/common/validation"

// A single chat message is capped at 2000 characters.
const queryRequestSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "QueryRequest",
  "type": "object",
  "required": ["sessionId", "role", "text"],
  "properties": {
    "sessionId": {"type": "string", "minLength": 1, "maxLength": 128},
    "role": {"type": "string", "minLength": 1},
    "text": {"type": "string", "minLength": 1, "maxLength": 2000}
  },
  "additionalProperties": false
}`

var queryRequestValidator = validation.MustValidator("query-request", queryRequestSchema)

type QueryRequest struct {
	SessionID string `json:"sessionId"`
	Role      string `json:"role"`
	Text      string `json:"text"`
}
