package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	processquery "supplychain-assistant/internal/assistant/process-query"
	"supplychain-assistant/internal/common/config"
	"supplychain-assistant/internal/common/logger"
	"supplychain-assistant/internal/fixtures"
	"supplychain-assistant/internal/models"
	"supplychain-assistant/pkg/registry"
)

const resetCommand = "/reset"

// Turn is one replayed line.
type Turn struct {
	Turn     int                        `json:"turn"`
	Query    string                     `json:"query"`
	Intent   models.Intent              `json:"intent"`
	Tier     string                     `json:"tier"`
	Entities models.Entities            `json:"entities"`
	Response models.QueryResponse       `json:"response"`
	Context  models.ConversationContext `json:"context"`
}

type replayer struct {
	processor *processquery.Processor
	role      models.Role
}

func newReplayer(engine config.EngineConfig, anchor time.Time, role models.Role, log logger.Logger) *replayer {
	cfg := &config.Config{Engine: engine}
	return &replayer{
		processor: processquery.NewFromStore(cfg, fixtures.NewStore(anchor), registry.Default(), nil, log),
		role:      role,
	}
}

// Run answers every message in in and writes one JSON record per turn.
func (r *replayer) Run(ctx context.Context, in io.Reader, out io.Writer, pretty bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	enc := json.NewEncoder(out)
	if pretty {
		enc.SetIndent("", "  ")
	}

	var conversation models.ConversationContext
	turn := 0
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
			continue
		case line == resetCommand:
			conversation = models.ConversationContext{}
			continue
		}

		turn++
		res := r.processor.Process(ctx, processquery.Query{Text: line, Role: r.role, Context: conversation})
		conversation = res.Context

		if err := enc.Encode(Turn{
			Turn:     turn,
			Query:    line,
			Intent:   res.Response.Intent,
			Tier:     res.Match.Tier.String(),
			Entities: res.Entities,
			Response: res.Response,
			Context:  res.Context,
		}); err != nil {
			return fmt.Errorf("write turn %d: %w", turn, err)
		}
	}
	return scanner.Err()
}
