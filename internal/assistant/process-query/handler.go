package processquery

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"

	"supplychain-assistant/internal/common/errors"
	"supplychain-assistant/internal/common/logger"
	"supplychain-assistant/internal/common/metrics"
	"supplychain-assistant/internal/models"
)

const TaskType = "process-query"

// Handler exposes the Processor as a zeebe job worker. The process instance
// carries the conversation context, so the worker itself is stateless.
type Handler struct {
	config    *Config
	processor *Processor
	errors    *errors.ErrorHandler
	logger    logger.Logger
}

func NewHandler(config *Config, processor *Processor, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:    config,
		processor: processor,
		errors:    errors.NewErrorHandler(log),
		logger:    log,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":             job.Key,
		"processInstanceKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(ctx, client, job, errors.NewInvalidRequestError(fmt.Sprintf("parse job variables: %v", err)))
		return
	}

	output, err := h.safeExecute(ctx, &input)
	if err != nil {
		h.failJob(ctx, client, job, err)
		return
	}

	h.completeJob(ctx, client, job, output)
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(start).Seconds())
}

// Execute validates the job input and runs one turn.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, errors.NewInvalidRequestError("text is required")
	}
	role, ok := models.ParseRole(input.Role)
	if !ok {
		return nil, errors.NewInvalidRoleError(input.Role)
	}

	result := h.processor.Process(ctx, Query{
		Text:    input.Text,
		Role:    role,
		Context: input.Context,
	})
	return &Output{Response: result.Response, Context: result.Context}, nil
}

// safeExecute turns a panic inside synthesis into a non-retryable failure.
func (h *Handler) safeExecute(ctx context.Context, input *Input) (out *Output, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, errors.NewQueryProcessingFailedError(fmt.Sprint(r))
		}
	}()
	return h.Execute(ctx, input)
}

func (h *Handler) completeJob(ctx context.Context, client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	if _, err := cmd.Send(ctx); err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (h *Handler) failJob(ctx context.Context, client worker.JobClient, job entities.Job, err error) {
	code := string(errors.ErrCodeInternal)
	if stdErr, ok := errors.AsStandardError(err); ok {
		code = string(stdErr.Code)
	}
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, code).Inc()
	h.errors.HandleJobError(ctx, client, job, err)
}
