// internal/common/camunda/worker.go
package camunda

import (
	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"

	"supplychain-assistant/internal/common/config"
)

// JobHandler completes or fails the job itself.
type JobHandler interface {
	Handle(client worker.JobClient, job entities.Job)
}

type Logger interface {
	Info(msg string, fields map[string]interface{})
}

type Worker struct {
	client   zbc.Client
	worker   worker.JobWorker
	handler  JobHandler
	config   config.WorkerConfig
	logger   Logger
	taskType string
}

func NewWorker(client zbc.Client, taskType string, cfg config.WorkerConfig, handler JobHandler, log Logger) *Worker {
	return &Worker{
		client:   client,
		handler:  handler,
		config:   cfg,
		logger:   log,
		taskType: taskType,
	}
}

// Start opens the job worker. Disabled workers are logged and skipped.
func (w *Worker) Start() bool {
	if !w.config.Enabled {
		w.logger.Info("worker disabled", map[string]interface{}{"taskType": w.taskType})
		return false
	}

	w.worker = w.client.NewJobWorker().
		JobType(w.taskType).
		Handler(w.handler.Handle).
		MaxJobsActive(w.config.MaxJobsActive).
		Timeout(config.GetDuration(w.config.Timeout)).
		Open()

	w.logger.Info("worker started", map[string]interface{}{
		"taskType":      w.taskType,
		"maxJobsActive": w.config.MaxJobsActive,
		"timeout_ms":    w.config.Timeout,
	})
	return true
}

// Stop closes the job worker and waits for in-flight jobs. The client stays open.
func (w *Worker) Stop() {
	if w.worker == nil {
		return
	}
	w.logger.Info("stopping worker", map[string]interface{}{"taskType": w.taskType})
	w.worker.Close()
	w.worker.AwaitClose()
}
