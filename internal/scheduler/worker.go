package scheduler

import (
	"context"
	"fmt"

	"prospect_backend/platform/config"
	"prospect_backend/platform/logger"

	"github.com/hibiken/asynq"
)

// ProspectSearcher re-runs the discovery pipeline for a company.
type ProspectSearcher interface {
	Rescan(ctx context.Context, company string) error
}

type Worker struct {
	server   *asynq.Server
	mux      *asynq.ServeMux
	searcher ProspectSearcher
	log      *logger.Logger
}

func NewWorker(cfg config.SchedulerConfig, searcher ProspectSearcher, log *logger.Logger) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL, cfg.GetRedisTLSInsecure())
	if err != nil {
		return nil, err
	}

	queue := cfg.GetAsynqQueueName()
	if queue == "" {
		queue = "default"
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queue: 1,
		},
	})

	mux := asynq.NewServeMux()
	w := &Worker{
		server:   server,
		mux:      mux,
		searcher: searcher,
		log:      log,
	}

	mux.HandleFunc(TaskCompanyRescan, w.handleCompanyRescan)

	return w, nil
}

func (w *Worker) handleCompanyRescan(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseCompanyRescanPayload(task)
	if err != nil {
		return err
	}
	if payload.Company == "" {
		return nil
	}

	w.log.Info("running scheduled company rescan", "company", payload.Company)
	return w.searcher.Rescan(ctx, payload.Company)
}

func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("scheduler worker stopped", "error", err)
	}
}
