// Package job provides background job processing using Asynq.
//
// Asynq is a Redis-backed job queue:
//   - You enqueue tasks (producer) using asynq.Client.
//   - A server runs workers that process those tasks (consumer) using asynq.Server.
package job

import (
	"context"
	"fmt"

	"github.com/deppfellow/clothes-catalog/internal/config"
	"github.com/deppfellow/clothes-catalog/internal/lib/email"
	"github.com/deppfellow/clothes-catalog/internal/model/cloth"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// Enqueuer is the producing half of asynq.Client.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
	Close() error
}

// JobService enqueues notification tasks and runs the workers that send them.
type JobService struct {
	Client Enqueuer

	server *asynq.Server
	sender ClothCreatedSender
	logger *zerolog.Logger

	// notifyTo receives every cloth created notification.
	notifyTo string
}

// NewJobService creates a JobService backed by the configured Redis.
//
// Queue weights give "critical" tasks the largest share of the 10 workers.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		},
	)

	return &JobService{
		Client:   asynq.NewClient(redisOpt),
		server:   server,
		sender:   email.NewClient(cfg, logger),
		logger:   logger,
		notifyTo: cfg.Integration.NotifyEmail,
	}
}

// Start registers task handlers and starts the workers in the background.
func (j *JobService) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskClothCreated, j.handleClothCreatedTask)

	j.logger.Info().Msg("Starting background job server")

	if err := j.server.Start(mux); err != nil {
		return fmt.Errorf("failed to start job server: %w", err)
	}

	return nil
}

// Stop waits for in-flight tasks and closes the enqueue client.
func (j *JobService) Stop() {
	j.logger.Info().Msg("Stopping background job server")
	if j.server != nil {
		j.server.Shutdown()
	}
	if err := j.Client.Close(); err != nil {
		j.logger.Error().Err(err).Msg("failed to close job client")
	}
}

// NotifyClothCreated enqueues a TaskClothCreated for c.
func (j *JobService) NotifyClothCreated(ctx context.Context, c *cloth.Cloth) error {
	task, err := NewClothCreatedTask(ClothCreatedPayload{
		To:        j.notifyTo,
		ClothID:   c.ID.String(),
		ClothName: c.Data.Name,
		Price:     c.Data.Price,
	})
	if err != nil {
		return fmt.Errorf("failed to build cloth created task: %w", err)
	}

	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue cloth created task: %w", err)
	}

	j.logger.Debug().
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Str("cloth_id", c.ID.String()).
		Msg("enqueued cloth created notification")

	return nil
}
