package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	QueueReportes = "jobs:reportes"
	QueueEmail    = "jobs:email"

	maxAttempts = 3
)

// Job is the generic envelope for all async tasks.
type Job struct {
	Type     string          `json:"type"`
	Payload  json.RawMessage `json:"payload"`
	Attempts int             `json:"attempts"`
}

// Processor handles one job payload. A returned error triggers a retry;
// after maxAttempts the job lands in the DLQ.
type Processor interface {
	Process(ctx context.Context, payload json.RawMessage) error
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueReporte pushes an accounting report job to Redis.
func (d *Dispatcher) EnqueueReporte(ctx context.Context, payload interface{}) error {
	return d.enqueue(ctx, QueueReportes, "reporte", payload)
}

// EnqueueEmail pushes an email job to Redis.
func (d *Dispatcher) EnqueueEmail(ctx context.Context, payload interface{}) error {
	return d.enqueue(ctx, QueueEmail, "email", payload)
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job := Job{Type: jobType, Payload: data}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, encoded).Err()
}

// Pool consumes both queues with a fixed set of goroutines.
type Pool struct {
	rdb        *redis.Client
	processors map[string]Processor // keyed by queue
}

func NewPool(rdb *redis.Client, reporte, email Processor) *Pool {
	return &Pool{
		rdb: rdb,
		processors: map[string]Processor{
			QueueReportes: reporte,
			QueueEmail:    email,
		},
	}
}

// Start launches numWorkers goroutines. Each blocks on BRPOP — zero CPU
// when idle — and exits when ctx is cancelled.
func (p *Pool) Start(ctx context.Context, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go p.run(ctx, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func (p *Pool) run(ctx context.Context, id int) {
	queues := []string{QueueReportes, QueueEmail}
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := p.rdb.BRPop(ctx, 5*time.Second, queues...).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			p.processJob(ctx, result[0], result[1])
		}
	}
}

func (p *Pool) processJob(ctx context.Context, queue, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Str("queue", queue).Err(err).Msg("failed to unmarshal job")
		return
	}

	proc, ok := p.processors[queue]
	if !ok || proc == nil {
		log.Error().Str("queue", queue).Str("type", job.Type).Msg("no processor for queue")
		return
	}

	if err := proc.Process(ctx, job.Payload); err != nil {
		job.Attempts++
		if job.Attempts >= maxAttempts {
			SendToDLQ(ctx, p.rdb, queue, job.Type, job.Payload, err.Error(), job.Attempts)
			return
		}
		log.Warn().Str("queue", queue).Str("type", job.Type).
			Int("attempts", job.Attempts).Err(err).Msg("job failed, requeueing")
		if encoded, mErr := json.Marshal(job); mErr == nil {
			_ = p.rdb.LPush(ctx, queue, encoded).Err()
		}
		return
	}
	log.Info().Str("type", job.Type).Str("queue", queue).Msg("job processed")
}
