package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"shootflow/config"
	"shootflow/services/invoice"
	"shootflow/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitInvoiceWorker runs the weekly invoice aggregation worker in background.
func InitInvoiceWorker(invoiceSvc invoice.InvoiceService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPass,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeAggregateInvoices, handleAggregateTask(invoiceSvc))

	go monitorRedisConnection()
	go scheduleWeeklyAggregation(redisOpts)

	// Start async worker with retry logic
	go func() {
		log.Println("[InvoiceWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[InvoiceWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[InvoiceWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleAggregateTask(invoiceSvc invoice.InvoiceService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.AggregatePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[InvoiceWorker] invalid payload: %v", err)
			return err
		}

		created, err := invoiceSvc.AggregateWeek(ctx, p.PeriodStart)
		if err != nil {
			log.Printf("[InvoiceWorker] aggregation for %s failed: %v", p.PeriodStart, err)
			return err
		}
		log.Printf("[InvoiceWorker] week %s aggregated, %d invoices created", p.PeriodStart, created)
		return nil
	}
}

// scheduleWeeklyAggregation enqueues one aggregation task per completed week.
// AggregateWeek skips photographer-weeks that already have an invoice, so a
// task enqueued twice after a restart is harmless.
func scheduleWeeklyAggregation(redisOpts asynq.RedisClientOpt) {
	client := asynq.NewClient(redisOpts)
	defer client.Close()

	for {
		now := time.Now()
		task, opts, err := tasks.NewAggregateInvoicesTask(tasks.LastPeriodStart(now), now)
		if err != nil {
			log.Printf("[InvoiceWorker] failed to build aggregation task: %v", err)
		} else if _, err := client.Enqueue(task, opts...); err != nil {
			log.Printf("[InvoiceWorker] failed to enqueue aggregation task: %v", err)
		}

		time.Sleep(nextMondayIn(now))
	}
}

// nextMondayIn returns the duration until 02:00 on the coming Monday.
func nextMondayIn(now time.Time) time.Duration {
	days := (int(time.Monday) - int(now.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	next := time.Date(now.Year(), now.Month(), now.Day(), 2, 0, 0, 0, now.Location()).AddDate(0, 0, days)
	return time.Until(next)
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPass,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[InvoiceWorker] redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
