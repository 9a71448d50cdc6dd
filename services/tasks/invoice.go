package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeAggregateInvoices = "invoice:aggregate"

// AggregatePayload carries the week to roll up.
type AggregatePayload struct {
	PeriodStart string `json:"periodStart"` // Monday, "2006-01-02"
}

func NewAggregateInvoicesTask(periodStart string, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(AggregatePayload{PeriodStart: periodStart})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeAggregateInvoices, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt), asynq.MaxRetry(3)}

	return task, opts, nil
}

// LastPeriodStart returns the Monday of the most recently completed week.
func LastPeriodStart(now time.Time) string {
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday
	}
	thisMonday := now.AddDate(0, 0, -(weekday - 1))
	return thisMonday.AddDate(0, 0, -7).Format("2006-01-02")
}
