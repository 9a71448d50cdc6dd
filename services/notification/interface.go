package notification

import "context"

// NotificationService sends FCM pushes to photographers about their
// schedule.
type NotificationService interface {
	NotifyAssignment(ctx context.Context, photographerID, shootID, date, timeOfDay, address string) error
	NotifyShootDeclined(ctx context.Context, photographerID, shootID, reason string) error
	NotifyInvoiceStatus(ctx context.Context, photographerID, invoiceID, status string) error
}
