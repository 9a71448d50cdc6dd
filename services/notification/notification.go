package notification

import (
	"context"
	"fmt"

	userRepo "shootflow/database/repository/user"
	"shootflow/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Accounts userRepo.AccountRepository
}

// NotifyAssignment pushes the shoot details to the assigned photographer.
func (s *DefaultNotificationService) NotifyAssignment(ctx context.Context, photographerID, shootID, date, timeOfDay, address string) error {
	title := "New shoot assigned"
	body := fmt.Sprintf("%s at %s, %s", date, timeOfDay, address)
	return s.push(ctx, photographerID, title, body, map[string]string{
		"type":     "assignment",
		"shoot_id": shootID,
	})
}

// NotifyShootDeclined tells the photographer a shoot on their schedule was
// declined.
func (s *DefaultNotificationService) NotifyShootDeclined(ctx context.Context, photographerID, shootID, reason string) error {
	body := "A shoot on your schedule was declined"
	if reason != "" {
		body += ": " + reason
	}
	return s.push(ctx, photographerID, "Shoot declined", body, map[string]string{
		"type":     "declined",
		"shoot_id": shootID,
	})
}

// NotifyInvoiceStatus tells the photographer their weekly invoice moved.
func (s *DefaultNotificationService) NotifyInvoiceStatus(ctx context.Context, photographerID, invoiceID, status string) error {
	return s.push(ctx, photographerID, "Invoice "+status,
		fmt.Sprintf("Your weekly invoice is now %s", status),
		map[string]string{
			"type":       "invoice",
			"invoice_id": invoiceID,
			"status":     status,
		})
}

func (s *DefaultNotificationService) push(ctx context.Context, photographerID, title, body string, data map[string]string) error {
	logger := utils.GetLogger()
	if utils.FCMClient == nil {
		logger.Debug("notification: FCM not configured, skipping push",
			zap.String("photographerID", photographerID))
		return nil
	}

	acct, err := s.Accounts.GetByID(photographerID)
	if err != nil {
		return fmt.Errorf("notification: could not find photographer %s: %w", photographerID, err)
	}
	if acct.FCMToken == "" {
		logger.Debug("notification: photographer has no FCM token",
			zap.String("photographerID", photographerID))
		return nil
	}

	msg := &messaging.Message{
		Token: acct.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("notification: failed to send push to %s: %w", photographerID, err)
	}
	return nil
}
