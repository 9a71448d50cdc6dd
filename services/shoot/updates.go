package shoot

import (
	"context"
	"fmt"

	"shootflow/models"
	"shootflow/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Fields a PATCH may touch. Everything else in the payload is dropped so a
// stray client cannot rewrite payment snapshots or identifiers.
var patchableFields = map[string]bool{
	"scheduled_date":   true,
	"time":             true,
	"status":           true,
	"location":         true,
	"client":           true,
	"property_details": true,
	"tour_links":       true,
	"payment":          true,
	"media_urls":       true,
}

// Patch applies a partial update to a shoot. The raw payload is normalized
// (camelCase aliases collapsed to canonical keys) once here, then filtered
// to the patchable field set.
func (s *DefaultShootService) Patch(ctx context.Context, id string, raw map[string]interface{}) (*models.Shoot, error) {
	normalized := models.NormalizeShootPatch(raw)

	updateDoc := bson.M{}
	for k, v := range normalized {
		if patchableFields[k] {
			updateDoc[k] = v
		}
	}
	if len(updateDoc) == 0 {
		return nil, fmt.Errorf("no patchable fields in payload")
	}

	// A persisted manual tax amount is authoritative: recompute-style
	// patches may not silently replace it unless they clear the flag too.
	if payment, ok := updateDoc["payment"].(map[string]interface{}); ok {
		existing, err := s.Repo.GetByID(id)
		if err != nil {
			return nil, err
		}
		if existing.Payment.TaxManual {
			if _, cleared := payment["tax_manual"]; !cleared {
				delete(payment, "tax_amount")
				delete(payment, "total_quote")
				if len(payment) == 0 {
					delete(updateDoc, "payment")
				}
			}
		}
	}

	if err := s.Repo.Patch(id, updateDoc); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(id)
}

// Decline marks a shoot declined. The shoot document survives; only its
// status changes.
func (s *DefaultShootService) Decline(ctx context.Context, id, reason string) error {
	sh, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if sh.Status == models.ShootStatusDeclined {
		return fmt.Errorf("shoot %s is already declined", id)
	}

	updateDoc := bson.M{
		"status":         models.ShootStatusDeclined,
		"decline_reason": reason,
	}
	if err := s.Repo.Patch(id, updateDoc); err != nil {
		return err
	}

	for _, photographerID := range assignedPhotographers(sh) {
		if err := s.Notification.NotifyShootDeclined(ctx, photographerID, id, reason); err != nil {
			utils.GetLogger().Warn("decline: push failed",
				zap.String("photographerID", photographerID), zap.Error(err))
		}
	}
	return nil
}

// UpdateTourLinks replaces the tour-link bag on a shoot.
func (s *DefaultShootService) UpdateTourLinks(ctx context.Context, shootID string, links models.TourLinks) (*models.Shoot, error) {
	if err := s.Repo.Patch(shootID, bson.M{"tour_links": links}); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(shootID)
}

// AttachMedia appends delivered media URLs to a shoot.
func (s *DefaultShootService) AttachMedia(ctx context.Context, shootID string, urls []string) (*models.Shoot, error) {
	sh, err := s.Repo.GetByID(shootID)
	if err != nil {
		return nil, err
	}
	sh.MediaURLs = append(sh.MediaURLs, urls...)
	if err := s.Repo.Patch(shootID, bson.M{"media_urls": sh.MediaURLs}); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(shootID)
}

func assignedPhotographers(sh *models.Shoot) []string {
	seen := map[string]bool{}
	var ids []string
	if sh.Photographer != nil && *sh.Photographer != "" {
		seen[*sh.Photographer] = true
		ids = append(ids, *sh.Photographer)
	}
	for _, id := range sh.CategoryPhotographers {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}
