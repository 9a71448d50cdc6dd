package shoot

import (
	"context"
	"fmt"

	"shootflow/models"
	"shootflow/services/ranking"
	"shootflow/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Assign places a photographer on a shoot, either overall or for one service
// category, and pushes them the schedule.
func (s *DefaultShootService) Assign(ctx context.Context, shootID, photographerID, categoryID string) (*models.Shoot, error) {
	sh, err := s.Repo.GetByID(shootID)
	if err != nil {
		return nil, err
	}

	acct, err := s.AccountRepo.GetByID(photographerID)
	if err != nil {
		return nil, fmt.Errorf("unknown photographer %s: %w", photographerID, err)
	}
	if acct.Role != models.RolePhotographer {
		return nil, fmt.Errorf("account %s is not a photographer", photographerID)
	}

	updateDoc := bson.M{}
	if categoryID == "" {
		updateDoc["photographer_id"] = photographerID
		sh.Photographer = &photographerID
	} else {
		if sh.CategoryPhotographers == nil {
			sh.CategoryPhotographers = map[string]string{}
		}
		sh.CategoryPhotographers[categoryID] = photographerID
		updateDoc["category_photographers"] = sh.CategoryPhotographers
	}
	updateDoc["photographer_ids"] = assignedPhotographers(sh)
	if sh.Status == models.ShootStatusPending {
		updateDoc["status"] = models.ShootStatusScheduled
	}

	if err := s.Repo.Patch(shootID, updateDoc); err != nil {
		return nil, err
	}

	if err := s.Notification.NotifyAssignment(ctx, photographerID, shootID, sh.ScheduledDate, sh.Time, sh.Location.Line()); err != nil {
		utils.GetLogger().Warn("assign: push failed",
			zap.String("photographerID", photographerID), zap.Error(err))
	}
	return s.Repo.GetByID(shootID)
}

// Candidates builds the ranked candidate list for a shoot's assignment
// dialog: the full photographer roster, each with their shoots that day, net
// availability and (once ranked) a travel distance from their origin.
func (s *DefaultShootService) Candidates(ctx context.Context, shootID, sortBy, searchQuery string) ([]models.PhotographerCandidate, error) {
	sh, err := s.Repo.GetByID(shootID)
	if err != nil {
		return nil, err
	}

	roster, err := s.AccountRepo.GetPhotographers()
	if err != nil {
		return nil, err
	}

	logger := utils.GetLogger()
	candidates := make([]models.PhotographerCandidate, 0, len(roster))
	for _, p := range roster {
		c := models.PhotographerCandidate{
			ID:            p.ID,
			Name:          p.Name,
			Email:         p.Email,
			AvatarURL:     p.AvatarURL,
			OriginAddress: p.HomeAddress,
		}

		declared, err := s.AccountRepo.GetAvailability(p.ID, sh.ScheduledDate)
		if err != nil {
			logger.Warn("candidates: availability lookup failed",
				zap.String("photographerID", p.ID), zap.Error(err))
		}
		c.AvailableSlots = declared

		dayShoots, err := s.Repo.GetByPhotographerAndDate(p.ID, sh.ScheduledDate)
		if err != nil {
			logger.Warn("candidates: schedule lookup failed",
				zap.String("photographerID", p.ID), zap.Error(err))
		}
		c.ShootsToday = len(dayShoots)

		// The origin is the last shoot of the day when one exists;
		// otherwise the photographer travels from home.
		if len(dayShoots) > 0 {
			last := dayShoots[len(dayShoots)-1]
			c.OriginAddress = last.Location
		}

		c.NetSlots = ranking.NetAvailableSlots(declared, bookedWindows(dayShoots))
		candidates = append(candidates, c)
	}

	return s.Ranker.Rank(ctx, sh.Location, candidates, sortBy, searchQuery)
}

// bookedWindows converts a day's shoots into one-hour blocking windows
// starting at each shoot's scheduled time.
func bookedWindows(shoots []models.Shoot) []models.AvailabilitySlot {
	var windows []models.AvailabilitySlot
	for _, sh := range shoots {
		start, ok := parseClock(sh.Time)
		if !ok {
			continue
		}
		windows = append(windows, models.AvailabilitySlot{
			Date:  sh.ScheduledDate,
			Start: start,
			End:   start + 60,
		})
	}
	return windows
}

// parseClock converts "15:04" to minutes from midnight.
func parseClock(clock string) (int, bool) {
	var h, m int
	if _, err := fmt.Sscanf(clock, "%d:%d", &h, &m); err != nil {
		return 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}
