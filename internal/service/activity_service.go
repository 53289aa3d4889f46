package service

import (
	"context"
	"fmt"

	"github.com/Marga-Ghale/projectflow/internal/repository"
)

// ============================================
// Activity Service
// ============================================

// ActivityService serves the activity feed. Entries come from seed data;
// user actions do not append to it.
type ActivityService interface {
	Recent(ctx context.Context, limit int) ([]repository.Activity, error)
}

type activityService struct {
	activityRepo repository.ActivityRepository
}

func NewActivityService(activityRepo repository.ActivityRepository) ActivityService {
	return &activityService{activityRepo: activityRepo}
}

func (s *activityService) Recent(ctx context.Context, limit int) ([]repository.Activity, error) {
	activities, err := s.activityRepo.FindRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load activities: %w", err)
	}
	return activities, nil
}
