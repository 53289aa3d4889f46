package repository

import (
	"context"
	"sort"

	"github.com/Marga-Ghale/projectflow/internal/store"
)

// ActivityRepository is read-only apart from fixture loads.
type ActivityRepository interface {
	FindRecent(ctx context.Context, limit int) ([]Activity, error)
	ReplaceAll(ctx context.Context, activities []Activity) error
}

type activityRepository struct {
	activities *collection[Activity]
}

func NewActivityRepository(s store.Store) ActivityRepository {
	return &activityRepository{activities: newCollection[Activity](s, store.KeyActivities)}
}

// FindRecent returns newest first; limit <= 0 means all.
func (r *activityRepository) FindRecent(ctx context.Context, limit int) ([]Activity, error) {
	items, err := r.activities.list(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp.After(items[j].Timestamp)
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (r *activityRepository) ReplaceAll(ctx context.Context, activities []Activity) error {
	return r.activities.replace(ctx, activities)
}
