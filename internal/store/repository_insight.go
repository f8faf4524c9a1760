package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/aion/internal/logger"
	"github.com/MKhiriev/aion/models"
)

type insightRepository struct {
	mu       sync.RWMutex
	insights map[int64]models.Insight
	nextID   int64

	now func() time.Time

	logger *logger.Logger
}

func NewInsightRepository(logger *logger.Logger) InsightRepository {
	logger.Debug().Msg("InsightRepository created")
	return &insightRepository{
		insights: make(map[int64]models.Insight),
		nextID:   1,
		now:      time.Now,
		logger:   logger,
	}
}

// Create assigns CreatedAt from the repository clock; callers cannot supply it.
func (r *insightRepository) Create(_ context.Context, insert models.InsertInsight) (models.Insight, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	insight := models.Insight{
		ID:         r.nextID,
		UserID:     insert.UserID,
		Content:    insert.Content,
		Type:       insert.Type,
		Category:   insert.Category,
		CreatedAt:  r.now(),
		IsRead:     insert.IsRead,
		IsActioned: insert.IsActioned,
	}
	r.insights[insight.ID] = insight
	r.nextID++

	return insight, nil
}

func (r *insightRepository) Get(_ context.Context, id int64) (models.Insight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	insight, ok := r.insights[id]
	if !ok {
		return models.Insight{}, ErrInsightNotFound
	}
	return insight, nil
}

// List returns the user's insights newest first. A limit of 0 or less means
// no limit.
func (r *insightRepository) List(_ context.Context, userID int64, limit int) ([]models.Insight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	insights := make([]models.Insight, 0)
	for _, insight := range r.insights {
		if insight.UserID == userID {
			insights = append(insights, insight)
		}
	}

	sort.Slice(insights, func(i, j int) bool {
		if insights[i].CreatedAt.Equal(insights[j].CreatedAt) {
			return insights[i].ID > insights[j].ID
		}
		return insights[i].CreatedAt.After(insights[j].CreatedAt)
	})

	if limit > 0 && len(insights) > limit {
		insights = insights[:limit]
	}

	return insights, nil
}

func (r *insightRepository) MarkRead(_ context.Context, id int64) (models.Insight, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	insight, ok := r.insights[id]
	if !ok {
		return models.Insight{}, ErrInsightNotFound
	}

	insight.IsRead = true
	r.insights[id] = insight
	return insight, nil
}

func (r *insightRepository) MarkActioned(_ context.Context, id int64) (models.Insight, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	insight, ok := r.insights[id]
	if !ok {
		return models.Insight{}, ErrInsightNotFound
	}

	insight.IsActioned = true
	r.insights[id] = insight
	return insight, nil
}
