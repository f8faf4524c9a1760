package store

import (
	"context"
	"sort"
	"sync"

	"github.com/MKhiriev/aion/internal/logger"
	"github.com/MKhiriev/aion/models"
)

type goalRepository struct {
	mu     sync.RWMutex
	goals  map[int64]models.Goal
	nextID int64

	logger *logger.Logger
}

func NewGoalRepository(logger *logger.Logger) GoalRepository {
	logger.Debug().Msg("GoalRepository created")
	return &goalRepository{
		goals:  make(map[int64]models.Goal),
		nextID: 1,
		logger: logger,
	}
}

func (r *goalRepository) Create(_ context.Context, insert models.InsertGoal) (models.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	goal := models.Goal{
		ID:          r.nextID,
		UserID:      insert.UserID,
		Title:       insert.Title,
		Description: insert.Description,
		Target:      insert.Target,
		Current:     insert.Current,
		Deadline:    insert.Deadline,
		Category:    insert.Category,
		Icon:        insert.Icon,
		IsCompleted: insert.IsCompleted,
	}
	r.goals[goal.ID] = goal
	r.nextID++

	return goal, nil
}

func (r *goalRepository) Get(_ context.Context, id int64) (models.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	goal, ok := r.goals[id]
	if !ok {
		return models.Goal{}, ErrGoalNotFound
	}
	return goal, nil
}

func (r *goalRepository) List(_ context.Context, userID int64) ([]models.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	goals := make([]models.Goal, 0)
	for _, goal := range r.goals {
		if goal.UserID == userID {
			goals = append(goals, goal)
		}
	}

	// insertion order: identities are assigned monotonically
	sort.Slice(goals, func(i, j int) bool { return goals[i].ID < goals[j].ID })

	return goals, nil
}

func (r *goalRepository) Update(_ context.Context, id int64, patch models.GoalPatch) (models.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	goal, ok := r.goals[id]
	if !ok {
		return models.Goal{}, ErrGoalNotFound
	}

	if patch.UserID != nil {
		goal.UserID = *patch.UserID
	}
	if patch.Title != nil {
		goal.Title = *patch.Title
	}
	if patch.Description != nil {
		goal.Description = *patch.Description
	}
	if patch.Target != nil {
		goal.Target = *patch.Target
	}
	if patch.Current != nil {
		goal.Current = *patch.Current
	}
	if patch.Deadline != nil {
		goal.Deadline = patch.Deadline
	}
	if patch.Category != nil {
		goal.Category = *patch.Category
	}
	if patch.Icon != nil {
		goal.Icon = *patch.Icon
	}
	if patch.IsCompleted != nil {
		goal.IsCompleted = *patch.IsCompleted
	}

	r.goals[id] = goal
	return goal, nil
}

func (r *goalRepository) Delete(_ context.Context, id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.goals[id]; !ok {
		return false
	}
	delete(r.goals, id)
	return true
}
