package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/aion/internal/logger"
	"github.com/MKhiriev/aion/models"
)

type eventRepository struct {
	mu     sync.RWMutex
	events map[int64]models.Event
	nextID int64

	logger *logger.Logger
}

func NewEventRepository(logger *logger.Logger) EventRepository {
	logger.Debug().Msg("EventRepository created")
	return &eventRepository{
		events: make(map[int64]models.Event),
		nextID: 1,
		logger: logger,
	}
}

func (r *eventRepository) Create(_ context.Context, insert models.InsertEvent) (models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	event := models.Event{
		ID:          r.nextID,
		UserID:      insert.UserID,
		Title:       insert.Title,
		Description: insert.Description,
		StartTime:   insert.StartTime,
		EndTime:     insert.EndTime,
		Type:        insert.Type,
		Location:    insert.Location,
	}
	r.events[event.ID] = event
	r.nextID++

	return event, nil
}

func (r *eventRepository) Get(_ context.Context, id int64) (models.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	event, ok := r.events[id]
	if !ok {
		return models.Event{}, ErrEventNotFound
	}
	return event, nil
}

// List filters by user and an optional inclusive window on the start time,
// ordered ascending by start time.
func (r *eventRepository) List(_ context.Context, userID int64, from, to *time.Time) ([]models.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	events := make([]models.Event, 0)
	for _, event := range r.events {
		if event.UserID == userID && inRange(event.StartTime, from, to) {
			events = append(events, event)
		}
	}

	sort.Slice(events, func(i, j int) bool { return events[i].StartTime.Before(events[j].StartTime) })

	return events, nil
}

func (r *eventRepository) Update(_ context.Context, id int64, patch models.EventPatch) (models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	event, ok := r.events[id]
	if !ok {
		return models.Event{}, ErrEventNotFound
	}

	if patch.UserID != nil {
		event.UserID = *patch.UserID
	}
	if patch.Title != nil {
		event.Title = *patch.Title
	}
	if patch.Description != nil {
		event.Description = *patch.Description
	}
	if patch.StartTime != nil {
		event.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		event.EndTime = *patch.EndTime
	}
	if patch.Type != nil {
		event.Type = *patch.Type
	}
	if patch.Location != nil {
		event.Location = *patch.Location
	}

	r.events[id] = event
	return event, nil
}

func (r *eventRepository) Delete(_ context.Context, id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.events[id]; !ok {
		return false
	}
	delete(r.events, id)
	return true
}
