package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/aion/internal/logger"
	"github.com/MKhiriev/aion/models"
)

type moodRepository struct {
	mu     sync.RWMutex
	moods  map[int64]models.Mood
	nextID int64

	logger *logger.Logger
}

func NewMoodRepository(logger *logger.Logger) MoodRepository {
	logger.Debug().Msg("MoodRepository created")
	return &moodRepository{
		moods:  make(map[int64]models.Mood),
		nextID: 1,
		logger: logger,
	}
}

func (r *moodRepository) Create(_ context.Context, insert models.InsertMood) (models.Mood, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	mood := models.Mood{
		ID:       r.nextID,
		UserID:   insert.UserID,
		Date:     insert.Date,
		MoodType: insert.MoodType,
		Notes:    insert.Notes,
	}
	r.moods[mood.ID] = mood
	r.nextID++

	return mood, nil
}

func (r *moodRepository) Get(_ context.Context, id int64) (models.Mood, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	mood, ok := r.moods[id]
	if !ok {
		return models.Mood{}, ErrMoodNotFound
	}
	return mood, nil
}

// List filters by user and an optional inclusive window on the record date,
// ordered descending by date.
func (r *moodRepository) List(_ context.Context, userID int64, from, to *time.Time) ([]models.Mood, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	moods := make([]models.Mood, 0)
	for _, mood := range r.moods {
		if mood.UserID == userID && inRange(mood.Date, from, to) {
			moods = append(moods, mood)
		}
	}

	sort.Slice(moods, func(i, j int) bool { return moods[i].Date.After(moods[j].Date) })

	return moods, nil
}
