package store

import (
	"context"
	"sort"
	"sync"

	"github.com/MKhiriev/aion/internal/logger"
	"github.com/MKhiriev/aion/models"
)

type lifeDomainRepository struct {
	mu      sync.RWMutex
	domains map[int64]models.LifeDomain
	nextID  int64

	logger *logger.Logger
}

func NewLifeDomainRepository(logger *logger.Logger) LifeDomainRepository {
	logger.Debug().Msg("LifeDomainRepository created")
	return &lifeDomainRepository{
		domains: make(map[int64]models.LifeDomain),
		nextID:  1,
		logger:  logger,
	}
}

func (r *lifeDomainRepository) Create(_ context.Context, insert models.InsertLifeDomain) (models.LifeDomain, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	domain := models.LifeDomain{
		ID:     r.nextID,
		UserID: insert.UserID,
		Name:   insert.Name,
		Score:  insert.Score,
		Icon:   insert.Icon,
		Color:  insert.Color,
	}
	r.domains[domain.ID] = domain
	r.nextID++

	return domain, nil
}

func (r *lifeDomainRepository) Get(_ context.Context, id int64) (models.LifeDomain, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	domain, ok := r.domains[id]
	if !ok {
		return models.LifeDomain{}, ErrLifeDomainNotFound
	}
	return domain, nil
}

func (r *lifeDomainRepository) List(_ context.Context, userID int64) ([]models.LifeDomain, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	domains := make([]models.LifeDomain, 0)
	for _, domain := range r.domains {
		if domain.UserID == userID {
			domains = append(domains, domain)
		}
	}

	// insertion order: identities are assigned monotonically
	sort.Slice(domains, func(i, j int) bool { return domains[i].ID < domains[j].ID })

	return domains, nil
}

func (r *lifeDomainRepository) Update(_ context.Context, id int64, patch models.LifeDomainPatch) (models.LifeDomain, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	domain, ok := r.domains[id]
	if !ok {
		return models.LifeDomain{}, ErrLifeDomainNotFound
	}

	if patch.UserID != nil {
		domain.UserID = *patch.UserID
	}
	if patch.Name != nil {
		domain.Name = *patch.Name
	}
	if patch.Score != nil {
		domain.Score = *patch.Score
	}
	if patch.Icon != nil {
		domain.Icon = *patch.Icon
	}
	if patch.Color != nil {
		domain.Color = *patch.Color
	}

	r.domains[id] = domain
	return domain, nil
}

func (r *lifeDomainRepository) Delete(_ context.Context, id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.domains[id]; !ok {
		return false
	}
	delete(r.domains, id)
	return true
}
