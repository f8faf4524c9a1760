package store

import (
	"context"
	"sort"
	"sync"

	"github.com/MKhiriev/aion/internal/logger"
	"github.com/MKhiriev/aion/models"
)

type contactRepository struct {
	mu       sync.RWMutex
	contacts map[int64]models.Contact
	nextID   int64

	logger *logger.Logger
}

func NewContactRepository(logger *logger.Logger) ContactRepository {
	logger.Debug().Msg("ContactRepository created")
	return &contactRepository{
		contacts: make(map[int64]models.Contact),
		nextID:   1,
		logger:   logger,
	}
}

func (r *contactRepository) Create(_ context.Context, insert models.InsertContact) (models.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contact := models.Contact{
		ID:           r.nextID,
		UserID:       insert.UserID,
		Name:         insert.Name,
		Email:        insert.Email,
		Phone:        insert.Phone,
		AvatarURL:    insert.AvatarURL,
		LastContact:  insert.LastContact,
		Relationship: insert.Relationship,
		Notes:        insert.Notes,
	}
	r.contacts[contact.ID] = contact
	r.nextID++

	return contact, nil
}

func (r *contactRepository) Get(_ context.Context, id int64) (models.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	contact, ok := r.contacts[id]
	if !ok {
		return models.Contact{}, ErrContactNotFound
	}
	return contact, nil
}

func (r *contactRepository) List(_ context.Context, userID int64) ([]models.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	contacts := make([]models.Contact, 0)
	for _, contact := range r.contacts {
		if contact.UserID == userID {
			contacts = append(contacts, contact)
		}
	}

	// insertion order: identities are assigned monotonically
	sort.Slice(contacts, func(i, j int) bool { return contacts[i].ID < contacts[j].ID })

	return contacts, nil
}

func (r *contactRepository) Update(_ context.Context, id int64, patch models.ContactPatch) (models.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contact, ok := r.contacts[id]
	if !ok {
		return models.Contact{}, ErrContactNotFound
	}

	if patch.UserID != nil {
		contact.UserID = *patch.UserID
	}
	if patch.Name != nil {
		contact.Name = *patch.Name
	}
	if patch.Email != nil {
		contact.Email = *patch.Email
	}
	if patch.Phone != nil {
		contact.Phone = *patch.Phone
	}
	if patch.AvatarURL != nil {
		contact.AvatarURL = *patch.AvatarURL
	}
	if patch.LastContact != nil {
		contact.LastContact = patch.LastContact
	}
	if patch.Relationship != nil {
		contact.Relationship = *patch.Relationship
	}
	if patch.Notes != nil {
		contact.Notes = *patch.Notes
	}

	r.contacts[id] = contact
	return contact, nil
}

func (r *contactRepository) Delete(_ context.Context, id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.contacts[id]; !ok {
		return false
	}
	delete(r.contacts, id)
	return true
}
