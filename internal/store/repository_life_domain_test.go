package store

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/aion/models"
)

func TestLifeDomainRepository_UpdateOnlyPatchedFields(t *testing.T) {
	repo := NewLifeDomainRepository(testLogger())
	ctx := context.Background()

	created, _ := repo.Create(ctx, models.InsertLifeDomain{
		UserID: 1, Name: "Health", Score: 70, Icon: "heart", Color: "#10B981",
	})

	score := 85
	updated, err := repo.Update(ctx, created.ID, models.LifeDomainPatch{Score: &score})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Score != 85 {
		t.Errorf("expected patched score 85, got %d", updated.Score)
	}
	if updated.Name != "Health" || updated.Icon != "heart" || updated.Color != "#10B981" {
		t.Errorf("unpatched fields changed: %+v", updated)
	}
}

func TestLifeDomainRepository_UpdateMissing(t *testing.T) {
	repo := NewLifeDomainRepository(testLogger())

	name := "Career"
	_, err := repo.Update(context.Background(), 42, models.LifeDomainPatch{Name: &name})
	if !errors.Is(err, ErrLifeDomainNotFound) {
		t.Errorf("expected ErrLifeDomainNotFound, got %v", err)
	}
}

func TestLifeDomainRepository_DeleteIsIdempotent(t *testing.T) {
	repo := NewLifeDomainRepository(testLogger())
	ctx := context.Background()

	created, _ := repo.Create(ctx, models.InsertLifeDomain{UserID: 1, Name: "Finance"})

	if !repo.Delete(ctx, created.ID) {
		t.Error("expected first delete to report true")
	}
	if repo.Delete(ctx, created.ID) {
		t.Error("expected second delete to report false")
	}
	if _, err := repo.Get(ctx, created.ID); !errors.Is(err, ErrLifeDomainNotFound) {
		t.Errorf("expected ErrLifeDomainNotFound after delete, got %v", err)
	}
}

func TestLifeDomainRepository_ListFiltersByUser(t *testing.T) {
	repo := NewLifeDomainRepository(testLogger())
	ctx := context.Background()

	repo.Create(ctx, models.InsertLifeDomain{UserID: 1, Name: "Health"})
	repo.Create(ctx, models.InsertLifeDomain{UserID: 2, Name: "Career"})
	repo.Create(ctx, models.InsertLifeDomain{UserID: 1, Name: "Social"})

	domains, err := repo.List(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(domains) != 2 {
		t.Fatalf("expected 2 domains, got %d", len(domains))
	}
	if domains[0].Name != "Health" || domains[1].Name != "Social" {
		t.Errorf("expected insertion order, got %q then %q", domains[0].Name, domains[1].Name)
	}
}
