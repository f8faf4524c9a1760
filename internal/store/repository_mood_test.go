package store

import (
	"context"
	"testing"

	"github.com/MKhiriev/aion/models"
)

func TestMoodRepository_ListOrdersByDateDescending(t *testing.T) {
	repo := NewMoodRepository(testLogger())
	ctx := context.Background()

	repo.Create(ctx, models.InsertMood{UserID: 1, Date: dayAt(10, 8), MoodType: models.MoodCalm})
	repo.Create(ctx, models.InsertMood{UserID: 1, Date: dayAt(12, 8), MoodType: models.MoodHappy})
	repo.Create(ctx, models.InsertMood{UserID: 1, Date: dayAt(11, 8), MoodType: models.MoodTired})

	moods, err := repo.List(ctx, 1, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(moods) != 3 {
		t.Fatalf("expected 3 moods, got %d", len(moods))
	}
	if moods[0].MoodType != models.MoodHappy || moods[2].MoodType != models.MoodCalm {
		t.Errorf("expected newest first, got %v, %v, %v",
			moods[0].MoodType, moods[1].MoodType, moods[2].MoodType)
	}
}

func TestMoodRepository_SameDayRecordsAllKept(t *testing.T) {
	repo := NewMoodRepository(testLogger())
	ctx := context.Background()

	repo.Create(ctx, models.InsertMood{UserID: 1, Date: dayAt(10, 8), MoodType: models.MoodHappy})
	repo.Create(ctx, models.InsertMood{UserID: 1, Date: dayAt(10, 20), MoodType: models.MoodTired})

	moods, _ := repo.List(ctx, 1, nil, nil)
	if len(moods) != 2 {
		t.Errorf("expected both same-day records, got %d", len(moods))
	}
}

func TestTransactionRepository_ListOrdersByDateDescending(t *testing.T) {
	repo := NewTransactionRepository(testLogger())
	ctx := context.Background()

	repo.Create(ctx, models.InsertTransaction{UserID: 1, Amount: 50, Category: "food", Date: dayAt(10, 0), Type: models.TransactionExpense})
	repo.Create(ctx, models.InsertTransaction{UserID: 1, Amount: 3000, Category: "salary", Date: dayAt(15, 0), Type: models.TransactionIncome})

	transactions, err := repo.List(ctx, 1, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(transactions) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(transactions))
	}
	if transactions[0].Category != "salary" {
		t.Errorf("expected newest transaction first, got %q", transactions[0].Category)
	}
}

func TestTransactionRepository_ListFiltersRange(t *testing.T) {
	repo := NewTransactionRepository(testLogger())
	ctx := context.Background()

	repo.Create(ctx, models.InsertTransaction{UserID: 1, Date: dayAt(1, 0), Type: models.TransactionExpense})
	inWindow, _ := repo.Create(ctx, models.InsertTransaction{UserID: 1, Date: dayAt(15, 0), Type: models.TransactionExpense})
	repo.Create(ctx, models.InsertTransaction{UserID: 1, Date: dayAt(28, 0), Type: models.TransactionExpense})

	from := dayAt(10, 0)
	to := dayAt(20, 0)
	transactions, _ := repo.List(ctx, 1, &from, &to)
	if len(transactions) != 1 || transactions[0].ID != inWindow.ID {
		t.Errorf("expected only transaction %d in window, got %d results", inWindow.ID, len(transactions))
	}
}
