package repository

import (
	"context"
	"testing"

	"cafe/internal/core/model"
)

func TestInMemoryBookingRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryBookingRepository()

	late := model.NewBooking("Ann", "ann@cafe.test", "555", "2024-06-10", "19:00", 2)
	early := model.NewBooking("Ann", "ann@cafe.test", "555", "2024-06-01", "12:00", 4)
	other := model.NewBooking("Bob", "bob@cafe.test", "556", "2024-06-05", "13:00", 1)
	for _, b := range []*model.Booking{late, early, other} {
		if err := repo.Create(ctx, b); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	all, _ := repo.FindAll(ctx)
	want := []string{"2024-06-01", "2024-06-05", "2024-06-10"}
	if len(all) != len(want) {
		t.Fatalf("FindAll returned %d bookings, want %d", len(all), len(want))
	}
	for i, b := range all {
		if b.Date != want[i] {
			t.Errorf("FindAll[%d].Date = %s, want %s", i, b.Date, want[i])
		}
	}

	anns, _ := repo.FindByEmail(ctx, "ann@cafe.test")
	if len(anns) != 2 || anns[0].ID != early.ID {
		t.Errorf("FindByEmail returned %v", anns)
	}

	if err := repo.Delete(ctx, early.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, early.ID); err != nil {
		t.Fatalf("second Delete should be a no-op, got %v", err)
	}
	all, _ = repo.FindAll(ctx)
	if len(all) != 2 {
		t.Errorf("after delete FindAll returned %d, want 2", len(all))
	}
}
