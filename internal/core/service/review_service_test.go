package service

import (
	"context"
	"errors"
	"testing"

	"cafe/internal/core/repository"
)

func TestCreateReview(t *testing.T) {
	ctx := context.Background()
	svc := NewReviewService(repository.NewInMemoryReviewRepository())

	for _, comment := range []string{"", "   "} {
		if _, err := svc.Create(ctx, testCustomer, comment, 5); !errors.Is(err, ErrValidation) {
			t.Errorf("Create(%q) error = %v, want ErrValidation", comment, err)
		}
	}

	first, err := svc.Create(ctx, testCustomer, "Great coffee", 5)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if first.User != testCustomer.ID || first.Name != testCustomer.Name {
		t.Errorf("review author = %q/%q", first.User, first.Name)
	}
	if _, err := svc.Create(ctx, testCustomer, "Back again", 4); err != nil {
		t.Fatalf("Create: %v", err)
	}

	reviews, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(reviews) != 2 || reviews[0].Comment != "Back again" {
		t.Errorf("List should be newest first, got %+v", reviews)
	}
}
