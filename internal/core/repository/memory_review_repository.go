package repository

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"cafe/internal/core/model"
)

type inMemoryReviewRepository struct {
	reviews []model.Review
	mutex   sync.RWMutex
}

func NewInMemoryReviewRepository() ReviewRepository {
	return &inMemoryReviewRepository{}
}

func (r *inMemoryReviewRepository) Create(_ context.Context, review *model.Review) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if review.ID.IsZero() {
		review.ID = primitive.NewObjectID()
	}
	r.reviews = append(r.reviews, *review)
	return nil
}

func (r *inMemoryReviewRepository) FindAll(_ context.Context) ([]*model.Review, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	result := make([]*model.Review, 0, len(r.reviews))
	for i := len(r.reviews) - 1; i >= 0; i-- {
		rv := r.reviews[i]
		result = append(result, &rv)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}
