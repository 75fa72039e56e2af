package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"cafe/internal/core/model"
	"cafe/internal/core/repository"
)

type ReviewService interface {
	List(ctx context.Context) ([]*model.Review, error)
	Create(ctx context.Context, author model.UserSnapshot, comment string, rating int) (*model.Review, error)
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
	}
}

func (s *reviewService) List(ctx context.Context) ([]*model.Review, error) {
	reviews, err := s.reviewRepo.FindAll(ctx)
	return reviews, errors.Wrap(err, "list reviews")
}

func (s *reviewService) Create(ctx context.Context, author model.UserSnapshot, comment string, rating int) (*model.Review, error) {
	if strings.TrimSpace(comment) == "" {
		return nil, errors.Wrap(ErrValidation, "comment required")
	}

	review := model.NewReview(author, comment, rating)
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, errors.Wrap(err, "create review")
	}
	return review, nil
}
