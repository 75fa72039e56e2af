package service

import (
	"context"

	"github.com/pkg/errors"

	"cafe/internal/core/model"
	"cafe/internal/core/repository"
)

type AnalyticsService interface {
	Summary(ctx context.Context) (*model.Summary, error)
}

type analyticsService struct {
	orderRepo repository.OrderRepository
}

func NewAnalyticsService(orderRepo repository.OrderRepository) AnalyticsService {
	return &analyticsService{
		orderRepo: orderRepo,
	}
}

// Summary counts orders by status and reports revenue as the plain sum of
// every line item's unit price. Quantities and totalAmount are ignored; the
// dashboard has always shown this figure.
func (s *analyticsService) Summary(ctx context.Context) (*model.Summary, error) {
	var (
		summary model.Summary
		err     error
	)
	if summary.Total, err = s.orderRepo.Count(ctx); err != nil {
		return nil, errors.Wrap(err, "count orders")
	}
	if summary.Delivered, err = s.orderRepo.CountByStatus(ctx, model.StatusDelivered); err != nil {
		return nil, errors.Wrap(err, "count delivered orders")
	}
	if summary.Pending, err = s.orderRepo.CountByStatus(ctx, model.StatusPending); err != nil {
		return nil, errors.Wrap(err, "count pending orders")
	}
	if summary.Revenue, err = s.orderRepo.SumItemPrices(ctx); err != nil {
		return nil, errors.Wrap(err, "sum revenue")
	}
	return &summary, nil
}
