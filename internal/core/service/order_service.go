package service

import (
	"context"

	"github.com/pkg/errors"

	"cafe/internal/core/model"
	"cafe/internal/core/repository"
	"cafe/internal/core/util"
)

type OrderService interface {
	// PlaceOrder stores a new order in status Pending. items and totalAmount
	// are taken as submitted.
	PlaceOrder(ctx context.Context, user model.UserSnapshot, items []model.OrderItem, totalAmount float64, paymentMethod string) (*model.Order, error)
	GetOrder(ctx context.Context, id string) (*model.Order, error)
	ListForEmail(ctx context.Context, email string) ([]*model.Order, error)
	ListForUser(ctx context.Context, userID string) ([]*model.Order, error)
	ListAll(ctx context.Context) ([]*model.Order, error)
	// UpdateStatus overwrites the status with any value. An empty status
	// leaves the order unchanged.
	UpdateStatus(ctx context.Context, id, status string) (*model.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
}

func NewOrderService(orderRepo repository.OrderRepository) OrderService {
	return &orderService{
		orderRepo: orderRepo,
	}
}

func (s *orderService) PlaceOrder(ctx context.Context, user model.UserSnapshot, items []model.OrderItem, totalAmount float64, paymentMethod string) (*model.Order, error) {
	order := model.NewOrder(user, items, totalAmount, paymentMethod)
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "create order")
	}
	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	oid, ok := util.ParseID(id)
	if !ok {
		return nil, ErrNotFound
	}
	order, err := s.orderRepo.FindByID(ctx, oid)
	if err != nil {
		return nil, errors.Wrap(err, "find order")
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}

func (s *orderService) ListForEmail(ctx context.Context, email string) ([]*model.Order, error) {
	orders, err := s.orderRepo.FindByUserEmail(ctx, email)
	return orders, errors.Wrap(err, "list orders by email")
}

func (s *orderService) ListForUser(ctx context.Context, userID string) ([]*model.Order, error) {
	if userID == "" {
		return nil, errors.Wrap(ErrValidation, "user id required")
	}
	orders, err := s.orderRepo.FindByUserID(ctx, userID)
	return orders, errors.Wrap(err, "list orders by user")
}

func (s *orderService) ListAll(ctx context.Context) ([]*model.Order, error) {
	orders, err := s.orderRepo.FindAll(ctx)
	return orders, errors.Wrap(err, "list orders")
}

func (s *orderService) UpdateStatus(ctx context.Context, id, status string) (*model.Order, error) {
	if status == "" {
		return s.GetOrder(ctx, id)
	}

	oid, ok := util.ParseID(id)
	if !ok {
		return nil, ErrNotFound
	}
	order, err := s.orderRepo.UpdateStatus(ctx, oid, status)
	if err != nil {
		return nil, errors.Wrap(err, "update order status")
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}
