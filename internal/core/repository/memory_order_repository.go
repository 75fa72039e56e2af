package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/montanaflynn/stats"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"cafe/internal/core/model"
)

type inMemoryOrderRepository struct {
	orders map[primitive.ObjectID]model.Order
	mutex  sync.RWMutex
}

func NewInMemoryOrderRepository() OrderRepository {
	return &inMemoryOrderRepository{
		orders: make(map[primitive.ObjectID]model.Order),
	}
}

func (r *inMemoryOrderRepository) Create(_ context.Context, order *model.Order) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	r.orders[order.ID] = *order
	return nil
}

func (r *inMemoryOrderRepository) FindByID(_ context.Context, id primitive.ObjectID) (*model.Order, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if order, exists := r.orders[id]; exists {
		return &order, nil
	}
	return nil, nil
}

func (r *inMemoryOrderRepository) filter(keep func(*model.Order) bool) []*model.Order {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	result := []*model.Order{}
	for _, order := range r.orders {
		o := order
		if keep(&o) {
			result = append(result, &o)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.After(result[j].Date)
		}
		return result[i].ID.Hex() > result[j].ID.Hex()
	})
	return result
}

func (r *inMemoryOrderRepository) FindAll(_ context.Context) ([]*model.Order, error) {
	return r.filter(func(*model.Order) bool { return true }), nil
}

func (r *inMemoryOrderRepository) FindByUserEmail(_ context.Context, email string) ([]*model.Order, error) {
	return r.filter(func(o *model.Order) bool { return o.User.Email == email }), nil
}

func (r *inMemoryOrderRepository) FindByUserID(_ context.Context, userID string) ([]*model.Order, error) {
	return r.filter(func(o *model.Order) bool { return o.User.ID == userID }), nil
}

func (r *inMemoryOrderRepository) UpdateStatus(_ context.Context, id primitive.ObjectID, status string) (*model.Order, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	order, exists := r.orders[id]
	if !exists {
		return nil, nil
	}
	order.Status = status
	r.orders[id] = order
	return &order, nil
}

func (r *inMemoryOrderRepository) Count(_ context.Context) (int64, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return int64(len(r.orders)), nil
}

func (r *inMemoryOrderRepository) CountByStatus(_ context.Context, status string) (int64, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var n int64
	for _, order := range r.orders {
		if order.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *inMemoryOrderRepository) SumItemPrices(_ context.Context) (float64, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var prices stats.Float64Data
	for _, order := range r.orders {
		for _, item := range order.Items {
			prices = append(prices, item.Price)
		}
	}
	if len(prices) == 0 {
		return 0, nil
	}
	return prices.Sum()
}
