package repository

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"cafe/internal/core/model"
)

type inMemoryMenuRepository struct {
	items map[primitive.ObjectID]model.MenuItem
	mutex sync.RWMutex
}

func NewInMemoryMenuRepository() MenuRepository {
	return &inMemoryMenuRepository{
		items: make(map[primitive.ObjectID]model.MenuItem),
	}
}

func (r *inMemoryMenuRepository) Create(_ context.Context, item *model.MenuItem) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	r.items[item.ID] = *item
	return nil
}

func (r *inMemoryMenuRepository) Update(_ context.Context, id primitive.ObjectID, update model.MenuUpdate) (*model.MenuItem, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	item, exists := r.items[id]
	if !exists {
		return nil, nil
	}
	if update.Name != nil {
		item.Name = *update.Name
	}
	if update.Price != nil {
		item.Price = *update.Price
	}
	if update.Category != nil {
		item.Category = *update.Category
	}
	if update.Description != nil {
		item.Description = *update.Description
	}
	if update.Image != "" {
		item.Image = update.Image
	}
	r.items[id] = item
	return &item, nil
}

func (r *inMemoryMenuRepository) Delete(_ context.Context, id primitive.ObjectID) (*model.MenuItem, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	item, exists := r.items[id]
	if !exists {
		return nil, nil
	}
	delete(r.items, id)
	return &item, nil
}

func (r *inMemoryMenuRepository) FindAll(_ context.Context) ([]*model.MenuItem, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	items := make([]*model.MenuItem, 0, len(r.items))
	for _, item := range r.items {
		it := item
		items = append(items, &it)
	}
	// insertion order, like a natural-order Mongo scan
	sort.Slice(items, func(i, j int) bool {
		return items[i].ID.Hex() < items[j].ID.Hex()
	})
	return items, nil
}

func (r *inMemoryMenuRepository) Count(_ context.Context) (int64, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return int64(len(r.items)), nil
}

func (r *inMemoryMenuRepository) Replace(_ context.Context, items []*model.MenuItem) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.items = make(map[primitive.ObjectID]model.MenuItem, len(items))
	for _, item := range items {
		if item.ID.IsZero() {
			item.ID = primitive.NewObjectID()
		}
		r.items[item.ID] = *item
	}
	return nil
}
