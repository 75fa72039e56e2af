package repository

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"cafe/internal/core/model"
)

type inMemoryBookingRepository struct {
	bookings map[primitive.ObjectID]model.Booking
	mutex    sync.RWMutex
}

func NewInMemoryBookingRepository() BookingRepository {
	return &inMemoryBookingRepository{
		bookings: make(map[primitive.ObjectID]model.Booking),
	}
}

func (r *inMemoryBookingRepository) Create(_ context.Context, booking *model.Booking) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	r.bookings[booking.ID] = *booking
	return nil
}

func (r *inMemoryBookingRepository) filter(keep func(*model.Booking) bool) []*model.Booking {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	result := []*model.Booking{}
	for _, booking := range r.bookings {
		b := booking
		if keep(&b) {
			result = append(result, &b)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date < result[j].Date
		}
		return result[i].ID.Hex() < result[j].ID.Hex()
	})
	return result
}

func (r *inMemoryBookingRepository) FindAll(_ context.Context) ([]*model.Booking, error) {
	return r.filter(func(*model.Booking) bool { return true }), nil
}

func (r *inMemoryBookingRepository) FindByEmail(_ context.Context, email string) ([]*model.Booking, error) {
	return r.filter(func(b *model.Booking) bool { return b.Email == email }), nil
}

func (r *inMemoryBookingRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	delete(r.bookings, id)
	return nil
}
