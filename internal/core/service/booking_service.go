package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"cafe/internal/core/model"
	"cafe/internal/core/repository"
	"cafe/internal/core/util"
)

// BookingInput is a table reservation request. Guests defaults to 1.
type BookingInput struct {
	Name   string `validate:"required"`
	Email  string `validate:"required"`
	Phone  string `validate:"required"`
	Date   string `validate:"required"`
	Time   string `validate:"required"`
	Guests int
}

type BookingService interface {
	Create(ctx context.Context, in BookingInput) (*model.Booking, error)
	ListAll(ctx context.Context) ([]*model.Booking, error)
	ListForEmail(ctx context.Context, email string) ([]*model.Booking, error)
	// Cancel deletes the booking. Unknown ids are ignored.
	Cancel(ctx context.Context, id string) error
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	validate    *validator.Validate
}

func NewBookingService(bookingRepo repository.BookingRepository) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		validate:    validator.New(),
	}
}

func (s *bookingService) Create(ctx context.Context, in BookingInput) (*model.Booking, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, errors.Wrap(ErrValidation, err.Error())
	}

	booking := model.NewBooking(in.Name, in.Email, in.Phone, in.Date, in.Time, in.Guests)
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, errors.Wrap(err, "create booking")
	}
	return booking, nil
}

func (s *bookingService) ListAll(ctx context.Context) ([]*model.Booking, error) {
	bookings, err := s.bookingRepo.FindAll(ctx)
	return bookings, errors.Wrap(err, "list bookings")
}

func (s *bookingService) ListForEmail(ctx context.Context, email string) ([]*model.Booking, error) {
	bookings, err := s.bookingRepo.FindByEmail(ctx, email)
	return bookings, errors.Wrap(err, "list bookings by email")
}

func (s *bookingService) Cancel(ctx context.Context, id string) error {
	oid, ok := util.ParseID(id)
	if !ok {
		return nil
	}
	return errors.Wrap(s.bookingRepo.Delete(ctx, oid), "delete booking")
}
