package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"cafe/internal/api/util"
	"cafe/internal/core/service"
)

type BookingHandler struct {
	bookingService service.BookingService
}

func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
	}
}

// Phone and Guests arrive as either strings or numbers depending on the
// form that posts them.
type createBookingRequest struct {
	Name   string      `json:"name"`
	Email  string      `json:"email"`
	Phone  interface{} `json:"phone"`
	Date   string      `json:"date"`
	Time   string      `json:"time"`
	Guests interface{} `json:"guests"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	booking, err := h.bookingService.Create(r.Context(), service.BookingInput{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  cast.ToString(req.Phone),
		Date:   req.Date,
		Time:   req.Time,
		Guests: cast.ToInt(req.Guests),
	})
	if errors.Is(err, service.ErrValidation) {
		util.WriteMessage(w, http.StatusBadRequest, "All fields are required.")
		return
	}
	if err != nil {
		util.WriteError(w, r, http.StatusInternalServerError, "Error creating booking", err, true)
		return
	}
	util.WriteJSON(w, http.StatusCreated, booking)
}

func (h *BookingHandler) ListForEmail(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookingService.ListForEmail(r.Context(), mux.Vars(r)["email"])
	if err != nil {
		util.WriteError(w, r, http.StatusInternalServerError, "Error fetching user bookings", err, false)
		return
	}
	util.WriteJSON(w, http.StatusOK, bookings)
}

func (h *BookingHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookingService.ListAll(r.Context())
	if err != nil {
		util.WriteError(w, r, http.StatusInternalServerError, "Error fetching bookings", err, false)
		return
	}
	util.WriteJSON(w, http.StatusOK, bookings)
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if err := h.bookingService.Cancel(r.Context(), mux.Vars(r)["id"]); err != nil {
		util.WriteError(w, r, http.StatusInternalServerError, "Error cancelling booking", err, false)
		return
	}
	util.WriteMessage(w, http.StatusOK, "Booking cancelled")
}
