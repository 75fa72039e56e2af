package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"cafe/internal/api/util"
	"cafe/internal/core/model"
	"cafe/internal/core/service"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

type createOrderRequest struct {
	User          model.UserSnapshot `json:"user"`
	Items         []model.OrderItem  `json:"items"`
	TotalAmount   float64            `json:"totalAmount"`
	PaymentMethod string             `json:"paymentMethod"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.orderService.PlaceOrder(r.Context(), req.User, req.Items, req.TotalAmount, req.PaymentMethod)
	if err != nil {
		util.WriteError(w, r, http.StatusInternalServerError, "Error placing order", err, true)
		return
	}
	util.WriteJSON(w, http.StatusCreated, order)
}

func (h *OrderHandler) ListForEmail(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListForEmail(r.Context(), mux.Vars(r)["email"])
	if err != nil {
		util.WriteError(w, r, http.StatusInternalServerError, "Error fetching orders", err, false)
		return
	}
	util.WriteJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListAll(r.Context())
	if err != nil {
		util.WriteError(w, r, http.StatusInternalServerError, "Error fetching all orders", err, false)
		return
	}
	util.WriteJSON(w, http.StatusOK, orders)
}

// UpdateStatus answers with the updated order, or null when it does not
// exist.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.orderService.UpdateStatus(r.Context(), mux.Vars(r)["id"], req.Status)
	if errors.Is(err, service.ErrNotFound) {
		util.WriteJSON(w, http.StatusOK, nil)
		return
	}
	if err != nil {
		util.WriteError(w, r, http.StatusInternalServerError, "Error updating status", err, false)
		return
	}
	util.WriteJSON(w, http.StatusOK, order)
}

type createMyOrderRequest struct {
	Items         []model.OrderItem `json:"items"`
	TotalAmount   float64           `json:"totalAmount"`
	PaymentMethod string            `json:"paymentMethod"`
}

func (h *OrderHandler) CreateMine(w http.ResponseWriter, r *http.Request) {
	identity, ok := util.IdentityFrom(r.Context())
	if !ok {
		util.WriteMessage(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	var req createMyOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.orderService.PlaceOrder(r.Context(), identity.Snapshot(), req.Items, req.TotalAmount, req.PaymentMethod)
	if err != nil {
		util.WriteError(w, r, http.StatusInternalServerError, "Order creation failed", err, false)
		return
	}
	util.WriteJSON(w, http.StatusCreated, order)
}

func (h *OrderHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	identity, ok := util.IdentityFrom(r.Context())
	if !ok {
		util.WriteMessage(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	orders, err := h.orderService.ListForUser(r.Context(), identity.ID)
	if err != nil {
		util.WriteError(w, r, http.StatusInternalServerError, "Failed to fetch orders", err, false)
		return
	}
	util.WriteJSON(w, http.StatusOK, orders)
}
