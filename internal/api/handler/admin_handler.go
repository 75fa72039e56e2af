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

type AdminHandler struct {
	orderService     service.OrderService
	analyticsService service.AnalyticsService
}

func NewAdminHandler(orderService service.OrderService, analyticsService service.AnalyticsService) *AdminHandler {
	return &AdminHandler{
		orderService:     orderService,
		analyticsService: analyticsService,
	}
}

type statusUpdatedResponse struct {
	Message string       `json:"message"`
	Order   *model.Order `json:"order"`
}

func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListAll(r.Context())
	if err != nil {
		util.WriteError(w, r, http.StatusInternalServerError, "Failed to fetch orders", err, false)
		return
	}
	util.WriteJSON(w, http.StatusOK, orders)
}

func (h *AdminHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.orderService.UpdateStatus(r.Context(), mux.Vars(r)["id"], req.Status)
	if errors.Is(err, service.ErrNotFound) {
		util.WriteMessage(w, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		util.WriteError(w, r, http.StatusInternalServerError, "Failed to update status", err, false)
		return
	}
	util.WriteJSON(w, http.StatusOK, statusUpdatedResponse{Message: "Status updated", Order: order})
}

func (h *AdminHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	summary, err := h.analyticsService.Summary(r.Context())
	if err != nil {
		util.WriteError(w, r, http.StatusInternalServerError, "Failed to fetch analytics", err, false)
		return
	}
	util.WriteJSON(w, http.StatusOK, summary)
}
