package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"cafe/internal/api/util"
	"cafe/internal/core/service"
)

type ReviewHandler struct {
	reviewService service.ReviewService
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

type createReviewRequest struct {
	Comment string      `json:"comment"`
	Rating  interface{} `json:"rating"`
}

func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewService.List(r.Context())
	if err != nil {
		util.WriteError(w, r, http.StatusInternalServerError, "Failed to fetch reviews", err, false)
		return
	}
	util.WriteJSON(w, http.StatusOK, reviews)
}

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := util.IdentityFrom(r.Context())
	if !ok {
		util.WriteMessage(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	var req createReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	review, err := h.reviewService.Create(r.Context(), identity.Snapshot(), req.Comment, cast.ToInt(req.Rating))
	if errors.Is(err, service.ErrValidation) {
		util.WriteMessage(w, http.StatusBadRequest, "Comment required")
		return
	}
	if err != nil {
		util.WriteError(w, r, http.StatusInternalServerError, "Failed to add review", err, false)
		return
	}
	util.WriteJSON(w, http.StatusCreated, review)
}
