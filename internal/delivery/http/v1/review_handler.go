package v1

import (
	"net/http"

	"revshop-web/internal/domain"
	"revshop-web/internal/usecase"
	"revshop-web/pkg/utils"

	"github.com/goccy/go-json"
)

type ReviewHandler struct {
	reviews *usecase.ReviewUsecase
}

func NewReviewHandler(reviews *usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

type openReviewComposerReq struct {
	ProductID   int64  `json:"productId"`
	ProductName string `json:"productName"`
}

// OpenComposer opens the review composer for a product, pre-filled from the
// buyer's existing review when one exists
func (h *ReviewHandler) OpenComposer(w http.ResponseWriter, r *http.Request) {
	session, ok := domain.SessionFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Please login to continue")
		return
	}

	var req openReviewComposerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.ProductID <= 0 {
		utils.WriteError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	view := h.reviews.OpenComposer(r.Context(), session.Token, session, req.ProductID, req.ProductName)
	utils.WriteSuccess(w, http.StatusOK, "Composer opened", view)
}

type submitReviewReq struct {
	Rating  json.Number `json:"rating"`
	Title   string      `json:"title"`
	Comment string      `json:"comment"`
}

// SubmitReview validates and sends the review, then responds with the
// reloaded order list. Fractional ratings are rejected before they can be
// truncated into a valid value.
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	session, ok := domain.SessionFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Please login to continue")
		return
	}

	var req submitReviewReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	rating, err := req.Rating.Int64()
	if err != nil {
		writeUsecaseError(w, domain.ErrInvalidRating, "Failed to submit review")
		return
	}

	view, err := h.reviews.Submit(r.Context(), session.Token, session, int(rating), req.Title, req.Comment)
	if err != nil {
		writeUsecaseError(w, err, "Failed to submit review")
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "Review saved", view)
}
