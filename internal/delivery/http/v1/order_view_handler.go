package v1

import (
	"net/http"

	"revshop-web/internal/domain"
	"revshop-web/internal/usecase"
	"revshop-web/pkg/utils"

	"github.com/goccy/go-json"
)

type OrderViewHandler struct {
	views   *usecase.OrderViewUsecase
	actions *usecase.OrderActionUsecase
}

func NewOrderViewHandler(views *usecase.OrderViewUsecase, actions *usecase.OrderActionUsecase) *OrderViewHandler {
	return &OrderViewHandler{
		views:   views,
		actions: actions,
	}
}

// GetOrders serves the fully assembled order history view
func (h *OrderViewHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	session, ok := domain.SessionFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Please login to continue")
		return
	}

	view, err := h.views.LoadOrders(r.Context(), session.Token)
	if err != nil {
		writeUsecaseError(w, err, "Failed to fetch orders")
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "Orders fetched", view)
}

// CheckPayment serves the payment status line for one order
func (h *OrderViewHandler) CheckPayment(w http.ResponseWriter, r *http.Request) {
	session, ok := domain.SessionFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Please login to continue")
		return
	}

	orderID, ok := utils.ParsePositiveID(r.PathValue("id"))
	if !ok {
		utils.WriteError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	view, err := h.views.CheckPayment(r.Context(), session.Token, orderID)
	if err != nil {
		writeUsecaseError(w, err, "Payment not available")
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "Payment fetched", view)
}

// ConfirmDelivery issues the immediate state change and responds with the
// reloaded order list
func (h *OrderViewHandler) ConfirmDelivery(w http.ResponseWriter, r *http.Request) {
	session, ok := domain.SessionFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Please login to continue")
		return
	}

	orderID, ok := utils.ParsePositiveID(r.PathValue("id"))
	if !ok {
		utils.WriteError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	view, err := h.actions.ConfirmDelivery(r.Context(), session.Token, session, orderID)
	if err != nil {
		writeUsecaseError(w, err, "Failed to confirm delivery")
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "Delivery confirmed", view)
}

// OpenComposer opens the shared action composer for one order and action kind
func (h *OrderViewHandler) OpenComposer(w http.ResponseWriter, r *http.Request) {
	session, ok := domain.SessionFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Please login to continue")
		return
	}

	orderID, ok := utils.ParsePositiveID(r.PathValue("id"))
	if !ok {
		utils.WriteError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	kind, err := domain.ParseActionKind(r.PathValue("action"))
	if err != nil {
		writeUsecaseError(w, err, "Failed to open composer")
		return
	}

	view := h.actions.OpenComposer(session, orderID, kind)
	utils.WriteSuccess(w, http.StatusOK, "Composer opened", view)
}

type submitActionReq struct {
	Reason            string `json:"reason"`
	ExchangeProductID string `json:"exchangeProductId"`
}

// SubmitAction submits a composed cancel/return/exchange and responds with
// the reloaded order list
func (h *OrderViewHandler) SubmitAction(w http.ResponseWriter, r *http.Request) {
	session, ok := domain.SessionFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Please login to continue")
		return
	}

	orderID, ok := utils.ParsePositiveID(r.PathValue("id"))
	if !ok {
		utils.WriteError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	kind, err := domain.ParseActionKind(r.PathValue("action"))
	if err != nil {
		writeUsecaseError(w, err, "Failed to submit action")
		return
	}

	var req submitActionReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	view, err := h.actions.SubmitAction(r.Context(), session.Token, session, orderID, kind, req.Reason, req.ExchangeProductID)
	if err != nil {
		writeUsecaseError(w, err, "Failed to submit action")
		return
	}
	utils.WriteSuccess(w, http.StatusOK, actionSuccessMessage(kind), view)
}

func actionSuccessMessage(kind domain.ActionKind) string {
	switch kind {
	case domain.ActionCancel:
		return "Order cancelled successfully"
	case domain.ActionReturn:
		return "Return request submitted"
	case domain.ActionExchange:
		return "Exchange request submitted"
	}
	return "Action submitted"
}
