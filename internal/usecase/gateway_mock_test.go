package usecase

import (
	"context"
	"errors"

	"revshop-web/internal/domain"
)

var errUpstreamDown = errors.New("upstream unavailable")

type actionCall struct {
	OrderID int64
	Kind    domain.ActionKind
	Req     domain.ActionRequest
}

// fakeGateway records calls and serves canned data for usecase tests
type fakeGateway struct {
	orders     []domain.Order
	ordersErr  error
	reviews    []domain.Review
	reviewsErr error
	payment    *domain.Payment
	paymentErr error

	actionErr  error
	confirmErr error
	reviewErr  error

	ordersCalls  int
	reviewsCalls int
	actionCalls  []actionCall
	confirmCalls []int64

	createdReviews []domain.ReviewDraft
	updatedReviews map[int64]domain.ReviewUpdate
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		updatedReviews: make(map[int64]domain.ReviewUpdate),
	}
}

func (f *fakeGateway) MyOrders(ctx context.Context, token string) ([]domain.Order, error) {
	f.ordersCalls++
	if f.ordersErr != nil {
		return nil, f.ordersErr
	}
	return f.orders, nil
}

func (f *fakeGateway) MyReviews(ctx context.Context, token string) ([]domain.Review, error) {
	f.reviewsCalls++
	if f.reviewsErr != nil {
		return nil, f.reviewsErr
	}
	return f.reviews, nil
}

func (f *fakeGateway) SubmitOrderAction(ctx context.Context, token string, orderID int64, kind domain.ActionKind, req domain.ActionRequest) (*domain.Order, error) {
	f.actionCalls = append(f.actionCalls, actionCall{OrderID: orderID, Kind: kind, Req: req})
	if f.actionErr != nil {
		return nil, f.actionErr
	}
	return &domain.Order{OrderID: orderID}, nil
}

func (f *fakeGateway) ConfirmDelivery(ctx context.Context, token string, orderID int64) (*domain.Order, error) {
	f.confirmCalls = append(f.confirmCalls, orderID)
	if f.confirmErr != nil {
		return nil, f.confirmErr
	}
	return &domain.Order{OrderID: orderID, Status: domain.OrderStatusDelivered}, nil
}

func (f *fakeGateway) PaymentByOrder(ctx context.Context, token string, orderID int64) (*domain.Payment, error) {
	if f.paymentErr != nil {
		return nil, f.paymentErr
	}
	return f.payment, nil
}

func (f *fakeGateway) CreateReview(ctx context.Context, token string, draft domain.ReviewDraft) (*domain.Review, error) {
	if f.reviewErr != nil {
		return nil, f.reviewErr
	}
	f.createdReviews = append(f.createdReviews, draft)
	return &domain.Review{ReviewID: 1000, ProductID: draft.ProductID, Rating: draft.Rating}, nil
}

func (f *fakeGateway) UpdateReview(ctx context.Context, token string, reviewID int64, update domain.ReviewUpdate) (*domain.Review, error) {
	if f.reviewErr != nil {
		return nil, f.reviewErr
	}
	f.updatedReviews[reviewID] = update
	return &domain.Review{ReviewID: reviewID, Rating: update.Rating}, nil
}

var _ domain.MarketplaceGateway = (*fakeGateway)(nil)
