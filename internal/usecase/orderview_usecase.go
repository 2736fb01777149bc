package usecase

import (
	"context"
	"fmt"

	"revshop-web/internal/domain"
	"revshop-web/pkg/logger"
	"revshop-web/pkg/utils"
)

const (
	labelAddReview  = "Add Review"
	labelEditReview = "Edit Review"
)

// OrderViewUsecase assembles the order history view: it joins the buyer's
// orders with the buyer's review index and renders one card per order with the
// context-appropriate actions. It is the entry point of the order lifecycle
// core; every mutating action funnels back through LoadOrders.
type OrderViewUsecase struct {
	gateway domain.MarketplaceGateway
}

func NewOrderViewUsecase(gateway domain.MarketplaceGateway) *OrderViewUsecase {
	return &OrderViewUsecase{
		gateway: gateway,
	}
}

// LoadOrders fetches orders and reviews and assembles the full list view.
// A failed orders fetch fails the whole load. A failed reviews fetch is
// tolerated: the review index is cleared (never reused stale) and orders
// render with every review button in its "Add Review" state.
func (u *OrderViewUsecase) LoadOrders(ctx context.Context, token string) (*domain.OrderListView, error) {
	orders, err := u.gateway.MyOrders(ctx, token)
	if err != nil {
		return nil, err
	}

	index := u.loadReviewIndex(ctx, token)

	cards := make([]domain.OrderCardView, 0, len(orders))
	for _, order := range orders {
		cards = append(cards, buildOrderCard(order, index))
	}

	return &domain.OrderListView{
		Orders: cards,
		Empty:  len(cards) == 0,
	}, nil
}

// ReviewIndex rebuilds the productId -> review mapping from a fresh fetch
func (u *OrderViewUsecase) ReviewIndex(ctx context.Context, token string) (map[int64]domain.Review, error) {
	reviews, err := u.gateway.MyReviews(ctx, token)
	if err != nil {
		return nil, err
	}
	return BuildReviewIndex(reviews), nil
}

func (u *OrderViewUsecase) loadReviewIndex(ctx context.Context, token string) map[int64]domain.Review {
	index, err := u.ReviewIndex(ctx, token)
	if err != nil {
		logger.Warn().Err(err).Msg("Review fetch failed, rendering orders with an empty review index")
		return map[int64]domain.Review{}
	}
	return index
}

// BuildReviewIndex keys reviews by product id. Records without a positive
// product id are discarded; on collision the later record silently wins.
func BuildReviewIndex(reviews []domain.Review) map[int64]domain.Review {
	index := make(map[int64]domain.Review, len(reviews))
	for _, review := range reviews {
		if review.ProductID <= 0 {
			continue
		}
		index[review.ProductID] = review
	}
	return index
}

func buildOrderCard(order domain.Order, index map[int64]domain.Review) domain.OrderCardView {
	reviewable := domain.IsReviewable(order.Status)

	items := make([]domain.ItemView, 0, len(order.Items))
	for _, item := range order.Items {
		view := domain.ItemView{
			ProductID:        item.ProductID,
			ProductName:      item.ProductName,
			Quantity:         item.Quantity,
			LineTotalDisplay: utils.FormatCurrency(item.LineTotal),
		}
		if reviewable {
			_, exists := index[item.ProductID]
			label := labelAddReview
			if exists {
				label = labelEditReview
			}
			view.ReviewButton = &domain.ReviewButtonView{
				Label:       label,
				HasExisting: exists,
			}
		}
		items = append(items, view)
	}

	return domain.OrderCardView{
		OrderID:                    order.OrderID,
		OrderNumber:                order.OrderNumber,
		Status:                     order.Status,
		StatusDisplay:              utils.HumanizeStatus(order.Status),
		Severity:                   domain.SeverityFor(order.Status),
		PlacedAt:                   utils.FormatDateTime(order.CreatedAt.Time),
		PaymentMethod:              order.PaymentMethod,
		PaymentStatus:              order.PaymentStatus,
		TotalDisplay:               utils.FormatCurrency(order.TotalAmount),
		ShippingAddress:            order.ShippingAddress,
		BillingAddress:             order.BillingAddress,
		CancelReason:               order.CancelReason,
		ReturnReason:               order.ReturnReason,
		ExchangeReason:             order.ExchangeReason,
		ExchangeRequestedProductID: order.ExchangeRequestedProductID,
		Items:                      items,
		Actions: domain.ActionSet{
			// Capability flags are trusted verbatim, never re-derived from status
			CanCancel:          order.CanCancel,
			CanReturn:          order.CanReturn,
			CanExchange:        order.CanExchange,
			CanConfirmDelivery: order.CanConfirmDelivery,
			CheckPayment:       true,
		},
	}
}

// CheckPayment fetches the payment snapshot for one order and renders the
// result line shown under the card
func (u *OrderViewUsecase) CheckPayment(ctx context.Context, token string, orderID int64) (*domain.PaymentView, error) {
	payment, err := u.gateway.PaymentByOrder(ctx, token, orderID)
	if err != nil {
		return nil, err
	}
	return &domain.PaymentView{
		PaymentStatus: payment.PaymentStatus,
		OrderStatus:   payment.OrderStatus,
		Display:       fmt.Sprintf("Payment Status: %s | Order Status: %s", payment.PaymentStatus, payment.OrderStatus),
	}, nil
}
