package upstream

import (
	"context"
	"fmt"
	"net/http"

	"revshop-web/internal/domain"
)

// MyOrders fetches the buyer's order history
func (c *Client) MyOrders(ctx context.Context, token string) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.do(ctx, token, http.MethodGet, "/orders/my", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// SubmitOrderAction issues a composed lifecycle action. Blank request fields
// must already be nil; the body then carries no key for them at all.
func (c *Client) SubmitOrderAction(ctx context.Context, token string, orderID int64, kind domain.ActionKind, req domain.ActionRequest) (*domain.Order, error) {
	path := fmt.Sprintf("/orders/my/%d/%s", orderID, kind.PathSuffix())
	var order domain.Order
	if err := c.do(ctx, token, http.MethodPatch, path, req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// ConfirmDelivery issues the immediate confirm-delivery action with an empty body
func (c *Client) ConfirmDelivery(ctx context.Context, token string, orderID int64) (*domain.Order, error) {
	path := fmt.Sprintf("/orders/my/%d/confirm-delivery", orderID)
	var order domain.Order
	if err := c.do(ctx, token, http.MethodPatch, path, struct{}{}, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// PaymentByOrder fetches the payment snapshot for one order
func (c *Client) PaymentByOrder(ctx context.Context, token string, orderID int64) (*domain.Payment, error) {
	path := fmt.Sprintf("/payments/order/%d", orderID)
	var payment domain.Payment
	if err := c.do(ctx, token, http.MethodGet, path, nil, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}
