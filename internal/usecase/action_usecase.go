package usecase

import (
	"context"
	"strings"
	"time"

	"revshop-web/internal/domain"
	"revshop-web/pkg/cache"
	"revshop-web/pkg/utils"
)

// inFlightTTL bounds the double-submission guard so an abandoned request can
// never wedge an order permanently.
const inFlightTTL = 2 * time.Minute

// OrderActionUsecase drives the composed cancel/return/exchange flows and the
// immediate confirm-delivery action. Composer context lives in the session
// store and is trampled wholesale on every open; there is no merge and no
// confirmation when a different composer is already open.
type OrderActionUsecase struct {
	gateway   domain.MarketplaceGateway
	views     *OrderViewUsecase
	composers cache.CacheService
	ttl       time.Duration
}

func NewOrderActionUsecase(gateway domain.MarketplaceGateway, views *OrderViewUsecase, composers cache.CacheService, ttl time.Duration) *OrderActionUsecase {
	return &OrderActionUsecase{
		gateway:   gateway,
		views:     views,
		composers: composers,
		ttl:       ttl,
	}
}

// actionComposerState is the open-composer context for a composed order action
type actionComposerState struct {
	OrderID int64
	Kind    domain.ActionKind
}

func composerKey(session *domain.Session) string {
	return "composer:" + session.Key()
}

func inFlightKey(session *domain.Session, orderID int64) string {
	return "inflight:" + session.Key() + ":" + utils.FormatID(orderID)
}

// OpenComposer opens the shared composer panel for one order and action kind,
// discarding any previously open composer state for this session.
func (u *OrderActionUsecase) OpenComposer(session *domain.Session, orderID int64, kind domain.ActionKind) *domain.ComposerView {
	u.composers.Set(composerKey(session), actionComposerState{
		OrderID: orderID,
		Kind:    kind,
	}, u.ttl)

	return &domain.ComposerView{
		OrderID: orderID,
		Kind:    kind.String(),
		Meta:    kind.Composer(),
	}
}

// SubmitAction validates and submits a composed action, then reloads the
// order list. Validation failures never reach the network:
//   - the reason is trimmed and omitted entirely when blank
//   - an exchange target product id, when supplied, must parse as a positive
//     integer
func (u *OrderActionUsecase) SubmitAction(ctx context.Context, token string, session *domain.Session, orderID int64, kind domain.ActionKind, reason, exchangeProductID string) (*domain.OrderListView, error) {
	req := domain.ActionRequest{}

	if trimmed := strings.TrimSpace(reason); trimmed != "" {
		req.Reason = &trimmed
	}

	if kind == domain.ActionExchange {
		if raw := strings.TrimSpace(exchangeProductID); raw != "" {
			id, ok := utils.ParsePositiveID(raw)
			if !ok {
				return nil, domain.ErrInvalidExchangeProduct
			}
			req.ExchangeProductID = &id
		}
	}

	release, err := u.acquireInFlight(session, orderID)
	if err != nil {
		return nil, err
	}
	defer release()

	if _, err := u.gateway.SubmitOrderAction(ctx, token, orderID, kind, req); err != nil {
		return nil, err
	}

	// Success closes the composer and triggers a full reload
	u.composers.Delete(composerKey(session))
	return u.views.LoadOrders(ctx, token)
}

// ConfirmDelivery issues the immediate state change with an empty body and
// reloads on success. The in-flight marker is the server-side analogue of
// disabling the triggering button, released regardless of outcome.
func (u *OrderActionUsecase) ConfirmDelivery(ctx context.Context, token string, session *domain.Session, orderID int64) (*domain.OrderListView, error) {
	release, err := u.acquireInFlight(session, orderID)
	if err != nil {
		return nil, err
	}
	defer release()

	if _, err := u.gateway.ConfirmDelivery(ctx, token, orderID); err != nil {
		return nil, err
	}
	return u.views.LoadOrders(ctx, token)
}

func (u *OrderActionUsecase) acquireInFlight(session *domain.Session, orderID int64) (func(), error) {
	key := inFlightKey(session, orderID)
	if _, busy := u.composers.Get(key); busy {
		return nil, domain.ErrSubmissionInFlight
	}
	u.composers.Set(key, true, inFlightTTL)
	return func() { u.composers.Delete(key) }, nil
}
