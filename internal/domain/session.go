package domain

import "context"

// Roles issued by the marketplace API
const (
	RoleBuyer  = "BUYER"
	RoleSeller = "SELLER"
)

// Session is the per-request identity decoded from the bearer token. Token is
// the raw credential, forwarded upstream verbatim; the marketplace API is the
// authority on its validity.
type Session struct {
	Token  string
	UserID string
	Email  string
	Role   string
}

// Key identifies the session's composer state. Tokens rotate, users don't, so
// composer state is keyed by user where possible.
func (s *Session) Key() string {
	if s.UserID != "" {
		return s.UserID
	}
	return s.Token
}

type ctxKey string

// SessionContextKey carries the Session through the request context
const SessionContextKey ctxKey = "session"

// SessionFromContext retrieves the session set by the auth middleware
func SessionFromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(SessionContextKey).(*Session)
	return s, ok
}

// MarketplaceGateway is the upstream API surface the view-model consumes
type MarketplaceGateway interface {
	MyOrders(ctx context.Context, token string) ([]Order, error)
	MyReviews(ctx context.Context, token string) ([]Review, error)
	SubmitOrderAction(ctx context.Context, token string, orderID int64, kind ActionKind, req ActionRequest) (*Order, error)
	ConfirmDelivery(ctx context.Context, token string, orderID int64) (*Order, error)
	PaymentByOrder(ctx context.Context, token string, orderID int64) (*Payment, error)
	CreateReview(ctx context.Context, token string, draft ReviewDraft) (*Review, error)
	UpdateReview(ctx context.Context, token string, reviewID int64, update ReviewUpdate) (*Review, error)
}
