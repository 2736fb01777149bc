package v1

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"revshop-web/internal/domain"
	infracache "revshop-web/internal/infrastructure/cache"
	"revshop-web/internal/upstream"
	"revshop-web/internal/usecase"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

// fakeGateway serves canned marketplace data to the handler stack
type fakeGateway struct {
	orders     []domain.Order
	ordersErr  error
	reviews    []domain.Review
	actionErr  error
	confirmErr error

	ordersCalls int
	actionReqs  []domain.ActionRequest
	created     []domain.ReviewDraft
	updated     map[int64]domain.ReviewUpdate
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{updated: make(map[int64]domain.ReviewUpdate)}
}

func (f *fakeGateway) MyOrders(ctx context.Context, token string) ([]domain.Order, error) {
	f.ordersCalls++
	return f.orders, f.ordersErr
}

func (f *fakeGateway) MyReviews(ctx context.Context, token string) ([]domain.Review, error) {
	return f.reviews, nil
}

func (f *fakeGateway) SubmitOrderAction(ctx context.Context, token string, orderID int64, kind domain.ActionKind, req domain.ActionRequest) (*domain.Order, error) {
	f.actionReqs = append(f.actionReqs, req)
	if f.actionErr != nil {
		return nil, f.actionErr
	}
	return &domain.Order{OrderID: orderID}, nil
}

func (f *fakeGateway) ConfirmDelivery(ctx context.Context, token string, orderID int64) (*domain.Order, error) {
	if f.confirmErr != nil {
		return nil, f.confirmErr
	}
	return &domain.Order{OrderID: orderID, Status: domain.OrderStatusDelivered}, nil
}

func (f *fakeGateway) PaymentByOrder(ctx context.Context, token string, orderID int64) (*domain.Payment, error) {
	return &domain.Payment{PaymentStatus: "PAID", OrderStatus: "DELIVERED"}, nil
}

func (f *fakeGateway) CreateReview(ctx context.Context, token string, draft domain.ReviewDraft) (*domain.Review, error) {
	f.created = append(f.created, draft)
	return &domain.Review{ReviewID: 1000, ProductID: draft.ProductID}, nil
}

func (f *fakeGateway) UpdateReview(ctx context.Context, token string, reviewID int64, update domain.ReviewUpdate) (*domain.Review, error) {
	f.updated[reviewID] = update
	return &domain.Review{ReviewID: reviewID}, nil
}

// withSession injects a buyer session the way the auth middleware does
func withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := &domain.Session{Token: "tok", UserID: "buyer-1", Email: "b@example.com", Role: domain.RoleBuyer}
		ctx := context.WithValue(r.Context(), domain.SessionContextKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func newTestServer(gw domain.MarketplaceGateway, authed bool) *httptest.Server {
	store := infracache.NewMemoryCache(time.Minute, time.Hour)
	views := usecase.NewOrderViewUsecase(gw)
	actions := usecase.NewOrderActionUsecase(gw, views, store, time.Minute)
	reviews := usecase.NewReviewUsecase(gw, views, store, time.Minute)

	orderHandler := NewOrderViewHandler(views, actions)
	reviewHandler := NewReviewHandler(reviews)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /app/v1/orders/view", orderHandler.GetOrders)
	mux.HandleFunc("GET /app/v1/orders/{id}/payment", orderHandler.CheckPayment)
	mux.HandleFunc("POST /app/v1/orders/{id}/confirm-delivery", orderHandler.ConfirmDelivery)
	mux.HandleFunc("POST /app/v1/orders/{id}/composer/{action}", orderHandler.OpenComposer)
	mux.HandleFunc("POST /app/v1/orders/{id}/actions/{action}", orderHandler.SubmitAction)
	mux.HandleFunc("POST /app/v1/reviews/composer", reviewHandler.OpenComposer)
	mux.HandleFunc("POST /app/v1/reviews/submit", reviewHandler.SubmitReview)

	var handler http.Handler = mux
	if authed {
		handler = withSession(mux)
	}
	return httptest.NewServer(handler)
}

func decodeEnvelope(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	var env map[string]interface{}
	assert.NoError(t, json.Unmarshal(raw, &env))
	return env
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	assert.NoError(t, err)
	return resp
}

func TestGetOrders_ServesAssembledView(t *testing.T) {
	gw := newFakeGateway()
	gw.orders = []domain.Order{{OrderID: 1, OrderNumber: "ORD-1", Status: domain.OrderStatusDelivered}}
	srv := newTestServer(gw, true)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/app/v1/orders/view")
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	assert.Equal(t, true, env["success"])
	data := env["data"].(map[string]interface{})
	assert.Len(t, data["orders"], 1)
}

func TestGetOrders_UpstreamEnvelopeErrorPassesThrough(t *testing.T) {
	gw := newFakeGateway()
	gw.ordersErr = &upstream.Error{Status: http.StatusUnauthorized, Message: "Please login to continue"}
	srv := newTestServer(gw, true)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/app/v1/orders/view")
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	assert.Equal(t, false, env["success"])
	assert.Equal(t, "Please login to continue", env["message"])
}

func TestGetOrders_TransportErrorIsBadGateway(t *testing.T) {
	gw := newFakeGateway()
	gw.ordersErr = errors.New("connection refused")
	srv := newTestServer(gw, true)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/app/v1/orders/view")
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	assert.Equal(t, "Failed to fetch orders", env["message"])
}

func TestGetOrders_Unauthorized(t *testing.T) {
	srv := newTestServer(newFakeGateway(), false)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/app/v1/orders/view")
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSubmitAction_MutationRespondsWithReloadedList(t *testing.T) {
	gw := newFakeGateway()
	gw.orders = []domain.Order{{OrderID: 5, Status: domain.OrderStatusCancelled}}
	srv := newTestServer(gw, true)
	defer srv.Close()

	resp := post(t, srv.URL+"/app/v1/orders/5/actions/cancel", `{"reason": "  "}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	assert.Equal(t, "Order cancelled successfully", env["message"])

	assert.Len(t, gw.actionReqs, 1)
	assert.Nil(t, gw.actionReqs[0].Reason)
	assert.Equal(t, 1, gw.ordersCalls, "the response is a fresh order list load")
}

func TestSubmitAction_InvalidExchangeProductRejected(t *testing.T) {
	gw := newFakeGateway()
	srv := newTestServer(gw, true)
	defer srv.Close()

	resp := post(t, srv.URL+"/app/v1/orders/5/actions/exchange", `{"reason": "x", "exchangeProductId": "abc"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Empty(t, gw.actionReqs, "no request may reach the marketplace")
	assert.Zero(t, gw.ordersCalls)
}

func TestSubmitAction_UnknownActionSegment(t *testing.T) {
	gw := newFakeGateway()
	srv := newTestServer(gw, true)
	defer srv.Close()

	resp := post(t, srv.URL+"/app/v1/orders/5/actions/refund", `{}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestConfirmDelivery_ReloadsList(t *testing.T) {
	gw := newFakeGateway()
	srv := newTestServer(gw, true)
	defer srv.Close()

	resp := post(t, srv.URL+"/app/v1/orders/7/confirm-delivery", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	assert.Equal(t, "Delivery confirmed", env["message"])
	assert.Equal(t, 1, gw.ordersCalls)
}

func TestOpenComposer_ExchangeWantsTargetProduct(t *testing.T) {
	srv := newTestServer(newFakeGateway(), true)
	defer srv.Close()

	resp := post(t, srv.URL+"/app/v1/orders/5/composer/exchange", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	data := env["data"].(map[string]interface{})
	meta := data["meta"].(map[string]interface{})
	assert.Equal(t, true, meta["wantsExchangeProduct"])
}

func TestSubmitReview_FractionalRatingRejected(t *testing.T) {
	gw := newFakeGateway()
	srv := newTestServer(gw, true)
	defer srv.Close()

	// Open a composer first so the rating check is what rejects
	resp := post(t, srv.URL+"/app/v1/reviews/composer", `{"productId": 99, "productName": "Lamp"}`)
	resp.Body.Close()

	resp = post(t, srv.URL+"/app/v1/reviews/submit", `{"rating": 3.5, "title": "meh"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Empty(t, gw.created)
	assert.Empty(t, gw.updated)
}

func TestSubmitReview_CreateFlow(t *testing.T) {
	gw := newFakeGateway()
	srv := newTestServer(gw, true)
	defer srv.Close()

	resp := post(t, srv.URL+"/app/v1/reviews/composer", `{"productId": 99, "productName": "Lamp"}`)
	resp.Body.Close()

	resp = post(t, srv.URL+"/app/v1/reviews/submit", `{"rating": 5, "title": "Great"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	if assert.Len(t, gw.created, 1) {
		assert.Equal(t, int64(99), gw.created[0].ProductID)
		assert.Equal(t, 5, gw.created[0].Rating)
	}
	assert.Equal(t, 1, gw.ordersCalls)
}

func TestSubmitReview_WithoutComposerOpen(t *testing.T) {
	srv := newTestServer(newFakeGateway(), true)
	defer srv.Close()

	resp := post(t, srv.URL+"/app/v1/reviews/submit", `{"rating": 5}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCheckPayment_ResultLine(t *testing.T) {
	srv := newTestServer(newFakeGateway(), true)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/app/v1/orders/7/payment")
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	data := env["data"].(map[string]interface{})
	assert.Equal(t, "Payment Status: PAID | Order Status: DELIVERED", data["display"])
}
