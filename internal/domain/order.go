package domain

// Order Statuses (upstream lifecycle domain)
const (
	OrderStatusPlaced            = "PLACED"
	OrderStatusConfirmed         = "CONFIRMED"
	OrderStatusShipped           = "SHIPPED"
	OrderStatusDelivered         = "DELIVERED"
	OrderStatusCancelled         = "CANCELLED"
	OrderStatusReturnRequested   = "RETURN_REQUESTED"
	OrderStatusReturned          = "RETURNED"
	OrderStatusExchangeRequested = "EXCHANGE_REQUESTED"
	OrderStatusExchanged         = "EXCHANGED"
)

var OrderStatuses = []string{
	OrderStatusPlaced,
	OrderStatusConfirmed,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
	OrderStatusReturnRequested,
	OrderStatusReturned,
	OrderStatusExchangeRequested,
	OrderStatusExchanged,
}

// Severity buckets a status for card presentation
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// SeverityFor maps a raw status onto a visual severity. Unknown and future
// statuses fall through to warning.
func SeverityFor(status string) Severity {
	switch status {
	case OrderStatusDelivered, OrderStatusReturned, OrderStatusExchanged:
		return SeveritySuccess
	case OrderStatusCancelled:
		return SeverityDanger
	default:
		return SeverityWarning
	}
}

// IsReviewable reports whether an order in this status offers review actions
// on its line items.
func IsReviewable(status string) bool {
	switch status {
	case OrderStatusDelivered, OrderStatusReturned, OrderStatusExchanged:
		return true
	default:
		return false
	}
}

// --- Order Entities (upstream-owned, read-only projections) ---

// Order is the buyer order snapshot as reported by the marketplace API.
// The capability flags are authoritative; the gateway never re-derives
// them from Status.
type Order struct {
	OrderID                    int64       `json:"orderId"`
	OrderNumber                string      `json:"orderNumber"`
	Status                     string      `json:"status"`
	PaymentMethod              string      `json:"paymentMethod"`
	PaymentStatus              string      `json:"paymentStatus"`
	TotalAmount                float64     `json:"totalAmount"`
	ShippingAddress            string      `json:"shippingAddress"`
	BillingAddress             string      `json:"billingAddress"`
	CancelReason               *string     `json:"cancelReason"`
	ReturnReason               *string     `json:"returnReason"`
	ExchangeReason             *string     `json:"exchangeReason"`
	ExchangeRequestedProductID *int64      `json:"exchangeRequestedProductId"`
	CanCancel                  bool        `json:"canCancel"`
	CanReturn                  bool        `json:"canReturn"`
	CanExchange                bool        `json:"canExchange"`
	CanConfirmDelivery         bool        `json:"canConfirmDelivery"`
	CreatedAt                  Timestamp   `json:"createdAt"`
	Items                      []OrderItem `json:"items"`
}

type OrderItem struct {
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	LineTotal   float64 `json:"lineTotal"`
}

// Payment is the check-payment result for a single order
type Payment struct {
	PaymentStatus string `json:"paymentStatus"`
	OrderStatus   string `json:"orderStatus"`
}
