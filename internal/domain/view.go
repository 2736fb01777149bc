package domain

// --- Assembled view models served to the page shell ---

// OrderListView is the full order history page payload
type OrderListView struct {
	Orders []OrderCardView `json:"orders"`
	Empty  bool            `json:"empty"`
}

// OrderCardView is one rendered order card
type OrderCardView struct {
	OrderID                    int64          `json:"orderId"`
	OrderNumber                string         `json:"orderNumber"`
	Status                     string         `json:"status"`
	StatusDisplay              string         `json:"statusDisplay"`
	Severity                   Severity       `json:"severity"`
	PlacedAt                   string         `json:"placedAt"`
	PaymentMethod              string         `json:"paymentMethod"`
	PaymentStatus              string         `json:"paymentStatus"`
	TotalDisplay               string         `json:"totalDisplay"`
	ShippingAddress            string         `json:"shippingAddress"`
	BillingAddress             string         `json:"billingAddress"`
	CancelReason               *string        `json:"cancelReason,omitempty"`
	ReturnReason               *string        `json:"returnReason,omitempty"`
	ExchangeReason             *string        `json:"exchangeReason,omitempty"`
	ExchangeRequestedProductID *int64         `json:"exchangeRequestedProductId,omitempty"`
	Items                      []ItemView     `json:"items"`
	Actions                    ActionSet      `json:"actions"`
}

// ActionSet echoes the upstream capability flags verbatim. CheckPayment is
// offered regardless of state.
type ActionSet struct {
	CanCancel          bool `json:"canCancel"`
	CanReturn          bool `json:"canReturn"`
	CanExchange        bool `json:"canExchange"`
	CanConfirmDelivery bool `json:"canConfirmDelivery"`
	CheckPayment       bool `json:"checkPayment"`
}

// ItemView is one line item row. ReviewButton is nil unless the order is in a
// terminal reviewable state.
type ItemView struct {
	ProductID        int64             `json:"productId"`
	ProductName      string            `json:"productName"`
	Quantity         int               `json:"quantity"`
	LineTotalDisplay string            `json:"lineTotalDisplay"`
	ReviewButton     *ReviewButtonView `json:"reviewButton,omitempty"`
}

type ReviewButtonView struct {
	Label       string `json:"label"`
	HasExisting bool   `json:"hasExisting"`
}

// ComposerView is the opened action composer panel
type ComposerView struct {
	OrderID int64        `json:"orderId"`
	Kind    string       `json:"kind"`
	Meta    ComposerMeta `json:"meta"`
}

// ReviewComposerView is the opened review composer, pre-filled from the
// existing review when one is indexed for the product
type ReviewComposerView struct {
	ProductID   int64  `json:"productId"`
	ProductName string `json:"productName"`
	Mode        string `json:"mode"` // "create" or "update"
	Rating      int    `json:"rating"`
	Title       string `json:"title"`
	Comment     string `json:"comment"`
}

// PaymentView is the check-payment result line
type PaymentView struct {
	PaymentStatus string `json:"paymentStatus"`
	OrderStatus   string `json:"orderStatus"`
	Display       string `json:"display"`
}
