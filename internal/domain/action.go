package domain

// ActionKind identifies a composed buyer action on an order. It is a closed
// enum so that path resolution and composer metadata are matched exhaustively;
// adding a kind is a compile-checked change, not a new map entry.
type ActionKind int

const (
	ActionCancel ActionKind = iota
	ActionReturn
	ActionExchange
)

// ParseActionKind maps a URL segment onto an ActionKind
func ParseActionKind(s string) (ActionKind, error) {
	switch s {
	case "cancel":
		return ActionCancel, nil
	case "return":
		return ActionReturn, nil
	case "exchange":
		return ActionExchange, nil
	default:
		return 0, ErrUnknownAction
	}
}

func (k ActionKind) String() string {
	switch k {
	case ActionCancel:
		return "cancel"
	case ActionReturn:
		return "return"
	case ActionExchange:
		return "exchange"
	}
	return "unknown"
}

// PathSuffix is the upstream route segment under /orders/my/{id}/
func (k ActionKind) PathSuffix() string {
	return k.String()
}

// ComposerMeta parameterizes the shared composer panel per action kind
type ComposerMeta struct {
	Title                string `json:"title"`
	Subtitle             string `json:"subtitle"`
	SubmitLabel          string `json:"submitLabel"`
	WantsExchangeProduct bool   `json:"wantsExchangeProduct"`
}

func (k ActionKind) Composer() ComposerMeta {
	switch k {
	case ActionCancel:
		return ComposerMeta{
			Title:       "Cancel Order",
			Subtitle:    "Tell us why you are cancelling (optional).",
			SubmitLabel: "Cancel Order",
		}
	case ActionReturn:
		return ComposerMeta{
			Title:       "Request Return",
			Subtitle:    "Tell us why you are returning this order (optional).",
			SubmitLabel: "Request Return",
		}
	case ActionExchange:
		return ComposerMeta{
			Title:                "Request Exchange",
			Subtitle:             "Tell us why you want an exchange (optional).",
			SubmitLabel:          "Request Exchange",
			WantsExchangeProduct: true,
		}
	}
	return ComposerMeta{}
}

// ActionRequest is the upstream body for a composed action. Blank fields are
// omitted entirely, never sent as empty strings.
type ActionRequest struct {
	Reason            *string `json:"reason,omitempty"`
	ExchangeProductID *int64  `json:"exchangeProductId,omitempty"`
}
