package payment

import "context"

const MethodCard = "card"

type IntentRequest struct {
	// Amount is in the currency's minor unit.
	Amount             int64
	Currency           string
	PaymentMethodTypes []string
}

type Intent struct {
	ID           string
	ClientSecret string
}

type Gateway interface {
	CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error)
}
