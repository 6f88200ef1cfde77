package stripe

import (
	"context"
	"errors"

	stripego "github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/client"

	"scholarstream/internal/common"
	"scholarstream/internal/domain/payment"
)

// Client creates payment intents through the Stripe API. It holds its own API handle, so
// several clients with different keys can coexist in one process.
type Client struct {
	api *client.API
}

// NewClient builds a client for secretKey. A nil backends uses Stripe's default endpoints.
func NewClient(secretKey string, backends *stripego.Backends) *Client {
	api := &client.API{}
	api.Init(secretKey, backends)
	return &Client{api: api}
}

func (c *Client) CreateIntent(ctx context.Context, req payment.IntentRequest) (*payment.Intent, error) {
	params := &stripego.PaymentIntentParams{
		Amount:             stripego.Int64(req.Amount),
		Currency:           stripego.String(req.Currency),
		PaymentMethodTypes: stripego.StringSlice(req.PaymentMethodTypes),
	}
	params.Context = ctx
	intent, err := c.api.PaymentIntents.New(params)
	if err != nil {
		return nil, common.NewError(common.CodeUpstream, gatewayMessage(err), err)
	}
	return &payment.Intent{ID: intent.ID, ClientSecret: intent.ClientSecret}, nil
}

func gatewayMessage(err error) string {
	var stripeErr *stripego.Error
	if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
		return stripeErr.Msg
	}
	return err.Error()
}
