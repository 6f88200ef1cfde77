package app

import (
	"context"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"scholarstream/internal/common"
	"scholarstream/internal/domain/payment"
)

type PaymentService struct {
	gateway  payment.Gateway
	currency string
}

func NewPaymentService(gateway payment.Gateway, currency string) *PaymentService {
	return &PaymentService{gateway: gateway, currency: currency}
}

// CreateIntent charges amount, given in major units as a number or numeric string, and
// returns the intent's client secret. A missing, null, zero or empty amount is rejected.
// Any other amount that cannot be charged as a whole number of cents fails as a gateway
// error; the sign is not checked.
func (s *PaymentService) CreateIntent(ctx context.Context, amount any) (string, error) {
	if !isPresent(amount) {
		return "", common.NewValidationError("Amount is required", map[string]string{"amount": "required"})
	}
	minor, err := MinorUnits(amount)
	if err != nil {
		return "", err
	}
	intent, err := s.gateway.CreateIntent(ctx, payment.IntentRequest{
		Amount:             minor,
		Currency:           s.currency,
		PaymentMethodTypes: []string{payment.MethodCard},
	})
	if err != nil {
		if common.CodeOf(err) == common.CodeInternal {
			return "", common.NewError(common.CodeUpstream, err.Error(), err)
		}
		return "", err
	}
	return intent.ClientSecret, nil
}

// MinorUnits converts a major-unit amount to cents. Amounts that are not numeric, carry
// fractions of a cent or overflow int64 are reported as common.CodeUpstream errors.
func MinorUnits(amount any) (int64, error) {
	value, ok := decimalValue(amount)
	if !ok {
		return 0, common.NewError(common.CodeUpstream, fmt.Sprintf("Invalid integer: %v", amount), nil)
	}
	minor := value.Shift(2)
	if !minor.IsInteger() {
		return 0, common.NewError(common.CodeUpstream, "Invalid integer: "+minor.String(), nil)
	}
	if minor.GreaterThan(decimal.NewFromInt(math.MaxInt64)) || minor.LessThan(decimal.NewFromInt(math.MinInt64)) {
		return 0, common.NewError(common.CodeUpstream, "Invalid integer: "+minor.String(), nil)
	}
	return minor.IntPart(), nil
}
