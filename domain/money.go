package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/auth-platform/libs/go/kernel/errors"
	"github.com/auth-platform/libs/go/kernel/valueobject"
)

// Currency represents an ISO 4217 currency code.
type Currency string

// Supported currency codes.
const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	JPY Currency = "JPY"
	BRL Currency = "BRL"
	CNY Currency = "CNY"
	INR Currency = "INR"
	AUD Currency = "AUD"
	CAD Currency = "CAD"
	CHF Currency = "CHF"
)

// currencyDecimals maps each supported currency to its decimal places.
var currencyDecimals = map[Currency]int{
	USD: 2,
	EUR: 2,
	GBP: 2,
	JPY: 0,
	BRL: 2,
	CNY: 2,
	INR: 2,
	AUD: 2,
	CAD: 2,
	CHF: 2,
}

// MoneyValue is the structured payload stored inside Money: an amount
// in the currency's smallest unit plus the currency code.
type MoneyValue struct {
	Amount   int64    `json:"amount"`
	Currency Currency `json:"currency"`
}

// Money represents a monetary value in a single currency. Amounts are
// held in the smallest currency unit (cents for USD, yen for JPY) so
// arithmetic stays exact.
type Money struct {
	valueobject.Base[MoneyValue]
}

// NewMoney creates Money from an amount in the smallest currency unit.
func NewMoney(amount int64, currency Currency) (Money, error) {
	payload := MoneyValue{Amount: amount, Currency: currency}
	base, err := valueobject.New("Money", payload, validateMoney)
	if err != nil {
		return Money{}, err
	}
	return Money{base}, nil
}

// MustNewMoney creates Money, panicking on invalid input.
func MustNewMoney(amount int64, currency Currency) Money {
	return errors.Must(NewMoney(amount, currency))
}

// NewMoneyFromFloat creates Money from a major-unit amount, rounding to
// the currency's smallest unit.
func NewMoneyFromFloat(amount float64, currency Currency) (Money, error) {
	decimals, ok := currencyDecimals[currency]
	if !ok {
		return Money{}, errors.ArgumentInvalid("unsupported currency: " + string(currency))
	}
	multiplier := float64(1)
	for i := 0; i < decimals; i++ {
		multiplier *= 10
	}
	return NewMoney(int64(math.Round(amount*multiplier)), currency)
}

// Zero returns zero money in the given currency.
func Zero(currency Currency) Money {
	return MustNewMoney(0, currency)
}

func validateMoney(value MoneyValue) error {
	if _, ok := currencyDecimals[value.Currency]; !ok {
		return errors.ArgumentInvalid("unsupported currency: " + string(value.Currency))
	}
	return nil
}

// Amount returns the amount in the smallest currency unit.
func (m Money) Amount() int64 {
	return m.Value().Amount
}

// Currency returns the currency code.
func (m Money) Currency() Currency {
	return m.Value().Currency
}

// IsZeroAmount reports whether the amount is zero.
func (m Money) IsZeroAmount() bool {
	return m.Value().Amount == 0
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.Value().Amount > 0
}

// IsNegative reports whether the amount is less than zero.
func (m Money) IsNegative() bool {
	return m.Value().Amount < 0
}

// Add returns the sum of two monetary values. Currencies must match;
// sums exceeding the int64 amount range fail instead of wrapping.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency() != other.Currency() {
		return Money{}, currencyMismatch(m.Currency(), other.Currency())
	}
	a, b := m.Amount(), other.Amount()
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return Money{}, amountOverflow()
	}
	return NewMoney(a+b, m.Currency())
}

// Subtract returns the difference of two monetary values. Currencies
// must match; differences exceeding the int64 amount range fail instead
// of wrapping.
func (m Money) Subtract(other Money) (Money, error) {
	if m.Currency() != other.Currency() {
		return Money{}, currencyMismatch(m.Currency(), other.Currency())
	}
	a, b := m.Amount(), other.Amount()
	if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
		return Money{}, amountOverflow()
	}
	return NewMoney(a-b, m.Currency())
}

// Multiply returns the amount scaled by an integer factor. Products
// exceeding the int64 amount range fail instead of wrapping.
func (m Money) Multiply(factor int64) (Money, error) {
	a := m.Amount()
	if a != 0 && factor != 0 {
		if a == math.MinInt64 && factor == -1 {
			return Money{}, amountOverflow()
		}
		product := a * factor
		if product/factor != a {
			return Money{}, amountOverflow()
		}
	}
	return NewMoney(a*factor, m.Currency())
}

// Divide returns the amount divided by divisor, truncating toward zero.
func (m Money) Divide(divisor int64) (Money, error) {
	if divisor == 0 {
		return Money{}, errors.ArgumentInvalid("cannot divide money by zero")
	}
	if m.Amount() == math.MinInt64 && divisor == -1 {
		return Money{}, amountOverflow()
	}
	return NewMoney(m.Amount()/divisor, m.Currency())
}

// Compare orders two monetary values of the same currency: -1 if m is
// less than other, 0 if equal, 1 if greater. Mixed currencies order by
// currency code.
func (m Money) Compare(other Money) int {
	if m.Currency() != other.Currency() {
		return strings.Compare(string(m.Currency()), string(other.Currency()))
	}
	switch {
	case m.Amount() < other.Amount():
		return -1
	case m.Amount() > other.Amount():
		return 1
	}
	return 0
}

// String returns a human-readable representation such as "USD 10.50".
func (m Money) String() string {
	value := m.Value()
	decimals := currencyDecimals[value.Currency]
	if decimals == 0 {
		return fmt.Sprintf("%s %d", value.Currency, value.Amount)
	}
	divisor := int64(1)
	for i := 0; i < decimals; i++ {
		divisor *= 10
	}
	whole := value.Amount / divisor
	frac := value.Amount % divisor
	sign := ""
	if value.Amount < 0 {
		sign = "-"
		whole = -whole
		frac = -frac
	}
	return fmt.Sprintf("%s %s%d.%0*d", value.Currency, sign, whole, decimals, frac)
}

// UnmarshalJSON implements json.Unmarshaler. The incoming payload goes
// through the same validation as NewMoney.
func (m *Money) UnmarshalJSON(data []byte) error {
	var payload MoneyValue
	if err := json.Unmarshal(data, &payload); err != nil {
		return errors.ArgumentInvalid("money must be an {amount, currency} object").WithCause(err)
	}
	money, err := NewMoney(payload.Amount, payload.Currency)
	if err != nil {
		return err
	}
	*m = money
	return nil
}

func amountOverflow() error {
	return errors.ArgumentOutOfRange("money amount overflows the representable range", int64(math.MinInt64), int64(math.MaxInt64))
}

func currencyMismatch(left, right Currency) error {
	return errors.New(errors.CodeArgumentInvalid, "currency mismatch").
		WithMetadata("left", string(left)).
		WithMetadata("right", string(right))
}
