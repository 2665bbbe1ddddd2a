package domain_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auth-platform/libs/go/kernel/domain"
	"github.com/auth-platform/libs/go/kernel/errors"
)

func TestNewMoney(t *testing.T) {
	t.Run("stores minor units and currency", func(t *testing.T) {
		money, err := domain.NewMoney(1050, domain.USD)
		require.NoError(t, err)
		assert.Equal(t, int64(1050), money.Amount())
		assert.Equal(t, domain.USD, money.Currency())
	})

	t.Run("rejects unsupported currencies", func(t *testing.T) {
		_, err := domain.NewMoney(100, "XXX")
		require.Error(t, err)
		assert.True(t, errors.IsArgumentInvalid(err))

		_, err = domain.NewMoney(0, "")
		assert.True(t, errors.IsArgumentInvalid(err))
	})
}

func TestNewMoneyFromFloat(t *testing.T) {
	money, err := domain.NewMoneyFromFloat(10.05, domain.USD)
	require.NoError(t, err)
	assert.Equal(t, int64(1005), money.Amount())

	yen, err := domain.NewMoneyFromFloat(500, domain.JPY)
	require.NoError(t, err)
	assert.Equal(t, int64(500), yen.Amount())

	_, err = domain.NewMoneyFromFloat(1, "XXX")
	assert.True(t, errors.IsArgumentInvalid(err))
}

func TestMoneyArithmetic(t *testing.T) {
	ten := domain.MustNewMoney(1000, domain.USD)
	five := domain.MustNewMoney(500, domain.USD)

	t.Run("add", func(t *testing.T) {
		sum, err := ten.Add(five)
		require.NoError(t, err)
		assert.Equal(t, int64(1500), sum.Amount())
	})

	t.Run("subtract below zero", func(t *testing.T) {
		diff, err := five.Subtract(ten)
		require.NoError(t, err)
		assert.Equal(t, int64(-500), diff.Amount())
		assert.True(t, diff.IsNegative())
	})

	t.Run("multiply", func(t *testing.T) {
		tripled, err := ten.Multiply(3)
		require.NoError(t, err)
		assert.Equal(t, int64(3000), tripled.Amount())
	})

	t.Run("overflow fails instead of wrapping", func(t *testing.T) {
		max := domain.MustNewMoney(math.MaxInt64, domain.USD)
		min := domain.MustNewMoney(math.MinInt64, domain.USD)
		one := domain.MustNewMoney(1, domain.USD)

		_, err := max.Add(one)
		assert.True(t, errors.IsArgumentOutOfRange(err))

		_, err = min.Subtract(one)
		assert.True(t, errors.IsArgumentOutOfRange(err))

		_, err = max.Multiply(2)
		assert.True(t, errors.IsArgumentOutOfRange(err))

		_, err = min.Multiply(-1)
		assert.True(t, errors.IsArgumentOutOfRange(err))

		_, err = min.Divide(-1)
		assert.True(t, errors.IsArgumentOutOfRange(err))
	})

	t.Run("divide truncates toward zero", func(t *testing.T) {
		third, err := ten.Divide(3)
		require.NoError(t, err)
		assert.Equal(t, int64(333), third.Amount())
	})

	t.Run("divide by zero fails", func(t *testing.T) {
		_, err := ten.Divide(0)
		assert.True(t, errors.IsArgumentInvalid(err))
	})

	t.Run("currency mismatch fails with both codes in metadata", func(t *testing.T) {
		euros := domain.MustNewMoney(500, domain.EUR)
		_, err := ten.Add(euros)
		require.Error(t, err)
		assert.True(t, errors.IsArgumentInvalid(err))

		domainErr, ok := errors.AsDomain(err)
		require.True(t, ok)
		assert.Equal(t, "USD", domainErr.MetadataValue("left").UnwrapOr(nil))
		assert.Equal(t, "EUR", domainErr.MetadataValue("right").UnwrapOr(nil))

		_, err = ten.Subtract(euros)
		assert.True(t, errors.IsArgumentInvalid(err))
	})
}

func TestMoneySigns(t *testing.T) {
	assert.True(t, domain.Zero(domain.USD).IsZeroAmount())
	assert.True(t, domain.MustNewMoney(1, domain.USD).IsPositive())
	assert.True(t, domain.MustNewMoney(-1, domain.USD).IsNegative())
	assert.False(t, domain.Zero(domain.USD).IsPositive())
	assert.False(t, domain.Zero(domain.USD).IsNegative())
}

func TestMoneyCompare(t *testing.T) {
	small := domain.MustNewMoney(100, domain.USD)
	large := domain.MustNewMoney(200, domain.USD)

	assert.Negative(t, small.Compare(large))
	assert.Positive(t, large.Compare(small))
	assert.Zero(t, small.Compare(domain.MustNewMoney(100, domain.USD)))

	euros := domain.MustNewMoney(100, domain.EUR)
	assert.Positive(t, small.Compare(euros))
}

func TestMoneyString(t *testing.T) {
	cases := []struct {
		money domain.Money
		want  string
	}{
		{domain.MustNewMoney(1050, domain.USD), "USD 10.50"},
		{domain.MustNewMoney(5, domain.USD), "USD 0.05"},
		{domain.MustNewMoney(-50, domain.USD), "USD -0.50"},
		{domain.MustNewMoney(-1050, domain.USD), "USD -10.50"},
		{domain.MustNewMoney(500, domain.JPY), "JPY 500"},
		{domain.MustNewMoney(12345, domain.BRL), "BRL 123.45"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.money.String())
	}
}

func TestMoneyEquality(t *testing.T) {
	a := domain.MustNewMoney(1050, domain.USD)
	b := domain.MustNewMoney(1050, domain.USD)
	c := domain.MustNewMoney(1050, domain.EUR)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(domain.MustNewMoney(1051, domain.USD)))
}

func TestMoneyJSON(t *testing.T) {
	original := domain.MustNewMoney(1050, domain.USD)

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":1050,"currency":"USD"}`, string(data))

	var restored domain.Money
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.True(t, original.Equals(restored))

	var invalid domain.Money
	assert.Error(t, json.Unmarshal([]byte(`{"amount":1,"currency":"XXX"}`), &invalid))
	assert.Error(t, json.Unmarshal([]byte(`"1050 USD"`), &invalid))
}
