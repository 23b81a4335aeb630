package valueobject_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marginiq/marginiq-api/internal/domain"
	"github.com/marginiq/marginiq-api/internal/domain/valueobject"
)

func usd(t *testing.T, s string) valueobject.Money {
	t.Helper()
	m, err := valueobject.NewMoney(decimal.RequireFromString(s), "USD")
	require.NoError(t, err)
	return m
}

func TestNewMoney_RoundsAndNormalizes(t *testing.T) {
	m, err := valueobject.NewMoney(decimal.RequireFromString("100.005"), "usd")
	require.NoError(t, err)

	assert.Equal(t, "100.01", m.Amount().StringFixed(2), "half away from zero rounding")
	assert.Equal(t, "USD", m.Currency(), "currency must be uppercased")
	assert.Equal(t, "100.01 USD", m.String())
}

func TestNewMoney_RejectsNegativeAmount(t *testing.T) {
	_, err := valueobject.NewMoney(decimal.RequireFromString("-1"), "USD")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNewMoney_RejectsBadCurrency(t *testing.T) {
	cases := []string{"", "US", "USDD", "U$D", "12A"}
	for _, cur := range cases {
		_, err := valueobject.NewMoney(decimal.NewFromInt(1), cur)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "currency %q must be rejected", cur)
	}
}

func TestMoney_AddSub(t *testing.T) {
	a := usd(t, "10.50")
	b := usd(t, "4.25")

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "14.75", sum.Amount().StringFixed(2))

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, "6.25", diff.Amount().StringFixed(2))

	// a and b are unchanged
	assert.Equal(t, "10.50", a.Amount().StringFixed(2))
	assert.Equal(t, "4.25", b.Amount().StringFixed(2))
}

func TestMoney_SubRejectsNegativeResult(t *testing.T) {
	a := usd(t, "1.00")
	b := usd(t, "2.00")
	_, err := a.Sub(b)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMoney_CurrencyMismatch(t *testing.T) {
	a := usd(t, "10.00")
	b, err := valueobject.NewMoney(decimal.NewFromInt(10), "EUR")
	require.NoError(t, err)

	_, err = a.Add(b)
	assert.ErrorIs(t, err, domain.ErrCurrencyMismatch)
	_, err = a.Sub(b)
	assert.ErrorIs(t, err, domain.ErrCurrencyMismatch)
	_, err = a.GreaterThan(b)
	assert.ErrorIs(t, err, domain.ErrCurrencyMismatch)
	_, err = a.LessOrEqual(b)
	assert.ErrorIs(t, err, domain.ErrCurrencyMismatch)
}

func TestMoney_MulDiv(t *testing.T) {
	m := usd(t, "10.00")

	tripled, err := m.Mul(decimal.NewFromInt(3))
	require.NoError(t, err)
	assert.Equal(t, "30.00", tripled.Amount().StringFixed(2))

	third, err := m.Div(decimal.NewFromInt(3))
	require.NoError(t, err)
	assert.Equal(t, "3.33", third.Amount().StringFixed(2), "quotient is rounded to 2 decimals")
}

func TestMoney_DivByZero(t *testing.T) {
	_, err := usd(t, "10.00").Div(decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrDivisionByZero)
}

func TestMoney_Comparisons(t *testing.T) {
	small := usd(t, "5.00")
	big := usd(t, "7.00")

	gt, err := big.GreaterThan(small)
	require.NoError(t, err)
	assert.True(t, gt)

	lt, err := small.LessThan(big)
	require.NoError(t, err)
	assert.True(t, lt)

	ge, err := big.GreaterOrEqual(big)
	require.NoError(t, err)
	assert.True(t, ge)

	le, err := small.LessOrEqual(small)
	require.NoError(t, err)
	assert.True(t, le)
}

func TestMoney_Equal(t *testing.T) {
	a := usd(t, "5.00")
	b := usd(t, "5.00")
	eur, err := valueobject.NewMoney(decimal.NewFromInt(5), "EUR")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(usd(t, "5.01")))
	assert.False(t, a.Equal(eur), "same amount in a different currency is not equal")
}

func TestZeroMoney(t *testing.T) {
	z, err := valueobject.ZeroMoney("cop")
	require.NoError(t, err)
	assert.True(t, z.IsZero())
	assert.Equal(t, "COP", z.Currency())
}
