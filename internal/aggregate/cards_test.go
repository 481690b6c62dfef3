package aggregate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finreport/internal/model"
)

func TestCardSummaries(t *testing.T) {
	txns := []model.Transaction{
		{Card: "*5678", PaymentAmount: -1000, RoundedAmount: 1000},
		{Card: "*2222", PaymentAmount: -2000, RoundedAmount: 2000},
		{Card: "*5678", PaymentAmount: -500, RoundedAmount: 500},
		{Card: "*5998", PaymentAmount: 1000, RoundedAmount: 1000}, // income, skipped
	}

	got := CardSummaries(txns)

	require.Len(t, got, 2)
	assert.Equal(t, CardSummary{LastDigits: "5678", TotalSpent: 1500, Cashback: 15}, got[0])
	assert.Equal(t, CardSummary{LastDigits: "2222", TotalSpent: 2000, Cashback: 20}, got[1])
}

func TestCardSummaries_SentinelCard(t *testing.T) {
	txns := []model.Transaction{
		{Card: model.CardNotSpecified, PaymentAmount: -100, RoundedAmount: 100},
	}

	got := CardSummaries(txns)

	require.Len(t, got, 1)
	assert.Equal(t, model.CardNotSpecified, got[0].LastDigits)
}

func TestCardSummaries_Empty(t *testing.T) {
	assert.Empty(t, CardSummaries(nil))
	assert.NotNil(t, CardSummaries(nil))
}

func TestCardSummaries_TotalConservation(t *testing.T) {
	txns := []model.Transaction{
		{Card: "*1111", PaymentAmount: -100.50, RoundedAmount: 100.50},
		{Card: "*2222", PaymentAmount: -0.49, RoundedAmount: 0.49},
		{Card: "*1111", PaymentAmount: -49.01, RoundedAmount: 49.01},
		{Card: "*3333", PaymentAmount: 5000, RoundedAmount: 5000},
	}

	var wantTotal float64
	for _, tx := range txns {
		if tx.PaymentAmount < 0 {
			wantTotal += tx.RoundedAmount
		}
	}

	var gotTotal float64
	for _, card := range CardSummaries(txns) {
		gotTotal += card.TotalSpent
	}

	assert.InDelta(t, math.Abs(wantTotal), gotTotal, 0.001)
}

func TestRound2(t *testing.T) {
	// 0.125 is exactly representable, so the half-away-from-zero rule is
	// actually exercised here.
	assert.Equal(t, 0.13, Round2(0.125))
	assert.Equal(t, -0.13, Round2(-0.125))
	assert.Equal(t, 13.0, Round2(13.0))
	assert.Equal(t, 2.35, Round2(2.346))
}
