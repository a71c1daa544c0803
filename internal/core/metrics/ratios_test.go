package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlas-intel/atlas-cli/internal/core/domain"
)

func TestCompute_AllRatios(t *testing.T) {
	entry := domain.FinancialEntry{
		TotalRevenue:       "100",
		NetProfit:          "20",
		TotalAssets:        "200",
		CurrentAssets:      "50",
		CurrentLiabilities: "25",
		TotalLiabilities:   "80",
		ShareholdersEquity: "120",
	}

	ratios := Compute(entry)

	require.NotNil(t, ratios.CurrentRatio)
	require.NotNil(t, ratios.DebtToEquity)
	require.NotNil(t, ratios.ReturnOnEquity)
	require.NotNil(t, ratios.ReturnOnAssets)
	require.NotNil(t, ratios.ProfitMargin)

	assert.Equal(t, 2.00, *ratios.CurrentRatio)
	assert.Equal(t, 0.67, *ratios.DebtToEquity)
	assert.Equal(t, 16.67, *ratios.ReturnOnEquity)
	assert.Equal(t, 10.00, *ratios.ReturnOnAssets)
	assert.Equal(t, 20.00, *ratios.ProfitMargin)
}

func TestCompute_AbsentDenominators(t *testing.T) {
	tests := []struct {
		name  string
		entry domain.FinancialEntry
		check func(t *testing.T, r domain.FinancialRatios)
	}{
		{
			name: "zero equity omits debt to equity and ROE",
			entry: domain.FinancialEntry{
				TotalLiabilities:   "80",
				NetProfit:          "20",
				ShareholdersEquity: "0",
			},
			check: func(t *testing.T, r domain.FinancialRatios) {
				assert.Nil(t, r.DebtToEquity)
				assert.Nil(t, r.ReturnOnEquity)
			},
		},
		{
			name: "blank equity omits debt to equity",
			entry: domain.FinancialEntry{
				TotalLiabilities: "80",
			},
			check: func(t *testing.T, r domain.FinancialRatios) {
				assert.Nil(t, r.DebtToEquity)
			},
		},
		{
			name: "non-numeric input treated as absent",
			entry: domain.FinancialEntry{
				CurrentAssets:      "fifty",
				CurrentLiabilities: "25",
			},
			check: func(t *testing.T, r domain.FinancialRatios) {
				assert.Nil(t, r.CurrentRatio)
			},
		},
		{
			name:  "empty entry yields no ratios",
			entry: domain.FinancialEntry{},
			check: func(t *testing.T, r domain.FinancialRatios) {
				assert.Nil(t, r.DebtToEquity)
				assert.Nil(t, r.CurrentRatio)
				assert.Nil(t, r.ReturnOnEquity)
				assert.Nil(t, r.ReturnOnAssets)
				assert.Nil(t, r.ProfitMargin)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, Compute(tt.entry))
		})
	}
}

func TestCompute_PartialInputs(t *testing.T) {
	// Each ratio is emitted independently of the others.
	entry := domain.FinancialEntry{
		CurrentAssets:      "150",
		CurrentLiabilities: "60",
	}

	ratios := Compute(entry)

	require.NotNil(t, ratios.CurrentRatio)
	assert.Equal(t, 2.5, *ratios.CurrentRatio)
	assert.Nil(t, ratios.DebtToEquity)
	assert.Nil(t, ratios.ProfitMargin)
}

func TestCompute_Idempotent(t *testing.T) {
	entry := domain.FinancialEntry{
		TotalRevenue:       "1234.56",
		NetProfit:          "78.9",
		TotalAssets:        "5000",
		ShareholdersEquity: "2500",
	}

	first := Compute(entry)
	second := Compute(entry)

	assert.Equal(t, first, second)

	// Unrelated field changes do not alter previously computed ratios.
	entry.FiscalYear = "2025"
	third := Compute(entry)
	assert.Equal(t, first, third)
}

func TestCompute_Rounding(t *testing.T) {
	entry := domain.FinancialEntry{
		TotalLiabilities:   "1",
		ShareholdersEquity: "3",
	}

	ratios := Compute(entry)

	require.NotNil(t, ratios.DebtToEquity)
	assert.Equal(t, 0.33, *ratios.DebtToEquity)
}

func TestCompute_NegativeProfit(t *testing.T) {
	entry := domain.FinancialEntry{
		TotalRevenue: "200",
		NetProfit:    "-50",
	}

	ratios := Compute(entry)

	require.NotNil(t, ratios.ProfitMargin)
	assert.Equal(t, -25.00, *ratios.ProfitMargin)
}
