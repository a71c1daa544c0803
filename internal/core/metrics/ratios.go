// Package metrics computes derived financial ratios from a single
// reporting period's figures. The calculator is pure: it reads only the
// entry passed in and is safe to re-run on every field change.
package metrics

import (
	"math"
	"strconv"
	"strings"

	"github.com/atlas-intel/atlas-cli/internal/core/domain"
)

// Compute derives the five financial ratios from the entry's inputs.
// Blank, non-numeric and zero inputs count as absent; a ratio whose
// numerator or denominator is absent is left nil rather than zero.
// Results are rounded to two decimal places.
func Compute(entry domain.FinancialEntry) domain.FinancialRatios {
	revenue := parseInput(entry.TotalRevenue)
	netProfit := parseInput(entry.NetProfit)
	totalAssets := parseInput(entry.TotalAssets)
	currentAssets := parseInput(entry.CurrentAssets)
	totalLiabilities := parseInput(entry.TotalLiabilities)
	currentLiabilities := parseInput(entry.CurrentLiabilities)
	equity := parseInput(entry.ShareholdersEquity)

	return domain.FinancialRatios{
		DebtToEquity:   ratio(totalLiabilities, equity, 1),
		CurrentRatio:   ratio(currentAssets, currentLiabilities, 1),
		ReturnOnEquity: ratio(netProfit, equity, 100),
		ReturnOnAssets: ratio(netProfit, totalAssets, 100),
		ProfitMargin:   ratio(netProfit, revenue, 100),
	}
}

// parseInput parses a form text field as a float. Blank, non-numeric and
// zero values are all treated as absent.
func parseInput(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v == 0 {
		return nil
	}
	return &v
}

// ratio returns numerator/denominator*scale rounded to two decimals, or
// nil when either side is absent.
func ratio(numerator, denominator *float64, scale float64) *float64 {
	if numerator == nil || denominator == nil {
		return nil
	}
	v := round2(*numerator / *denominator * scale)
	return &v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
