// AngelaMos | 2026
// kpi.go

package report

import "sort"

// TotalSales sums every invoice total. An empty ledger sums to zero.
func TotalSales(totals []float64) float64 {
	var sum float64
	for _, t := range totals {
		sum += t
	}
	return sum
}

// AveragePurchase returns the mean invoice total, or nil when there are
// no invoices to average over.
func AveragePurchase(totals []float64) *float64 {
	if len(totals) == 0 {
		return nil
	}

	avg := TotalSales(totals) / float64(len(totals))
	return &avg
}

// MedianPurchase returns the statistical median of the invoice totals:
// the middle value for an odd count, the mean of the two middle values
// for an even count, nil for an empty ledger. The input slice is not
// modified.
func MedianPurchase(totals []float64) *float64 {
	if len(totals) == 0 {
		return nil
	}

	sorted := make([]float64, len(totals))
	copy(sorted, totals)
	sort.Float64s(sorted)

	mid := len(sorted) / 2

	var median float64
	if len(sorted)%2 == 1 {
		median = sorted[mid]
	} else {
		median = (sorted[mid-1] + sorted[mid]) / 2
	}

	return &median
}
