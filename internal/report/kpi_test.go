// AngelaMos | 2026
// kpi_test.go

package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalSales(t *testing.T) {
	tests := []struct {
		name   string
		totals []float64
		want   float64
	}{
		{name: "empty ledger", totals: nil, want: 0},
		{name: "single invoice", totals: []float64{42.5}, want: 42.5},
		{name: "several invoices", totals: []float64{10, 20, 30}, want: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, TotalSales(tt.totals), 1e-9)
		})
	}
}

func TestAveragePurchase(t *testing.T) {
	assert.Nil(t, AveragePurchase(nil))

	avg := AveragePurchase([]float64{10, 20, 30})
	require.NotNil(t, avg)
	assert.InDelta(t, 20, *avg, 1e-9)
}

func TestMedianPurchase(t *testing.T) {
	tests := []struct {
		name   string
		totals []float64
		want   *float64
	}{
		{name: "empty ledger", totals: nil, want: nil},
		{name: "single invoice", totals: []float64{7}, want: ptr(7.0)},
		{name: "odd count", totals: []float64{30, 10, 20}, want: ptr(20.0)},
		{name: "even count", totals: []float64{10, 20, 30, 40}, want: ptr(25.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MedianPurchase(tt.totals)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-9)
		})
	}
}

// A skewed ledger is where median and mean part ways: a single large
// invoice drags the mean up while the median stays at the typical value.
func TestMedianIsNotTheMean(t *testing.T) {
	totals := []float64{10, 10, 10, 100}

	avg := AveragePurchase(totals)
	median := MedianPurchase(totals)

	require.NotNil(t, avg)
	require.NotNil(t, median)
	assert.InDelta(t, 32.5, *avg, 1e-9)
	assert.InDelta(t, 10, *median, 1e-9)
}

func TestMedianDoesNotMutateInput(t *testing.T) {
	totals := []float64{30, 10, 20}
	_ = MedianPurchase(totals)
	assert.Equal(t, []float64{30, 10, 20}, totals)
}

func ptr(f float64) *float64 { return &f }
