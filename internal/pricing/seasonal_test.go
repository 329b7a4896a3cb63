package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeasonalShares_SumTo100(t *testing.T) {
	sum := 0.0
	for month := time.January; month <= time.December; month++ {
		share := SeasonalShare(month)
		require.Greater(t, share, 0.0, "month %s has no share", month)
		sum += share
	}
	assert.InDelta(t, 100.0, sum, 0.01)
}

func TestSeasonalShares_WinterAboveSummer(t *testing.T) {
	// Heating-driven demand: January must outweigh July
	assert.Greater(t, SeasonalShare(time.January), SeasonalShare(time.July))
}

func TestMonthlyConsumption(t *testing.T) {
	tests := []struct {
		name      string
		annualKwh float64
		month     time.Month
		want      float64
	}{
		{
			name:      "January share of 16000 kWh",
			annualKwh: 16000,
			month:     time.January,
			want:      2001.6, // 16000 × 12.51%
		},
		{
			name:      "July share of 16000 kWh",
			annualKwh: 16000,
			month:     time.July,
			want:      740.8, // 16000 × 4.63%
		},
		{
			name:      "Zero consumption",
			annualKwh: 0,
			month:     time.January,
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, MonthlyConsumption(tt.annualKwh, tt.month), 1e-9)
		})
	}
}

func TestMonthlyConsumptionNow_UsesCurrentMonth(t *testing.T) {
	want := MonthlyConsumption(12000, time.Now().Month())
	assert.Equal(t, want, MonthlyConsumptionNow(12000))
}
