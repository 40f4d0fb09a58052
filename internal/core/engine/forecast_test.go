package engine_test

import (
	"testing"

	"github.com/finoraid/finora_backend/internal/core/domain"
	"github.com/finoraid/finora_backend/internal/core/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildForecast_WindowBoundaries(t *testing.T) {
	cfg := engine.DefaultConfig()

	receivables := []domain.Receivable{
		{Client: "Today", Remaining: money(1_000_000), DueDate: "2025-08-15"},      // day 0: in
		{Client: "LastDay", Remaining: money(2_000_000), DueDate: "2025-09-14"},    // day 30: in
		{Client: "PastWindow", Remaining: money(4_000_000), DueDate: "2025-09-15"}, // day 31: out
		{Client: "Overdue", Remaining: money(8_000_000), DueDate: "2025-08-14"},    // day -1: out
		{Client: "NoDate", Remaining: money(16_000_000), DueDate: ""},              // no date: out
	}

	f := engine.BuildForecast(money(0), receivables, nil, testNow, cfg)

	require.Len(t, f.Incoming, 2)
	assert.True(t, f.TotalIncoming.Equal(money(3_000_000)))
	assert.Equal(t, 30, f.WindowDays)
}

func TestBuildForecast_OutgoingSkipsSettledDebts(t *testing.T) {
	debts := engine.DeriveDebts([]domain.Debt{
		{DebtID: "d1", UserID: "u", LenderName: "Bank", TotalAmount: money(5_000_000), PaidAmount: money(2_000_000), DueDate: "2025-08-25"},
		{DebtID: "d2", UserID: "u", LenderName: "Paid Off", TotalAmount: money(1_000_000), PaidAmount: money(1_000_000), DueDate: "2025-08-25"},
	}, testNow)

	f := engine.BuildForecast(money(0), nil, debts, testNow, engine.DefaultConfig())

	require.Len(t, f.Outgoing, 1)
	assert.Equal(t, "Bank", f.Outgoing[0].Lender)
	assert.True(t, f.TotalOutgoing.Equal(money(3_000_000)))
}

func TestBuildForecast_Status(t *testing.T) {
	cfg := engine.DefaultConfig()

	tests := []struct {
		name       string
		balance    int64
		inflow     int64
		outflow    int64
		wantStatus domain.ForecastStatus
	}{
		{"comfortably above threshold", 10_000_000, 2_000_000, 6_000_000, domain.ForecastSafe},
		{"exactly at threshold is caution", 5_000_000, 0, 0, domain.ForecastCaution},
		{"zero balance is caution", 0, 0, 0, domain.ForecastCaution},
		{"projected negative", 0, 0, 1, domain.ForecastAtRisk},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var receivables []domain.Receivable
			if tt.inflow > 0 {
				receivables = []domain.Receivable{{Remaining: money(tt.inflow), DueDate: "2025-08-20"}}
			}
			var debts []domain.DerivedDebt
			if tt.outflow > 0 {
				debts = engine.DeriveDebts([]domain.Debt{
					{DebtID: "d", UserID: "u", TotalAmount: money(tt.outflow), DueDate: "2025-08-20"},
				}, testNow)
			}

			f := engine.BuildForecast(money(tt.balance), receivables, debts, testNow, cfg)

			assert.Equal(t, tt.wantStatus, f.Status)
			assert.True(t, f.ForecastBalance.Equal(money(tt.balance+tt.inflow-tt.outflow)),
				"forecast balance = %s", f.ForecastBalance)
		})
	}
}

func TestBuildForecast_CustomWindow(t *testing.T) {
	cfg := engine.Config{ForecastWindowDays: 7, ForecastSafeBalance: money(1_000_000)}

	receivables := []domain.Receivable{
		{Client: "InWindow", Remaining: money(500_000), DueDate: "2025-08-22"},   // day 7: in
		{Client: "OutWindow", Remaining: money(900_000), DueDate: "2025-08-23"},  // day 8: out
	}

	f := engine.BuildForecast(money(0), receivables, nil, testNow, cfg)

	require.Len(t, f.Incoming, 1)
	assert.Equal(t, "InWindow", f.Incoming[0].Client)
	assert.Equal(t, 7, f.WindowDays)
}
