package engine

import (
	"time"

	"github.com/finoraid/finora_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Config carries the tunable constants of the derivation engine. The
// forecast window and the safe-balance threshold are deployment settings,
// not business rules, so they are injected rather than hardcoded.
type Config struct {
	ForecastWindowDays  int
	ForecastSafeBalance decimal.Decimal
}

// DefaultConfig mirrors the settings the original dashboard shipped with.
func DefaultConfig() Config {
	return Config{
		ForecastWindowDays:  30,
		ForecastSafeBalance: decimal.NewFromInt(5_000_000),
	}
}

// withinWindow reports whether the date falls inside [today, today+window]
// inclusive. Missing and unparseable dates are excluded.
func withinWindow(value string, now time.Time, windowDays int) bool {
	days := daysUntil(value, now)
	return days != nil && *days >= 0 && *days <= windowDays
}

// BuildForecast projects the balance over the configured window: expected
// receivable collections in, debt payments due out.
func BuildForecast(balance decimal.Decimal, receivables []domain.Receivable, debts []domain.DerivedDebt, now time.Time, cfg Config) domain.Forecast {
	incoming := make([]domain.ForecastInflow, 0)
	totalIn := decimal.Zero
	for _, r := range receivables {
		if !withinWindow(r.DueDate, now, cfg.ForecastWindowDays) {
			continue
		}
		incoming = append(incoming, domain.ForecastInflow{
			Client:  r.Client,
			Project: r.Project,
			Amount:  r.Remaining,
			Date:    r.DueDate,
		})
		totalIn = totalIn.Add(r.Remaining)
	}

	outgoing := make([]domain.ForecastOutflow, 0)
	totalOut := decimal.Zero
	for _, d := range debts {
		if !d.RemainingAmount.IsPositive() || !withinWindow(d.DueDate, now, cfg.ForecastWindowDays) {
			continue
		}
		outgoing = append(outgoing, domain.ForecastOutflow{
			Lender: d.LenderName,
			Amount: d.RemainingAmount,
			Date:   d.DueDate,
		})
		totalOut = totalOut.Add(d.RemainingAmount)
	}

	forecastBalance := balance.Add(totalIn).Sub(totalOut)

	status := domain.ForecastCaution
	switch {
	case forecastBalance.GreaterThan(cfg.ForecastSafeBalance):
		status = domain.ForecastSafe
	case forecastBalance.IsNegative():
		status = domain.ForecastAtRisk
	}

	return domain.Forecast{
		WindowDays:      cfg.ForecastWindowDays,
		CurrentBalance:  balance,
		Incoming:        incoming,
		Outgoing:        outgoing,
		TotalIncoming:   totalIn,
		TotalOutgoing:   totalOut,
		ForecastBalance: forecastBalance,
		Status:          status,
	}
}
