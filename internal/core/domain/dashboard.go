package domain

import "github.com/shopspring/decimal"

// Summary holds the headline figures for the dashboard: all-time balance
// plus the current calendar month's income, expense and profit.
type Summary struct {
	Balance        decimal.Decimal `json:"balance"`
	TotalIncome    decimal.Decimal `json:"total_income"`
	TotalExpense   decimal.Decimal `json:"total_expense"`
	MonthlyIncome  decimal.Decimal `json:"monthly_income"`
	MonthlyExpense decimal.Decimal `json:"monthly_expense"`
	MonthlyProfit  decimal.Decimal `json:"monthly_profit"`
}

// CashflowMonth is one bucket of the trailing cashflow series.
type CashflowMonth struct {
	Month string          `json:"month"` // Localized short label, e.g. "Agu"
	In    decimal.Decimal `json:"in"`
	Out   decimal.Decimal `json:"out"`
}

// MonthProfit is one bucket of the trailing profit series used by the
// analytics chart.
type MonthProfit struct {
	Label  string          `json:"label"`
	Profit decimal.Decimal `json:"profit"`
}

// Receivable is an unpaid (or partially paid) project viewed as money the
// business is owed.
type Receivable struct {
	Client    string          `json:"client"`
	Project   string          `json:"project"`
	Total     decimal.Decimal `json:"total"`
	Paid      decimal.Decimal `json:"paid"`
	Remaining decimal.Decimal `json:"remaining"`
	DueDate   string          `json:"due_date"`
	Status    PaymentStatus   `json:"status"`
}

// DebtTotals aggregates all debts of a user.
type DebtTotals struct {
	Total            decimal.Decimal `json:"total"`
	Remaining        decimal.Decimal `json:"remaining"`
	OverdueRemaining decimal.Decimal `json:"overdue_remaining"`
}

// CategoryAmount is an amount aggregated under one expense category.
type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// ProjectProfit pairs a project name with its derived profit.
type ProjectProfit struct {
	Project string          `json:"project"`
	Profit  decimal.Decimal `json:"profit"`
}

// ForecastStatus classifies the projected liquidity position.
type ForecastStatus string

const (
	ForecastSafe    ForecastStatus = "Aman"
	ForecastCaution ForecastStatus = "Waspada"
	ForecastAtRisk  ForecastStatus = "Risiko Minus"
)

// ForecastInflow is one receivable expected inside the forecast window.
type ForecastInflow struct {
	Client  string          `json:"client"`
	Project string          `json:"project"`
	Amount  decimal.Decimal `json:"amount"`
	Date    string          `json:"date"`
}

// ForecastOutflow is one debt payment due inside the forecast window.
type ForecastOutflow struct {
	Lender string          `json:"lender"`
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date"`
}

// Forecast projects the balance over the configured window.
type Forecast struct {
	WindowDays      int               `json:"window_days"`
	CurrentBalance  decimal.Decimal   `json:"current_balance"`
	Incoming        []ForecastInflow  `json:"incoming"`
	Outgoing        []ForecastOutflow `json:"outgoing"`
	TotalIncoming   decimal.Decimal   `json:"total_incoming"`
	TotalOutgoing   decimal.Decimal   `json:"total_outgoing"`
	ForecastBalance decimal.Decimal   `json:"forecast_balance"`
	Status          ForecastStatus    `json:"status"`
}

// OverdueCounts backs the alert badge: how many receivables and debts are
// past due right now.
type OverdueCounts struct {
	Clients int `json:"clients"`
	Debts   int `json:"debts"`
	Total   int `json:"total"`
}

// Dashboard is the full derived view for one user, recomputed from the raw
// records on every read.
type Dashboard struct {
	Summary           Summary           `json:"summary"`
	Cashflow          []CashflowMonth   `json:"cashflow"`
	ProfitPerMonth    []MonthProfit     `json:"profit_per_month"`
	Projects          []EnrichedProject `json:"projects"`
	Receivables       []Receivable      `json:"receivables"`
	Debts             []DerivedDebt     `json:"debts"`
	DebtTotals        DebtTotals        `json:"debt_totals"`
	ExpenseByCategory []CategoryAmount  `json:"expense_by_category"`
	TopProjects       []ProjectProfit   `json:"top_projects"`
	Forecast          Forecast          `json:"forecast"`
	Reminders         []ReminderItem    `json:"reminders"`
	OverdueCounts     OverdueCounts     `json:"overdue_counts"`
}
