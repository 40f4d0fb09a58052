package engine

import (
	"sort"
	"strings"
	"time"

	"github.com/finoraid/finora_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	cashflowMonths   = 5
	topCategoryCount = 5
	topProjectCount  = 3
)

// Summary partitions the transactions into the current calendar month and
// all time and sums each side by type.
func Summary(transactions []domain.Transaction, now time.Time) domain.Summary {
	currentMonth := monthKey(now)

	s := domain.Summary{
		Balance:        decimal.Zero,
		TotalIncome:    decimal.Zero,
		TotalExpense:   decimal.Zero,
		MonthlyIncome:  decimal.Zero,
		MonthlyExpense: decimal.Zero,
		MonthlyProfit:  decimal.Zero,
	}

	for _, t := range transactions {
		inMonth := strings.HasPrefix(t.Date, currentMonth)
		switch t.Type {
		case domain.Income:
			s.TotalIncome = s.TotalIncome.Add(t.Amount)
			if inMonth {
				s.MonthlyIncome = s.MonthlyIncome.Add(t.Amount)
			}
		case domain.Expense:
			s.TotalExpense = s.TotalExpense.Add(t.Amount)
			if inMonth {
				s.MonthlyExpense = s.MonthlyExpense.Add(t.Amount)
			}
		}
	}

	s.Balance = s.TotalIncome.Sub(s.TotalExpense)
	s.MonthlyProfit = s.MonthlyIncome.Sub(s.MonthlyExpense)
	return s
}

// Cashflow buckets transactions into the trailing five calendar months,
// oldest first and including the current month.
func Cashflow(transactions []domain.Transaction, now time.Time) []domain.CashflowMonth {
	series := make([]domain.CashflowMonth, 0, cashflowMonths)
	for i := cashflowMonths - 1; i >= 0; i-- {
		month := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		key := monthKey(month)

		in := decimal.Zero
		out := decimal.Zero
		for _, t := range transactions {
			if !strings.HasPrefix(t.Date, key) {
				continue
			}
			switch t.Type {
			case domain.Income:
				in = in.Add(t.Amount)
			case domain.Expense:
				out = out.Add(t.Amount)
			}
		}
		series = append(series, domain.CashflowMonth{Month: monthLabel(month), In: in, Out: out})
	}
	return series
}

// ProfitPerMonth renders the trailing five months as a profit series for
// the analytics chart.
func ProfitPerMonth(transactions []domain.Transaction, now time.Time) []domain.MonthProfit {
	series := make([]domain.MonthProfit, 0, cashflowMonths)
	for _, month := range Cashflow(transactions, now) {
		series = append(series, domain.MonthProfit{
			Label:  month.Month,
			Profit: month.In.Sub(month.Out),
		})
	}
	return series
}

// Receivables maps every not-fully-paid project onto a receivable row.
func Receivables(projects []domain.EnrichedProject) []domain.Receivable {
	receivables := make([]domain.Receivable, 0)
	for _, p := range projects {
		if p.PaymentStatus == domain.PaymentStatusPaid {
			continue
		}
		receivables = append(receivables, domain.Receivable{
			Client:    p.ClientName,
			Project:   p.ProjectName,
			Total:     p.ContractValue,
			Paid:      p.TotalPaid,
			Remaining: p.RemainingPayment,
			DueDate:   p.PaymentDeadline,
			Status:    p.PaymentStatus,
		})
	}
	return receivables
}

// ExpenseByCategory groups all-time expense transactions by category and
// returns the five largest groups, biggest first. Transactions without a
// category fall into the "Lainnya" bucket.
func ExpenseByCategory(transactions []domain.Transaction) []domain.CategoryAmount {
	sums := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		if t.Type != domain.Expense {
			continue
		}
		category := t.Category
		if category == "" {
			category = domain.CategoryFallback
		}
		sums[category] = sums[category].Add(t.Amount)
	}

	grouped := make([]domain.CategoryAmount, 0, len(sums))
	for category, amount := range sums {
		grouped = append(grouped, domain.CategoryAmount{Category: category, Amount: amount})
	}
	sort.SliceStable(grouped, func(i, j int) bool {
		return grouped[i].Amount.GreaterThan(grouped[j].Amount)
	})
	if len(grouped) > topCategoryCount {
		grouped = grouped[:topCategoryCount]
	}
	return grouped
}

// TopProjects returns the three most profitable projects, best first.
func TopProjects(projects []domain.EnrichedProject) []domain.ProjectProfit {
	ranked := make([]domain.ProjectProfit, 0, len(projects))
	for _, p := range projects {
		ranked = append(ranked, domain.ProjectProfit{Project: p.ProjectName, Profit: p.Profit})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Profit.GreaterThan(ranked[j].Profit)
	})
	if len(ranked) > topProjectCount {
		ranked = ranked[:topProjectCount]
	}
	return ranked
}

// CountOverdue counts projects past their payment deadline with money
// still owed and debts past due with a positive remaining amount. It backs
// the alert badge on the dashboard.
func CountOverdue(projects []domain.EnrichedProject, debts []domain.DerivedDebt, now time.Time) domain.OverdueCounts {
	counts := domain.OverdueCounts{}
	for _, p := range projects {
		if p.RemainingPayment.IsPositive() && dateBeforeToday(p.PaymentDeadline, now) {
			counts.Clients++
		}
	}
	for _, d := range debts {
		if d.RemainingAmount.IsPositive() && dateBeforeToday(d.DueDate, now) {
			counts.Debts++
		}
	}
	counts.Total = counts.Clients + counts.Debts
	return counts
}
