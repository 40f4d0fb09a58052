package engine_test

import (
	"testing"

	"github.com/finoraid/finora_backend/internal/core/domain"
	"github.com/finoraid/finora_backend/internal/core/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary(t *testing.T) {
	transactions := []domain.Transaction{
		{Date: "2025-08-01", Type: domain.Income, Amount: money(3_000_000)},
		{Date: "2025-08-10", Type: domain.Expense, Amount: money(800_000)},
		{Date: "2025-07-20", Type: domain.Income, Amount: money(4_000_000)},
		{Date: "2025-06-05", Type: domain.Expense, Amount: money(500_000)},
	}

	s := engine.Summary(transactions, testNow)

	assert.True(t, s.TotalIncome.Equal(money(7_000_000)))
	assert.True(t, s.TotalExpense.Equal(money(1_300_000)))
	assert.True(t, s.Balance.Equal(money(5_700_000)))
	assert.True(t, s.MonthlyIncome.Equal(money(3_000_000)))
	assert.True(t, s.MonthlyExpense.Equal(money(800_000)))
	assert.True(t, s.MonthlyProfit.Equal(money(2_200_000)))
}

func TestSummary_Empty(t *testing.T) {
	s := engine.Summary(nil, testNow)

	assert.True(t, s.Balance.IsZero())
	assert.True(t, s.TotalIncome.IsZero())
	assert.True(t, s.TotalExpense.IsZero())
	assert.True(t, s.MonthlyProfit.IsZero())
}

func TestCashflow_TrailingFiveMonths(t *testing.T) {
	transactions := []domain.Transaction{
		{Date: "2025-04-10", Type: domain.Income, Amount: money(1_000_000)},
		{Date: "2025-06-15", Type: domain.Expense, Amount: money(400_000)},
		{Date: "2025-08-01", Type: domain.Income, Amount: money(2_000_000)},
		// Outside the window: ignored.
		{Date: "2025-03-31", Type: domain.Income, Amount: money(9_000_000)},
	}

	series := engine.Cashflow(transactions, testNow)
	require.Len(t, series, 5)

	labels := make([]string, 0, len(series))
	for _, m := range series {
		labels = append(labels, m.Month)
	}
	assert.Equal(t, []string{"Apr", "Mei", "Jun", "Jul", "Agu"}, labels)

	assert.True(t, series[0].In.Equal(money(1_000_000)))
	assert.True(t, series[2].Out.Equal(money(400_000)))
	assert.True(t, series[4].In.Equal(money(2_000_000)))
	// July saw no activity but still gets a zero bucket.
	assert.True(t, series[3].In.IsZero())
	assert.True(t, series[3].Out.IsZero())
}

func TestCashflow_YearBoundary(t *testing.T) {
	feb := testNow.AddDate(0, -6, 0) // 2025-02-15

	series := engine.Cashflow(nil, feb)
	require.Len(t, series, 5)

	labels := make([]string, 0, len(series))
	for _, m := range series {
		labels = append(labels, m.Month)
	}
	assert.Equal(t, []string{"Okt", "Nov", "Des", "Jan", "Feb"}, labels)
}

func TestProfitPerMonth(t *testing.T) {
	transactions := []domain.Transaction{
		{Date: "2025-08-01", Type: domain.Income, Amount: money(2_000_000)},
		{Date: "2025-08-05", Type: domain.Expense, Amount: money(500_000)},
	}

	series := engine.ProfitPerMonth(transactions, testNow)
	require.Len(t, series, 5)

	assert.Equal(t, "Agu", series[4].Label)
	assert.True(t, series[4].Profit.Equal(money(1_500_000)))
	assert.True(t, series[0].Profit.IsZero())
}

func TestReceivables_ExcludesPaidProjects(t *testing.T) {
	projects := engine.EnrichProjects([]domain.Project{
		{ProjectID: "p1", UserID: "u", ClientName: "Budi", ProjectName: "Wedding", ContractValue: money(10_000_000), PaymentDeadline: "2025-08-20"},
		{ProjectID: "p2", UserID: "u", ClientName: "Sari", ProjectName: "Prewedding", ContractValue: money(4_000_000)},
	}, []domain.Transaction{
		{TransactionID: "t1", UserID: "u", Date: "2025-08-01", Type: domain.Income, ProjectID: "p1", Amount: money(3_000_000)},
		{TransactionID: "t2", UserID: "u", Date: "2025-08-02", Type: domain.Income, ProjectID: "p2", Amount: money(4_000_000)},
	}, testNow)

	receivables := engine.Receivables(projects)
	require.Len(t, receivables, 1)

	r := receivables[0]
	assert.Equal(t, "Budi", r.Client)
	assert.True(t, r.Remaining.Equal(money(7_000_000)))
	assert.Equal(t, "2025-08-20", r.DueDate)
	assert.Equal(t, domain.PaymentStatusDownPayment, r.Status)
}

func TestExpenseByCategory(t *testing.T) {
	transactions := []domain.Transaction{
		{Date: "2025-08-01", Type: domain.Expense, Category: "Crew", Amount: money(500_000)},
		{Date: "2025-08-02", Type: domain.Expense, Category: "Crew", Amount: money(300_000)},
		{Date: "2025-08-03", Type: domain.Expense, Category: "Transport", Amount: money(100_000)},
		{Date: "2025-08-04", Type: domain.Expense, Amount: money(50_000)}, // no category
		// Income never shows up in the expense breakdown.
		{Date: "2025-08-05", Type: domain.Income, Category: "DP", Amount: money(9_000_000)},
	}

	grouped := engine.ExpenseByCategory(transactions)
	require.Len(t, grouped, 3)

	assert.Equal(t, "Crew", grouped[0].Category)
	assert.True(t, grouped[0].Amount.Equal(money(800_000)))
	assert.Equal(t, "Transport", grouped[1].Category)
	assert.True(t, grouped[1].Amount.Equal(money(100_000)))
	assert.Equal(t, domain.CategoryFallback, grouped[2].Category)
}

func TestExpenseByCategory_CapsAtFive(t *testing.T) {
	transactions := make([]domain.Transaction, 0, 7)
	for i, category := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		transactions = append(transactions, domain.Transaction{
			Date:     "2025-08-01",
			Type:     domain.Expense,
			Category: category,
			Amount:   money(int64(700_000 - i*100_000)),
		})
	}

	grouped := engine.ExpenseByCategory(transactions)
	require.Len(t, grouped, 5)
	assert.Equal(t, "A", grouped[0].Category)
	assert.Equal(t, "E", grouped[4].Category)
}

func TestTopProjects_CapsAtThree(t *testing.T) {
	projects := make([]domain.EnrichedProject, 0, 4)
	for i, name := range []string{"P1", "P2", "P3", "P4"} {
		projects = append(projects, domain.EnrichedProject{
			Project: domain.Project{ProjectName: name},
			Profit:  money(int64((i + 1) * 1_000_000)),
		})
	}

	top := engine.TopProjects(projects)
	require.Len(t, top, 3)
	assert.Equal(t, "P4", top[0].Project)
	assert.Equal(t, "P3", top[1].Project)
	assert.Equal(t, "P2", top[2].Project)
}

func TestCountOverdue(t *testing.T) {
	projects := engine.EnrichProjects([]domain.Project{
		{ProjectID: "p1", UserID: "u", ContractValue: money(10_000_000), PaymentDeadline: "2025-08-01"}, // past due, unpaid
		{ProjectID: "p2", UserID: "u", ContractValue: money(5_000_000), PaymentDeadline: "2025-09-01"},  // future
	}, nil, testNow)
	debts := engine.DeriveDebts([]domain.Debt{
		{DebtID: "d1", UserID: "u", TotalAmount: money(2_000_000), DueDate: "2025-08-01"},
		{DebtID: "d2", UserID: "u", TotalAmount: money(2_000_000), PaidAmount: money(2_000_000), DueDate: "2025-08-01"}, // settled
	}, testNow)

	counts := engine.CountOverdue(projects, debts, testNow)

	assert.Equal(t, 1, counts.Clients)
	assert.Equal(t, 1, counts.Debts)
	assert.Equal(t, 2, counts.Total)
}
