package engine_test

import (
	"fmt"
	"testing"

	"github.com/finoraid/finora_backend/internal/core/domain"
	"github.com/finoraid/finora_backend/internal/core/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unpaidProject(id, deadline string) []domain.EnrichedProject {
	return engine.EnrichProjects([]domain.Project{
		{ProjectID: id, UserID: "u", ClientName: "Budi", ProjectName: "Wedding", ContractValue: money(10_000_000), PaymentDeadline: deadline},
	}, nil, testNow)
}

func TestReminders_Classification(t *testing.T) {
	tests := []struct {
		name       string
		deadline   string
		wantStatus domain.ReminderStatus
		wantShown  bool
	}{
		{"overdue yesterday", "2025-08-14", domain.ReminderOverdue, true},
		{"due today", "2025-08-15", domain.ReminderDueSoon, true},
		{"due in three days", "2025-08-18", domain.ReminderDueSoon, true},
		{"due in ten days is normal", "2025-08-25", domain.ReminderNormal, false},
		{"missing deadline is normal", "", domain.ReminderNormal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := engine.Reminders(unpaidProject("p1", tt.deadline), nil, testNow, nil)

			if !tt.wantShown {
				assert.Empty(t, items)
				return
			}
			require.Len(t, items, 1)
			assert.Equal(t, "rem-client-p1", items[0].ReminderID)
			assert.Equal(t, domain.ReminderClient, items[0].Type)
			assert.Equal(t, tt.wantStatus, items[0].Status)
			require.NotNil(t, items[0].Amount)
			assert.True(t, items[0].Amount.Equal(money(10_000_000)))
		})
	}
}

func TestReminders_DebtStream(t *testing.T) {
	debts := engine.DeriveDebts([]domain.Debt{
		{DebtID: "d1", UserID: "u", LenderName: "Bank ABC", Category: "Modal Project", TotalAmount: money(5_000_000), DueDate: "2025-08-16"},
		// Settled debt never reminds.
		{DebtID: "d2", UserID: "u", LenderName: "Paid", TotalAmount: money(1_000_000), PaidAmount: money(1_000_000), DueDate: "2025-08-16"},
	}, testNow)

	items := engine.Reminders(nil, debts, testNow, nil)

	require.Len(t, items, 1)
	assert.Equal(t, "rem-debt-d1", items[0].ReminderID)
	assert.Equal(t, domain.ReminderDebt, items[0].Type)
	assert.Equal(t, "Bank ABC", items[0].Title)
	assert.Equal(t, "Modal Project", items[0].Subtitle)
}

func TestReminders_ProjectEventStream(t *testing.T) {
	projects := engine.EnrichProjects([]domain.Project{
		// Fully unpaid but with no payment deadline: only the event
		// reminder can surface.
		{ProjectID: "p1", UserID: "u", ClientName: "Budi", ProjectName: "Wedding", ContractValue: money(10_000_000), ProjectDate: "2025-08-16"},
	}, nil, testNow)

	items := engine.Reminders(projects, nil, testNow, nil)

	require.Len(t, items, 1)
	assert.Equal(t, "rem-project-p1", items[0].ReminderID)
	assert.Equal(t, domain.ReminderProject, items[0].Type)
	assert.Nil(t, items[0].Amount)
}

func TestReminders_SortedByUrgency(t *testing.T) {
	projects := engine.EnrichProjects([]domain.Project{
		{ProjectID: "soon", UserID: "u", ContractValue: money(1), PaymentDeadline: "2025-08-17"},
		{ProjectID: "late", UserID: "u", ContractValue: money(1), PaymentDeadline: "2025-08-10"},
		{ProjectID: "today", UserID: "u", ContractValue: money(1), PaymentDeadline: "2025-08-15"},
	}, nil, testNow)

	items := engine.Reminders(projects, nil, testNow, nil)

	require.Len(t, items, 3)
	assert.Equal(t, "rem-client-late", items[0].ReminderID)
	assert.Equal(t, "rem-client-today", items[1].ReminderID)
	assert.Equal(t, "rem-client-soon", items[2].ReminderID)
}

func TestReminders_CapsAtFive(t *testing.T) {
	projects := make([]domain.Project, 0, 7)
	for i := 0; i < 7; i++ {
		projects = append(projects, domain.Project{
			ProjectID:       fmt.Sprintf("p%d", i),
			UserID:          "u",
			ContractValue:   money(1_000_000),
			PaymentDeadline: "2025-08-15",
		})
	}

	items := engine.Reminders(engine.EnrichProjects(projects, nil, testNow), nil, testNow, nil)
	assert.Len(t, items, 5)
}

func TestReminders_Snooze(t *testing.T) {
	projects := unpaidProject("p1", "2025-08-14")

	// Snoozed through today: hidden.
	items := engine.Reminders(projects, nil, testNow, domain.SnoozeMap{"rem-client-p1": "2025-08-15"})
	assert.Empty(t, items)

	// Snoozed into the future: hidden.
	items = engine.Reminders(projects, nil, testNow, domain.SnoozeMap{"rem-client-p1": "2025-08-20"})
	assert.Empty(t, items)

	// Snooze expired yesterday: the reminder surfaces again.
	items = engine.Reminders(projects, nil, testNow, domain.SnoozeMap{"rem-client-p1": "2025-08-14"})
	require.Len(t, items, 1)
	assert.Equal(t, "rem-client-p1", items[0].ReminderID)

	// Snoozing one reminder never hides the others.
	debts := engine.DeriveDebts([]domain.Debt{
		{DebtID: "d1", UserID: "u", LenderName: "Bank", TotalAmount: money(1_000_000), DueDate: "2025-08-14"},
	}, testNow)
	items = engine.Reminders(projects, debts, testNow, domain.SnoozeMap{"rem-client-p1": "2025-08-20"})
	require.Len(t, items, 1)
	assert.Equal(t, "rem-debt-d1", items[0].ReminderID)
}
