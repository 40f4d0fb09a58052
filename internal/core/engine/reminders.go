package engine

import (
	"sort"
	"time"

	"github.com/finoraid/finora_backend/internal/core/domain"
)

const (
	dueSoonDays      = 3
	maxReminderItems = 5

	// Reminders without a date sort after everything with one.
	missingDateOrder = 9999
)

// reminderStatus classifies by the day distance; a nil distance (missing
// or invalid date) is Normal and therefore never surfaces.
func reminderStatus(days *int) domain.ReminderStatus {
	if days == nil {
		return domain.ReminderNormal
	}
	if *days < 0 {
		return domain.ReminderOverdue
	}
	if *days <= dueSoonDays {
		return domain.ReminderDueSoon
	}
	return domain.ReminderNormal
}

// Reminders builds the alert list from three streams: unpaid project
// deadlines, open debt due dates and upcoming project event dates. Normal
// items are dropped, snoozed items stay hidden until their snooze date has
// passed, and the result is capped at the five most urgent entries.
//
// Snoozing is purely a suppression map from reminder id to an ISO date; it
// never mutates the underlying project or debt.
func Reminders(projects []domain.EnrichedProject, debts []domain.DerivedDebt, now time.Time, snoozes domain.SnoozeMap) []domain.ReminderItem {
	items := make([]domain.ReminderItem, 0)

	for _, p := range projects {
		if !p.RemainingPayment.IsPositive() {
			continue
		}
		days := daysUntil(p.PaymentDeadline, now)
		amount := p.RemainingPayment
		items = append(items, domain.ReminderItem{
			ReminderID: "rem-client-" + p.ProjectID,
			Type:       domain.ReminderClient,
			Title:      p.ClientName,
			Subtitle:   p.ProjectName,
			Amount:     &amount,
			Date:       p.PaymentDeadline,
			Days:       days,
			Status:     reminderStatus(days),
		})
	}

	for _, d := range debts {
		if !d.RemainingAmount.IsPositive() {
			continue
		}
		days := daysUntil(d.DueDate, now)
		amount := d.RemainingAmount
		items = append(items, domain.ReminderItem{
			ReminderID: "rem-debt-" + d.DebtID,
			Type:       domain.ReminderDebt,
			Title:      d.LenderName,
			Subtitle:   d.Category,
			Amount:     &amount,
			Date:       d.DueDate,
			Days:       days,
			Status:     reminderStatus(days),
		})
	}

	for _, p := range projects {
		days := daysUntil(p.ProjectDate, now)
		items = append(items, domain.ReminderItem{
			ReminderID: "rem-project-" + p.ProjectID,
			Type:       domain.ReminderProject,
			Title:      p.ProjectName,
			Subtitle:   p.ClientName,
			Amount:     nil,
			Date:       p.ProjectDate,
			Days:       days,
			Status:     reminderStatus(days),
		})
	}

	todayKey := now.Format(domain.DateLayout)
	visible := items[:0]
	for _, item := range items {
		if item.Status == domain.ReminderNormal {
			continue
		}
		if until, ok := snoozes[item.ReminderID]; ok && until >= todayKey {
			continue
		}
		visible = append(visible, item)
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return reminderOrder(visible[i]) < reminderOrder(visible[j])
	})

	if len(visible) > maxReminderItems {
		visible = visible[:maxReminderItems]
	}
	return visible
}

func reminderOrder(item domain.ReminderItem) int {
	if item.Days == nil {
		return missingDateOrder
	}
	return *item.Days
}
