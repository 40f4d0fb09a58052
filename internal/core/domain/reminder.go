package domain

import "github.com/shopspring/decimal"

// ReminderType identifies the source stream a reminder came from.
type ReminderType string

const (
	ReminderClient  ReminderType = "Client"  // project payment deadline
	ReminderDebt    ReminderType = "Hutang"  // debt due date
	ReminderProject ReminderType = "Project" // project event date
)

// ReminderStatus classifies a reminder by how close its date is.
type ReminderStatus string

const (
	ReminderNormal  ReminderStatus = "Normal"
	ReminderDueSoon ReminderStatus = "Due Soon"
	ReminderOverdue ReminderStatus = "Overdue"
)

// ReminderItem is a purely derived alert; it is never persisted. Amount is
// nil for event reminders, which carry no money.
type ReminderItem struct {
	ReminderID string           `json:"reminder_id"` // Stable per source record, e.g. "rem-client-<id>"
	Type       ReminderType     `json:"type"`
	Title      string           `json:"title"`
	Subtitle   string           `json:"subtitle"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	Date       string           `json:"date"`
	Days       *int             `json:"days,omitempty"` // nil when the date is missing/invalid
	Status     ReminderStatus   `json:"status"`
}

// ReminderSnooze suppresses one reminder until (and including) a date. It
// never touches the underlying project or debt; once SnoozedUntil has
// passed the reminder surfaces again.
type ReminderSnooze struct {
	UserID       string `json:"user_id"`
	ReminderID   string `json:"reminder_id"`
	SnoozedUntil string `json:"snoozed_until"` // ISO date
	AuditFields
}

// SnoozeMap indexes active snoozes by reminder id for the engine.
type SnoozeMap map[string]string
