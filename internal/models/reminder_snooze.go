package models

// ReminderSnooze is the persistence shape of a reminder suppression. One
// row per (user, reminder id); upserts replace the snooze date.
type ReminderSnooze struct {
	UserID       string `json:"userID"`
	ReminderID   string `json:"reminderID"`
	SnoozedUntil string `json:"snoozedUntil"`
	AuditFields
}
