package domain

import "time"

// DateLayout is the wire format for all calendar dates in the system.
// Dates are stored and exchanged as plain ISO strings; parsing is always
// defensive (see the engine package), an invalid date never aborts a
// derivation.
const DateLayout = "2006-01-02"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"created_at"`
	CreatedBy     string    `json:"created_by"` // UserID Reference
	LastUpdatedAt time.Time `json:"last_updated_at"`
	LastUpdatedBy string    `json:"last_updated_by"` // UserID Reference
}
