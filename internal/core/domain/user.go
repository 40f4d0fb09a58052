package domain

// User represents an account owner. Every project, transaction and debt
// belongs to exactly one user; aggregation never crosses user boundaries.
type User struct {
	UserID       string `json:"user_id"` // Primary Key (UUID)
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // bcrypt hash, never serialized
	AuditFields
}
