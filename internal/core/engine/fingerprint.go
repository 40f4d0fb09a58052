package engine

import (
	"fmt"
	"hash/fnv"
	"io"
)

// Fingerprint produces a content hash of a snapshot. Two snapshots with
// the same fingerprint derive the same dashboard at the same "now", which
// lets callers memoize the recompute-on-read derivation without risking
// stale derived state.
func (s Snapshot) Fingerprint() string {
	h := fnv.New64a()
	io.WriteString(h, s.UserID)

	for _, p := range s.Projects {
		fmt.Fprintf(h, "|p:%s:%s:%s:%s:%d", p.ProjectID, p.ContractValue.String(), p.ProjectDate, p.PaymentDeadline, p.LastUpdatedAt.UnixNano())
	}
	for _, t := range s.Transactions {
		fmt.Fprintf(h, "|t:%s:%s:%s:%s:%s:%d", t.TransactionID, t.Type, t.Amount.String(), t.Date, t.ProjectID, t.LastUpdatedAt.UnixNano())
	}
	for _, d := range s.Debts {
		fmt.Fprintf(h, "|d:%s:%s:%s:%s:%d:%d", d.DebtID, d.TotalAmount.String(), d.PaidAmount.String(), d.DueDate, len(d.Payments), d.LastUpdatedAt.UnixNano())
	}

	return fmt.Sprintf("%016x", h.Sum64())
}
