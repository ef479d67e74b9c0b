package entity

import "time"

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "Pending"
	ApprovalStatusApproved ApprovalStatus = "Approved"
	ApprovalStatusRejected ApprovalStatus = "Rejected"
)

// ApprovalStep is one link of an ordered approval chain attached to a
// requisition or an offer. Approver is a display name matched by equality,
// not a foreign key.
type ApprovalStep struct {
	Stage     string         `json:"stage"`
	Approver  string         `json:"approver"`
	Status    ApprovalStatus `json:"status"`
	Timestamp *time.Time     `json:"timestamp,omitempty"`
	Notes     string         `json:"notes,omitempty"`
}

// CloneChain returns an independent copy of a chain so callers never share
// backing arrays with stored state.
func CloneChain(chain []ApprovalStep) []ApprovalStep {
	if chain == nil {
		return nil
	}
	out := make([]ApprovalStep, len(chain))
	copy(out, chain)
	return out
}
