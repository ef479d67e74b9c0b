package approval

import (
	"fmt"
	"time"

	"talentflow-be/internal/entity"
	"talentflow-be/internal/pkg/apperror"
)

// Engine records outcomes on ordered approval chains. It is value-oriented:
// RecordStepOutcome returns a new chain and callers own persisting it back
// into the requisition or offer it belongs to. The engine knows nothing
// about the parent entity's own status.
type Engine struct {
	// StrictSequence enforces left-to-right gating: a step can only be
	// decided once every earlier step is Approved. Off by default to match
	// the historical permissive behavior, where any index may be written
	// at any time.
	StrictSequence bool

	now func() time.Time
}

func NewEngine(strictSequence bool) *Engine {
	return &Engine{
		StrictSequence: strictSequence,
		now:            time.Now,
	}
}

// RecordStepOutcome decides step idx of the chain. The acting identity must
// equal the step's designated approver (case-sensitive). Each step is its
// own 3-state machine: Pending may move to Approved or Rejected, and both
// of those are terminal.
func (e *Engine) RecordStepOutcome(chain []entity.ApprovalStep, idx int, outcome entity.ApprovalStatus, actingIdentity, notes string) ([]entity.ApprovalStep, error) {
	if idx < 0 || idx >= len(chain) {
		return nil, fmt.Errorf("%w: approval step %d", apperror.ErrNotFound, idx)
	}
	if outcome != entity.ApprovalStatusApproved && outcome != entity.ApprovalStatusRejected {
		return nil, fmt.Errorf("%w: outcome must be Approved or Rejected, got %q", apperror.ErrInvalidTransition, outcome)
	}

	step := chain[idx]
	if step.Approver != actingIdentity {
		return nil, fmt.Errorf("%w: step %d belongs to %q", apperror.ErrApprovalIdentityMismatch, idx, step.Approver)
	}
	if step.Status != entity.ApprovalStatusPending {
		return nil, fmt.Errorf("%w: step %d already %s", apperror.ErrInvalidTransition, idx, step.Status)
	}
	if e.StrictSequence {
		for i := 0; i < idx; i++ {
			if chain[i].Status != entity.ApprovalStatusApproved {
				return nil, fmt.Errorf("%w: step %d must be approved before step %d", apperror.ErrInvalidTransition, i, idx)
			}
		}
	}

	next := entity.CloneChain(chain)
	ts := e.now()
	next[idx].Status = outcome
	next[idx].Timestamp = &ts
	next[idx].Notes = notes
	return next, nil
}

// IsFullyApproved reports whether every step of the chain is Approved.
// An empty chain counts as fully approved: nothing is left to decide.
func IsFullyApproved(chain []entity.ApprovalStep) bool {
	for _, step := range chain {
		if step.Status != entity.ApprovalStatusApproved {
			return false
		}
	}
	return true
}

// HasRejection reports whether any step of the chain is Rejected.
func HasRejection(chain []entity.ApprovalStep) bool {
	for _, step := range chain {
		if step.Status == entity.ApprovalStatusRejected {
			return true
		}
	}
	return false
}

// IsPending reports whether at least one step still awaits a decision.
func IsPending(chain []entity.ApprovalStep) bool {
	for _, step := range chain {
		if step.Status == entity.ApprovalStatusPending {
			return true
		}
	}
	return false
}
