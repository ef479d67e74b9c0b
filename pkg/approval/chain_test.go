package approval

import (
	"errors"
	"testing"
	"time"

	"talentflow-be/internal/entity"
	"talentflow-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeStepChain() []entity.ApprovalStep {
	return []entity.ApprovalStep{
		{Stage: "HR Approval", Approver: "Alex Rivera", Status: entity.ApprovalStatusPending},
		{Stage: "Finance Approval", Approver: "Jordan Lee", Status: entity.ApprovalStatusPending},
		{Stage: "VP Approval", Approver: "Morgan Patel", Status: entity.ApprovalStatusPending},
	}
}

func TestRecordStepOutcome(t *testing.T) {
	e := NewEngine(false)
	chain := threeStepChain()

	next, err := e.RecordStepOutcome(chain, 0, entity.ApprovalStatusApproved, "Alex Rivera", "looks good")
	require.NoError(t, err)

	assert.Equal(t, entity.ApprovalStatusApproved, next[0].Status)
	assert.NotNil(t, next[0].Timestamp)
	assert.Equal(t, "looks good", next[0].Notes)

	// value-oriented: the input chain is untouched
	assert.Equal(t, entity.ApprovalStatusPending, chain[0].Status)
}

func TestApprovalIndependence(t *testing.T) {
	e := NewEngine(false)
	chain := threeStepChain()

	next, err := e.RecordStepOutcome(chain, 1, entity.ApprovalStatusRejected, "Jordan Lee", "over budget")
	require.NoError(t, err)

	assert.Equal(t, entity.ApprovalStatusPending, next[0].Status)
	assert.Equal(t, entity.ApprovalStatusRejected, next[1].Status)
	assert.Equal(t, entity.ApprovalStatusPending, next[2].Status)

	assert.False(t, IsFullyApproved(next))
	assert.True(t, HasRejection(next))
	assert.True(t, IsPending(next))
}

func TestIdentityMismatch(t *testing.T) {
	e := NewEngine(false)
	chain := threeStepChain()

	_, err := e.RecordStepOutcome(chain, 0, entity.ApprovalStatusApproved, "Jordan Lee", "")
	assert.True(t, errors.Is(err, apperror.ErrApprovalIdentityMismatch))

	// matching is case-sensitive
	_, err = e.RecordStepOutcome(chain, 0, entity.ApprovalStatusApproved, "alex rivera", "")
	assert.True(t, errors.Is(err, apperror.ErrApprovalIdentityMismatch))
}

func TestDecidedStepsAreTerminal(t *testing.T) {
	e := NewEngine(false)
	chain := threeStepChain()

	next, err := e.RecordStepOutcome(chain, 0, entity.ApprovalStatusApproved, "Alex Rivera", "")
	require.NoError(t, err)

	_, err = e.RecordStepOutcome(next, 0, entity.ApprovalStatusRejected, "Alex Rivera", "changed my mind")
	assert.True(t, errors.Is(err, apperror.ErrInvalidTransition))
}

func TestOutcomeMustBeDecision(t *testing.T) {
	e := NewEngine(false)
	_, err := e.RecordStepOutcome(threeStepChain(), 0, entity.ApprovalStatusPending, "Alex Rivera", "")
	assert.True(t, errors.Is(err, apperror.ErrInvalidTransition))
}

func TestStepIndexOutOfRange(t *testing.T) {
	e := NewEngine(false)
	_, err := e.RecordStepOutcome(threeStepChain(), 5, entity.ApprovalStatusApproved, "Alex Rivera", "")
	assert.True(t, errors.Is(err, apperror.ErrNotFound))

	_, err = e.RecordStepOutcome(threeStepChain(), -1, entity.ApprovalStatusApproved, "Alex Rivera", "")
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestPermissiveModeAllowsOutOfOrder(t *testing.T) {
	e := NewEngine(false)
	chain := threeStepChain()

	next, err := e.RecordStepOutcome(chain, 2, entity.ApprovalStatusApproved, "Morgan Patel", "")
	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalStatusApproved, next[2].Status)
	assert.Equal(t, entity.ApprovalStatusPending, next[0].Status)
}

func TestStrictSequenceGating(t *testing.T) {
	e := NewEngine(true)
	chain := threeStepChain()

	_, err := e.RecordStepOutcome(chain, 1, entity.ApprovalStatusApproved, "Jordan Lee", "")
	require.True(t, errors.Is(err, apperror.ErrInvalidTransition))

	next, err := e.RecordStepOutcome(chain, 0, entity.ApprovalStatusApproved, "Alex Rivera", "")
	require.NoError(t, err)

	next, err = e.RecordStepOutcome(next, 1, entity.ApprovalStatusApproved, "Jordan Lee", "")
	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalStatusApproved, next[1].Status)
}

func TestFullApprovalScenario(t *testing.T) {
	e := NewEngine(false)
	chain := []entity.ApprovalStep{
		{Stage: "Compensation Approval", Approver: "Alex Rivera", Status: entity.ApprovalStatusPending},
		{Stage: "Executive Approval", Approver: "Jordan Lee", Status: entity.ApprovalStatusPending},
	}

	next, err := e.RecordStepOutcome(chain, 0, entity.ApprovalStatusApproved, "Alex Rivera", "")
	require.NoError(t, err)
	assert.False(t, IsFullyApproved(next))

	next, err = e.RecordStepOutcome(next, 1, entity.ApprovalStatusApproved, "Jordan Lee", "")
	require.NoError(t, err)
	assert.True(t, IsFullyApproved(next))
	assert.False(t, HasRejection(next))
	assert.False(t, IsPending(next))
}

func TestTimestampUsesClock(t *testing.T) {
	e := NewEngine(false)
	fixed := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	e.now = func() time.Time { return fixed }

	next, err := e.RecordStepOutcome(threeStepChain(), 0, entity.ApprovalStatusApproved, "Alex Rivera", "")
	require.NoError(t, err)
	assert.Equal(t, fixed, *next[0].Timestamp)
}
