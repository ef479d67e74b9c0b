package evaluator

import (
	"testing"
	"time"

	"talentflow-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestScopeCreepDiff(t *testing.T) {
	tests := []struct {
		name        string
		req         *entity.JobRequisition
		wantAdded   []string
		wantRemoved []string
	}{
		{
			name: "drift both ways",
			req: &entity.JobRequisition{
				IsLocked:              true,
				InitialRequiredSkills: []string{"Go", "Postgres", "Kubernetes"},
				RequiredSkills:        []string{"Go", "Kubernetes", "Rust"},
			},
			wantAdded:   []string{"Rust"},
			wantRemoved: []string{"Postgres"},
		},
		{
			name: "order does not matter",
			req: &entity.JobRequisition{
				IsLocked:              true,
				InitialRequiredSkills: []string{"A", "B", "C"},
				RequiredSkills:        []string{"C", "B", "A"},
			},
			wantAdded:   []string{},
			wantRemoved: []string{},
		},
		{
			name: "unlocked requisition never flags",
			req: &entity.JobRequisition{
				IsLocked:              false,
				InitialRequiredSkills: []string{"A"},
				RequiredSkills:        []string{"B"},
			},
			wantAdded:   []string{},
			wantRemoved: []string{},
		},
		{
			name: "no frozen baseline",
			req: &entity.JobRequisition{
				IsLocked:       true,
				RequiredSkills: []string{"B"},
			},
			wantAdded:   []string{},
			wantRemoved: []string{},
		},
		{
			name:        "nil requisition",
			req:         nil,
			wantAdded:   []string{},
			wantRemoved: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff := ScopeCreepDiff(tt.req)
			assert.ElementsMatch(t, tt.wantAdded, diff.Added)
			assert.ElementsMatch(t, tt.wantRemoved, diff.Removed)
			assert.Equal(t, len(tt.wantAdded)+len(tt.wantRemoved) > 0, diff.HasDrift())
		})
	}
}

func TestVisibleRequisitions(t *testing.T) {
	reqs := []*entity.JobRequisition{
		{Id: 101, HiringManager: "Dana Cruz"},
		{Id: 202, HiringManager: "Kim Osei"},
		{Id: 303, HiringManager: "Dana Cruz"},
	}

	recruiter := entity.Identity{Name: "Sam Porter", Role: entity.RoleRecruiter}
	assert.Len(t, VisibleRequisitions(reqs, recruiter), 3)

	dana := entity.Identity{Name: "Dana Cruz", Role: entity.RoleHiringManager}
	visible := VisibleRequisitions(reqs, dana)
	assert.Len(t, visible, 2)
	assert.Equal(t, 101, visible[0].Id)
	assert.Equal(t, 303, visible[1].Id)

	stranger := entity.Identity{Name: "Nobody", Role: entity.RoleHiringManager}
	assert.Empty(t, VisibleRequisitions(reqs, stranger))
}

func TestVisibleCandidates(t *testing.T) {
	candidates := []*entity.Candidate{
		{Id: 1, Name: "Ada"},
		{Id: 2, Name: "Grace"},
		{Id: 3, Name: "Linus"},
	}
	reqs := []*entity.JobRequisition{{Id: 101, HiringManager: "Dana Cruz"}}

	board := entity.NewBoard()
	board[entity.StagePhoneScreen] = []int{1}
	board[entity.StageOffer] = []int{3, 42} // 42 is a dangling reference
	boards := map[int]entity.Board{101: board}

	dana := entity.Identity{Name: "Dana Cruz", Role: entity.RoleHiringManager}
	visible := VisibleCandidates(candidates, dana, boards, reqs)
	assert.Len(t, visible, 2)
	assert.Equal(t, "Ada", visible[0].Name)
	assert.Equal(t, "Linus", visible[1].Name)

	// a manager with no boards sees nobody, never the full pool
	nobody := VisibleCandidates(candidates, dana, map[int]entity.Board{}, reqs)
	assert.Empty(t, nobody)

	recruiter := entity.Identity{Name: "Sam Porter", Role: entity.RoleRecruiter}
	assert.Len(t, VisibleCandidates(candidates, recruiter, boards, nil), 3)
}

func TestOfferReadyToSend(t *testing.T) {
	approved := []entity.ApprovalStep{
		{Approver: "Alex Rivera", Status: entity.ApprovalStatusApproved},
		{Approver: "Jordan Lee", Status: entity.ApprovalStatusApproved},
	}
	partial := []entity.ApprovalStep{
		{Approver: "Alex Rivera", Status: entity.ApprovalStatusApproved},
		{Approver: "Jordan Lee", Status: entity.ApprovalStatusPending},
	}

	assert.True(t, OfferReadyToSend(&entity.Offer{Status: entity.OfferStatusPendingApproval, ApprovalChain: approved}))
	assert.False(t, OfferReadyToSend(&entity.Offer{Status: entity.OfferStatusPendingApproval, ApprovalChain: partial}))
	// fully approved chain but the offer itself is still a draft
	assert.False(t, OfferReadyToSend(&entity.Offer{Status: entity.OfferStatusDraft, ApprovalChain: approved}))
	assert.False(t, OfferReadyToSend(nil))
}

func TestAgingFlag(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	fresh := &entity.Candidate{LastContactDate: now.AddDate(0, 0, -3)}
	stale := &entity.Candidate{LastContactDate: now.AddDate(0, 0, -21)}
	never := &entity.Candidate{}

	assert.False(t, AgingFlag(fresh, now, 14))
	assert.True(t, AgingFlag(stale, now, 14))
	assert.False(t, AgingFlag(never, now, 14))
	assert.False(t, AgingFlag(nil, now, 14))
}
