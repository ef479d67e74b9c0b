package evaluator

import (
	"time"

	"talentflow-be/internal/entity"
	"talentflow-be/pkg/approval"
)

// Pure, side-effect-free views computed by joining requisitions, candidates,
// pipeline boards and offers. Nothing here reads or writes storage.

// SkillDiff is the divergence between a requisition's frozen skill baseline
// and its current skill list.
type SkillDiff struct {
	Added   []string `json:"added"`
	Removed []string `json:"removed"`
}

// HasDrift reports whether any divergence exists.
func (d SkillDiff) HasDrift() bool {
	return len(d.Added) > 0 || len(d.Removed) > 0
}

// ScopeCreepDiff compares RequiredSkills against InitialRequiredSkills as
// sets (storage order is irrelevant). The diff is empty unless the
// requisition was locked with a frozen baseline at creation time.
func ScopeCreepDiff(req *entity.JobRequisition) SkillDiff {
	diff := SkillDiff{Added: []string{}, Removed: []string{}}
	if req == nil || !req.IsLocked || req.InitialRequiredSkills == nil {
		return diff
	}

	initial := toSet(req.InitialRequiredSkills)
	current := toSet(req.RequiredSkills)

	for _, skill := range req.RequiredSkills {
		if !initial[skill] {
			diff.Added = append(diff.Added, skill)
		}
	}
	for _, skill := range req.InitialRequiredSkills {
		if !current[skill] {
			diff.Removed = append(diff.Removed, skill)
		}
	}
	return diff
}

// VisibleRequisitions filters requisitions by role-scoped visibility:
// recruiters see everything, hiring managers only their own reqs.
func VisibleRequisitions(all []*entity.JobRequisition, actor entity.Identity) []*entity.JobRequisition {
	if actor.Role == entity.RoleRecruiter {
		return all
	}
	out := make([]*entity.JobRequisition, 0)
	for _, req := range all {
		if req.HiringManager == actor.Name {
			out = append(out, req)
		}
	}
	return out
}

// VisibleCandidates restricts a hiring manager's view to candidates who
// have actually entered a pipeline for one of their own requisitions. A
// recruiter sees the full pool. Candidate ids on boards with no matching
// candidate record are dangling references and are skipped.
func VisibleCandidates(all []*entity.Candidate, actor entity.Identity, boards map[int]entity.Board, visible []*entity.JobRequisition) []*entity.Candidate {
	if actor.Role == entity.RoleRecruiter {
		return all
	}

	inPipeline := make(map[int]bool)
	for _, req := range visible {
		board, ok := boards[req.Id]
		if !ok {
			continue
		}
		for _, ids := range board {
			for _, id := range ids {
				inPipeline[id] = true
			}
		}
	}

	out := make([]*entity.Candidate, 0)
	for _, cand := range all {
		if inPipeline[cand.Id] {
			out = append(out, cand)
		}
	}
	return out
}

// OfferReadyToSend reports whether the offer awaits sending and its whole
// approval chain has signed off.
func OfferReadyToSend(offer *entity.Offer) bool {
	if offer == nil {
		return false
	}
	return offer.Status == entity.OfferStatusPendingApproval && approval.IsFullyApproved(offer.ApprovalChain)
}

// AgingFlag reports whether the candidate has gone uncontacted for longer
// than thresholdDays. Zero LastContactDate never flags.
func AgingFlag(cand *entity.Candidate, now time.Time, thresholdDays int) bool {
	if cand == nil || cand.LastContactDate.IsZero() {
		return false
	}
	return now.Sub(cand.LastContactDate) > time.Duration(thresholdDays)*24*time.Hour
}

func toSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, s := range skills {
		set[s] = true
	}
	return set
}
