package pipeline

import (
	"fmt"

	"talentflow-be/internal/entity"
	"talentflow-be/internal/pkg/apperror"
)

// Engine owns the per-job, per-stage placement of candidates. It is pure:
// boards go in, new boards come out, and callers own persistence. All
// preconditions are checked before any mutation, so a failed call leaves
// the input board untouched.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Move removes candidateId from the source stage and inserts it into the
// target stage on a clone of the board. The insert is idempotent: if the
// candidate already sits in the target stage, no duplicate is added.
//
// Rules, checked in order:
//   - actor must hold pipeline write permission (recruiters only)
//   - both stages must be known
//   - source == target is a successful no-op
//   - Hired is terminal: no move may leave it
//   - the candidate must currently be in the source stage
func (e *Engine) Move(board entity.Board, candidateId int, source, target entity.Stage, actor entity.Identity) (entity.Board, error) {
	if !actor.CanMutatePipeline() {
		return nil, fmt.Errorf("%w: role %s cannot move candidates", apperror.ErrPermissionDenied, actor.Role)
	}
	if !entity.ValidStage(source) {
		return nil, fmt.Errorf("%w: unknown stage %q", apperror.ErrInvalidTransition, source)
	}
	if !entity.ValidStage(target) {
		return nil, fmt.Errorf("%w: unknown stage %q", apperror.ErrInvalidTransition, target)
	}
	if source == target {
		return board.Clone(), nil
	}
	if source == entity.StageHired {
		return nil, fmt.Errorf("%w: %s is terminal", apperror.ErrInvalidTransition, entity.StageHired)
	}
	if !contains(board[source], candidateId) {
		return nil, fmt.Errorf("%w: candidate %d not in stage %s", apperror.ErrNotFound, candidateId, source)
	}

	next := board.Clone()
	next[source] = remove(next[source], candidateId)
	if !contains(next[target], candidateId) {
		next[target] = append(next[target], candidateId)
	}
	return next, nil
}

// Stage returns the ordered candidate ids currently in the given stage.
// Unknown or empty stages yield an empty slice, never nil errors.
func (e *Engine) Stage(board entity.Board, stage entity.Stage) []int {
	ids, ok := board[stage]
	if !ok {
		return []int{}
	}
	out := make([]int, len(ids))
	copy(out, ids)
	return out
}

// CandidateStage scans the six stages for the candidate's current location.
func (e *Engine) CandidateStage(board entity.Board, candidateId int) (entity.Stage, bool) {
	for _, stage := range entity.StageOrder {
		if contains(board[stage], candidateId) {
			return stage, true
		}
	}
	return "", false
}

// Hired returns the candidate ids placed in the terminal Hired stage.
func (e *Engine) Hired(board entity.Board) []int {
	return e.Stage(board, entity.StageHired)
}

// HiredAcrossBoards maps every hired candidate to the job that hired them.
// The single-placement invariant should prevent a candidate from being
// hired on two boards, but if it is ever breached the first owning job
// wins and later ones are ignored.
func (e *Engine) HiredAcrossBoards(boards map[int]entity.Board) map[int]int {
	owners := make(map[int]int)
	for jobId, board := range boards {
		for _, candidateId := range board[entity.StageHired] {
			if _, taken := owners[candidateId]; !taken {
				owners[candidateId] = jobId
			}
		}
	}
	return owners
}

func contains(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func remove(ids []int, id int) []int {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
