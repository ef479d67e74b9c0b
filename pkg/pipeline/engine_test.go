package pipeline

import (
	"errors"
	"testing"

	"talentflow-be/internal/entity"
	"talentflow-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	recruiter = entity.Identity{Name: "Sam Porter", Role: entity.RoleRecruiter}
	manager   = entity.Identity{Name: "Dana Cruz", Role: entity.RoleHiringManager}
)

func boardWith(stage entity.Stage, ids ...int) entity.Board {
	b := entity.NewBoard()
	b[stage] = append(b[stage], ids...)
	return b
}

func TestMoveBetweenStages(t *testing.T) {
	e := NewEngine()
	board := boardWith(entity.StageApplied, 4)

	next, err := e.Move(board, 4, entity.StageApplied, entity.StagePhoneScreen, recruiter)
	require.NoError(t, err)

	assert.Empty(t, e.Stage(next, entity.StageApplied))
	assert.Equal(t, []int{4}, e.Stage(next, entity.StagePhoneScreen))

	// input board untouched
	assert.Equal(t, []int{4}, e.Stage(board, entity.StageApplied))
}

func TestMoveSameStageIsNoOp(t *testing.T) {
	e := NewEngine()
	board := boardWith(entity.StagePhoneScreen, 7)

	next, err := e.Move(board, 7, entity.StagePhoneScreen, entity.StagePhoneScreen, recruiter)
	require.NoError(t, err)
	assert.Equal(t, []int{7}, e.Stage(next, entity.StagePhoneScreen))
}

func TestMoveRejections(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		name    string
		board   entity.Board
		cand    int
		from    entity.Stage
		to      entity.Stage
		actor   entity.Identity
		wantErr error
	}{
		{
			name:    "hiring manager is read-only",
			board:   boardWith(entity.StageApplied, 1),
			cand:    1,
			from:    entity.StageApplied,
			to:      entity.StagePhoneScreen,
			actor:   manager,
			wantErr: apperror.ErrPermissionDenied,
		},
		{
			name:    "hired is terminal",
			board:   boardWith(entity.StageHired, 6),
			cand:    6,
			from:    entity.StageHired,
			to:      entity.StageOffer,
			actor:   recruiter,
			wantErr: apperror.ErrInvalidTransition,
		},
		{
			name:    "unknown source stage",
			board:   entity.NewBoard(),
			cand:    1,
			from:    entity.Stage("Screening"),
			to:      entity.StageApplied,
			actor:   recruiter,
			wantErr: apperror.ErrInvalidTransition,
		},
		{
			name:    "unknown target stage",
			board:   boardWith(entity.StageApplied, 1),
			cand:    1,
			from:    entity.StageApplied,
			to:      entity.Stage("Done"),
			actor:   recruiter,
			wantErr: apperror.ErrInvalidTransition,
		},
		{
			name:    "candidate absent from source",
			board:   boardWith(entity.StageApplied, 2),
			cand:    9,
			from:    entity.StageApplied,
			to:      entity.StagePhoneScreen,
			actor:   recruiter,
			wantErr: apperror.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.board.Clone()
			next, err := e.Move(tt.board, tt.cand, tt.from, tt.to, tt.actor)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
			assert.Nil(t, next)
			assert.Equal(t, before, tt.board, "failed move must not change state")
		})
	}
}

func TestTerminalHiredStaysHired(t *testing.T) {
	e := NewEngine()
	board := boardWith(entity.StageOffer, 6)

	next, err := e.Move(board, 6, entity.StageOffer, entity.StageHired, recruiter)
	require.NoError(t, err)
	assert.Equal(t, []int{6}, e.Hired(next))

	_, err = e.Move(next, 6, entity.StageHired, entity.StageOffer, recruiter)
	assert.True(t, errors.Is(err, apperror.ErrInvalidTransition))
	assert.Equal(t, []int{6}, e.Hired(next))
}

func TestSinglePlacementInvariant(t *testing.T) {
	e := NewEngine()
	board := boardWith(entity.StageApplied, 4, 5)

	moves := []struct {
		cand     int
		from, to entity.Stage
	}{
		{4, entity.StageApplied, entity.StagePhoneScreen},
		{5, entity.StageApplied, entity.StagePhoneScreen},
		{4, entity.StagePhoneScreen, entity.StageTechnicalInterview},
		{4, entity.StageTechnicalInterview, entity.StageFinalInterview},
		{5, entity.StagePhoneScreen, entity.StageTechnicalInterview},
		{4, entity.StageFinalInterview, entity.StageOffer},
	}

	for _, m := range moves {
		next, err := e.Move(board, m.cand, m.from, m.to, recruiter)
		require.NoError(t, err)
		board = next

		// every candidate appears in at most one stage
		seen := map[int]int{}
		for _, stage := range entity.StageOrder {
			for _, id := range board[stage] {
				seen[id]++
			}
		}
		for id, n := range seen {
			assert.Equal(t, 1, n, "candidate %d placed %d times", id, n)
		}
	}
}

func TestIdempotentInsert(t *testing.T) {
	e := NewEngine()
	// Simulate a race where the candidate already landed in the target.
	board := boardWith(entity.StageApplied, 3)
	board[entity.StagePhoneScreen] = []int{3} // corrupted duplicate placement

	next, err := e.Move(board, 3, entity.StageApplied, entity.StagePhoneScreen, recruiter)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, e.Stage(next, entity.StagePhoneScreen), "no duplicate entries")
	assert.Empty(t, e.Stage(next, entity.StageApplied))
}

func TestCandidateStage(t *testing.T) {
	e := NewEngine()
	board := boardWith(entity.StageTechnicalInterview, 11)

	stage, ok := e.CandidateStage(board, 11)
	require.True(t, ok)
	assert.Equal(t, entity.StageTechnicalInterview, stage)

	_, ok = e.CandidateStage(board, 99)
	assert.False(t, ok)
}

func TestStageOnUnknownOrMissing(t *testing.T) {
	e := NewEngine()
	assert.Empty(t, e.Stage(entity.Board{}, entity.StageApplied))
	assert.Empty(t, e.Stage(entity.NewBoard(), entity.StageHired))
}

func TestHiredAcrossBoards(t *testing.T) {
	e := NewEngine()
	boards := map[int]entity.Board{
		101: boardWith(entity.StageHired, 6),
		202: boardWith(entity.StageHired, 8),
		303: entity.NewBoard(),
	}

	owners := e.HiredAcrossBoards(boards)
	assert.Equal(t, map[int]int{6: 101, 8: 202}, owners)
}

func TestHiredAcrossBoardsDefensiveDuplicate(t *testing.T) {
	e := NewEngine()
	// Invariant breach: candidate 6 hired on two boards. One job must win,
	// and the mapping stays a function.
	boards := map[int]entity.Board{
		101: boardWith(entity.StageHired, 6),
		202: boardWith(entity.StageHired, 6),
	}

	owners := e.HiredAcrossBoards(boards)
	require.Len(t, owners, 1)
	job := owners[6]
	assert.True(t, job == 101 || job == 202)
}
