package contract

import (
	"context"

	"talentflow-be/internal/entity"
)

// PipelineRepository persists one board snapshot per job. FindBoard returns
// an empty initialized board when no snapshot exists yet; callers never see
// a nil board.
type PipelineRepository interface {
	FindBoard(ctx context.Context, jobId int) (entity.Board, error)
	FindAllBoards(ctx context.Context) (map[int]entity.Board, error)
	SaveBoard(ctx context.Context, jobId int, board entity.Board) error
	DeleteBoard(ctx context.Context, jobId int) error
}
