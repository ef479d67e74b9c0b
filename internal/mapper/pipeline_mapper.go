package mapper

import (
	"encoding/json"

	"talentflow-be/internal/entity"
	"talentflow-be/internal/model"

	"gorm.io/datatypes"
)

type PipelineMapper struct{}

func NewPipelineMapper() *PipelineMapper {
	return &PipelineMapper{}
}

// ToBoard decodes a stored stage map. A missing or malformed snapshot
// degrades to a fresh empty board: the pipeline treats broken persisted
// data as "start empty", never as a fatal error.
func (m *PipelineMapper) ToBoard(p *model.PipelineBoard) entity.Board {
	if p == nil || len(p.Stages) == 0 {
		return entity.NewBoard()
	}

	var raw map[entity.Stage][]int
	if err := json.Unmarshal(p.Stages, &raw); err != nil {
		return entity.NewBoard()
	}

	board := entity.NewBoard()
	for stage, ids := range raw {
		if entity.ValidStage(stage) {
			board[stage] = ids
		}
	}
	return board
}

func (m *PipelineMapper) ToModel(jobId int, board entity.Board) *model.PipelineBoard {
	raw, _ := json.Marshal(board)
	return &model.PipelineBoard{
		JobId:         jobId,
		Stages:        datatypes.JSON(raw),
		SchemaVersion: 1,
	}
}
