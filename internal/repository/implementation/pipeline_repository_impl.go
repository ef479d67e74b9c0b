package implementation

import (
	"context"
	"errors"

	"talentflow-be/internal/entity"
	"talentflow-be/internal/mapper"
	"talentflow-be/internal/model"
	"talentflow-be/internal/repository/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PipelineRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PipelineMapper
}

func NewPipelineRepository(db *gorm.DB) contract.PipelineRepository {
	return &PipelineRepositoryImpl{
		db:     db,
		mapper: mapper.NewPipelineMapper(),
	}
}

func (r *PipelineRepositoryImpl) FindBoard(ctx context.Context, jobId int) (entity.Board, error) {
	var m model.PipelineBoard
	if err := r.db.WithContext(ctx).First(&m, "job_id = ?", jobId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.NewBoard(), nil
		}
		return nil, err
	}
	return r.mapper.ToBoard(&m), nil
}

func (r *PipelineRepositoryImpl) FindAllBoards(ctx context.Context) (map[int]entity.Board, error) {
	var models []*model.PipelineBoard
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}

	boards := make(map[int]entity.Board, len(models))
	for _, m := range models {
		boards[m.JobId] = r.mapper.ToBoard(m)
	}
	return boards, nil
}

func (r *PipelineRepositoryImpl) SaveBoard(ctx context.Context, jobId int, board entity.Board) error {
	m := r.mapper.ToModel(jobId, board)
	// insert-or-replace keyed by job id
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "job_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"stages", "schema_version", "updated_at"}),
	}).Create(m).Error
}

func (r *PipelineRepositoryImpl) DeleteBoard(ctx context.Context, jobId int) error {
	return r.db.WithContext(ctx).Delete(&model.PipelineBoard{}, "job_id = ?", jobId).Error
}
