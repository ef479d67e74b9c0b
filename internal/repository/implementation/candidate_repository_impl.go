package implementation

import (
	"context"
	"errors"

	"talentflow-be/internal/entity"
	"talentflow-be/internal/mapper"
	"talentflow-be/internal/model"
	"talentflow-be/internal/repository/contract"
	"talentflow-be/internal/repository/specification"

	"gorm.io/gorm"
)

type CandidateRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CandidateMapper
}

func NewCandidateRepository(db *gorm.DB) contract.CandidateRepository {
	return &CandidateRepositoryImpl{
		db:     db,
		mapper: mapper.NewCandidateMapper(),
	}
}

func (r *CandidateRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CandidateRepositoryImpl) Create(ctx context.Context, candidate *entity.Candidate) error {
	m := r.mapper.ToModel(candidate)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*candidate = *r.mapper.ToEntity(m)
	return nil
}

func (r *CandidateRepositoryImpl) Update(ctx context.Context, candidate *entity.Candidate) error {
	m := r.mapper.ToModel(candidate)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*candidate = *r.mapper.ToEntity(m)
	return nil
}

func (r *CandidateRepositoryImpl) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.Candidate{}, id).Error
}

func (r *CandidateRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Candidate, error) {
	var m model.Candidate
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CandidateRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Candidate, error) {
	var models []*model.Candidate
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CandidateRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Candidate{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
