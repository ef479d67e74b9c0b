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

type RequisitionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RequisitionMapper
}

func NewRequisitionRepository(db *gorm.DB) contract.RequisitionRepository {
	return &RequisitionRepositoryImpl{
		db:     db,
		mapper: mapper.NewRequisitionMapper(),
	}
}

func (r *RequisitionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RequisitionRepositoryImpl) Create(ctx context.Context, req *entity.JobRequisition) error {
	m := r.mapper.ToModel(req)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*req = *r.mapper.ToEntity(m)
	return nil
}

func (r *RequisitionRepositoryImpl) Update(ctx context.Context, req *entity.JobRequisition) error {
	m := r.mapper.ToModel(req)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*req = *r.mapper.ToEntity(m)
	return nil
}

func (r *RequisitionRepositoryImpl) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.JobRequisition{}, id).Error
}

func (r *RequisitionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.JobRequisition, error) {
	var m model.JobRequisition
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *RequisitionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.JobRequisition, error) {
	var models []*model.JobRequisition
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *RequisitionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.JobRequisition{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
