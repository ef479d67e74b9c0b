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

type OfferRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.OfferMapper
}

func NewOfferRepository(db *gorm.DB) contract.OfferRepository {
	return &OfferRepositoryImpl{
		db:     db,
		mapper: mapper.NewOfferMapper(),
	}
}

func (r *OfferRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *OfferRepositoryImpl) Create(ctx context.Context, offer *entity.Offer) error {
	m := r.mapper.ToModel(offer)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*offer = *r.mapper.ToEntity(m)
	return nil
}

func (r *OfferRepositoryImpl) Update(ctx context.Context, offer *entity.Offer) error {
	m := r.mapper.ToModel(offer)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*offer = *r.mapper.ToEntity(m)
	return nil
}

func (r *OfferRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Offer{}, "id = ?", id).Error
}

func (r *OfferRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Offer, error) {
	var m model.Offer
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *OfferRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Offer, error) {
	var models []*model.Offer
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *OfferRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Offer{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
