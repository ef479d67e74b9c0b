package contract

import (
	"context"

	"talentflow-be/internal/entity"
	"talentflow-be/internal/repository/specification"
)

type OfferRepository interface {
	Create(ctx context.Context, offer *entity.Offer) error
	Update(ctx context.Context, offer *entity.Offer) error
	Delete(ctx context.Context, id string) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Offer, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Offer, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
