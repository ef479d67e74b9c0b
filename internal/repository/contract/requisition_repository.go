package contract

import (
	"context"

	"talentflow-be/internal/entity"
	"talentflow-be/internal/repository/specification"
)

type RequisitionRepository interface {
	Create(ctx context.Context, req *entity.JobRequisition) error
	Update(ctx context.Context, req *entity.JobRequisition) error
	Delete(ctx context.Context, id int) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.JobRequisition, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.JobRequisition, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
