package unitofwork

import (
	"context"

	"talentflow-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	CandidateRepository() contract.CandidateRepository
	RequisitionRepository() contract.RequisitionRepository
	OfferRepository() contract.OfferRepository
	PipelineRepository() contract.PipelineRepository
	NotificationRepository() contract.NotificationRepository
	AuditRepository() contract.AuditRepository
}
