package unitofwork

import (
	"context"
	"fmt"

	"talentflow-be/internal/repository/contract"
	"talentflow-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // active transaction, nil outside Begin/Commit
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) CandidateRepository() contract.CandidateRepository {
	return implementation.NewCandidateRepository(u.getDB())
}

func (u *UnitOfWorkImpl) RequisitionRepository() contract.RequisitionRepository {
	return implementation.NewRequisitionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) OfferRepository() contract.OfferRepository {
	return implementation.NewOfferRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PipelineRepository() contract.PipelineRepository {
	return implementation.NewPipelineRepository(u.getDB())
}

func (u *UnitOfWorkImpl) NotificationRepository() contract.NotificationRepository {
	return implementation.NewNotificationRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AuditRepository() contract.AuditRepository {
	return implementation.NewAuditRepository(u.getDB())
}
