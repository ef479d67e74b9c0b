// FILE: internal/service/ops_service.go
package service

import (
	"context"
	"time"

	"talentflow-be/internal/entity"
	"talentflow-be/internal/pkg/logger"
	"talentflow-be/internal/repository/specification"
	"talentflow-be/internal/repository/unitofwork"
	"talentflow-be/pkg/store"
)

const (
	collectionCandidates   = "candidates"
	collectionRequisitions = "requisitions"
	collectionOffers       = "offers"
)

type SnapshotCounts struct {
	Candidates   int `json:"candidates"`
	Requisitions int `json:"requisitions"`
	Offers       int `json:"offers"`
}

// IOpsService backs the operational endpoints: JSON snapshot export and
// import of the recruiting collections, and log reading.
type IOpsService interface {
	ExportSnapshot(ctx context.Context) (*SnapshotCounts, error)
	ImportSnapshot(ctx context.Context) (*SnapshotCounts, error)
	GetLogs(level string, limit, offset int) ([]logger.LogEntry, error)
	GetLogById(id string) (*logger.LogEntry, error)
}

type opsService struct {
	uowFactory unitofwork.RepositoryFactory
	snapshots  *store.CollectionStore
	logger     logger.ILogger
}

func NewOpsService(uowFactory unitofwork.RepositoryFactory, snapshots *store.CollectionStore, log logger.ILogger) IOpsService {
	return &opsService{
		uowFactory: uowFactory,
		snapshots:  snapshots,
		logger:     log,
	}
}

// ExportSnapshot dumps the candidate, requisition and offer collections to
// versioned JSON files.
func (s *opsService) ExportSnapshot(ctx context.Context) (*SnapshotCounts, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	candidates, err := uow.CandidateRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	requisitions, err := uow.RequisitionRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	offers, err := uow.OfferRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := store.Save(s.snapshots, collectionCandidates, candidates); err != nil {
		return nil, err
	}
	if err := store.Save(s.snapshots, collectionRequisitions, requisitions); err != nil {
		return nil, err
	}
	if err := store.Save(s.snapshots, collectionOffers, offers); err != nil {
		return nil, err
	}

	s.logger.Info("OpsService", "Snapshot exported", map[string]interface{}{
		"candidates":   len(candidates),
		"requisitions": len(requisitions),
		"offers":       len(offers),
	})

	return &SnapshotCounts{
		Candidates:   len(candidates),
		Requisitions: len(requisitions),
		Offers:       len(offers),
	}, nil
}

// ImportSnapshot loads the JSON collections back and upserts them. Records
// missing or malformed on disk fall back to empty collections rather than
// failing; the store recovers read errors locally.
func (s *opsService) ImportSnapshot(ctx context.Context) (*SnapshotCounts, error) {
	candidates := store.Load(s.snapshots, collectionCandidates, []*entity.Candidate{})
	requisitions := store.Load(s.snapshots, collectionRequisitions, []*entity.JobRequisition{})
	offers := store.Load(s.snapshots, collectionOffers, []*entity.Offer{})

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	for _, cand := range candidates {
		existing, err := uow.CandidateRepository().FindOne(ctx, specification.ByID{ID: cand.Id})
		if err != nil {
			return nil, err
		}
		if existing == nil {
			if err := uow.CandidateRepository().Create(ctx, cand); err != nil {
				return nil, err
			}
		} else if err := uow.CandidateRepository().Update(ctx, cand); err != nil {
			return nil, err
		}
	}

	for _, req := range requisitions {
		existing, err := uow.RequisitionRepository().FindOne(ctx, specification.ByID{ID: req.Id})
		if err != nil {
			return nil, err
		}
		if existing == nil {
			if err := uow.RequisitionRepository().Create(ctx, req); err != nil {
				return nil, err
			}
		} else if err := uow.RequisitionRepository().Update(ctx, req); err != nil {
			return nil, err
		}
	}

	for _, offer := range offers {
		existing, err := uow.OfferRepository().FindOne(ctx, specification.ByStringID{ID: offer.Id})
		if err != nil {
			return nil, err
		}
		if existing == nil {
			if err := uow.OfferRepository().Create(ctx, offer); err != nil {
				return nil, err
			}
		} else if err := uow.OfferRepository().Update(ctx, offer); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("OpsService", "Snapshot imported", map[string]interface{}{
		"candidates":   len(candidates),
		"requisitions": len(requisitions),
		"offers":       len(offers),
		"at":           time.Now(),
	})

	return &SnapshotCounts{
		Candidates:   len(candidates),
		Requisitions: len(requisitions),
		Offers:       len(offers),
	}, nil
}

func (s *opsService) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	return s.logger.GetLogs(level, limit, offset)
}

func (s *opsService) GetLogById(id string) (*logger.LogEntry, error) {
	return s.logger.GetLogById(id)
}
