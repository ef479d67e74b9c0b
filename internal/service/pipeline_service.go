// FILE: internal/service/pipeline_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"talentflow-be/internal/dto"
	"talentflow-be/internal/entity"
	"talentflow-be/internal/repository/memory"
	"talentflow-be/internal/repository/specification"
	"talentflow-be/internal/repository/unitofwork"
	"talentflow-be/pkg/events"
	pktNats "talentflow-be/pkg/nats"
	"talentflow-be/pkg/pipeline"
)

type IPipelineService interface {
	GetBoard(ctx context.Context, actor entity.Identity, jobId int) (*dto.BoardResponse, error)
	MoveCandidate(ctx context.Context, actor entity.Identity, req *dto.MoveCandidateRequest) (*dto.MoveCandidateResponse, error)
	CandidateStage(ctx context.Context, actor entity.Identity, jobId, candidateId int) (*dto.CandidateStageResponse, error)
	Hired(ctx context.Context, actor entity.Identity, jobId int) (*dto.HiredResponse, error)
	HiredAcrossJobs(ctx context.Context, actor entity.Identity) (*dto.HiredAcrossJobsResponse, error)
}

type pipelineService struct {
	uowFactory       unitofwork.RepositoryFactory
	engine           *pipeline.Engine
	boardCache       *memory.BoardCache
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher

	// mu guards jobLocks; each job gets its own mutex so the
	// read-modify-write move cycle is serialized per board only.
	mu       sync.Mutex
	jobLocks map[int]*sync.Mutex
}

func NewPipelineService(
	uowFactory unitofwork.RepositoryFactory,
	engine *pipeline.Engine,
	boardCache *memory.BoardCache,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
) IPipelineService {
	return &pipelineService{
		uowFactory:       uowFactory,
		engine:           engine,
		boardCache:       boardCache,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		jobLocks:         make(map[int]*sync.Mutex),
	}
}

func (s *pipelineService) lockJob(jobId int) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.jobLocks[jobId]
	if !ok {
		lock = &sync.Mutex{}
		s.jobLocks[jobId] = lock
	}
	return lock
}

// loadBoard reads through the cache; cache misses fall back to the
// repository, which returns an initialized empty board when no snapshot
// exists yet.
func (s *pipelineService) loadBoard(ctx context.Context, uow unitofwork.UnitOfWork, jobId int) (entity.Board, error) {
	if board, ok := s.boardCache.Get(jobId); ok {
		return board, nil
	}
	board, err := uow.PipelineRepository().FindBoard(ctx, jobId)
	if err != nil {
		return nil, err
	}
	s.boardCache.Save(jobId, board)
	return board, nil
}

func (s *pipelineService) GetBoard(ctx context.Context, actor entity.Identity, jobId int) (*dto.BoardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if ok, err := s.jobVisible(ctx, uow, actor, jobId); err != nil || !ok {
		return nil, err
	}

	board, err := s.loadBoard(ctx, uow, jobId)
	if err != nil {
		return nil, err
	}

	return &dto.BoardResponse{JobId: jobId, Stages: toStageMap(board)}, nil
}

func (s *pipelineService) MoveCandidate(ctx context.Context, actor entity.Identity, req *dto.MoveCandidateRequest) (*dto.MoveCandidateResponse, error) {
	lock := s.lockJob(req.JobId)
	lock.Lock()
	defer lock.Unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)

	board, err := s.loadBoard(ctx, uow, req.JobId)
	if err != nil {
		return nil, err
	}

	next, err := s.engine.Move(board, req.CandidateId, entity.Stage(req.SourceStage), entity.Stage(req.TargetStage), actor)
	if err != nil {
		return nil, err
	}

	if err := uow.PipelineRepository().SaveBoard(ctx, req.JobId, next); err != nil {
		s.boardCache.Invalidate(req.JobId)
		return nil, err
	}
	s.boardCache.Save(req.JobId, next)

	msgPayload := dto.PublishPipelineEventMessage{
		JobId:       req.JobId,
		CandidateId: req.CandidateId,
		SourceStage: req.SourceStage,
		TargetStage: req.TargetStage,
		Actor:       actor.Name,
	}
	msgJson, err := json.Marshal(msgPayload)
	if err != nil {
		return nil, err
	}
	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		return nil, err
	}

	// Publish events for the notification system
	if s.eventPublisher != nil {
		evt := events.NewCandidateMoved(req.JobId, req.CandidateId, req.SourceStage, req.TargetStage, actor.Name)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish CANDIDATE_MOVED event: %v\n", err)
		}
		if entity.Stage(req.TargetStage) == entity.StageHired {
			hired := events.NewCandidateHired(req.JobId, req.CandidateId, actor.Name)
			if err := s.eventPublisher.Publish(ctx, hired); err != nil {
				fmt.Printf("[WARN] Failed to publish CANDIDATE_HIRED event: %v\n", err)
			}
		}
	}

	return &dto.MoveCandidateResponse{
		JobId:       req.JobId,
		CandidateId: req.CandidateId,
		Stage:       req.TargetStage,
	}, nil
}

func (s *pipelineService) CandidateStage(ctx context.Context, actor entity.Identity, jobId, candidateId int) (*dto.CandidateStageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if ok, err := s.jobVisible(ctx, uow, actor, jobId); err != nil || !ok {
		return nil, err
	}

	board, err := s.loadBoard(ctx, uow, jobId)
	if err != nil {
		return nil, err
	}

	stage, ok := s.engine.CandidateStage(board, candidateId)
	resp := &dto.CandidateStageResponse{
		JobId:       jobId,
		CandidateId: candidateId,
		InPipeline:  ok,
	}
	if ok {
		resp.Stage = string(stage)
	}
	return resp, nil
}

func (s *pipelineService) Hired(ctx context.Context, actor entity.Identity, jobId int) (*dto.HiredResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if ok, err := s.jobVisible(ctx, uow, actor, jobId); err != nil || !ok {
		return nil, err
	}

	board, err := s.loadBoard(ctx, uow, jobId)
	if err != nil {
		return nil, err
	}

	return &dto.HiredResponse{
		JobId:        jobId,
		CandidateIds: s.engine.Hired(board),
	}, nil
}

func (s *pipelineService) HiredAcrossJobs(ctx context.Context, actor entity.Identity) (*dto.HiredAcrossJobsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	boards, err := uow.PipelineRepository().FindAllBoards(ctx)
	if err != nil {
		return nil, err
	}

	// Hiring managers only see the cross-job view of their own boards.
	if actor.Role == entity.RoleHiringManager {
		reqs, err := uow.RequisitionRepository().FindAll(ctx, specification.ByHiringManager{Name: actor.Name})
		if err != nil {
			return nil, err
		}
		owned := make(map[int]bool, len(reqs))
		for _, req := range reqs {
			owned[req.Id] = true
		}
		for jobId := range boards {
			if !owned[jobId] {
				delete(boards, jobId)
			}
		}
	}

	return &dto.HiredAcrossJobsResponse{
		Hired: s.engine.HiredAcrossBoards(boards),
	}, nil
}

// jobVisible reports whether the actor may read this job's board. Reads
// are open to recruiters; hiring managers are scoped to their own reqs.
// An invisible board reads as absent, not forbidden.
func (s *pipelineService) jobVisible(ctx context.Context, uow unitofwork.UnitOfWork, actor entity.Identity, jobId int) (bool, error) {
	if actor.Role == entity.RoleRecruiter {
		return true, nil
	}
	req, err := uow.RequisitionRepository().FindOne(ctx, specification.ByID{ID: jobId})
	if err != nil {
		return false, err
	}
	return req != nil && req.HiringManager == actor.Name, nil
}

func toStageMap(board entity.Board) map[string][]int {
	out := make(map[string][]int, len(board))
	for stage, ids := range board {
		out[string(stage)] = ids
	}
	return out
}
