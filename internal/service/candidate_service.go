// FILE: internal/service/candidate_service.go
package service

import (
	"context"
	"time"

	"talentflow-be/internal/dto"
	"talentflow-be/internal/entity"
	"talentflow-be/internal/repository/specification"
	"talentflow-be/internal/repository/unitofwork"
	"talentflow-be/pkg/evaluator"
)

type ICandidateService interface {
	Create(ctx context.Context, actor entity.Identity, req *dto.CreateCandidateRequest) (*dto.CreateCandidateResponse, error)
	Show(ctx context.Context, actor entity.Identity, id int) (*dto.CandidateResponse, error)
	List(ctx context.Context, actor entity.Identity) ([]*dto.CandidateResponse, error)
	Update(ctx context.Context, actor entity.Identity, req *dto.UpdateCandidateRequest) (*dto.CandidateResponse, error)
	Delete(ctx context.Context, actor entity.Identity, id int) error
	TouchContact(ctx context.Context, id int) error
}

type candidateService struct {
	uowFactory         unitofwork.RepositoryFactory
	agingThresholdDays int
}

func NewCandidateService(uowFactory unitofwork.RepositoryFactory, agingThresholdDays int) ICandidateService {
	return &candidateService{
		uowFactory:         uowFactory,
		agingThresholdDays: agingThresholdDays,
	}
}

func (c *candidateService) Create(ctx context.Context, actor entity.Identity, req *dto.CreateCandidateRequest) (*dto.CreateCandidateResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	status := entity.CandidateStatus(req.Status)
	if status == "" {
		status = entity.CandidateStatusActive
	}

	cand := entity.Candidate{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		CurrentRole:    req.CurrentRole,
		CurrentCompany: req.CurrentCompany,
		Skills:         req.Skills,
		Status:         status,
		Source:         req.Source,
		Notes:          req.Notes,
		CreatedAt:      time.Now(),
	}
	if req.LastContactDate != nil {
		cand.LastContactDate = *req.LastContactDate
	}

	if err := uow.CandidateRepository().Create(ctx, &cand); err != nil {
		return nil, err
	}

	return &dto.CreateCandidateResponse{Id: cand.Id}, nil
}

func (c *candidateService) Show(ctx context.Context, actor entity.Identity, id int) (*dto.CandidateResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	cand, err := uow.CandidateRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if cand == nil {
		return nil, nil
	}

	if actor.Role == entity.RoleHiringManager {
		visible, err := c.visibleFor(ctx, uow, actor, []*entity.Candidate{cand})
		if err != nil {
			return nil, err
		}
		if len(visible) == 0 {
			return nil, nil // outside the manager's pipelines
		}
	}

	return c.toResponse(cand), nil
}

func (c *candidateService) List(ctx context.Context, actor entity.Identity) ([]*dto.CandidateResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	all, err := uow.CandidateRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	visible, err := c.visibleFor(ctx, uow, actor, all)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.CandidateResponse, 0, len(visible))
	for _, cand := range visible {
		response = append(response, c.toResponse(cand))
	}
	return response, nil
}

// visibleFor applies role-scoped visibility. Recruiters see the full pool;
// hiring managers only candidates on the boards of their own requisitions.
func (c *candidateService) visibleFor(ctx context.Context, uow unitofwork.UnitOfWork, actor entity.Identity, all []*entity.Candidate) ([]*entity.Candidate, error) {
	if actor.Role == entity.RoleRecruiter {
		return all, nil
	}

	reqs, err := uow.RequisitionRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	boards, err := uow.PipelineRepository().FindAllBoards(ctx)
	if err != nil {
		return nil, err
	}

	visibleReqs := evaluator.VisibleRequisitions(reqs, actor)
	return evaluator.VisibleCandidates(all, actor, boards, visibleReqs), nil
}

func (c *candidateService) Update(ctx context.Context, actor entity.Identity, req *dto.UpdateCandidateRequest) (*dto.CandidateResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	cand, err := uow.CandidateRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if cand == nil {
		return nil, nil
	}

	now := time.Now()

	cand.Name = req.Name
	cand.Email = req.Email
	cand.Phone = req.Phone
	cand.CurrentRole = req.CurrentRole
	cand.CurrentCompany = req.CurrentCompany
	cand.Skills = req.Skills
	if req.Status != "" {
		cand.Status = entity.CandidateStatus(req.Status)
	}
	cand.Source = req.Source
	if req.LastContactDate != nil {
		cand.LastContactDate = *req.LastContactDate
	}
	cand.Notes = req.Notes
	cand.UpdatedAt = &now

	if err := uow.CandidateRepository().Update(ctx, cand); err != nil {
		return nil, err
	}

	return c.toResponse(cand), nil
}

func (c *candidateService) Delete(ctx context.Context, actor entity.Identity, id int) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	cand, err := uow.CandidateRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if cand == nil {
		return nil
	}

	return uow.CandidateRepository().Delete(ctx, id)
}

// TouchContact stamps LastContactDate with the current time. Used by the
// pipeline consumer so a stage move counts as contact.
func (c *candidateService) TouchContact(ctx context.Context, id int) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	cand, err := uow.CandidateRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if cand == nil {
		return nil
	}

	now := time.Now()
	cand.LastContactDate = now
	cand.UpdatedAt = &now
	return uow.CandidateRepository().Update(ctx, cand)
}

func (c *candidateService) toResponse(cand *entity.Candidate) *dto.CandidateResponse {
	resp := &dto.CandidateResponse{
		Id:             cand.Id,
		Name:           cand.Name,
		Email:          cand.Email,
		Phone:          cand.Phone,
		CurrentRole:    cand.CurrentRole,
		CurrentCompany: cand.CurrentCompany,
		Skills:         cand.Skills,
		Status:         string(cand.Status),
		Source:         cand.Source,
		Notes:          cand.Notes,
		Aging:          evaluator.AgingFlag(cand, time.Now(), c.agingThresholdDays),
		CreatedAt:      cand.CreatedAt,
		UpdatedAt:      cand.UpdatedAt,
	}
	if !cand.LastContactDate.IsZero() {
		d := cand.LastContactDate
		resp.LastContactDate = &d
	}
	return resp
}
