// FILE: internal/service/requisition_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"talentflow-be/internal/dto"
	"talentflow-be/internal/entity"
	"talentflow-be/internal/repository/specification"
	"talentflow-be/internal/repository/unitofwork"
	"talentflow-be/pkg/approval"
	"talentflow-be/pkg/evaluator"
	"talentflow-be/pkg/events"
	pktNats "talentflow-be/pkg/nats"
)

type IRequisitionService interface {
	Create(ctx context.Context, actor entity.Identity, req *dto.CreateRequisitionRequest) (*dto.CreateRequisitionResponse, error)
	Show(ctx context.Context, actor entity.Identity, id int) (*dto.RequisitionResponse, error)
	List(ctx context.Context, actor entity.Identity) ([]*dto.RequisitionResponse, error)
	UpdateSkills(ctx context.Context, actor entity.Identity, req *dto.UpdateRequisitionSkillsRequest) (*dto.RequisitionResponse, error)
	UpdateStatus(ctx context.Context, actor entity.Identity, req *dto.UpdateRequisitionStatusRequest) (*dto.RequisitionResponse, error)
	RecordApproval(ctx context.Context, actor entity.Identity, id int, req *dto.RecordApprovalRequest) (*dto.RequisitionResponse, error)
	ScopeCreep(ctx context.Context, actor entity.Identity, id int) (*dto.ScopeCreepResponse, error)
}

type requisitionService struct {
	uowFactory     unitofwork.RepositoryFactory
	approvalEngine *approval.Engine
	eventPublisher *pktNats.Publisher
}

func NewRequisitionService(
	uowFactory unitofwork.RepositoryFactory,
	approvalEngine *approval.Engine,
	eventPublisher *pktNats.Publisher,
) IRequisitionService {
	return &requisitionService{
		uowFactory:     uowFactory,
		approvalEngine: approvalEngine,
		eventPublisher: eventPublisher,
	}
}

func (s *requisitionService) Create(ctx context.Context, actor entity.Identity, req *dto.CreateRequisitionRequest) (*dto.CreateRequisitionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	workflow := make([]entity.ApprovalStep, 0, len(req.ApprovalWorkflow))
	for _, step := range req.ApprovalWorkflow {
		workflow = append(workflow, entity.ApprovalStep{
			Stage:    step.Stage,
			Approver: step.Approver,
			Status:   entity.ApprovalStatusPending,
		})
	}

	status := entity.RequisitionStatusOpen
	if len(workflow) > 0 {
		status = entity.RequisitionStatusPendingApproval
	}

	// The skill baseline is frozen at creation. RequiredSkills stays
	// editable afterwards; the divergence feeds the scope-creep report.
	initial := make([]string, len(req.RequiredSkills))
	copy(initial, req.RequiredSkills)

	requisition := entity.JobRequisition{
		Title:                 req.Title,
		Department:            req.Department,
		Status:                status,
		RequiredSkills:        req.RequiredSkills,
		HiringManager:         req.HiringManager,
		ApprovalWorkflow:      workflow,
		IsLocked:              true,
		InitialRequiredSkills: initial,
		Headcount:             req.Headcount,
		Location:              req.Location,
		SalaryMin:             req.SalaryMin,
		SalaryMax:             req.SalaryMax,
		CreatedAt:             time.Now(),
	}

	if err := uow.RequisitionRepository().Create(ctx, &requisition); err != nil {
		return nil, err
	}

	return &dto.CreateRequisitionResponse{Id: requisition.Id}, nil
}

func (s *requisitionService) Show(ctx context.Context, actor entity.Identity, id int) (*dto.RequisitionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	req, err := s.findVisible(ctx, uow, actor, id)
	if err != nil || req == nil {
		return nil, err
	}
	return toRequisitionResponse(req), nil
}

func (s *requisitionService) List(ctx context.Context, actor entity.Identity) ([]*dto.RequisitionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	all, err := uow.RequisitionRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	visible := evaluator.VisibleRequisitions(all, actor)
	response := make([]*dto.RequisitionResponse, 0, len(visible))
	for _, req := range visible {
		response = append(response, toRequisitionResponse(req))
	}
	return response, nil
}

func (s *requisitionService) UpdateSkills(ctx context.Context, actor entity.Identity, req *dto.UpdateRequisitionSkillsRequest) (*dto.RequisitionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	requisition, err := s.findVisible(ctx, uow, actor, req.Id)
	if err != nil || requisition == nil {
		return nil, err
	}

	now := time.Now()
	requisition.RequiredSkills = req.RequiredSkills
	requisition.UpdatedAt = &now

	if err := uow.RequisitionRepository().Update(ctx, requisition); err != nil {
		return nil, err
	}
	return toRequisitionResponse(requisition), nil
}

func (s *requisitionService) UpdateStatus(ctx context.Context, actor entity.Identity, req *dto.UpdateRequisitionStatusRequest) (*dto.RequisitionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	requisition, err := s.findVisible(ctx, uow, actor, req.Id)
	if err != nil || requisition == nil {
		return nil, err
	}

	now := time.Now()
	requisition.Status = entity.RequisitionStatus(req.Status)
	requisition.UpdatedAt = &now

	if err := uow.RequisitionRepository().Update(ctx, requisition); err != nil {
		return nil, err
	}
	return toRequisitionResponse(requisition), nil
}

func (s *requisitionService) RecordApproval(ctx context.Context, actor entity.Identity, id int, req *dto.RecordApprovalRequest) (*dto.RequisitionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	requisition, err := s.findVisible(ctx, uow, actor, id)
	if err != nil || requisition == nil {
		return nil, err
	}

	stepStage := ""
	if req.StepIndex >= 0 && req.StepIndex < len(requisition.ApprovalWorkflow) {
		stepStage = requisition.ApprovalWorkflow[req.StepIndex].Stage
	}

	chain, err := s.approvalEngine.RecordStepOutcome(
		requisition.ApprovalWorkflow,
		req.StepIndex,
		entity.ApprovalStatus(req.Outcome),
		actor.Name,
		req.Notes,
	)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	requisition.ApprovalWorkflow = chain
	if approval.IsFullyApproved(chain) && requisition.Status == entity.RequisitionStatusPendingApproval {
		requisition.Status = entity.RequisitionStatusOpen
	}
	requisition.UpdatedAt = &now

	if err := uow.RequisitionRepository().Update(ctx, requisition); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.NewApprovalRecorded("requisition", fmt.Sprintf("%d", requisition.Id), stepStage, actor.Name, req.Outcome)
		// Notification path is auxiliary; a publish failure never fails the request.
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish APPROVAL_RECORDED event: %v\n", err)
		}
	}

	return toRequisitionResponse(requisition), nil
}

func (s *requisitionService) ScopeCreep(ctx context.Context, actor entity.Identity, id int) (*dto.ScopeCreepResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	requisition, err := s.findVisible(ctx, uow, actor, id)
	if err != nil || requisition == nil {
		return nil, err
	}

	diff := evaluator.ScopeCreepDiff(requisition)
	return &dto.ScopeCreepResponse{
		RequisitionId: requisition.Id,
		Locked:        requisition.IsLocked,
		Added:         diff.Added,
		Removed:       diff.Removed,
		HasDrift:      diff.HasDrift(),
	}, nil
}

// findVisible loads a requisition and enforces hiring-manager scoping:
// a manager can only address their own requisitions; for anyone else's,
// the requisition simply does not exist from their point of view.
func (s *requisitionService) findVisible(ctx context.Context, uow unitofwork.UnitOfWork, actor entity.Identity, id int) (*entity.JobRequisition, error) {
	req, err := uow.RequisitionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, nil
	}
	if actor.Role == entity.RoleHiringManager && req.HiringManager != actor.Name {
		return nil, nil
	}
	return req, nil
}

func toRequisitionResponse(req *entity.JobRequisition) *dto.RequisitionResponse {
	workflow := make([]dto.ApprovalStepResponse, 0, len(req.ApprovalWorkflow))
	for _, step := range req.ApprovalWorkflow {
		workflow = append(workflow, dto.ApprovalStepResponse{
			Stage:     step.Stage,
			Approver:  step.Approver,
			Status:    string(step.Status),
			Timestamp: step.Timestamp,
			Notes:     step.Notes,
		})
	}

	return &dto.RequisitionResponse{
		Id:                    req.Id,
		Title:                 req.Title,
		Department:            req.Department,
		Status:                string(req.Status),
		RequiredSkills:        req.RequiredSkills,
		HiringManager:         req.HiringManager,
		ApprovalWorkflow:      workflow,
		FullyApproved:         approval.IsFullyApproved(req.ApprovalWorkflow),
		HasRejection:          approval.HasRejection(req.ApprovalWorkflow),
		IsLocked:              req.IsLocked,
		InitialRequiredSkills: req.InitialRequiredSkills,
		Headcount:             req.Headcount,
		Location:              req.Location,
		SalaryMin:             req.SalaryMin,
		SalaryMax:             req.SalaryMax,
		CreatedAt:             req.CreatedAt,
		UpdatedAt:             req.UpdatedAt,
	}
}
