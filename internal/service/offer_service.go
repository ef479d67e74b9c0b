// FILE: internal/service/offer_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"talentflow-be/internal/dto"
	"talentflow-be/internal/entity"
	"talentflow-be/internal/pkg/apperror"
	"talentflow-be/internal/pkg/mailer"
	"talentflow-be/internal/repository/specification"
	"talentflow-be/internal/repository/unitofwork"
	"talentflow-be/pkg/approval"
	"talentflow-be/pkg/evaluator"
	"talentflow-be/pkg/events"
	pktNats "talentflow-be/pkg/nats"

	"github.com/google/uuid"
)

type IOfferService interface {
	Create(ctx context.Context, actor entity.Identity, req *dto.CreateOfferRequest) (*dto.CreateOfferResponse, error)
	Show(ctx context.Context, actor entity.Identity, id string) (*dto.OfferResponse, error)
	List(ctx context.Context, actor entity.Identity, readyOnly bool) ([]*dto.OfferResponse, error)
	UpdateTerms(ctx context.Context, actor entity.Identity, req *dto.UpdateOfferTermsRequest) (*dto.OfferResponse, error)
	SubmitForApproval(ctx context.Context, actor entity.Identity, id string) (*dto.OfferResponse, error)
	RecordApproval(ctx context.Context, actor entity.Identity, id string, req *dto.RecordApprovalRequest) (*dto.OfferResponse, error)
	Send(ctx context.Context, actor entity.Identity, id string) (*dto.OfferResponse, error)
	Resolve(ctx context.Context, actor entity.Identity, id string, status entity.OfferStatus) (*dto.OfferResponse, error)
	AppendNegotiation(ctx context.Context, actor entity.Identity, req *dto.AppendNegotiationRequest) (*dto.OfferResponse, error)
	AddCompetitiveIntel(ctx context.Context, actor entity.Identity, req *dto.AddCompetitiveIntelRequest) (*dto.OfferResponse, error)
}

type offerService struct {
	uowFactory     unitofwork.RepositoryFactory
	approvalEngine *approval.Engine
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
}

func NewOfferService(
	uowFactory unitofwork.RepositoryFactory,
	approvalEngine *approval.Engine,
	emailService mailer.IEmailService,
	eventPublisher *pktNats.Publisher,
) IOfferService {
	return &offerService{
		uowFactory:     uowFactory,
		approvalEngine: approvalEngine,
		emailService:   emailService,
		eventPublisher: eventPublisher,
	}
}

func (s *offerService) Create(ctx context.Context, actor entity.Identity, req *dto.CreateOfferRequest) (*dto.CreateOfferResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	chain := make([]entity.ApprovalStep, 0, len(req.ApprovalChain))
	for _, step := range req.ApprovalChain {
		chain = append(chain, entity.ApprovalStep{
			Stage:    step.Stage,
			Approver: step.Approver,
			Status:   entity.ApprovalStatusPending,
		})
	}

	offer := entity.Offer{
		Id:            uuid.NewString(),
		CandidateId:   req.CandidateId,
		JobId:         req.JobId,
		Status:        entity.OfferStatusDraft,
		BaseSalary:    req.BaseSalary,
		Bonus:         req.Bonus,
		Equity:        req.Equity,
		StartDate:     req.StartDate,
		ApprovalChain: chain,
		CreatedAt:     time.Now(),
	}

	if err := uow.OfferRepository().Create(ctx, &offer); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.NewOfferDrafted(offer.Id, offer.JobId, offer.CandidateId)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish OFFER_DRAFTED event: %v\n", err)
		}
	}

	return &dto.CreateOfferResponse{Id: offer.Id}, nil
}

func (s *offerService) Show(ctx context.Context, actor entity.Identity, id string) (*dto.OfferResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	offer, err := uow.OfferRepository().FindOne(ctx, specification.ByStringID{ID: id})
	if err != nil || offer == nil {
		return nil, err
	}
	return toOfferResponse(offer), nil
}

func (s *offerService) List(ctx context.Context, actor entity.Identity, readyOnly bool) ([]*dto.OfferResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	offers, err := uow.OfferRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.OfferResponse, 0, len(offers))
	for _, offer := range offers {
		if readyOnly && !evaluator.OfferReadyToSend(offer) {
			continue
		}
		response = append(response, toOfferResponse(offer))
	}
	return response, nil
}

func (s *offerService) UpdateTerms(ctx context.Context, actor entity.Identity, req *dto.UpdateOfferTermsRequest) (*dto.OfferResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	offer, err := uow.OfferRepository().FindOne(ctx, specification.ByStringID{ID: req.Id})
	if err != nil || offer == nil {
		return nil, err
	}

	// Terms are frozen once the offer leaves the drafting phase.
	if offer.Status != entity.OfferStatusDraft && offer.Status != entity.OfferStatusPendingApproval {
		return nil, fmt.Errorf("%w: cannot edit terms of a %s offer", apperror.ErrInvalidTransition, offer.Status)
	}

	now := time.Now()
	offer.BaseSalary = req.BaseSalary
	offer.Bonus = req.Bonus
	offer.Equity = req.Equity
	offer.StartDate = req.StartDate
	offer.UpdatedAt = &now

	if err := uow.OfferRepository().Update(ctx, offer); err != nil {
		return nil, err
	}
	return toOfferResponse(offer), nil
}

func (s *offerService) SubmitForApproval(ctx context.Context, actor entity.Identity, id string) (*dto.OfferResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	offer, err := uow.OfferRepository().FindOne(ctx, specification.ByStringID{ID: id})
	if err != nil || offer == nil {
		return nil, err
	}

	if offer.Status != entity.OfferStatusDraft {
		return nil, fmt.Errorf("%w: only draft offers can be submitted, offer is %s", apperror.ErrInvalidTransition, offer.Status)
	}

	now := time.Now()
	offer.Status = entity.OfferStatusPendingApproval
	offer.UpdatedAt = &now

	if err := uow.OfferRepository().Update(ctx, offer); err != nil {
		return nil, err
	}
	return toOfferResponse(offer), nil
}

func (s *offerService) RecordApproval(ctx context.Context, actor entity.Identity, id string, req *dto.RecordApprovalRequest) (*dto.OfferResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	offer, err := uow.OfferRepository().FindOne(ctx, specification.ByStringID{ID: id})
	if err != nil || offer == nil {
		return nil, err
	}

	stepStage := ""
	if req.StepIndex >= 0 && req.StepIndex < len(offer.ApprovalChain) {
		stepStage = offer.ApprovalChain[req.StepIndex].Stage
	}

	chain, err := s.approvalEngine.RecordStepOutcome(
		offer.ApprovalChain,
		req.StepIndex,
		entity.ApprovalStatus(req.Outcome),
		actor.Name,
		req.Notes,
	)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	offer.ApprovalChain = chain
	offer.UpdatedAt = &now

	if err := uow.OfferRepository().Update(ctx, offer); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.NewApprovalRecorded("offer", offer.Id, stepStage, actor.Name, req.Outcome)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish APPROVAL_RECORDED event: %v\n", err)
		}
	}

	return toOfferResponse(offer), nil
}

// Send delivers the offer packet to the candidate. The gate is strict:
// status must be PendingApproval with the entire chain approved.
func (s *offerService) Send(ctx context.Context, actor entity.Identity, id string) (*dto.OfferResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	offer, err := uow.OfferRepository().FindOne(ctx, specification.ByStringID{ID: id})
	if err != nil || offer == nil {
		return nil, err
	}

	if !evaluator.OfferReadyToSend(offer) {
		return nil, fmt.Errorf("%w: offer %s is not ready to send", apperror.ErrInvalidTransition, offer.Id)
	}

	now := time.Now()
	offer.Status = entity.OfferStatusSent
	offer.SentAt = &now
	offer.UpdatedAt = &now

	if err := uow.OfferRepository().Update(ctx, offer); err != nil {
		return nil, err
	}

	s.mailOfferPacket(ctx, uow, offer)

	if s.eventPublisher != nil {
		evt := events.NewOfferSent(offer.Id, offer.JobId, offer.CandidateId, actor.Name)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish OFFER_SENT event: %v\n", err)
		}
	}

	return toOfferResponse(offer), nil
}

func (s *offerService) mailOfferPacket(ctx context.Context, uow unitofwork.UnitOfWork, offer *entity.Offer) {
	if s.emailService == nil {
		return
	}

	cand, err := uow.CandidateRepository().FindOne(ctx, specification.ByID{ID: offer.CandidateId})
	if err != nil || cand == nil || cand.Email == "" {
		fmt.Printf("[WARN] No reachable email for candidate %d, skipping offer mail\n", offer.CandidateId)
		return
	}

	jobTitle := fmt.Sprintf("requisition %d", offer.JobId)
	if req, err := uow.RequisitionRepository().FindOne(ctx, specification.ByID{ID: offer.JobId}); err == nil && req != nil {
		jobTitle = req.Title
	}

	// Mail is auxiliary; delivery failure never rolls the send back.
	if err := s.emailService.SendOfferPacket(cand.Email, cand.Name, jobTitle, offer.BaseSalary); err != nil {
		fmt.Printf("[WARN] Failed to mail offer packet for %s: %v\n", offer.Id, err)
	}
}

// Resolve finalizes a sent or negotiating offer as Accepted, Declined or
// Expired.
func (s *offerService) Resolve(ctx context.Context, actor entity.Identity, id string, status entity.OfferStatus) (*dto.OfferResponse, error) {
	switch status {
	case entity.OfferStatusAccepted, entity.OfferStatusDeclined, entity.OfferStatusExpired:
	default:
		return nil, fmt.Errorf("%w: %s is not a terminal offer status", apperror.ErrInvalidTransition, status)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	offer, err := uow.OfferRepository().FindOne(ctx, specification.ByStringID{ID: id})
	if err != nil || offer == nil {
		return nil, err
	}

	if offer.Status != entity.OfferStatusSent && offer.Status != entity.OfferStatusNegotiating {
		return nil, fmt.Errorf("%w: cannot resolve a %s offer", apperror.ErrInvalidTransition, offer.Status)
	}

	now := time.Now()
	offer.Status = status
	offer.ResolvedAt = &now
	offer.UpdatedAt = &now

	if err := uow.OfferRepository().Update(ctx, offer); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.NewOfferResolved(offer.Id, string(status), actor.Name)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish OFFER_RESOLVED event: %v\n", err)
		}
	}

	return toOfferResponse(offer), nil
}

// AppendNegotiation adds one round to the append-only negotiation history.
// A sent offer flips to Negotiating on the first round.
func (s *offerService) AppendNegotiation(ctx context.Context, actor entity.Identity, req *dto.AppendNegotiationRequest) (*dto.OfferResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	offer, err := uow.OfferRepository().FindOne(ctx, specification.ByStringID{ID: req.Id})
	if err != nil || offer == nil {
		return nil, err
	}

	if offer.Status != entity.OfferStatusSent && offer.Status != entity.OfferStatusNegotiating {
		return nil, fmt.Errorf("%w: offer %s is not open for negotiation", apperror.ErrInvalidTransition, offer.Id)
	}

	now := time.Now()
	offer.NegotiationHistory = append(offer.NegotiationHistory, entity.NegotiationEntry{
		Author:       actor.Name,
		Date:         now,
		Compensation: req.Compensation,
		Notes:        req.Notes,
	})
	offer.Status = entity.OfferStatusNegotiating
	offer.UpdatedAt = &now

	if err := uow.OfferRepository().Update(ctx, offer); err != nil {
		return nil, err
	}
	return toOfferResponse(offer), nil
}

func (s *offerService) AddCompetitiveIntel(ctx context.Context, actor entity.Identity, req *dto.AddCompetitiveIntelRequest) (*dto.OfferResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	offer, err := uow.OfferRepository().FindOne(ctx, specification.ByStringID{ID: req.Id})
	if err != nil || offer == nil {
		return nil, err
	}

	now := time.Now()
	offer.CompetitiveIntel = append(offer.CompetitiveIntel, req.Signal)
	offer.UpdatedAt = &now

	if err := uow.OfferRepository().Update(ctx, offer); err != nil {
		return nil, err
	}
	return toOfferResponse(offer), nil
}

func toOfferResponse(offer *entity.Offer) *dto.OfferResponse {
	chain := make([]dto.ApprovalStepResponse, 0, len(offer.ApprovalChain))
	for _, step := range offer.ApprovalChain {
		chain = append(chain, dto.ApprovalStepResponse{
			Stage:     step.Stage,
			Approver:  step.Approver,
			Status:    string(step.Status),
			Timestamp: step.Timestamp,
			Notes:     step.Notes,
		})
	}

	history := make([]dto.NegotiationEntryResponse, 0, len(offer.NegotiationHistory))
	for _, entry := range offer.NegotiationHistory {
		history = append(history, dto.NegotiationEntryResponse{
			Author:       entry.Author,
			Date:         entry.Date,
			Compensation: entry.Compensation,
			Notes:        entry.Notes,
		})
	}

	return &dto.OfferResponse{
		Id:                 offer.Id,
		CandidateId:        offer.CandidateId,
		JobId:              offer.JobId,
		Status:             string(offer.Status),
		BaseSalary:         offer.BaseSalary,
		Bonus:              offer.Bonus,
		Equity:             offer.Equity,
		StartDate:          offer.StartDate,
		ApprovalChain:      chain,
		NegotiationHistory: history,
		CompetitiveIntel:   offer.CompetitiveIntel,
		ReadyToSend:        evaluator.OfferReadyToSend(offer),
		CreatedAt:          offer.CreatedAt,
		SentAt:             offer.SentAt,
		ResolvedAt:         offer.ResolvedAt,
	}
}
