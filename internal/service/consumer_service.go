// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"talentflow-be/internal/dto"
	"talentflow-be/internal/entity"
	"talentflow-be/internal/repository/specification"
	"talentflow-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService reacts to pipeline stage changes published by the
// pipeline service: arriving at Offer auto-drafts an offer for the
// candidate, arriving at Hired flips the candidate record to Hired.
// Every move also counts as recruiter contact.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishPipelineEventMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Processing pipeline move: candidate %d, job %d, %s -> %s",
		payload.CandidateId, payload.JobId, payload.SourceStage, payload.TargetStage)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	cand, err := uow.CandidateRepository().FindOne(ctx, specification.ByID{ID: payload.CandidateId})
	if err != nil {
		log.Printf("[ERROR] Failed to get candidate %d: %v", payload.CandidateId, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	if cand == nil {
		// Boards may reference candidates deleted since the move; nothing
		// left to update.
		log.Printf("[WARN] Candidate not found: %d", payload.CandidateId)
		msg.Ack()
		return
	}

	now := time.Now()

	switch entity.Stage(payload.TargetStage) {
	case entity.StageOffer:
		if err := cs.ensureDraftOffer(ctx, uow, &payload); err != nil {
			log.Printf("[ERROR] Failed to draft offer for candidate %d, job %d: %v",
				payload.CandidateId, payload.JobId, err)
			msg.Nack()
			return
		}
		cand.Status = entity.CandidateStatusInterviewing

	case entity.StageHired:
		cand.Status = entity.CandidateStatusHired

	case entity.StageApplied:
		// No status change on re-entry to the top of the funnel.

	default:
		cand.Status = entity.CandidateStatusInterviewing
	}

	// A stage move is recruiter contact by definition.
	cand.LastContactDate = now
	cand.UpdatedAt = &now

	if err := uow.CandidateRepository().Update(ctx, cand); err != nil {
		log.Printf("[ERROR] Failed to update candidate %d: %v", cand.Id, err)
		msg.Nack()
		return
	}

	if err := uow.AuditRepository().Record(ctx, "INFO", "Pipeline",
		"Candidate moved between stages",
		map[string]interface{}{
			"candidate_id": payload.CandidateId,
			"job_id":       payload.JobId,
			"source_stage": payload.SourceStage,
			"target_stage": payload.TargetStage,
			"actor":        payload.Actor,
		}); err != nil {
		// Audit failures never block the move itself.
		log.Printf("[WARN] Failed to record audit entry: %v", err)
	}

	log.Printf("[SUCCESS] Pipeline move processed for candidate %d (job %d)", cand.Id, payload.JobId)
	msg.Ack()
}

// ensureDraftOffer creates a draft offer for the (candidate, job) pair
// unless one already exists. Recruiters fill in terms afterwards.
func (cs *consumerService) ensureDraftOffer(ctx context.Context, uow unitofwork.UnitOfWork, payload *dto.PublishPipelineEventMessage) error {
	existing, err := uow.OfferRepository().FindOne(ctx, specification.ByCandidateAndJob{
		CandidateID: payload.CandidateId,
		JobID:       payload.JobId,
	})
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	offer := entity.Offer{
		Id:          uuid.NewString(),
		CandidateId: payload.CandidateId,
		JobId:       payload.JobId,
		Status:      entity.OfferStatusDraft,
		CreatedAt:   time.Now(),
	}
	return uow.OfferRepository().Create(ctx, &offer)
}
