package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g. "CANDIDATE_HIRED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the common implementation used by the domain constructors.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Event type codes published on the recruiting bus.
const (
	TypeCandidateMoved   = "CANDIDATE_MOVED"
	TypeCandidateHired   = "CANDIDATE_HIRED"
	TypeApprovalRecorded = "APPROVAL_RECORDED"
	TypeOfferDrafted     = "OFFER_DRAFTED"
	TypeOfferSent        = "OFFER_SENT"
	TypeOfferResolved    = "OFFER_RESOLVED"
)

func NewCandidateMoved(jobId, candidateId int, source, target, actor string) Event {
	return BaseEvent{
		Type: TypeCandidateMoved,
		Data: map[string]interface{}{
			"job_id":       jobId,
			"candidate_id": candidateId,
			"source_stage": source,
			"target_stage": target,
			"actor":        actor,
		},
		OccurredAt: time.Now(),
	}
}

func NewCandidateHired(jobId, candidateId int, actor string) Event {
	return BaseEvent{
		Type: TypeCandidateHired,
		Data: map[string]interface{}{
			"job_id":       jobId,
			"candidate_id": candidateId,
			"actor":        actor,
		},
		OccurredAt: time.Now(),
	}
}

func NewApprovalRecorded(entityType, entityId, stage, approver, outcome string) Event {
	return BaseEvent{
		Type: TypeApprovalRecorded,
		Data: map[string]interface{}{
			"entity_type": entityType,
			"entity_id":   entityId,
			"stage":       stage,
			"approver":    approver,
			"outcome":     outcome,
		},
		OccurredAt: time.Now(),
	}
}

func NewOfferDrafted(offerId string, jobId, candidateId int) Event {
	return BaseEvent{
		Type: TypeOfferDrafted,
		Data: map[string]interface{}{
			"offer_id":     offerId,
			"job_id":       jobId,
			"candidate_id": candidateId,
		},
		OccurredAt: time.Now(),
	}
}

func NewOfferSent(offerId string, jobId, candidateId int, actor string) Event {
	return BaseEvent{
		Type: TypeOfferSent,
		Data: map[string]interface{}{
			"offer_id":     offerId,
			"job_id":       jobId,
			"candidate_id": candidateId,
			"actor":        actor,
		},
		OccurredAt: time.Now(),
	}
}

func NewOfferResolved(offerId, status, actor string) Event {
	return BaseEvent{
		Type: TypeOfferResolved,
		Data: map[string]interface{}{
			"offer_id": offerId,
			"status":   status,
			"actor":    actor,
		},
		OccurredAt: time.Now(),
	}
}
