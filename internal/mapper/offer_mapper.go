package mapper

import (
	"encoding/json"
	"time"

	"talentflow-be/internal/entity"
	"talentflow-be/internal/model"

	"gorm.io/datatypes"
)

type OfferMapper struct{}

func NewOfferMapper() *OfferMapper {
	return &OfferMapper{}
}

func (m *OfferMapper) ToEntity(o *model.Offer) *entity.Offer {
	if o == nil {
		return nil
	}

	var chain []entity.ApprovalStep
	if len(o.ApprovalChain) > 0 {
		if err := json.Unmarshal(o.ApprovalChain, &chain); err != nil {
			chain = nil
		}
	}

	var history []entity.NegotiationEntry
	if len(o.NegotiationHistory) > 0 {
		if err := json.Unmarshal(o.NegotiationHistory, &history); err != nil {
			history = nil
		}
	}

	var updatedAt *time.Time
	if !o.UpdatedAt.IsZero() {
		t := o.UpdatedAt
		updatedAt = &t
	}

	return &entity.Offer{
		Id:                 o.Id,
		CandidateId:        o.CandidateId,
		JobId:              o.JobId,
		Status:             entity.OfferStatus(o.Status),
		BaseSalary:         o.BaseSalary,
		Bonus:              o.Bonus,
		Equity:             o.Equity,
		StartDate:          o.StartDate,
		ApprovalChain:      chain,
		NegotiationHistory: history,
		CompetitiveIntel:   []string(o.CompetitiveIntel),
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          updatedAt,
		SentAt:             o.SentAt,
		ResolvedAt:         o.ResolvedAt,
	}
}

func (m *OfferMapper) ToModel(o *entity.Offer) *model.Offer {
	if o == nil {
		return nil
	}

	chain, _ := json.Marshal(o.ApprovalChain)
	history, _ := json.Marshal(o.NegotiationHistory)

	var updatedAt time.Time
	if o.UpdatedAt != nil {
		updatedAt = *o.UpdatedAt
	}

	return &model.Offer{
		Id:                 o.Id,
		CandidateId:        o.CandidateId,
		JobId:              o.JobId,
		Status:             string(o.Status),
		BaseSalary:         o.BaseSalary,
		Bonus:              o.Bonus,
		Equity:             o.Equity,
		StartDate:          o.StartDate,
		ApprovalChain:      datatypes.JSON(chain),
		NegotiationHistory: datatypes.JSON(history),
		CompetitiveIntel:   datatypes.NewJSONSlice(o.CompetitiveIntel),
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          updatedAt,
		SentAt:             o.SentAt,
		ResolvedAt:         o.ResolvedAt,
	}
}

func (m *OfferMapper) ToEntities(offers []*model.Offer) []*entity.Offer {
	entities := make([]*entity.Offer, len(offers))
	for i, o := range offers {
		entities[i] = m.ToEntity(o)
	}
	return entities
}
