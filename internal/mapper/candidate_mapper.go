package mapper

import (
	"time"

	"talentflow-be/internal/entity"
	"talentflow-be/internal/model"
)

type CandidateMapper struct{}

func NewCandidateMapper() *CandidateMapper {
	return &CandidateMapper{}
}

func (m *CandidateMapper) ToEntity(c *model.Candidate) *entity.Candidate {
	if c == nil {
		return nil
	}

	var lastContact time.Time
	if c.LastContactDate != nil {
		lastContact = *c.LastContactDate
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.Candidate{
		Id:              c.Id,
		Name:            c.Name,
		Email:           c.Email,
		Phone:           c.Phone,
		CurrentRole:     c.CurrentRole,
		CurrentCompany:  c.CurrentCompany,
		Skills:          c.Skills,
		Status:          entity.CandidateStatus(c.Status),
		Source:          c.Source,
		LastContactDate: lastContact,
		Notes:           c.Notes,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func (m *CandidateMapper) ToModel(c *entity.Candidate) *model.Candidate {
	if c == nil {
		return nil
	}

	var lastContact *time.Time
	if !c.LastContactDate.IsZero() {
		t := c.LastContactDate
		lastContact = &t
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.Candidate{
		Id:              c.Id,
		Name:            c.Name,
		Email:           c.Email,
		Phone:           c.Phone,
		CurrentRole:     c.CurrentRole,
		CurrentCompany:  c.CurrentCompany,
		Skills:          c.Skills,
		Status:          string(c.Status),
		Source:          c.Source,
		LastContactDate: lastContact,
		Notes:           c.Notes,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func (m *CandidateMapper) ToEntities(candidates []*model.Candidate) []*entity.Candidate {
	entities := make([]*entity.Candidate, len(candidates))
	for i, c := range candidates {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
