package mapper

import (
	"encoding/json"
	"time"

	"talentflow-be/internal/entity"
	"talentflow-be/internal/model"

	"gorm.io/datatypes"
)

type RequisitionMapper struct{}

func NewRequisitionMapper() *RequisitionMapper {
	return &RequisitionMapper{}
}

func (m *RequisitionMapper) ToEntity(r *model.JobRequisition) *entity.JobRequisition {
	if r == nil {
		return nil
	}

	// A broken chain column degrades to an empty chain, never an error.
	var workflow []entity.ApprovalStep
	if len(r.ApprovalWorkflow) > 0 {
		if err := json.Unmarshal(r.ApprovalWorkflow, &workflow); err != nil {
			workflow = nil
		}
	}

	var updatedAt *time.Time
	if !r.UpdatedAt.IsZero() {
		t := r.UpdatedAt
		updatedAt = &t
	}

	return &entity.JobRequisition{
		Id:                    r.Id,
		Title:                 r.Title,
		Department:            r.Department,
		Status:                entity.RequisitionStatus(r.Status),
		RequiredSkills:        []string(r.RequiredSkills),
		HiringManager:         r.HiringManager,
		ApprovalWorkflow:      workflow,
		IsLocked:              r.IsLocked,
		InitialRequiredSkills: []string(r.InitialRequiredSkills),
		Headcount:             r.Headcount,
		Location:              r.Location,
		SalaryMin:             r.SalaryMin,
		SalaryMax:             r.SalaryMax,
		CreatedAt:             r.CreatedAt,
		UpdatedAt:             updatedAt,
	}
}

func (m *RequisitionMapper) ToModel(r *entity.JobRequisition) *model.JobRequisition {
	if r == nil {
		return nil
	}

	workflow, _ := json.Marshal(r.ApprovalWorkflow)

	var updatedAt time.Time
	if r.UpdatedAt != nil {
		updatedAt = *r.UpdatedAt
	}

	return &model.JobRequisition{
		Id:                    r.Id,
		Title:                 r.Title,
		Department:            r.Department,
		Status:                string(r.Status),
		RequiredSkills:        datatypes.NewJSONSlice(r.RequiredSkills),
		HiringManager:         r.HiringManager,
		ApprovalWorkflow:      datatypes.JSON(workflow),
		IsLocked:              r.IsLocked,
		InitialRequiredSkills: datatypes.NewJSONSlice(r.InitialRequiredSkills),
		Headcount:             r.Headcount,
		Location:              r.Location,
		SalaryMin:             r.SalaryMin,
		SalaryMax:             r.SalaryMax,
		CreatedAt:             r.CreatedAt,
		UpdatedAt:             updatedAt,
	}
}

func (m *RequisitionMapper) ToEntities(reqs []*model.JobRequisition) []*entity.JobRequisition {
	entities := make([]*entity.JobRequisition, len(reqs))
	for i, r := range reqs {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
