package dto

import "time"

type ApprovalStepPayload struct {
	Stage    string `json:"stage" validate:"required"`
	Approver string `json:"approver" validate:"required"`
}

type CreateRequisitionRequest struct {
	Title            string                `json:"title" validate:"required"`
	Department       string                `json:"department"`
	RequiredSkills   []string              `json:"required_skills"`
	HiringManager    string                `json:"hiring_manager" validate:"required"`
	Headcount        int                   `json:"headcount" validate:"omitempty,min=1"`
	Location         string                `json:"location"`
	SalaryMin        float64               `json:"salary_min"`
	SalaryMax        float64               `json:"salary_max"`
	ApprovalWorkflow []ApprovalStepPayload `json:"approval_workflow" validate:"dive"`
}

type CreateRequisitionResponse struct {
	Id int `json:"id"`
}

type UpdateRequisitionSkillsRequest struct {
	Id             int
	RequiredSkills []string `json:"required_skills" validate:"required"`
}

type UpdateRequisitionStatusRequest struct {
	Id     int
	Status string `json:"status" validate:"required,oneof=PendingApproval Open OnHold Closed"`
}

type RecordApprovalRequest struct {
	StepIndex int    `json:"step_index" validate:"min=0"`
	Outcome   string `json:"outcome" validate:"required,oneof=Approved Rejected"`
	Notes     string `json:"notes"`
}

type ApprovalStepResponse struct {
	Stage     string     `json:"stage"`
	Approver  string     `json:"approver"`
	Status    string     `json:"status"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Notes     string     `json:"notes,omitempty"`
}

type ScopeCreepResponse struct {
	RequisitionId int      `json:"requisition_id"`
	Locked        bool     `json:"locked"`
	Added         []string `json:"added"`
	Removed       []string `json:"removed"`
	HasDrift      bool     `json:"has_drift"`
}

type RequisitionResponse struct {
	Id                    int                    `json:"id"`
	Title                 string                 `json:"title"`
	Department            string                 `json:"department"`
	Status                string                 `json:"status"`
	RequiredSkills        []string               `json:"required_skills"`
	HiringManager         string                 `json:"hiring_manager"`
	ApprovalWorkflow      []ApprovalStepResponse `json:"approval_workflow"`
	FullyApproved         bool                   `json:"fully_approved"`
	HasRejection          bool                   `json:"has_rejection"`
	IsLocked              bool                   `json:"is_locked"`
	InitialRequiredSkills []string               `json:"initial_required_skills,omitempty"`
	Headcount             int                    `json:"headcount"`
	Location              string                 `json:"location"`
	SalaryMin             float64                `json:"salary_min"`
	SalaryMax             float64                `json:"salary_max"`
	CreatedAt             time.Time              `json:"created_at"`
	UpdatedAt             *time.Time             `json:"updated_at,omitempty"`
}
