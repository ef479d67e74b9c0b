package entity

import "time"

type RequisitionStatus string

const (
	RequisitionStatusPendingApproval RequisitionStatus = "PendingApproval"
	RequisitionStatusOpen            RequisitionStatus = "Open"
	RequisitionStatusOnHold          RequisitionStatus = "OnHold"
	RequisitionStatusClosed          RequisitionStatus = "Closed"
)

// JobRequisition is a hiring req owned by a hiring manager. RequiredSkills
// stays editable after creation while InitialRequiredSkills is frozen once
// IsLocked is set; the divergence between the two is the scope-creep signal.
type JobRequisition struct {
	Id                    int
	Title                 string
	Department            string
	Status                RequisitionStatus
	RequiredSkills        []string
	HiringManager         string
	ApprovalWorkflow      []ApprovalStep
	IsLocked              bool
	InitialRequiredSkills []string
	Headcount             int
	Location              string
	SalaryMin             float64
	SalaryMax             float64
	CreatedAt             time.Time
	UpdatedAt             *time.Time
}
