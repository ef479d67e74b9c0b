package model

import (
	"time"

	"gorm.io/datatypes"
)

type JobRequisition struct {
	Id                    int                         `gorm:"primaryKey;autoIncrement"`
	Title                 string                      `gorm:"type:varchar(255);not null"`
	Department            string                      `gorm:"type:varchar(100);index"`
	Status                string                      `gorm:"type:varchar(50);not null;default:'PendingApproval';index"`
	RequiredSkills        datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	HiringManager         string                      `gorm:"type:varchar(255);not null;index"`
	ApprovalWorkflow      datatypes.JSON              `gorm:"type:jsonb"`
	IsLocked              bool                        `gorm:"default:false"`
	InitialRequiredSkills datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Headcount             int                         `gorm:"default:1"`
	Location              string                      `gorm:"type:varchar(255)"`
	SalaryMin             float64                     `gorm:"type:decimal(12,2)"`
	SalaryMax             float64                     `gorm:"type:decimal(12,2)"`
	CreatedAt             time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt             time.Time                   `gorm:"autoUpdateTime"`
}

func (JobRequisition) TableName() string {
	return "job_requisitions"
}
