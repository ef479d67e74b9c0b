package model

import (
	"time"

	"gorm.io/datatypes"
)

type Offer struct {
	Id                 string                      `gorm:"type:varchar(64);primaryKey"`
	CandidateId        int                         `gorm:"not null;index:idx_offers_candidate_job,priority:1"`
	JobId              int                         `gorm:"not null;index:idx_offers_candidate_job,priority:2"`
	Status             string                      `gorm:"type:varchar(50);not null;default:'Draft';index"`
	BaseSalary         float64                     `gorm:"type:decimal(12,2)"`
	Bonus              float64                     `gorm:"type:decimal(12,2)"`
	Equity             string                      `gorm:"type:varchar(100)"`
	StartDate          *time.Time
	ApprovalChain      datatypes.JSON              `gorm:"type:jsonb"`
	NegotiationHistory datatypes.JSON              `gorm:"type:jsonb"`
	CompetitiveIntel   datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	SentAt             *time.Time
	ResolvedAt         *time.Time
	CreatedAt          time.Time `gorm:"autoCreateTime"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime"`
}

func (Offer) TableName() string {
	return "offers"
}
