package model

import (
	"time"

	"gorm.io/datatypes"
)

// PipelineBoard stores one Kanban board per job requisition: the stage map
// is a JSONB snapshot of stage -> ordered candidate ids. SchemaVersion
// guards the snapshot shape against future format changes.
type PipelineBoard struct {
	JobId         int            `gorm:"primaryKey"`
	Stages        datatypes.JSON `gorm:"type:jsonb;not null"`
	SchemaVersion int            `gorm:"default:1"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
}

func (PipelineBoard) TableName() string {
	return "pipeline_boards"
}
