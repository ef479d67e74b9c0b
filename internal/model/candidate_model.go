package model

import "time"

type Candidate struct {
	Id              int        `gorm:"primaryKey;autoIncrement"`
	Name            string     `gorm:"type:varchar(255);not null"`
	Email           string     `gorm:"type:varchar(255);index"`
	Phone           string     `gorm:"type:varchar(50)"`
	CurrentRole     string     `gorm:"type:varchar(255)"`
	CurrentCompany  string     `gorm:"type:varchar(255)"`
	Skills          string     `gorm:"type:text"`
	Status          string     `gorm:"type:varchar(50);not null;default:'Active';index"`
	Source          string     `gorm:"type:varchar(100)"`
	LastContactDate *time.Time
	Notes           string    `gorm:"type:text"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (Candidate) TableName() string {
	return "candidates"
}
