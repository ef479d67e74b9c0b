package entity

import "time"

type CandidateStatus string

const (
	CandidateStatusActive       CandidateStatus = "Active"
	CandidateStatusPassive      CandidateStatus = "Passive"
	CandidateStatusInterviewing CandidateStatus = "Interviewing"
	CandidateStatusHired        CandidateStatus = "Hired"
	CandidateStatusDoNotContact CandidateStatus = "DoNotContact"
)

type Candidate struct {
	Id              int
	Name            string
	Email           string
	Phone           string
	CurrentRole     string
	CurrentCompany  string
	Skills          string // free text, comma separated
	Status          CandidateStatus
	Source          string
	LastContactDate time.Time
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}
