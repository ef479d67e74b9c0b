package dto

import "time"

type CreateCandidateRequest struct {
	Name            string     `json:"name" validate:"required"`
	Email           string     `json:"email" validate:"omitempty,email"`
	Phone           string     `json:"phone"`
	CurrentRole     string     `json:"current_role"`
	CurrentCompany  string     `json:"current_company"`
	Skills          string     `json:"skills"`
	Status          string     `json:"status" validate:"omitempty,oneof=Active Passive Interviewing Hired DoNotContact"`
	Source          string     `json:"source"`
	LastContactDate *time.Time `json:"last_contact_date"`
	Notes           string     `json:"notes"`
}

type CreateCandidateResponse struct {
	Id int `json:"id"`
}

type UpdateCandidateRequest struct {
	Id              int
	Name            string     `json:"name" validate:"required"`
	Email           string     `json:"email" validate:"omitempty,email"`
	Phone           string     `json:"phone"`
	CurrentRole     string     `json:"current_role"`
	CurrentCompany  string     `json:"current_company"`
	Skills          string     `json:"skills"`
	Status          string     `json:"status" validate:"omitempty,oneof=Active Passive Interviewing Hired DoNotContact"`
	Source          string     `json:"source"`
	LastContactDate *time.Time `json:"last_contact_date"`
	Notes           string     `json:"notes"`
}

type CandidateResponse struct {
	Id              int        `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	CurrentRole     string     `json:"current_role"`
	CurrentCompany  string     `json:"current_company"`
	Skills          string     `json:"skills"`
	Status          string     `json:"status"`
	Source          string     `json:"source"`
	LastContactDate *time.Time `json:"last_contact_date,omitempty"`
	Notes           string     `json:"notes"`
	Aging           bool       `json:"aging"` // uncontacted beyond the configured threshold
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}
