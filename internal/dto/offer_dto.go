package dto

import "time"

type CreateOfferRequest struct {
	CandidateId   int                   `json:"candidate_id" validate:"required"`
	JobId         int                   `json:"job_id" validate:"required"`
	BaseSalary    float64               `json:"base_salary" validate:"min=0"`
	Bonus         float64               `json:"bonus" validate:"min=0"`
	Equity        string                `json:"equity"`
	StartDate     *time.Time            `json:"start_date"`
	ApprovalChain []ApprovalStepPayload `json:"approval_chain" validate:"dive"`
}

type CreateOfferResponse struct {
	Id string `json:"id"`
}

type UpdateOfferTermsRequest struct {
	Id         string
	BaseSalary float64    `json:"base_salary" validate:"min=0"`
	Bonus      float64    `json:"bonus" validate:"min=0"`
	Equity     string     `json:"equity"`
	StartDate  *time.Time `json:"start_date"`
}

type AppendNegotiationRequest struct {
	Id           string
	Compensation float64 `json:"compensation" validate:"min=0"`
	Notes        string  `json:"notes"`
}

type AddCompetitiveIntelRequest struct {
	Id     string
	Signal string `json:"signal" validate:"required"`
}

type NegotiationEntryResponse struct {
	Author       string    `json:"author"`
	Date         time.Time `json:"date"`
	Compensation float64   `json:"compensation"`
	Notes        string    `json:"notes,omitempty"`
}

type OfferResponse struct {
	Id                 string                     `json:"id"`
	CandidateId        int                        `json:"candidate_id"`
	JobId              int                        `json:"job_id"`
	Status             string                     `json:"status"`
	BaseSalary         float64                    `json:"base_salary"`
	Bonus              float64                    `json:"bonus"`
	Equity             string                     `json:"equity"`
	StartDate          *time.Time                 `json:"start_date,omitempty"`
	ApprovalChain      []ApprovalStepResponse     `json:"approval_chain"`
	NegotiationHistory []NegotiationEntryResponse `json:"negotiation_history"`
	CompetitiveIntel   []string                   `json:"competitive_intel"`
	ReadyToSend        bool                       `json:"ready_to_send"`
	CreatedAt          time.Time                  `json:"created_at"`
	SentAt             *time.Time                 `json:"sent_at,omitempty"`
	ResolvedAt         *time.Time                 `json:"resolved_at,omitempty"`
}
