package entity

import "time"

type OfferStatus string

const (
	OfferStatusDraft           OfferStatus = "Draft"
	OfferStatusPendingApproval OfferStatus = "PendingApproval"
	OfferStatusSent            OfferStatus = "Sent"
	OfferStatusNegotiating     OfferStatus = "Negotiating"
	OfferStatusAccepted        OfferStatus = "Accepted"
	OfferStatusDeclined        OfferStatus = "Declined"
	OfferStatusExpired         OfferStatus = "Expired"
)

// NegotiationEntry is a single round of the compensation negotiation.
// The history is append-only: entries are never edited or removed.
type NegotiationEntry struct {
	Author       string    `json:"author"`
	Date         time.Time `json:"date"`
	Compensation float64   `json:"compensation"`
	Notes        string    `json:"notes,omitempty"`
}

type Offer struct {
	Id                 string
	CandidateId        int
	JobId              int
	Status             OfferStatus
	BaseSalary         float64
	Bonus              float64
	Equity             string
	StartDate          *time.Time
	ApprovalChain      []ApprovalStep
	NegotiationHistory []NegotiationEntry
	CompetitiveIntel   []string
	CreatedAt          time.Time
	UpdatedAt          *time.Time
	SentAt             *time.Time
	ResolvedAt         *time.Time
}
