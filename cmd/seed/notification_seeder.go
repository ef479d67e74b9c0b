package main

import (
	"log"

	"talentflow-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SeedNotificationTypes populates the database with default notification types.
func SeedNotificationTypes(db *gorm.DB) {
	types := []model.NotificationType{
		{
			Code:        "CANDIDATE_MOVED",
			DisplayName: "Candidate Moved",
			Template:    "{actor} moved candidate {candidate_id} from {source_stage} to {target_stage} on job {job_id}",
			TargetType:  "OWNER", // Send to the job's hiring manager
			Priority:    "LOW",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web"]`)),
		},
		{
			Code:        "CANDIDATE_HIRED",
			DisplayName: "Candidate Hired",
			Template:    "Candidate {candidate_id} was hired on job {job_id} by {actor}",
			TargetType:  "OWNER",
			Priority:    "HIGH",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web", "email"]`)),
		},
		{
			Code:        "APPROVAL_RECORDED",
			DisplayName: "Approval Step Recorded",
			Template:    "{approver} recorded \"{outcome}\" for the {stage} step on {entity_type} {entity_id}",
			TargetType:  "APPROVER", // Send to the approver who acted
			Priority:    "MEDIUM",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web"]`)),
		},
		{
			Code:        "OFFER_DRAFTED",
			DisplayName: "Offer Drafted",
			Template:    "A draft offer was created for candidate {candidate_id} on job {job_id}",
			TargetType:  "OWNER",
			Priority:    "MEDIUM",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web"]`)),
		},
		{
			Code:        "OFFER_SENT",
			DisplayName: "Offer Sent",
			Template:    "{actor} sent the offer for candidate {candidate_id} on job {job_id}",
			TargetType:  "OWNER",
			Priority:    "HIGH",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web", "email"]`)),
		},
		{
			Code:        "OFFER_RESOLVED",
			DisplayName: "Offer Resolved",
			Template:    "Offer {offer_id} was resolved as {status}",
			TargetType:  "ACTOR", // Send to the recruiter who resolved it
			Priority:    "HIGH",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web", "email"]`)),
		},
		{
			Code:        "SYSTEM_BROADCAST",
			DisplayName: "System Announcement",
			Template:    "{message}",
			TargetType:  "BROADCAST", // Push to every connected client
			Priority:    "HIGH",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web"]`)),
		},
		{
			Code:        "TEST_EVENT",
			DisplayName: "Test Notification",
			Template:    "This is a test notification: {message}",
			TargetType:  "ACTOR",
			Priority:    "MEDIUM",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web"]`)),
		},
	}

	for _, t := range types {
		err := db.Where("code = ?", t.Code).FirstOrCreate(&t).Error
		if err != nil {
			log.Printf("Error seeding notification type %s: %v", t.Code, err)
		}
	}
	log.Println("Notification types seeded successfully.")
}
