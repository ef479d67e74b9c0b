package main

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"talentflow-be/internal/entity"
	"talentflow-be/internal/model"
	"talentflow-be/pkg/database"

	"github.com/joho/godotenv"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Seeding demo recruiting data...")
	seedDemoData(db)

	log.Println("Seeding Notification Types...")
	SeedNotificationTypes(db)
}

func seedDemoData(db *gorm.DB) {
	lastContact := time.Now().AddDate(0, 0, -3)
	stale := time.Now().AddDate(0, 0, -21)

	candidates := []model.Candidate{
		{Name: "Ava Martinez", Email: "ava.martinez@example.com", Phone: "+1-555-0101", CurrentRole: "Backend Engineer", CurrentCompany: "Streamline Labs", Skills: "Go, PostgreSQL, Kubernetes", Status: "Active", Source: "Referral", LastContactDate: &lastContact},
		{Name: "Ben Okafor", Email: "ben.okafor@example.com", Phone: "+1-555-0102", CurrentRole: "Platform Engineer", CurrentCompany: "Cloudpath", Skills: "Go, Terraform, AWS", Status: "Active", Source: "LinkedIn", LastContactDate: &stale},
		{Name: "Chloe Tan", Email: "chloe.tan@example.com", Phone: "+1-555-0103", CurrentRole: "Senior SWE", CurrentCompany: "Finch Systems", Skills: "Go, gRPC, Redis", Status: "Interviewing", Source: "Agency", LastContactDate: &lastContact},
		{Name: "Diego Rossi", Email: "diego.rossi@example.com", Phone: "+1-555-0104", CurrentRole: "Data Engineer", CurrentCompany: "Northwind", Skills: "Python, Spark, Airflow", Status: "Active", Source: "Inbound"},
	}
	for i := range candidates {
		c := candidates[i]
		if err := db.Where("email = ?", c.Email).FirstOrCreate(&c).Error; err != nil {
			log.Printf("Error seeding candidate %s: %v", c.Email, err)
			continue
		}
		candidates[i] = c
	}

	backendSkills := []string{"Go", "PostgreSQL", "Kubernetes"}
	dataSkills := []string{"Python", "Spark", "SQL"}

	backendWorkflow := mustJSON([]entity.ApprovalStep{
		{Stage: "Department Head", Approver: "Dana Whitfield", Status: entity.ApprovalStatusPending},
		{Stage: "Finance", Approver: "Omar Haddad", Status: entity.ApprovalStatusPending},
	})

	requisitions := []model.JobRequisition{
		{
			Title:                 "Senior Backend Engineer",
			Department:            "Engineering",
			Status:                "PendingApproval",
			RequiredSkills:        datatypes.NewJSONSlice(backendSkills),
			InitialRequiredSkills: datatypes.NewJSONSlice(backendSkills),
			HiringManager:         "Dana Whitfield",
			ApprovalWorkflow:      backendWorkflow,
			IsLocked:              true,
			Headcount:             2,
			Location:              "Remote",
			SalaryMin:             140000,
			SalaryMax:             180000,
		},
		{
			Title:                 "Data Engineer",
			Department:            "Data",
			Status:                "Open",
			RequiredSkills:        datatypes.NewJSONSlice(dataSkills),
			InitialRequiredSkills: datatypes.NewJSONSlice(dataSkills),
			HiringManager:         "Priya Raman",
			IsLocked:              true,
			Headcount:             1,
			Location:              "New York",
			SalaryMin:             120000,
			SalaryMax:             150000,
		},
	}
	for i := range requisitions {
		r := requisitions[i]
		if err := db.Where("title = ?", r.Title).FirstOrCreate(&r).Error; err != nil {
			log.Printf("Error seeding requisition %q: %v", r.Title, err)
			continue
		}
		requisitions[i] = r
	}

	// One board per requisition; the Data Engineer board carries the seeded
	// candidates spread across its first stages.
	if len(requisitions) == 2 && requisitions[1].Id != 0 {
		stages := map[string][]int{}
		for _, s := range entity.StageOrder {
			stages[string(s)] = []int{}
		}
		if candidates[0].Id != 0 {
			stages[string(entity.StageApplied)] = append(stages[string(entity.StageApplied)], candidates[0].Id)
		}
		if candidates[2].Id != 0 {
			stages[string(entity.StagePhoneScreen)] = append(stages[string(entity.StagePhoneScreen)], candidates[2].Id)
		}
		board := model.PipelineBoard{
			JobId:         requisitions[1].Id,
			Stages:        mustJSON(stages),
			SchemaVersion: 1,
		}
		if err := db.Where("job_id = ?", board.JobId).FirstOrCreate(&board).Error; err != nil {
			log.Printf("Error seeding pipeline board for job %d: %v", board.JobId, err)
		}
	}

	log.Println("Demo recruiting data seeded.")
}

func mustJSON(v interface{}) datatypes.JSON {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Fatalf("Error: failed to marshal seed data: %v", err)
	}
	return datatypes.JSON(raw)
}
