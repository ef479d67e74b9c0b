package integration

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"talentflow-be/internal/entity"
	"talentflow-be/internal/repository/specification"
	"talentflow-be/internal/repository/unitofwork"
	"talentflow-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestRecruitingFlow(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	ctx := context.Background()
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(ctx)

	assert.NotNil(t, uow.CandidateRepository())
	assert.NotNil(t, uow.RequisitionRepository())
	assert.NotNil(t, uow.OfferRepository())
	assert.NotNil(t, uow.PipelineRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)

	t.Run("Check Candidate Repository", func(t *testing.T) {
		count, err := uow.CandidateRepository().Count(ctx)
		assert.NoError(t, err)
		t.Logf("Candidate count: %d", count)
	})

	t.Run("Candidate To Offer Round Trip", func(t *testing.T) {
		cand := &entity.Candidate{
			Name:            "Integration Test Candidate",
			Email:           "test-integration-" + uuid.NewString() + "@example.com",
			Skills:          "Go, PostgreSQL",
			Status:          entity.CandidateStatusActive,
			Source:          "Integration",
			LastContactDate: time.Now(),
		}
		err := uow.CandidateRepository().Create(ctx, cand)
		assert.NoError(t, err)
		assert.NotZero(t, cand.Id)

		req := &entity.JobRequisition{
			Title:                 "Integration Test Req " + uuid.NewString(),
			Department:            "Engineering",
			Status:                entity.RequisitionStatusOpen,
			RequiredSkills:        []string{"Go"},
			InitialRequiredSkills: []string{"Go"},
			HiringManager:         "Integration Manager",
			IsLocked:              true,
			Headcount:             1,
		}
		err = uow.RequisitionRepository().Create(ctx, req)
		assert.NoError(t, err)
		assert.NotZero(t, req.Id)

		// Store a board and read it back
		board := entity.NewBoard()
		board[entity.StageApplied] = []int{cand.Id}
		err = uow.PipelineRepository().SaveBoard(ctx, req.Id, board)
		assert.NoError(t, err)

		loaded, err := uow.PipelineRepository().FindBoard(ctx, req.Id)
		assert.NoError(t, err)
		assert.Equal(t, []int{cand.Id}, loaded[entity.StageApplied])

		// Draft an offer for the pair and find it via specification
		offer := &entity.Offer{
			Id:          uuid.NewString(),
			CandidateId: cand.Id,
			JobId:       req.Id,
			Status:      entity.OfferStatusDraft,
			CreatedAt:   time.Now(),
		}
		err = uow.OfferRepository().Create(ctx, offer)
		assert.NoError(t, err)

		found, err := uow.OfferRepository().FindOne(ctx, specification.ByCandidateAndJob{
			CandidateID: cand.Id,
			JobID:       req.Id,
		})
		assert.NoError(t, err)
		if assert.NotNil(t, found) {
			assert.Equal(t, offer.Id, found.Id)
			assert.Equal(t, entity.OfferStatusDraft, found.Status)
		}

		// Cleanup
		assert.NoError(t, uow.OfferRepository().Delete(ctx, offer.Id))
		assert.NoError(t, uow.PipelineRepository().DeleteBoard(ctx, req.Id))
		assert.NoError(t, uow.RequisitionRepository().Delete(ctx, req.Id))
		assert.NoError(t, uow.CandidateRepository().Delete(ctx, cand.Id))
	})

	t.Run("Transactional Rollback", func(t *testing.T) {
		txUow := uowFactory.NewUnitOfWork(ctx)
		assert.NoError(t, txUow.Begin(ctx))

		email := "rollback-" + uuid.NewString() + "@example.com"
		cand := &entity.Candidate{
			Name:            "Rollback Candidate",
			Email:           email,
			Status:          entity.CandidateStatusActive,
			LastContactDate: time.Now(),
		}
		assert.NoError(t, txUow.CandidateRepository().Create(ctx, cand))
		assert.NoError(t, txUow.Rollback())

		// The rolled back candidate must not be visible afterwards
		ghost, err := uow.CandidateRepository().FindOne(ctx, specification.Filter("email", email))
		assert.NoError(t, err)
		assert.Nil(t, ghost)
	})

	t.Run("Audit Trail Write", func(t *testing.T) {
		err := uow.AuditRepository().Record(ctx, "INFO", "IntegrationTest",
			fmt.Sprintf("integration run at %s", time.Now().Format(time.RFC3339)), nil)
		assert.NoError(t, err)

		recent, err := uow.AuditRepository().FindRecent(ctx, 5)
		assert.NoError(t, err)
		assert.NotEmpty(t, recent)
	})
}
