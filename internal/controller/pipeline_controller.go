package controller

import (
	"strconv"

	"talentflow-be/internal/dto"
	"talentflow-be/internal/pkg/serverutils"
	"talentflow-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPipelineController interface {
	RegisterRoutes(r fiber.Router)
	GetBoard(ctx *fiber.Ctx) error
	MoveCandidate(ctx *fiber.Ctx) error
	CandidateStage(ctx *fiber.Ctx) error
	Hired(ctx *fiber.Ctx) error
	HiredAcrossJobs(ctx *fiber.Ctx) error
}

type pipelineController struct {
	pipelineService service.IPipelineService
}

func NewPipelineController(pipelineService service.IPipelineService) IPipelineController {
	return &pipelineController{
		pipelineService: pipelineService,
	}
}

func (c *pipelineController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/pipeline/v1")
	h.Use(serverutils.IdentityMiddleware)
	h.Get("hired", c.HiredAcrossJobs)
	h.Post("move", c.MoveCandidate)
	h.Get(":jobId/board", c.GetBoard)
	h.Get(":jobId/hired", c.Hired)
	h.Get(":jobId/candidate/:candidateId", c.CandidateStage)
}

func (c *pipelineController) GetBoard(ctx *fiber.Ctx) error {
	actor := serverutils.ActingIdentity(ctx)

	jobId, err := strconv.Atoi(ctx.Params("jobId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid job id")
	}

	res, err := c.pipelineService.GetBoard(ctx.Context(), actor, jobId)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "board not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show board", res))
}

func (c *pipelineController) MoveCandidate(ctx *fiber.Ctx) error {
	actor := serverutils.ActingIdentity(ctx)

	var req dto.MoveCandidateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.pipelineService.MoveCandidate(ctx.Context(), actor, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success move candidate", res))
}

func (c *pipelineController) CandidateStage(ctx *fiber.Ctx) error {
	actor := serverutils.ActingIdentity(ctx)

	jobId, err := strconv.Atoi(ctx.Params("jobId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid job id")
	}
	candidateId, err := strconv.Atoi(ctx.Params("candidateId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid candidate id")
	}

	res, err := c.pipelineService.CandidateStage(ctx.Context(), actor, jobId, candidateId)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "board not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success candidate stage lookup", res))
}

func (c *pipelineController) Hired(ctx *fiber.Ctx) error {
	actor := serverutils.ActingIdentity(ctx)

	jobId, err := strconv.Atoi(ctx.Params("jobId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid job id")
	}

	res, err := c.pipelineService.Hired(ctx.Context(), actor, jobId)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "board not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success hired candidates", res))
}

func (c *pipelineController) HiredAcrossJobs(ctx *fiber.Ctx) error {
	actor := serverutils.ActingIdentity(ctx)

	res, err := c.pipelineService.HiredAcrossJobs(ctx.Context(), actor)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success hired across jobs", res))
}
