package controller

import (
	"strconv"

	"talentflow-be/internal/dto"
	"talentflow-be/internal/pkg/serverutils"
	"talentflow-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICandidateController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type candidateController struct {
	candidateService service.ICandidateService
}

func NewCandidateController(candidateService service.ICandidateService) ICandidateController {
	return &candidateController{
		candidateService: candidateService,
	}
}

func (c *candidateController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/candidate/v1")
	h.Use(serverutils.IdentityMiddleware)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *candidateController) Create(ctx *fiber.Ctx) error {
	actor := serverutils.ActingIdentity(ctx)

	var req dto.CreateCandidateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.candidateService.Create(ctx.Context(), actor, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create candidate", res))
}

func (c *candidateController) Show(ctx *fiber.Ctx) error {
	actor := serverutils.ActingIdentity(ctx)

	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid candidate id")
	}

	res, err := c.candidateService.Show(ctx.Context(), actor, id)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "candidate not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show candidate", res))
}

func (c *candidateController) List(ctx *fiber.Ctx) error {
	actor := serverutils.ActingIdentity(ctx)

	res, err := c.candidateService.List(ctx.Context(), actor)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list candidates", res))
}

func (c *candidateController) Update(ctx *fiber.Ctx) error {
	actor := serverutils.ActingIdentity(ctx)

	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid candidate id")
	}

	var req dto.UpdateCandidateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.candidateService.Update(ctx.Context(), actor, &req)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "candidate not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update candidate", res))
}

func (c *candidateController) Delete(ctx *fiber.Ctx) error {
	actor := serverutils.ActingIdentity(ctx)

	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid candidate id")
	}

	if err := c.candidateService.Delete(ctx.Context(), actor, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete candidate", nil))
}
