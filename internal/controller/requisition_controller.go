package controller

import (
	"strconv"

	"talentflow-be/internal/dto"
	"talentflow-be/internal/pkg/serverutils"
	"talentflow-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IRequisitionController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	UpdateSkills(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
	RecordApproval(ctx *fiber.Ctx) error
	ScopeCreep(ctx *fiber.Ctx) error
}

type requisitionController struct {
	requisitionService service.IRequisitionService
}

func NewRequisitionController(requisitionService service.IRequisitionService) IRequisitionController {
	return &requisitionController{
		requisitionService: requisitionService,
	}
}

func (c *requisitionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/requisition/v1")
	h.Use(serverutils.IdentityMiddleware)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id/skills", c.UpdateSkills)
	h.Put(":id/status", c.UpdateStatus)
	h.Post(":id/approvals", c.RecordApproval)
	h.Get(":id/scope-creep", c.ScopeCreep)
}

func (c *requisitionController) Create(ctx *fiber.Ctx) error {
	actor := serverutils.ActingIdentity(ctx)

	var req dto.CreateRequisitionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.requisitionService.Create(ctx.Context(), actor, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create requisition", res))
}

func (c *requisitionController) Show(ctx *fiber.Ctx) error {
	actor := serverutils.ActingIdentity(ctx)

	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid requisition id")
	}

	res, err := c.requisitionService.Show(ctx.Context(), actor, id)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "requisition not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show requisition", res))
}

func (c *requisitionController) List(ctx *fiber.Ctx) error {
	actor := serverutils.ActingIdentity(ctx)

	res, err := c.requisitionService.List(ctx.Context(), actor)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list requisitions", res))
}

func (c *requisitionController) UpdateSkills(ctx *fiber.Ctx) error {
	actor := serverutils.ActingIdentity(ctx)

	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid requisition id")
	}

	var req dto.UpdateRequisitionSkillsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.requisitionService.UpdateSkills(ctx.Context(), actor, &req)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "requisition not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update requisition skills", res))
}

func (c *requisitionController) UpdateStatus(ctx *fiber.Ctx) error {
	actor := serverutils.ActingIdentity(ctx)

	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid requisition id")
	}

	var req dto.UpdateRequisitionStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.requisitionService.UpdateStatus(ctx.Context(), actor, &req)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "requisition not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update requisition status", res))
}

func (c *requisitionController) RecordApproval(ctx *fiber.Ctx) error {
	actor := serverutils.ActingIdentity(ctx)

	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid requisition id")
	}

	var req dto.RecordApprovalRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.requisitionService.RecordApproval(ctx.Context(), actor, id, &req)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "requisition not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success record approval", res))
}

func (c *requisitionController) ScopeCreep(ctx *fiber.Ctx) error {
	actor := serverutils.ActingIdentity(ctx)

	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid requisition id")
	}

	res, err := c.requisitionService.ScopeCreep(ctx.Context(), actor, id)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "requisition not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success scope creep report", res))
}
