package controller

import (
	"talentflow-be/internal/pkg/serverutils"
	"talentflow-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IOpsController interface {
	RegisterRoutes(r fiber.Router)
	ExportSnapshot(ctx *fiber.Ctx) error
	ImportSnapshot(ctx *fiber.Ctx) error
	GetLogs(ctx *fiber.Ctx) error
	GetLogById(ctx *fiber.Ctx) error
}

type opsController struct {
	opsService service.IOpsService
}

func NewOpsController(opsService service.IOpsService) IOpsController {
	return &opsController{
		opsService: opsService,
	}
}

func (c *opsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/ops/v1")
	h.Use(serverutils.IdentityMiddleware)
	h.Post("snapshot/export", c.ExportSnapshot)
	h.Post("snapshot/import", c.ImportSnapshot)
	h.Get("logs", c.GetLogs)
	h.Get("logs/:id", c.GetLogById)
}

func (c *opsController) ExportSnapshot(ctx *fiber.Ctx) error {
	res, err := c.opsService.ExportSnapshot(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success export snapshot", res))
}

func (c *opsController) ImportSnapshot(ctx *fiber.Ctx) error {
	res, err := c.opsService.ImportSnapshot(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success import snapshot", res))
}

func (c *opsController) GetLogs(ctx *fiber.Ctx) error {
	level := ctx.Query("level")
	limit := ctx.QueryInt("limit", 100)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.opsService.GetLogs(level, limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get logs", res))
}

func (c *opsController) GetLogById(ctx *fiber.Ctx) error {
	res, err := c.opsService.GetLogById(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "log not found")
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get log", res))
}
