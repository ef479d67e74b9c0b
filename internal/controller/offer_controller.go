package controller

import (
	"talentflow-be/internal/dto"
	"talentflow-be/internal/entity"
	"talentflow-be/internal/pkg/serverutils"
	"talentflow-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IOfferController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	UpdateTerms(ctx *fiber.Ctx) error
	Submit(ctx *fiber.Ctx) error
	RecordApproval(ctx *fiber.Ctx) error
	Send(ctx *fiber.Ctx) error
	Accept(ctx *fiber.Ctx) error
	Decline(ctx *fiber.Ctx) error
	Expire(ctx *fiber.Ctx) error
	AppendNegotiation(ctx *fiber.Ctx) error
	AddCompetitiveIntel(ctx *fiber.Ctx) error
}

type offerController struct {
	offerService service.IOfferService
}

func NewOfferController(offerService service.IOfferService) IOfferController {
	return &offerController{
		offerService: offerService,
	}
}

func (c *offerController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/offer/v1")
	h.Use(serverutils.IdentityMiddleware)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id/terms", c.UpdateTerms)
	h.Post(":id/submit", c.Submit)
	h.Post(":id/approvals", c.RecordApproval)
	h.Post(":id/send", c.Send)
	h.Post(":id/accept", c.Accept)
	h.Post(":id/decline", c.Decline)
	h.Post(":id/expire", c.Expire)
	h.Post(":id/negotiations", c.AppendNegotiation)
	h.Post(":id/intel", c.AddCompetitiveIntel)
}

func (c *offerController) Create(ctx *fiber.Ctx) error {
	actor := serverutils.ActingIdentity(ctx)

	var req dto.CreateOfferRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.offerService.Create(ctx.Context(), actor, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create offer", res))
}

func (c *offerController) Show(ctx *fiber.Ctx) error {
	actor := serverutils.ActingIdentity(ctx)

	res, err := c.offerService.Show(ctx.Context(), actor, ctx.Params("id"))
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "offer not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show offer", res))
}

func (c *offerController) List(ctx *fiber.Ctx) error {
	actor := serverutils.ActingIdentity(ctx)
	readyOnly := ctx.QueryBool("ready", false)

	res, err := c.offerService.List(ctx.Context(), actor, readyOnly)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list offers", res))
}

func (c *offerController) UpdateTerms(ctx *fiber.Ctx) error {
	actor := serverutils.ActingIdentity(ctx)

	var req dto.UpdateOfferTermsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = ctx.Params("id")

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.offerService.UpdateTerms(ctx.Context(), actor, &req)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "offer not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update offer terms", res))
}

func (c *offerController) Submit(ctx *fiber.Ctx) error {
	actor := serverutils.ActingIdentity(ctx)

	res, err := c.offerService.SubmitForApproval(ctx.Context(), actor, ctx.Params("id"))
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "offer not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success submit offer for approval", res))
}

func (c *offerController) RecordApproval(ctx *fiber.Ctx) error {
	actor := serverutils.ActingIdentity(ctx)

	var req dto.RecordApprovalRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.offerService.RecordApproval(ctx.Context(), actor, ctx.Params("id"), &req)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "offer not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success record approval", res))
}

func (c *offerController) Send(ctx *fiber.Ctx) error {
	actor := serverutils.ActingIdentity(ctx)

	res, err := c.offerService.Send(ctx.Context(), actor, ctx.Params("id"))
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "offer not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send offer", res))
}

func (c *offerController) Accept(ctx *fiber.Ctx) error {
	return c.resolve(ctx, entity.OfferStatusAccepted, "Success accept offer")
}

func (c *offerController) Decline(ctx *fiber.Ctx) error {
	return c.resolve(ctx, entity.OfferStatusDeclined, "Success decline offer")
}

func (c *offerController) Expire(ctx *fiber.Ctx) error {
	return c.resolve(ctx, entity.OfferStatusExpired, "Success expire offer")
}

func (c *offerController) resolve(ctx *fiber.Ctx, status entity.OfferStatus, message string) error {
	actor := serverutils.ActingIdentity(ctx)

	res, err := c.offerService.Resolve(ctx.Context(), actor, ctx.Params("id"), status)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "offer not found")
	}

	return ctx.JSON(serverutils.SuccessResponse(message, res))
}

func (c *offerController) AppendNegotiation(ctx *fiber.Ctx) error {
	actor := serverutils.ActingIdentity(ctx)

	var req dto.AppendNegotiationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = ctx.Params("id")

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.offerService.AppendNegotiation(ctx.Context(), actor, &req)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "offer not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success append negotiation entry", res))
}

func (c *offerController) AddCompetitiveIntel(ctx *fiber.Ctx) error {
	actor := serverutils.ActingIdentity(ctx)

	var req dto.AddCompetitiveIntelRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = ctx.Params("id")

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.offerService.AddCompetitiveIntel(ctx.Context(), actor, &req)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "offer not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success record competitive intel", res))
}
