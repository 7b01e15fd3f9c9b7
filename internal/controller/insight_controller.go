package controller

import (
	"errors"

	"therapy-insights-be/internal/dto"
	"therapy-insights-be/internal/pkg/serverutils"
	"therapy-insights-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IInsightController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	Save(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Preview(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	AuditLogs(ctx *fiber.Ctx) error
}

type insightController struct {
	insightService service.IInsightService
	jwtMiddleware  fiber.Handler
}

func NewInsightController(insightService service.IInsightService, jwtMiddleware fiber.Handler) IInsightController {
	return &insightController{
		insightService: insightService,
		jwtMiddleware:  jwtMiddleware,
	}
}

func (c *insightController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/insight/v1")
	h.Use(c.jwtMiddleware)
	h.Post("patient/:patientId/generate", c.Generate)
	h.Post("patient/:patientId/save", c.Save)
	h.Get("patient/:patientId/preview", c.Preview)
	h.Get("patient/:patientId/audit", c.AuditLogs)
	h.Get("patient/:patientId", c.Show)
	h.Delete("patient/:patientId", c.Delete)
}

func patientIdParam(ctx *fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params("patientId"))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

func (c *insightController) Generate(ctx *fiber.Ctx) error {
	patientId, ok := patientIdParam(ctx)
	if !ok {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid patient id"))
	}

	res := c.insightService.GeneratePatientInsights(ctx.Context(), patientId)
	return ctx.JSON(serverutils.SuccessResponse("Success generate insights", res))
}

func (c *insightController) Save(ctx *fiber.Ctx) error {
	patientId, ok := patientIdParam(ctx)
	if !ok {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid patient id"))
	}

	res, err := c.insightService.SaveLatestForPatient(ctx.Context(), patientId)
	if err != nil {
		if errors.Is(err, service.ErrNoPreview) {
			return ctx.Status(fiber.StatusConflict).JSON(serverutils.ErrorResponse(409, "Generate insights before saving"))
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success save insights", res))
}

func (c *insightController) Show(ctx *fiber.Ctx) error {
	patientId, ok := patientIdParam(ctx)
	if !ok {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid patient id"))
	}

	res, err := c.insightService.FindByPatientId(ctx.Context(), patientId)
	if err != nil {
		if errors.Is(err, service.ErrInsightsNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Insights not found"))
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get insights", res))
}

func (c *insightController) Preview(ctx *fiber.Ctx) error {
	patientId, ok := patientIdParam(ctx)
	if !ok {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid patient id"))
	}

	res, err := c.insightService.GetPreview(ctx.Context(), patientId)
	if err != nil {
		if errors.Is(err, service.ErrNoPreview) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "No preview available"))
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get preview", res))
}

func (c *insightController) Delete(ctx *fiber.Ctx) error {
	patientId, ok := patientIdParam(ctx)
	if !ok {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid patient id"))
	}

	if err := c.insightService.DeleteByPatientId(ctx.Context(), patientId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete insights", nil))
}

func (c *insightController) AuditLogs(ctx *fiber.Ctx) error {
	patientId, ok := patientIdParam(ctx)
	if !ok {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid patient id"))
	}

	var req dto.ListAuditLogsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid query parameters"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.insightService.ListAuditLogs(ctx.Context(), patientId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get audit logs", res))
}
